package utils

import (
	"crypto/sha256"
	"fmt"
)

// HashBytes returns the lowercase hex SHA-256 digest of data.
func HashBytes(data []byte) (string, error) {
	h := sha256.New()
	if _, err := h.Write(data); err != nil {
		return "", fmt.Errorf("failed to generate hash: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ConcatHash hashes the concatenation of parts, in order. Used to derive
// LrgsCluster.status.checksum from (password file, dds config, drgs config).
func ConcatHash(parts ...[]byte) (string, error) {
	var joined []byte
	for _, p := range parts {
		joined = append(joined, p...)
	}
	return HashBytes(joined)
}

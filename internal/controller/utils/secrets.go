package utils

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// GetSecretContent fetches secretName in namespace and returns the decoded values of the
// requested fields.
func GetSecretContent(ctx context.Context, c client.Client, secretName, namespace string, fields []string, found *corev1.Secret) (map[string]string, error) {
	if err := c.Get(ctx, client.ObjectKey{Name: secretName, Namespace: namespace}, found); err != nil {
		return nil, fmt.Errorf("secret %s not found: %w", secretName, err)
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		v, ok := found.Data[f]
		if !ok {
			return nil, fmt.Errorf("secret field %s not present in secret %s", f, secretName)
		}
		out[f] = string(v)
	}
	return out, nil
}

package lrgs

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LookupPeers", func() {
	It("never fails the caller for an unresolvable name", func() {
		// "invalid" is reserved by RFC 2606 and never resolves; whether the
		// environment reports NXDOMAIN or a network error, peer discovery is
		// defined as benign-empty rather than fatal (§4.3.1).
		peers, err := LookupPeers(context.Background(), nil, "dds", "tcp", "nonexistent.invalid")
		Expect(err).NotTo(HaveOccurred())
		Expect(peers).To(BeEmpty())
	})

	It("falls back to the default resolver when none is given", func() {
		_, err := LookupPeers(context.Background(), nil, "dds", "tcp", "nonexistent.invalid")
		Expect(err).NotTo(HaveOccurred())
	})
})

package lrgs

import (
	"context"
	"net"
	"sort"
)

// Peer is a discovered LRGS replica, as returned by a DNS SRV lookup.
type Peer struct {
	Host string
	Port uint16
}

// LookupPeers resolves the SRV records of service/proto/name, used to discover sibling
// LRGS replicas for the DDS-receive configuration (§4.3.1/§6.3). "No records" is a
// benign, empty outcome rather than an error - peer discovery never fails a reconcile.
func LookupPeers(ctx context.Context, resolver *net.Resolver, service, proto, name string) ([]Peer, error) {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	_, addrs, err := resolver.LookupSRV(ctx, service, proto, name)
	if err != nil {
		if dnsErr, ok := err.(*net.DNSError); ok && (dnsErr.IsNotFound || dnsErr.IsTemporary) {
			return nil, nil
		}
		return nil, err
	}
	peers := make([]Peer, 0, len(addrs))
	for _, a := range addrs {
		peers = append(peers, Peer{Host: a.Target, Port: a.Port})
	}
	// DNS SRV ordering already reflects priority/weight via net's resolver; peer
	// ordering beyond that is unspecified per spec §9 and treated as implementation
	// defined here: stabilize on host for deterministic config byte output (R2).
	sort.SliceStable(peers, func(i, j int) bool { return peers[i].Host < peers[j].Host })
	return peers, nil
}

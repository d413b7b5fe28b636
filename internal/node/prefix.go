package node

import (
	"fmt"
	"net/netip"
	"strings"
)

// DefaultPrefixLen is the prefix length used when deriving a node's network
const DefaultPrefixLen = 24

// FirstIPv4Prefix returns the network of the node's first IPv4 address,
// using prefixLen instead of the address's own prefix length, so that
// 10.0.0.5/32 with prefixLen 24 yields 10.0.0.0/24.
//
// Control interfaces are skipped. If no IPv4 address is found, the sentinel
// 0.0.0.0/prefixLen is returned.
func FirstIPv4Prefix(n *Node, prefixLen int) string {
	prefix, _ := LookupIPv4Prefix(n, prefixLen)
	return prefix
}

// LookupIPv4Prefix is FirstIPv4Prefix that also reports whether the result
// came from a real address (false means the sentinel was returned)
func LookupIPv4Prefix(n *Node, prefixLen int) (string, bool) {
	for _, ifc := range n.Interfaces {
		if ifc.Control {
			continue
		}
		for _, addr := range ifc.Addrs {
			if !strings.Contains(addr, ".") {
				continue
			}
			host, _, _ := strings.Cut(addr, "/")
			return networkOf(host, prefixLen), true
		}
	}
	return fmt.Sprintf("0.0.0.0/%d", prefixLen), false
}

// networkOf masks host to prefixLen bits. IPv4-mapped IPv6 hosts
// (::ffff:10.0.0.5) are unmapped first. Other hosts that do not parse as
// IPv4 are not validated and come back verbatim with the requested length.
func networkOf(host string, prefixLen int) string {
	addr, err := netip.ParseAddr(host)
	if err == nil {
		addr = addr.Unmap()
	}
	if err != nil || !addr.Is4() {
		return fmt.Sprintf("%s/%d", host, prefixLen)
	}
	prefix, err := addr.Prefix(prefixLen)
	if err != nil {
		return fmt.Sprintf("%s/%d", host, prefixLen)
	}
	return prefix.String()
}

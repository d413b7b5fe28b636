package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testNode() *Node {
	return &Node{
		Name: "n1",
		Interfaces: []Interface{
			{Name: "ctrl0", Control: true, Addrs: []string{"172.16.0.1/24"}},
			{Name: "eth0", Addrs: []string{"2001:db8::1/64", "10.0.0.5/32"}},
			{Name: "eth1", Addrs: []string{"10.0.1.1/24"}},
		},
	}
}

func TestDataInterfaces(t *testing.T) {
	n := testNode()

	assert.Equal(t, []string{"eth0", "eth1"}, n.DataInterfaceNames())
	assert.Equal(t, []string{"ctrl0", "eth0", "eth1"}, n.InterfaceNames())
	assert.True(t, n.HasDataInterfaces())
}

func TestDataInterfaces_OnlyControl(t *testing.T) {
	n := &Node{
		Name:       "n2",
		Interfaces: []Interface{{Name: "ctrl0", Control: true}},
	}

	assert.Empty(t, n.DataInterfaces())
	assert.Empty(t, n.DataInterfaceNames())
	assert.False(t, n.HasDataInterfaces())
}

func TestFirstIPv4Prefix(t *testing.T) {
	tests := []struct {
		name      string
		node      *Node
		prefixLen int
		want      string
		wantFound bool
	}{
		{
			name:      "host address recomputed to network",
			node:      &Node{Interfaces: []Interface{{Name: "eth0", Addrs: []string{"10.0.0.5/32"}}}},
			prefixLen: 24,
			want:      "10.0.0.0/24",
			wantFound: true,
		},
		{
			name:      "address without length",
			node:      &Node{Interfaces: []Interface{{Name: "eth0", Addrs: []string{"192.168.7.9"}}}},
			prefixLen: 16,
			want:      "192.168.0.0/16",
			wantFound: true,
		},
		{
			name:      "control interface skipped, ipv6 skipped",
			node:      testNode(),
			prefixLen: 24,
			want:      "10.0.0.0/24",
			wantFound: true,
		},
		{
			name:      "no ipv4 anywhere",
			node:      &Node{Interfaces: []Interface{{Name: "eth0", Addrs: []string{"2001:db8::1/64"}}}},
			prefixLen: 24,
			want:      "0.0.0.0/24",
		},
		{
			name:      "ipv4 only on control interface",
			node:      &Node{Interfaces: []Interface{{Name: "ctrl0", Control: true, Addrs: []string{"172.16.0.1/24"}}}},
			prefixLen: 24,
			want:      "0.0.0.0/24",
		},
		{
			name:      "no interfaces",
			node:      &Node{Name: "empty"},
			prefixLen: 8,
			want:      "0.0.0.0/8",
		},
		{
			name:      "ipv4-mapped ipv6 address unmapped",
			node:      &Node{Interfaces: []Interface{{Name: "eth0", Addrs: []string{"::ffff:10.0.0.5/128"}}}},
			prefixLen: 24,
			want:      "10.0.0.0/24",
			wantFound: true,
		},
		{
			name:      "malformed address propagated verbatim",
			node:      &Node{Interfaces: []Interface{{Name: "eth0", Addrs: []string{"300.1.2.3/24"}}}},
			prefixLen: 24,
			want:      "300.1.2.3/24",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := LookupIPv4Prefix(tt.node, tt.prefixLen)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, FirstIPv4Prefix(tt.node, tt.prefixLen))
		})
	}
}

func TestSysctlDevName(t *testing.T) {
	assert.Equal(t, "eth0", SysctlDevName("eth0"))
	assert.Equal(t, "eth0/10", SysctlDevName("eth0.10"))
}

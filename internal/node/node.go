// Package node is the read-only view of an emulated node that the generators
// consume: its name and its interfaces in declared order.
package node

import "strings"

// Interface is one network interface of an emulated node
type Interface struct {
	Name    string   // Device name (e.g., "eth0")
	Control bool     // true for the management-only control interface
	Addrs   []string // Addresses in declared order, IPv4 or IPv6, optional "/len"
}

// Node is an emulated node as seen by the service generators
type Node struct {
	Name       string
	Interfaces []Interface
}

// DataInterfaces returns the non-control interfaces in declared order
func (n *Node) DataInterfaces() []Interface {
	var result []Interface
	for _, ifc := range n.Interfaces {
		if ifc.Control {
			continue
		}
		result = append(result, ifc)
	}
	return result
}

// InterfaceNames returns the names of every interface, control ones included
func (n *Node) InterfaceNames() []string {
	names := make([]string, 0, len(n.Interfaces))
	for _, ifc := range n.Interfaces {
		names = append(names, ifc.Name)
	}
	return names
}

// DataInterfaceNames returns the names of the non-control interfaces
func (n *Node) DataInterfaceNames() []string {
	data := n.DataInterfaces()
	names := make([]string, 0, len(data))
	for _, ifc := range data {
		names = append(names, ifc.Name)
	}
	return names
}

// HasDataInterfaces reports whether the node has at least one non-control interface
func (n *Node) HasDataInterfaces() bool {
	return len(n.DataInterfaces()) > 0
}

// SysctlDevName converts an interface name to the form used under
// /proc/sys/net, where VLAN dots become slashes (eth0.10 -> eth0/10)
func SysctlDevName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

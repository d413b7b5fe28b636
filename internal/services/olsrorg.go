package services

import "github.com/danieljhkim/nrlgen/internal/node"

const olsrdConfPath = "/etc/olsrd/olsrd.conf"

// olsrdConf configures olsrd for an emulated MANET: ETX link quality,
// fisheye off, and the limited broadcast address on every interface so
// that control traffic reaches neighbours regardless of subnet.
const olsrdConf = `#
# olsrd configuration generated by nrlgen
# ETX based stationary network without fisheye
# (see olsrd.conf.default.full for the complete option list)
#

# DebugLevel  1
# IpVersion 4
# FIBMetric "flat"

##############################
### OLSR protocol settings ###
##############################

# HNA4 syntax: "network-address network-mask"
Hna4
{
}

# HNA6 syntax: "network-address prefix-length"
Hna6
{
}

################################
### OLSR protocol extensions ###
################################

# LinkQualityAlgorithm    "etx_ff"

# Fisheye mechanism for TCs (0 means off, 1 means on)
LinkQualityFishEye  0

#############################################
### OLSRD default interface configuration ###
#############################################

InterfaceDefaults {
    Ip4Broadcast      255.255.255.255
}
`

// olsrOrg is the olsr.org OLSR daemon
type olsrOrg struct {
	base
}

func newOLSROrg() *olsrOrg {
	return &olsrOrg{base: base{desc: Descriptor{
		Name:       NameOLSROrg,
		Group:      Group,
		StartIndex: DefaultStartIndex,
		Dirs:       []string{"/etc/olsrd"},
		Configs:    []string{olsrdConfPath},
		Startup:    []string{"olsrd"},
		Shutdown:   []string{"killall olsrd"},
		Validate:   []string{"pidof olsrd"},
	}}}
}

func (s *olsrOrg) Startup(n *node.Node, enabled EnabledSet) []string {
	data := n.DataInterfaceNames()
	if len(data) == 0 {
		return nil
	}
	args := append([]string{s.binary()}, interfaceFlags(data)...)
	return []string{command(args...)}
}

func (s *olsrOrg) Config(n *node.Node, filename string, enabled EnabledSet) string {
	return olsrdConf
}

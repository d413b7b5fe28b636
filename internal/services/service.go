package services

import (
	"strings"

	"github.com/danieljhkim/nrlgen/internal/node"
)

// Service is one daemon kind. Startup and Config are pure functions of
// their arguments. A nil startup tuple means the daemon must not be
// started on this node; an empty config means no file is generated.
type Service interface {
	Descriptor() Descriptor
	Startup(n *node.Node, enabled EnabledSet) []string
	Config(n *node.Node, filename string, enabled EnabledSet) string
}

// base provides the descriptor and the default behaviour: the descriptor's
// startup templates, and no generated config
type base struct {
	desc Descriptor
}

func (b base) Descriptor() Descriptor {
	return b.desc.Clone()
}

func (b base) Startup(n *node.Node, enabled EnabledSet) []string {
	return NewTemplateContext(n).SubstituteAll(b.desc.Startup)
}

func (b base) Config(n *node.Node, filename string, enabled EnabledSet) string {
	return ""
}

// binary is the executable named by the first startup template
func (b base) binary() string {
	if len(b.desc.Startup) == 0 {
		return ""
	}
	return b.desc.Startup[0]
}

// Per-node resources created by SMF for its peers
const (
	smfPipe    = "{{NODE}}_smf"
	smfTap     = "{{NODE}}_tap"
	smfPipeDir = "/tmp"
)

// interfaceFlags renders one "-i <name>" pair per interface
func interfaceFlags(names []string) []string {
	flags := make([]string, 0, 2*len(names))
	for _, name := range names {
		flags = append(flags, "-i", name)
	}
	return flags
}

func command(args ...string) string {
	return strings.Join(args, " ")
}

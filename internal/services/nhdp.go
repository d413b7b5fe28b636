package services

import "github.com/danieljhkim/nrlgen/internal/node"

// nhdp is the NeighborHood Discovery Protocol daemon
type nhdp struct {
	base
}

func newNHDP() *nhdp {
	return &nhdp{base: base{desc: Descriptor{
		Name:       NameNHDP,
		Group:      Group,
		StartIndex: DefaultStartIndex,
		Startup:    []string{"nrlnhdp"},
		Shutdown:   []string{"killall nrlnhdp"},
		Validate:   []string{"pidof nrlnhdp"},
	}}}
}

func (s *nhdp) Startup(n *node.Node, enabled EnabledSet) []string {
	data := n.DataInterfaceNames()
	if len(data) == 0 {
		return nil
	}

	ctx := NewTemplateContext(n)
	args := []string{s.binary(),
		"-l", "/var/log/nrlnhdp.log",
		"-rpipe", ctx.Substitute("{{NODE}}_nhdp"),
	}
	if enabled.Has(NameSMF) {
		args = append(args, "-flooding", "ecds", "-smfClient", ctx.Substitute(smfPipe))
	}
	args = append(args, interfaceFlags(data)...)

	return []string{command(args...)}
}

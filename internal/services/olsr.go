package services

import "github.com/danieljhkim/nrlgen/internal/node"

// olsr is NRL's OLSR (v1) daemon. It only supports a single interface.
type olsr struct {
	base
}

func newOLSR() *olsr {
	return &olsr{base: base{desc: Descriptor{
		Name:       NameOLSR,
		Group:      Group,
		StartIndex: DefaultStartIndex,
		Startup:    []string{"nrlolsrd"},
		Shutdown:   []string{"killall nrlolsrd"},
		Validate:   []string{"pidof nrlolsrd"},
	}}}
}

func (s *olsr) Startup(n *node.Node, enabled EnabledSet) []string {
	data := n.DataInterfaceNames()
	if len(data) == 0 {
		return nil
	}

	ctx := NewTemplateContext(n)
	args := []string{s.binary(),
		"-i", data[0],
		"-l", "/var/log/nrlolsrd.log",
		"-rpipe", ctx.Substitute("{{NODE}}_olsr"),
	}
	// with NHDP present SMF floods with ecds, which OLSR v1 cannot drive
	if enabled.Has(NameSMF) && !enabled.Has(NameNHDP) {
		args = append(args, "-flooding", "s-mpr", "-smfClient", ctx.Substitute(smfPipe))
	}
	if enabled.Has(NameZebra) {
		args = append(args, "-z")
	}

	return []string{command(args...)}
}

// olsrv2 is NRL's OLSRv2 daemon
type olsrv2 struct {
	base
}

func newOLSRv2() *olsrv2 {
	return &olsrv2{base: base{desc: Descriptor{
		Name:       NameOLSRv2,
		Group:      Group,
		StartIndex: DefaultStartIndex,
		Startup:    []string{"nrlolsrv2"},
		Shutdown:   []string{"killall nrlolsrv2"},
		Validate:   []string{"pidof nrlolsrv2"},
	}}}
}

func (s *olsrv2) Startup(n *node.Node, enabled EnabledSet) []string {
	data := n.DataInterfaceNames()
	if len(data) == 0 {
		return nil
	}

	ctx := NewTemplateContext(n)
	args := []string{s.binary(),
		"-l", "/var/log/nrlolsrv2.log",
		"-rpipe", ctx.Substitute("{{NODE}}_olsrv2"),
	}
	if enabled.Has(NameSMF) {
		args = append(args, "-flooding", "ecds", "-smfClient", ctx.Substitute(smfPipe))
	}
	args = append(args, "-p", "olsr")
	args = append(args, interfaceFlags(data)...)

	return []string{command(args...)}
}

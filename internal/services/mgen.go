package services

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/nrlgen/internal/node"
)

const (
	mgenSinkConfig = "sink.mgen"
	mgenSinkPort   = 5000
	mgenSinkGroup  = "224.225.1.2"

	mgenActorScript = "start_mgen_actor.sh"
)

// mgenSink listens for MGEN test traffic. It joins the multicast group on
// every interface, control interfaces included.
type mgenSink struct {
	base
}

func newMgenSink() *mgenSink {
	return &mgenSink{base: base{desc: Descriptor{
		Name:       NameMgenSink,
		Group:      Group,
		StartIndex: 5,
		Configs:    []string{mgenSinkConfig},
		Startup:    []string{"mgen input " + mgenSinkConfig + " output /tmp/mgen_{{NODE}}.log"},
		Shutdown:   []string{"killall mgen"},
		Validate:   []string{"pidof mgen"},
	}}}
}

func (s *mgenSink) Config(n *node.Node, filename string, enabled EnabledSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0.0 LISTEN UDP %d\n", mgenSinkPort)
	for _, name := range n.InterfaceNames() {
		fmt.Fprintf(&sb, "0.0 Join %s INTERFACE %s\n", mgenSinkGroup, node.SysctlDevName(name))
	}
	return sb.String()
}

// mgenActor runs the MGEN basic actor bound to the wildcard address.
// The actor stays in the foreground, so it is wrapped in a script.
type mgenActor struct {
	base
}

func newMgenActor() *mgenActor {
	return &mgenActor{base: base{desc: Descriptor{
		Name:       NameMgenActor,
		Group:      Group,
		StartIndex: 50,
		Configs:    []string{mgenActorScript},
		Startup:    []string{"sh " + mgenActorScript},
		Shutdown:   []string{"killall mgen"},
		Validate:   []string{"pidof mgen"},
	}}}
}

func (s *mgenActor) Startup(n *node.Node, enabled EnabledSet) []string {
	if !n.HasDataInterfaces() {
		return nil
	}
	return s.base.Startup(n, enabled)
}

func (s *mgenActor) Config(n *node.Node, filename string, enabled EnabledSet) string {
	if !n.HasDataInterfaces() {
		return ""
	}
	sc := newScript(NameMgenActor)
	sc.detach(command("mgenBasicActor.py", "-n", n.Name, "-a", "0.0.0.0"), "/dev/null")
	return sc.String()
}

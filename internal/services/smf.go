package services

import (
	"strings"

	"github.com/danieljhkim/nrlgen/internal/node"
)

const (
	smfScript          = "startsmf.sh"
	smfLog             = "/var/log/nrlsmf.log"
	smfDefaultFlooding = "cf"
)

// smfFlooding picks SMF's flooding algorithm from the co-resident routing
// protocol. NHDP outranks OLSR when both are enabled.
var smfFlooding = []rule{
	{peer: NameNHDP, value: "ecds"},
	{peer: NameOLSR, value: "smpr"},
}

// smf is Simplified Multicast Forwarding. nrlsmf does not daemonize, so it
// is launched through a generated wrapper script.
type smf struct {
	base
	prefix prefixResolver
}

func newSMF(prefix prefixResolver) *smf {
	return &smf{
		base: base{desc: Descriptor{
			Name:       NameSMF,
			Group:      Group,
			StartIndex: DefaultStartIndex,
			Configs:    []string{smfScript},
			Startup:    []string{"sh " + smfScript},
			Shutdown:   []string{"killall nrlsmf"},
			Validate:   []string{"pidof nrlsmf"},
		}},
		prefix: prefix,
	}
}

func (s *smf) Startup(n *node.Node, enabled EnabledSet) []string {
	if !n.HasDataInterfaces() {
		return nil
	}
	return s.base.Startup(n, enabled)
}

func (s *smf) Config(n *node.Node, filename string, enabled EnabledSet) string {
	data := n.DataInterfaceNames()
	if len(data) == 0 {
		return ""
	}

	ctx := NewTemplateContext(n)
	sc := newScript(NameSMF)
	args := []string{"nrlsmf", "instance", ctx.Substitute(smfPipe)}

	// arouted exchanges unicast traffic with SMF over a tap device
	if enabled.Has(NameArouted) {
		sc.comment("%s service is enabled", NameArouted)
		args = append(args,
			"tap", ctx.Substitute(smfTap),
			"unicast", s.prefix.resolve(n, NameSMF),
			"push", "lo,"+data[0], "resequence", "on",
		)
	}

	mode := smfDefaultFlooding
	if r, ok := firstMatch(enabled, smfFlooding); ok {
		sc.comment("%s service is enabled", r.peer)
		mode = r.value
	}
	args = append(args, mode, strings.Join(data, ","))
	args = append(args, "hash", "MD5", "log", smfLog)

	sc.detach(command(args...), "/dev/null")
	return sc.String()
}

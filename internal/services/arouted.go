package services

import (
	"path"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/nrlgen/internal/barrier"
	"github.com/danieljhkim/nrlgen/internal/node"
)

const (
	aroutedScript = "startarouted.sh"
	aroutedLog    = "/var/log/arouted.log"

	// seconds a new route must persist before arouted considers it valid
	aroutedStability = 10
)

// arouted is the adaptive routing daemon. It attaches to SMF's pipe and tap
// device, and SMF creates the pipe asynchronously, so the wrapper script
// waits for the pipe before launching.
type arouted struct {
	base
	barrier barrier.Barrier
	prefix  prefixResolver
	log     zerolog.Logger
}

func newArouted(b barrier.Barrier, prefix prefixResolver, log zerolog.Logger) *arouted {
	return &arouted{
		base: base{desc: Descriptor{
			Name:       NameArouted,
			Group:      Group,
			StartIndex: DefaultStartIndex + 10,
			Configs:    []string{aroutedScript},
			Startup:    []string{"sh " + aroutedScript},
			Shutdown:   []string{"pkill arouted"},
			Validate:   []string{"pidof arouted"},
		}},
		barrier: b,
		prefix:  prefix,
		log:     log,
	}
}

func (s *arouted) Config(n *node.Node, filename string, enabled EnabledSet) string {
	if !enabled.Has(NameSMF) {
		s.log.Warn().
			Str("node", n.Name).
			Msg("arouted enabled without SMF, its startup will fail waiting for the SMF pipe")
	}

	ctx := NewTemplateContext(n)
	pipe := ctx.Substitute(smfPipe)
	prefix := s.prefix.resolve(n, NameArouted)

	sc := newScript(NameArouted)
	sc.comment("waits up to %s for the %s pipe", s.barrier.Timeout(), NameSMF)
	sc.wait(s.barrier.Script(path.Join(smfPipeDir, pipe)))
	sc.run(command("ip", "route", "add", prefix, "dev", "lo"))
	sc.detach(command("arouted",
		"instance", pipe,
		"tap", ctx.Substitute(smfTap),
		"stability", strconv.Itoa(aroutedStability),
	), aroutedLog)

	return sc.String()
}

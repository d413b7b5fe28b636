package services

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/nrlgen/internal/node"
)

// prefixResolver derives the node network used for unicast routes and
// reports when it had to fall back to the sentinel
type prefixResolver struct {
	prefixLen int
	log       zerolog.Logger
}

func (r prefixResolver) resolve(n *node.Node, service string) string {
	prefix, found := node.LookupIPv4Prefix(n, r.prefixLen)
	if !found {
		r.log.Warn().
			Str("node", n.Name).
			Str("service", service).
			Str("prefix", prefix).
			Msg("no IPv4 address on a data interface, using sentinel network")
	}
	return prefix
}

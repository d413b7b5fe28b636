package generator

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/nrlgen/internal/node"
	"github.com/danieljhkim/nrlgen/internal/services"
)

// ErrUnknownConfig is returned when a filename is not declared by the service
var ErrUnknownConfig = errors.New("unknown config file")

// Generator resolves startup commands and generated files for a node.
// Errors only signal caller bugs (unknown service or file names); node
// data never makes generation fail.
type Generator struct {
	catalog *services.Catalog
	log     zerolog.Logger
}

// NewGenerator creates a generator over catalog
func NewGenerator(catalog *services.Catalog, log zerolog.Logger) *Generator {
	return &Generator{
		catalog: catalog,
		log:     log.With().Str("component", "generator").Logger(),
	}
}

// HasService checks if name is a generated service
func (g *Generator) HasService(name string) bool {
	return g.catalog.Has(name)
}

// List returns every service descriptor in start order
func (g *Generator) List() []services.Descriptor {
	list := g.catalog.List()
	descs := make([]services.Descriptor, 0, len(list))
	for _, s := range list {
		descs = append(descs, s.Descriptor())
	}
	return descs
}

// Descriptor returns the descriptor of one service
func (g *Generator) Descriptor(name string) (services.Descriptor, error) {
	svc, err := g.catalog.Get(name)
	if err != nil {
		return services.Descriptor{}, err
	}
	return svc.Descriptor(), nil
}

// GenerateConfig renders one declared config file of a service
func (g *Generator) GenerateConfig(name string, n *node.Node, filename string, enabled services.EnabledSet) (string, error) {
	svc, err := g.catalog.Get(name)
	if err != nil {
		return "", err
	}
	if !svc.Descriptor().HasConfig(filename) {
		return "", fmt.Errorf("%w: %s does not declare %q", ErrUnknownConfig, name, filename)
	}
	return svc.Config(n, filename, enabled), nil
}

// Startup returns the startup command tuple of a service on n. A nil
// result means the service must not be started on this node.
func (g *Generator) Startup(name string, n *node.Node, enabled services.EnabledSet) ([]string, error) {
	svc, err := g.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	return svc.Startup(n, enabled), nil
}

// Shutdown returns the shutdown commands of a service on n
func (g *Generator) Shutdown(name string, n *node.Node) ([]string, error) {
	svc, err := g.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	return services.NewTemplateContext(n).SubstituteAll(svc.Descriptor().Shutdown), nil
}

// Validate returns the commands that check a service is running on n
func (g *Generator) Validate(name string, n *node.Node) ([]string, error) {
	svc, err := g.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	return services.NewTemplateContext(n).SubstituteAll(svc.Descriptor().Validate), nil
}

// Plan resolves every enabled service on n, in start order. Enabled names
// the catalog does not generate (such as zebra) are ignored.
func (g *Generator) Plan(n *node.Node, enabled services.EnabledSet) *Plan {
	plan := &Plan{
		Node:    n.Name,
		Enabled: enabled.Names(),
	}

	for _, svc := range g.catalog.Enabled(enabled) {
		d := svc.Descriptor()
		ctx := services.NewTemplateContext(n)

		sp := ServicePlan{
			Name:       d.Name,
			StartIndex: d.StartIndex,
			Dirs:       d.Dirs,
			Startup:    svc.Startup(n, enabled),
			Shutdown:   ctx.SubstituteAll(d.Shutdown),
			Validate:   ctx.SubstituteAll(d.Validate),
		}
		sp.Skipped = len(sp.Startup) == 0

		for _, filename := range d.Configs {
			content := svc.Config(n, filename, enabled)
			if content == "" {
				continue
			}
			sp.Files = append(sp.Files, File{Name: filename, Content: content})
		}

		g.log.Debug().
			Str("node", n.Name).
			Str("service", d.Name).
			Int("files", len(sp.Files)).
			Bool("skipped", sp.Skipped).
			Msg("resolved service")

		plan.Services = append(plan.Services, sp)
	}

	return plan
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/nrlgen/internal/barrier"
	"github.com/danieljhkim/nrlgen/internal/node"
)

// ErrUnknownService is returned when a name is not in the catalog
var ErrUnknownService = errors.New("unknown service")

// Options tunes the generated artifacts
type Options struct {
	Barrier   barrier.Barrier // wait applied before arouted launches
	PrefixLen int             // prefix length of the derived node network
	Logger    zerolog.Logger
}

// DefaultOptions returns the 10 x 100ms barrier, /24 networks and no logging
func DefaultOptions() Options {
	return Options{
		Barrier:   barrier.Default(),
		PrefixLen: node.DefaultPrefixLen,
		Logger:    zerolog.Nop(),
	}
}

// Catalog is the read-only set of known services keyed by name
type Catalog struct {
	services map[string]Service
}

// NewCatalog creates a catalog with every built-in service
func NewCatalog(opts Options) *Catalog {
	if opts.PrefixLen <= 0 {
		opts.PrefixLen = node.DefaultPrefixLen
	}
	if opts.Barrier.Validate() != nil {
		opts.Barrier = barrier.Default()
	}
	log := opts.Logger.With().Str("component", "services").Logger()
	prefix := prefixResolver{prefixLen: opts.PrefixLen, log: log}

	c := &Catalog{services: make(map[string]Service)}
	c.register(newMgenSink())
	c.register(newNHDP())
	c.register(newSMF(prefix))
	c.register(newOLSR())
	c.register(newOLSRv2())
	c.register(newOLSROrg())
	c.register(newMgenActor())
	c.register(newArouted(opts.Barrier, prefix, log))
	return c
}

// Default returns the shared catalog built with DefaultOptions
var Default = sync.OnceValue(func() *Catalog {
	return NewCatalog(DefaultOptions())
})

func (c *Catalog) register(s Service) {
	c.services[s.Descriptor().Name] = s
}

// Get retrieves a service by name
func (c *Catalog) Get(name string) (Service, error) {
	s, ok := c.services[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
	return s, nil
}

// Has checks if a service exists in the catalog
func (c *Catalog) Has(name string) bool {
	_, ok := c.services[name]
	return ok
}

// List returns all services in start order (start index, then name)
func (c *Catalog) List() []Service {
	list := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		list = append(list, s)
	}
	sortByStart(list)
	return list
}

// Names returns all service names in start order
func (c *Catalog) Names() []string {
	list := c.List()
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Descriptor().Name)
	}
	return names
}

// Enabled returns the catalog services present in enabled, in start order.
// Names the catalog does not know (such as zebra) are left out.
func (c *Catalog) Enabled(enabled EnabledSet) []Service {
	var list []Service
	for name := range enabled {
		if s, ok := c.services[name]; ok {
			list = append(list, s)
		}
	}
	sortByStart(list)
	return list
}

func sortByStart(list []Service) {
	sort.Slice(list, func(i, j int) bool {
		di, dj := list[i].Descriptor(), list[j].Descriptor()
		if di.StartIndex != dj.StartIndex {
			return di.StartIndex < dj.StartIndex
		}
		return di.Name < dj.Name
	})
}

package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/nrlgen/internal/node"
	"github.com/danieljhkim/nrlgen/internal/services"
)

// Scenario describes the emulated nodes to generate artifacts for
type Scenario struct {
	Defaults ScenarioDefaults `yaml:"defaults"`
	Nodes    []ScenarioNode   `yaml:"nodes" validate:"required,min=1,dive"`
}

// ScenarioDefaults applies to every node unless the node disables it
type ScenarioDefaults struct {
	Services []string `yaml:"services" validate:"dive,required"`
}

// ScenarioNode is one node with its interfaces and enabled services.
// The node's services are added to the defaults; Disable removes names.
type ScenarioNode struct {
	Name       string              `yaml:"name" validate:"required"`
	Services   []string            `yaml:"services" validate:"dive,required"`
	Disable    []string            `yaml:"disable" validate:"dive,required"`
	Interfaces []ScenarioInterface `yaml:"interfaces" validate:"dive"`
}

// ScenarioInterface is one network interface of a node
type ScenarioInterface struct {
	Name    string   `yaml:"name" validate:"required"`
	Control bool     `yaml:"control"`
	Addrs   []string `yaml:"addrs" validate:"dive,required"`
}

// LoadScenario reads and validates a scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates scenario YAML
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints and that node names are unique
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	seen := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, ok := seen[n.Name]; ok {
			return fmt.Errorf("invalid scenario: duplicate node %q", n.Name)
		}
		seen[n.Name] = struct{}{}
	}
	return nil
}

// Node returns the named node, or an error if the scenario does not have it
func (s *Scenario) Node(name string) (*ScenarioNode, error) {
	for i := range s.Nodes {
		if s.Nodes[i].Name == name {
			return &s.Nodes[i], nil
		}
	}
	return nil, fmt.Errorf("node %q not found in scenario", name)
}

// NodeNames returns the node names in file order
func (s *Scenario) NodeNames() []string {
	names := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		names = append(names, n.Name)
	}
	return names
}

// Enabled merges the scenario defaults with the node's own services
func (s *Scenario) Enabled(n *ScenarioNode) services.EnabledSet {
	enabled := services.NewEnabledSet(s.Defaults.Services...)
	for _, name := range n.Services {
		enabled[name] = struct{}{}
	}
	for _, name := range n.Disable {
		delete(enabled, name)
	}
	return enabled
}

// UnknownServices returns the enabled names that known does not accept and
// that are not a recognised external peer, sorted
func (s *Scenario) UnknownServices(known func(name string) bool) []string {
	unknown := make(map[string]struct{})
	for i := range s.Nodes {
		for name := range s.Enabled(&s.Nodes[i]) {
			if !known(name) && name != services.NameZebra {
				unknown[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(unknown))
	for name := range unknown {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToNode converts the scenario entry into the read-only node view
func (n *ScenarioNode) ToNode() *node.Node {
	ifaces := make([]node.Interface, 0, len(n.Interfaces))
	for _, ifc := range n.Interfaces {
		ifaces = append(ifaces, node.Interface{
			Name:    ifc.Name,
			Control: ifc.Control,
			Addrs:   append([]string(nil), ifc.Addrs...),
		})
	}
	return &node.Node{Name: n.Name, Interfaces: ifaces}
}

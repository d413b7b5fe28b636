package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/danieljhkim/nrlgen/internal/config/generator"
	"github.com/danieljhkim/nrlgen/internal/util"
)

// OutputManager renders scenario nodes into an output directory and
// inspects what was rendered there
type OutputManager struct {
	destDir string
	gen     *generator.Generator
}

// NewOutputManager creates an output manager writing below destDir
func NewOutputManager(destDir string, gen *generator.Generator) *OutputManager {
	return &OutputManager{
		destDir: destDir,
		gen:     gen,
	}
}

// Dir returns the output directory
func (om *OutputManager) Dir() string {
	return om.destDir
}

// Apply renders the named nodes of s (all nodes when names is empty) and
// returns the plans in scenario order
func (om *OutputManager) Apply(s *Scenario, names ...string) ([]*generator.Plan, error) {
	selected := s.Nodes
	if len(names) > 0 {
		selected = make([]ScenarioNode, 0, len(names))
		for _, name := range names {
			sn, err := s.Node(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, *sn)
		}
	}

	if err := util.MkdirAll(om.destDir); err != nil {
		return nil, err
	}

	plans := make([]*generator.Plan, 0, len(selected))
	for i := range selected {
		sn := &selected[i]
		plan := om.gen.Plan(sn.ToNode(), s.Enabled(sn))
		if _, err := generator.WritePlan(plan, om.destDir); err != nil {
			return nil, fmt.Errorf("failed to render node '%s': %w", sn.Name, err)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// List returns a sorted list of rendered node names
func (om *OutputManager) List() ([]string, error) {
	if !util.DirExists(om.destDir) {
		return nil, fmt.Errorf("nothing rendered in %s. Run: nrlgen render -f <scenario>", om.destDir)
	}

	entries, err := os.ReadDir(om.destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var nodes []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if util.FileExists(filepath.Join(om.destDir, entry.Name(), generator.ManifestFile)) {
			nodes = append(nodes, entry.Name())
		}
	}

	sort.Strings(nodes)
	return nodes, nil
}

// Check verifies that every file listed in a node's manifest exists
func (om *OutputManager) Check(nodeName string) (*generator.Plan, error) {
	nodeDir := filepath.Join(om.destDir, nodeName)
	if !util.DirExists(nodeDir) {
		return nil, fmt.Errorf("node '%s' not rendered (expected: %s)", nodeName, nodeDir)
	}

	plan, err := generator.ReadManifest(nodeDir)
	if err != nil {
		return nil, fmt.Errorf("node '%s': %w", nodeName, err)
	}

	for _, sp := range plan.Services {
		for _, f := range sp.Files {
			path := generator.FilePath(nodeDir, f.Name)
			if !util.FileExists(path) {
				return plan, fmt.Errorf("missing %s file for node '%s': %s", sp.Name, nodeName, path)
			}
		}
	}

	return plan, nil
}

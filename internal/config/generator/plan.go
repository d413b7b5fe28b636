package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/nrlgen/internal/util"
)

// ManifestFile is the name of the per-node manifest written by WritePlan
const ManifestFile = "plan.yaml"

// Plan is everything the orchestrator needs to bring up one node
type Plan struct {
	Node     string        `yaml:"node"`
	Enabled  []string      `yaml:"enabled"`
	Services []ServicePlan `yaml:"services"`
}

// ServicePlan is one resolved service. Skipped services have no startup
// tuple and must not be launched.
type ServicePlan struct {
	Name       string   `yaml:"name"`
	StartIndex int      `yaml:"start_index"`
	Skipped    bool     `yaml:"skipped,omitempty"`
	Dirs       []string `yaml:"dirs,omitempty"`
	Files      []File   `yaml:"files,omitempty"`
	Startup    []string `yaml:"startup,omitempty"`
	Shutdown   []string `yaml:"shutdown,omitempty"`
	Validate   []string `yaml:"validate,omitempty"`
}

// File is one generated config file or wrapper script
type File struct {
	Name    string `yaml:"name"`
	Content string `yaml:"-"`
}

// Mode returns the permission bits for the file: scripts are executable
func (f File) Mode() os.FileMode {
	if strings.HasSuffix(f.Name, ".sh") {
		return 0755
	}
	return 0644
}

// Service returns the plan entry for name, or nil
func (p *Plan) Service(name string) *ServicePlan {
	for i := range p.Services {
		if p.Services[i].Name == name {
			return &p.Services[i]
		}
	}
	return nil
}

// StartOrder returns the names of the services to launch, in order
func (p *Plan) StartOrder() []string {
	var names []string
	for _, sp := range p.Services {
		if !sp.Skipped {
			names = append(names, sp.Name)
		}
	}
	return names
}

// Manifest renders the plan as YAML. File contents are not included.
func (p *Plan) Manifest() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return data, nil
}

// WritePlan writes the plan's files below destDir/<node>/ and returns that
// directory. Absolute config paths are re-rooted under the node directory
// (/etc/olsrd/olsrd.conf becomes <node>/etc/olsrd/olsrd.conf). Files left
// from a previous render of the node are removed first.
func WritePlan(plan *Plan, destDir string) (string, error) {
	if plan.Node == "" || plan.Node == "." || plan.Node == ".." || plan.Node != filepath.Base(plan.Node) {
		return "", fmt.Errorf("invalid node name %q", plan.Node)
	}
	nodeDir := filepath.Join(destDir, plan.Node)

	// No previous render - nothing stale to remove
	if util.DirExists(nodeDir) {
		if err := os.RemoveAll(nodeDir); err != nil {
			return "", fmt.Errorf("failed to remove stale output: %w", err)
		}
	}
	if err := util.MkdirAll(nodeDir); err != nil {
		return "", err
	}

	for _, sp := range plan.Services {
		for _, dir := range sp.Dirs {
			if err := util.MkdirAll(FilePath(nodeDir, dir)); err != nil {
				return "", fmt.Errorf("%s: %w", sp.Name, err)
			}
		}
		for _, f := range sp.Files {
			path := FilePath(nodeDir, f.Name)
			if err := util.MkdirAll(filepath.Dir(path)); err != nil {
				return "", fmt.Errorf("%s: %w", sp.Name, err)
			}
			if err := util.WriteFile(path, []byte(f.Content), f.Mode()); err != nil {
				return "", fmt.Errorf("%s: %s: %w", sp.Name, f.Name, err)
			}
		}
	}

	manifest, err := plan.Manifest()
	if err != nil {
		return "", err
	}
	if err := util.WriteFile(filepath.Join(nodeDir, ManifestFile), manifest, 0644); err != nil {
		return "", err
	}

	return nodeDir, nil
}

// ReadManifest loads the plan.yaml written for a node. File contents are
// not restored.
func ReadManifest(nodeDir string) (*Plan, error) {
	data, err := os.ReadFile(filepath.Join(nodeDir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	return &plan, nil
}

// FilePath places a declared file or dir name below a node directory,
// keeping the structure of absolute paths
func FilePath(root, name string) string {
	return filepath.Join(root, filepath.Clean("/"+name))
}

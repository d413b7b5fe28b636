package config

import (
	"os"
	"os/user"
	"path/filepath"
)

// HomeEnv overrides the default base directory
const HomeEnv = "NRLGEN_HOME"

// Paths holds the standard path locations used by nrlgen
type Paths struct {
	BaseDir string // Base directory for settings and default output ($NRLGEN_HOME)
}

// NewPaths creates a new Paths instance
// baseDir: base directory (empty string uses default)
func NewPaths(baseDir string) *Paths {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return &Paths{BaseDir: baseDir}
}

// DefaultBaseDir returns the default base directory: ${NRLGEN_HOME:-$HOME/.nrlgen}
func DefaultBaseDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}

	home := os.Getenv("HOME")
	if home == "" {
		// Fallback to user.Current if HOME not set
		if currentUser, err := user.Current(); err == nil {
			home = currentUser.HomeDir
		}
	}

	return filepath.Join(home, ".nrlgen")
}

// SettingsFile returns the settings file path: $BASE_DIR/nrlgen.yaml
func (p *Paths) SettingsFile() string {
	return filepath.Join(p.BaseDir, "nrlgen.yaml")
}

// OutputDir returns the default render destination: $BASE_DIR/out
func (p *Paths) OutputDir() string {
	return filepath.Join(p.BaseDir, "out")
}

// NodeDir returns the directory holding one node's generated files
// $BASE_DIR/out/<node>
func (p *Paths) NodeDir(node string) string {
	return filepath.Join(p.OutputDir(), node)
}

package env

import (
	"os/exec"
	"sort"
	"strings"

	"github.com/danieljhkim/nrlgen/internal/services"
)

// Detector reports whether a command is available
type Detector interface {
	IsInstalled(command string) bool
}

// ToolDetector provides generic command detection
type ToolDetector struct{}

// NewToolDetector creates a new tool detector
func NewToolDetector() *ToolDetector {
	return &ToolDetector{}
}

// IsInstalled checks if a command is available in PATH
func (t *ToolDetector) IsInstalled(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// DetectAll detects all given tools and returns their installation status
func (t *ToolDetector) DetectAll(tools []string) map[string]bool {
	results := make(map[string]bool)
	for _, tool := range tools {
		results[tool] = t.IsInstalled(tool)
	}
	return results
}

// Binaries returns the daemon executables a service runs, taken from its
// "pidof <binary>" validate commands
func Binaries(d services.Descriptor) []string {
	seen := make(map[string]bool)
	var bins []string
	for _, v := range d.Validate {
		fields := strings.Fields(v)
		if len(fields) != 2 || fields[0] != "pidof" {
			continue
		}
		if !seen[fields[1]] {
			seen[fields[1]] = true
			bins = append(bins, fields[1])
		}
	}
	sort.Strings(bins)
	return bins
}

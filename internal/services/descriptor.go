package services

// Group is the display group every NRL service belongs to
const Group = "ProtoSvc"

// DefaultStartIndex is the start index shared by the routing daemons
const DefaultStartIndex = 45

// Descriptor is the static metadata of one daemon kind. Lower start indices
// start earlier. Startup entries may contain {{NODE}}.
type Descriptor struct {
	Name       string   `yaml:"name"`
	Group      string   `yaml:"group"`
	StartIndex int      `yaml:"start_index"`
	Dirs       []string `yaml:"dirs,omitempty"`
	Configs    []string `yaml:"configs,omitempty"`
	Startup    []string `yaml:"startup,omitempty"`
	Shutdown   []string `yaml:"shutdown,omitempty"`
	Validate   []string `yaml:"validate,omitempty"`
}

// Clone creates a deep copy
func (d Descriptor) Clone() Descriptor {
	clone := d
	clone.Dirs = cloneStrings(d.Dirs)
	clone.Configs = cloneStrings(d.Configs)
	clone.Startup = cloneStrings(d.Startup)
	clone.Shutdown = cloneStrings(d.Shutdown)
	clone.Validate = cloneStrings(d.Validate)
	return clone
}

// HasConfig reports whether filename is one of the declared config files
func (d Descriptor) HasConfig(filename string) bool {
	for _, c := range d.Configs {
		if c == filename {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

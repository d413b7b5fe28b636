package services

import "sort"

// Service names. Zebra is not generated here but other daemons react to it.
const (
	NameMgenSink  = "MGEN_Sink"
	NameNHDP      = "NHDP"
	NameSMF       = "SMF"
	NameOLSR      = "OLSR"
	NameOLSRv2    = "OLSRv2"
	NameOLSROrg   = "OLSRORG"
	NameMgenActor = "MgenActor"
	NameArouted   = "arouted"
	NameZebra     = "zebra"
)

// EnabledSet is the set of service names active on one node
type EnabledSet map[string]struct{}

// NewEnabledSet builds a set from names; duplicates collapse
func NewEnabledSet(names ...string) EnabledSet {
	set := make(EnabledSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether name is enabled. A nil set has nothing enabled.
func (s EnabledSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the enabled names, sorted
func (s EnabledSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

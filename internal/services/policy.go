package services

// rule selects value when peer is enabled on the node
type rule struct {
	peer  string
	value string
}

// firstMatch walks rules in order and returns the first whose peer is
// enabled. The order of rules, not of the set, decides the winner.
func firstMatch(enabled EnabledSet, rules []rule) (rule, bool) {
	for _, r := range rules {
		if enabled.Has(r.peer) {
			return r, true
		}
	}
	return rule{}, false
}

package agenda

// CollapseState tracks which sections the operator has folded shut, keyed by
// section title. The zero value (or an empty map) means everything expanded,
// which is also the state every fresh aggregation resets to.
type CollapseState map[string]bool

// NewCollapseState returns the all-expanded state.
func NewCollapseState() CollapseState {
	return CollapseState{}
}

// Collapsed reports whether the titled section is folded shut.
func (s CollapseState) Collapsed(title string) bool {
	return s[title]
}

// Toggle flips one section's flag and leaves every other section alone.
// The receiver is not mutated; a new map is returned.
func (s CollapseState) Toggle(title string) CollapseState {
	next := make(CollapseState, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[title] = !s[title]
	return next
}

package options

// SelectionSet is the ordered set of option ids selected for one cell.
// An id appears at most once, earliest-selected first. A resolver wired
// by Store.Attach guards Toggle against ids that no longer exist.
type SelectionSet struct {
	ids     []string
	resolve func(id string) bool
}

// NewSelectionSet creates a selection seeded from the host cell's current
// value. Duplicate ids in the seed are dropped, keeping the first.
func NewSelectionSet(seed []string) *SelectionSet {
	sel := &SelectionSet{}
	for _, id := range seed {
		if !sel.Contains(id) {
			sel.ids = append(sel.ids, id)
		}
	}
	return sel
}

// Toggle removes the id if it is a member; otherwise appends it at the
// end, provided it resolves in the attached store. An unresolvable
// non-member is a no-op, which defends against stale UI references.
func (s *SelectionSet) Toggle(id string) {
	if s.RemoveIfPresent(id) {
		return
	}
	if s.resolve != nil && !s.resolve(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// RemoveIfPresent removes the id and reports whether it was a member.
// Removing an absent id is a no-op.
func (s *SelectionSet) RemoveIfPresent(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports membership
func (s *SelectionSet) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Ordered returns the selected ids in selection order
func (s *SelectionSet) Ordered() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Len returns the number of selected ids
func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// prune drops ids that no longer resolve, called when a store attaches
func (s *SelectionSet) prune() {
	if s.resolve == nil {
		return
	}
	kept := s.ids[:0]
	for _, id := range s.ids {
		if s.resolve(id) {
			kept = append(kept, id)
		}
	}
	s.ids = kept
}

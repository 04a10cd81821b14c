package model

// SeenSet is the cross-run memory of already-reported posting identities.
// Insertion order is preserved so eviction can drop the oldest entries
// first. Not safe for concurrent use; a run has a single writer.
type SeenSet struct {
	order []string
	index map[string]struct{}
}

// NewSeenSet builds a set from identities in insertion order. Duplicates
// are collapsed, keeping the earliest occurrence.
func NewSeenSet(identities ...string) *SeenSet {
	s := &SeenSet{index: make(map[string]struct{}, len(identities))}
	for _, id := range identities {
		s.Add(id)
	}
	return s
}

// Contains reports whether the identity has been recorded.
func (s *SeenSet) Contains(identity string) bool {
	_, ok := s.index[identity]
	return ok
}

// Add records an identity. Adding an existing identity is a no-op and does
// not refresh its position: eviction is by insertion age, not last access.
func (s *SeenSet) Add(identity string) {
	if s.Contains(identity) {
		return
	}
	s.index[identity] = struct{}{}
	s.order = append(s.order, identity)
}

// Len returns the number of recorded identities.
func (s *SeenSet) Len() int {
	return len(s.order)
}

// Truncate evicts the oldest entries until at most limit remain.
func (s *SeenSet) Truncate(limit int) {
	if limit < 0 || len(s.order) <= limit {
		return
	}
	evicted := s.order[:len(s.order)-limit]
	for _, id := range evicted {
		delete(s.index, id)
	}
	s.order = append([]string(nil), s.order[len(s.order)-limit:]...)
}

// Identities returns a copy of the recorded identities in insertion order.
// The result is never nil so it serializes as an empty JSON array.
func (s *SeenSet) Identities() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

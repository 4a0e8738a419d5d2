package ticker

// Source supplies the ordered items a ticker cycles through. Item returns
// the rendered visual for an index; callers always pass 0 <= i < Len().
//
// A Source should be a pointer (or otherwise reference-comparable) value:
// SetSource treats a source that compares equal to the current one as the
// same configuration and does nothing.
type Source interface {
	Len() int
	Item(i int) string
}

// SliceSource is a Source backed by a fixed slice of rendered strings.
type SliceSource struct {
	items []string
}

// NewSliceSource returns a SliceSource over the given visuals.
func NewSliceSource(items ...string) *SliceSource {
	return &SliceSource{items: items}
}

// Len returns the number of items.
func (s *SliceSource) Len() int { return len(s.items) }

// Item returns the visual at index i.
func (s *SliceSource) Item(i int) string { return s.items[i] }

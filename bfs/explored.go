package bfs

// ExploredSet holds the states already expanded by a search.
type ExploredSet struct {
	seen map[string]struct{}
}

// NewExploredSet returns an empty set sized for capacity states.
func NewExploredSet(capacity int) *ExploredSet {
	return &ExploredSet{seen: make(map[string]struct{}, capacity)}
}

// Add inserts state and reports whether it was not present before.
func (e *ExploredSet) Add(state string) bool {
	if _, ok := e.seen[state]; ok {
		return false
	}
	e.seen[state] = struct{}{}

	return true
}

// Contains reports whether state was expanded.
func (e *ExploredSet) Contains(state string) bool {
	_, ok := e.seen[state]

	return ok
}

// Len returns the number of expanded states.
func (e *ExploredSet) Len() int { return len(e.seen) }

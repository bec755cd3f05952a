package bfs

import "errors"

// ErrEmptyFrontier is returned by Remove when no nodes remain.
// ShortestPath converts it into the NoConnection outcome.
var ErrEmptyFrontier = errors.New("bfs: empty frontier")

// Frontier is the collection of discovered but not yet expanded nodes.
// Implementations do not deduplicate states; callers check ContainsState
// before Add.
type Frontier interface {
	// Add pushes n.
	Add(n Node)
	// Remove pops the next node according to the discipline, or returns
	// ErrEmptyFrontier.
	Remove() (Node, error)
	// ContainsState reports whether some node currently held has state.
	ContainsState(state string) bool
	// Empty reports whether no nodes are held.
	Empty() bool
	// Len returns the number of nodes held.
	Len() int
}

// states counts nodes per state so membership stays O(1) even if a caller
// does push duplicates.
type states map[string]int

func (s states) inc(state string) { s[state]++ }

func (s states) dec(state string) {
	if s[state] <= 1 {
		delete(s, state)
		return
	}
	s[state]--
}

// QueueFrontier removes the node inserted longest ago (FIFO).
type QueueFrontier struct {
	nodes []Node
	head  int
	index states
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{index: make(states)}
}

// Add appends n to the back of the queue.
func (q *QueueFrontier) Add(n Node) {
	q.nodes = append(q.nodes, n)
	q.index.inc(n.State)
}

// Remove pops the front of the queue.
func (q *QueueFrontier) Remove() (Node, error) {
	if q.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	n := q.nodes[q.head]
	q.nodes[q.head] = Node{}
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.nodes)/2 {
		q.nodes = append(q.nodes[:0], q.nodes[q.head:]...)
		q.head = 0
	}
	q.index.dec(n.State)

	return n, nil
}

// ContainsState reports whether state is queued.
func (q *QueueFrontier) ContainsState(state string) bool {
	_, ok := q.index[state]

	return ok
}

// Empty reports whether the queue holds no nodes.
func (q *QueueFrontier) Empty() bool { return q.Len() == 0 }

// Len returns the number of queued nodes.
func (q *QueueFrontier) Len() int { return len(q.nodes) - q.head }

// StackFrontier removes the node inserted most recently (LIFO). Searching
// with it is depth-first: it finds a path, not necessarily a shortest one.
type StackFrontier struct {
	nodes []Node
	index states
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier() *StackFrontier {
	return &StackFrontier{index: make(states)}
}

// Add pushes n on top of the stack.
func (s *StackFrontier) Add(n Node) {
	s.nodes = append(s.nodes, n)
	s.index.inc(n.State)
}

// Remove pops the top of the stack.
func (s *StackFrontier) Remove() (Node, error) {
	if len(s.nodes) == 0 {
		return Node{}, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes = s.nodes[:last]
	s.index.dec(n.State)

	return n, nil
}

// ContainsState reports whether state is on the stack.
func (s *StackFrontier) ContainsState(state string) bool {
	_, ok := s.index[state]

	return ok
}

// Empty reports whether the stack holds no nodes.
func (s *StackFrontier) Empty() bool { return len(s.nodes) == 0 }

// Len returns the number of stacked nodes.
func (s *StackFrontier) Len() int { return len(s.nodes) }

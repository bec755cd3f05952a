package bfs

// noParent marks the root node.
const noParent = -1

// Node is one state in the search tree.
//
// ID is the node's index in the arena that created it; Parent is the index
// of the node that produced it, or -1 for the root. Action is the movie that
// links the parent to State, empty for the root.
type Node struct {
	ID     int
	State  string
	Action string
	Parent int
	Depth  int
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool { return n.Parent == noParent }

// arena owns every node created by one search. Nodes are only appended,
// so a parent index is always smaller than its child's.
type arena struct {
	nodes []Node
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]Node, 0, capacity)}
}

// root allocates the root node for state.
func (a *arena) root(state string) Node {
	return a.alloc(state, "", noParent, 0)
}

// child allocates a node reached from parent through action.
func (a *arena) child(parent Node, action, state string) Node {
	return a.alloc(state, action, parent.ID, parent.Depth+1)
}

func (a *arena) alloc(state, action string, parent, depth int) Node {
	n := Node{ID: len(a.nodes), State: state, Action: action, Parent: parent, Depth: depth}
	a.nodes = append(a.nodes, n)

	return n
}

// path walks parent links from n to the root, collecting (action, state)
// for every non-root node, and returns them in root→n order.
func (a *arena) path(n Node) []Step {
	steps := make([]Step, 0, n.Depth)
	for cur := n; !cur.IsRoot(); cur = a.nodes[cur.Parent] {
		steps = append(steps, Step{MovieID: cur.Action, PersonID: cur.State})
	}
	// reverse to get source → target
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

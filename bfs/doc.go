// Package bfs finds the shortest chain of co-star links between two people
// in a core.Graph, reporting the movie that joins each consecutive pair.
//
// What
//
//   - Breadth-first search over the implicit person graph: two people are
//     adjacent when they starred in the same movie; the movie is the edge
//     label (the "action") and the person is the state.
//   - Returns a PathResult with one of three outcomes:
//   - SameOrigin:   source == target, zero degrees, no steps.
//   - Connected:    Steps holds (movie, person) pairs from source to target.
//   - NoConnection: the target is unreachable (within MaxDepth, if set).
//   - Exposes the building blocks on their own: Node, QueueFrontier,
//     StackFrontier and ExploredSet.
//
// Why
//
//	Every hop has weight 1. A FIFO frontier therefore pops all states at
//	distance k before any at distance k+1, so the first time the target is
//	popped its parent chain is a shortest path.
//
// Algorithm
//
//  1. Push the root node (state = source, no parent, no action).
//  2. Loop: remove the earliest node. If the frontier is empty the search is
//     exhausted (NoConnection).
//  3. If the node's state is the target, walk parent links to the root,
//     collecting (action, state), and reverse.
//  4. Otherwise expand Neighbors(state); push each co-star whose state is
//     neither explored nor already in the frontier.
//  5. Mark the state explored.
//
// Nodes live in an arena owned by one search; Node.Parent is an index into
// it, so parent chains are acyclic by construction (a parent is always
// allocated before its children).
//
// Complexity (V = people reached, E = co-star pairs scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the arena, frontier and explored set
//
// Usage
//
//	res, err := bfs.ShortestPath(g, "102", "158")
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound, ErrOptionViolation,
//	    // ErrExploreLimit, ErrNeighbors or a context error
//	}
//	switch res.Outcome {
//	case bfs.SameOrigin:
//	case bfs.Connected:
//	    for _, s := range res.Steps { /* s.MovieID, s.PersonID */ }
//	case bfs.NoConnection:
//	}
//
//	// Bounded search:
//	res, err = bfs.ShortestPath(g, src, dst,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxExplored(100_000),
//	    bfs.WithMaxDepth(6),
//	)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per loop.
//   - WithMaxExplored(n):      give up with ErrExploreLimit after n expansions (n>0).
//   - WithMaxDepth(d):         never enqueue people more than d hops away (d>0).
//   - WithFrontier(factory):   swap the frontier (StackFrontier gives a DFS; not shortest).
//   - WithOnEnqueue(fn):       hook after a node is pushed.
//   - WithOnDequeue(fn):       hook after a node is popped.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrSourceNotFound    if the source person does not exist.
//   - ErrTargetNotFound    if the target person does not exist.
//   - ErrOptionViolation   if an Option is invalid.
//   - ErrExploreLimit      if WithMaxExplored was reached first.
//   - ErrNeighbors         if the graph fails to expand a state.
//   - ErrEmptyFrontier     never escapes ShortestPath; it is the Exhausted signal.
package bfs

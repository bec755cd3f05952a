// Package bfs provides breadth-first shortest-path search between two
// people of a cast graph, reconstructing the connecting movies.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// walker encapsulates mutable search state for one ShortestPath call.
type walker struct {
	graph    Graph
	opts     Options
	ctx      context.Context
	target   string
	arena    *arena
	frontier Frontier
	explored *ExploredSet
}

// ShortestPath runs breadth-first search on g from source to target,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrSourceNotFound or ErrTargetNotFound for invalid
// input, ErrOptionViolation for bad options, ErrExploreLimit when the
// explored cap is hit, ErrNeighbors for graph failures, or the context
// error on cancellation.
func ShortestPath(g Graph, source, target string, opts ...Option) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return PathResult{}, o.err
	}

	if !g.HasPerson(source) {
		return PathResult{}, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasPerson(target) {
		return PathResult{}, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	if source == target {
		return PathResult{Outcome: SameOrigin}, nil
	}

	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		arena:    newArena(64),
		frontier: o.NewFrontier(),
		explored: NewExploredSet(64),
	}

	// Seed frontier with the root (no parent, no action)
	w.push(w.arena.root(source))

	return w.loop()
}

// push adds n to the frontier and fires OnEnqueue.
func (w *walker) push(n Node) {
	w.frontier.Add(n)
	w.opts.OnEnqueue(n.State, n.Depth)
}

// loop pops nodes until the target is found, the frontier is exhausted,
// or an error or cancellation occurs.
func (w *walker) loop() (PathResult, error) {
	for {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return PathResult{Explored: w.explored.Len()}, w.ctx.Err()
		default:
		}

		cur, err := w.frontier.Remove()
		if errors.Is(err, ErrEmptyFrontier) {
			return PathResult{Outcome: NoConnection, Explored: w.explored.Len()}, nil
		}
		if err != nil {
			return PathResult{Explored: w.explored.Len()}, err
		}
		w.opts.OnDequeue(cur.State, cur.Depth)

		if cur.State == w.target {
			return PathResult{
				Outcome:  Connected,
				Steps:    w.arena.path(cur),
				Explored: w.explored.Len(),
			}, nil
		}

		if w.opts.MaxExplored > 0 && w.explored.Len() >= w.opts.MaxExplored {
			return PathResult{Explored: w.explored.Len()},
				fmt.Errorf("%w: %d states expanded", ErrExploreLimit, w.explored.Len())
		}
		if err := w.expand(cur); err != nil {
			return PathResult{Explored: w.explored.Len()}, err
		}
		w.explored.Add(cur.State)
	}
}

// expand pushes every unseen co-star of cur, honoring MaxDepth.
func (w *walker) expand(cur Node) error {
	if w.opts.MaxDepth > 0 && cur.Depth+1 > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(cur.State)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, cur.State, err)
	}
	for _, nbr := range neighbors {
		// self pairs would re-enqueue the state being expanded
		if nbr.PersonID == cur.State {
			continue
		}
		if w.explored.Contains(nbr.PersonID) || w.frontier.ContainsState(nbr.PersonID) {
			continue
		}
		w.push(w.arena.child(cur, nbr.MovieID, nbr.PersonID))
	}

	return nil
}

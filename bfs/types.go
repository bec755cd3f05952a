// Package bfs provides tunable options, error definitions and result types
// for shortest-path search over a cast graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source person is absent.
	ErrSourceNotFound = errors.New("bfs: source person not found")

	// ErrTargetNotFound is returned when the target person is absent.
	ErrTargetNotFound = errors.New("bfs: target person not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExploreLimit is returned when MaxExplored expansions happened
	// without reaching the target.
	ErrExploreLimit = errors.New("bfs: explored-node limit reached")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Graph is the view of the cast graph the search needs.
// *core.Graph satisfies it.
type Graph interface {
	HasPerson(id string) bool
	Neighbors(personID string) ([]core.Neighbor, error)
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// ShortestPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExplored, if > 0, aborts with ErrExploreLimit once that many
	// states have been expanded. 0 disables the cap.
	MaxExplored int

	// MaxDepth, if > 0, never enqueues a person more than MaxDepth hops
	// from the source. 0 disables the limit.
	MaxDepth int

	// NewFrontier builds the frontier for one search.
	NewFrontier func() Frontier

	// OnEnqueue is called after a node is pushed onto the frontier.
	OnEnqueue func(state string, depth int)

	// OnDequeue is called after a node is popped, before the goal test.
	OnDequeue func(state string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no explored cap, no depth limit
//   - a FIFO QueueFrontier
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		NewFrontier: func() Frontier { return NewQueueFrontier() },
		OnEnqueue:   func(string, int) {},
		OnDequeue:   func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExplored caps the number of expanded states.
//
//	n > 0:  cap at n
//	n == 0: explicit "no cap"
//	n < 0:  ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// WithMaxDepth limits the search to people at most d hops away.
//
//	d > 0:  limit to depth d
//	d == 0: explicit "no limit"
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFrontier replaces the frontier factory. Only a FIFO frontier
// guarantees shortest paths.
func WithFrontier(factory func() Frontier) Option {
	return func(o *Options) {
		if factory != nil {
			o.NewFrontier = factory
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(state string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(state string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Outcome is the terminal state of a search.
type Outcome int

const (
	// NoConnection: the frontier was exhausted without reaching the target.
	NoConnection Outcome = iota
	// SameOrigin: source and target are the same person.
	SameOrigin
	// Connected: a shortest path was found.
	Connected
)

// String returns "no_connection", "same_origin" or "connected".
func (o Outcome) String() string {
	switch o {
	case NoConnection:
		return "no_connection"
	case SameOrigin:
		return "same_origin"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// Step is one hop of a path: PersonID is reached from the previous person
// through MovieID.
type Step struct {
	MovieID  string
	PersonID string
}

// PathResult holds the outcome of a search:
//   - Outcome: which terminal state was reached.
//   - Steps:   source→target hops for Connected, nil otherwise.
//   - Explored: number of states expanded, for diagnostics.
type PathResult struct {
	Outcome  Outcome
	Steps    []Step
	Explored int
}

// Degrees returns the degrees of separation: len(Steps) when connected,
// 0 for SameOrigin, -1 for NoConnection.
func (r PathResult) Degrees() int {
	switch r.Outcome {
	case Connected:
		return len(r.Steps)
	case SameOrigin:
		return 0
	default:
		return -1
	}
}

// Found reports whether the source reaches the target (including SameOrigin).
func (r PathResult) Found() bool {
	return r.Outcome != NoConnection
}

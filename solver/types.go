// Package solver defines tunable options and error definitions for the
// bidirectional shortest-path search.
package solver

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxExpansions caps how many vertices one query may expand before
// failing with ErrBudgetExceeded.
const DefaultMaxExpansions = 100_000

// Sentinel errors for shortest-path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrUnknownWord is returned when either endpoint is absent from the graph.
	ErrUnknownWord = errors.New("solver: endpoint not in graph")

	// ErrSameWord is returned when start and target are the same word.
	// A degenerate pair is invalid input, never a length-0 success.
	ErrSameWord = errors.New("solver: start and target are the same word")

	// ErrNoPath is returned when the endpoints lie in disconnected components.
	// Callers must treat this as an expected, recoverable outcome.
	ErrNoPath = errors.New("solver: no path between words")

	// ErrBudgetExceeded is returned when the expansion budget ran out before
	// the frontiers met. Treated like ErrNoPath for rejection purposes but
	// reported distinctly.
	ErrBudgetExceeded = errors.New("solver: expansion budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures a shortest-path query via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when ShortestPath is invoked.
type Option func(*Options)

// Options holds the parameters of a single shortest-path query.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions caps the number of vertices expanded across both
	// frontiers. A value of 0 restores DefaultMaxExpansions.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background and the default
// expansion budget.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: DefaultMaxExpansions,
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

// WithMaxExpansions caps total vertex expansions for the query.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit default budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxExpansions = DefaultMaxExpansions
		default:
			o.MaxExpansions = n
		}
	}
}

// Result holds the outcome of a shortest-path query:
//   - Length: minimum number of edge traversals from start to target.
//   - Path: one witness path of that length, Path[0] = start,
//     Path[len-1] = target, every consecutive pair a graph edge.
//   - Expansions: vertices expanded before the frontiers met.
type Result struct {
	Length     int
	Path       []string
	Expansions int
}

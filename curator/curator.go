package curator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lexipath/lexipath/freq"
	"github.com/lexipath/lexipath/solver"
	"github.com/lexipath/lexipath/wordgraph"
)

// defaultModel names solutions recomputed by the engine's own solver.
const defaultModel = "bidirectional-bfs"

// Curator evaluates candidates against one graph, one rarity index, and one
// run's dedupe state. Evaluate is not safe for concurrent use; EvaluateAll
// provides the parallel entry point.
type Curator struct {
	graph *wordgraph.Graph
	rares *freq.Index // may be nil: rarity bonuses become zero
	cfg   Config

	seenPairs map[string]struct{}
	seenPaths map[string]struct{}
}

// New validates cfg and returns a Curator with empty dedupe state.
func New(g *wordgraph.Graph, rares *freq.Index, cfg Config) (*Curator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.MinLength < 1 {
		return nil, fmt.Errorf("%w: MinLength must be at least 1 (%d)", ErrConfigViolation, cfg.MinLength)
	}
	if cfg.MaxLength < cfg.MinLength {
		return nil, fmt.Errorf("%w: MaxLength %d below MinLength %d", ErrConfigViolation, cfg.MaxLength, cfg.MinLength)
	}
	if cfg.MinDegree < 0 || cfg.MinTSNEDistance < 0 || cfg.SolverBudget < 0 {
		return nil, fmt.Errorf("%w: negative gate value", ErrConfigViolation)
	}
	if cfg.SolverBudget == 0 {
		cfg.SolverBudget = solver.DefaultMaxExpansions
	}

	return &Curator{
		graph:     g,
		rares:     rares,
		cfg:       cfg,
		seenPairs: make(map[string]struct{}),
		seenPaths: make(map[string]struct{}),
	}, nil
}

// Evaluate classifies one candidate: an accepted Puzzle or a Rejection,
// never both. The returned error is reserved for context cancellation.
func (cu *Curator) Evaluate(ctx context.Context, c Candidate) (*Puzzle, *Rejection, error) {
	if rej := cu.precheck(c); rej != nil {
		return nil, rej, nil
	}

	res, rej, err := cu.solve(ctx, c)
	if err != nil || rej != nil {
		return nil, rej, err
	}

	return cu.accept(c, res)
}

// precheck runs every gate that needs no solver call and no dedupe state.
func (cu *Curator) precheck(c Candidate) *Rejection {
	start := wordgraph.Normalize(c.StartWord)
	target := wordgraph.Normalize(c.TargetWord)

	if start == "" || target == "" {
		return &Rejection{Reason: ReasonUnsolvable, Detail: "empty word"}
	}
	if start == target {
		// Degenerate pair: rejected before solving, never a length-0 success.
		return &Rejection{Reason: ReasonUnsolvable, Detail: "start equals target"}
	}
	for _, w := range []string{start, target} {
		if !cu.graph.Contains(w) {
			return &Rejection{Reason: ReasonUnsolvable, Detail: fmt.Sprintf("%q not in graph", w)}
		}
	}

	if cu.cfg.MinDegree > 0 {
		for _, w := range []string{start, target} {
			if deg, _ := cu.graph.Degree(w); deg < cu.cfg.MinDegree {
				return &Rejection{
					Reason: ReasonTooObscure,
					Detail: fmt.Sprintf("%q has degree %d, need %d", w, deg, cu.cfg.MinDegree),
				}
			}
		}
	}

	if cu.cfg.MinTSNEDistance > 0 {
		s, okS := cu.graph.TSNE(start)
		e, okE := cu.graph.TSNE(target)
		if okS && okE {
			dx, dy := s[0]-e[0], s[1]-e[1]
			if d2 := dx*dx + dy*dy; d2 < cu.cfg.MinTSNEDistance {
				return &Rejection{
					Reason: ReasonTooClose,
					Detail: fmt.Sprintf("squared t-SNE separation %.1f below %.1f", d2, cu.cfg.MinTSNEDistance),
				}
			}
		}
	}

	return nil
}

// solve runs the shortest-path query and folds recoverable solver failures
// into rejections. Context errors propagate.
func (cu *Curator) solve(ctx context.Context, c Candidate) (*solver.Result, *Rejection, error) {
	res, err := solver.ShortestPath(cu.graph, c.StartWord, c.TargetWord,
		solver.WithContext(ctx),
		solver.WithMaxExpansions(cu.cfg.SolverBudget),
	)
	switch {
	case err == nil:
		return res, nil, nil
	case errors.Is(err, solver.ErrNoPath):
		return nil, &Rejection{Reason: ReasonUnsolvable, Detail: err.Error()}, nil
	case errors.Is(err, solver.ErrBudgetExceeded):
		return nil, &Rejection{Reason: ReasonUnsolvable, Detail: err.Error(), BudgetExceeded: true}, nil
	default:
		// Context cancellation, or an input defect precheck should have caught.
		return nil, nil, err
	}
}

// accept applies the stateful gates (difficulty bounds, dedupe) and records
// the puzzle. Single-writer discipline: only the coordinating goroutine may
// reach this method.
func (cu *Curator) accept(c Candidate, res *solver.Result) (*Puzzle, *Rejection, error) {
	switch {
	case res.Length < cu.cfg.MinLength:
		return nil, &Rejection{
			Reason: ReasonTooShort,
			Detail: fmt.Sprintf("optimal path %d below %d", res.Length, cu.cfg.MinLength),
		}, nil
	case res.Length > cu.cfg.MaxLength:
		return nil, &Rejection{
			Reason: ReasonTooLong,
			Detail: fmt.Sprintf("optimal path %d above %d", res.Length, cu.cfg.MaxLength),
		}, nil
	}

	pair := pairKey(c.StartWord, c.TargetWord)
	path := strings.Join(res.Path, "\x1f")
	if _, dup := cu.seenPairs[pair]; dup {
		return nil, &Rejection{Reason: ReasonDuplicate, Detail: "pair already accepted"}, nil
	}
	if _, dup := cu.seenPaths[path]; dup {
		return nil, &Rejection{Reason: ReasonDuplicate, Detail: "witness path already accepted"}, nil
	}
	cu.seenPairs[pair] = struct{}{}
	cu.seenPaths[path] = struct{}{}

	model := c.Model
	if model == "" {
		model = defaultModel
	}

	return &Puzzle{
		StartWord:         wordgraph.Normalize(c.StartWord),
		TargetWord:        wordgraph.Normalize(c.TargetWord),
		OptimalPathLength: res.Length,
		ExemplarPath:      res.Path,
		Meta: Meta{
			Model:          model,
			HeuristicScore: c.HeuristicScore,
			Expansions:     res.Expansions,
		},
	}, nil, nil
}

// pairKey builds the unordered dedupe key of a pair.
func pairKey(a, b string) string {
	a, b = wordgraph.Normalize(a), wordgraph.Normalize(b)
	if b < a {
		a, b = b, a
	}

	return a + "\x1f" + b
}

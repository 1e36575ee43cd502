package curator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lexipath/lexipath/solver"
)

// solveOutcome caches the parallel phase's work for one candidate:
// either a stateless rejection or a successful solve.
type solveOutcome struct {
	rejection *Rejection
	result    *solver.Result
}

// EvaluateAll evaluates every candidate, fanning solver calls out to at most
// workers goroutines (≤ 0 means GOMAXPROCS). Results are merged back in
// input order on the calling goroutine (the single writer of the dedupe
// state), so output is deterministic regardless of worker scheduling.
// Per-candidate failures never abort the batch; only context cancellation
// returns an error.
func (cu *Curator) EvaluateAll(ctx context.Context, candidates []Candidate, workers int) ([]*Puzzle, Summary, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]solveOutcome, len(candidates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range candidates {
		i, c := i, c
		eg.Go(func() error {
			if rej := cu.precheck(c); rej != nil {
				outcomes[i] = solveOutcome{rejection: rej}

				return nil
			}
			res, rej, err := cu.solve(egCtx, c)
			if err != nil {
				return err
			}
			outcomes[i] = solveOutcome{rejection: rej, result: res}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Summary{}, err
	}

	// Sequential merge: difficulty bounds, dedupe, acceptance.
	summary := Summary{Rejected: make(map[Reason]int)}
	var accepted []*Puzzle
	for i, c := range candidates {
		summary.Evaluated++

		rej := outcomes[i].rejection
		var p *Puzzle
		if rej == nil {
			p, rej, _ = cu.accept(c, outcomes[i].result)
		}

		if rej != nil {
			summary.Rejected[rej.Reason]++
			if rej.BudgetExceeded {
				summary.BudgetExceeded++
			}
			continue
		}
		summary.Accepted++
		accepted = append(accepted, p)
	}

	return accepted, summary, nil
}

package schedule

import (
	"fmt"
	"time"

	"github.com/lexipath/lexipath/curator"
)

// Scheduler produces challenge ledgers from ranked puzzle pools.
// It runs single-threaded over the final ranked list; no concurrency is
// needed or supported.
type Scheduler struct {
	// Version and Description are stamped onto every produced ledger.
	Version     string
	Description string

	// Now supplies the generation timestamp for LastUpdated;
	// nil means time.Now. Injectable for reproducible tests.
	Now func() time.Time

	state State
}

// State reports the scheduler's lifecycle phase.
func (s *Scheduler) State() State { return s.state }

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}

	return time.Now()
}

// Generate assigns the count highest-ranked puzzles to consecutive dates
// starting at startDate: ranked[i] lands on startDate + i days. Fails with
// ErrInsufficientPuzzles when the pool is too small; the caller must
// explicitly re-invoke with a smaller count to accept a shorter run.
func (s *Scheduler) Generate(ranked []*curator.Puzzle, startDate time.Time, count int) (*Ledger, error) {
	if count < 0 {
		count = 0
	}
	if len(ranked) < count {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPuzzles, len(ranked), count)
	}

	s.state = Populating
	ledger := s.emptyLedger()
	for i := 0; i < count; i++ {
		ledger.Challenges = append(ledger.Challenges, entryFor(ranked[i], startDate.AddDate(0, 0, i)))
	}
	s.state = Published

	return ledger, nil
}

// Regenerate rebuilds prev's span from a superseding ranked pool while
// preserving, verbatim, every entry dated on or before publishedThrough.
// Only strictly-future entries are replaced; replacements are consumed from
// ranked positionally. Fails with ErrInsufficientPuzzles when the pool
// cannot cover the future slots.
func (s *Scheduler) Regenerate(prev *Ledger, ranked []*curator.Puzzle, publishedThrough time.Time) (*Ledger, error) {
	if prev == nil || len(prev.Challenges) == 0 {
		return nil, fmt.Errorf("%w: nothing to regenerate", ErrMalformedLedger)
	}
	if err := prev.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}

	cutoff := publishedThrough.Format(DateFormat)
	future := 0
	for _, e := range prev.Challenges {
		if e.Date > cutoff {
			future++
		}
	}
	if len(ranked) < future {
		return nil, fmt.Errorf("%w: have %d, need %d future entries", ErrInsufficientPuzzles, len(ranked), future)
	}

	s.state = Populating
	ledger := s.emptyLedger()
	next := 0
	for _, e := range prev.Challenges {
		if e.Date <= cutoff {
			// Published challenges never change underneath players.
			ledger.Challenges = append(ledger.Challenges, e)
			continue
		}
		date, err := time.Parse(DateFormat, e.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
		}
		ledger.Challenges = append(ledger.Challenges, entryFor(ranked[next], date))
		next++
	}
	s.state = Published

	return ledger, nil
}

func (s *Scheduler) emptyLedger() *Ledger {
	return &Ledger{
		Version:     s.Version,
		LastUpdated: s.now().Format(DateFormat),
		Description: s.Description,
	}
}

// entryFor publishes one puzzle on one date, the solver trace included.
func entryFor(p *curator.Puzzle, date time.Time) Entry {
	id := date.Format(DateFormat)

	return Entry{
		ID:                id,
		Date:              id,
		StartWord:         p.StartWord,
		TargetWord:        p.TargetWord,
		OptimalPathLength: p.OptimalPathLength,
		AISolution: AISolution{
			Path:           p.ExemplarPath,
			StepsTaken:     p.OptimalPathLength,
			Model:          p.Meta.Model,
			HeuristicScore: p.Meta.HeuristicScore,
		},
	}
}

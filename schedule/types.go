// Package schedule defines the ledger document types and sentinel errors of
// the challenge calendar.
package schedule

import (
	"errors"
	"time"
)

// DateFormat is the ISO calendar-date layout used for entry ids and dates.
const DateFormat = "2006-01-02"

// Sentinel errors for scheduling and ledger persistence.
var (
	// ErrInsufficientPuzzles indicates the ranked pool cannot cover the
	// requested span. The caller must explicitly accept a shorter run;
	// the scheduler never silently truncates.
	ErrInsufficientPuzzles = errors.New("schedule: not enough puzzles for requested span")

	// ErrLedgerWrite wraps any failure while persisting the ledger.
	// The previously published file is left untouched.
	ErrLedgerWrite = errors.New("schedule: ledger write failed")

	// ErrMalformedLedger indicates a ledger document that cannot be parsed
	// or violates the date-sequence invariant.
	ErrMalformedLedger = errors.New("schedule: malformed ledger")

	// ErrNoChallenge indicates no entry exists for the queried date.
	ErrNoChallenge = errors.New("schedule: no challenge for date")
)

// AISolution is the solver trace published with each challenge.
type AISolution struct {
	Path           []string `json:"path"`
	StepsTaken     int      `json:"stepsTaken"`
	Model          string   `json:"model"`
	HeuristicScore float64  `json:"heuristicScore"`
}

// Entry is one dated challenge. ID and Date are the same ISO calendar-date
// string by contract; the pair is bijective across the ledger.
type Entry struct {
	ID                string     `json:"id"`
	Date              string     `json:"date"`
	StartWord         string     `json:"startWord"`
	TargetWord        string     `json:"targetWord"`
	OptimalPathLength int        `json:"optimalPathLength"`
	AISolution        AISolution `json:"aiSolution"`
}

// Ledger is the published, date-indexed challenge sequence: the on-disk
// contract the live game reads to resolve "today".
type Ledger struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Description string  `json:"description"`
	Challenges  []Entry `json:"challenges"`
}

// Challenge returns the entry assigned to date, or ErrNoChallenge.
func (l *Ledger) Challenge(date time.Time) (*Entry, error) {
	id := date.Format(DateFormat)
	for i := range l.Challenges {
		if l.Challenges[i].Date == id {
			return &l.Challenges[i], nil
		}
	}

	return nil, ErrNoChallenge
}

// validate checks the date-sequence invariant: ids equal dates, dates parse,
// and consecutive entries are exactly one calendar day apart.
func (l *Ledger) validate() error {
	var prev time.Time
	for i, e := range l.Challenges {
		if e.ID != e.Date {
			return errors.New("schedule: entry id and date diverge")
		}
		d, err := time.Parse(DateFormat, e.Date)
		if err != nil {
			return err
		}
		if i > 0 && !d.Equal(prev.AddDate(0, 0, 1)) {
			return errors.New("schedule: dates not strictly consecutive")
		}
		prev = d
	}

	return nil
}

// State is the scheduler lifecycle phase.
type State int

const (
	// Empty means no generation has run yet.
	Empty State = iota

	// Populating means a generation run is assigning dates.
	Populating

	// Published means the last run completed and its ledger was returned.
	Published
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Populating:
		return "populating"
	case Published:
		return "published"
	default:
		return "unknown"
	}
}

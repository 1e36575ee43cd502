// Package curator defines candidate/puzzle records, rejection taxonomy,
// configuration, and sentinel errors for the curation stage.
package curator

import (
	"errors"

	"github.com/lexipath/lexipath/solver"
)

// Sentinel errors for curator construction and batch runs.
var (
	// ErrNilGraph indicates the curator was constructed without a graph.
	ErrNilGraph = errors.New("curator: graph is nil")

	// ErrConfigViolation indicates an invalid Config field.
	ErrConfigViolation = errors.New("curator: invalid config")
)

// Reason classifies why a candidate was rejected. Rejections are expected,
// recoverable outcomes, never errors.
type Reason string

// Rejection reasons.
const (
	// ReasonUnsolvable covers degenerate pairs (start == target), unknown
	// words, disconnected endpoints, and solver budget blow-ups.
	ReasonUnsolvable Reason = "unsolvable"

	// ReasonTooShort means the optimal path is below MinLength hops.
	ReasonTooShort Reason = "too_short"

	// ReasonTooLong means the optimal path is above MaxLength hops.
	ReasonTooLong Reason = "too_long"

	// ReasonDuplicate means the unordered pair, or its exact witness path,
	// was already accepted in this run.
	ReasonDuplicate Reason = "duplicate"

	// ReasonTooObscure means an endpoint has fewer stored neighbors than
	// MinDegree, making for a frustrating start or finish.
	ReasonTooObscure Reason = "too_obscure"

	// ReasonTooClose means the endpoints sit closer than MinTSNEDistance in
	// the 2-D embedding projection.
	ReasonTooClose Reason = "too_close"
)

// Rejection reports why a candidate was dropped.
type Rejection struct {
	Reason Reason
	Detail string

	// BudgetExceeded marks ReasonUnsolvable rejections caused by the solver
	// expansion cap rather than true disconnection, so batch summaries can
	// report the two distinctly.
	BudgetExceeded bool
}

// Candidate is one record of the external sampling stream. Pre-supplied
// solver fields are advisory; the curator recomputes them authoritatively.
type Candidate struct {
	StartWord         string   `json:"startWord"`
	TargetWord        string   `json:"endWord"`
	OptimalPathLength int      `json:"optimalPathLength,omitempty"`
	ExemplarPath      []string `json:"exemplarPath,omitempty"`
	HeuristicScore    float64  `json:"heuristicScore,omitempty"`
	Model             string   `json:"model,omitempty"`
}

// Meta carries solver provenance for an accepted puzzle.
type Meta struct {
	// Model names the strategy that produced the solution metadata.
	Model string

	// HeuristicScore is the sampling strategy's advisory score, carried
	// through unchanged.
	HeuristicScore float64

	// Expansions is the number of vertices the solver expanded.
	Expansions int
}

// Puzzle is a validated, solvable pair with known optimal hop distance.
// Never mutated after creation.
type Puzzle struct {
	StartWord         string
	TargetWord        string
	OptimalPathLength int
	ExemplarPath      []string
	Meta              Meta
}

// Config bounds what the curator accepts.
type Config struct {
	// MinLength and MaxLength bound the optimal hop count, inclusive.
	MinLength int
	MaxLength int

	// MinDegree is the minimum stored out-degree required of both
	// endpoints. Zero disables the gate.
	MinDegree int

	// MinTSNEDistance is the minimum squared separation of the endpoints in
	// the snapshot's 2-D projection. Zero disables the gate; pairs without
	// coordinates pass it.
	MinTSNEDistance float64

	// SolverBudget caps vertex expansions per solve.
	// Zero uses solver.DefaultMaxExpansions.
	SolverBudget int
}

// DefaultConfig mirrors the production generation constraints: 4–5 hop
// puzzles between reasonably connected, well-separated endpoints.
func DefaultConfig() Config {
	return Config{
		MinLength:       4,
		MaxLength:       5,
		MinDegree:       3,
		MinTSNEDistance: 400,
		SolverBudget:    solver.DefaultMaxExpansions,
	}
}

// Summary tallies one batch run. Per-reason counts let callers report
// rejection rates without re-walking results.
type Summary struct {
	Evaluated      int
	Accepted       int
	Rejected       map[Reason]int
	BudgetExceeded int
}

// Package lexipath is the semantic path graph and puzzle engine behind a
// word-association game: a player walks from a start word to a target word,
// one nearest-neighbor hop at a time.
//
// What lives here:
//
//	• wordgraph/ — immutable k-nearest-neighbor word graph loaded from a
//	  precomputed embedding snapshot, with ranked neighbor queries
//	• freq/     — word rarity index filtered against the graph vocabulary
//	• solver/   — bidirectional BFS computing optimal hop distance plus a
//	  deterministic witness path
//	• curator/  — offline candidate evaluation: solvability, difficulty
//	  bounds, dedupe, desirability ranking
//	• schedule/ — the append-only daily challenge ledger and its
//	  publication-preserving regeneration rules
//	• game/     — the play-time session state machine and the two-call
//	  live query surface the UI consumes
//	• pipeline/ — batch wiring of the above into one curation run
//
// Design rules:
//
//   - WordGraph and FrequencyIndex are built once and read-only thereafter;
//     any number of goroutines may query them without coordination.
//   - Solver and curator are offline components. At play time the game
//     touches only the graph and the published ledger.
//   - No implicit global state: every component is constructed from explicit
//     inputs (snapshot, frequency table, solver budget), so each package is
//     unit-testable against small synthetic graphs.
//
// Quick ASCII example:
//
//	cat ── dog
//	 │
//	kitten
//
//	ShortestPath(dog, kitten) = 2 hops via cat.
package lexipath

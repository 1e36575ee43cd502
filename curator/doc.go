// Package curator turns a raw stream of (start, target) candidate pairs into
// a filtered, scored, deduplicated set of playable puzzles.
//
// Pipeline position: the curator is an offline batch component. It consumes
// the immutable word graph, the rarity index, and a candidate pool produced
// by an external sampling strategy, and it emits ranked Puzzle records for
// the challenge scheduler. It never mutates the graph or the index.
//
// Evaluation: each candidate is classified exactly once —
//
//	accepted              solvable, inside the difficulty bounds, novel
//	Unsolvable            degenerate pair, unknown word, or no path
//	                      (a solver budget blow-up counts here too, but is
//	                      tallied separately so runs can report it)
//	TooShort / TooLong    optimal hop count outside [MinLength, MaxLength]
//	TooObscure            an endpoint's stored degree is below MinDegree
//	TooClose              endpoint t-SNE separation below the floor, so the
//	                      pair would feel trivial even at a legal hop count
//	Duplicate             the unordered pair (or exact witness path) was
//	                      already accepted in this run
//
// The solver's recomputed length and witness path are authoritative;
// pre-supplied candidate values are carried only as provenance metadata.
// One rejected candidate never aborts a batch: rejections are tallied in a
// Summary and reported at the end of the run.
//
// Ranking: Rank orders accepted puzzles by a pure desirability score —
// deterministic for identical inputs, ties broken by endpoint words. The
// default scorer adds the optimal hop count to a bounded rarity bonus per
// endpoint (rarer endpoints make better puzzles); callers may substitute any
// ScoreFunc.
//
// Concurrency: EvaluateAll fans solver calls out to a bounded worker pool
// (solves dominate batch runtime) and merges results back in input order on
// the coordinating goroutine, which is the only writer of the dedupe state.
// Repeated runs over identical inputs produce identical output.
package curator

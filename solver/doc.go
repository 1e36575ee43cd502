// Package solver computes optimal hop distances between words in the
// nearest-neighbor graph, plus one deterministic witness path per query.
//
// Overview:
//
//   - The puzzle engine needs hop count, not similarity-weighted distance:
//     a puzzle's difficulty is the number of choices a player must make.
//   - The search is a bidirectional breadth-first search over the undirected
//     traversal relation (wordgraph.Adjacent), expanding alternately from the
//     start frontier and the target frontier one hop at a time and stopping
//     the instant the frontiers touch. On a dense semantic graph with
//     branching factor K and optimal depth d this explores O(K^(d/2)) vertices
//     per side instead of O(K^d) for one-sided BFS, the difference between
//     milliseconds and minutes once d exceeds 6.
//
// Determinism:
//
//   - Neighbors are expanded in the graph's ranked order (descending weight,
//     lexicographic tie-break), so parent links are reproducible.
//   - When several vertices join the frontiers at the same optimal length,
//     the witness path is the lexicographically smallest full word sequence
//     among those candidates.
//
// Bounded exploration:
//
//   - Every query carries an expansion budget (WithMaxExpansions,
//     default 100000 expanded vertices). A query that exhausts the budget
//     fails with ErrBudgetExceeded rather than running unbounded; callers
//     reject the pair exactly as they would an unreachable one, but the two
//     outcomes stay distinguishable for logging.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the graph pointer is nil.
//	– ErrUnknownWord     if either endpoint is absent from the graph.
//	– ErrSameWord        if start equals target (degenerate, never length 0).
//	– ErrNoPath          if the endpoints lie in disconnected components.
//	– ErrBudgetExceeded  if the expansion cap was reached first.
//	– ErrOptionViolation if an invalid Option is supplied.
//
// The solver holds no state between queries beyond its own frontier and
// visited sets, so any number of queries may run in parallel against the
// same immutable graph.
package solver

// Package wordgraph provides the immutable k-nearest-neighbor word graph at
// the heart of the puzzle engine.
//
// Overview:
//
//   - Each vertex is a normalized lowercase word; each node stores up to K
//     outgoing edges to its most semantically similar neighbors, weighted by
//     cosine similarity (higher = more similar).
//   - The graph is parsed once from a precomputed JSON snapshot and is fully
//     immutable afterwards: every query method is safe for unbounded
//     concurrent readers with no locking.
//   - Edge targets need not carry a node record of their own; such "leaf"
//     words are still vocabulary members and answer queries with an empty
//     neighbor list.
//
// Two adjacency views are exposed:
//
//   - NeighborsOf returns only stored (outgoing) edges, ranked by descending
//     weight with a lexicographic tie-break. This is the presentation order
//     the game UI shows on its candidate grid.
//   - Adjacent returns the union of stored and reverse edges under the same
//     ranking rule. Traversal code treats every stored edge as walkable in
//     both directions; asymmetric snapshots (A lists B, B omits A) are
//     tolerated without reconciling weights.
//
// Snapshot contract (hard load failure on violation):
//
//	{"nodes": {"cat": {"edges": {"dog": 0.9}, "tsne": [1.5, -3.0]}, ...}}
//
// The top-level "nodes" key is required; weights must be finite numbers;
// normalized words must be unique and non-empty. The optional "tsne" pair is
// preserved for the curator's endpoint-separation filter.
//
// Errors (sentinel):
//
//	– ErrMalformedGraph if the snapshot shape or any weight is invalid.
//	– ErrUnknownWord    if a queried word is not in the vocabulary.
package wordgraph

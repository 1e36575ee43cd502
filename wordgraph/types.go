// Package wordgraph defines the graph types, vocabulary set, and sentinel
// errors shared by the snapshot loader and the query surface.
package wordgraph

import (
	"errors"
	"strings"
)

// Sentinel errors for word graph operations.
var (
	// ErrMalformedGraph indicates the snapshot cannot resolve to a valid graph:
	// missing "nodes" key, non-numeric or non-finite weight, empty or duplicate
	// normalized word, or an edge pointing at its own node.
	ErrMalformedGraph = errors.New("wordgraph: malformed graph snapshot")

	// ErrUnknownWord indicates a queried word is not in the vocabulary.
	ErrUnknownWord = errors.New("wordgraph: word not in vocabulary")
)

// Neighbor pairs a neighboring word with its similarity weight.
type Neighbor struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// Vocabulary is a set of normalized words.
type Vocabulary map[string]struct{}

// Contains reports whether word (after normalization) is a member.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v[Normalize(word)]
	return ok
}

// Union returns a new Vocabulary holding the members of both sets.
// Neither receiver nor argument is modified.
func (v Vocabulary) Union(other Vocabulary) Vocabulary {
	merged := make(Vocabulary, len(v)+len(other))
	for w := range v {
		merged[w] = struct{}{}
	}
	for w := range other {
		merged[w] = struct{}{}
	}

	return merged
}

// Normalize maps a raw token to its canonical vertex identity:
// lowercased with surrounding whitespace trimmed.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// node is the immutable per-word record built at load time.
type node struct {
	// neighbors holds stored outgoing edges, ranked by descending weight
	// with a lexicographic tie-break.
	neighbors []Neighbor

	// adjacent is the traversal view: stored plus reverse edges,
	// same ranking rule. For a word listed by both endpoints the stored
	// outgoing weight wins.
	adjacent []Neighbor

	// tsne holds the 2-D embedding projection, when present in the snapshot.
	tsne    [2]float64
	hasTSNE bool
}

// Graph is the immutable in-memory nearest-neighbor index.
// Construct it with Load or Parse; all methods are read-only and safe for
// concurrent use without locks.
type Graph struct {
	nodes map[string]*node

	// maxNeighbors is the largest stored out-degree observed at load time,
	// i.e. the effective K of the snapshot variant.
	maxNeighbors int
}

package wordgraph

import (
	"fmt"
	"sort"
)

// Contains reports whether word belongs to the vocabulary,
// including leaf words that only appear as edge targets.
// Complexity: O(1).
func (g *Graph) Contains(word string) bool {
	_, ok := g.nodes[Normalize(word)]

	return ok
}

// NeighborsOf returns word's stored outgoing edges ranked by descending
// similarity, ties broken lexicographically. A leaf word yields an empty
// (non-nil-error) sequence; a word outside the vocabulary yields
// ErrUnknownWord. The returned slice is shared and must not be mutated.
// Complexity: O(1).
func (g *Graph) NeighborsOf(word string) ([]Neighbor, error) {
	n, ok := g.nodes[Normalize(word)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}

	return n.neighbors, nil
}

// Adjacent returns the undirected traversal view of word: stored outgoing
// edges plus reverse edges from words that list it, under the same ranking.
// This is the relation the path solver walks. The returned slice is shared
// and must not be mutated.
// Complexity: O(1).
func (g *Graph) Adjacent(word string) ([]Neighbor, error) {
	n, ok := g.nodes[Normalize(word)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}

	return n.adjacent, nil
}

// HasEdge reports whether a and b are connected by a stored edge in either
// direction. Unknown endpoints simply report false.
func (g *Graph) HasEdge(a, b string) bool {
	na, ok := g.nodes[Normalize(a)]
	if !ok {
		return false
	}
	nb := Normalize(b)
	for _, nbr := range na.neighbors {
		if nbr.Word == nb {
			return true
		}
	}
	if other, ok := g.nodes[nb]; ok {
		a = Normalize(a)
		for _, nbr := range other.neighbors {
			if nbr.Word == a {
				return true
			}
		}
	}

	return false
}

// Degree returns the stored out-degree of word, or ErrUnknownWord.
func (g *Graph) Degree(word string) (int, error) {
	n, ok := g.nodes[Normalize(word)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}

	return len(n.neighbors), nil
}

// TSNE returns the 2-D projection coordinates recorded for word in the
// snapshot, and whether any were present.
func (g *Graph) TSNE(word string) ([2]float64, bool) {
	n, ok := g.nodes[Normalize(word)]
	if !ok || !n.hasTSNE {
		return [2]float64{}, false
	}

	return n.tsne, true
}

// Order returns the number of vertices, leaf words included.
func (g *Graph) Order() int {
	return len(g.nodes)
}

// MaxNeighbors returns the largest stored out-degree in the graph,
// the effective K of the loaded snapshot variant (e.g. 4 or 5).
func (g *Graph) MaxNeighbors() int {
	return g.maxNeighbors
}

// Words returns the full vocabulary in lexicographic order.
// Complexity: O(V log V); the slice is freshly allocated per call.
func (g *Graph) Words() []string {
	words := make([]string, 0, len(g.nodes))
	for w := range g.nodes {
		words = append(words, w)
	}
	sort.Strings(words)

	return words
}

// Vocabulary returns the vocabulary as a set, leaf words included.
// The set is freshly allocated and safe for the caller to extend.
func (g *Graph) Vocabulary() Vocabulary {
	vocab := make(Vocabulary, len(g.nodes))
	for w := range g.nodes {
		vocab[w] = struct{}{}
	}

	return vocab
}

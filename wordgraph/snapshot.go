package wordgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// snapshotNode mirrors one node record of the on-disk snapshot.
type snapshotNode struct {
	Edges map[string]float64 `json:"edges"`
	TSNE  []float64          `json:"tsne"`
}

// snapshot mirrors the on-disk document: a single top-level "nodes" mapping.
type snapshot struct {
	Nodes map[string]snapshotNode `json:"nodes"`
}

// Load reads a JSON snapshot from r and builds the graph.
// Any structural defect is reported as ErrMalformedGraph; there is no
// sensible partial graph, so callers should treat the error as fatal.
func Load(r io.Reader) (*Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading snapshot: %v", ErrMalformedGraph, err)
	}

	return Parse(raw)
}

// Parse builds the graph from raw snapshot bytes.
// Complexity: O(V·K log K) for ranking plus O(V·K) for the reverse view.
func Parse(raw []byte) (*Graph, error) {
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}
	if snap.Nodes == nil {
		return nil, fmt.Errorf("%w: missing top-level \"nodes\" key", ErrMalformedGraph)
	}

	g := &Graph{nodes: make(map[string]*node, len(snap.Nodes))}

	// First pass: materialize all declared nodes under normalized identity.
	for rawWord, rec := range snap.Nodes {
		word := Normalize(rawWord)
		if word == "" {
			return nil, fmt.Errorf("%w: empty word key %q", ErrMalformedGraph, rawWord)
		}
		if _, dup := g.nodes[word]; dup {
			return nil, fmt.Errorf("%w: duplicate normalized word %q", ErrMalformedGraph, word)
		}

		n := &node{}
		if len(rec.TSNE) == 2 {
			n.tsne = [2]float64{rec.TSNE[0], rec.TSNE[1]}
			n.hasTSNE = true
		}
		n.neighbors = make([]Neighbor, 0, len(rec.Edges))
		for rawNbr, weight := range rec.Edges {
			nbr := Normalize(rawNbr)
			if nbr == "" {
				return nil, fmt.Errorf("%w: node %q has an empty edge target", ErrMalformedGraph, word)
			}
			if nbr == word {
				return nil, fmt.Errorf("%w: node %q lists itself as a neighbor", ErrMalformedGraph, word)
			}
			if math.IsNaN(weight) || math.IsInf(weight, 0) {
				return nil, fmt.Errorf("%w: edge %q→%q has non-finite weight", ErrMalformedGraph, word, nbr)
			}
			n.neighbors = append(n.neighbors, Neighbor{Word: nbr, Weight: weight})
		}
		rankNeighbors(n.neighbors)
		g.nodes[word] = n

		if len(n.neighbors) > g.maxNeighbors {
			g.maxNeighbors = len(n.neighbors)
		}
	}

	g.buildAdjacency()

	return g, nil
}

// buildAdjacency registers leaf vertices for bare edge targets and derives
// the ranked undirected traversal view for every vertex.
func (g *Graph) buildAdjacency() {
	adj := make(map[string]map[string]float64, len(g.nodes))

	// Seed with stored edges so outgoing weights win over reverse ones.
	for word, n := range g.nodes {
		if adj[word] == nil {
			adj[word] = make(map[string]float64, len(n.neighbors))
		}
		for _, nbr := range n.neighbors {
			adj[word][nbr.Word] = nbr.Weight
		}
	}
	// Mirror each stored edge onto its target.
	for word, n := range g.nodes {
		for _, nbr := range n.neighbors {
			if adj[nbr.Word] == nil {
				adj[nbr.Word] = make(map[string]float64, 1)
			}
			if _, stored := adj[nbr.Word][word]; !stored {
				adj[nbr.Word][word] = nbr.Weight
			}
		}
	}

	for word, edges := range adj {
		n, ok := g.nodes[word]
		if !ok {
			// Leaf word: valid vertex with no outgoing edges of its own.
			n = &node{}
			g.nodes[word] = n
		}
		n.adjacent = make([]Neighbor, 0, len(edges))
		for nbr, weight := range edges {
			n.adjacent = append(n.adjacent, Neighbor{Word: nbr, Weight: weight})
		}
		rankNeighbors(n.adjacent)
	}
}

// rankNeighbors sorts in place by descending weight, then ascending word,
// the deterministic presentation order required by the game and the solver.
func rankNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Weight != ns[j].Weight {
			return ns[i].Weight > ns[j].Weight
		}

		return ns[i].Word < ns[j].Word
	})
}

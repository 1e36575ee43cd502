package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexipath/lexipath/solver"
	"github.com/lexipath/lexipath/wordgraph"
)

// specGraph is the canonical three-word example:
// dog—cat—kitten, with kitten the closer neighbor of cat.
const specGraph = `{
  "nodes": {
    "cat":    {"edges": {"dog": 0.9, "kitten": 0.95}},
    "dog":    {"edges": {"cat": 0.9}},
    "kitten": {"edges": {"cat": 0.95}}
  }
}`

// splitGraph has two disconnected components.
const splitGraph = `{
  "nodes": {
    "cat": {"edges": {"dog": 0.9}},
    "dog": {"edges": {"cat": 0.9}},
    "sun": {"edges": {"moon": 0.8}},
    "moon": {"edges": {"sun": 0.8}}
  }
}`

func mustParse(t *testing.T, doc string) *wordgraph.Graph {
	t.Helper()
	g, err := wordgraph.Parse([]byte(doc))
	require.NoError(t, err)

	return g
}

func TestShortestPath_Errors(t *testing.T) {
	g := mustParse(t, specGraph)

	if _, err := solver.ShortestPath(nil, "cat", "dog"); !assert.ErrorIs(t, err, solver.ErrGraphNil) {
		t.FailNow()
	}
	_, err := solver.ShortestPath(g, "cat", "unicorn")
	assert.ErrorIs(t, err, solver.ErrUnknownWord)
	_, err = solver.ShortestPath(g, "unicorn", "cat")
	assert.ErrorIs(t, err, solver.ErrUnknownWord)
	// Degenerate pair is invalid input, never a length-0 success.
	_, err = solver.ShortestPath(g, "cat", "Cat ")
	assert.ErrorIs(t, err, solver.ErrSameWord)
	_, err = solver.ShortestPath(g, "cat", "dog", solver.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

func TestShortestPath_SpecExample(t *testing.T) {
	g := mustParse(t, specGraph)

	res, err := solver.ShortestPath(g, "dog", "kitten")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, []string{"dog", "cat", "kitten"}, res.Path)
}

func TestShortestPath_DirectNeighbor(t *testing.T) {
	g := mustParse(t, specGraph)

	res, err := solver.ShortestPath(g, "cat", "kitten")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, []string{"cat", "kitten"}, res.Path)
}

func TestShortestPath_Symmetry(t *testing.T) {
	g := mustParse(t, specGraph)

	ab, err := solver.ShortestPath(g, "dog", "kitten")
	require.NoError(t, err)
	ba, err := solver.ShortestPath(g, "kitten", "dog")
	require.NoError(t, err)
	assert.Equal(t, ab.Length, ba.Length)

	// Both witness paths are edge-valid end to end.
	for _, path := range [][]string{ab.Path, ba.Path} {
		for i := 1; i < len(path); i++ {
			assert.True(t, g.HasEdge(path[i-1], path[i]),
				"%s—%s is not an edge", path[i-1], path[i])
		}
	}
}

func TestShortestPath_AsymmetricEdge(t *testing.T) {
	// lion lists tiger; tiger stores nothing back. The solver treats the
	// stored edge as walkable both ways.
	g := mustParse(t, `{
	  "nodes": {
	    "lion": {"edges": {"tiger": 0.97}},
	    "cat":  {"edges": {"lion": 0.9}}
	  }
	}`)

	res, err := solver.ShortestPath(g, "tiger", "cat")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, []string{"tiger", "lion", "cat"}, res.Path)
}

func TestShortestPath_NoPath(t *testing.T) {
	g := mustParse(t, splitGraph)

	_, err := solver.ShortestPath(g, "cat", "moon")
	assert.ErrorIs(t, err, solver.ErrNoPath)
}

func TestShortestPath_BudgetExceeded(t *testing.T) {
	g := mustParse(t, chainGraph(40))

	_, err := solver.ShortestPath(g, "w000", "w039", solver.WithMaxExpansions(3))
	assert.ErrorIs(t, err, solver.ErrBudgetExceeded)

	// A generous budget solves the same query.
	res, err := solver.ShortestPath(g, "w000", "w039")
	require.NoError(t, err)
	assert.Equal(t, 39, res.Length)
	assert.LessOrEqual(t, res.Expansions, solver.DefaultMaxExpansions)
}

func TestShortestPath_ContextCancelled(t *testing.T) {
	g := mustParse(t, chainGraph(10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.ShortestPath(g, "w000", "w009", solver.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_LexicographicWitness(t *testing.T) {
	// Two minimum-length routes a→d: via b and via c, identical weights.
	// The witness must prefer the lexicographically smaller interior.
	g := mustParse(t, `{
	  "nodes": {
	    "a": {"edges": {"b": 0.5, "c": 0.5}},
	    "b": {"edges": {"a": 0.5, "d": 0.5}},
	    "c": {"edges": {"a": 0.5, "d": 0.5}},
	    "d": {"edges": {"b": 0.5, "c": 0.5}}
	  }
	}`)

	for i := 0; i < 5; i++ {
		res, err := solver.ShortestPath(g, "a", "d")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Length)
		assert.Equal(t, []string{"a", "b", "d"}, res.Path)
	}
}

// chainGraph builds w000—w001—…—w(n-1) as a JSON snapshot.
func chainGraph(n int) string {
	doc := `{"nodes": {`
	for i := 0; i < n; i++ {
		if i > 0 {
			doc += ","
		}
		doc += fmt.Sprintf("%q: {\"edges\": {", word(i))
		sep := ""
		if i > 0 {
			doc += fmt.Sprintf("%q: 0.9", word(i-1))
			sep = ", "
		}
		if i < n-1 {
			doc += fmt.Sprintf("%s%q: 0.9", sep, word(i+1))
		}
		doc += "}}"
	}

	return doc + "}}"
}

func word(i int) string { return fmt.Sprintf("w%03d", i) }

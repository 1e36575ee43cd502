package freq_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexipath/lexipath/freq"
	"github.com/lexipath/lexipath/wordgraph"
)

func testVocab() wordgraph.Vocabulary {
	return wordgraph.Vocabulary{
		"cat": {}, "dog": {}, "kitten": {}, "ember": {}, "zephyr": {},
	}
}

func TestBuild_FiltersAgainstVocabulary(t *testing.T) {
	raw := map[string]float64{
		"cat":      900,
		"Dog":      800, // normalized before filtering
		"kitten":   120,
		"quasar":   3, // not in vocabulary: dropped
		"the":      99999,
		" zephyr ": 5,
	}

	idx, stats := freq.Build(raw, testVocab())

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 4, stats.Retained)
	assert.Equal(t, 2, stats.Dropped)
	assert.Equal(t, 4, idx.Len())

	// Keys are always a subset of the supplied vocabulary.
	vocab := testVocab()
	for _, e := range idx.Rarest(idx.Len()) {
		assert.True(t, vocab.Contains(e.Word), "extraneous word %q survived the filter", e.Word)
	}
	assert.False(t, idx.Contains("quasar"))
	assert.False(t, idx.Contains("the"))
}

func TestRarityOf(t *testing.T) {
	idx, _ := freq.Build(map[string]float64{"cat": 900, "ember": 7}, testVocab())

	score, err := idx.RarityOf("Ember")
	require.NoError(t, err)
	assert.Equal(t, 7.0, score)

	_, err = idx.RarityOf("dog")
	assert.ErrorIs(t, err, freq.ErrUnknownWord)
}

func TestRarest_OrderingAndTies(t *testing.T) {
	idx, _ := freq.Build(map[string]float64{
		"cat":    900,
		"dog":    5,
		"ember":  5, // tied with dog: lexicographic order
		"zephyr": 2,
	}, testVocab())

	top := idx.Rarest(3)
	require.Len(t, top, 3)
	assert.Equal(t, "zephyr", top[0].Word)
	assert.Equal(t, "dog", top[1].Word)
	assert.Equal(t, "ember", top[2].Word)

	// Oversized and negative n are clamped.
	assert.Len(t, idx.Rarest(100), 4)
	assert.Empty(t, idx.Rarest(-1))
}

func TestRarest_Reproducible(t *testing.T) {
	raw := map[string]float64{"cat": 3, "dog": 1, "kitten": 2}
	a, _ := freq.Build(raw, testVocab())
	b, _ := freq.Build(raw, testVocab())
	assert.Equal(t, a.Rarest(3), b.Rarest(3))
}

func TestWriteTo_StableOutput(t *testing.T) {
	idx, _ := freq.Build(map[string]float64{"dog": 800, "cat": 900}, testVocab())

	var buf bytes.Buffer
	n, err := idx.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	want := "{\n  \"cat\": 900,\n  \"dog\": 800\n}\n"
	assert.Equal(t, want, buf.String())
}

// Package freq implements the filtered frequency index: construction,
// rarity lookup, rarest-N ranking, and diff-friendly serialization.
package freq

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/lexipath/lexipath/wordgraph"
)

// ErrUnknownWord indicates a rarity lookup for a word the index does not hold.
var ErrUnknownWord = errors.New("freq: word not in frequency index")

// Entry pairs a word with its frequency score (lower = rarer).
type Entry struct {
	Word  string
	Score float64
}

// BuildStats reports how much of the raw table survived the vocabulary filter.
type BuildStats struct {
	Total    int // entries in the raw table
	Retained int // entries kept
	Dropped  int // entries outside the vocabulary
}

// Index is the immutable rarity lookup. Construct with Build.
type Index struct {
	scores map[string]float64

	// ascending holds all entries sorted rarest-first with a lexicographic
	// tie-break, precomputed so Rarest is cheap and reproducible.
	ascending []Entry
}

// Build retains only raw entries whose normalized word is in vocab and
// returns the resulting index plus filter statistics.
// Complexity: O(N log N) over retained entries.
func Build(raw map[string]float64, vocab wordgraph.Vocabulary) (*Index, BuildStats) {
	stats := BuildStats{Total: len(raw)}

	idx := &Index{scores: make(map[string]float64, len(raw))}
	for rawWord, score := range raw {
		word := wordgraph.Normalize(rawWord)
		if _, ok := vocab[word]; !ok {
			stats.Dropped++
			continue
		}
		idx.scores[word] = score
		stats.Retained++
	}

	idx.ascending = make([]Entry, 0, len(idx.scores))
	for word, score := range idx.scores {
		idx.ascending = append(idx.ascending, Entry{Word: word, Score: score})
	}
	sort.Slice(idx.ascending, func(i, j int) bool {
		if idx.ascending[i].Score != idx.ascending[j].Score {
			return idx.ascending[i].Score < idx.ascending[j].Score
		}

		return idx.ascending[i].Word < idx.ascending[j].Word
	})

	return idx, stats
}

// Len returns the number of indexed words.
func (i *Index) Len() int { return len(i.scores) }

// Contains reports whether word is indexed.
func (i *Index) Contains(word string) bool {
	_, ok := i.scores[wordgraph.Normalize(word)]

	return ok
}

// RarityOf returns word's frequency score (lower = rarer),
// or ErrUnknownWord when the word is not indexed.
func (i *Index) RarityOf(word string) (float64, error) {
	score, ok := i.scores[wordgraph.Normalize(word)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}

	return score, nil
}

// Rarest returns the n rarest words ascending by score, ties broken
// lexicographically. n larger than the index yields every entry.
// The returned slice is freshly allocated.
func (i *Index) Rarest(n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(i.ascending) {
		n = len(i.ascending)
	}
	out := make([]Entry, n)
	copy(out, i.ascending[:n])

	return out
}

// WriteTo serializes the filtered table as pretty-printed JSON with sorted
// keys, the diff-friendly on-disk contract for frequency output.
func (i *Index) WriteTo(w io.Writer) (int64, error) {
	// encoding/json sorts map keys, which keeps the output stable.
	raw, err := json.MarshalIndent(i.scores, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("freq: encoding frequency table: %w", err)
	}
	raw = append(raw, '\n')
	n, err := w.Write(raw)

	return int64(n), err
}

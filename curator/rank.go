package curator

import (
	"sort"

	"github.com/lexipath/lexipath/freq"
)

// ScoreFunc scores a puzzle's desirability: higher = scheduled earlier.
// Implementations must be pure functions of the puzzle and the index so
// repeated runs reproduce identical ordering. idx may be nil.
type ScoreFunc func(p *Puzzle, idx *freq.Index) float64

// DefaultScore is the documented default desirability policy:
//
//	score = optimalPathLength + rarityBonus(start) + rarityBonus(target)
//
// where rarityBonus(w) = 1/(1+frequency(w)) ∈ (0, 1], and 0 for words the
// index does not hold. Longer puzzles between rarer endpoints rank first;
// the bonus is bounded so rarity can break ties between difficulty classes
// but never outweigh a full extra hop.
func DefaultScore(p *Puzzle, idx *freq.Index) float64 {
	return float64(p.OptimalPathLength) + rarityBonus(p.StartWord, idx) + rarityBonus(p.TargetWord, idx)
}

func rarityBonus(word string, idx *freq.Index) float64 {
	if idx == nil {
		return 0
	}
	f, err := idx.RarityOf(word)
	if err != nil || f < 0 {
		return 0
	}

	return 1 / (1 + f)
}

// Rank orders puzzles by descending score, ties broken by (start, target)
// word order. The input slice is left untouched; the result is a fresh
// slice sharing the same Puzzle records. Deterministic for identical inputs.
func Rank(puzzles []*Puzzle, idx *freq.Index, score ScoreFunc) []*Puzzle {
	if score == nil {
		score = DefaultScore
	}

	ranked := make([]*Puzzle, len(puzzles))
	copy(ranked, puzzles)
	scores := make(map[*Puzzle]float64, len(ranked))
	for _, p := range ranked {
		scores[p] = score(p, idx)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		if ranked[i].StartWord != ranked[j].StartWord {
			return ranked[i].StartWord < ranked[j].StartWord
		}

		return ranked[i].TargetWord < ranked[j].TargetWord
	})

	return ranked
}

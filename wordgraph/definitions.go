package wordgraph

import (
	"encoding/json"
	"fmt"
	"io"
)

// LoadDefinitions reads the companion definitions document, a flat mapping
// from word to its dictionary definitions:
//
//	{"cat": ["feline mammal usually having thick soft fur", ...], ...}
//
// Keys are normalized; duplicate normalized words keep the first entry seen.
// The definition set widens the vocabulary the frequency filter accepts, so
// rarity data survives for words that carry a definition but no node record.
func LoadDefinitions(r io.Reader) (map[string][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wordgraph: reading definitions: %w", err)
	}

	var parsed map[string][]string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("wordgraph: malformed definitions document: %w", err)
	}

	defs := make(map[string][]string, len(parsed))
	for rawWord, list := range parsed {
		word := Normalize(rawWord)
		if word == "" {
			continue
		}
		if _, seen := defs[word]; !seen {
			defs[word] = list
		}
	}

	return defs, nil
}

// DefinitionsVocabulary extracts the word set of a definitions mapping.
func DefinitionsVocabulary(defs map[string][]string) Vocabulary {
	vocab := make(Vocabulary, len(defs))
	for w := range defs {
		vocab[Normalize(w)] = struct{}{}
	}

	return vocab
}

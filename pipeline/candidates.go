package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lexipath/lexipath/curator"
)

// ErrMalformedCandidates indicates an unparseable candidate pool document.
var ErrMalformedCandidates = errors.New("pipeline: malformed candidate pool")

// candidateDocument is the enveloped form emitted by the pair sampler:
// {"version": ..., "lastUpdated": ..., "pairs": [...]}.
type candidateDocument struct {
	Version     string              `json:"version"`
	LastUpdated string              `json:"lastUpdated"`
	Pairs       []curator.Candidate `json:"pairs"`
}

// LoadCandidates reads a candidate pool file. Both the enveloped sampler
// output and a bare JSON array of candidates are accepted.
func LoadCandidates(path string) ([]curator.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCandidates, err)
	}

	var doc candidateDocument
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Pairs != nil {
		return doc.Pairs, nil
	}

	var bare []curator.Candidate
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCandidates, err)
	}

	return bare, nil
}

// LoadFrequencies reads a flat word → frequency mapping.
func LoadFrequencies(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reading frequencies: %w", err)
	}

	var table map[string]float64
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("pipeline: malformed frequency table: %w", err)
	}

	return table, nil
}

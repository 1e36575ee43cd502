// Package game implements the session state machine and live query service.
package game

import (
	"errors"
	"fmt"

	"github.com/lexipath/lexipath/wordgraph"
)

// Sentinel errors for session play.
var (
	// ErrInvalidChallenge indicates the session endpoints are unusable:
	// unknown words or start equal to target.
	ErrInvalidChallenge = errors.New("game: invalid challenge endpoints")

	// ErrNotCandidate indicates a chosen word is not among the current
	// word's ranked neighbors.
	ErrNotCandidate = errors.New("game: word is not a current candidate")

	// ErrSessionOver indicates a move was attempted in a terminal state.
	ErrSessionOver = errors.New("game: session already finished")
)

// Status is the session lifecycle state.
type Status int

const (
	// Playing means the player is still navigating toward the target.
	Playing Status = iota

	// Won means the player reached the target word.
	Won

	// GaveUp means the player revealed the solution and forfeited.
	GaveUp
)

// String implements fmt.Stringer for log output.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case GaveUp:
		return "gave_up"
	default:
		return "unknown"
	}
}

// Session is one attempt at one challenge. Not safe for concurrent use;
// a session belongs to a single player loop.
type Session struct {
	graph   *wordgraph.Graph
	target  string
	current string
	path    []string
	status  Status
}

// NewSession starts a session at start aiming for target.
func NewSession(g *wordgraph.Graph, start, target string) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidChallenge)
	}
	start, target = wordgraph.Normalize(start), wordgraph.Normalize(target)
	if start == target {
		return nil, fmt.Errorf("%w: start equals target", ErrInvalidChallenge)
	}
	for _, w := range []string{start, target} {
		if !g.Contains(w) {
			return nil, fmt.Errorf("%w: %q not in graph", ErrInvalidChallenge, w)
		}
	}

	return &Session{
		graph:   g,
		target:  target,
		current: start,
		path:    []string{start},
	}, nil
}

// Status reports the session state.
func (s *Session) Status() Status { return s.status }

// Current returns the word the player stands on.
func (s *Session) Current() string { return s.current }

// Target returns the destination word.
func (s *Session) Target() string { return s.target }

// Steps returns the number of moves made so far.
func (s *Session) Steps() int { return len(s.path) - 1 }

// Path returns a copy of the words visited, start first.
func (s *Session) Path() []string {
	out := make([]string, len(s.path))
	copy(out, s.path)

	return out
}

// Candidates returns the ranked neighbor set of the current word, the
// button grid the UI renders. Empty in terminal states.
func (s *Session) Candidates() []wordgraph.Neighbor {
	if s.status != Playing {
		return nil
	}
	ns, err := s.graph.NeighborsOf(s.current)
	if err != nil {
		// The current word always came from the graph itself.
		return nil
	}

	return ns
}

// Choose moves to word, which must be one of the current candidates.
// Reaching the target transitions to Won.
func (s *Session) Choose(word string) (Status, error) {
	if s.status != Playing {
		return s.status, ErrSessionOver
	}
	word = wordgraph.Normalize(word)

	valid := false
	for _, n := range s.Candidates() {
		if n.Word == word {
			valid = true
			break
		}
	}
	if !valid {
		return s.status, fmt.Errorf("%w: %q", ErrNotCandidate, word)
	}

	s.current = word
	s.path = append(s.path, word)
	if word == s.target {
		s.status = Won
	}

	return s.status, nil
}

// GiveUp forfeits the session.
func (s *Session) GiveUp() Status {
	if s.status == Playing {
		s.status = GaveUp
	}

	return s.status
}

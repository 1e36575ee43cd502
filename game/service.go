package game

import (
	"errors"
	"time"

	"github.com/lexipath/lexipath/schedule"
	"github.com/lexipath/lexipath/wordgraph"
)

// ErrNotAvailable is the only failure the live query surface ever reports:
// a small, user-presentable "nothing to show" signal. Internal solver or
// ledger errors never cross this boundary.
var ErrNotAvailable = errors.New("game: not available")

// Service is the read-only live surface the UI layer consumes. The graph
// and ledger are immutable, so a single Service may serve any number of
// concurrent readers.
type Service struct {
	graph  *wordgraph.Graph
	ledger *schedule.Ledger
}

// NewService wraps a loaded graph and a published ledger.
func NewService(g *wordgraph.Graph, l *schedule.Ledger) *Service {
	return &Service{graph: g, ledger: l}
}

// NeighborsOf returns the ranked candidate list for word, or ErrNotAvailable
// if the word is outside the vocabulary.
func (s *Service) NeighborsOf(word string) ([]wordgraph.Neighbor, error) {
	if s.graph == nil {
		return nil, ErrNotAvailable
	}
	ns, err := s.graph.NeighborsOf(word)
	if err != nil {
		return nil, ErrNotAvailable
	}

	return ns, nil
}

// TodaysChallenge resolves the challenge for date, or ErrNotAvailable if the
// ledger holds no entry for it.
func (s *Service) TodaysChallenge(date time.Time) (*schedule.Entry, error) {
	if s.ledger == nil {
		return nil, ErrNotAvailable
	}
	e, err := s.ledger.Challenge(date)
	if err != nil {
		return nil, ErrNotAvailable
	}

	return e, nil
}

// StartToday opens a session for date's challenge.
func (s *Service) StartToday(date time.Time) (*Session, error) {
	e, err := s.TodaysChallenge(date)
	if err != nil {
		return nil, err
	}
	sess, err := NewSession(s.graph, e.StartWord, e.TargetWord)
	if err != nil {
		return nil, ErrNotAvailable
	}

	return sess, nil
}

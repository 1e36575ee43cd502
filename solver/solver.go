package solver

import (
	"fmt"

	"github.com/lexipath/lexipath/wordgraph"
)

// visitRecord links a visited vertex back to the frontier that reached it.
type visitRecord struct {
	parent string // empty for the seed vertex
	depth  int
}

// side holds the mutable search state of one frontier.
type side struct {
	visited  map[string]visitRecord
	frontier []string
}

// search encapsulates one bidirectional query.
type search struct {
	graph      *wordgraph.Graph
	opts       Options
	forward    side // grows from start
	backward   side // grows from target
	expansions int
}

// ShortestPath computes the minimum hop count between start and target in g
// and one deterministic witness path of that length.
// Returns ErrGraphNil, ErrUnknownWord, ErrSameWord or ErrOptionViolation for
// invalid input, ErrNoPath for disconnected endpoints, and ErrBudgetExceeded
// when the expansion cap is reached first.
func ShortestPath(g *wordgraph.Graph, start, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, target = wordgraph.Normalize(start), wordgraph.Normalize(target)
	if start == target {
		return nil, fmt.Errorf("%w: %q", ErrSameWord, start)
	}
	for _, w := range []string{start, target} {
		if !g.Contains(w) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}

	s := &search{
		graph: g,
		opts:  o,
		forward: side{
			visited:  map[string]visitRecord{start: {}},
			frontier: []string{start},
		},
		backward: side{
			visited:  map[string]visitRecord{target: {}},
			frontier: []string{target},
		},
	}

	return s.run(start, target)
}

// run alternates one full hop per side until the frontiers meet,
// one side exhausts its component, or the budget runs out.
func (s *search) run(start, target string) (*Result, error) {
	for {
		for _, own := range []*side{&s.forward, &s.backward} {
			other := &s.backward
			if own == other {
				other = &s.forward
			}

			grown, err := s.expand(own)
			if err != nil {
				return nil, err
			}
			if meets := meetingPoints(grown, own, other); len(meets) > 0 {
				return s.reconstruct(meets), nil
			}
			if len(own.frontier) == 0 {
				// This side exhausted its whole component without touching
				// the other frontier.
				return nil, fmt.Errorf("%w: %q and %q are disconnected", ErrNoPath, start, target)
			}
		}
	}
}

// expand advances one side by a single hop, returning the vertices
// discovered at the new depth.
func (s *search) expand(sd *side) ([]string, error) {
	next := make([]string, 0, len(sd.frontier))
	for _, cur := range sd.frontier {
		// cancellation check (once per expanded vertex)
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		if s.expansions >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d vertices expanded", ErrBudgetExceeded, s.expansions)
		}
		s.expansions++

		depth := sd.visited[cur].depth
		adjacent, err := s.graph.Adjacent(cur)
		if err != nil {
			// Unreachable for vertices discovered through the graph itself.
			return nil, err
		}
		for _, nbr := range adjacent {
			if _, seen := sd.visited[nbr.Word]; seen {
				continue
			}
			sd.visited[nbr.Word] = visitRecord{parent: cur, depth: depth + 1}
			next = append(next, nbr.Word)
		}
	}
	sd.frontier = next

	return next, nil
}

// meetingPoints filters the freshly grown layer down to the vertices already
// visited by the opposite side that realize the minimum total length.
func meetingPoints(grown []string, own, other *side) []string {
	best := -1
	var meets []string
	for _, w := range grown {
		rec, ok := other.visited[w]
		if !ok {
			continue
		}
		total := own.visited[w].depth + rec.depth
		switch {
		case best == -1 || total < best:
			best = total
			meets = []string{w}
		case total == best:
			meets = append(meets, w)
		}
	}

	return meets
}

// reconstruct joins forward and backward parent chains through each meeting
// vertex and keeps the lexicographically smallest witness sequence.
func (s *search) reconstruct(meets []string) *Result {
	var best []string
	for _, m := range meets {
		path := s.join(m)
		if best == nil || lessPath(path, best) {
			best = path
		}
	}

	return &Result{
		Length:     len(best) - 1,
		Path:       best,
		Expansions: s.expansions,
	}
}

// join builds start → … → m → … → target through the two parent chains.
func (s *search) join(m string) []string {
	// Forward half, reversed into place.
	var head []string
	for cur := m; ; {
		head = append(head, cur)
		rec := s.forward.visited[cur]
		if rec.parent == "" {
			break
		}
		cur = rec.parent
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	// Backward half already runs toward the target.
	for cur := m; ; {
		rec := s.backward.visited[cur]
		if rec.parent == "" {
			break
		}
		cur = rec.parent
		head = append(head, cur)
	}
	return head
}

// lessPath orders word sequences lexicographically element by element.
func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

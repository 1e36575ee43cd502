package schedule_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexipath/lexipath/curator"
	"github.com/lexipath/lexipath/schedule"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func testScheduler() *schedule.Scheduler {
	return &schedule.Scheduler{
		Version:     "1.0",
		Description: "Daily semantic path challenges",
		Now:         fixedClock,
	}
}

// pool builds n distinct ranked puzzles.
func pool(n int) []*curator.Puzzle {
	puzzles := make([]*curator.Puzzle, n)
	for i := range puzzles {
		start := fmt.Sprintf("start%03d", i)
		target := fmt.Sprintf("target%03d", i)
		puzzles[i] = &curator.Puzzle{
			StartWord:         start,
			TargetWord:        target,
			OptimalPathLength: 4,
			ExemplarPath:      []string{start, "mid1", "mid2", "mid3", target},
			Meta:              curator.Meta{Model: "bidirectional-bfs", HeuristicScore: 1.4},
		}
	}

	return puzzles
}

func TestGenerate_PositionalAssignment(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	ledger, err := s.Generate(pool(10), start, 10)
	require.NoError(t, err)
	assert.Equal(t, schedule.Published, s.State())
	assert.Equal(t, "1.0", ledger.Version)
	assert.Equal(t, "2026-03-01", ledger.LastUpdated)
	require.Len(t, ledger.Challenges, 10)

	for i, e := range ledger.Challenges {
		wantDate := start.AddDate(0, 0, i).Format(schedule.DateFormat)
		assert.Equal(t, wantDate, e.Date)
		assert.Equal(t, e.Date, e.ID, "id and date must be bijective")
		assert.Equal(t, fmt.Sprintf("start%03d", i), e.StartWord)
		assert.Equal(t, 4, e.OptimalPathLength)
		assert.Equal(t, e.AISolution.StepsTaken, e.OptimalPathLength)
		assert.Equal(t, "bidirectional-bfs", e.AISolution.Model)
	}
}

func TestGenerate_InsufficientPuzzles(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	// 364 accepted puzzles cannot fill a 365-day year.
	_, err := s.Generate(pool(364), start, 365)
	assert.ErrorIs(t, err, schedule.ErrInsufficientPuzzles)

	// The caller may explicitly accept a shorter run.
	ledger, err := s.Generate(pool(364), start, 364)
	require.NoError(t, err)
	assert.Len(t, ledger.Challenges, 364)
}

func TestRegenerate_PreservesPublishedEntries(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	original, err := s.Generate(pool(10), start, 10)
	require.NoError(t, err)

	// Everything through D10 is published: a fresh pool must change nothing.
	allPublished, err := s.Regenerate(original, pool(10)[5:], start.AddDate(0, 0, 9))
	require.NoError(t, err)
	assert.Equal(t, original.Challenges, allPublished.Challenges)

	// Published through D4: D1..D4 survive verbatim, D5..D10 come from the
	// superseding pool in rank order.
	fresh := make([]*curator.Puzzle, 6)
	for i := range fresh {
		fresh[i] = &curator.Puzzle{
			StartWord:         fmt.Sprintf("new%02d", i),
			TargetWord:        fmt.Sprintf("other%02d", i),
			OptimalPathLength: 5,
			ExemplarPath:      []string{fmt.Sprintf("new%02d", i), "a", "b", "c", "d", fmt.Sprintf("other%02d", i)},
			Meta:              curator.Meta{Model: "bidirectional-bfs"},
		}
	}
	regen, err := s.Regenerate(original, fresh, start.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, regen.Challenges, 10)
	assert.Equal(t, original.Challenges[:4], regen.Challenges[:4])
	for i := 4; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("new%02d", i-4), regen.Challenges[i].StartWord)
		assert.Equal(t, original.Challenges[i].Date, regen.Challenges[i].Date)
	}
}

func TestRegenerate_InsufficientFuturePool(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	original, err := s.Generate(pool(10), start, 10)
	require.NoError(t, err)

	// 6 future slots, pool of 5.
	_, err = s.Regenerate(original, pool(5), start.AddDate(0, 0, 3))
	assert.ErrorIs(t, err, schedule.ErrInsufficientPuzzles)

	_, err = s.Regenerate(nil, pool(5), start)
	assert.ErrorIs(t, err, schedule.ErrMalformedLedger)
}

func TestLedger_Challenge(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	ledger, err := s.Generate(pool(3), start, 3)
	require.NoError(t, err)

	e, err := ledger.Challenge(start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "2026-04-02", e.ID)
	assert.Equal(t, "start001", e.StartWord)

	_, err = ledger.Challenge(start.AddDate(0, 0, 30))
	assert.ErrorIs(t, err, schedule.ErrNoChallenge)
}

func TestWriteFile_RoundTripAndStability(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	ledger, err := s.Generate(pool(5), start, 5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "daily_challenges.json")
	require.NoError(t, ledger.WriteFile(path))

	loaded, err := schedule.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)

	// Identical regeneration produces a byte-identical document.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	again, err := s.Generate(pool(5), start, 5)
	require.NoError(t, err)
	require.NoError(t, again.WriteFile(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFile_FailureLeavesPreviousLedger(t *testing.T) {
	s := testScheduler()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	ledger, err := s.Generate(pool(2), start, 2)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "daily_challenges.json")
	require.NoError(t, ledger.WriteFile(path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Writing into a path whose parent is a plain file must fail cleanly.
	bad := filepath.Join(path, "nested.json")
	err = ledger.WriteFile(bad)
	assert.ErrorIs(t, err, schedule.ErrLedgerWrite)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()

	_, err := schedule.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, schedule.ErrMalformedLedger)

	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{"), 0o644))
	_, err = schedule.Load(garbled)
	assert.ErrorIs(t, err, schedule.ErrMalformedLedger)

	// Gap in the date sequence violates the ledger invariant.
	gapped := filepath.Join(dir, "gapped.json")
	doc := `{"version":"1.0","lastUpdated":"2026-03-01","description":"d","challenges":[
	  {"id":"2026-04-01","date":"2026-04-01","startWord":"a","targetWord":"b","optimalPathLength":4,"aiSolution":{"path":["a","b"],"stepsTaken":4,"model":"m","heuristicScore":1}},
	  {"id":"2026-04-03","date":"2026-04-03","startWord":"c","targetWord":"d","optimalPathLength":4,"aiSolution":{"path":["c","d"],"stepsTaken":4,"model":"m","heuristicScore":1}}
	]}`
	require.NoError(t, os.WriteFile(gapped, []byte(doc), 0o644))
	_, err = schedule.Load(gapped)
	assert.ErrorIs(t, err, schedule.ErrMalformedLedger)
}

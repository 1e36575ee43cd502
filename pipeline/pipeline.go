package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lexipath/lexipath/curator"
	"github.com/lexipath/lexipath/freq"
	"github.com/lexipath/lexipath/schedule"
	"github.com/lexipath/lexipath/wordgraph"
)

// Report summarizes one completed curation run.
type Report struct {
	GraphOrder  int
	FreqStats   freq.BuildStats
	Summary     curator.Summary
	Scheduled   int
	Regenerated bool
	LedgerPath  string
}

// Run executes the full batch described by cfg. If a ledger already exists
// at the output path, the run regenerates it, preserving every entry dated
// on or before today; otherwise it generates a fresh span.
func Run(ctx context.Context, cfg *Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := cfg.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", ErrConfig, err)
	}

	graph, err := loadGraph(cfg.GraphPath)
	if err != nil {
		return nil, err
	}
	log.Info("graph loaded",
		zap.String("path", cfg.GraphPath),
		zap.Int("words", graph.Order()),
		zap.Int("k", graph.MaxNeighbors()),
	)

	rares, stats, err := buildFrequencyIndex(cfg, graph, log)
	if err != nil {
		return nil, err
	}

	candidates, err := LoadCandidates(cfg.CandidatesPath)
	if err != nil {
		return nil, err
	}
	log.Info("candidate pool loaded",
		zap.String("path", cfg.CandidatesPath),
		zap.Int("candidates", len(candidates)),
	)

	cu, err := curator.New(graph, rares, cfg.CuratorConfig())
	if err != nil {
		return nil, err
	}
	accepted, summary, err := cu.EvaluateAll(ctx, candidates, cfg.Workers)
	if err != nil {
		return nil, err
	}
	logSummary(log, summary)

	ranked := curator.Rank(accepted, rares, nil)

	sched := &schedule.Scheduler{Version: cfg.Version, Description: cfg.Description}
	ledger, regenerated, err := buildLedger(sched, cfg, ranked, start)
	if err != nil {
		return nil, err
	}
	if err := ledger.WriteFile(cfg.LedgerPath); err != nil {
		return nil, err
	}
	log.Info("ledger written",
		zap.String("path", cfg.LedgerPath),
		zap.Int("challenges", len(ledger.Challenges)),
		zap.Bool("regenerated", regenerated),
	)

	return &Report{
		GraphOrder:  graph.Order(),
		FreqStats:   stats,
		Summary:     summary,
		Scheduled:   len(ledger.Challenges),
		Regenerated: regenerated,
		LedgerPath:  cfg.LedgerPath,
	}, nil
}

func logSummary(log *zap.Logger, s curator.Summary) {
	fields := []zap.Field{
		zap.Int("evaluated", s.Evaluated),
		zap.Int("accepted", s.Accepted),
		zap.Int("budget_exceeded", s.BudgetExceeded),
	}
	for reason, n := range s.Rejected {
		fields = append(fields, zap.Int("rejected_"+string(reason), n))
	}
	log.Info("curation finished", fields...)
}

func loadGraph(path string) (*wordgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wordgraph.ErrMalformedGraph, err)
	}
	defer f.Close()

	return wordgraph.Load(f)
}

// buildFrequencyIndex loads the optional frequency table, filters it against
// the graph vocabulary widened by the optional definitions set, and writes
// the filtered table back out when configured.
func buildFrequencyIndex(cfg *Config, graph *wordgraph.Graph, log *zap.Logger) (*freq.Index, freq.BuildStats, error) {
	if cfg.FrequenciesPath == "" {
		return nil, freq.BuildStats{}, nil
	}

	raw, err := LoadFrequencies(cfg.FrequenciesPath)
	if err != nil {
		return nil, freq.BuildStats{}, err
	}

	vocab := graph.Vocabulary()
	if cfg.DefinitionsPath != "" {
		f, err := os.Open(cfg.DefinitionsPath)
		if err != nil {
			return nil, freq.BuildStats{}, fmt.Errorf("pipeline: opening definitions: %w", err)
		}
		defs, err := wordgraph.LoadDefinitions(f)
		f.Close()
		if err != nil {
			return nil, freq.BuildStats{}, err
		}
		vocab = vocab.Union(wordgraph.DefinitionsVocabulary(defs))
	}

	idx, stats := freq.Build(raw, vocab)
	log.Info("frequency index built",
		zap.Int("total", stats.Total),
		zap.Int("retained", stats.Retained),
		zap.Int("dropped", stats.Dropped),
	)

	if cfg.FrequencyOutputPath != "" {
		out, err := os.Create(cfg.FrequencyOutputPath)
		if err != nil {
			return nil, stats, fmt.Errorf("pipeline: writing filtered frequencies: %w", err)
		}
		if _, err := idx.WriteTo(out); err != nil {
			out.Close()

			return nil, stats, fmt.Errorf("pipeline: writing filtered frequencies: %w", err)
		}
		if err := out.Close(); err != nil {
			return nil, stats, fmt.Errorf("pipeline: writing filtered frequencies: %w", err)
		}
	}

	return idx, stats, nil
}

// buildLedger chooses between a fresh generation and a publication-preserving
// regeneration, depending on whether a ledger already exists at the target.
func buildLedger(sched *schedule.Scheduler, cfg *Config, ranked []*curator.Puzzle, start time.Time) (*schedule.Ledger, bool, error) {
	prev, err := schedule.Load(cfg.LedgerPath)
	switch {
	case err == nil:
		ledger, rerr := sched.Regenerate(prev, ranked, today())

		return ledger, true, rerr
	case errors.Is(err, schedule.ErrMalformedLedger) && !fileExists(cfg.LedgerPath):
		ledger, gerr := sched.Generate(ranked, start, cfg.Count)

		return ledger, false, gerr
	default:
		// An existing but unreadable ledger must never be overwritten blindly.
		return nil, false, err
	}
}

func today() time.Time {
	return time.Now().UTC()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// Command lexipath-curate runs the offline curation batch: it loads the
// semantic graph and the playtested candidate pool, filters and ranks the
// pool, and publishes the daily challenge ledger.
//
// Usage:
//
//	lexipath-curate --config curate.yaml [--verbose]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lexipath/lexipath/pipeline"
)

func main() {
	var (
		configPath = pflag.String("config", "", "path to the YAML run configuration (required)")
		verbose    = pflag.Bool("verbose", false, "enable debug logging")
	)
	pflag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "lexipath-curate: --config is required")
		pflag.Usage()
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexipath-curate: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := pipeline.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("loading config", zap.String("path", *configPath), zap.Error(err))
	}

	report, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		log.Fatal("curation run failed", zap.Error(err))
	}

	log.Info("run complete",
		zap.Int("graph_words", report.GraphOrder),
		zap.Int("evaluated", report.Summary.Evaluated),
		zap.Int("accepted", report.Summary.Accepted),
		zap.Int("scheduled", report.Scheduled),
		zap.Bool("regenerated", report.Regenerated),
		zap.String("ledger", report.LedgerPath),
	)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// Command lexipath-serve exposes the live query surface over HTTP: the
// ranked neighbor list for any word and the published challenge of the day.
// Both resources are read-only; the graph and ledger are loaded once at
// startup and never mutated.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lexipath/lexipath/game"
	"github.com/lexipath/lexipath/schedule"
	"github.com/lexipath/lexipath/wordgraph"
)

func main() {
	var (
		graphPath  = pflag.String("graph", "", "path to the semantic graph snapshot (required)")
		ledgerPath = pflag.String("ledger", "", "path to the published challenge ledger (required)")
		addr       = pflag.String("addr", ":8080", "listen address")
		verbose    = pflag.Bool("verbose", false, "enable debug logging")
	)
	pflag.Parse()

	if *graphPath == "" || *ledgerPath == "" {
		fmt.Fprintln(os.Stderr, "lexipath-serve: --graph and --ledger are required")
		pflag.Usage()
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexipath-serve: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	svc, err := loadService(*graphPath, *ledgerPath)
	if err != nil {
		log.Fatal("loading data", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", *addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func loadService(graphPath, ledgerPath string) (*game.Service, error) {
	f, err := os.Open(graphPath)
	if err != nil {
		return nil, fmt.Errorf("opening graph: %w", err)
	}
	defer f.Close()

	graph, err := wordgraph.Load(f)
	if err != nil {
		return nil, err
	}
	ledger, err := schedule.Load(ledgerPath)
	if err != nil {
		return nil, err
	}

	return game.NewService(graph, ledger), nil
}

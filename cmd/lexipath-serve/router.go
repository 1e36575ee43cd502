package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lexipath/lexipath/game"
	"github.com/lexipath/lexipath/wordgraph"
)

type server struct {
	svc *game.Service
	log *zap.Logger
}

func newRouter(svc *game.Service, log *zap.Logger) http.Handler {
	s := &server{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/challenge/today", s.handleToday)
		r.Get("/neighbors/{word}", s.handleNeighbors)
	})

	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleToday serves the ledger entry for the current UTC date. The entry
// carries the reference solution; hiding it from players is the client's
// concern, same as the published ledger file itself.
func (s *server) handleToday(w http.ResponseWriter, r *http.Request) {
	entry, err := s.svc.TodaysChallenge(time.Now().UTC())
	if err != nil {
		s.writeError(w, http.StatusNotFound, "no challenge published for today")

		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

type neighborsResponse struct {
	Word      string               `json:"word"`
	Neighbors []wordgraph.Neighbor `json:"neighbors"`
}

func (s *server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	ns, err := s.svc.NeighborsOf(word)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "unknown word")

		return
	}
	s.writeJSON(w, http.StatusOK, neighborsResponse{
		Word:      wordgraph.Normalize(word),
		Neighbors: ns,
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		s.log.Warn("encoding response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

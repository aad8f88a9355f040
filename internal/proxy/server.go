// Package proxy implements the two HTTP endpoints this codebase owns: a
// pass-through to the external AI-agent service and an OGP scraping
// endpoint. Both are single-call forwarders with a timeout; there is no
// business logic here.
package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

type Server struct {
	addr          string
	agentEndpoint string
	http          *http.Client
	log           logging.Logger
}

func NewServer(addr, agentEndpoint string, log logging.Logger) *Server {
	return &Server{
		addr:          addr,
		agentEndpoint: agentEndpoint,
		http:          &http.Client{},
		log:           log,
	}
}

// Routes mounts the forwarder endpoints.
//
//	POST /api/agent     → handleAgent
//	GET  /api/ogp?url=  → handleOGP
//	GET  /healthz       → liveness probe
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	r.Post("/api/agent", s.handleAgent)
	r.Get("/api/ogp", s.handleOGP)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info(ctx, "forwarder server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Package server exposes noise generation over HTTP: a direct value
// endpoint, a chunk endpoint with cache-aside persistence, and a websocket
// stream for bulk chunk consumers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/worldgen/internal/storage"
	"github.com/louisbranch/worldgen/internal/telemetry"
)

const defaultShutdownTimeout = 5 * time.Second

// Config defines the inputs for the chunk server.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server hosts the worldgen HTTP and websocket API.
type Server struct {
	httpServer *http.Server
	chunks     storage.ChunkStore
	emitter    *telemetry.Emitter
	tracer     trace.Tracer
	upgrader   websocket.Upgrader
}

// New creates a configured server. chunks and emitter may be nil, in which
// case every chunk is generated fresh and no telemetry is recorded.
func New(cfg Config, chunks storage.ChunkStore, emitter *telemetry.Emitter) *Server {
	s := &Server{
		chunks:  chunks,
		emitter: emitter,
		tracer:  otel.Tracer("worldgen/server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/v1/value", s.handleValue)
	mux.HandleFunc("/v1/chunk", s.handleChunk)
	mux.HandleFunc("/v1/stream", s.handleStream)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	log.Printf("worldgen server listening at %s", s.httpServer.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

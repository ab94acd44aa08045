package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/worldgen/internal/storage"
	"github.com/louisbranch/worldgen/internal/telemetry"
	"github.com/louisbranch/worldgen/noise"
	"github.com/louisbranch/worldgen/noisemap"
)

// maxChunkEdge bounds requested chunk dimensions so a single request
// cannot exhaust memory.
const maxChunkEdge = 1024

// ChunkRequest describes one noise map chunk to generate. Zero values for
// the perlin parameters select the library defaults.
type ChunkRequest struct {
	Seed       int64   `json:"seed"`
	SeedString string  `json:"seed_string,omitempty"`
	StepX      float64 `json:"step_x"`
	StepY      float64 `json:"step_y"`
	Width      int64   `json:"width"`
	Height     int64   `json:"height"`
	X          int64   `json:"x"`
	Y          int64   `json:"y"`

	Octaves     int     `json:"octaves,omitempty"`
	Frequency   float64 `json:"frequency,omitempty"`
	Persistence float64 `json:"persistence,omitempty"`
	Lacunarity  float64 `json:"lacunarity,omitempty"`
}

// ChunkResponse carries a generated chunk back to the caller.
type ChunkResponse struct {
	Seed   int64       `json:"seed"`
	X      int64       `json:"x"`
	Y      int64       `json:"y"`
	Rows   [][]float64 `json:"rows"`
	Cached bool        `json:"cached"`
}

// ValueResponse carries a single lattice hash value.
type ValueResponse struct {
	X     int32   `json:"x"`
	Y     int32   `json:"y"`
	Seed  int32   `json:"seed"`
	Value float64 `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	x, err := parseInt32(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid x: %v", err))
		return
	}
	y, err := parseInt32(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid y: %v", err))
		return
	}
	seed, err := parseInt32(r.URL.Query().Get("seed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid seed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, ValueResponse{
		X:     x,
		Y:     y,
		Seed:  seed,
		Value: noise.GenerateRandomValue(x, y, seed),
	})
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ChunkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}

	resp, err := s.generateChunk(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// generateChunk resolves a chunk request through the cache when a store is
// configured, generating and persisting on miss.
func (s *Server) generateChunk(ctx context.Context, req ChunkRequest) (ChunkResponse, error) {
	if err := validateChunkRequest(&req); err != nil {
		return ChunkResponse{}, err
	}

	key := chunkKey(req)
	ctx, span := s.tracer.Start(ctx, "server.GenerateChunk", trace.WithAttributes(
		attribute.String("chunk.generator", key.Generator),
		attribute.Int64("chunk.seed", key.Seed),
		attribute.Int64("chunk.x", key.X),
		attribute.Int64("chunk.y", key.Y),
	))
	defer span.End()

	if s.chunks != nil {
		rows, err := s.chunks.GetChunk(ctx, key)
		switch {
		case err == nil:
			s.emit(ctx, telemetry.KindChunkCacheHit, key)
			return ChunkResponse{Seed: req.Seed, X: req.X, Y: req.Y, Rows: rows, Cached: true}, nil
		case !errors.Is(err, storage.ErrNotFound):
			// Cache trouble should not fail generation.
			log.Printf("chunk cache read: %v", err)
		}
	}

	perlin := noise.NewPerlin(
		noise.Octaves(req.Octaves),
		noise.Frequency(req.Frequency),
		noise.Persistence(req.Persistence),
		noise.Lacunarity(req.Lacunarity),
	)
	nm := noisemap.New(perlin,
		noisemap.WithSeed(req.Seed),
		noisemap.WithStep(req.StepX, req.StepY),
		noisemap.WithSize(req.Width, req.Height),
	)
	rows := nm.GenerateChunk(req.X, req.Y)

	if s.chunks != nil {
		if err := s.chunks.PutChunk(ctx, key, rows); err != nil {
			log.Printf("chunk cache write: %v", err)
		}
	}
	s.emit(ctx, telemetry.KindChunkGenerated, key)

	return ChunkResponse{Seed: req.Seed, X: req.X, Y: req.Y, Rows: rows, Cached: false}, nil
}

// validateChunkRequest normalizes defaults and rejects unusable requests.
func validateChunkRequest(req *ChunkRequest) error {
	if req.SeedString != "" {
		req.Seed = noisemap.SeedOf(req.SeedString)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("chunk size %dx%d is not positive", req.Width, req.Height)
	}
	if req.Width > maxChunkEdge || req.Height > maxChunkEdge {
		return fmt.Errorf("chunk size %dx%d exceeds limit %d", req.Width, req.Height, maxChunkEdge)
	}
	if req.Octaves < 0 || req.Frequency < 0 || req.Persistence < 0 || req.Lacunarity < 0 {
		return fmt.Errorf("perlin parameters (octaves=%d, frequency=%g, persistence=%g, lacunarity=%g) must not be negative",
			req.Octaves, req.Frequency, req.Persistence, req.Lacunarity)
	}
	if req.Octaves == 0 {
		req.Octaves = noise.DefaultOctaves
	}
	if req.Frequency == 0 {
		req.Frequency = noise.DefaultFrequency
	}
	if req.Persistence == 0 {
		req.Persistence = noise.DefaultPersistence
	}
	if req.Lacunarity == 0 {
		req.Lacunarity = noise.DefaultLacunarity
	}
	return nil
}

func chunkKey(req ChunkRequest) storage.ChunkKey {
	return storage.ChunkKey{
		Generator: fmt.Sprintf("perlin/o=%d,f=%g,p=%g,l=%g",
			req.Octaves, req.Frequency, req.Persistence, req.Lacunarity),
		Seed:   req.Seed,
		StepX:  req.StepX,
		StepY:  req.StepY,
		Width:  req.Width,
		Height: req.Height,
		X:      req.X,
		Y:      req.Y,
	}
}

func (s *Server) emit(ctx context.Context, kind string, key storage.ChunkKey) {
	err := s.emitter.Emit(ctx, storage.TelemetryEvent{
		Service: "server",
		Kind:    kind,
		Detail:  fmt.Sprintf("%s seed=%d chunk=(%d,%d)", key.Generator, key.Seed, key.X, key.Y),
	})
	if err != nil {
		log.Printf("emit %s: %v", kind, err)
	}
}

func parseInt32(value string) (int32, error) {
	if value == "" {
		return 0, errors.New("missing")
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(parsed), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

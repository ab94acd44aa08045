// Package storage defines the persistence interfaces for the worldgen
// service: a cache of generated noise map chunks and a journal of
// operational telemetry events.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ChunkKey identifies a generated chunk by its full generation request.
// Two requests with equal keys produce bit-identical chunks, so a cached
// row set can be returned in place of regeneration.
type ChunkKey struct {
	// Generator describes the noise source configuration, e.g.
	// "perlin/o=8,f=1,p=0.5,l=2".
	Generator string
	Seed      int64
	StepX     float64
	StepY     float64
	Width     int64
	Height    int64
	X         int64
	Y         int64
}

// ChunkStore persists generated noise map chunks.
type ChunkStore interface {
	PutChunk(ctx context.Context, key ChunkKey, rows [][]float64) error
	// GetChunk returns ErrNotFound when the chunk has not been stored.
	GetChunk(ctx context.Context, key ChunkKey) ([][]float64, error)
}

// TelemetryEvent records a single operational event.
type TelemetryEvent struct {
	Timestamp time.Time
	Service   string
	Kind      string
	Detail    string
}

// TelemetryStore appends and lists operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
	ListTelemetryEvents(ctx context.Context, limit int) ([]TelemetryEvent, error)
}

package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/worldgen/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "worldgen.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestChunkRoundtrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	key := storage.ChunkKey{
		Generator: "perlin/o=8,f=1,p=0.5,l=2",
		Seed:      42,
		StepX:     0.05,
		StepY:     0.05,
		Width:     3,
		Height:    2,
		X:         -1,
		Y:         4,
	}
	rows := [][]float64{
		{0.25, -0.75, 0.5},
		{-0.28179097454994917, 1.0 - 1e-9, -1.0},
	}

	if err := store.PutChunk(ctx, key, rows); err != nil {
		t.Fatalf("put chunk: %v", err)
	}

	got, err := store.GetChunk(ctx, key)
	if err != nil {
		t.Fatalf("get chunk: %v", err)
	}
	for i := range rows {
		for j := range rows[i] {
			if got[i][j] != rows[i][j] {
				t.Fatalf("value (%d,%d) = %v, want %v", i, j, got[i][j], rows[i][j])
			}
		}
	}
}

func TestGetChunkMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetChunk(context.Background(), storage.ChunkKey{
		Generator: "perlin/o=8,f=1,p=0.5,l=2",
		Width:     1,
		Height:    1,
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutChunkReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	key := storage.ChunkKey{Generator: "g", Width: 1, Height: 1}
	if err := store.PutChunk(ctx, key, [][]float64{{0.1}}); err != nil {
		t.Fatalf("put chunk: %v", err)
	}
	if err := store.PutChunk(ctx, key, [][]float64{{0.9}}); err != nil {
		t.Fatalf("replace chunk: %v", err)
	}

	got, err := store.GetChunk(ctx, key)
	if err != nil {
		t.Fatalf("get chunk: %v", err)
	}
	if got[0][0] != 0.9 {
		t.Fatalf("value = %v, want 0.9", got[0][0])
	}
}

func TestPutChunkRejectsMismatchedDimensions(t *testing.T) {
	store := openTestStore(t)

	key := storage.ChunkKey{Generator: "g", Width: 2, Height: 2}
	err := store.PutChunk(context.Background(), key, [][]float64{{0.1, 0.2}})
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestTelemetryEventsRoundtrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	events := []storage.TelemetryEvent{
		{Service: "server", Kind: "chunk_generated", Detail: "seed=1"},
		{Service: "server", Kind: "chunk_cache_hit", Detail: "seed=1"},
	}
	for _, evt := range events {
		if err := store.AppendTelemetryEvent(ctx, evt); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	got, err := store.ListTelemetryEvents(ctx, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Kind != "chunk_cache_hit" || got[1].Kind != "chunk_generated" {
		t.Fatalf("unexpected order: %q then %q", got[0].Kind, got[1].Kind)
	}
	if got[0].Timestamp.IsZero() {
		t.Fatal("expected timestamp to be filled")
	}
}

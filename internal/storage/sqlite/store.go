// Package sqlite provides the SQLite-backed chunk cache and telemetry
// journal for the worldgen service.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/worldgen/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/worldgen/internal/storage"
	"github.com/louisbranch/worldgen/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store implements storage.ChunkStore and storage.TelemetryStore over a
// single SQLite file.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens a worldgen SQLite store and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		clock: time.Now,
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutChunk stores a generated chunk, replacing any previous rows for the
// same key.
func (s *Store) PutChunk(ctx context.Context, key storage.ChunkKey, rows [][]float64) error {
	blob, err := encodeRows(rows, key.Width, key.Height)
	if err != nil {
		return fmt.Errorf("encode chunk rows: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO chunks
	(generator, seed, step_x, step_y, width, height, x, y, rows, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key.Generator, key.Seed, key.StepX, key.StepY,
		key.Width, key.Height, key.X, key.Y,
		blob, s.clock().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert chunk: %w", err)
	}
	return nil
}

// GetChunk returns a cached chunk or storage.ErrNotFound.
func (s *Store) GetChunk(ctx context.Context, key storage.ChunkKey) ([][]float64, error) {
	var blob []byte
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT rows FROM chunks
WHERE generator = ? AND seed = ? AND step_x = ? AND step_y = ?
  AND width = ? AND height = ? AND x = ? AND y = ?`,
		key.Generator, key.Seed, key.StepX, key.StepY,
		key.Width, key.Height, key.X, key.Y,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select chunk: %w", err)
	}

	rows, err := decodeRows(blob, key.Width, key.Height)
	if err != nil {
		return nil, fmt.Errorf("decode chunk rows: %w", err)
	}
	return rows, nil
}

// AppendTelemetryEvent records an operational event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	ts := evt.Timestamp
	if ts.IsZero() {
		ts = s.clock().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (ts, service, kind, detail)
VALUES (?, ?, ?, ?)`,
		ts.UTC().UnixMilli(), evt.Service, evt.Kind, evt.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert telemetry event: %w", err)
	}
	return nil
}

// ListTelemetryEvents returns the most recent events, newest first.
func (s *Store) ListTelemetryEvents(ctx context.Context, limit int) ([]storage.TelemetryEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT ts, service, kind, detail FROM telemetry_events
ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select telemetry events: %w", err)
	}
	defer rows.Close()

	var events []storage.TelemetryEvent
	for rows.Next() {
		var millis int64
		var evt storage.TelemetryEvent
		if err := rows.Scan(&millis, &evt.Service, &evt.Kind, &evt.Detail); err != nil {
			return nil, fmt.Errorf("scan telemetry event: %w", err)
		}
		evt.Timestamp = time.UnixMilli(millis).UTC()
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate telemetry events: %w", err)
	}
	return events, nil
}

// encodeRows packs chunk values into a little-endian float64 blob. The
// dimensions are part of the key, so the blob carries values only.
func encodeRows(rows [][]float64, width, height int64) ([]byte, error) {
	if int64(len(rows)) != height {
		return nil, fmt.Errorf("row count %d does not match height %d", len(rows), height)
	}
	buf := make([]byte, 0, width*height*8)
	for _, row := range rows {
		if int64(len(row)) != width {
			return nil, fmt.Errorf("row length %d does not match width %d", len(row), width)
		}
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return buf, nil
}

func decodeRows(blob []byte, width, height int64) ([][]float64, error) {
	if int64(len(blob)) != width*height*8 {
		return nil, fmt.Errorf("blob length %d does not match %dx%d chunk", len(blob), width, height)
	}
	rows := make([][]float64, 0, height)
	offset := 0
	for r := int64(0); r < height; r++ {
		row := make([]float64, 0, width)
		for c := int64(0); c < width; c++ {
			bits := binary.LittleEndian.Uint64(blob[offset : offset+8])
			row = append(row, math.Float64frombits(bits))
			offset += 8
		}
		rows = append(rows, row)
	}
	return rows, nil
}

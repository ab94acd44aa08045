// Package world generates maps of concrete tiles from noise maps.
//
// A World holds an ordered list of tiles, each bound to threshold
// constraints over noise map values. Generating a chunk evaluates the
// tiles in order for every cell and picks the first tile whose
// constraints are all satisfied; a final tile without constraints acts
// as the default. Noise map chunks are generated once per referenced
// generator and reused across the whole world chunk.
package world

import (
	"errors"
	"fmt"

	"github.com/louisbranch/worldgen/noisemap"
)

// ErrNoTile indicates a cell value that satisfied no tile's constraints.
var ErrNoTile = errors.New("no tile satisfied")

// World generates tile chunks of type T from noise map constraints.
type World[T any] struct {
	tiles []*Tile[T]
	size  noisemap.Size
}

// New creates a world generating chunks of the given size.
func New[T any](w, h int64) *World[T] {
	return &World[T]{
		size: noisemap.Size{W: w, H: h},
	}
}

// Add appends a tile definition. Tiles are evaluated in insertion order,
// so narrower constraints belong before broader ones.
func (w *World[T]) Add(tile *Tile[T]) *World[T] {
	w.tiles = append(w.tiles, tile)
	return w
}

// Size returns the world's chunk size.
func (w *World[T]) Size() noisemap.Size { return w.size }

// Generate produces the tile chunk at the given chunk coordinates. It
// returns ErrNoTile if any cell matches no tile.
func (w *World[T]) Generate(chunkX, chunkY int64) ([][]T, error) {
	chunks := make(map[uint64][][]float64)

	rows := make([][]T, 0, w.size.H)
	for y := chunkY * w.size.H; y < (chunkY+1)*w.size.H; y++ {
		row := make([]T, 0, w.size.W)
		for x := chunkX * w.size.W; x < (chunkX+1)*w.size.W; x++ {
			tile, ok := w.match(x, y, chunkX, chunkY, chunks)
			if !ok {
				return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrNoTile)
			}
			row = append(row, tile.Value())
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *World[T]) match(x, y, chunkX, chunkY int64, chunks map[uint64][][]float64) (*Tile[T], bool) {
	for _, tile := range w.tiles {
		if tile.satisfiedBy(x, y, w.size, chunkX, chunkY, chunks) {
			return tile, true
		}
	}
	return nil, false
}

package world

import "github.com/louisbranch/worldgen/noisemap"

// Tile is a world object selected when all of its constraints hold.
type Tile[T any] struct {
	value       T
	constraints []Constraint
}

// NewTile constructs a tile represented by the given value.
func NewTile[T any](value T) *Tile[T] {
	return &Tile[T]{value: value}
}

// When adds a constraint to the tile and returns it for chaining.
func (t *Tile[T]) When(c Constraint) *Tile[T] {
	t.constraints = append(t.constraints, c)
	return t
}

// Value returns the value this tile is represented by.
func (t *Tile[T]) Value() T {
	return t.value
}

// satisfiedBy reports whether every constraint holds for the given cell,
// generating and memoizing noise map chunks as needed.
func (t *Tile[T]) satisfiedBy(x, y int64, size noisemap.Size, chunkX, chunkY int64, chunks map[uint64][][]float64) bool {
	for _, c := range t.constraints {
		if !c.satisfiedBy(x, y, size, chunkX, chunkY, chunks) {
			return false
		}
	}
	return true
}

// Constraint is a threshold over a noise map's values.
type Constraint struct {
	gen       noisemap.Generator
	op        constraintOp
	threshold float64
}

type constraintOp int

const (
	opLT constraintOp = iota
	opGT
)

// LT constrains a tile to cells where the noise map value is below the
// threshold.
func LT(g noisemap.Generator, threshold float64) Constraint {
	return Constraint{gen: g, op: opLT, threshold: threshold}
}

// GT constrains a tile to cells where the noise map value is above the
// threshold.
func GT(g noisemap.Generator, threshold float64) Constraint {
	return Constraint{gen: g, op: opGT, threshold: threshold}
}

func (c Constraint) satisfiedBy(x, y int64, size noisemap.Size, chunkX, chunkY int64, chunks map[uint64][][]float64) bool {
	rows, ok := chunks[c.gen.ID()]
	if !ok {
		rows = c.gen.GenerateSizedChunk(size, chunkX, chunkY)
		chunks[c.gen.ID()] = rows
	}

	value := rows[y-chunkY*size.H][x-chunkX*size.W]
	switch c.op {
	case opGT:
		return value > c.threshold
	default:
		return value < c.threshold
	}
}

// Package noisemap generates finite chunks of an infinite noise plane.
//
// A NoiseMap wraps a noise.Provider and has properties controlling the
// generation seed, the size of generated chunks, and the step between
// lattice coordinates. Maps can be scaled (Scale) and combined (Combine);
// a combination normalizes the summed values back into the source range.
//
// Chunk (cx, cy) of a map with size (w, h) covers lattice columns
// [cx*w, (cx+1)*w) and rows [cy*h, (cy+1)*h); each lattice index is
// multiplied by the step to produce the sample coordinate. Generating
// adjacent chunks therefore yields a seamless larger map.
package noisemap

import (
	"hash/fnv"
	"sync/atomic"
)

// Generator is a source of noise map chunks.
//
// NoiseMap, Scaled, and Combined implement this interface; the scale
// weight bookkeeping used by combinations keeps it closed to this package.
type Generator interface {
	// GenerateChunk generates the chunk at the given chunk coordinates
	// using the generator's own size.
	GenerateChunk(x, y int64) [][]float64

	// GenerateSizedChunk generates the chunk at the given chunk
	// coordinates with an explicit size, overriding the generator's own.
	GenerateSizedChunk(size Size, x, y int64) [][]float64

	// Size returns the generator's chunk size.
	Size() Size

	// ID returns a process-unique identifier for the generator, stable
	// for its lifetime. Callers use it to memoize generated chunks.
	ID() uint64

	// weight is the generator's contribution to a combination's
	// normalization divisor.
	weight() int64
}

var nextGeneratorID atomic.Uint64

func nextID() uint64 {
	return nextGeneratorID.Add(1)
}

// Size is the width and height of generated chunks, in lattice points.
// The zero value generates nothing.
type Size struct {
	W int64
	H int64
}

// Step is the coordinate increment between adjacent lattice points. The
// zero value samples every point at the same location, so every value
// comes out identical.
type Step struct {
	X float64
	Y float64
}

// maxSize returns the larger of two sizes by area.
func maxSize(a, b Size) Size {
	if b.W*b.H > a.W*a.H {
		return b
	}
	return a
}

// SeedOf hashes an arbitrary string into a seed value. The hash is FNV-64a,
// so a given string maps to the same seed on every platform and run.
func SeedOf(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Package noise provides deterministic coherent-noise sources for
// procedural generation.
//
// The base of every source is a single integer lattice hash,
// GenerateRandomValue, which maps a grid coordinate and a seed to a
// reproducible value in [-1, 1). Coherent blends the hash across the unit
// square, and Perlin layers coherent noise in octaves. All sources are
// stateless and safe for concurrent use.
package noise

// Provider is a source of noise values.
//
// Generate returns the noise value at the given location for the given
// seed. Implementations must be deterministic: identical arguments always
// produce identical results.
type Provider interface {
	Generate(x, y float64, seed int32) float64
}

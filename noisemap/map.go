package noisemap

import "github.com/louisbranch/worldgen/noise"

// NoiseMap is the standard noise map: a noise source plus the seed, step,
// and size used to sample it.
type NoiseMap struct {
	seed  int64
	step  Step
	size  Size
	noise noise.Provider
	id    uint64
}

// Option configures a NoiseMap.
type Option func(*NoiseMap)

// WithSeed sets the seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(m *NoiseMap) { m.seed = seed }
}

// WithSeedString sets the seed to a deterministic hash of the string.
func WithSeedString(s string) Option {
	return func(m *NoiseMap) { m.seed = SeedOf(s) }
}

// WithStep sets the coordinate increment per lattice point.
func WithStep(x, y float64) Option {
	return func(m *NoiseMap) { m.step = Step{X: x, Y: y} }
}

// WithSize sets the generated chunk size.
func WithSize(w, h int64) Option {
	return func(m *NoiseMap) { m.size = Size{W: w, H: h} }
}

// New creates a noise map over the given source. Seed, step, and size all
// default to zero; set at least the size for generation to produce rows.
func New(p noise.Provider, opts ...Option) *NoiseMap {
	m := &NoiseMap{
		noise: p,
		id:    nextID(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GenerateChunk implements Generator.
func (m *NoiseMap) GenerateChunk(x, y int64) [][]float64 {
	return m.GenerateSizedChunk(m.size, x, y)
}

// GenerateSizedChunk implements Generator.
func (m *NoiseMap) GenerateSizedChunk(size Size, x, y int64) [][]float64 {
	if size.W <= 0 || size.H <= 0 {
		return nil
	}

	seed := int32(m.seed)
	rows := make([][]float64, 0, size.H)
	for row := y * size.H; row < (y+1)*size.H; row++ {
		wy := float64(row) * m.step.Y
		values := make([]float64, 0, size.W)
		for col := x * size.W; col < (x+1)*size.W; col++ {
			wx := float64(col) * m.step.X
			values = append(values, m.noise.Generate(wx, wy, seed))
		}
		rows = append(rows, values)
	}
	return rows
}

// Size implements Generator.
func (m *NoiseMap) Size() Size { return m.size }

// ID implements Generator.
func (m *NoiseMap) ID() uint64 { return m.id }

func (m *NoiseMap) weight() int64 { return 1 }

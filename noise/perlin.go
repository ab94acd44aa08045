package noise

// Perlin default parameters.
const (
	DefaultOctaves     = 8
	DefaultFrequency   = 1.0
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
)

// Perlin provides octaved coherent noise. Each octave samples coherent
// noise at an increasing frequency and a decreasing weight, producing the
// layered detail commonly used for terrain.
type Perlin struct {
	octaves     int
	frequency   float64
	persistence float64
	lacunarity  float64
}

// PerlinOption configures a Perlin source.
type PerlinOption func(*Perlin)

// Octaves sets the number of coherent noise layers. More octaves add finer
// detail at higher cost.
func Octaves(n int) PerlinOption {
	return func(p *Perlin) { p.octaves = n }
}

// Frequency sets the width of the noise features: the distance between
// hills and valleys, so to speak.
func Frequency(f float64) PerlinOption {
	return func(p *Perlin) { p.frequency = f }
}

// Persistence sets how much each successive octave contributes to the
// final value.
func Persistence(p float64) PerlinOption {
	return func(pn *Perlin) { pn.persistence = p }
}

// Lacunarity sets the frequency multiplier applied between octaves.
func Lacunarity(l float64) PerlinOption {
	return func(p *Perlin) { p.lacunarity = l }
}

// NewPerlin creates a Perlin source with the default parameters, then
// applies the given options.
func NewPerlin(opts ...PerlinOption) Perlin {
	p := Perlin{
		octaves:     DefaultOctaves,
		frequency:   DefaultFrequency,
		persistence: DefaultPersistence,
		lacunarity:  DefaultLacunarity,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Generate implements Provider. Octave o samples coherent noise with
// seed+o so the layers stay decorrelated.
func (p Perlin) Generate(x, y float64, seed int32) float64 {
	x *= p.frequency
	y *= p.frequency

	value := 0.0
	pers := 1.0
	for octave := 0; octave < p.octaves; octave++ {
		value += Coherent{}.Generate(x, y, seed+int32(octave)) * pers

		x *= p.lacunarity
		y *= p.lacunarity
		pers *= p.persistence
	}

	return value
}

package noisemap

// Scaled multiplies every value of an underlying generator by a constant
// factor. On its own it escapes the [-1, 1] range; inside a combination
// the factor instead acts as the generator's relative weight, because the
// combination divides by the summed factors.
type Scaled struct {
	gen   Generator
	scale int64
	id    uint64
}

// Scale wraps a generator so its values are multiplied by scale.
func Scale(g Generator, scale int64) *Scaled {
	return &Scaled{
		gen:   g,
		scale: scale,
		id:    nextID(),
	}
}

// GenerateChunk implements Generator.
func (s *Scaled) GenerateChunk(x, y int64) [][]float64 {
	return s.GenerateSizedChunk(s.gen.Size(), x, y)
}

// GenerateSizedChunk implements Generator.
func (s *Scaled) GenerateSizedChunk(size Size, x, y int64) [][]float64 {
	rows := s.gen.GenerateSizedChunk(size, x, y)
	factor := float64(s.scale)
	for _, row := range rows {
		for i, v := range row {
			row[i] = v * factor
		}
	}
	return rows
}

// Size implements Generator.
func (s *Scaled) Size() Size { return s.gen.Size() }

// ID implements Generator.
func (s *Scaled) ID() uint64 { return s.id }

func (s *Scaled) weight() int64 { return s.scale * s.gen.weight() }

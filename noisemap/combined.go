package noisemap

// Combined sums the values of two generators and normalizes the result by
// the total scale weight, so combining maps keeps values in the source
// range. Only the outermost combination divides; nesting combinations
// accumulates the weights instead of re-dividing.
type Combined struct {
	a, b        Generator
	outer       bool
	totalWeight int64
	id          uint64
}

// Combine sums two generators into a normalized combination. The
// combination adopts the larger of the two sizes, so the size only needs
// to be set on one member.
func Combine(a, b Generator) *Combined {
	a = demote(a)
	b = demote(b)

	return &Combined{
		a:           a,
		b:           b,
		outer:       true,
		totalWeight: a.weight() + b.weight(),
		id:          nextID(),
	}
}

// demote marks a combination as an inner member so it no longer divides
// by its own weight; the outermost combination divides once by the total.
func demote(g Generator) Generator {
	c, ok := g.(*Combined)
	if !ok {
		return g
	}
	inner := *c
	inner.outer = false
	return &inner
}

// GenerateChunk implements Generator.
func (c *Combined) GenerateChunk(x, y int64) [][]float64 {
	return c.GenerateSizedChunk(c.Size(), x, y)
}

// GenerateSizedChunk implements Generator.
func (c *Combined) GenerateSizedChunk(size Size, x, y int64) [][]float64 {
	rowsA := c.a.GenerateSizedChunk(size, x, y)
	rowsB := c.b.GenerateSizedChunk(size, x, y)

	divisor := 1.0
	if c.outer {
		divisor = float64(c.totalWeight)
	}

	rows := make([][]float64, 0, len(rowsA))
	for i, rowA := range rowsA {
		values := make([]float64, len(rowA))
		for j, v := range rowA {
			values[j] = (v + rowsB[i][j]) / divisor
		}
		rows = append(rows, values)
	}
	return rows
}

// Size implements Generator.
func (c *Combined) Size() Size { return maxSize(c.a.Size(), c.b.Size()) }

// ID implements Generator.
func (c *Combined) ID() uint64 { return c.id }

func (c *Combined) weight() int64 { return c.totalWeight }

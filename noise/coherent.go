package noise

// Coherent provides coherent noise: the lattice hash evaluated at each
// corner of the unit square containing the point, blended with an s-curve.
// Values vary smoothly between lattice points while remaining fully
// deterministic.
type Coherent struct{}

// Generate implements Provider.
func (Coherent) Generate(x, y float64, seed int32) float64 {
	var x0 int32
	if x > 0 {
		x0 = int32(x)
	} else {
		x0 = int32(x - 1.0)
	}
	x1 := x0 + 1

	var y0 int32
	if y > 0 {
		y0 = int32(y)
	} else {
		y0 = int32(y - 1.0)
	}
	y1 := y0 + 1

	xd := sCurve(x - float64(x0))
	yd := sCurve(y - float64(y0))

	x0y0 := GenerateRandomValue(x0, y0, seed)
	x1y0 := GenerateRandomValue(x1, y0, seed)
	x0y1 := GenerateRandomValue(x0, y1, seed)
	x1y1 := GenerateRandomValue(x1, y1, seed)

	v1 := interpolate(x0y0, x1y0, xd)
	v2 := interpolate(x0y1, x1y1, xd)

	return interpolate(v1, v2, yd)
}

func sCurve(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

func interpolate(v1, v2, a float64) float64 {
	return (1.0-a)*v1 + a*v2
}

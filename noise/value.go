package noise

// GenerateRandomValue returns a reproducible pseudo-random value in
// [-1.0, 1.0) for the given lattice coordinates and seed.
//
// # Determinism
//
// The result depends only on the arguments: the same (x, y, seed) always
// yields the bit-identical value. Varying seed produces an independent
// noise field over the same coordinate grid.
//
// Every intermediate step uses 32-bit two's-complement wraparound
// arithmetic. Overflow is part of the algorithm, not a defect; Go's int32
// operators wrap by definition, so the expression below is the reference
// behavior. Do not widen the intermediates.
func GenerateRandomValue(x, y, seed int32) float64 {
	n := (x*157 + y*31337 + seed*2633) & 0x7fffffff
	n = (n << 13) ^ n
	return 1.0 - float64((n*(n*n*15731+789221)+1376312579)&0x7fffffff)/1073741824.0
}

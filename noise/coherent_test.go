package noise

import "testing"

// Coherent noise at positive integer coordinates lands exactly on the
// lattice hash: the interpolation weights are zero there.
func TestCoherent_LatticePoints(t *testing.T) {
	tests := []struct {
		x, y int32
		seed int32
	}{
		{1, 1, 0},
		{2, 3, 0},
		{10, 7, 99},
		{1000, 2000, -5},
	}

	for _, tt := range tests {
		want := GenerateRandomValue(tt.x, tt.y, tt.seed)
		got := Coherent{}.Generate(float64(tt.x), float64(tt.y), tt.seed)
		if got != want {
			t.Errorf("Coherent.Generate(%d, %d, %d) = %v, want lattice value %v",
				tt.x, tt.y, tt.seed, got, want)
		}
	}
}

func TestCoherent_RangeBound(t *testing.T) {
	for xi := -50; xi <= 50; xi++ {
		for yi := -50; yi <= 50; yi++ {
			x := float64(xi) * 0.37
			y := float64(yi) * 0.53
			got := Coherent{}.Generate(x, y, 7)
			if got < -1.0 || got > 1.0 {
				t.Fatalf("Coherent.Generate(%v, %v, 7) = %v out of [-1, 1]", x, y, got)
			}
		}
	}
}

func TestCoherent_Deterministic(t *testing.T) {
	c := Coherent{}
	first := c.Generate(1.5, -2.5, 42)
	for i := 0; i < 10; i++ {
		if got := c.Generate(1.5, -2.5, 42); got != first {
			t.Fatalf("Coherent.Generate not deterministic: %v then %v", first, got)
		}
	}
}

func TestCoherent_SeedChangesField(t *testing.T) {
	a := Coherent{}.Generate(3.25, 4.75, 1)
	b := Coherent{}.Generate(3.25, 4.75, 2)
	if a == b {
		t.Errorf("seeds 1 and 2 produced the same value %v", a)
	}
}

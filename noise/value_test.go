package noise

import (
	"math"
	"testing"
)

func TestGenerateRandomValue_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		seed int32
		want float64
	}{
		{name: "origin", x: 0, y: 0, seed: 0, want: 1.0 - 1376312579.0/1073741824.0},
		{name: "unit x", x: 1, y: 0, seed: 0, want: -0.7633650181815028},
		{name: "unit y", x: 0, y: 1, seed: 0, want: -0.938076208345592},
		{name: "unit seed", x: 0, y: 0, seed: 1, want: 0.32755397725850344},
		{name: "ones", x: 1, y: 1, seed: 1, want: 0.2478835480287671},
		{name: "negative ones", x: -1, y: -1, seed: -1, want: -0.28915714751929045},
		{name: "large magnitude x", x: 2_000_000_000, y: 0, seed: 0, want: 0.1128423186019063},
		{name: "mixed signs", x: 123, y: -456, seed: 789, want: -0.19749074336141348},
		{name: "int32 extremes", x: math.MinInt32, y: math.MaxInt32, seed: 42, want: 0.1942426608875394},
		{name: "big seed", x: 57, y: -2, seed: 9000, want: 0.2475803466513753},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateRandomValue(tt.x, tt.y, tt.seed)
			if got != tt.want {
				t.Errorf("GenerateRandomValue(%d, %d, %d) = %v, want %v",
					tt.x, tt.y, tt.seed, got, tt.want)
			}
		})
	}
}

func TestGenerateRandomValue_Deterministic(t *testing.T) {
	inputs := [][3]int32{
		{0, 0, 0},
		{1, 2, 3},
		{-1000, 1000, 7},
		{math.MaxInt32, math.MinInt32, math.MaxInt32},
	}

	for _, in := range inputs {
		first := GenerateRandomValue(in[0], in[1], in[2])
		for i := 0; i < 10; i++ {
			if got := GenerateRandomValue(in[0], in[1], in[2]); got != first {
				t.Fatalf("GenerateRandomValue(%d, %d, %d) not deterministic: %v then %v",
					in[0], in[1], in[2], first, got)
			}
		}
	}
}

func TestGenerateRandomValue_RangeBound(t *testing.T) {
	coords := []int32{
		math.MinInt32, -2_000_000_000, -31337, -157, -1, 0,
		1, 157, 31337, 2_000_000_000, math.MaxInt32,
	}

	for _, x := range coords {
		for _, y := range coords {
			for _, seed := range coords {
				got := GenerateRandomValue(x, y, seed)
				if got < -1.0 || got >= 1.0 {
					t.Fatalf("GenerateRandomValue(%d, %d, %d) = %v out of [-1, 1)",
						x, y, seed, got)
				}
			}
		}
	}
}

// Changing a single argument by one must change the output for the broad
// majority of inputs; a degenerate mixing step would fail this.
func TestGenerateRandomValue_Sensitivity(t *testing.T) {
	const samples = 64
	var unchangedX, unchangedY, unchangedSeed int

	for x := int32(0); x < samples; x++ {
		for y := int32(0); y < samples; y++ {
			base := GenerateRandomValue(x, y, 12345)
			if GenerateRandomValue(x+1, y, 12345) == base {
				unchangedX++
			}
			if GenerateRandomValue(x, y+1, 12345) == base {
				unchangedY++
			}
			if GenerateRandomValue(x, y, 12346) == base {
				unchangedSeed++
			}
		}
	}

	const limit = samples * samples / 20 // 5%
	if unchangedX > limit || unchangedY > limit || unchangedSeed > limit {
		t.Errorf("insensitive to neighbor changes: x=%d y=%d seed=%d of %d samples",
			unchangedX, unchangedY, unchangedSeed, samples*samples)
	}
}

// Outputs across a seed sweep should show no linear correlation with the
// seed itself.
func TestGenerateRandomValue_SeedIndependence(t *testing.T) {
	const n = 1000

	var sumS, sumV, sumSS, sumVV, sumSV float64
	for seed := int32(0); seed < n; seed++ {
		s := float64(seed)
		v := GenerateRandomValue(17, -23, seed)
		sumS += s
		sumV += v
		sumSS += s * s
		sumVV += v * v
		sumSV += s * v
	}

	num := float64(n)*sumSV - sumS*sumV
	den := math.Sqrt(float64(n)*sumSS-sumS*sumS) * math.Sqrt(float64(n)*sumVV-sumV*sumV)
	if den == 0 {
		t.Fatal("degenerate seed sweep: zero variance")
	}

	if r := num / den; math.Abs(r) > 0.2 {
		t.Errorf("output correlates with seed: r = %v", r)
	}
}

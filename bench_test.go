package multipath_test

import (
	"math/rand"
	"testing"

	multipath "github.com/StumWhere/Multipath-Flow-Accumulation"
)

// BenchmarkAccumulate measures a full sweep over a deterministic 256x256
// surface: an inclined plane with pseudorandom relief, leaving occasional
// small flats for the region machinery to resolve.
func BenchmarkAccumulate(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	z := make([][]float64, n)
	for r := range z {
		z[r] = make([]float64, n)
		for c := range z[r] {
			z[r][c] = float64(r+c) + rng.Float64()*3.
		}
	}
	s, err := multipath.NewSurface(z)
	if err != nil {
		b.Fatalf("setup NewSurface failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Accumulate()
	}
}

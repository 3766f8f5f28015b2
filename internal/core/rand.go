package core

import "math/rand"

// Source abstracts uniform random draws so that scheduling decisions are
// reproducible under test. Production code uses a seeded math/rand source;
// tests substitute scripted sources.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Intn returns a uniform draw in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// seededSource wraps math/rand behind the Source interface.
type seededSource struct {
	rng *rand.Rand
}

// NewSource creates a deterministic random source from the given seed.
func NewSource(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

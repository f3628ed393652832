package model

import "math/rand/v2"

// BitSource supplies independent, uniformly distributed random bits.
type BitSource interface {
	Bool() bool
}

// SeededSource is a deterministic BitSource backed by a PCG generator.
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource creates a reproducible BitSource from seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (s *SeededSource) Bool() bool {
	return s.r.IntN(2) == 1
}

// globalSource draws from the automatically seeded math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Bool() bool {
	return rand.IntN(2) == 1
}

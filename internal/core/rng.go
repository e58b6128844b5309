package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Cell returns 1 with probability density and 0 otherwise.
func (r *RNG) Cell(density float64) uint8 {
	if r.r.Float64() < density {
		return 1
	}
	return 0
}

// Seed draws a fresh seed for another generator, e.g. one per user-triggered
// random fill.
func (r *RNG) Seed() int64 { return int64(r.r.Uint64()) }

// Block returns w*h random cells in row-major order, suitable for a paint write.
func (r *RNG) Block(w, h int, density float64) []uint8 {
	if w <= 0 || h <= 0 {
		return nil
	}
	buf := make([]uint8, w*h)
	for i := range buf {
		buf[i] = r.Cell(density)
	}
	return buf
}

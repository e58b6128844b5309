// Package bench times repeated generations and keeps rolling run statistics.
// Nothing here feeds back into the simulation.
package bench

import (
	"fmt"
	"time"
)

// Target is a stepper that can be seeded with the glider tiling and advanced.
type Target interface {
	SeedGliders()
	Tick()
}

// Report is the outcome of a timed run.
type Report struct {
	Iterations int
	Total      time.Duration
}

// PerIteration returns the mean duration of one generation.
func (r Report) PerIteration() time.Duration {
	if r.Iterations <= 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

// GenerationsPerSecond returns the sustained generation rate.
func (r Report) GenerationsPerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Iterations) / r.Total.Seconds()
}

func (r Report) String() string {
	milli := float64(r.Total) / float64(time.Millisecond)
	per := 0.0
	if r.Iterations > 0 {
		per = milli / float64(r.Iterations)
	}
	return fmt.Sprintf("Total: %.6f ms (%.6f ms / iter)", milli, per)
}

// Bench seeds t and measures wall-clock time across iterations sequential ticks.
func Bench(t Target, iterations int) Report {
	t.SeedGliders()
	start := time.Now()
	for i := 0; i < iterations; i++ {
		t.Tick()
	}
	return Report{Iterations: iterations, Total: time.Since(start)}
}

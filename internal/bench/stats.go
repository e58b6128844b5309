package bench

import "time"

// populationWeight is the share of the newest sample in the population average.
const populationWeight = 0.1

// Stats tracks the latest generation rate and a smoothed live-cell count for
// a running host.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
}

// NewStats returns empty statistics.
func NewStats() *Stats { return &Stats{} }

// Update records one generation that took duration to produce. The first
// sample seeds the population average; later ones blend in exponentially.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1 / duration.Seconds()
	}
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation = s.AveragePopulation*(1-populationWeight) + float64(population)*populationWeight
}

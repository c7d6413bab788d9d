package utils

import (
	"time"

	"github.com/sheikhrachel/torus-gol/model"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	LastChanges          int
	TotalBirths          int
	TotalDeaths          int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's outcome. duration is the time spent on it.
func (s *Stats) Update(generation int, population int, delta model.Delta, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.LastChanges = len(delta)

	births := delta.Births()
	s.TotalBirths += births
	s.TotalDeaths += len(delta) - births

	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

package utils

import "time"

const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	lastGeneration int
	lastUpdate     time.Time
	history        []string // grid hashes of recent generations for cycle detection
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now}
}

// Update records a rendered frame showing generation with the given population.
// A generation lower than the last one seen means the board was cleared or restarted.
func (s *Stats) Update(generation, population int, hash string, now time.Time) {
	switch {
	case generation < s.lastGeneration:
		s.lastGeneration = generation
		s.lastUpdate = now
		s.history = nil
		s.updateHistory(hash)
	case generation > s.lastGeneration:
		if elapsed := now.Sub(s.lastUpdate); elapsed > 0 {
			s.GenerationsPerSecond = float64(generation-s.lastGeneration) / elapsed.Seconds()
		}
		s.lastGeneration = generation
		s.lastUpdate = now
		s.updateHistory(hash)
	case len(s.history) == 0 || s.history[len(s.history)-1] != hash:
		// edits while paused change the board without a new generation
		s.updateHistory(hash)
	}
	s.TotalGenerations = generation

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// updateHistory adds current state to history and maintains size
func (s *Stats) updateHistory(hash string) {
	s.history = append(s.history, hash)

	// Keep only last 5 states to detect cycles
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant checks if the latest generation repeats one of the three before it
func (s *Stats) IsStagnant() bool {
	if len(s.history) < 3 {
		return false
	}

	last := len(s.history) - 1
	current := s.history[last]
	for i := last - 1; i >= 0 && i >= last-3; i-- {
		if s.history[i] == current {
			return true
		}
	}
	return false
}

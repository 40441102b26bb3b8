package planning

import (
	"os"
	"strconv"
)

// Weights tunes the slot-scoring policy used when packing tasks into the
// user's historical best slots. The exact balance of duration vs feeling vs
// recency is a policy choice, kept behind this one struct so it can be tuned
// and tested in isolation.
type Weights struct {
	Duration float64
	Feeling  float64
	Recency  float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Duration: 1.0,
		Feeling:  0.8,
		Recency:  0.3,
	}
}

// Config holds the planning engine's tunables.
type Config struct {
	// QuestionBudget caps how many clarifying questions one session may ask.
	QuestionBudget int
	// ConfidenceThreshold below which extracted intent triggers a
	// horizon-clarity gap.
	ConfidenceThreshold float64
	// DefaultHorizonDays is assumed when a multi-day request never states
	// its span.
	DefaultHorizonDays int
	// DayCapacityMin is the schedulable minutes available per day.
	DayCapacityMin int
	// ContinuousWorkMaxMin is the longest stretch allowed before a break is
	// inserted.
	ContinuousWorkMaxMin int
	// BreakMin is the length of each inserted break.
	BreakMin int
	// HeavyTaskMin is the estimated-minutes threshold above which a task is
	// considered heavy and steered into the peak-energy window.
	HeavyTaskMin int

	Weights Weights
}

// DefaultConfig returns the standard planning configuration.
func DefaultConfig() Config {
	return Config{
		QuestionBudget:       3,
		ConfidenceThreshold:  0.6,
		DefaultHorizonDays:   5,
		DayCapacityMin:       360,
		ContinuousWorkMaxMin: 90,
		BreakMin:             15,
		HeavyTaskMin:         90,
		Weights:              DefaultWeights(),
	}
}

// LoadConfig reads planning configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RITMO_QUESTION_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.QuestionBudget = n
		}
	}
	if v := os.Getenv("RITMO_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		}
	}
	if v := os.Getenv("RITMO_DAY_CAPACITY_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DayCapacityMin = n
		}
	}
	if v := os.Getenv("RITMO_CONTINUOUS_WORK_MAX_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ContinuousWorkMaxMin = n
		}
	}

	return cfg
}

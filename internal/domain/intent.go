package domain

import "time"

// PlanIntentTask is a single task inferred from the planning request.
type PlanIntentTask struct {
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	EstimatedMin int     `json:"estimated_min"`
	Frequency    string  `json:"frequency,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// IntentPreferences is the bag of categorical unknowns an extractor may or
// may not resolve. Each field carries an enumerated string or
// PreferenceUnknown.
type IntentPreferences struct {
	FixedCommitments string `json:"fixed_commitments"`
	EnergyPattern    string `json:"energy_pattern"`
	HeavyTasksTime   string `json:"heavy_tasks_time"`
	TrainingSpacing  string `json:"training_spacing"`
	TaskDistribution string `json:"task_distribution"`
}

// IntentDateRange is the explicit date span of a multi-day request.
type IntentDateRange struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}

// PlanIntent is the structured, confidence-annotated interpretation of a
// free-form planning request.
type PlanIntent struct {
	Horizon              Horizon           `json:"horizon"`
	HorizonDays          int               `json:"horizon_days,omitempty"`
	DateRange            *IntentDateRange  `json:"date_range,omitempty"`
	Tasks                []PlanIntentTask  `json:"tasks"`
	Preferences          IntentPreferences `json:"preferences"`
	EmotionalConstraints []string          `json:"emotional_constraints,omitempty"`
	Confidence           float64           `json:"confidence"`
}

// ResolvedDays returns the number of days the intent spans, resolving the
// explicit date range first, then horizon_days, then a fallback.
func (p PlanIntent) ResolvedDays(fallback int) int {
	if p.DateRange != nil {
		start, errS := time.Parse("2006-01-02", p.DateRange.Start)
		end, errE := time.Parse("2006-01-02", p.DateRange.End)
		if errS == nil && errE == nil && !end.Before(start) {
			return int(end.Sub(start).Hours()/24) + 1
		}
	}
	if p.HorizonDays > 0 {
		return p.HorizonDays
	}
	return fallback
}

// PlanningGap is a missing or low-confidence dimension of intent that should
// be clarified before planning.
type PlanningGap struct {
	Key      GapKey
	Severity GapSeverity
	Reason   string
}

package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
)

// IntentExtractor turns a free-form planning request into structured,
// confidence-annotated intent. Implementations must be honest about low
// confidence: uncertainty surfaces downstream as clarifying questions, not
// as silent defaults.
type IntentExtractor interface {
	Extract(ctx context.Context, text string, contextDate time.Time) (*domain.PlanIntent, error)
}

// knownPreferenceValues enumerates accepted values per preference dimension.
// "unknown" is always accepted.
var knownPreferenceValues = map[string]map[string]bool{
	"fixed_commitments": {"none": true, "some": true, "many": true},
	"energy_pattern":    {"morning": true, "afternoon": true, "evening": true, "variable": true},
	"heavy_tasks_time":  {"morning": true, "afternoon": true, "evening": true},
	"training_spacing":  {"daily": true, "alternating": true, "spaced": true},
	"task_distribution": {"even": true, "front_loaded": true, "deadline_driven": true},
}

// ValidateIntent is the schema validator applied to every extracted intent
// regardless of the extractor implementation.
func ValidateIntent(p domain.PlanIntent) error {
	if !domain.ValidHorizons[string(p.Horizon)] {
		return fmt.Errorf("unknown horizon: %q", p.Horizon)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
	}
	for i, task := range p.Tasks {
		if task.Title == "" {
			return fmt.Errorf("task %d: title is required", i)
		}
		if task.Confidence < 0 || task.Confidence > 1 {
			return fmt.Errorf("task %d: confidence must be in [0,1], got %f", i, task.Confidence)
		}
		if task.EstimatedMin < 0 {
			return fmt.Errorf("task %d: estimated_min must be >= 0", i)
		}
	}
	if err := validatePreference("fixed_commitments", p.Preferences.FixedCommitments); err != nil {
		return err
	}
	if err := validatePreference("energy_pattern", p.Preferences.EnergyPattern); err != nil {
		return err
	}
	if err := validatePreference("heavy_tasks_time", p.Preferences.HeavyTasksTime); err != nil {
		return err
	}
	if err := validatePreference("training_spacing", p.Preferences.TrainingSpacing); err != nil {
		return err
	}
	if err := validatePreference("task_distribution", p.Preferences.TaskDistribution); err != nil {
		return err
	}
	return nil
}

func validatePreference(dimension, value string) error {
	if value == "" || value == domain.PreferenceUnknown {
		return nil
	}
	if !knownPreferenceValues[dimension][value] {
		return fmt.Errorf("%s: unknown value %q", dimension, value)
	}
	return nil
}

// NormalizeIntent fills empty preference fields with the unknown sentinel so
// downstream gap rules see one canonical shape.
func NormalizeIntent(p *domain.PlanIntent) {
	if p.Preferences.FixedCommitments == "" {
		p.Preferences.FixedCommitments = domain.PreferenceUnknown
	}
	if p.Preferences.EnergyPattern == "" {
		p.Preferences.EnergyPattern = domain.PreferenceUnknown
	}
	if p.Preferences.HeavyTasksTime == "" {
		p.Preferences.HeavyTasksTime = domain.PreferenceUnknown
	}
	if p.Preferences.TrainingSpacing == "" {
		p.Preferences.TrainingSpacing = domain.PreferenceUnknown
	}
	if p.Preferences.TaskDistribution == "" {
		p.Preferences.TaskDistribution = domain.PreferenceUnknown
	}
}

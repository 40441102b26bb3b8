package planning

import (
	"strconv"

	"github.com/dmolina/ritmo/internal/domain"
)

// ResolveAnswerValue picks the effective value of an answer: a custom value
// wins over the selected option's canonical value, free text is last.
func ResolveAnswerValue(question domain.Question, answer domain.Answer) string {
	if answer.CustomValue != "" {
		return answer.CustomValue
	}
	if answer.OptionID != "" {
		for _, option := range question.Options {
			if option.ID == answer.OptionID {
				return option.Value
			}
		}
	}
	return answer.FreeText
}

// ApplyAnswer folds a resolved answer value back into the intent so the
// synthesizer sees one consistent picture. Unknown values are left alone;
// the synthesizer treats them as assumptions.
func ApplyAnswer(intent *domain.PlanIntent, gapKey domain.GapKey, value string) {
	if intent == nil || value == "" {
		return
	}
	switch gapKey {
	case domain.GapHorizonClarity:
		if domain.ValidHorizons[value] {
			intent.Horizon = domain.Horizon(value)
		}
	case domain.GapDateRange:
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			intent.HorizonDays = n
		}
	case domain.GapDayScope:
		// Captured as a rule decision; the synthesizer reads it from the
		// session meta rather than the intent.
	case domain.GapFixedCommitments:
		intent.Preferences.FixedCommitments = value
	case domain.GapEnergyPattern:
		intent.Preferences.EnergyPattern = value
	case domain.GapStudyWindow:
		intent.Preferences.HeavyTasksTime = value
	case domain.GapTrainingSpacing:
		intent.Preferences.TrainingSpacing = value
	case domain.GapTaskDistribution:
		intent.Preferences.TaskDistribution = value
	}
}

// AssumptionForGap returns the default substituted when a gap goes
// unresolved, recorded in the plan for transparency.
func AssumptionForGap(gap domain.PlanningGap, cfg Config) domain.Assumption {
	value := ""
	switch gap.Key {
	case domain.GapHorizonClarity:
		value = string(domain.HorizonMultiDay)
	case domain.GapDateRange:
		value = strconv.Itoa(cfg.DefaultHorizonDays)
	case domain.GapDayScope:
		value = "exclude_weekend"
	case domain.GapFixedCommitments:
		value = "none"
	case domain.GapEnergyPattern:
		value = "morning"
	case domain.GapStudyWindow:
		value = "morning"
	case domain.GapTrainingSpacing:
		value = "alternating"
	case domain.GapTaskDistribution:
		value = "even"
	}
	return domain.Assumption{
		GapKey: gap.Key,
		Value:  value,
		Reason: "question budget exhausted before this could be asked",
	}
}

// ApplyAssumption folds an assumption's default into the intent the same
// way an answer would be.
func ApplyAssumption(intent *domain.PlanIntent, assumption domain.Assumption) {
	ApplyAnswer(intent, assumption.GapKey, assumption.Value)
}

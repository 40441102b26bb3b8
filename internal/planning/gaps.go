package planning

import (
	"fmt"

	"github.com/dmolina/ritmo/internal/domain"
)

// gapRule evaluates one fixed gap dimension against extracted intent.
// Returning nil means the dimension is sufficiently resolved.
type gapRule func(intent domain.PlanIntent, cfg Config) *domain.PlanningGap

// gapRules maps each fixed gap key to its rule. Evaluation always walks
// domain.GapKeyOrder, so identical intent yields an identical gap list.
var gapRules = map[domain.GapKey]gapRule{
	domain.GapHorizonClarity:   ruleHorizonClarity,
	domain.GapDateRange:        ruleDateRange,
	domain.GapDayScope:         ruleDayScope,
	domain.GapFixedCommitments: ruleFixedCommitments,
	domain.GapEnergyPattern:    ruleEnergyPattern,
	domain.GapStudyWindow:      ruleStudyWindow,
	domain.GapTrainingSpacing:  ruleTrainingSpacing,
	domain.GapTaskDistribution: ruleTaskDistribution,
}

// AnalyzeGaps evaluates every gap rule in the fixed declaration order and
// returns the firing gaps. Low extraction confidence is not an error; it
// surfaces here as gaps to be clarified.
func AnalyzeGaps(intent domain.PlanIntent, cfg Config) []domain.PlanningGap {
	var gaps []domain.PlanningGap
	for _, key := range domain.GapKeyOrder {
		if gap := gapRules[key](intent, cfg); gap != nil {
			gaps = append(gaps, *gap)
		}
	}
	return gaps
}

func ruleHorizonClarity(intent domain.PlanIntent, cfg Config) *domain.PlanningGap {
	if intent.Horizon == domain.HorizonAmbiguous {
		return &domain.PlanningGap{
			Key:      domain.GapHorizonClarity,
			Severity: domain.SeverityHigh,
			Reason:   "could not tell whether you want a single day or several days planned",
		}
	}
	if intent.Confidence < cfg.ConfidenceThreshold {
		return &domain.PlanningGap{
			Key:      domain.GapHorizonClarity,
			Severity: domain.SeverityHigh,
			Reason:   fmt.Sprintf("overall understanding of the request is low (confidence %.2f)", intent.Confidence),
		}
	}
	return nil
}

func ruleDateRange(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Horizon == domain.HorizonMultiDay && intent.DateRange == nil && intent.HorizonDays == 0 {
		return &domain.PlanningGap{
			Key:      domain.GapDateRange,
			Severity: domain.SeverityHigh,
			Reason:   "a multi-day plan was requested but no dates or span were given",
		}
	}
	return nil
}

func ruleDayScope(intent domain.PlanIntent, cfg Config) *domain.PlanningGap {
	if intent.Horizon != domain.HorizonMultiDay {
		return nil
	}
	// Spans reaching into a weekend need to know whether weekend days count.
	if intent.ResolvedDays(cfg.DefaultHorizonDays) >= 6 {
		return &domain.PlanningGap{
			Key:      domain.GapDayScope,
			Severity: domain.SeverityMedium,
			Reason:   "the span covers a weekend; unclear whether weekend days should be planned",
		}
	}
	return nil
}

func ruleFixedCommitments(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Preferences.FixedCommitments == domain.PreferenceUnknown {
		return &domain.PlanningGap{
			Key:      domain.GapFixedCommitments,
			Severity: domain.SeverityMedium,
			Reason:   "no information about existing fixed commitments (classes, work hours, appointments)",
		}
	}
	return nil
}

func ruleEnergyPattern(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Preferences.EnergyPattern == domain.PreferenceUnknown {
		return &domain.PlanningGap{
			Key:      domain.GapEnergyPattern,
			Severity: domain.SeverityMedium,
			Reason:   "unknown when your energy usually peaks during the day",
		}
	}
	return nil
}

func ruleStudyWindow(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Preferences.HeavyTasksTime != domain.PreferenceUnknown {
		return nil
	}
	if !hasTaskOfType(intent, "study", "deep_work", "reading") {
		return nil
	}
	return &domain.PlanningGap{
		Key:      domain.GapStudyWindow,
		Severity: domain.SeverityMedium,
		Reason:   "demanding tasks were requested but not when to schedule them",
	}
}

func ruleTrainingSpacing(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Preferences.TrainingSpacing != domain.PreferenceUnknown {
		return nil
	}
	if !hasTaskOfType(intent, "training") {
		return nil
	}
	return &domain.PlanningGap{
		Key:      domain.GapTrainingSpacing,
		Severity: domain.SeverityMedium,
		Reason:   "training sessions were requested without a rest/spacing preference",
	}
}

func ruleTaskDistribution(intent domain.PlanIntent, _ Config) *domain.PlanningGap {
	if intent.Horizon != domain.HorizonMultiDay {
		return nil
	}
	if intent.Preferences.TaskDistribution != domain.PreferenceUnknown {
		return nil
	}
	return &domain.PlanningGap{
		Key:      domain.GapTaskDistribution,
		Severity: domain.SeverityLow,
		Reason:   "no preference for spreading work evenly versus front-loading it",
	}
}

func hasTaskOfType(intent domain.PlanIntent, types ...string) bool {
	for _, task := range intent.Tasks {
		for _, t := range types {
			if task.Type == t {
				return true
			}
		}
	}
	return false
}

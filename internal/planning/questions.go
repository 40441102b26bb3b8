package planning

import (
	"sort"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/google/uuid"
)

// questionSpec declares the prompt and options for one gap key.
type questionSpec struct {
	prompt  string
	options []domain.QuestionOption
}

func opt(id, label, value string) domain.QuestionOption {
	return domain.QuestionOption{ID: id, Label: label, Value: value}
}

func optCustom(id, label, value string) domain.QuestionOption {
	return domain.QuestionOption{ID: id, Label: label, Value: value, AllowsCustomValue: true}
}

// questionSpecs is the fixed prompt/option table per gap key.
var questionSpecs = map[domain.GapKey]questionSpec{
	domain.GapHorizonClarity: {
		prompt: "Should I plan just one day, or several days ahead?",
		options: []domain.QuestionOption{
			opt("one_day", "Just one day", "single_day"),
			opt("several", "Several days", "multi_day"),
		},
	},
	domain.GapDateRange: {
		prompt: "How many days should the plan cover?",
		options: []domain.QuestionOption{
			opt("three", "3 days", "3"),
			opt("five", "5 days (work week)", "5"),
			opt("seven", "A full week", "7"),
			optCustom("custom", "Another span", ""),
		},
	},
	domain.GapDayScope: {
		prompt: "Should weekend days be planned too?",
		options: []domain.QuestionOption{
			opt("include", "Yes, include weekends", "include_weekend"),
			opt("exclude", "No, weekdays only", "exclude_weekend"),
		},
	},
	domain.GapFixedCommitments: {
		prompt: "Do you have fixed commitments I should plan around?",
		options: []domain.QuestionOption{
			opt("none", "No fixed commitments", "none"),
			optCustom("some", "A few (tell me roughly when)", "some"),
			optCustom("many", "Many (tell me roughly when)", "many"),
		},
	},
	domain.GapEnergyPattern: {
		prompt: "When is your energy usually at its best?",
		options: []domain.QuestionOption{
			opt("morning", "Mornings", "morning"),
			opt("afternoon", "Afternoons", "afternoon"),
			opt("evening", "Evenings", "evening"),
			opt("variable", "It varies a lot", "variable"),
		},
	},
	domain.GapStudyWindow: {
		prompt: "When do you want the demanding work scheduled?",
		options: []domain.QuestionOption{
			opt("morning", "Mornings", "morning"),
			opt("afternoon", "Afternoons", "afternoon"),
			opt("evening", "Evenings", "evening"),
		},
	},
	domain.GapTrainingSpacing: {
		prompt: "How should training sessions be spaced?",
		options: []domain.QuestionOption{
			opt("daily", "Every day", "daily"),
			opt("alternating", "Every other day", "alternating"),
			opt("spaced", "With at least two rest days", "spaced"),
		},
	},
	domain.GapTaskDistribution: {
		prompt: "How should the workload be spread across the days?",
		options: []domain.QuestionOption{
			opt("even", "Evenly", "even"),
			opt("front", "Front-loaded (heavier at the start)", "front_loaded"),
			opt("deadline", "Driven by deadlines", "deadline_driven"),
		},
	},
}

// QuestionForGap builds the clarifying question for one gap.
func QuestionForGap(gap domain.PlanningGap) domain.Question {
	spec := questionSpecs[gap.Key]
	return domain.Question{
		ID:      "q-" + uuid.New().String()[:8],
		GapKey:  gap.Key,
		Prompt:  spec.prompt,
		Options: append([]domain.QuestionOption(nil), spec.options...),
	}
}

// OrderGaps sorts gaps highest severity first with the fixed gap-key
// declaration order as the stable tie break.
func OrderGaps(gaps []domain.PlanningGap) []domain.PlanningGap {
	out := append([]domain.PlanningGap(nil), gaps...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if domain.SeverityPriority(a.Severity) != domain.SeverityPriority(b.Severity) {
			return domain.SeverityPriority(a.Severity) < domain.SeverityPriority(b.Severity)
		}
		return domain.GapKeyRank(a.Key) < domain.GapKeyRank(b.Key)
	})
	return out
}

// Package insight turns behavioral patterns and extended metrics into
// ranked, human-facing recommendations and a profile summary. Everything
// here is a pure function of its inputs.
package insight

import (
	"fmt"
	"sort"

	"github.com/dmolina/ritmo/internal/analysis"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// DefaultMaxRecommendations bounds how much advice one call may emit.
const DefaultMaxRecommendations = 5

// BuildInput is the full input to BuildInsights.
type BuildInput struct {
	Patterns contract.PatternResult
	Metrics  contract.ExtendedMetrics
	Trends   []contract.MetricTrend
	Settings domain.Settings
	MaxRecs  int
}

// adviceFactor inspects the inputs and returns zero or one recommendation.
// The declaration order of factors is the stable tie break for equal
// severities.
type adviceFactor func(BuildInput) *contract.Recommendation

var adviceFactors = []adviceFactor{
	adviseFocusWindow,
	adviseStrongestDay,
	adviseInterruptions,
	adviseAdherence,
	adviseCompletion,
	adviseLowMood,
	adviseReflection,
}

// BuildInsights produces the ranked recommendation list plus the profile
// summary. Advice keys are never duplicated within one call and the result
// is bounded by MaxRecs.
func BuildInsights(in BuildInput) ([]contract.Recommendation, contract.ProfileInsights, string) {
	maxRecs := in.MaxRecs
	if maxRecs <= 0 {
		maxRecs = DefaultMaxRecommendations
	}

	var recs []contract.Recommendation
	seen := make(map[string]bool)
	rank := make(map[string]int)
	for i, factor := range adviceFactors {
		rec := factor(in)
		if rec == nil || seen[rec.Key] {
			continue
		}
		seen[rec.Key] = true
		rank[rec.Key] = i
		recs = append(recs, *rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Severity != recs[j].Severity {
			return recs[i].Severity > recs[j].Severity
		}
		return rank[recs[i].Key] < rank[recs[j].Key]
	})
	if len(recs) > maxRecs {
		recs = recs[:maxRecs]
	}

	profile := buildProfile(in)
	summary := buildWeeklySummary(in, profile)
	return recs, profile, summary
}

func adviseFocusWindow(in BuildInput) *contract.Recommendation {
	slots := in.Patterns.SlotScores
	if len(slots) < 2 {
		return nil
	}
	best, worst := slots[0], slots[len(slots)-1]
	if worst.Score <= 0 {
		return nil
	}
	gap := best.Score / worst.Score
	if gap < 1.5 {
		return nil
	}
	return &contract.Recommendation{
		Key:      "focus_window",
		Severity: gap,
		Message: fmt.Sprintf("Your %s %s slot scores %.1fx better than your weakest one; protect it for demanding work",
			best.Weekday, analysis.SlotLabel(best.Slot), gap),
	}
}

func adviseStrongestDay(in BuildInput) *contract.Recommendation {
	days := in.Patterns.DayScores
	if len(days) < 2 {
		return nil
	}
	best, worst := days[0], days[len(days)-1]
	if worst.Score <= 0 {
		return nil
	}
	gap := best.Score / worst.Score
	if gap < 1.5 {
		return nil
	}
	return &contract.Recommendation{
		Key:      "strongest_day",
		Severity: gap,
		Message: fmt.Sprintf("%s is your strongest day; front-load important tasks there instead of %s",
			best.Weekday, worst.Weekday),
	}
}

func adviseInterruptions(in BuildInput) *contract.Recommendation {
	rate := in.Metrics.InterruptionRate
	if rate == nil || *rate < 0.3 {
		return nil
	}
	return &contract.Recommendation{
		Key:      "interruptions",
		Severity: 1 + *rate,
		Message:  fmt.Sprintf("%.0f%% of your blocks get interrupted; try shorter blocks or a do-not-disturb window", *rate*100),
	}
}

func adviseAdherence(in BuildInput) *contract.Recommendation {
	adherence := in.Metrics.Adherence
	if adherence == nil {
		return nil
	}
	switch {
	case *adherence < 0.8:
		return &contract.Recommendation{
			Key:      "adherence",
			Severity: 1 + (0.8 - *adherence),
			Message:  "You consistently finish early or abandon blocks; plan shorter blocks to match your real pace",
		}
	case *adherence > 1.2:
		return &contract.Recommendation{
			Key:      "adherence",
			Severity: 1 + (*adherence - 1.2),
			Message:  "Blocks regularly run over their planned time; add buffer to your estimates",
		}
	}
	return nil
}

func adviseCompletion(in BuildInput) *contract.Recommendation {
	rate := in.Metrics.CompletionRate
	if rate == nil || *rate >= 0.5 {
		return nil
	}
	return &contract.Recommendation{
		Key:      "completion",
		Severity: 1 + (0.5 - *rate),
		Message:  fmt.Sprintf("Only %.0f%% of blocks complete; schedule fewer, smaller blocks and build momentum", *rate*100),
	}
}

func adviseLowMood(in BuildInput) *contract.Recommendation {
	feeling := in.Metrics.AvgFeeling
	if feeling == nil || *feeling >= 2.5 {
		return nil
	}
	return &contract.Recommendation{
		Key:      "low_mood",
		Severity: 2 + (2.5 - *feeling),
		Message:  "Completion feedback has been consistently negative; consider lighter days before adding more load",
	}
}

func adviseReflection(in BuildInput) *contract.Recommendation {
	if in.Settings.DailyReflectionEnabled {
		return nil
	}
	return &contract.Recommendation{
		Key:      "reflection",
		Severity: 0.5,
		Message:  "Daily reflection is off; turning it on improves the quality of these insights",
	}
}

func buildProfile(in BuildInput) contract.ProfileInsights {
	profile := contract.ProfileInsights{}

	if slot := in.Patterns.BestFocusSlot; slot != nil {
		profile.BestFocusWindow = fmt.Sprintf("%s %s", slot.Weekday, analysis.SlotLabel(slot.Slot))
		profile.Highlights = append(profile.Highlights,
			fmt.Sprintf("Best focus window: %s", profile.BestFocusWindow))
	}
	if day := in.Patterns.StrongestDay; day != nil {
		profile.StrongestDay = day.Weekday.String()
		profile.Highlights = append(profile.Highlights,
			fmt.Sprintf("Strongest day: %s", profile.StrongestDay))
	}
	if len(in.Patterns.Categories) > 0 {
		top := in.Patterns.Categories[0]
		profile.TopCategory = top.Category
		profile.Highlights = append(profile.Highlights,
			fmt.Sprintf("Most scheduled category: %s (%d min)", top.Category, top.Minutes))
	}
	for _, tr := range in.Trends {
		if tr.Label != domain.TrendStable {
			profile.Highlights = append(profile.Highlights,
				fmt.Sprintf("%s is %s", tr.Metric, tr.Label))
		}
	}
	return profile
}

func buildWeeklySummary(in BuildInput, profile contract.ProfileInsights) string {
	if profile.BestFocusWindow == "" && in.Metrics.CompletionRate == nil {
		return "Not enough activity this week to summarize."
	}
	summary := "This week"
	if in.Metrics.CompletionRate != nil {
		summary += fmt.Sprintf(" you completed %.0f%% of your blocks", *in.Metrics.CompletionRate*100)
	}
	if profile.BestFocusWindow != "" {
		summary += fmt.Sprintf("; your focus peaked around %s", profile.BestFocusWindow)
	}
	return summary + "."
}

package analysis

import (
	"sort"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

const dateLayout = "2006-01-02"

type dayAgg struct {
	blocks      int
	completed   int
	interrupted int
	feelingSum  float64
	feelingN    int
	actualMin   int
	plannedMin  int
	hasActual   bool
}

// BuildExtendedMetrics derives per-day scalar metrics plus window-level
// aggregates. Absent data degrades to nil averages, never to an error: an
// empty bundle yields an empty daily series and all-nil window values.
func BuildExtendedMetrics(bundle contract.RecordBundle, idx domain.FeedbackIndex) contract.ExtendedMetrics {
	days := make(map[string]*dayAgg)
	dayOf := func(date string) *dayAgg {
		if days[date] == nil {
			days[date] = &dayAgg{}
		}
		return days[date]
	}

	for _, b := range bundle.Blocks {
		agg := dayOf(b.Start.Format(dateLayout))
		agg.blocks++
		if b.Completed {
			agg.completed++
		}
		if b.Interrupted {
			agg.interrupted++
		}
		if b.ActualMin != nil && b.PlannedMin > 0 {
			agg.actualMin += *b.ActualMin
			agg.plannedMin += b.PlannedMin
			agg.hasActual = true
		}
		for _, fb := range idx.ForBlock(b.ID) {
			agg.feelingSum += float64(fb.Feeling)
			agg.feelingN++
		}
	}

	result := contract.ExtendedMetrics{}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var total dayAgg
	for _, date := range dates {
		agg := days[date]
		metric := contract.DailyMetric{Date: date}
		if agg.blocks > 0 {
			metric.CompletionRate = ratio(agg.completed, agg.blocks)
			metric.InterruptionRate = ratio(agg.interrupted, agg.blocks)
		}
		if agg.feelingN > 0 {
			avg := agg.feelingSum / float64(agg.feelingN)
			metric.AvgFeeling = &avg
		}
		if agg.hasActual && agg.plannedMin > 0 {
			adherence := float64(agg.actualMin) / float64(agg.plannedMin)
			metric.Adherence = &adherence
		}
		result.Daily = append(result.Daily, metric)

		total.blocks += agg.blocks
		total.completed += agg.completed
		total.interrupted += agg.interrupted
		total.feelingSum += agg.feelingSum
		total.feelingN += agg.feelingN
		total.actualMin += agg.actualMin
		total.plannedMin += agg.plannedMin
	}

	if total.blocks > 0 {
		result.CompletionRate = ratio(total.completed, total.blocks)
		result.InterruptionRate = ratio(total.interrupted, total.blocks)
	}
	if total.feelingN > 0 {
		avg := total.feelingSum / float64(total.feelingN)
		result.AvgFeeling = &avg
	}
	if total.plannedMin > 0 {
		adherence := float64(total.actualMin) / float64(total.plannedMin)
		result.Adherence = &adherence
	}

	return result
}

func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	v := float64(num) / float64(den)
	return &v
}

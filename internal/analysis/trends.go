package analysis

import (
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// DefaultTrendThreshold is the minimum absolute first-difference between
// window halves required to label a trend; smaller moves are "stable" so
// noise never drives a label.
const DefaultTrendThreshold = 0.05

// Metric names used in trend output.
const (
	MetricCompletionRate   = "completion_rate"
	MetricInterruptionRate = "interruption_rate"
	MetricAvgFeeling       = "avg_feeling"
	MetricAdherence        = "adherence"
)

// BuildTrends compares the first and second half of the daily series for
// each metric and labels the movement. Metrics with no data in either half
// are omitted. For interruption rate a falling value is an improvement.
func BuildTrends(daily []contract.DailyMetric, threshold float64) []contract.MetricTrend {
	if threshold <= 0 {
		threshold = DefaultTrendThreshold
	}
	if len(daily) < 2 {
		return nil
	}

	mid := len(daily) / 2
	first, second := daily[:mid], daily[mid:]

	type metricDef struct {
		name     string
		value    func(contract.DailyMetric) *float64
		inverted bool
	}
	defs := []metricDef{
		{MetricCompletionRate, func(m contract.DailyMetric) *float64 { return m.CompletionRate }, false},
		{MetricInterruptionRate, func(m contract.DailyMetric) *float64 { return m.InterruptionRate }, true},
		{MetricAvgFeeling, func(m contract.DailyMetric) *float64 { return m.AvgFeeling }, false},
		{MetricAdherence, func(m contract.DailyMetric) *float64 { return m.Adherence }, false},
	}

	var trends []contract.MetricTrend
	for _, def := range defs {
		a, okA := halfMean(first, def.value)
		b, okB := halfMean(second, def.value)
		if !okA || !okB {
			continue
		}
		delta := b - a
		label := labelDelta(delta, threshold, def.inverted)
		trends = append(trends, contract.MetricTrend{
			Metric: def.name,
			Label:  label,
			Delta:  delta,
		})
	}
	return trends
}

func halfMean(daily []contract.DailyMetric, value func(contract.DailyMetric) *float64) (float64, bool) {
	sum, n := 0.0, 0
	for _, m := range daily {
		if v := value(m); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func labelDelta(delta, threshold float64, inverted bool) domain.TrendLabel {
	if delta > -threshold && delta < threshold {
		return domain.TrendStable
	}
	improving := delta > 0
	if inverted {
		improving = !improving
	}
	if improving {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}

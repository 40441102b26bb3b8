package analysis

import (
	"testing"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func dailySeries(completion ...*float64) []contract.DailyMetric {
	out := make([]contract.DailyMetric, len(completion))
	for i, c := range completion {
		out[i] = contract.DailyMetric{Date: "2026-03-02", CompletionRate: c}
	}
	return out
}

func trendFor(t *testing.T, trends []contract.MetricTrend, metric string) contract.MetricTrend {
	t.Helper()
	for _, tr := range trends {
		if tr.Metric == metric {
			return tr
		}
	}
	t.Fatalf("no trend for %s", metric)
	return contract.MetricTrend{}
}

func TestBuildTrends_RisingCompletionIsImproving(t *testing.T) {
	trends := BuildTrends(dailySeries(fp(0.4), fp(0.5), fp(0.8), fp(0.9)), DefaultTrendThreshold)

	tr := trendFor(t, trends, MetricCompletionRate)
	assert.Equal(t, domain.TrendImproving, tr.Label)
	assert.InDelta(t, 0.4, tr.Delta, 0.001)
}

func TestBuildTrends_FallingInterruptionIsImproving(t *testing.T) {
	daily := []contract.DailyMetric{
		{InterruptionRate: fp(0.5)},
		{InterruptionRate: fp(0.5)},
		{InterruptionRate: fp(0.1)},
		{InterruptionRate: fp(0.1)},
	}

	trends := BuildTrends(daily, DefaultTrendThreshold)

	tr := trendFor(t, trends, MetricInterruptionRate)
	assert.Equal(t, domain.TrendImproving, tr.Label)
	assert.Less(t, tr.Delta, 0.0)
}

func TestBuildTrends_SmallMovesAreStable(t *testing.T) {
	trends := BuildTrends(dailySeries(fp(0.50), fp(0.50), fp(0.52), fp(0.52)), DefaultTrendThreshold)

	tr := trendFor(t, trends, MetricCompletionRate)
	assert.Equal(t, domain.TrendStable, tr.Label)
}

func TestBuildTrends_MetricsWithoutDataAreOmitted(t *testing.T) {
	trends := BuildTrends(dailySeries(fp(0.4), fp(0.5), nil, nil), DefaultTrendThreshold)

	for _, tr := range trends {
		assert.NotEqual(t, MetricCompletionRate, tr.Metric, "half with no data should omit the metric")
	}
}

func TestBuildTrends_TooShortSeriesYieldsNothing(t *testing.T) {
	require.Nil(t, BuildTrends(dailySeries(fp(0.5)), DefaultTrendThreshold))
	require.Nil(t, BuildTrends(nil, DefaultTrendThreshold))
}

package formatter

import (
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func emptyHeatmap() contract.Heatmap {
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	cells := make([][]float64, len(days))
	for i := range cells {
		cells[i] = make([]float64, 48)
	}
	return contract.Heatmap{Days: days, SlotCount: 48, Cells: cells}
}

func TestFormatInsights_FullBundle(t *testing.T) {
	hm := emptyHeatmap()
	hm.Cells[0][18] = 1.0

	bundle := &contract.InsightBundle{
		ProfileInsights: contract.ProfileInsights{
			BestFocusWindow: "Monday 09:00",
			StrongestDay:    "Monday",
			TopCategory:     "study",
		},
		WeeklySummary: "Solid week: 4 focus blocks completed.",
		FocusHeatmap:  hm,
		ExtendedMetrics: contract.ExtendedMetrics{
			CompletionRate:   floatPtr(0.8),
			InterruptionRate: floatPtr(0.1),
			AvgFeeling:       floatPtr(4.2),
		},
		Recommendations: []contract.Recommendation{
			{Key: "protect_morning", Message: "Protect your Monday mornings.", Severity: 0.9},
		},
		Trends: []contract.MetricTrend{
			{Metric: "completion_rate", Label: domain.TrendImproving, Delta: 0.12},
		},
	}

	out := FormatInsights(bundle)

	assert.Contains(t, out, "Monday 09:00")
	assert.Contains(t, out, "study")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "4.2/5")
	assert.Contains(t, out, "improving")
	assert.Contains(t, out, "Protect your Monday mornings.")
	assert.Contains(t, out, "Solid week")
	assert.Contains(t, out, "Mon")
}

func TestFormatInsights_EmptyProfile(t *testing.T) {
	bundle := &contract.InsightBundle{
		FocusHeatmap:  emptyHeatmap(),
		WeeklySummary: "No activity recorded this week.",
	}

	out := FormatInsights(bundle)
	assert.Contains(t, out, "Not enough activity yet")
	assert.Contains(t, out, "--")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

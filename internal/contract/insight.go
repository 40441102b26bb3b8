package contract

import (
	"time"

	"github.com/dmolina/ritmo/internal/domain"
)

// InsightRequest asks for the full analytics bundle over a window.
type InsightRequest struct {
	Range    domain.RangeBounds
	Settings domain.Settings
}

// RecordBundle is the raw material the caller loads for the engine. The
// engine never fetches data itself.
type RecordBundle struct {
	Blocks   []domain.Block
	Tasks    []domain.Task
	CheckIns []domain.CheckIn
	Feedback []domain.CompletionFeedback
}

// SlotScore is an aggregate score for one (weekday, slot) bucket.
type SlotScore struct {
	Weekday time.Weekday
	Slot    int
	Score   float64
	Minutes int
}

// DayScore is an aggregate score for one weekday.
type DayScore struct {
	Weekday time.Weekday
	Score   float64
	Minutes int
}

// CategoryStat summarizes activity for one block category.
type CategoryStat struct {
	Category   string
	Minutes    int
	BlockCount int
	AvgFeeling *float64
}

// PatternResult is the output of the pattern analyzer.
type PatternResult struct {
	BestFocusSlot *SlotScore
	StrongestDay  *DayScore
	SlotScores    []SlotScore
	DayScores     []DayScore
	Categories    []CategoryStat
}

// Heatmap is a day x slot grid of normalized [0,1] intensities.
type Heatmap struct {
	Days      []time.Weekday
	SlotCount int
	Cells     [][]float64 // [dayIndex][slot]
}

// DailyMetric is one day's derived scalar metrics. Averages are nil when the
// day carries no qualifying data.
type DailyMetric struct {
	Date             string // YYYY-MM-DD
	CompletionRate   *float64
	InterruptionRate *float64
	AvgFeeling       *float64
	Adherence        *float64 // actual / planned
}

// ExtendedMetrics aggregates daily series plus window-level averages.
type ExtendedMetrics struct {
	Daily            []DailyMetric
	CompletionRate   *float64
	InterruptionRate *float64
	AvgFeeling       *float64
	Adherence        *float64
}

// MetricTrend labels one metric's movement across the window.
type MetricTrend struct {
	Metric string
	Label  domain.TrendLabel
	Delta  float64
}

// Recommendation is one ranked piece of advice with a stable dedupe key.
type Recommendation struct {
	Key      string
	Message  string
	Severity float64
}

// ProfileInsights is the human-facing summary of behavioral patterns.
type ProfileInsights struct {
	BestFocusWindow string
	StrongestDay    string
	TopCategory     string
	Highlights      []string
}

// InsightBundle is the full analytics result for external consumption.
type InsightBundle struct {
	ProfileInsights ProfileInsights
	WeeklySummary   string
	FocusHeatmap    Heatmap
	ExtendedMetrics ExtendedMetrics
	Recommendations []Recommendation
	Trends          []MetricTrend
}

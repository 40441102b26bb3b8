package analysis

import (
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePatterns_SingleBlockMondayMorning(t *testing.T) {
	// 2024-01-08 is a Monday.
	block := domain.Block{
		ID:         "b1",
		Start:      time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 1, 8, 11, 0, 0, 0, time.UTC),
		PlannedMin: 120,
		Category:   "study",
	}
	require.Equal(t, 120, block.DurationMinutes())

	result := AnalyzePatterns([]domain.Block{block}, domain.BuildFeedbackIndex(nil))

	require.NotNil(t, result.BestFocusSlot)
	assert.Equal(t, time.Monday, result.BestFocusSlot.Weekday)
	assert.Equal(t, SlotOf(block.Start), result.BestFocusSlot.Slot)
	assert.Equal(t, "09:00", SlotLabel(result.BestFocusSlot.Slot))
	// No feedback: duration weighted by the neutral feeling.
	assert.InDelta(t, 120*NeutralWeight, result.BestFocusSlot.Score, 1e-9)

	require.NotNil(t, result.StrongestDay)
	assert.Equal(t, time.Monday, result.StrongestDay.Weekday)

	// Only one slot has any weight.
	assert.Len(t, result.SlotScores, 1)
	assert.Len(t, result.DayScores, 1)
}

func TestAnalyzePatterns_FeedbackWeighting(t *testing.T) {
	monday9 := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	tuesday9 := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)

	blocks := []domain.Block{
		{ID: "good", Start: monday9, End: monday9.Add(time.Hour), PlannedMin: 60},
		{ID: "bad", Start: tuesday9, End: tuesday9.Add(time.Hour), PlannedMin: 60},
	}
	idx := domain.BuildFeedbackIndex([]domain.CompletionFeedback{
		{ID: "f1", BlockID: "good", Feeling: domain.FeelingExcellent},
		{ID: "f2", BlockID: "bad", Feeling: domain.FeelingFrustrated},
	})

	result := AnalyzePatterns(blocks, idx)

	require.NotNil(t, result.BestFocusSlot)
	assert.Equal(t, time.Monday, result.BestFocusSlot.Weekday)
	assert.InDelta(t, 60*5.0, result.BestFocusSlot.Score, 1e-9)

	require.NotNil(t, result.StrongestDay)
	assert.Equal(t, time.Monday, result.StrongestDay.Weekday)
}

func TestAnalyzePatterns_TieBreaksDeterministic(t *testing.T) {
	// Two equally scored blocks: Wednesday 14:00 and Monday 09:00.
	monday9 := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	wednesday14 := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	blocks := []domain.Block{
		{ID: "w", Start: wednesday14, End: wednesday14.Add(time.Hour), PlannedMin: 60},
		{ID: "m", Start: monday9, End: monday9.Add(time.Hour), PlannedMin: 60},
	}

	result := AnalyzePatterns(blocks, domain.BuildFeedbackIndex(nil))

	// Earliest slot wins the tie.
	require.NotNil(t, result.BestFocusSlot)
	assert.Equal(t, SlotOf(monday9), result.BestFocusSlot.Slot)
	// Lowest weekday index wins the day tie (Sunday=0 ... but neither is
	// Sunday here: Monday < Wednesday).
	require.NotNil(t, result.StrongestDay)
	assert.Equal(t, time.Monday, result.StrongestDay.Weekday)
}

func TestAnalyzePatterns_EmptyInput(t *testing.T) {
	result := AnalyzePatterns(nil, domain.BuildFeedbackIndex(nil))

	assert.Nil(t, result.BestFocusSlot)
	assert.Nil(t, result.StrongestDay)
	assert.Empty(t, result.SlotScores)
	assert.Empty(t, result.Categories)
}

func TestAnalyzePatterns_CategoryBreakdown(t *testing.T) {
	monday9 := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

	blocks := []domain.Block{
		{ID: "s1", Start: monday9, End: monday9.Add(time.Hour), PlannedMin: 90, Category: "study"},
		{ID: "s2", Start: monday9.Add(2 * time.Hour), End: monday9.Add(3 * time.Hour), PlannedMin: 60, Category: "study"},
		{ID: "g1", Start: monday9.Add(4 * time.Hour), End: monday9.Add(5 * time.Hour), PlannedMin: 30, Category: "gym"},
	}
	idx := domain.BuildFeedbackIndex([]domain.CompletionFeedback{
		{ID: "f1", BlockID: "s1", Feeling: domain.FeelingGood},
	})

	result := AnalyzePatterns(blocks, idx)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "study", result.Categories[0].Category)
	assert.Equal(t, 150, result.Categories[0].Minutes)
	assert.Equal(t, 2, result.Categories[0].BlockCount)
	require.NotNil(t, result.Categories[0].AvgFeeling)
	assert.InDelta(t, 4.0, *result.Categories[0].AvgFeeling, 1e-9)
	assert.Nil(t, result.Categories[1].AvgFeeling)
}

package analysis

import (
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeatmap_EmptyWindowIsAllZero(t *testing.T) {
	hm := BuildHeatmap(nil)

	require.Len(t, hm.Cells, 7)
	assert.Equal(t, SlotsPerDay, hm.SlotCount)
	for _, row := range hm.Cells {
		require.Len(t, row, SlotsPerDay)
		for _, cell := range row {
			assert.Zero(t, cell)
		}
	}
}

func TestBuildHeatmap_NormalizedByMaxCell(t *testing.T) {
	monday9 := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	tuesday9 := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)

	blocks := []domain.Block{
		{ID: "big", Start: monday9, End: monday9.Add(2 * time.Hour), PlannedMin: 120},
		{ID: "small", Start: tuesday9, End: tuesday9.Add(time.Hour), PlannedMin: 60},
	}

	hm := BuildHeatmap(blocks)

	slot := SlotOf(monday9)
	// Monday is row 0, Tuesday row 1.
	assert.InDelta(t, 1.0, hm.Cells[0][slot], 1e-9)
	assert.InDelta(t, 0.5, hm.Cells[1][slot], 1e-9)

	for i, row := range hm.Cells {
		for s, cell := range row {
			assert.GreaterOrEqual(t, cell, 0.0, "cell [%d][%d]", i, s)
			assert.LessOrEqual(t, cell, 1.0, "cell [%d][%d]", i, s)
		}
	}
}

func TestBuildHeatmap_AccumulatesSameBucket(t *testing.T) {
	monday9 := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	nextMonday9 := monday9.AddDate(0, 0, 7)

	blocks := []domain.Block{
		{ID: "w1", Start: monday9, End: monday9.Add(time.Hour), PlannedMin: 60},
		{ID: "w2", Start: nextMonday9, End: nextMonday9.Add(time.Hour), PlannedMin: 60},
		{ID: "other", Start: monday9.Add(3 * time.Hour), End: monday9.Add(4 * time.Hour), PlannedMin: 60},
	}

	hm := BuildHeatmap(blocks)

	// Two Mondays at 09:00 accumulate to the max cell.
	assert.InDelta(t, 1.0, hm.Cells[0][SlotOf(monday9)], 1e-9)
	assert.InDelta(t, 0.5, hm.Cells[0][SlotOf(monday9.Add(3*time.Hour))], 1e-9)
}

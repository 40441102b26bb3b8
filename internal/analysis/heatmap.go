package analysis

import (
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// heatmapDays is the fixed row order of the grid, Monday first.
var heatmapDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// BuildHeatmap produces a weekday x slot grid where each cell is the total
// scheduled minutes in that bucket, linearly scaled to [0,1] by the maximum
// observed cell. A window with zero activity yields an all-zero grid.
func BuildHeatmap(blocks []domain.Block) contract.Heatmap {
	rows := make(map[time.Weekday]int, len(heatmapDays))
	for i, d := range heatmapDays {
		rows[d] = i
	}

	minutes := make([][]int, len(heatmapDays))
	for i := range minutes {
		minutes[i] = make([]int, SlotsPerDay)
	}

	maxCell := 0
	for _, b := range blocks {
		row := rows[b.Start.Weekday()]
		slot := SlotOf(b.Start)
		minutes[row][slot] += b.DurationMinutes()
		if minutes[row][slot] > maxCell {
			maxCell = minutes[row][slot]
		}
	}

	cells := make([][]float64, len(heatmapDays))
	for i := range cells {
		cells[i] = make([]float64, SlotsPerDay)
		if maxCell == 0 {
			continue
		}
		for s, m := range minutes[i] {
			cells[i][s] = float64(m) / float64(maxCell)
		}
	}

	return contract.Heatmap{
		Days:      append([]time.Weekday(nil), heatmapDays...),
		SlotCount: SlotsPerDay,
		Cells:     cells,
	}
}

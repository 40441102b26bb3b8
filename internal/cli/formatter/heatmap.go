package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmolina/ritmo/internal/contract"
)

// Intensity ramp from empty to saturated.
var heatRamp = []string{"·", "░", "▒", "▓", "█"}

var heatStyles = []lipgloss.Style{
	StyleDim,
	StyleBlue,
	StyleGreen,
	StyleYellow,
	StyleRed,
}

func heatCell(v float64) string {
	if v <= 0 {
		return StyleDim.Render(heatRamp[0])
	}
	idx := int(v * float64(len(heatRamp)-1))
	if idx < 1 {
		idx = 1
	}
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return heatStyles[idx].Render(heatRamp[idx])
}

// RenderHeatmap renders the weekday x slot focus grid, one row per weekday
// with an hour axis along the top. Every cell is one half-hour bucket.
func RenderHeatmap(h contract.Heatmap) string {
	if len(h.Days) == 0 || h.SlotCount == 0 {
		return Dim("No activity recorded.") + "\n"
	}

	var b strings.Builder

	// Hour axis: a label every two hours, each spanning four cells.
	b.WriteString("     ")
	for slot := 0; slot < h.SlotCount; slot += 4 {
		hour := slot * 30 / 60
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", fmt.Sprintf("%02d", hour))))
	}
	b.WriteString("\n")

	for i, day := range h.Days {
		b.WriteString(StyleFg.Render(fmt.Sprintf("%-4s", day.String()[:3])) + " ")
		for slot := 0; slot < h.SlotCount && slot < len(h.Cells[i]); slot++ {
			b.WriteString(heatCell(h.Cells[i][slot]))
		}
		b.WriteString("\n")
	}

	b.WriteString("     " + Dim("less ") + heatCell(0.2) + heatCell(0.45) + heatCell(0.7) + heatCell(1.0) + Dim(" more"))
	b.WriteString("\n")
	return b.String()
}

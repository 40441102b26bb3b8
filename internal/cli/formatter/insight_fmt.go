package formatter

import (
	"fmt"
	"strings"

	"github.com/dmolina/ritmo/internal/analysis"
	"github.com/dmolina/ritmo/internal/contract"
)

// FormatInsights renders the full analytics bundle for terminal display.
func FormatInsights(b *contract.InsightBundle) string {
	var out strings.Builder

	out.WriteString(Header("Your Rhythm") + "\n")
	out.WriteString(formatProfile(b.ProfileInsights))
	out.WriteString("\n")

	out.WriteString(Header("Focus Heatmap") + "\n")
	out.WriteString(RenderHeatmap(b.FocusHeatmap))
	out.WriteString("\n")

	out.WriteString(Header("Metrics") + "\n")
	out.WriteString(formatMetrics(b.ExtendedMetrics, b.Trends))
	out.WriteString("\n")

	if len(b.Recommendations) > 0 {
		out.WriteString(Header("Recommendations") + "\n")
		for _, r := range b.Recommendations {
			out.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render("▸"), r.Message))
		}
		out.WriteString("\n")
	}

	if b.WeeklySummary != "" {
		out.WriteString(RenderBox("This Week", b.WeeklySummary) + "\n")
	}

	return out.String()
}

func formatProfile(p contract.ProfileInsights) string {
	var out strings.Builder

	if p.BestFocusWindow != "" {
		out.WriteString(fmt.Sprintf("  Best focus window  %s\n", Bold(p.BestFocusWindow)))
	}
	if p.StrongestDay != "" {
		out.WriteString(fmt.Sprintf("  Strongest day      %s\n", Bold(p.StrongestDay)))
	}
	if p.TopCategory != "" {
		out.WriteString(fmt.Sprintf("  Top category       %s\n", StylePurple.Render(p.TopCategory)))
	}
	for _, h := range p.Highlights {
		out.WriteString(fmt.Sprintf("  %s %s\n", Dim("•"), h))
	}
	if out.Len() == 0 {
		out.WriteString(Dim("  Not enough activity yet to profile your rhythm.") + "\n")
	}
	return out.String()
}

func formatMetrics(m contract.ExtendedMetrics, trends []contract.MetricTrend) string {
	trendByMetric := make(map[string]contract.MetricTrend, len(trends))
	for _, t := range trends {
		trendByMetric[t.Metric] = t
	}

	row := func(name string, value string, pct *float64) []string {
		bar := ""
		if pct != nil {
			bar = RenderProgress(*pct, 12)
		}
		trend := ""
		if t, ok := trendByMetric[name]; ok {
			trend = TrendArrow(t.Label)
		}
		return []string{name, value, bar, trend}
	}

	headers := []string{"METRIC", "VALUE", "", "TREND"}
	rows := [][]string{
		row(analysis.MetricCompletionRate, FormatPercent(m.CompletionRate), m.CompletionRate),
		row(analysis.MetricInterruptionRate, FormatPercent(m.InterruptionRate), m.InterruptionRate),
		row(analysis.MetricAvgFeeling, FormatScore(m.AvgFeeling), nil),
		row(analysis.MetricAdherence, FormatPercent(m.Adherence), m.Adherence),
	}
	return RenderTable(headers, rows)
}

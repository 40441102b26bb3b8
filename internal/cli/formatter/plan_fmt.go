package formatter

import (
	"fmt"
	"strings"

	"github.com/dmolina/ritmo/internal/domain"
)

// FormatQuestion renders one clarifying question with its numbered options
// and the session's question budget position.
func FormatQuestion(q domain.Question, asked, budget int) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render("?"), Bold(q.Prompt)))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.AllowsCustomValue {
			label += Dim(" (or type your own)")
		}
		out.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), label))
	}
	out.WriteString(Dim(fmt.Sprintf("  question %d of %d", asked, budget)) + "\n")
	return out.String()
}

// FormatPlan renders a synthesized multi-day plan: one section per day, its
// scheduled blocks and breaks, then assumptions and warnings.
func FormatPlan(p *domain.MultiDayPlan) string {
	var out strings.Builder

	for _, day := range p.Days {
		out.WriteString(Header(fmt.Sprintf("Day %d  %s", day.DayIndex+1, HumanDate(day.Date))) + "\n")
		out.WriteString(formatDay(day.Plan))
		out.WriteString("\n")
	}

	out.WriteString(Dim(fmt.Sprintf("Total scheduled: %s", FormatMinutes(p.TotalScheduledMinutes()))) + "\n")

	if len(p.Assumptions) > 0 {
		out.WriteString("\n" + Header("Assumptions") + "\n")
		for _, a := range p.Assumptions {
			out.WriteString(fmt.Sprintf("  %s %s = %s %s\n",
				Dim("•"), string(a.GapKey), Bold(a.Value), Dim("("+a.Reason+")")))
		}
	}

	if len(p.Warnings) > 0 {
		out.WriteString("\n")
		for _, w := range p.Warnings {
			out.WriteString(StyleYellow.Render("  ! "+w) + "\n")
		}
	}

	return out.String()
}

func formatDay(d domain.SingleDayPlan) string {
	var out strings.Builder

	breakAfter := make(map[string]int, len(d.Breaks))
	for _, br := range d.Breaks {
		breakAfter[br.After] = br.Minutes
	}

	if len(d.Blocks) == 0 {
		out.WriteString(Dim("  Nothing scheduled.") + "\n")
		return out.String()
	}

	for _, b := range d.Blocks {
		out.WriteString(fmt.Sprintf("  %s%s%s  %s  %s %s\n",
			StyleFg.Render(b.Start), Dim("–"), StyleFg.Render(b.End),
			BlockTypeBadge(b.Type),
			Bold(b.Label),
			Dim(FormatMinutes(b.Minutes))))
		if min, ok := breakAfter[b.End]; ok {
			out.WriteString(fmt.Sprintf("  %s\n", Dim(fmt.Sprintf("        ~ %d min break", min))))
		}
	}

	if d.Summary != "" {
		out.WriteString(Dim("  "+d.Summary) + "\n")
	}
	if d.Explanation != "" {
		out.WriteString(Dim("  "+d.Explanation) + "\n")
	}
	return out.String()
}

// FormatRedirect renders the single-day redirect outcome.
func FormatRedirect() string {
	return StyleYellow.Render("This looks like a single-day request.") + "\n" +
		"The multi-day planner schedules several days at once. For one day, log your\n" +
		"blocks directly and check " + Bold("ritmo insights") + " for your best focus windows.\n"
}

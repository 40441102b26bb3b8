package planning

import (
	"github.com/dmolina/ritmo/internal/analysis"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// feelingScale is the top of the feeling range used to normalize
// feeling-weighted slot scores into [0,1].
const feelingScale = 5.0

// dayWindow is a named stretch of the day used to place work.
type dayWindow struct {
	name      string
	startSlot int // inclusive
	endSlot   int // exclusive
	start     string
	end       string
}

func slotAtHour(h int) int { return h * 60 / analysis.SlotWidthMin }

// dayWindows is the fixed set of schedulable windows, in chronological
// order.
var dayWindows = []dayWindow{
	{name: "morning", startSlot: slotAtHour(8), endSlot: slotAtHour(12), start: "08:00", end: "12:00"},
	{name: "afternoon", startSlot: slotAtHour(14), endSlot: slotAtHour(18), start: "14:00", end: "18:00"},
	{name: "evening", startSlot: slotAtHour(18), endSlot: slotAtHour(22), start: "18:00", end: "22:00"},
}

func windowByName(name string) (dayWindow, bool) {
	for _, w := range dayWindows {
		if w.name == name {
			return w, true
		}
	}
	return dayWindow{}, false
}

func (w dayWindow) lengthMin() int {
	return (w.endSlot - w.startSlot) * analysis.SlotWidthMin
}

// ScoreWindows converts historical slot evidence into one comparable score
// per named window. Duration rewards where time actually went, feeling
// rewards where it felt best, and recency tilts toward the recent pattern
// window so plans track the current rhythm rather than stale history.
// Either pattern result may be nil.
func ScoreWindows(patterns, recent *contract.PatternResult, w Weights) map[string]float64 {
	type agg struct {
		minutes       int
		score         float64
		recentMinutes int
	}
	aggs := make(map[string]*agg, len(dayWindows))
	for _, win := range dayWindows {
		aggs[win.name] = &agg{}
	}
	collect := func(p *contract.PatternResult, recentPass bool) {
		if p == nil {
			return
		}
		for _, s := range p.SlotScores {
			for _, win := range dayWindows {
				if s.Slot >= win.startSlot && s.Slot < win.endSlot {
					a := aggs[win.name]
					if recentPass {
						a.recentMinutes += s.Minutes
					} else {
						a.minutes += s.Minutes
						a.score += s.Score
					}
				}
			}
		}
	}
	collect(patterns, false)
	collect(recent, true)

	maxMinutes, maxRecent := 0, 0
	for _, a := range aggs {
		if a.minutes > maxMinutes {
			maxMinutes = a.minutes
		}
		if a.recentMinutes > maxRecent {
			maxRecent = a.recentMinutes
		}
	}

	out := make(map[string]float64, len(dayWindows))
	for name, a := range aggs {
		v := 0.0
		if maxMinutes > 0 {
			v += w.Duration * float64(a.minutes) / float64(maxMinutes)
		}
		if a.minutes > 0 {
			v += w.Feeling * (a.score / float64(a.minutes)) / feelingScale
		}
		if maxRecent > 0 {
			v += w.Recency * float64(a.recentMinutes) / float64(maxRecent)
		}
		out[name] = v
	}
	return out
}

// BestWindow picks the highest-scoring window, breaking ties by
// chronological window order so equal evidence yields a stable choice.
func BestWindow(scores map[string]float64) string {
	best := dayWindows[0].name
	for _, win := range dayWindows[1:] {
		if scores[win.name] > scores[best] {
			best = win.name
		}
	}
	return best
}

// HeavyWorkWindow resolves where demanding work should land. An explicit
// preference always wins over historical evidence; history only fills the
// unknowns.
func HeavyWorkWindow(prefs domain.IntentPreferences, scores map[string]float64) string {
	if _, ok := windowByName(prefs.HeavyTasksTime); ok {
		return prefs.HeavyTasksTime
	}
	if _, ok := windowByName(prefs.EnergyPattern); ok {
		return prefs.EnergyPattern
	}
	return BestWindow(scores)
}

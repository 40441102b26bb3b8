package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// SynthesisInput carries everything the synthesizer needs. It never loads
// data itself; the caller supplies intent, history and the transparency
// records accumulated during the session.
type SynthesisInput struct {
	Intent          domain.PlanIntent
	StartDate       time.Time
	Patterns        *contract.PatternResult
	RecentPatterns  *contract.PatternResult
	ExcludeWeekends bool
	Assumptions     []domain.Assumption
	RuleDecisions   []string
}

// session is one schedulable chunk of a task on a specific day.
type session struct {
	title    string
	typ      string
	minutes  int
	heavy    bool
	priority int
	dayIndex int
}

// Synthesize turns resolved intent plus historical patterns into a
// multi-day plan. Synthesis is best effort: work that cannot fit the daily
// capacity is dropped with a warning rather than failing the session.
func Synthesize(in SynthesisInput, cfg Config) domain.MultiDayPlan {
	days := in.Intent.ResolvedDays(cfg.DefaultHorizonDays)
	if in.Intent.Horizon == domain.HorizonSingleDay {
		days = 1
	}
	dates := planDates(in.StartDate, days, in.ExcludeWeekends)

	scores := ScoreWindows(in.Patterns, in.RecentPatterns, cfg.Weights)
	heavyWindow := HeavyWorkWindow(in.Intent.Preferences, scores)

	plan := domain.MultiDayPlan{
		Assumptions: append([]domain.Assumption(nil), in.Assumptions...),
	}

	sessions := expandTasks(in.Intent, len(dates), cfg)

	for i, date := range dates {
		sched := newDayScheduler(cfg, heavyWindow)
		for _, s := range sessions {
			if s.dayIndex != i {
				continue
			}
			placed := sched.place(s)
			if placed < s.minutes {
				plan.Warnings = append(plan.Warnings, fmt.Sprintf(
					"%s: %d min of %q did not fit the day's capacity", date.Format("2006-01-02"), s.minutes-placed, s.title))
			}
		}
		day := sched.finish(heavyWindow)
		plan.Days = append(plan.Days, domain.PlanDay{DayIndex: i, Date: date, Plan: day})
	}
	return plan
}

// planDates walks forward from start collecting the dates to plan,
// skipping Saturday and Sunday when weekends are excluded.
func planDates(start time.Time, days int, excludeWeekends bool) []time.Time {
	if days < 1 {
		days = 1
	}
	var dates []time.Time
	d := start
	for len(dates) < days {
		if excludeWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			d = d.AddDate(0, 0, 1)
			continue
		}
		dates = append(dates, d)
		d = d.AddDate(0, 0, 1)
	}
	return dates
}

// heavyTaskTypes mark task kinds that belong in the peak-energy window
// regardless of their length.
var heavyTaskTypes = map[string]bool{
	"study":     true,
	"deep_work": true,
	"reading":   true,
}

// expandTasks turns intent tasks into per-day sessions. Recurring tasks
// (explicit daily frequency, training spacing) repeat across days; one-off
// work is chunked and spread per the distribution preference.
func expandTasks(intent domain.PlanIntent, days int, cfg Config) []session {
	var sessions []session

	for i, task := range intent.Tasks {
		est := task.EstimatedMin
		if est <= 0 {
			est = 60
		}
		base := session{
			title:    task.Title,
			typ:      task.Type,
			heavy:    heavyTaskTypes[task.Type] || est >= cfg.HeavyTaskMin,
			priority: i + 1,
		}
		switch {
		case task.Type == "training":
			for _, day := range trainingDays(intent.Preferences.TrainingSpacing, days) {
				s := base
				s.minutes = est
				s.dayIndex = day
				sessions = append(sessions, s)
			}
		case task.Frequency == "daily":
			for day := 0; day < days; day++ {
				s := base
				s.minutes = est
				s.dayIndex = day
				sessions = append(sessions, s)
			}
		default:
			chunks := chunkMinutes(est, cfg.ContinuousWorkMaxMin)
			for ci, minutes := range chunks {
				s := base
				s.minutes = minutes
				s.dayIndex = chunkDay(ci, len(chunks), days, intent.Preferences.TaskDistribution)
				sessions = append(sessions, s)
			}
		}
	}

	// Stable order inside each day: priority, then declaration order.
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].dayIndex != sessions[j].dayIndex {
			return sessions[i].dayIndex < sessions[j].dayIndex
		}
		return sessions[i].priority < sessions[j].priority
	})
	return sessions
}

// trainingDays picks which day indexes get a training session for the
// given spacing preference.
func trainingDays(spacing string, days int) []int {
	step := 2
	switch spacing {
	case "daily":
		step = 1
	case "spaced":
		step = 3
	}
	var out []int
	for d := 0; d < days; d += step {
		out = append(out, d)
	}
	return out
}

// chunkMinutes splits a total into work chunks no longer than the
// continuous-work limit.
func chunkMinutes(total, limit int) []int {
	if limit <= 0 || total <= limit {
		return []int{total}
	}
	var out []int
	for total > 0 {
		c := limit
		if total < c {
			c = total
		}
		out = append(out, c)
		total -= c
	}
	return out
}

// chunkDay maps the i-th chunk of a task to a day index per the
// distribution preference. Even spreads round-robin; front_loaded and
// deadline_driven pack early days first.
func chunkDay(i, chunks, days int, distribution string) int {
	if days <= 1 {
		return 0
	}
	switch distribution {
	case "front_loaded", "deadline_driven":
		perDay := (chunks + days - 1) / days
		if perDay < 1 {
			perDay = 1
		}
		day := i / perDay
		if day >= days {
			day = days - 1
		}
		return day
	default:
		return i % days
	}
}

// dayScheduler packs sessions into one day's windows, tracking capacity
// and inserting breaks when a continuous stretch runs too long.
type dayScheduler struct {
	cfg         Config
	heavyWindow string
	cursor      map[string]int // minutes consumed from window start
	run         map[string]int // continuous work since last break
	capacity    int

	blocks      []domain.PlanBlock
	assignments []domain.TaskAssignment
	breaks      []domain.BreakSlot
}

func newDayScheduler(cfg Config, heavyWindow string) *dayScheduler {
	return &dayScheduler{
		cfg:         cfg,
		heavyWindow: heavyWindow,
		cursor:      make(map[string]int, len(dayWindows)),
		run:         make(map[string]int, len(dayWindows)),
		capacity:    cfg.DayCapacityMin,
	}
}

// candidateWindows orders windows for a session: heavy work tries the
// peak window first, light work tries everything else first so the peak
// window stays free for demanding sessions.
func (ds *dayScheduler) candidateWindows(heavy bool) []dayWindow {
	peak, _ := windowByName(ds.heavyWindow)
	var rest []dayWindow
	for _, w := range dayWindows {
		if w.name != peak.name {
			rest = append(rest, w)
		}
	}
	if heavy {
		return append([]dayWindow{peak}, rest...)
	}
	return append(rest, peak)
}

// place fits as much of the session as capacity and windows allow,
// returning the minutes actually scheduled.
func (ds *dayScheduler) place(s session) int {
	remaining := s.minutes
	if remaining > ds.capacity {
		remaining = ds.capacity
	}
	placed := 0
	for _, win := range ds.candidateWindows(s.heavy) {
		if remaining == 0 {
			break
		}
		placed += ds.placeInWindow(s, win, &remaining)
	}
	return placed
}

func (ds *dayScheduler) placeInWindow(s session, win dayWindow, remaining *int) int {
	avail := win.lengthMin() - ds.cursor[win.name]
	if avail <= 0 {
		return 0
	}
	// A break comes first when the window's continuous stretch would
	// otherwise exceed the cap.
	if ds.run[win.name] > 0 && ds.run[win.name]+*remaining > ds.cfg.ContinuousWorkMaxMin {
		if avail > ds.cfg.BreakMin {
			ds.breaks = append(ds.breaks, domain.BreakSlot{
				After:   windowClock(win, ds.cursor[win.name]),
				Minutes: ds.cfg.BreakMin,
			})
			ds.cursor[win.name] += ds.cfg.BreakMin
			ds.run[win.name] = 0
			avail -= ds.cfg.BreakMin
		}
	}
	use := *remaining
	if use > avail {
		use = avail
	}
	if use <= 0 {
		return 0
	}

	blockType := domain.BlockLigero
	if s.heavy {
		blockType = domain.BlockProfundo
	}
	start := windowClock(win, ds.cursor[win.name])
	end := windowClock(win, ds.cursor[win.name]+use)
	ds.blocks = append(ds.blocks, domain.PlanBlock{
		Start:   start,
		End:     end,
		Type:    blockType,
		Label:   s.title,
		Minutes: use,
	})
	ds.assignments = append(ds.assignments, domain.TaskAssignment{
		TaskTitle:  s.title,
		BlockIndex: len(ds.blocks) - 1,
		Priority:   s.priority,
		Minutes:    use,
	})
	ds.cursor[win.name] += use
	ds.run[win.name] += use
	ds.capacity -= use
	*remaining -= use
	return use
}

// finish sorts the day chronologically, remapping assignment indexes, and
// fills in the narrative fields.
func (ds *dayScheduler) finish(heavyWindow string) domain.SingleDayPlan {
	order := make([]int, len(ds.blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ds.blocks[order[a]].Start < ds.blocks[order[b]].Start
	})
	remap := make(map[int]int, len(order))
	blocks := make([]domain.PlanBlock, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
		blocks[newIdx] = ds.blocks[oldIdx]
	}
	assignments := append([]domain.TaskAssignment(nil), ds.assignments...)
	for i := range assignments {
		assignments[i].BlockIndex = remap[assignments[i].BlockIndex]
	}
	sort.SliceStable(ds.breaks, func(a, b int) bool {
		return ds.breaks[a].After < ds.breaks[b].After
	})

	total := 0
	for _, b := range blocks {
		total += b.Minutes
	}
	plan := domain.SingleDayPlan{
		Blocks:      blocks,
		Assignments: assignments,
		Breaks:      ds.breaks,
		Summary:     fmt.Sprintf("%d blocks, %d min scheduled", len(blocks), total),
	}
	if len(blocks) > 0 {
		plan.Explanation = fmt.Sprintf("demanding work placed in the %s window", heavyWindow)
	}
	return plan
}

// windowClock renders the clock time at an offset into a window.
func windowClock(win dayWindow, offsetMin int) string {
	var h, m int
	fmt.Sscanf(win.start, "%d:%d", &h, &m)
	totalMin := h*60 + m + offsetMin
	return fmt.Sprintf("%02d:%02d", totalMin/60, totalMin%60)
}

package domain

import "time"

// PlanBlock is a scheduled interval inside a synthesized day plan.
type PlanBlock struct {
	Start   string // HH:MM
	End     string // HH:MM
	Type    BlockType
	Label   string
	Minutes int
}

// TaskAssignment places an intent task into a plan block.
type TaskAssignment struct {
	TaskTitle  string
	BlockIndex int
	Priority   int
	Minutes    int
}

// BreakSlot is a scheduled rest inserted between work blocks.
type BreakSlot struct {
	After   string // HH:MM
	Minutes int
}

// SingleDayPlan is the synthesized schedule for one day.
type SingleDayPlan struct {
	Blocks          []PlanBlock
	Assignments     []TaskAssignment
	Breaks          []BreakSlot
	Recommendations []string
	Explanation     string
	Summary         string
}

// PlanDay pairs a day plan with its position in the horizon.
type PlanDay struct {
	DayIndex int
	Date     time.Time
	Plan     SingleDayPlan
}

// MultiDayPlan is the final output of plan synthesis.
type MultiDayPlan struct {
	Days        []PlanDay
	Assumptions []Assumption
	Warnings    []string
}

// TotalScheduledMinutes sums assigned task minutes across all days.
func (p MultiDayPlan) TotalScheduledMinutes() int {
	total := 0
	for _, d := range p.Days {
		for _, a := range d.Plan.Assignments {
			total += a.Minutes
		}
	}
	return total
}

// Clone returns a deep copy of the plan.
func (p MultiDayPlan) Clone() MultiDayPlan {
	out := p
	out.Assumptions = append([]Assumption(nil), p.Assumptions...)
	out.Warnings = append([]string(nil), p.Warnings...)
	out.Days = make([]PlanDay, len(p.Days))
	for i, d := range p.Days {
		nd := d
		nd.Plan.Blocks = append([]PlanBlock(nil), d.Plan.Blocks...)
		nd.Plan.Assignments = append([]TaskAssignment(nil), d.Plan.Assignments...)
		nd.Plan.Breaks = append([]BreakSlot(nil), d.Plan.Breaks...)
		nd.Plan.Recommendations = append([]string(nil), d.Plan.Recommendations...)
		out.Days[i] = nd
	}
	return out
}

package domain

import "time"

// RangeBounds is an inclusive [From, To] timestamp range.
type RangeBounds struct {
	From time.Time
	To   time.Time
}

// NormalizeRange enforces From <= To by swapping inverted operands.
// An inverted range is not an error.
func NormalizeRange(r RangeBounds) RangeBounds {
	if r.From.After(r.To) {
		return RangeBounds{From: r.To, To: r.From}
	}
	return r
}

// Contains reports whether t falls inside the inclusive range.
func (r RangeBounds) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Days returns the number of calendar days the range spans, minimum 1.
func (r RangeBounds) Days() int {
	days := int(r.To.Sub(r.From).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

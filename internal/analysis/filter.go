package analysis

import (
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// FilterRecords restricts a record bundle to the inclusive range. Filtering
// is list membership only: no entity is clipped to the boundary. The range is
// normalized first, so filtering is safe on inverted input and idempotent.
func FilterRecords(bundle contract.RecordBundle, r domain.RangeBounds) contract.RecordBundle {
	r = domain.NormalizeRange(r)

	out := contract.RecordBundle{}

	// A block matches if either endpoint falls in range, which captures
	// blocks straddling a boundary.
	for _, b := range bundle.Blocks {
		if r.Contains(b.Start) || r.Contains(b.End) {
			out.Blocks = append(out.Blocks, b)
		}
	}

	// A task matches on any one of creation, due, or completion date.
	for _, t := range bundle.Tasks {
		if r.Contains(t.CreatedAt) ||
			(t.DueDate != nil && r.Contains(*t.DueDate)) ||
			(t.CompletedAt != nil && r.Contains(*t.CompletedAt)) {
			out.Tasks = append(out.Tasks, t)
		}
	}

	// Check-ins match by calendar date parsed at local midnight. Unparseable
	// dates are dropped rather than surfaced as errors.
	for _, c := range bundle.CheckIns {
		day, err := c.Day()
		if err != nil {
			continue
		}
		if r.Contains(day) {
			out.CheckIns = append(out.CheckIns, c)
		}
	}

	for _, fb := range bundle.Feedback {
		if r.Contains(fb.CompletedAt) {
			out.Feedback = append(out.Feedback, fb)
		}
	}

	return out
}

package analysis

import (
	"fmt"
	"time"
)

// SlotWidthMin is the fixed width of a time-of-day bucket.
const SlotWidthMin = 30

// SlotsPerDay is the number of slot buckets in one day.
const SlotsPerDay = 24 * 60 / SlotWidthMin

// SlotOf returns the slot index for a timestamp's time of day.
func SlotOf(t time.Time) int {
	return (t.Hour()*60 + t.Minute()) / SlotWidthMin
}

// SlotLabel renders a slot index as its starting clock time, e.g. "09:00".
func SlotLabel(slot int) string {
	minutes := slot * SlotWidthMin
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

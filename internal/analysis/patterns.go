package analysis

import (
	"sort"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// NeutralWeight is the feeling weight applied to blocks without any linked
// feedback: they still contribute duration, just no feeling signal.
const NeutralWeight = float64(domain.FeelingNeutral)

type bucketAgg struct {
	sum     float64
	count   int
	minutes int
}

func (a *bucketAgg) add(score float64, minutes int) {
	a.sum += score
	a.count++
	a.minutes += minutes
}

func (a bucketAgg) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// AnalyzePatterns computes per-slot and per-weekday aggregate scores plus a
// category breakdown over the filtered window. Each block contributes its
// resolved duration weighted by the mean feeling of its linked feedback
// (neutral when none); buckets aggregate by arithmetic mean. Ordering is
// deterministic: ties resolve to the earliest slot and lowest weekday index.
func AnalyzePatterns(blocks []domain.Block, idx domain.FeedbackIndex) contract.PatternResult {
	type slotKey struct {
		weekday time.Weekday
		slot    int
	}

	slotBuckets := make(map[slotKey]*bucketAgg)
	dayBuckets := make(map[time.Weekday]*bucketAgg)
	catBuckets := make(map[string]*bucketAgg)

	for _, b := range blocks {
		minutes := b.DurationMinutes()
		weight := feelingWeight(idx.ForBlock(b.ID))
		score := float64(minutes) * weight

		sk := slotKey{weekday: b.Start.Weekday(), slot: SlotOf(b.Start)}
		if slotBuckets[sk] == nil {
			slotBuckets[sk] = &bucketAgg{}
		}
		slotBuckets[sk].add(score, minutes)

		if dayBuckets[sk.weekday] == nil {
			dayBuckets[sk.weekday] = &bucketAgg{}
		}
		dayBuckets[sk.weekday].add(score, minutes)

		if b.Category != "" {
			if catBuckets[b.Category] == nil {
				catBuckets[b.Category] = &bucketAgg{}
			}
			catBuckets[b.Category].add(score, minutes)
		}
	}

	result := contract.PatternResult{}

	for key, agg := range slotBuckets {
		result.SlotScores = append(result.SlotScores, contract.SlotScore{
			Weekday: key.weekday,
			Slot:    key.slot,
			Score:   agg.mean(),
			Minutes: agg.minutes,
		})
	}
	sort.Slice(result.SlotScores, func(i, j int) bool {
		a, b := result.SlotScores[i], result.SlotScores[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.Weekday < b.Weekday
	})
	if len(result.SlotScores) > 0 {
		best := result.SlotScores[0]
		result.BestFocusSlot = &best
	}

	for weekday, agg := range dayBuckets {
		result.DayScores = append(result.DayScores, contract.DayScore{
			Weekday: weekday,
			Score:   agg.mean(),
			Minutes: agg.minutes,
		})
	}
	sort.Slice(result.DayScores, func(i, j int) bool {
		a, b := result.DayScores[i], result.DayScores[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Weekday < b.Weekday
	})
	if len(result.DayScores) > 0 {
		best := result.DayScores[0]
		result.StrongestDay = &best
	}

	for category, agg := range catBuckets {
		stat := contract.CategoryStat{
			Category:   category,
			Minutes:    agg.minutes,
			BlockCount: agg.count,
		}
		result.Categories = append(result.Categories, stat)
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		a, b := result.Categories[i], result.Categories[j]
		if a.Minutes != b.Minutes {
			return a.Minutes > b.Minutes
		}
		return a.Category < b.Category
	})
	attachCategoryFeelings(result.Categories, blocks, idx)

	return result
}

// feelingWeight averages the feeling ordinals of the linked feedback, or
// returns the neutral weight when none exists.
func feelingWeight(feedback []domain.CompletionFeedback) float64 {
	if len(feedback) == 0 {
		return NeutralWeight
	}
	sum := 0.0
	for _, fb := range feedback {
		sum += float64(fb.Feeling)
	}
	return sum / float64(len(feedback))
}

func attachCategoryFeelings(stats []contract.CategoryStat, blocks []domain.Block, idx domain.FeedbackIndex) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, b := range blocks {
		for _, fb := range idx.ForBlock(b.ID) {
			sums[b.Category] += float64(fb.Feeling)
			counts[b.Category]++
		}
	}
	for i := range stats {
		if n := counts[stats[i].Category]; n > 0 {
			avg := sums[stats[i].Category] / float64(n)
			stats[i].AvgFeeling = &avg
		}
	}
}

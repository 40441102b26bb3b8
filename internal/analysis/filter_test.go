package analysis

import (
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func janRange() domain.RangeBounds {
	return domain.RangeBounds{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestFilterRecords_BlockStraddlingBoundary(t *testing.T) {
	r := janRange()

	inside := domain.Block{
		ID:    "in",
		Start: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
	}
	// Starts before the window but ends inside it.
	straddling := domain.Block{
		ID:    "straddle",
		Start: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
	}
	outside := domain.Block{
		ID:    "out",
		Start: time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC),
	}

	got := FilterRecords(contract.RecordBundle{Blocks: []domain.Block{inside, straddling, outside}}, r)

	assert.Len(t, got.Blocks, 2)
	assert.Equal(t, "in", got.Blocks[0].ID)
	assert.Equal(t, "straddle", got.Blocks[1].ID)
}

func TestFilterRecords_TaskMatchesAnyDate(t *testing.T) {
	r := janRange()
	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	done := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{ID: "by-created", CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "by-due", CreatedAt: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), DueDate: &due},
		{ID: "by-completed", CreatedAt: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), CompletedAt: &done},
		{ID: "no-match", CreatedAt: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterRecords(contract.RecordBundle{Tasks: tasks}, r)

	assert.Len(t, got.Tasks, 3)
	for _, task := range got.Tasks {
		assert.NotEqual(t, "no-match", task.ID)
	}
}

func TestFilterRecords_CheckInsAndFeedback(t *testing.T) {
	r := domain.RangeBounds{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local),
	}

	bundle := contract.RecordBundle{
		CheckIns: []domain.CheckIn{
			{Date: "2024-01-10", Mood: 4},
			{Date: "2024-02-10", Mood: 2},
			{Date: "not-a-date"},
		},
		Feedback: []domain.CompletionFeedback{
			{ID: "f1", CompletedAt: time.Date(2024, 1, 5, 12, 0, 0, 0, time.Local)},
			{ID: "f2", CompletedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)},
		},
	}

	got := FilterRecords(bundle, r)

	assert.Len(t, got.CheckIns, 1)
	assert.Equal(t, "2024-01-10", got.CheckIns[0].Date)
	assert.Len(t, got.Feedback, 1)
	assert.Equal(t, "f1", got.Feedback[0].ID)
}

func TestFilterRecords_Idempotent(t *testing.T) {
	r := janRange()
	bundle := contract.RecordBundle{
		Blocks: []domain.Block{
			{ID: "b1", Start: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
			{ID: "b2", Start: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), End: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)},
		},
	}

	once := FilterRecords(bundle, r)
	twice := FilterRecords(once, r)

	assert.Equal(t, once, twice)
}

func TestFilterRecords_InvertedRangeIsNormalized(t *testing.T) {
	r := janRange()
	inverted := domain.RangeBounds{From: r.To, To: r.From}
	bundle := contract.RecordBundle{
		Blocks: []domain.Block{
			{ID: "b1", Start: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
		},
	}

	assert.Equal(t, FilterRecords(bundle, r), FilterRecords(bundle, inverted))
}

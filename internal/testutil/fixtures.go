package testutil

import (
	"time"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/google/uuid"
)

// Block options
type BlockOption func(*domain.Block)

func WithCategory(c string) BlockOption {
	return func(b *domain.Block) {
		b.Category = c
	}
}

func WithBlockType(t domain.BlockType) BlockOption {
	return func(b *domain.Block) {
		b.Type = t
	}
}

func WithActualMin(m int) BlockOption {
	return func(b *domain.Block) {
		b.ActualMin = &m
	}
}

func WithInterrupted() BlockOption {
	return func(b *domain.Block) {
		b.Interrupted = true
	}
}

func WithCompleted() BlockOption {
	return func(b *domain.Block) {
		b.Completed = true
	}
}

// NewTestBlock creates a block starting at the given time with the given
// planned length in minutes.
func NewTestBlock(start time.Time, plannedMin int, opts ...BlockOption) *domain.Block {
	b := &domain.Block{
		ID:         uuid.New().String(),
		Start:      start,
		End:        start.Add(time.Duration(plannedMin) * time.Minute),
		Category:   "deep_work",
		Type:       domain.BlockProfundo,
		PlannedMin: plannedMin,
		Completed:  true,
		CreatedAt:  start,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithCompletedAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CompletedAt = &d
	}
}

func WithCreatedAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  "study",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Feedback options
type FeedbackOption func(*domain.CompletionFeedback)

func WithFeedbackTask(taskID string) FeedbackOption {
	return func(f *domain.CompletionFeedback) {
		f.TaskID = taskID
	}
}

func WithFeedbackNote(n string) FeedbackOption {
	return func(f *domain.CompletionFeedback) {
		f.Note = n
	}
}

func WithCompletedAtTime(t time.Time) FeedbackOption {
	return func(f *domain.CompletionFeedback) {
		f.CompletedAt = t
	}
}

// NewTestFeedback creates feedback linked to a block.
func NewTestFeedback(blockID string, feeling domain.Feeling, opts ...FeedbackOption) *domain.CompletionFeedback {
	f := &domain.CompletionFeedback{
		ID:          uuid.New().String(),
		BlockID:     blockID,
		Feeling:     feeling,
		CompletedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTestCheckIn creates a daily check-in for the given calendar date.
func NewTestCheckIn(date string, mood, energy, stress int) *domain.CheckIn {
	return &domain.CheckIn{Date: date, Mood: mood, Energy: energy, Stress: stress}
}

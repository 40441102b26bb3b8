package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type BlockRepo interface {
	Create(ctx context.Context, b *domain.Block) error
	GetByID(ctx context.Context, id string) (*domain.Block, error)
	// ListRange returns blocks whose start or end falls inside [start, end].
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.Block, error)
	Update(ctx context.Context, b *domain.Block) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type CheckInRepo interface {
	// Upsert replaces the check-in for its calendar date.
	Upsert(ctx context.Context, c *domain.CheckIn) error
	GetByDate(ctx context.Context, date string) (*domain.CheckIn, error)
	// ListRange returns check-ins with date in [startDate, endDate],
	// both YYYY-MM-DD.
	ListRange(ctx context.Context, startDate, endDate string) ([]*domain.CheckIn, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.CompletionFeedback) error
	ListByBlock(ctx context.Context, blockID string) ([]*domain.CompletionFeedback, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.CompletionFeedback, error)
	ListRange(ctx context.Context, start, end time.Time) ([]*domain.CompletionFeedback, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

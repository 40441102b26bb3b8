package service

import (
	"context"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
)

// RecordService captures the raw behavioral record: blocks, tasks, daily
// check-ins and completion feedback.
type RecordService interface {
	LogBlock(ctx context.Context, b *domain.Block) error
	// CompleteBlock marks the block done with its actual minutes and,
	// when feedback is non-nil, stores the feedback atomically with it.
	CompleteBlock(ctx context.Context, blockID string, actualMin int, interrupted bool, feedback *domain.CompletionFeedback) error
	CreateTask(ctx context.Context, t *domain.Task) error
	CompleteTask(ctx context.Context, taskID string, feedback *domain.CompletionFeedback) error
	CheckIn(ctx context.Context, c *domain.CheckIn) error
	Records(ctx context.Context, r domain.RangeBounds) (*contract.RecordBundle, error)
	Settings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, s *domain.Settings) error
}

// InsightService derives behavioral patterns and recommendations from the
// record over a time window.
type InsightService interface {
	BuildInsights(ctx context.Context, req contract.InsightRequest) (*contract.InsightBundle, error)
}

// PlanningService runs interactive planning sessions.
type PlanningService interface {
	CreateSession(ctx context.Context, req contract.CreateSessionRequest) (*contract.CreateSessionResponse, error)
	Step(ctx context.Context, in contract.StepInput) (contract.StepResult, error)
	GetSession(ctx context.Context, id string) (*domain.PlanningSession, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/db"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/repository"
	"github.com/google/uuid"
)

type recordService struct {
	blocks   repository.BlockRepo
	tasks    repository.TaskRepo
	checkins repository.CheckInRepo
	feedback repository.FeedbackRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewRecordService wires the record capture service. The unit of work is
// used where a completion and its feedback must land atomically.
func NewRecordService(
	blocks repository.BlockRepo,
	tasks repository.TaskRepo,
	checkins repository.CheckInRepo,
	feedback repository.FeedbackRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RecordService {
	return &recordService{
		blocks:   blocks,
		tasks:    tasks,
		checkins: checkins,
		feedback: feedback,
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *recordService) observe(ctx context.Context, name string, fields map[string]any, fn func() error) error {
	start := time.Now()
	err := fn()
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return err
}

func (s *recordService) LogBlock(ctx context.Context, b *domain.Block) error {
	return s.observe(ctx, "log_block", map[string]any{"category": b.Category}, func() error {
		if b.End.Before(b.Start) {
			return &contract.ValidationError{Field: "end", Message: "block ends before it starts"}
		}
		if b.Type != domain.BlockProfundo && b.Type != domain.BlockLigero {
			return &contract.ValidationError{Field: "type", Message: "unknown block type " + string(b.Type)}
		}
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = s.now().UTC()
		}
		if b.PlannedMin == 0 {
			b.PlannedMin = int(b.End.Sub(b.Start).Minutes())
		}
		return s.blocks.Create(ctx, b)
	})
}

func (s *recordService) CompleteBlock(ctx context.Context, blockID string, actualMin int, interrupted bool, feedback *domain.CompletionFeedback) error {
	return s.observe(ctx, "complete_block", map[string]any{"block_id": blockID}, func() error {
		if feedback != nil && !feedback.Feeling.Valid() {
			return &contract.ValidationError{Field: "feeling", Message: "feeling must be between 1 and 5"}
		}
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			blocks := repository.NewSQLiteBlockRepo(tx)
			b, err := blocks.GetByID(ctx, blockID)
			if err != nil {
				return err
			}
			b.ActualMin = &actualMin
			b.Interrupted = interrupted
			b.Completed = true
			if err := blocks.Update(ctx, b); err != nil {
				return err
			}
			if feedback == nil {
				return nil
			}
			feedback.BlockID = blockID
			if feedback.ID == "" {
				feedback.ID = uuid.New().String()
			}
			if feedback.CompletedAt.IsZero() {
				feedback.CompletedAt = s.now().UTC()
			}
			return repository.NewSQLiteFeedbackRepo(tx).Create(ctx, feedback)
		})
	})
}

func (s *recordService) CreateTask(ctx context.Context, t *domain.Task) error {
	return s.observe(ctx, "create_task", map[string]any{"category": t.Category}, func() error {
		if t.Title == "" {
			return &contract.ValidationError{Field: "title", Message: "task title is empty"}
		}
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = s.now().UTC()
		}
		return s.tasks.Create(ctx, t)
	})
}

func (s *recordService) CompleteTask(ctx context.Context, taskID string, feedback *domain.CompletionFeedback) error {
	return s.observe(ctx, "complete_task", map[string]any{"task_id": taskID}, func() error {
		if feedback != nil && !feedback.Feeling.Valid() {
			return &contract.ValidationError{Field: "feeling", Message: "feeling must be between 1 and 5"}
		}
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			tasks := repository.NewSQLiteTaskRepo(tx)
			t, err := tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			completed := s.now().UTC()
			t.CompletedAt = &completed
			if err := tasks.Update(ctx, t); err != nil {
				return err
			}
			if feedback == nil {
				return nil
			}
			feedback.TaskID = taskID
			if feedback.ID == "" {
				feedback.ID = uuid.New().String()
			}
			if feedback.CompletedAt.IsZero() {
				feedback.CompletedAt = completed
			}
			return repository.NewSQLiteFeedbackRepo(tx).Create(ctx, feedback)
		})
	})
}

func (s *recordService) CheckIn(ctx context.Context, c *domain.CheckIn) error {
	return s.observe(ctx, "check_in", map[string]any{"date": c.Date}, func() error {
		if _, err := c.Day(); err != nil {
			return &contract.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
		}
		for field, v := range map[string]int{"mood": c.Mood, "energy": c.Energy, "stress": c.Stress} {
			if v < 1 || v > 5 {
				return &contract.ValidationError{Field: field, Message: fmt.Sprintf("%s must be between 1 and 5", field)}
			}
		}
		return s.checkins.Upsert(ctx, c)
	})
}

func (s *recordService) Records(ctx context.Context, r domain.RangeBounds) (*contract.RecordBundle, error) {
	r = domain.NormalizeRange(r)

	blocks, err := s.blocks.ListRange(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("loading blocks: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	checkins, err := s.checkins.ListRange(ctx,
		r.From.Format(domain.CheckInDateLayout),
		r.To.Format(domain.CheckInDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("loading check-ins: %w", err)
	}
	feedback, err := s.feedback.ListRange(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("loading feedback: %w", err)
	}

	bundle := &contract.RecordBundle{}
	for _, b := range blocks {
		bundle.Blocks = append(bundle.Blocks, *b)
	}
	for _, t := range tasks {
		bundle.Tasks = append(bundle.Tasks, *t)
	}
	for _, c := range checkins {
		bundle.CheckIns = append(bundle.CheckIns, *c)
	}
	for _, f := range feedback {
		bundle.Feedback = append(bundle.Feedback, *f)
	}
	return bundle, nil
}

func (s *recordService) Settings(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *recordService) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	return s.observe(ctx, "update_settings", nil, func() error {
		return s.settings.Upsert(ctx, settings)
	})
}

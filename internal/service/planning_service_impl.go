package service

import (
	"context"
	"time"

	"github.com/dmolina/ritmo/internal/analysis"
	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/intelligence"
	"github.com/dmolina/ritmo/internal/planning"
	"github.com/dmolina/ritmo/internal/session"
)

// Pattern evidence windows for plan synthesis. The long window gives the
// stable picture, the short one tracks the current rhythm.
const (
	patternWindowDays = 90
	recentWindowDays  = 14
)

type planningService struct {
	machine  *session.Machine
	store    session.Store
	records  RecordService
	observer UseCaseObserver
	now      func() time.Time
}

// NewPlanningService wires the interactive planning engine. The service
// itself acts as the machine's pattern source, feeding it slot evidence
// derived from the behavioral record.
func NewPlanningService(
	store session.Store,
	extractor intelligence.IntentExtractor,
	records RecordService,
	cfg planning.Config,
	observers ...UseCaseObserver,
) PlanningService {
	s := &planningService{
		store:    store,
		records:  records,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
	s.machine = session.NewMachine(store, extractor, s, cfg)
	return s
}

// Patterns implements session.PatternSource.
func (s *planningService) Patterns(ctx context.Context) (*contract.PatternResult, *contract.PatternResult, error) {
	full, err := s.patternsOver(ctx, patternWindowDays)
	if err != nil {
		return nil, nil, err
	}
	recent, err := s.patternsOver(ctx, recentWindowDays)
	if err != nil {
		return nil, nil, err
	}
	return full, recent, nil
}

func (s *planningService) patternsOver(ctx context.Context, days int) (*contract.PatternResult, error) {
	now := s.now().UTC()
	bundle, err := s.records.Records(ctx, domain.RangeBounds{
		From: now.AddDate(0, 0, -days),
		To:   now,
	})
	if err != nil {
		return nil, err
	}
	idx := domain.BuildFeedbackIndex(bundle.Feedback)
	patterns := analysis.AnalyzePatterns(bundle.Blocks, idx)
	return &patterns, nil
}

func (s *planningService) CreateSession(ctx context.Context, req contract.CreateSessionRequest) (*contract.CreateSessionResponse, error) {
	start := time.Now()
	resp, err := s.machine.Create(ctx, req)
	outcome := ""
	if resp != nil {
		outcome = string(resp.Result.Kind)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "create_planning_session",
		Duration:  time.Since(start),
		Success:   err == nil && (resp == nil || resp.Result.Kind != contract.StepError),
		Outcome:   outcome,
		Err:       err,
		StartedAt: start,
	})
	return resp, err
}

func (s *planningService) Step(ctx context.Context, in contract.StepInput) (contract.StepResult, error) {
	start := time.Now()
	res, err := s.machine.Step(ctx, in)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "step_planning_session",
		Duration:  time.Since(start),
		Success:   err == nil && res.Kind != contract.StepError,
		Outcome:   string(res.Kind),
		Err:       err,
		Fields:    map[string]any{"session_id": in.SessionID},
		StartedAt: start,
	})
	return res, err
}

func (s *planningService) GetSession(ctx context.Context, id string) (*domain.PlanningSession, error) {
	return s.store.Get(ctx, id)
}

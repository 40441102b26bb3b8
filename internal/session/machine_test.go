package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor hands back a fixed intent, bypassing any language model.
type stubExtractor struct {
	intent domain.PlanIntent
	err    error
}

func (s stubExtractor) Extract(context.Context, string, time.Time) (*domain.PlanIntent, error) {
	if s.err != nil {
		return nil, s.err
	}
	intent := s.intent
	return &intent, nil
}

func resolvedIntent() domain.PlanIntent {
	return domain.PlanIntent{
		Horizon:     domain.HorizonMultiDay,
		HorizonDays: 3,
		Confidence:  0.9,
		Tasks: []domain.PlanIntentTask{
			{Title: "study for exam", Type: "study", EstimatedMin: 120},
		},
		Preferences: domain.IntentPreferences{
			FixedCommitments: "none",
			EnergyPattern:    "morning",
			HeavyTasksTime:   "morning",
			TrainingSpacing:  "alternating",
			TaskDistribution: "even",
		},
	}
}

func newTestMachine(intent domain.PlanIntent) (*Machine, *MemoryStore) {
	store := NewMemoryStore()
	m := NewMachine(store, stubExtractor{intent: intent}, nil, planning.DefaultConfig())
	return m, store
}

func TestCreate_NoGapsSynthesizesImmediately(t *testing.T) {
	m, store := newTestMachine(resolvedIntent())

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{
		UserInput:   "plan my next 3 days",
		ContextDate: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, contract.StepFinalPlan, resp.Result.Kind)
	require.NotNil(t, resp.Result.Plan)
	assert.Len(t, resp.Result.Plan.Days, 3)
	assert.Empty(t, resp.Result.Plan.Assumptions)

	stored, err := store.Get(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageFinal, stored.Stage)
}

func TestCreate_SingleDayRedirects(t *testing.T) {
	intent := resolvedIntent()
	intent.Horizon = domain.HorizonSingleDay
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan today"})
	require.NoError(t, err)
	assert.Equal(t, contract.StepRedirectSingleDay, resp.Result.Kind)
}

func TestCreate_EmptyInputIsValidationError(t *testing.T) {
	m, _ := newTestMachine(resolvedIntent())

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{})
	require.NoError(t, err)
	require.Equal(t, contract.StepError, resp.Result.Kind)
	assert.Equal(t, contract.ErrValidation, resp.Result.Err.Code)
}

func TestCreate_MissingDateRangeAsksFirst(t *testing.T) {
	intent := resolvedIntent()
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan the coming days"})
	require.NoError(t, err)
	require.Equal(t, contract.StepNeedQuestion, resp.Result.Kind)
	require.NotNil(t, resp.Result.Question)
	assert.Equal(t, domain.GapDateRange, resp.Result.Question.GapKey)
	assert.Equal(t, 1, resp.Result.QuestionsAsked)
	assert.Equal(t, planning.DefaultConfig().QuestionBudget, resp.Result.QuestionBudget)
}

func TestStep_AnswerResolvesGapAndFinishes(t *testing.T) {
	intent := resolvedIntent()
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan the coming days"})
	require.NoError(t, err)
	require.Equal(t, contract.StepNeedQuestion, resp.Result.Kind)

	res, err := m.Step(context.Background(), contract.StepInput{
		SessionID:          resp.SessionID,
		LastQuestionID:     resp.Result.Question.ID,
		LastAnswerOptionID: "three",
	})
	require.NoError(t, err)
	require.Equal(t, contract.StepFinalPlan, res.Kind)
	assert.Len(t, res.Plan.Days, 3)
}

func TestStep_CustomValueAnswer(t *testing.T) {
	intent := resolvedIntent()
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan the coming days"})
	require.NoError(t, err)

	res, err := m.Step(context.Background(), contract.StepInput{
		SessionID:             resp.SessionID,
		LastQuestionID:        resp.Result.Question.ID,
		LastAnswerOptionID:    "custom",
		LastAnswerCustomValue: "4",
	})
	require.NoError(t, err)
	require.Equal(t, contract.StepFinalPlan, res.Kind)
	assert.Len(t, res.Plan.Days, 4)
}

func TestStep_BudgetExhaustionAssumesDefaults(t *testing.T) {
	// Every preference unknown: horizon needs no question but five other
	// dimensions do, against a budget of three.
	intent := domain.PlanIntent{
		Horizon:     domain.HorizonMultiDay,
		HorizonDays: 7,
		Confidence:  0.9,
		Tasks: []domain.PlanIntentTask{
			{Title: "study for exam", Type: "study", EstimatedMin: 120},
			{Title: "gym", Type: "training", EstimatedMin: 60},
		},
		Preferences: domain.IntentPreferences{
			FixedCommitments: domain.PreferenceUnknown,
			EnergyPattern:    domain.PreferenceUnknown,
			HeavyTasksTime:   domain.PreferenceUnknown,
			TrainingSpacing:  domain.PreferenceUnknown,
			TaskDistribution: domain.PreferenceUnknown,
		},
	}
	m, store := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan my week"})
	require.NoError(t, err)

	result := resp.Result
	answered := 0
	for result.Kind == contract.StepNeedQuestion {
		answered++
		require.LessOrEqual(t, answered, planning.DefaultConfig().QuestionBudget)
		result, err = m.Step(context.Background(), contract.StepInput{
			SessionID:          resp.SessionID,
			LastQuestionID:     result.Question.ID,
			LastAnswerOptionID: result.Question.Options[0].ID,
		})
		require.NoError(t, err)
	}

	require.Equal(t, contract.StepFinalPlan, result.Kind)
	assert.Equal(t, planning.DefaultConfig().QuestionBudget, answered)
	// Six gaps existed; three were answered, the rest became assumptions.
	assert.Len(t, result.Plan.Assumptions, 3)

	stored, err := store.Get(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageFinal, stored.Stage)
	assert.NotEmpty(t, stored.Meta.RuleDecisions)
}

func TestStep_UnknownSessionIsNotFound(t *testing.T) {
	m, _ := newTestMachine(resolvedIntent())

	res, err := m.Step(context.Background(), contract.StepInput{SessionID: "ps-nope"})
	require.NoError(t, err)
	require.Equal(t, contract.StepError, res.Kind)
	assert.Equal(t, contract.ErrSessionNotFound, res.Err.Code)
}

func TestStep_UnknownQuestionIsValidationError(t *testing.T) {
	intent := resolvedIntent()
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan the coming days"})
	require.NoError(t, err)

	res, err := m.Step(context.Background(), contract.StepInput{
		SessionID:          resp.SessionID,
		LastQuestionID:     "q-bogus",
		LastAnswerOptionID: "three",
	})
	require.NoError(t, err)
	require.Equal(t, contract.StepError, res.Kind)
	assert.Equal(t, contract.ErrValidation, res.Err.Code)
}

func TestStep_EmptyStepReissuesPendingQuestion(t *testing.T) {
	intent := resolvedIntent()
	intent.HorizonDays = 0
	m, _ := newTestMachine(intent)

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan the coming days"})
	require.NoError(t, err)

	res, err := m.Step(context.Background(), contract.StepInput{SessionID: resp.SessionID})
	require.NoError(t, err)
	require.Equal(t, contract.StepNeedQuestion, res.Kind)
	assert.Equal(t, resp.Result.Question.ID, res.Question.ID)
	assert.Equal(t, 1, res.QuestionsAsked)
}

func TestStep_TerminalSessionIsIdempotent(t *testing.T) {
	m, _ := newTestMachine(resolvedIntent())

	resp, err := m.Create(context.Background(), contract.CreateSessionRequest{UserInput: "plan my next 3 days"})
	require.NoError(t, err)
	require.Equal(t, contract.StepFinalPlan, resp.Result.Kind)

	for i := 0; i < 2; i++ {
		res, err := m.Step(context.Background(), contract.StepInput{SessionID: resp.SessionID})
		require.NoError(t, err)
		assert.Equal(t, contract.StepFinalPlan, res.Kind)
		require.NotNil(t, res.Plan)
	}
}

func TestMemoryStore_CopiesOnGetAndPut(t *testing.T) {
	store := NewMemoryStore()
	s := domain.NewPlanningSession("plan stuff", time.Now())
	s.Gaps = []domain.PlanningGap{{Key: domain.GapDateRange, Severity: domain.SeverityHigh}}
	require.NoError(t, store.Put(context.Background(), s))

	// Mutating the original must not leak into the store.
	s.Gaps[0].Key = domain.GapDayScope

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GapDateRange, got.Gaps[0].Key)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

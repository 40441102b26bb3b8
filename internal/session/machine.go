package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmolina/ritmo/internal/contract"
	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/intelligence"
	"github.com/dmolina/ritmo/internal/planning"
)

// PatternSource supplies historical pattern evidence for plan synthesis.
// Both results may be nil when no history exists.
type PatternSource interface {
	Patterns(ctx context.Context) (full, recent *contract.PatternResult, err error)
}

// Machine drives planning sessions through intake, clarification and
// synthesis. Steps against the same session id are serialized; different
// sessions proceed concurrently.
type Machine struct {
	store     Store
	extractor intelligence.IntentExtractor
	patterns  PatternSource
	cfg       planning.Config

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

// NewMachine wires a session machine. patterns may be nil when no
// historical records are available.
func NewMachine(store Store, extractor intelligence.IntentExtractor, patterns PatternSource, cfg planning.Config) *Machine {
	return &Machine{
		store:     store,
		extractor: extractor,
		patterns:  patterns,
		cfg:       cfg,
		locks:     make(map[string]*sync.Mutex),
		now:       time.Now,
	}
}

// lockSession serializes work on one session id.
func (m *Machine) lockSession(id string) func() {
	m.locksMu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.locksMu.Unlock()
	l.Lock()
	return l.Unlock
}

func errResult(code contract.ErrorCode, msg string) contract.StepResult {
	return contract.StepResult{
		Kind: contract.StepError,
		Err:  &contract.StepFailure{Code: code, Message: msg},
	}
}

// Create starts a session from free-form input: extract intent, analyze
// gaps, and either ask the first question, redirect a single-day request,
// or synthesize immediately when nothing needs clarifying.
func (m *Machine) Create(ctx context.Context, req contract.CreateSessionRequest) (*contract.CreateSessionResponse, error) {
	if req.UserInput == "" {
		return &contract.CreateSessionResponse{
			Result: errResult(contract.ErrValidation, "user input is empty"),
		}, nil
	}
	contextDate := req.ContextDate
	if contextDate.IsZero() {
		contextDate = m.now()
	}

	s := domain.NewPlanningSession(req.UserInput, contextDate)

	intent, err := m.extractor.Extract(ctx, req.UserInput, contextDate)
	if err != nil {
		return &contract.CreateSessionResponse{
			Result: errResult(contract.ErrExtraction, err.Error()),
		}, nil
	}
	s.Intent = intent
	s.Gaps = planning.AnalyzeGaps(*intent, m.cfg)

	result, err := m.resolve(ctx, s)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = m.now().UTC()
	if err := m.store.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &contract.CreateSessionResponse{SessionID: s.ID, Result: result}, nil
}

// Step applies one interaction to an existing session. A step against a
// finished session is idempotent and re-returns the terminal outcome.
func (m *Machine) Step(ctx context.Context, in contract.StepInput) (contract.StepResult, error) {
	if in.SessionID == "" {
		return errResult(contract.ErrValidation, "session id is empty"), nil
	}
	unlock := m.lockSession(in.SessionID)
	defer unlock()

	s, err := m.store.Get(ctx, in.SessionID)
	if errors.Is(err, ErrNotFound) {
		return errResult(contract.ErrSessionNotFound, in.SessionID), nil
	}
	if err != nil {
		return contract.StepResult{}, fmt.Errorf("load session: %w", err)
	}

	if s.Stage == domain.StageFinal {
		return m.terminalResult(s), nil
	}

	if in.LastQuestionID != "" {
		if res, ok := m.applyAnswer(s, in); !ok {
			return res, nil
		}
	}

	result, err := m.resolve(ctx, s)
	if err != nil {
		return contract.StepResult{}, err
	}
	s.UpdatedAt = m.now().UTC()
	if err := m.store.Put(ctx, s); err != nil {
		return contract.StepResult{}, fmt.Errorf("store session: %w", err)
	}
	return result, nil
}

// applyAnswer validates and records one answer, folding its value into the
// intent. Returns ok=false with an error result when the answer is
// malformed; the session is left untouched in that case.
func (m *Machine) applyAnswer(s *domain.PlanningSession, in contract.StepInput) (contract.StepResult, bool) {
	q, ok := s.QuestionByID(in.LastQuestionID)
	if !ok {
		return errResult(contract.ErrValidation, "unknown question id "+in.LastQuestionID), false
	}
	var option *domain.QuestionOption
	if in.LastAnswerOptionID != "" {
		for i := range q.Options {
			if q.Options[i].ID == in.LastAnswerOptionID {
				option = &q.Options[i]
				break
			}
		}
		if option == nil {
			return errResult(contract.ErrValidation, "unknown option id "+in.LastAnswerOptionID), false
		}
	}
	if in.LastAnswerCustomValue != "" && (option == nil || !option.AllowsCustomValue) {
		return errResult(contract.ErrValidation, "custom value given for an option that does not accept one"), false
	}
	if option == nil && in.LastAnswerFreeText == "" {
		return errResult(contract.ErrValidation, "answer carries neither an option nor free text"), false
	}

	answer := domain.Answer{
		QuestionID:  q.ID,
		GapKey:      q.GapKey,
		OptionID:    in.LastAnswerOptionID,
		CustomValue: in.LastAnswerCustomValue,
		FreeText:    in.LastAnswerFreeText,
		AnsweredAt:  m.now().UTC(),
	}
	s.Answers = append(s.Answers, answer)

	value := planning.ResolveAnswerValue(q, answer)
	planning.ApplyAnswer(s.Intent, q.GapKey, value)
	s.RemoveGap(q.GapKey)

	// Answers can change the picture (an ambiguous horizon resolved to
	// multi-day may now miss a date range), so gaps are recomputed with the
	// already-settled dimensions filtered out.
	s.Gaps = m.outstandingGaps(s)
	return contract.StepResult{}, true
}

// outstandingGaps re-runs gap analysis and drops every dimension already
// settled by an answer or an assumption.
func (m *Machine) outstandingGaps(s *domain.PlanningSession) []domain.PlanningGap {
	settled := make(map[domain.GapKey]bool, len(s.Answers)+len(s.Meta.Assumptions))
	for _, a := range s.Answers {
		settled[a.GapKey] = true
	}
	for _, a := range s.Meta.Assumptions {
		settled[a.GapKey] = true
	}
	var out []domain.PlanningGap
	for _, g := range planning.AnalyzeGaps(*s.Intent, m.cfg) {
		if !settled[g.Key] {
			out = append(out, g)
		}
	}
	return out
}

// resolve decides the session's next outcome from its current state:
// redirect, another question, or synthesis.
func (m *Machine) resolve(ctx context.Context, s *domain.PlanningSession) (contract.StepResult, error) {
	if s.Intent.Horizon == domain.HorizonSingleDay && !s.HasGap(domain.GapHorizonClarity) {
		s.Meta.RuleDecisions = append(s.Meta.RuleDecisions, "single-day request redirected out of multi-day planning")
		advance(s, domain.StageFinal)
		return contract.StepResult{Kind: contract.StepRedirectSingleDay}, nil
	}

	if len(s.Gaps) > 0 {
		// A still-unanswered question is re-issued rather than burning
		// budget on a duplicate.
		if q, ok := m.pendingQuestion(s); ok {
			return contract.StepResult{
				Kind:           contract.StepNeedQuestion,
				Question:       &q,
				QuestionsAsked: len(s.Questions),
				QuestionBudget: m.cfg.QuestionBudget,
			}, nil
		}
		if len(s.Questions) < m.cfg.QuestionBudget {
			gap, _ := s.HighestSeverityGap()
			q := planning.QuestionForGap(gap)
			s.Questions = append(s.Questions, q)
			advance(s, domain.StageClarifying)
			return contract.StepResult{
				Kind:           contract.StepNeedQuestion,
				Question:       &q,
				QuestionsAsked: len(s.Questions),
				QuestionBudget: m.cfg.QuestionBudget,
			}, nil
		}
	}

	// Budget exhausted or nothing left to ask: assume defaults for every
	// remaining gap and synthesize.
	if len(s.Gaps) > 0 {
		s.Meta.RuleDecisions = append(s.Meta.RuleDecisions,
			fmt.Sprintf("question budget reached; assumed defaults for %d unresolved gaps", len(s.Gaps)))
		for _, gap := range s.Gaps {
			assumption := planning.AssumptionForGap(gap, m.cfg)
			planning.ApplyAssumption(s.Intent, assumption)
			s.Meta.Assumptions = append(s.Meta.Assumptions, assumption)
		}
		s.Gaps = nil
	}
	advance(s, domain.StagePlanning)

	var full, recent *contract.PatternResult
	if m.patterns != nil {
		var err error
		full, recent, err = m.patterns.Patterns(ctx)
		if err != nil {
			return contract.StepResult{}, fmt.Errorf("load patterns: %w", err)
		}
	}

	plan := planning.Synthesize(planning.SynthesisInput{
		Intent:          *s.Intent,
		StartDate:       s.ContextDate,
		Patterns:        full,
		RecentPatterns:  recent,
		ExcludeWeekends: m.excludeWeekends(s),
		Assumptions:     s.Meta.Assumptions,
		RuleDecisions:   s.Meta.RuleDecisions,
	}, m.cfg)
	s.Plan = &plan
	advance(s, domain.StageFinal)
	return contract.StepResult{Kind: contract.StepFinalPlan, Plan: s.Plan}, nil
}

// pendingQuestion returns the most recent question that has no answer yet
// and whose gap is still outstanding.
func (m *Machine) pendingQuestion(s *domain.PlanningSession) (domain.Question, bool) {
	if len(s.Questions) == 0 {
		return domain.Question{}, false
	}
	last := s.Questions[len(s.Questions)-1]
	for _, a := range s.Answers {
		if a.QuestionID == last.ID {
			return domain.Question{}, false
		}
	}
	if !s.HasGap(last.GapKey) {
		return domain.Question{}, false
	}
	return last, true
}

// excludeWeekends reads the day-scope decision from answers first, then
// assumptions. Short spans that never raised the question keep weekends in.
func (m *Machine) excludeWeekends(s *domain.PlanningSession) bool {
	for _, a := range s.Answers {
		if a.GapKey != domain.GapDayScope {
			continue
		}
		if q, ok := s.QuestionByID(a.QuestionID); ok {
			return planning.ResolveAnswerValue(q, a) == "exclude_weekend"
		}
	}
	for _, a := range s.Meta.Assumptions {
		if a.GapKey == domain.GapDayScope {
			return a.Value == "exclude_weekend"
		}
	}
	return false
}

// terminalResult re-renders the outcome of an already finished session.
func (m *Machine) terminalResult(s *domain.PlanningSession) contract.StepResult {
	if s.Plan != nil {
		return contract.StepResult{Kind: contract.StepFinalPlan, Plan: s.Plan}
	}
	return contract.StepResult{Kind: contract.StepRedirectSingleDay}
}

func advance(s *domain.PlanningSession, to domain.SessionStage) {
	if s.Stage.CanAdvance(to) {
		s.Stage = to
	}
}

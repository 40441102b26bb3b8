package contract

import (
	"time"

	"github.com/dmolina/ritmo/internal/domain"
)

// StepInput carries one interaction against a planning session.
type StepInput struct {
	SessionID             string
	LastQuestionID        string
	LastAnswerOptionID    string
	LastAnswerCustomValue string
	LastAnswerFreeText    string
}

// StepKind discriminates the possible step outcomes.
type StepKind string

const (
	StepNeedQuestion      StepKind = "need_question"
	StepFinalPlan         StepKind = "final_plan"
	StepRedirectSingleDay StepKind = "redirect_single_day"
	StepError             StepKind = "error"
)

// StepResult is a tagged union: exactly the fields implied by Kind are set.
type StepResult struct {
	Kind StepKind

	// need_question
	Question       *domain.Question
	QuestionsAsked int
	QuestionBudget int

	// final_plan
	Plan *domain.MultiDayPlan

	// error
	Err *StepFailure
}

// StepFailure is the tagged error payload of a failed step.
type StepFailure struct {
	Code    ErrorCode
	Message string
}

func (e *StepFailure) Error() string {
	return string(e.Code) + ": " + e.Message
}

// CreateSessionRequest starts a new planning session.
type CreateSessionRequest struct {
	UserInput   string
	ContextDate time.Time
}

// CreateSessionResponse reports the created session and its first outcome.
type CreateSessionResponse struct {
	SessionID string
	Result    StepResult
}

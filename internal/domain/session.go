package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionOption is one selectable answer for a categorical question.
type QuestionOption struct {
	ID                string
	Label             string
	Value             string
	AllowsCustomValue bool
}

// Question asks the user to resolve one planning gap.
type Question struct {
	ID      string
	GapKey  GapKey
	Prompt  string
	Options []QuestionOption
}

// Answer records the user's response to a question. GapKey is carried
// redundantly so a gap can be resolved even if its question is discarded.
type Answer struct {
	QuestionID  string
	GapKey      GapKey
	OptionID    string
	CustomValue string
	FreeText    string
	AnsweredAt  time.Time
}

// Assumption is a default substituted for an unresolved gap, recorded for
// transparency in the final plan.
type Assumption struct {
	GapKey GapKey
	Value  string
	Reason string
}

// SessionMeta accumulates transparency records over the session lifecycle.
type SessionMeta struct {
	Assumptions   []Assumption
	RuleDecisions []string
}

// PlanningSession is the unit of interactive planning state. It is owned
// exclusively by the session store; mutations are whole-object replacements.
type PlanningSession struct {
	ID          string
	Stage       SessionStage
	UserInput   string
	ContextDate time.Time
	Intent      *PlanIntent
	Gaps        []PlanningGap
	Questions   []Question
	Answers     []Answer
	Plan        *MultiDayPlan
	Meta        SessionMeta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlanningSession creates a session at intake with only the raw input and
// context date populated.
func NewPlanningSession(userInput string, contextDate time.Time) *PlanningSession {
	now := time.Now().UTC()
	return &PlanningSession{
		ID:          NewSessionID(now),
		Stage:       StageIntake,
		UserInput:   userInput,
		ContextDate: contextDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewSessionID builds an opaque time+random composite identifier.
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("ps-%s-%s", now.Format("20060102T150405"), uuid.New().String()[:8])
}

// HasGap reports whether the given gap key is still outstanding.
func (s *PlanningSession) HasGap(key GapKey) bool {
	for _, g := range s.Gaps {
		if g.Key == key {
			return true
		}
	}
	return false
}

// RemoveGap deletes the gap with the given key, preserving the order of the
// remaining gaps. Returns true if a gap was removed.
func (s *PlanningSession) RemoveGap(key GapKey) bool {
	for i, g := range s.Gaps {
		if g.Key == key {
			s.Gaps = append(s.Gaps[:i], s.Gaps[i+1:]...)
			return true
		}
	}
	return false
}

// QuestionByID looks up a previously emitted question.
func (s *PlanningSession) QuestionByID(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// HighestSeverityGap returns the outstanding gap to ask about next: highest
// severity first, fixed gap-key declaration order as the tie break.
func (s *PlanningSession) HighestSeverityGap() (PlanningGap, bool) {
	if len(s.Gaps) == 0 {
		return PlanningGap{}, false
	}
	best := s.Gaps[0]
	for _, g := range s.Gaps[1:] {
		if SeverityPriority(g.Severity) < SeverityPriority(best.Severity) ||
			(SeverityPriority(g.Severity) == SeverityPriority(best.Severity) &&
				GapKeyRank(g.Key) < GapKeyRank(best.Key)) {
			best = g
		}
	}
	return best, true
}

// Clone returns a deep copy so the state machine can compute the next state
// without exposing partial mutation to concurrent readers of the store.
func (s *PlanningSession) Clone() *PlanningSession {
	out := *s
	out.Gaps = append([]PlanningGap(nil), s.Gaps...)
	out.Questions = append([]Question(nil), s.Questions...)
	out.Answers = append([]Answer(nil), s.Answers...)
	out.Meta.Assumptions = append([]Assumption(nil), s.Meta.Assumptions...)
	out.Meta.RuleDecisions = append([]string(nil), s.Meta.RuleDecisions...)
	if s.Intent != nil {
		intent := *s.Intent
		intent.Tasks = append([]PlanIntentTask(nil), s.Intent.Tasks...)
		intent.EmotionalConstraints = append([]string(nil), s.Intent.EmotionalConstraints...)
		if s.Intent.DateRange != nil {
			dr := *s.Intent.DateRange
			intent.DateRange = &dr
		}
		out.Intent = &intent
	}
	if s.Plan != nil {
		plan := s.Plan.Clone()
		out.Plan = &plan
	}
	return &out
}

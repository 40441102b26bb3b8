package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_RendersEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "step_planning_session",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Outcome:  "final_plan",
		Fields:   map[string]any{"session_id": "s-1"},
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=step_planning_session")
	assert.Contains(t, out, "outcome=final_plan")
	assert.Contains(t, out, "session_id=s-1")
	assert.Contains(t, out, "success=true")
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "log_block",
		Success: false,
		Err:     errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=\"disk full\"")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

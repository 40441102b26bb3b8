package contract

import "fmt"

// ErrorCode classifies engine-surface failures.
type ErrorCode string

const (
	ErrValidation      ErrorCode = "VALIDATION"
	ErrSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrExtraction      ErrorCode = "EXTRACTION_FAILED"
)

// ValidationError reports malformed caller input: an unknown session id
// reference, a question id absent from the session, an invalid answer shape.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// SessionNotFoundError reports a step against a session id absent from the
// store. Terminal for that request.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return "session not found: " + e.SessionID
}

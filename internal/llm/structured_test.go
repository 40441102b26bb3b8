package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShape struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON[testShape](`{"name": "study", "confidence": 0.9}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "study", got.Name)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}

func TestExtractJSON_CodeFenceAndProse(t *testing.T) {
	raw := "Sure, here is the result:\n```json\n{\"name\": \"gym\", \"confidence\": 0.7}\n```\nLet me know if you need anything else."
	got, err := ExtractJSON[testShape](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "gym", got.Name)
}

func TestExtractJSON_CommentsAndBareDecimals(t *testing.T) {
	raw := `{
		// model-emitted comment
		"name": "review",
		"confidence": .85
	}`
	got, err := ExtractJSON[testShape](raw, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Outer map[string]any `json:"outer"`
	}
	raw := `prefix {"outer": {"a": {"b": 1}}} suffix`
	got, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Contains(t, got.Outer, "a")
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[testShape]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(s testShape) error {
		if s.Confidence > 1 {
			return fmt.Errorf("confidence out of range")
		}
		return nil
	}
	_, err := ExtractJSON[testShape](`{"name": "x", "confidence": 2.0}`, validator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

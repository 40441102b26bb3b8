package intelligence

import (
	"fmt"
	"time"
)

// buildExtractSystemPrompt instructs the model to emit a single PlanIntent
// JSON object and nothing else.
func buildExtractSystemPrompt() string {
	return `You extract structured planning intent from a user's free-form scheduling request.
Respond with a single JSON object and no other text:
{
  "horizon": "single_day" | "multi_day" | "ambiguous",
  "horizon_days": <int, 0 if unknown>,
  "date_range": {"start": "YYYY-MM-DD", "end": "YYYY-MM-DD"} or null,
  "tasks": [{"title": string, "type": string, "estimated_min": int, "frequency": string, "confidence": 0..1}],
  "preferences": {
    "fixed_commitments": "none"|"some"|"many"|"unknown",
    "energy_pattern": "morning"|"afternoon"|"evening"|"variable"|"unknown",
    "heavy_tasks_time": "morning"|"afternoon"|"evening"|"unknown",
    "training_spacing": "daily"|"alternating"|"spaced"|"unknown",
    "task_distribution": "even"|"front_loaded"|"deadline_driven"|"unknown"
  },
  "emotional_constraints": [string],
  "confidence": 0..1
}
Be honest about uncertainty: use "ambiguous", "unknown", and low confidence
rather than guessing. Never invent dates the user did not state.`
}

// buildExtractUserPrompt anchors relative dates to the caller's context date.
func buildExtractUserPrompt(text string, contextDate time.Time) string {
	return fmt.Sprintf("Today is %s (%s).\n\nRequest:\n%s",
		contextDate.Format("2006-01-02"), contextDate.Weekday(), text)
}

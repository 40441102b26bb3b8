package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/dmolina/ritmo/internal/domain"
	"github.com/dmolina/ritmo/internal/llm"
)

// llmExtractor implements IntentExtractor on top of the shared LLM client.
type llmExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an IntentExtractor backed by a language model.
func NewLLMExtractor(client llm.Client) IntentExtractor {
	return &llmExtractor{client: client}
}

func (s *llmExtractor) Extract(ctx context.Context, text string, contextDate time.Time) (*domain.PlanIntent, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtract,
		SystemPrompt: buildExtractSystemPrompt(),
		UserPrompt:   buildExtractUserPrompt(text, contextDate),
	})
	if err != nil {
		return nil, fmt.Errorf("llm extraction failed: %w", err)
	}

	intent, err := llm.ExtractJSON[domain.PlanIntent](resp.Text, ValidateIntent)
	if err != nil {
		return nil, fmt.Errorf("extracting intent: %w", err)
	}

	NormalizeIntent(&intent)
	return &intent, nil
}

// Package assist is the LLM-backed text collaborator for the assessment
// engine: question choice, prompt personalization, and report prose.
// Every method is best-effort and returns an error on any failure; the
// engine always has a deterministic fallback, so nothing here is ever on
// the critical path.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dishalabs/disha/internal/llm"
	"github.com/dishalabs/disha/internal/selector"
)

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget per LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds each LLM call. A slow collaborator degrades to the
	// deterministic path rather than stalling the session.
	Timeout time.Duration
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     15 * time.Second,
	}
}

// Service implements the engine's assist collaborator on an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Service{provider: provider, config: cfg}
}

// ChooseNextQuestionID picks the remaining question that best separates
// the current top interest areas. An id outside the candidate list is
// rejected here; the selector would discard it anyway.
func (s *Service) ChooseNextQuestionID(ctx context.Context, in selector.ChooseInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChooseQuestion)
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	req := llm.Request{
		System: choiceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChoiceMessage(in)},
		},
		Schema:      ChoiceSchema,
		MaxTokens:   256,
		Temperature: 0.2,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("choose question: %w", err)
	}

	var out struct {
		QuestionID string `json:"question_id"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse question choice: %w", err)
	}
	for _, q := range in.Remaining {
		if q.ID == out.QuestionID {
			return out.QuestionID, nil
		}
	}
	return "", fmt.Errorf("chosen question %q is not a candidate", out.QuestionID)
}

func (s *Service) generate(ctx context.Context, purpose, system, user string, schema *llm.Schema) (json.RawMessage, error) {
	ctx = llm.WithPurpose(ctx, purpose)
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}

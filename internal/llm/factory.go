package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/dishalabs/disha/internal/store"
)

// NewProvider constructs a Provider from config, wrapped with logging
// and retry decorators. repo may be nil to skip event persistence.
func NewProvider(ctx context.Context, cfg Config, repo store.LLMEventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, repo), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from DISHA_LLM_PROVIDER and
// related env vars. When DISHA_LLM_PROVIDER is unset it probes the
// standard API key variables and picks the first one found. Returns
// (nil, nil) when no provider is configured at all; callers treat a
// nil provider as deterministic-only mode.
func NewProviderFromEnv(ctx context.Context, repo store.LLMEventRepo) (Provider, error) {
	if os.Getenv("DISHA_LLM_PROVIDER") != "" {
		return NewProvider(ctx, ConfigFromEnv(), repo)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, discovered, repo)
}

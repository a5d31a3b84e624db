package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/ritika/selfmap/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

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
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from SELFMAP_* configuration,
// falling back to discovery of standard API key env vars when no
// explicit provider is selected. Returns (nil, false, nil) when no
// provider can be configured at all; an explicitly selected but
// misconfigured provider is an error.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, bool, error) {
	if os.Getenv("SELFMAP_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, false, err
		}
		p, err := NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			return nil, false, err
		}
		return p, true, nil
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, false, nil
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

package llm

import (
	"context"
	"fmt"
	"os"
)

// NewProvider creates a Provider from configuration, wrapped with usage
// tracking and retry middleware. The recorder may be nil.
func NewProvider(ctx context.Context, cfg Config, rec Recorder) (Provider, error) {
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

	// caller → retry → usage → base
	tracked := WithUsageTracking(base, rec)
	return WithRetry(tracked, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from EDURISK_* env vars, falling
// back to key discovery (GEMINI_API_KEY etc.) when no explicit provider is
// selected. Returns an error if no usable configuration is found.
func NewProviderFromEnv(ctx context.Context, rec Recorder) (Provider, error) {
	if os.Getenv("EDURISK_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, rec)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found: set EDURISK_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
	}
	return NewProvider(ctx, cfg, rec)
}

// ResolvedModel returns the provider model ID the config would use, with
// friendly aliases (e.g. "claude-haiku") resolved.
func (c Config) ResolvedModel() string {
	switch c.Provider {
	case "anthropic":
		return resolveModel(c.Anthropic.Model, anthropicModels)
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return resolveModel(c.Gemini.Model, geminiModels)
	case "openrouter":
		return c.OpenRouter.Model
	case "mock":
		return "mock"
	default:
		return ""
	}
}

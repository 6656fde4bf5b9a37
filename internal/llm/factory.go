package llm

import (
	"context"
	"fmt"

	"github.com/sidverma/prepquiz/internal/store"
)

// NewProvider builds the Provider for one cascade candidate, wrapped with
// request-event logging. The cascade never retries a candidate, so no
// retry middleware is applied here.
func NewProvider(ctx context.Context, cand Candidate, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cand.Provider {
	case "openai":
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cand.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, GeminiConfig{
			APIKey: cfg.Gemini.APIKey,
			Models: []string{cand.Model},
		})
	case "anthropic":
		base, err = NewAnthropicProvider(AnthropicConfig{
			APIKey: cfg.Anthropic.APIKey,
			Model:  cand.Model,
		})
	case "openrouter":
		base, err = NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cand.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	default:
		return nil, fmt.Errorf("unknown provider: %q", cand.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cand.Provider, err)
	}

	return WithLogging(base, eventRepo), nil
}

package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds credentials and model selection for every provider the
// fallback cascade may use. Any subset of providers may be configured;
// an empty Config is valid and routes generation to the local bank.
type Config struct {
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig

	// Timeout is the maximum duration for a single provider request.
	// Default: 60s. The cascade imposes no shorter deadline of its own.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	// Models is the fixed priority order of Gemini models to try.
	Models []string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with default model selections and no
// credentials.
func DefaultConfig() Config {
	return Config{
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Models: []string{"gemini-flash", "gemini-flash-lite"},
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Timeout: 60 * time.Second,
	}
}

// geminiKeyVars lists the equivalently-purposed env var names accepted for
// the Gemini credential, in the order they are probed.
var geminiKeyVars = []string{
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
	"GOOGLE_GENERATIVE_AI_API_KEY",
}

// ConfigFromEnv builds a Config from environment variables. PREPQUIZ_*
// variables override the standard provider key names.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.OpenAI.APIKey = firstEnv("PREPQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("PREPQUIZ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}

	cfg.Gemini.APIKey = firstEnv(append([]string{"PREPQUIZ_GEMINI_API_KEY"}, geminiKeyVars...)...)
	if m := os.Getenv("PREPQUIZ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Models = []string{m}
	}

	cfg.Anthropic.APIKey = firstEnv("PREPQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("PREPQUIZ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenRouter.APIKey = firstEnv("PREPQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	if m := os.Getenv("PREPQUIZ_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// firstEnv returns the value of the first set variable, or "".
func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Candidate identifies one (provider, model) pair in the cascade order.
type Candidate struct {
	Provider string // "openai", "gemini", "anthropic", "openrouter"
	Model    string
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s/%s", c.Provider, c.Model)
}

// Candidates returns the ordered fallback list built from whichever
// credentials are actually configured: the primary provider first, then
// each secondary provider's models in fixed priority order. An empty
// slice means no provider is configured.
func (c Config) Candidates() []Candidate {
	var out []Candidate
	if c.OpenAI.APIKey != "" {
		out = append(out, Candidate{Provider: "openai", Model: c.OpenAI.Model})
	}
	if c.Gemini.APIKey != "" {
		for _, m := range c.Gemini.Models {
			out = append(out, Candidate{Provider: "gemini", Model: m})
		}
	}
	if c.Anthropic.APIKey != "" {
		out = append(out, Candidate{Provider: "anthropic", Model: c.Anthropic.Model})
	}
	if c.OpenRouter.APIKey != "" {
		out = append(out, Candidate{Provider: "openrouter", Model: c.OpenRouter.Model})
	}
	return out
}

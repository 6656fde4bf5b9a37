package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"PREPQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY",
		"PREPQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GOOGLE_GENERATIVE_AI_API_KEY",
		"PREPQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
		"PREPQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
		"PREPQUIZ_OPENAI_MODEL", "PREPQUIZ_GEMINI_MODEL", "PREPQUIZ_ANTHROPIC_MODEL", "PREPQUIZ_OPENROUTER_MODEL",
	} {
		t.Setenv(v, "")
	}
}

func TestCandidates_NoneConfigured(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if got := cfg.Candidates(); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestCandidates_PrimaryFirstThenSecondaryModels(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "k1")
	t.Setenv("GEMINI_API_KEY", "k2")

	cfg := ConfigFromEnv()
	cands := cfg.Candidates()
	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %v", cands)
	}
	if cands[0].Provider != "openai" {
		t.Fatalf("primary must come first, got %v", cands[0])
	}
	if cands[1] != (Candidate{Provider: "gemini", Model: "gemini-flash"}) ||
		cands[2] != (Candidate{Provider: "gemini", Model: "gemini-flash-lite"}) {
		t.Fatalf("secondary models out of priority order: %v", cands[1:])
	}
}

func TestCandidates_SecondaryOnly(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "k2")

	cands := ConfigFromEnv().Candidates()
	if len(cands) != 2 || cands[0].Provider != "gemini" {
		t.Fatalf("expected gemini-only cascade, got %v", cands)
	}
}

func TestGeminiKeyAliases(t *testing.T) {
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "GOOGLE_GENERATIVE_AI_API_KEY"} {
		t.Run(name, func(t *testing.T) {
			clearProviderEnv(t)
			t.Setenv(name, "secret")

			cfg := ConfigFromEnv()
			if cfg.Gemini.APIKey != "secret" {
				t.Fatalf("%s should configure the gemini key", name)
			}
		})
	}
}

func TestConfigFromEnv_PrefixedOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "standard")
	t.Setenv("PREPQUIZ_OPENAI_API_KEY", "prefixed")
	t.Setenv("PREPQUIZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.OpenAI.APIKey != "prefixed" {
		t.Fatalf("prefixed key should win, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("model override not applied, got %q", cfg.OpenAI.Model)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 0); got != c.InputPerMTok {
		t.Fatalf("cost math off: %v", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("unknown model should have nil pricing")
	}
}

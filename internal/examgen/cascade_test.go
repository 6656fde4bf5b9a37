package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/sidverma/prepquiz/internal/llm"
)

// examJSON renders a provider-shaped exam of n questions.
func examJSON(n int) json.RawMessage {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(
			`{"type":"multiple_choice","prompt":"q%d","options":["a","b","c","d"],"answer":1,"topic":"algebra"}`, i+1)
	}
	return json.RawMessage(`{"questions":[` + strings.Join(items, ",") + `]}`)
}

// testCascade builds a Cascade whose candidates resolve to the given
// providers by model id, bypassing the real SDK factories.
func testCascade(t *testing.T, cfg llm.Config, providers map[string]*llm.MockProvider) *Cascade {
	t.Helper()
	return &Cascade{
		cfg: cfg,
		newProvider: func(_ context.Context, cand llm.Candidate) (llm.Provider, error) {
			p, ok := providers[cand.Model]
			if !ok {
				return nil, fmt.Errorf("no mock for %s", cand)
			}
			return p, nil
		},
		logf: func(string, ...any) {},
	}
}

func twoCandidateConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.OpenAI.APIKey = "k1"
	cfg.OpenAI.Model = "primary"
	cfg.Gemini.APIKey = "k2"
	cfg.Gemini.Models = []string{"secondary"}
	return cfg
}

func TestCascade_FirstCandidateWins(t *testing.T) {
	primary := llm.NewNamedMockProvider("primary", llm.MockResponse{Content: examJSON(10)})
	secondary := llm.NewNamedMockProvider("secondary")

	c := testCascade(t, twoCandidateConfig(), map[string]*llm.MockProvider{
		"primary": primary, "secondary": secondary,
	})

	qs := c.Generate(context.Background(), DefaultOptions())
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	if primary.CallCount() != 1 {
		t.Fatalf("primary should be called once, got %d", primary.CallCount())
	}
	if secondary.CallCount() != 0 {
		t.Fatalf("secondary must not be called when primary succeeds, got %d", secondary.CallCount())
	}
}

func TestCascade_FallsThroughOnProviderError(t *testing.T) {
	primary := llm.NewNamedMockProvider("primary",
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{StatusCode: 503, Model: "primary"}})
	secondary := llm.NewNamedMockProvider("secondary", llm.MockResponse{Content: examJSON(10)})

	c := testCascade(t, twoCandidateConfig(), map[string]*llm.MockProvider{
		"primary": primary, "secondary": secondary,
	})

	qs := c.Generate(context.Background(), DefaultOptions())
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	if primary.CallCount() != 1 {
		t.Fatalf("failed candidate must not be retried, got %d calls", primary.CallCount())
	}
	if secondary.CallCount() != 1 {
		t.Fatalf("secondary should serve after primary fails, got %d calls", secondary.CallCount())
	}
}

func TestCascade_FallsThroughOnMalformedOutput(t *testing.T) {
	primary := llm.NewNamedMockProvider("primary",
		llm.MockResponse{Content: json.RawMessage(`sorry, I cannot help with that`)})
	secondary := llm.NewNamedMockProvider("secondary", llm.MockResponse{Content: examJSON(10)})

	c := testCascade(t, twoCandidateConfig(), map[string]*llm.MockProvider{
		"primary": primary, "secondary": secondary,
	})

	qs := c.Generate(context.Background(), DefaultOptions())
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	if secondary.CallCount() != 1 {
		t.Fatal("unparseable output must advance to the next candidate")
	}
}

func TestCascade_ShortOutputDiscardedWholesale(t *testing.T) {
	// 7 of 10 questions: no partial acceptance, no topping up.
	primary := llm.NewNamedMockProvider("primary", llm.MockResponse{Content: examJSON(7)})
	secondary := llm.NewNamedMockProvider("secondary", llm.MockResponse{Content: examJSON(10)})

	c := testCascade(t, twoCandidateConfig(), map[string]*llm.MockProvider{
		"primary": primary, "secondary": secondary,
	})

	qs := c.Generate(context.Background(), DefaultOptions())
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	if secondary.CallCount() != 1 {
		t.Fatal("short output must be discarded and the next candidate tried")
	}
}

func TestCascade_AllCandidatesFailUsesLocalBank(t *testing.T) {
	primary := llm.NewNamedMockProvider("primary")
	secondary := llm.NewNamedMockProvider("secondary")

	c := testCascade(t, twoCandidateConfig(), map[string]*llm.MockProvider{
		"primary": primary, "secondary": secondary,
	})

	opts := DefaultOptions()
	opts.Count = 8
	qs := c.Generate(context.Background(), opts)
	if len(qs) != 8 {
		t.Fatalf("local fallback must still yield 8 questions, got %d", len(qs))
	}
	if primary.CallCount() != 1 || secondary.CallCount() != 1 {
		t.Fatal("every candidate should be tried exactly once before local fallback")
	}
}

func TestCascade_NoProvidersConfiguredUsesLocalBank(t *testing.T) {
	c := testCascade(t, llm.DefaultConfig(), nil)

	qs := c.Generate(context.Background(), DefaultOptions())
	if len(qs) != 10 {
		t.Fatalf("expected 10 locally generated questions, got %d", len(qs))
	}
}

func TestCascade_ClampsRequestedCount(t *testing.T) {
	c := testCascade(t, llm.DefaultConfig(), nil)

	for _, tc := range []struct{ in, want int }{{1, 5}, {100, 65}, {0, 10}} {
		opts := DefaultOptions()
		opts.Count = tc.in
		if got := len(c.Generate(context.Background(), opts)); got != tc.want {
			t.Fatalf("count %d: expected %d questions, got %d", tc.in, tc.want, got)
		}
	}
}

func TestCascade_TokenBudgetDoublesForFullLengthExams(t *testing.T) {
	primary := llm.NewNamedMockProvider("primary", llm.MockResponse{Content: examJSON(50)})

	cfg := llm.DefaultConfig()
	cfg.OpenAI.APIKey = "k1"
	cfg.OpenAI.Model = "primary"
	c := testCascade(t, cfg, map[string]*llm.MockProvider{"primary": primary})

	opts := DefaultOptions()
	opts.Count = 50
	c.Generate(context.Background(), opts)

	if got := primary.Calls[0].MaxTokens; got != 8192 {
		t.Fatalf("expected doubled token budget for 50 questions, got %d", got)
	}
	if temp := primary.Calls[0].Temperature; temp != 0.7 {
		t.Fatalf("expected fixed temperature 0.7, got %v", temp)
	}
}

package examgen

import (
	"context"
	"fmt"
	"os"

	"github.com/sidverma/prepquiz/internal/llm"
	"github.com/sidverma/prepquiz/internal/store"
)

// Cascade is the sole entry point for "produce N questions". It tries
// the configured provider candidates strictly one at a time in priority
// order and falls through to the local bank when every candidate fails
// or none is configured. A candidate's output is accepted wholesale
// (normalized to exactly the requested count) or discarded wholesale;
// partial results are never merged across candidates.
type Cascade struct {
	cfg llm.Config

	// newProvider builds the Provider for one candidate. Injectable so
	// tests can substitute mocks for real SDK clients.
	newProvider func(ctx context.Context, cand llm.Candidate) (llm.Provider, error)

	logf func(format string, args ...any)
}

// NewCascade creates a Cascade over the configured providers. Provider
// requests are recorded through events.
func NewCascade(cfg llm.Config, events store.EventRepo) *Cascade {
	return &Cascade{
		cfg: cfg,
		newProvider: func(ctx context.Context, cand llm.Candidate) (llm.Provider, error) {
			return llm.NewProvider(ctx, cand, cfg, events)
		},
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Generate produces exactly clamp(opts.Count, 5, 65) canonical questions.
// It never fails: candidate errors are absorbed and logged, and the
// local bank is the guaranteed terminal fallback.
func (c *Cascade) Generate(ctx context.Context, opts Options) []Question {
	opts = opts.withDefaults()
	ctx = llm.WithPurpose(ctx, "exam-gen")

	for _, cand := range c.cfg.Candidates() {
		questions, err := c.tryCandidate(ctx, cand, opts)
		if err != nil {
			c.logf("candidate %s failed: %v", cand, err)
			continue
		}
		return questions
	}

	return GenerateLocal(opts.Count, opts.Topics, opts.IncludeExplanations)
}

// tryCandidate makes exactly one request against one candidate. Any
// error — construction, transport, non-2xx, unparseable or short
// output — discards the candidate; there is no per-candidate retry.
func (c *Cascade) tryCandidate(ctx context.Context, cand llm.Candidate, opts Options) ([]Question, error) {
	provider, err := c.newProvider(ctx, cand)
	if err != nil {
		return nil, err
	}

	resp, err := provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(opts, opts.Count)},
		},
		Schema:      ExamSchema,
		MaxTokens:   maxTokensFor(opts.Count),
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	questions, err := Normalize(string(resp.Content), opts.Count, opts.Topics, opts.IncludeExplanations)
	if err != nil {
		return nil, err
	}
	if len(questions) != opts.Count {
		return nil, fmt.Errorf("usable questions: got %d, want %d", len(questions), opts.Count)
	}
	return questions, nil
}

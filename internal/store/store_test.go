package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	entschema "github.com/sidverma/prepquiz/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func storedQuestions() []entschema.StoredQuestion {
	return []entschema.StoredQuestion{
		{ID: 1, Type: "multiple_choice", Prompt: "pick", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 2, Weight: 1, Topic: "algebra"},
		{ID: 2, Type: "numeric", Prompt: "compute", AnswerValue: "12", Weight: 2, Topic: "geometry"},
	}
}

func TestAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	rec := &AttemptRecord{
		ID:             "attempt-1",
		UserID:         "user-1",
		Questions:      storedQuestions(),
		TotalQuestions: 2,
		State:          AttemptOpen,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != AttemptOpen || got.Score != 0 {
		t.Fatalf("new attempt must be open with score 0: %+v", got)
	}
	if len(got.Questions) != 2 || got.Questions[1].AnswerValue != "12" {
		t.Fatalf("questions not round-tripped: %+v", got.Questions)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at must be set")
	}
	if !got.SubmittedAt.IsZero() {
		t.Fatal("submitted_at must be zero before submission")
	}
}

func TestAttemptGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AttemptRepo().Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}

func TestMarkSubmittedOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	rec := &AttemptRecord{
		ID:             "attempt-1",
		UserID:         "user-1",
		Questions:      storedQuestions(),
		TotalQuestions: 2,
		State:          AttemptOpen,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	sub := AttemptSubmission{
		Answers:      map[string]string{"1": "2", "2": "blank"},
		Score:        1,
		DurationSecs: 30,
		WeakTopics:   []string{"geometry"},
		Suggestions:  []string{"line"},
		SubmittedAt:  time.Now().UTC(),
	}
	if err := repo.MarkSubmitted(ctx, "attempt-1", sub); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// The conditional update must reject a second submission.
	if err := repo.MarkSubmitted(ctx, "attempt-1", sub); !errors.Is(err, ErrAttemptSubmitted) {
		t.Fatalf("expected ErrAttemptSubmitted, got %v", err)
	}

	got, err := repo.Get(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != AttemptSubmitted || got.Score != 1 || got.DurationSecs != 30 {
		t.Fatalf("submission not persisted: %+v", got)
	}
	if got.SubmittedAt.IsZero() {
		t.Fatal("submitted_at must be set after submission")
	}
	if got.Answers["2"] != "blank" {
		t.Fatalf("answers not persisted: %v", got.Answers)
	}
}

func TestListByUserNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := &AttemptRecord{
			ID:             fmt.Sprintf("attempt-%d", i),
			UserID:         "user-1",
			Questions:      storedQuestions(),
			TotalQuestions: 2,
			State:          AttemptOpen,
		}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	other := &AttemptRecord{
		ID:             "foreign",
		UserID:         "user-2",
		Questions:      storedQuestions(),
		TotalQuestions: 2,
		State:          AttemptOpen,
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create foreign: %v", err)
	}

	got, err := repo.ListByUser(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(got))
	}
	if got[0].ID != "attempt-4" {
		t.Fatalf("expected newest first, got %s", got[0].ID)
	}
	for _, rec := range got {
		if rec.UserID != "user-1" {
			t.Fatalf("foreign attempt leaked: %+v", rec)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "exam-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "exam-gen", InputTokens: 80, OutputTokens: 0, LatencyMs: 90, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	for _, e := range got {
		if e.Purpose != "exam-gen" {
			t.Fatalf("purpose not persisted: %+v", e)
		}
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Model: "gpt-4o-mini", Purpose: "exam-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(byPurpose))
	}
	if byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 || byPurpose[0].OutputTokens != 150 {
		t.Fatalf("wrong aggregates: %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gpt-4o-mini" || byModel[0].Calls != 3 {
		t.Fatalf("wrong model aggregates: %+v", byModel)
	}
}

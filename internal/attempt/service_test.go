package attempt

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sidverma/prepquiz/internal/examgen"
	"github.com/sidverma/prepquiz/internal/store"
)

// memRepo is an in-memory AttemptRepo with the same conditional-update
// semantics as the SQLite-backed one.
type memRepo struct {
	mu      sync.Mutex
	records map[string]*store.AttemptRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*store.AttemptRecord)}
}

func (m *memRepo) Create(_ context.Context, rec *store.AttemptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.CreatedAt = time.Now()
	m.records[rec.ID] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (*store.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrAttemptNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *memRepo) MarkSubmitted(_ context.Context, id string, sub store.AttemptSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return store.ErrAttemptNotFound
	}
	if rec.State != store.AttemptOpen {
		return store.ErrAttemptSubmitted
	}
	rec.State = store.AttemptSubmitted
	rec.Answers = sub.Answers
	rec.Score = sub.Score
	rec.DurationSecs = sub.DurationSecs
	rec.WeakTopics = sub.WeakTopics
	rec.Suggestions = sub.Suggestions
	rec.SubmittedAt = sub.SubmittedAt
	return nil
}

func (m *memRepo) ListByUser(_ context.Context, userID string, limit int) ([]*store.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.AttemptRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func testQuestions() []examgen.Question {
	return []examgen.Question{
		{
			ID:          1,
			Type:        examgen.TypeMultipleChoice,
			Prompt:      "pick one",
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: 2,
			Weight:      1,
			Topic:       "algebra",
		},
		{
			ID:          2,
			Type:        examgen.TypeNumeric,
			Prompt:      "compute",
			AnswerValue: "12",
			Weight:      1,
			Topic:       "geometry",
		},
	}
}

func TestService_CreateAndSubmitAllCorrect(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	att, err := svc.Create(ctx, "user-1", testQuestions())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if att.State != StateOpen || att.Score != 0 || att.TotalQuestions != 2 {
		t.Fatalf("unexpected new attempt: %+v", att)
	}

	res, err := svc.Submit(ctx, "user-1", att.ID, map[string]any{
		"1": float64(2),
		"2": 11.995,
	}, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.Score != 2 || res.Total != 2 {
		t.Fatalf("expected 2/2, got %d/%d", res.Score, res.Total)
	}
	if len(res.Mistakes) != 0 {
		t.Fatalf("expected no mistakes, got %v", res.Mistakes)
	}
	if len(res.WeakTopics) != 0 {
		t.Fatalf("expected no weak topics, got %v", res.WeakTopics)
	}

	stored, err := svc.Get(ctx, "user-1", att.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.State != StateSubmitted || stored.Score != 2 || stored.DurationSeconds != 30 {
		t.Fatalf("persisted attempt wrong: %+v", stored)
	}
	if stored.SubmittedAt.IsZero() {
		t.Fatal("submittedAt must be set after submission")
	}
}

func TestService_SubmitPartiallyBlank(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	att, err := svc.Create(ctx, "user-1", testQuestions())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.Submit(ctx, "user-1", att.ID, map[string]any{"1": float64(0)}, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.Score != 0 {
		t.Fatalf("expected score 0, got %d", res.Score)
	}
	if len(res.Mistakes) != 2 {
		t.Fatalf("both questions must appear in mistakes, got %v", res.Mistakes)
	}
	if res.Mistakes[1].Yours != "blank" {
		t.Fatalf("unanswered question must render \"blank\", got %q", res.Mistakes[1].Yours)
	}
	if len(res.WeakTopics) != 2 {
		t.Fatalf("expected both topics weak, got %v", res.WeakTopics)
	}
	if len(res.Suggestions) < 3 {
		t.Fatalf("expected at least 3 suggestions, got %v", res.Suggestions)
	}
}

func TestService_ResubmissionConflict(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	att, _ := svc.Create(ctx, "user-1", testQuestions())
	first, err := svc.Submit(ctx, "user-1", att.ID, map[string]any{"1": float64(2), "2": "12"}, 10)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err = svc.Submit(ctx, "user-1", att.ID, map[string]any{}, 10)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	// Second call must not disturb the stored result.
	stored, _ := svc.Get(ctx, "user-1", att.ID)
	if stored.Score != first.Score {
		t.Fatalf("score changed by rejected resubmission: %d != %d", stored.Score, first.Score)
	}
}

func TestService_OwnershipAndExistenceOrder(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	att, _ := svc.Create(ctx, "user-1", testQuestions())

	// Unknown attempt: NotFound regardless of caller.
	_, err := svc.Submit(ctx, "user-2", "no-such-id", map[string]any{}, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Existing attempt, wrong owner: NotAuthorized.
	_, err = svc.Submit(ctx, "user-2", att.ID, map[string]any{}, 0)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	_, err = svc.Get(ctx, "user-2", att.ID)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized on read, got %v", err)
	}
}

func TestService_AuthRequired(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", testQuestions()); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("create: expected ErrAuthRequired, got %v", err)
	}
	if _, err := svc.Submit(ctx, "", "id", nil, 0); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("submit: expected ErrAuthRequired, got %v", err)
	}
	if _, err := svc.List(ctx, ""); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("list: expected ErrAuthRequired, got %v", err)
	}
}

func TestService_CreateRequiresQuestions(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Create(context.Background(), "user-1", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestService_DurationFlooring(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	cases := []struct {
		in   float64
		want int
	}{
		{30.9, 30},
		{-5, 0},
		{0, 0},
	}
	for _, tc := range cases {
		att, _ := svc.Create(ctx, "user-1", testQuestions())
		if _, err := svc.Submit(ctx, "user-1", att.ID, map[string]any{}, tc.in); err != nil {
			t.Fatalf("submit: %v", err)
		}
		stored, _ := svc.Get(ctx, "user-1", att.ID)
		if stored.DurationSeconds != tc.want {
			t.Fatalf("duration %v: expected %d, got %d", tc.in, tc.want, stored.DurationSeconds)
		}
	}
}

func TestService_ConcurrentSubmitExactlyOneWins(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	att, _ := svc.Create(ctx, "user-1", testQuestions())

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, "user-1", att.ID, map[string]any{"1": float64(2)}, 5)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadySubmitted):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != n-1 {
		t.Fatalf("expected exactly one winner, got %d wins / %d conflicts", wins, conflicts)
	}
}

func TestService_ListNewestFirstCappedAtTen(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	var last string
	for i := 0; i < 12; i++ {
		att, err := svc.Create(ctx, "user-1", testQuestions())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		last = att.ID
		time.Sleep(time.Millisecond)
	}
	if _, err := svc.Create(ctx, "user-2", testQuestions()); err != nil {
		t.Fatalf("create other user: %v", err)
	}

	attempts, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 10 {
		t.Fatalf("expected 10 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != last {
		t.Fatal("attempts must be newest first")
	}
	for _, a := range attempts {
		if a.Owner != "user-1" {
			t.Fatalf("foreign attempt leaked into list: %+v", a)
		}
	}
}

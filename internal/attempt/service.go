package attempt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sidverma/prepquiz/internal/examgen"
	"github.com/sidverma/prepquiz/internal/store"
)

// listLimit is how many attempts List returns.
const listLimit = 10

// Service owns the attempt lifecycle. Every operation takes the caller's
// identity explicitly; there is no ambient current user.
type Service struct {
	repo store.AttemptRepo
}

// NewService creates an attempt Service over the given repository.
func NewService(repo store.AttemptRepo) *Service {
	return &Service{repo: repo}
}

// Create opens a new attempt owned by owner over the given questions.
// The question set is frozen at creation.
func (s *Service) Create(ctx context.Context, owner string, questions []examgen.Question) (*Attempt, error) {
	if owner == "" {
		return nil, ErrAuthRequired
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	rec := &store.AttemptRecord{
		ID:             uuid.NewString(),
		UserID:         owner,
		Questions:      questionsToStored(questions),
		TotalQuestions: len(questions),
		State:          store.AttemptOpen,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	created, err := s.repo.Get(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("load created attempt: %w", err)
	}
	return fromRecord(created), nil
}

// Submit grades the attempt and transitions it open → submitted.
// Checks run in order: existence, then ownership, then state; the state
// check is atomic with the write, so of two concurrent submissions
// exactly one succeeds and the other gets ErrAlreadySubmitted.
func (s *Service) Submit(ctx context.Context, owner, attemptID string, answers map[string]any, durationSeconds float64) (*Result, error) {
	if owner == "" {
		return nil, ErrAuthRequired
	}

	rec, err := s.repo.Get(ctx, attemptID)
	if err != nil {
		if errors.Is(err, store.ErrAttemptNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if rec.UserID != owner {
		return nil, ErrNotAuthorized
	}
	if rec.State != store.AttemptOpen {
		return nil, ErrAlreadySubmitted
	}

	questions := questionsFromStored(rec.Questions)
	graded := grade(questions, answers)
	weakTopics, suggestions := buildGuidance(graded.Topics)

	sub := store.AttemptSubmission{
		Answers:      renderAnswers(answers),
		Score:        graded.Score,
		DurationSecs: floorDuration(durationSeconds),
		WeakTopics:   weakTopics,
		Suggestions:  suggestions,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.repo.MarkSubmitted(ctx, attemptID, sub); err != nil {
		if errors.Is(err, store.ErrAttemptSubmitted) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("submit attempt: %w", err)
	}

	return &Result{
		Score:       graded.Score,
		Total:       rec.TotalQuestions,
		WeakTopics:  weakTopics,
		Suggestions: suggestions,
		Mistakes:    graded.Mistakes,
	}, nil
}

// Get returns one attempt after the existence and ownership checks.
func (s *Service) Get(ctx context.Context, owner, attemptID string) (*Attempt, error) {
	if owner == "" {
		return nil, ErrAuthRequired
	}

	rec, err := s.repo.Get(ctx, attemptID)
	if err != nil {
		if errors.Is(err, store.ErrAttemptNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if rec.UserID != owner {
		return nil, ErrNotAuthorized
	}
	return fromRecord(rec), nil
}

// List returns the owner's 10 most recent attempts, newest first.
func (s *Service) List(ctx context.Context, owner string) ([]*Attempt, error) {
	if owner == "" {
		return nil, ErrAuthRequired
	}

	recs, err := s.repo.ListByUser(ctx, owner, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	out := make([]*Attempt, len(recs))
	for i, rec := range recs {
		out[i] = fromRecord(rec)
	}
	return out, nil
}

// floorDuration floors a reported duration to a non-negative integer
// number of seconds.
func floorDuration(seconds float64) int {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return int(math.Floor(seconds))
}

func renderAnswers(answers map[string]any) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		out[k] = renderAnswer(v)
	}
	return out
}

package store

import (
	"context"
	"fmt"

	"github.com/sidverma/prepquiz/ent"
	"github.com/sidverma/prepquiz/ent/examattempt"
)

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Create(ctx context.Context, rec *AttemptRecord) error {
	_, err := r.client.ExamAttempt.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetQuestions(rec.Questions).
		SetTotalQuestions(rec.TotalQuestions).
		SetState(examattempt.StateOpen).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*AttemptRecord, error) {
	e, err := r.client.ExamAttempt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return fromEnt(e), nil
}

func (r *attemptRepo) MarkSubmitted(ctx context.Context, id string, sub AttemptSubmission) error {
	// Conditional update: the state predicate makes the open→submitted
	// flip atomic, so a concurrent duplicate submission matches zero rows.
	n, err := r.client.ExamAttempt.Update().
		Where(
			examattempt.IDEQ(id),
			examattempt.StateEQ(examattempt.StateOpen),
		).
		SetState(examattempt.StateSubmitted).
		SetAnswers(sub.Answers).
		SetScore(sub.Score).
		SetDurationSecs(sub.DurationSecs).
		SetWeakTopics(sub.WeakTopics).
		SetSuggestions(sub.Suggestions).
		SetSubmittedAt(sub.SubmittedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark submitted: %w", err)
	}
	if n == 0 {
		return ErrAttemptSubmitted
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*AttemptRecord, error) {
	q := r.client.ExamAttempt.Query().
		Where(examattempt.UserIDEQ(userID)).
		Order(ent.Desc(examattempt.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	out := make([]*AttemptRecord, len(rows))
	for i, e := range rows {
		out[i] = fromEnt(e)
	}
	return out, nil
}

func fromEnt(e *ent.ExamAttempt) *AttemptRecord {
	rec := &AttemptRecord{
		ID:             e.ID,
		UserID:         e.UserID,
		Questions:      e.Questions,
		Answers:        e.Answers,
		Score:          e.Score,
		TotalQuestions: e.TotalQuestions,
		DurationSecs:   e.DurationSecs,
		WeakTopics:     e.WeakTopics,
		Suggestions:    e.Suggestions,
		State:          AttemptState(e.State),
		CreatedAt:      e.CreatedAt,
	}
	if e.SubmittedAt != nil {
		rec.SubmittedAt = *e.SubmittedAt
	}
	return rec
}

package store

import (
	"context"
	"errors"
	"time"

	entschema "github.com/sidverma/prepquiz/ent/schema"
)

// Sentinel errors returned by repositories. The attempt service maps
// these onto its user-facing taxonomy.
var (
	// ErrAttemptNotFound means no attempt exists with the given id.
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrAttemptSubmitted means the open→submitted transition lost:
	// the attempt was no longer open when the write was applied.
	ErrAttemptSubmitted = errors.New("attempt already submitted")
)

// AttemptState is the lifecycle state of an exam attempt.
type AttemptState string

const (
	AttemptOpen      AttemptState = "open"
	AttemptSubmitted AttemptState = "submitted"
)

// AttemptRecord is the persisted form of an exam attempt.
type AttemptRecord struct {
	ID             string
	UserID         string
	Questions      []entschema.StoredQuestion
	Answers        map[string]string
	Score          int
	TotalQuestions int
	DurationSecs   int
	WeakTopics     []string
	Suggestions    []string
	State          AttemptState
	CreatedAt      time.Time
	SubmittedAt    time.Time // zero until submitted
}

// AttemptSubmission carries everything submission writes in one shot.
type AttemptSubmission struct {
	Answers      map[string]string
	Score        int
	DurationSecs int
	WeakTopics   []string
	Suggestions  []string
	SubmittedAt  time.Time
}

// AttemptRepo persists exam attempts.
type AttemptRepo interface {
	// Create stores a new open attempt.
	Create(ctx context.Context, rec *AttemptRecord) error

	// Get returns the attempt with the given id, or ErrAttemptNotFound.
	Get(ctx context.Context, id string) (*AttemptRecord, error)

	// MarkSubmitted atomically flips an open attempt to submitted and
	// writes the grading results. Returns ErrAttemptSubmitted if the
	// attempt was not open; of two concurrent submissions exactly one
	// succeeds.
	MarkSubmitted(ctx context.Context, id string, sub AttemptSubmission) error

	// ListByUser returns the user's attempts, newest first, at most limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*AttemptRecord, error)
}

// LLMRequestEventData captures one provider API call.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is the read form of a recorded provider request.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMUsageStats aggregates provider calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates provider calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to provider request events.
type EventRepo interface {
	// AppendLLMRequest records a provider API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByPurpose returns token usage aggregated by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel returns token usage aggregated by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

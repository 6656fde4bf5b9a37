package attempt

import (
	"time"

	entschema "github.com/sidverma/prepquiz/ent/schema"
	"github.com/sidverma/prepquiz/internal/examgen"
	"github.com/sidverma/prepquiz/internal/store"
)

// State is the lifecycle state of an attempt. The only transition is
// open → submitted, and it happens exactly once.
type State string

const (
	StateOpen      State = "open"
	StateSubmitted State = "submitted"
)

// Attempt is one user's run through a generated exam.
type Attempt struct {
	ID              string
	Owner           string
	Questions       []examgen.Question
	Answers         map[string]string
	Score           int
	TotalQuestions  int
	DurationSeconds int
	WeakTopics      []string
	Suggestions     []string
	State           State
	CreatedAt       time.Time
	SubmittedAt     time.Time // zero until submitted
}

// Mistake describes one incorrect or unanswered question in a graded
// attempt. Yours is the literal "blank" when the question was unanswered.
type Mistake struct {
	ID      int    `json:"id"`
	Topic   string `json:"topic"`
	Correct string `json:"correct"`
	Yours   string `json:"yours"`
}

// Result is what submission returns to the caller.
type Result struct {
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	WeakTopics  []string  `json:"weakTopics"`
	Suggestions []string  `json:"suggestions"`
	Mistakes    []Mistake `json:"mistakes"`
}

func fromRecord(rec *store.AttemptRecord) *Attempt {
	return &Attempt{
		ID:              rec.ID,
		Owner:           rec.UserID,
		Questions:       questionsFromStored(rec.Questions),
		Answers:         rec.Answers,
		Score:           rec.Score,
		TotalQuestions:  rec.TotalQuestions,
		DurationSeconds: rec.DurationSecs,
		WeakTopics:      rec.WeakTopics,
		Suggestions:     rec.Suggestions,
		State:           State(rec.State),
		CreatedAt:       rec.CreatedAt,
		SubmittedAt:     rec.SubmittedAt,
	}
}

func questionsToStored(qs []examgen.Question) []entschema.StoredQuestion {
	out := make([]entschema.StoredQuestion, len(qs))
	for i, q := range qs {
		out[i] = entschema.StoredQuestion{
			ID:          q.ID,
			Type:        string(q.Type),
			Prompt:      q.Prompt,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
			AnswerValue: q.AnswerValue,
			Weight:      q.Weight,
			Topic:       q.Topic,
			Explanation: q.Explanation,
		}
	}
	return out
}

func questionsFromStored(qs []entschema.StoredQuestion) []examgen.Question {
	out := make([]examgen.Question, len(qs))
	for i, q := range qs {
		out[i] = examgen.Question{
			ID:          q.ID,
			Type:        examgen.QuestionType(q.Type),
			Prompt:      q.Prompt,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
			AnswerValue: q.AnswerValue,
			Weight:      q.Weight,
			Topic:       q.Topic,
			Explanation: q.Explanation,
		}
	}
	return out
}

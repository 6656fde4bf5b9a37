package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamAttempt is one user's run through a generated mock exam, from
// creation through grading. Questions are frozen at creation; grading
// results are written exactly once by submission.
type ExamAttempt struct {
	ent.Schema
}

// StoredQuestion is the serialized form of a canonical question.
type StoredQuestion struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	AnswerIndex int      `json:"answer_index"`
	AnswerValue string   `json:"answer_value,omitempty"`
	Weight      int      `json:"weight"`
	Topic       string   `json:"topic"`
	Explanation string   `json:"explanation,omitempty"`
}

func (ExamAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Unique().
			Comment("UUID assigned at creation"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owner; no other user may read or mutate the attempt"),
		field.JSON("questions", []StoredQuestion{}).
			Immutable().
			Comment("Canonical question set, frozen at creation"),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("Submitted answers keyed by question id (set on submit)"),
		field.Int("score").
			Default(0).
			Comment("Count of correct answers (set on submit)"),
		field.Int("total_questions").
			Comment("Length of the question set"),
		field.Int("duration_secs").
			Default(0).
			Comment("Reported time taken, floored to >= 0 (set on submit)"),
		field.JSON("weak_topics", []string{}).
			Optional().
			Comment("Guidance: topics ranked by miss count (set on submit)"),
		field.JSON("suggestions", []string{}).
			Optional().
			Comment("Guidance: ordered remediation lines (set on submit)"),
		field.Enum("state").
			Values("open", "submitted").
			Default("open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("submitted_at").
			Optional().
			Nillable().
			Comment("Present only once submitted"),
	}
}

func (ExamAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("state"),
	}
}

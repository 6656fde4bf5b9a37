// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sidverma/prepquiz/ent/examattempt"
	"github.com/sidverma/prepquiz/ent/schema"
)

// ExamAttempt is the model entity for the ExamAttempt schema.
type ExamAttempt struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at creation
	ID string `json:"id,omitempty"`
	// Owner; no other user may read or mutate the attempt
	UserID string `json:"user_id,omitempty"`
	// Canonical question set, frozen at creation
	Questions []schema.StoredQuestion `json:"questions,omitempty"`
	// Submitted answers keyed by question id (set on submit)
	Answers map[string]string `json:"answers,omitempty"`
	// Count of correct answers (set on submit)
	Score int `json:"score,omitempty"`
	// Length of the question set
	TotalQuestions int `json:"total_questions,omitempty"`
	// Reported time taken, floored to >= 0 (set on submit)
	DurationSecs int `json:"duration_secs,omitempty"`
	// Guidance: topics ranked by miss count (set on submit)
	WeakTopics []string `json:"weak_topics,omitempty"`
	// Guidance: ordered remediation lines (set on submit)
	Suggestions []string `json:"suggestions,omitempty"`
	// State holds the value of the "state" field.
	State examattempt.State `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Present only once submitted
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examattempt.FieldQuestions, examattempt.FieldAnswers, examattempt.FieldWeakTopics, examattempt.FieldSuggestions:
			values[i] = new([]byte)
		case examattempt.FieldScore, examattempt.FieldTotalQuestions, examattempt.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case examattempt.FieldID, examattempt.FieldUserID, examattempt.FieldState:
			values[i] = new(sql.NullString)
		case examattempt.FieldCreatedAt, examattempt.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamAttempt fields.
func (_m *ExamAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case examattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case examattempt.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case examattempt.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case examattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case examattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case examattempt.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case examattempt.FieldWeakTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakTopics); err != nil {
					return fmt.Errorf("unmarshal field weak_topics: %w", err)
				}
			}
		case examattempt.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case examattempt.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = examattempt.State(value.String)
			}
		case examattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case examattempt.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *ExamAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamAttempt.
// Note that you need to call ExamAttempt.Unwrap() before calling this method if this ExamAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamAttempt) Update() *ExamAttemptUpdateOne {
	return NewExamAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamAttempt) Unwrap() *ExamAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("ExamAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("weak_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakTopics))
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExamAttempts is a parsable slice of ExamAttempt.
type ExamAttempts []*ExamAttempt

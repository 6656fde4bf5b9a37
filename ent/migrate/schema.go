// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExamAttemptsColumns holds the columns for the "exam_attempts" table.
	ExamAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"open", "submitted"}, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
	}
	// ExamAttemptsTable holds the schema information for the "exam_attempts" table.
	ExamAttemptsTable = &schema.Table{
		Name:       "exam_attempts",
		Columns:    ExamAttemptsColumns,
		PrimaryKey: []*schema.Column{ExamAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[1]},
			},
			{
				Name:    "examattempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[1], ExamAttemptsColumns[10]},
			},
			{
				Name:    "examattempt_state",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExamAttemptsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}

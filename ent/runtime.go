// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sidverma/prepquiz/ent/examattempt"
	"github.com/sidverma/prepquiz/ent/llmrequestevent"
	"github.com/sidverma/prepquiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	examattemptFields := schema.ExamAttempt{}.Fields()
	_ = examattemptFields
	// examattemptDescUserID is the schema descriptor for user_id field.
	examattemptDescUserID := examattemptFields[1].Descriptor()
	// examattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examattempt.UserIDValidator = examattemptDescUserID.Validators[0].(func(string) error)
	// examattemptDescScore is the schema descriptor for score field.
	examattemptDescScore := examattemptFields[4].Descriptor()
	// examattempt.DefaultScore holds the default value on creation for the score field.
	examattempt.DefaultScore = examattemptDescScore.Default.(int)
	// examattemptDescDurationSecs is the schema descriptor for duration_secs field.
	examattemptDescDurationSecs := examattemptFields[6].Descriptor()
	// examattempt.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	examattempt.DefaultDurationSecs = examattemptDescDurationSecs.Default.(int)
	// examattemptDescCreatedAt is the schema descriptor for created_at field.
	examattemptDescCreatedAt := examattemptFields[10].Descriptor()
	// examattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	examattempt.DefaultCreatedAt = examattemptDescCreatedAt.Default.(func() time.Time)
	// examattemptDescID is the schema descriptor for id field.
	examattemptDescID := examattemptFields[0].Descriptor()
	// examattempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	examattempt.IDValidator = examattemptDescID.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}

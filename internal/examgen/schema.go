package examgen

import "github.com/sidverma/prepquiz/internal/llm"

// ExamSchema is the structured-output schema sent to providers. It is
// deliberately permissive: it pins the overall envelope so providers
// emit JSON, while field-level repair stays with the normalizer.
var ExamSchema = &llm.Schema{
	Name:        "mock-exam",
	Description: "A mock exam as an array of question objects",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated exam questions, in order",
				"items": map[string]any{
					"type": "object",
				},
			},
		},
		"required": []any{"questions"},
	},
}

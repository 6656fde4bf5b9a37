package examgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MalformedOutputError means provider output contained no parseable JSON
// array. It is the only way normalization fails; anything array-shaped
// is salvaged field by field.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed provider output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// placeholderOptions substitutes for missing or malformed option sets.
// The matching answer index is forced to 0.
var placeholderOptions = []string{"Option A", "Option B", "Option C", "Option D"}

// Normalize parses raw provider text into canonical questions.
//
// Providers sometimes wrap JSON in prose or an envelope object, so the
// first array-shaped substring is extracted before parsing. Every
// per-question field is repaired or defaulted rather than rejected:
// ids are renumbered from 1, type coerces to multiple-choice unless
// explicitly numeric, weight to 1 unless exactly 2, broken option sets
// and out-of-range answer indexes are substituted, missing topics cycle
// through the topic pool by position, and explanations survive only when
// present and requested. At most expected questions are returned.
func Normalize(raw string, expected int, topics []string, includeExplanations bool) ([]Question, error) {
	arrText, err := extractArray(raw)
	if err != nil {
		return nil, &MalformedOutputError{Err: err}
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(arrText), &items); err != nil {
		return nil, &MalformedOutputError{Err: fmt.Errorf("parse array: %w", err)}
	}

	if len(topics) == 0 {
		topics = defaultTopicPool
	}

	var out []Question
	for i, item := range items {
		if len(out) >= expected {
			break
		}
		out = append(out, normalizeItem(item, i, topics, includeExplanations))
	}
	return out, nil
}

// extractArray returns the first array-shaped substring of raw: from the
// first '[' through the last ']'.
func extractArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON array found in output")
	}
	return raw[start : end+1], nil
}

func normalizeItem(item map[string]any, pos int, topics []string, includeExplanations bool) Question {
	q := Question{
		ID:     pos + 1,
		Type:   coerceType(item["type"]),
		Prompt: coercePrompt(item, pos),
		Weight: coerceWeight(item["weight"]),
		Topic:  coerceTopic(item["topic"], topics, pos),
	}

	if q.Type == TypeMultipleChoice {
		q.Options, q.AnswerIndex = coerceChoices(item)
	} else {
		q.AnswerValue = coerceNumericAnswer(item["answer"])
	}

	if includeExplanations {
		if s, ok := item["explanation"].(string); ok && s != "" {
			q.Explanation = s
		}
	}

	return q
}

// coerceType defaults to multiple-choice unless the item is explicitly
// marked numeric.
func coerceType(v any) QuestionType {
	s, _ := v.(string)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric", "numeric_answer", "numeric-answer":
		return TypeNumeric
	}
	return TypeMultipleChoice
}

func coercePrompt(item map[string]any, pos int) string {
	for _, key := range []string{"prompt", "question", "question_text"} {
		if s, ok := item[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fmt.Sprintf("Question %d", pos+1)
}

// coerceWeight accepts 2 and nothing else; everything else is 1.
func coerceWeight(v any) int {
	if f, ok := v.(float64); ok && f == 2 {
		return 2
	}
	return 1
}

func coerceTopic(v any, topics []string, pos int) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return topics[pos%len(topics)]
}

// coerceChoices returns a valid 4-option set and an in-range answer
// index, substituting placeholders when the provider's options are
// missing or malformed.
func coerceChoices(item map[string]any) ([]string, int) {
	opts := coerceOptions(item["options"])

	idx := -1
	switch a := item["answer"].(type) {
	case float64:
		idx = int(a)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(a)); err == nil {
			idx = n
		}
	}
	if idx < 0 || idx > 3 {
		idx = 0
	}
	return opts, idx
}

func coerceOptions(v any) []string {
	raw, ok := v.([]any)
	if !ok || len(raw) != 4 {
		return append([]string(nil), placeholderOptions...)
	}
	out := make([]string, 4)
	for i, o := range raw {
		s, ok := o.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return append([]string(nil), placeholderOptions...)
		}
		out[i] = s
	}
	return out
}

// coerceNumericAnswer accepts numbers and non-empty strings; anything
// else becomes "0".
func coerceNumericAnswer(v any) string {
	switch a := v.(type) {
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case string:
		if strings.TrimSpace(a) != "" {
			return a
		}
	}
	return "0"
}

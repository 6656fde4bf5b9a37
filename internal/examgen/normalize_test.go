package examgen

import (
	"errors"
	"testing"
)

var testTopics = []string{"algebra", "geometry"}

func TestNormalize_ProseWrappedArray(t *testing.T) {
	raw := `Here is your exam:
[
  {"type": "multiple_choice", "prompt": "Pick one", "options": ["a","b","c","d"], "answer": 2, "weight": 2, "topic": "algebra"},
  {"type": "numeric", "prompt": "What is 3+4?", "answer": 7, "topic": "arithmetic"}
]
Good luck!`

	qs, err := Normalize(raw, 5, testTopics, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}

	if qs[0].Type != TypeMultipleChoice || qs[0].AnswerIndex != 2 || qs[0].Weight != 2 {
		t.Fatalf("first question not normalized as expected: %+v", qs[0])
	}
	if qs[1].Type != TypeNumeric || qs[1].AnswerValue != "7" {
		t.Fatalf("second question not normalized as expected: %+v", qs[1])
	}
}

func TestNormalize_ObjectEnvelope(t *testing.T) {
	raw := `{"questions": [{"prompt": "Pick", "options": ["a","b","c","d"], "answer": 1}]}`

	qs, err := Normalize(raw, 3, testTopics, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].AnswerIndex != 1 {
		t.Fatalf("expected answer index 1, got %d", qs[0].AnswerIndex)
	}
}

func TestNormalize_NoArrayFails(t *testing.T) {
	for _, raw := range []string{"", "no json here", `{"foo": "bar"}`} {
		_, err := Normalize(raw, 5, testTopics, true)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		var malformed *MalformedOutputError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedOutputError, got %T", err)
		}
	}
}

func TestNormalize_UnparseableArrayFails(t *testing.T) {
	_, err := Normalize(`[{"prompt": }]`, 5, testTopics, true)
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestNormalize_RepairsMalformedFields(t *testing.T) {
	// Every field broken: options too short, answer out of range, weight
	// nonsense, no topic, no prompt.
	raw := `[{"options": ["only", "two"], "answer": 9, "weight": 3}]`

	qs, err := Normalize(raw, 5, testTopics, true)
	if err != nil {
		t.Fatalf("salvageable array must not fail: %v", err)
	}

	q := qs[0]
	if q.Type != TypeMultipleChoice {
		t.Fatalf("type should coerce to multiple_choice, got %s", q.Type)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected placeholder 4-option set, got %v", q.Options)
	}
	if q.AnswerIndex != 0 {
		t.Fatalf("out-of-range answer should substitute 0, got %d", q.AnswerIndex)
	}
	if q.Weight != 1 {
		t.Fatalf("weight should coerce to 1, got %d", q.Weight)
	}
	if q.Topic != "algebra" {
		t.Fatalf("missing topic should cycle the pool, got %q", q.Topic)
	}
	if q.Prompt == "" {
		t.Fatal("prompt should be defaulted, got empty")
	}
}

func TestNormalize_NumericAnswerFallback(t *testing.T) {
	raw := `[
  {"type": "numeric", "prompt": "a", "answer": {"nested": true}},
  {"type": "numeric", "prompt": "b", "answer": "twelve"}
]`

	qs, err := Normalize(raw, 5, testTopics, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].AnswerValue != "0" {
		t.Fatalf("non-numeric non-text answer should substitute \"0\", got %q", qs[0].AnswerValue)
	}
	if qs[1].AnswerValue != "twelve" {
		t.Fatalf("text answers pass through, got %q", qs[1].AnswerValue)
	}
	if qs[0].Options != nil || qs[1].Options != nil {
		t.Fatal("numeric questions must not carry options")
	}
}

func TestNormalize_RenumbersIDsAndTruncates(t *testing.T) {
	raw := `[
  {"id": 42, "prompt": "a", "options": ["a","b","c","d"], "answer": 0},
  {"id": 42, "prompt": "b", "options": ["a","b","c","d"], "answer": 0},
  {"id": 7,  "prompt": "c", "options": ["a","b","c","d"], "answer": 0}
]`

	qs, err := Normalize(raw, 2, testTopics, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("ids must renumber from 1, got %d at position %d", q.ID, i)
		}
	}
}

func TestNormalize_TopicCycling(t *testing.T) {
	raw := `[
  {"prompt": "a", "options": ["a","b","c","d"], "answer": 0},
  {"prompt": "b", "options": ["a","b","c","d"], "answer": 0},
  {"prompt": "c", "options": ["a","b","c","d"], "answer": 0}
]`

	qs, err := Normalize(raw, 5, []string{"x", "y"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"x", "y", "x"}
	for i, q := range qs {
		if q.Topic != want[i] {
			t.Fatalf("position %d: expected topic %q, got %q", i, want[i], q.Topic)
		}
	}
}

func TestNormalize_ExplanationOnlyWhenRequested(t *testing.T) {
	raw := `[{"prompt": "a", "options": ["a","b","c","d"], "answer": 0, "explanation": "because"}]`

	withExp, err := Normalize(raw, 5, testTopics, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withExp[0].Explanation != "because" {
		t.Fatalf("expected explanation preserved, got %q", withExp[0].Explanation)
	}

	withoutExp, err := Normalize(raw, 5, testTopics, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withoutExp[0].Explanation != "" {
		t.Fatalf("explanation must be dropped when not requested, got %q", withoutExp[0].Explanation)
	}
}

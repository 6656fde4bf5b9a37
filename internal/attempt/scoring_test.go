package attempt

import (
	"strconv"
	"testing"

	"github.com/sidverma/prepquiz/internal/examgen"
)

func mcQuestion(id, answer int, topic string) examgen.Question {
	return examgen.Question{
		ID:          id,
		Type:        examgen.TypeMultipleChoice,
		Prompt:      "pick one",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: answer,
		Weight:      1,
		Topic:       topic,
	}
}

func numQuestion(id int, answer, topic string) examgen.Question {
	return examgen.Question{
		ID:          id,
		Type:        examgen.TypeNumeric,
		Prompt:      "compute",
		AnswerValue: answer,
		Weight:      1,
		Topic:       topic,
	}
}

func TestGrade_AllCorrectEqualsTotal(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(1, 2, "algebra"),
		numQuestion(2, "12", "geometry"),
		mcQuestion(3, 0, "algebra"),
	}
	answers := map[string]any{
		"1": float64(2),
		"2": "12",
		"3": float64(0),
	}

	res := grade(questions, answers)
	if res.Score != 3 {
		t.Fatalf("expected full score 3, got %d", res.Score)
	}
	if len(res.Mistakes) != 0 {
		t.Fatalf("expected no mistakes, got %v", res.Mistakes)
	}
}

func TestGrade_EmptySubmissionScoresZero(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(1, 2, "algebra"),
		numQuestion(2, "12", "geometry"),
	}

	res := grade(questions, map[string]any{})
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %d", res.Score)
	}
	if len(res.Mistakes) != len(questions) {
		t.Fatalf("every question must appear in mistakes, got %d", len(res.Mistakes))
	}
	for i, m := range res.Mistakes {
		if m.Yours != "blank" {
			t.Fatalf("mistake %d: unanswered must render \"blank\", got %q", i, m.Yours)
		}
	}
}

func TestGrade_NumericTolerance(t *testing.T) {
	q := []examgen.Question{numQuestion(1, "12", "algebra")}

	cases := []struct {
		answer  any
		correct bool
	}{
		{11.995, true},
		{"11.995", true},
		{12.0099, true},
		{12.02, false},
		{"11.98", false},
		{"twelve", false},
		{nil, false},
	}
	for _, tc := range cases {
		res := grade(q, map[string]any{"1": tc.answer})
		if (res.Score == 1) != tc.correct {
			t.Fatalf("answer %v: expected correct=%t", tc.answer, tc.correct)
		}
	}
}

func TestGrade_MultipleChoiceExactIndex(t *testing.T) {
	q := []examgen.Question{mcQuestion(1, 2, "algebra")}

	cases := []struct {
		answer  any
		correct bool
	}{
		{float64(2), true},
		{"2", true},
		{float64(1), false},
		{"c", false},
		{2.5, false},
	}
	for _, tc := range cases {
		res := grade(q, map[string]any{"1": tc.answer})
		if (res.Score == 1) != tc.correct {
			t.Fatalf("answer %v: expected correct=%t", tc.answer, tc.correct)
		}
	}
}

func TestGrade_ScoreNeverExceedsTotal(t *testing.T) {
	questions := make([]examgen.Question, 0, 10)
	answers := map[string]any{}
	for i := 1; i <= 10; i++ {
		questions = append(questions, mcQuestion(i, 1, "algebra"))
		answers[strconv.Itoa(i)] = float64(1)
	}
	// Stray answers for ids that do not exist must not inflate the score.
	answers["99"] = float64(1)

	res := grade(questions, answers)
	if res.Score != 10 {
		t.Fatalf("expected score 10, got %d", res.Score)
	}
}

func TestGrade_MistakeCarriesCorrectAndTopic(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(1, 3, "algebra"),
		numQuestion(2, "7", "geometry"),
	}
	res := grade(questions, map[string]any{"1": float64(0), "2": "8"})

	if len(res.Mistakes) != 2 {
		t.Fatalf("expected 2 mistakes, got %d", len(res.Mistakes))
	}
	if res.Mistakes[0].Correct != "3" || res.Mistakes[0].Topic != "algebra" || res.Mistakes[0].Yours != "0" {
		t.Fatalf("unexpected MC mistake: %+v", res.Mistakes[0])
	}
	if res.Mistakes[1].Correct != "7" || res.Mistakes[1].Yours != "8" {
		t.Fatalf("unexpected numeric mistake: %+v", res.Mistakes[1])
	}
}

func TestGrade_TopicCountersFollowEncounterOrder(t *testing.T) {
	questions := []examgen.Question{
		mcQuestion(1, 0, "geometry"),
		mcQuestion(2, 0, "algebra"),
		mcQuestion(3, 0, "geometry"),
	}
	res := grade(questions, map[string]any{"2": float64(0)})

	if len(res.Topics) != 2 {
		t.Fatalf("expected 2 topic entries, got %d", len(res.Topics))
	}
	if res.Topics[0].Topic != "geometry" || res.Topics[0].Attempted != 2 || res.Topics[0].Missed != 2 {
		t.Fatalf("unexpected geometry counters: %+v", res.Topics[0])
	}
	if res.Topics[1].Topic != "algebra" || res.Topics[1].Missed != 0 {
		t.Fatalf("unexpected algebra counters: %+v", res.Topics[1])
	}
}

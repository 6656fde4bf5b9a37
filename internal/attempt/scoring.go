package attempt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sidverma/prepquiz/internal/examgen"
)

// numericTolerance absorbs floating-point and representation noise in
// free-text numeric answers ("11.995" for 12 passes, "12.02" does not).
const numericTolerance = 0.01

// blankAnswer is how an unanswered question renders in mistakes.
const blankAnswer = "blank"

// topicStat accumulates per-topic counters during grading, in first
// encounter order over the question sequence.
type topicStat struct {
	Topic     string
	Attempted int
	Missed    int
}

// gradeResult is the ephemeral outcome of grading one submission.
// It is consumed by guidance and persistence, never stored itself.
type gradeResult struct {
	Score    int
	Mistakes []Mistake
	Topics   []topicStat
}

// grade scores every question against the submitted answers. Answers are
// looked up by question id rendered as text; a missing entry means
// unanswered. Grading never fails: non-coercible submissions are simply
// incorrect.
func grade(questions []examgen.Question, answers map[string]any) gradeResult {
	res := gradeResult{Mistakes: []Mistake{}}
	topicIdx := make(map[string]int)

	for _, q := range questions {
		sub, answered := answers[strconv.Itoa(q.ID)]

		i, ok := topicIdx[q.Topic]
		if !ok {
			i = len(res.Topics)
			topicIdx[q.Topic] = i
			res.Topics = append(res.Topics, topicStat{Topic: q.Topic})
		}
		res.Topics[i].Attempted++

		if answered && isCorrect(q, sub) {
			res.Score++
			continue
		}

		res.Topics[i].Missed++
		res.Mistakes = append(res.Mistakes, Mistake{
			ID:      q.ID,
			Topic:   q.Topic,
			Correct: correctAnswerText(q),
			Yours:   submittedAnswerText(sub, answered),
		})
	}

	return res
}

func isCorrect(q examgen.Question, sub any) bool {
	switch q.Type {
	case examgen.TypeMultipleChoice:
		n, ok := toNumber(sub)
		return ok && n == float64(q.AnswerIndex)
	default:
		want, okWant := toNumber(q.AnswerValue)
		got, okGot := toNumber(sub)
		return okWant && okGot && math.Abs(want-got) < numericTolerance
	}
}

// toNumber coerces a submitted value to float64. Strings are parsed;
// anything else fails coercion and grades as incorrect.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func correctAnswerText(q examgen.Question) string {
	if q.Type == examgen.TypeMultipleChoice {
		return strconv.Itoa(q.AnswerIndex)
	}
	return q.AnswerValue
}

func submittedAnswerText(sub any, answered bool) string {
	if !answered {
		return blankAnswer
	}
	return renderAnswer(sub)
}

// renderAnswer stringifies a submitted value for mistakes and storage.
func renderAnswer(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case int:
		return strconv.Itoa(a)
	case int64:
		return strconv.FormatInt(a, 10)
	case bool:
		return strconv.FormatBool(a)
	}
	return fmt.Sprintf("%v", v)
}

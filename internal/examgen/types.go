package examgen

// QuestionType describes how a question is answered.
type QuestionType string

const (
	// TypeMultipleChoice means the student picks one of 4 options.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeNumeric means the student types a numeric (or short text) answer.
	TypeNumeric QuestionType = "numeric"
)

// Question is the canonical question representation every generation
// path converges to: provider output after normalization, and the local
// bank directly.
//
// Invariants: multiple-choice questions carry exactly 4 options and an
// AnswerIndex in [0,3]; numeric questions carry no options and hold the
// canonical answer in AnswerValue.
type Question struct {
	// ID is positive and unique within an attempt, numbered from 1.
	ID int `json:"id"`

	Type   QuestionType `json:"type"`
	Prompt string       `json:"prompt"`

	// Options is populated only for multiple-choice questions.
	Options []string `json:"options,omitempty"`

	// AnswerIndex is the correct option index (multiple-choice only).
	AnswerIndex int `json:"answer_index"`

	// AnswerValue is the correct answer (numeric questions only).
	AnswerValue string `json:"answer_value,omitempty"`

	// Weight is 1 or 2.
	Weight int `json:"weight"`

	// Topic is the topic tag guidance aggregates over.
	Topic string `json:"topic"`

	// Explanation is optional and only present when requested.
	Explanation string `json:"explanation,omitempty"`
}

// Difficulty is the requested exam difficulty spread.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// ValidDifficulty reports whether d is a recognized difficulty.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return true
	}
	return false
}

// Question count bounds for a mock exam.
const (
	MinQuestions = 5
	MaxQuestions = 65

	// DefaultQuestions is used when the caller does not ask for a count.
	DefaultQuestions = 10

	// fullExamThreshold marks a full-length exam; token budgets double
	// past it to avoid truncated generation.
	fullExamThreshold = 50
)

// ClampCount clamps a requested question count to [MinQuestions, MaxQuestions].
func ClampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// defaultTopicPool is cycled through when the caller supplies no topic
// hints and a provider omits per-question topics.
var defaultTopicPool = []string{
	"arithmetic",
	"algebra",
	"geometry",
	"data_analysis",
	"reading_comprehension",
	"logical_reasoning",
}

// Options describes one exam generation request.
type Options struct {
	// Topics are the caller's topic hints. Empty means the default pool.
	Topics []string

	// Count is the requested question count. Zero means DefaultQuestions;
	// always clamped to [MinQuestions, MaxQuestions].
	Count int

	// Difficulty defaults to mixed.
	Difficulty Difficulty

	// IncludeExplanations controls whether questions carry explanations.
	IncludeExplanations bool
}

// DefaultOptions returns the standard generation request.
func DefaultOptions() Options {
	return Options{
		Count:               DefaultQuestions,
		Difficulty:          DifficultyMixed,
		IncludeExplanations: true,
	}
}

// withDefaults fills zero values and clamps the count.
func (o Options) withDefaults() Options {
	if o.Count == 0 {
		o.Count = DefaultQuestions
	}
	o.Count = ClampCount(o.Count)
	if o.Difficulty == "" || !ValidDifficulty(o.Difficulty) {
		o.Difficulty = DifficultyMixed
	}
	if len(o.Topics) == 0 {
		o.Topics = defaultTopicPool
	}
	return o
}

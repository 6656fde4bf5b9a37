package examgen

import (
	"fmt"
	"strings"
)

// The local bank is the availability guarantee of last resort: a caller
// with zero configured providers and zero network access still gets a
// usable exam. Templates are cycled by position, so output is fully
// deterministic for a given (count, topics, includeExplanations).

type mcTemplate struct {
	prompt  string
	options [4]string
	answer  int
}

type numTemplate struct {
	prompt string
	answer string
}

var mcBank = []mcTemplate{
	{
		prompt: "Which study approach is most effective when preparing for a %s exam?",
		options: [4]string{
			"Short spaced practice sessions with self-testing",
			"One long review session the night before",
			"Rereading notes without answering questions",
			"Memorizing answers to a single practice test",
		},
		answer: 0,
	},
	{
		prompt: "A practice test in %s has 40 questions worth 1 point and 10 worth 2 points. What is the maximum score?",
		options: [4]string{"50", "60", "40", "80"},
		answer: 1,
	},
	{
		prompt: "You answered 18 of 24 %s questions correctly. Which fraction of the test is that?",
		options: [4]string{"2/3", "3/4", "4/5", "5/6"},
		answer: 1,
	},
	{
		prompt: "Which of the following best indicates weak mastery of %s?",
		options: [4]string{
			"Consistently fast, correct answers",
			"Repeated misses on questions from the same topic",
			"A single careless slip on an easy question",
			"Finishing the exam with time to spare",
		},
		answer: 1,
	},
	{
		prompt: "During a timed %s section, what is the best response to a question you cannot solve quickly?",
		options: [4]string{
			"Spend as long as it takes to solve it",
			"Leave the entire section blank",
			"Mark it, move on, and return if time remains",
			"Change earlier answers instead",
		},
		answer: 2,
	},
}

var numBank = []numTemplate{
	{
		prompt: "If you answer 3 out of 4 %s questions correctly, what percentage did you get right?",
		answer: "75",
	},
	{
		prompt: "A %s drill has 20 questions and you solve 5 per minute. How many minutes does the drill take?",
		answer: "4",
	},
	{
		prompt: "You scored 42 out of 60 on a %s test. How many questions did you miss?",
		answer: "18",
	},
	{
		prompt: "A %s session runs 90 minutes with a 15 minute break. How many minutes of actual practice is that?",
		answer: "75",
	},
	{
		prompt: "Your %s scores over three tests were 70, 80, and 90. What is your average score?",
		answer: "80",
	},
}

// GenerateLocal deterministically synthesizes a mock exam from the fixed
// template bank. It never fails and makes no external calls. Count is
// clamped to [MinQuestions, MaxQuestions]; question types alternate by
// position and every third question carries weight 2.
func GenerateLocal(count int, topics []string, includeExplanations bool) []Question {
	count = ClampCount(count)
	if len(topics) == 0 {
		topics = defaultTopicPool
	}

	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[i%len(topics)]

		q := Question{
			ID:     i + 1,
			Weight: 1,
			Topic:  topic,
		}
		if (i+1)%3 == 0 {
			q.Weight = 2
		}

		if i%2 == 0 {
			t := mcBank[(i/2)%len(mcBank)]
			q.Type = TypeMultipleChoice
			q.Prompt = fmt.Sprintf(t.prompt, humanTopic(topic))
			q.Options = append([]string(nil), t.options[:]...)
			q.AnswerIndex = t.answer
		} else {
			t := numBank[(i/2)%len(numBank)]
			q.Type = TypeNumeric
			q.Prompt = fmt.Sprintf(t.prompt, humanTopic(topic))
			q.AnswerValue = t.answer
		}

		if includeExplanations {
			q.Explanation = fmt.Sprintf(
				"Work through the %s question step by step, then review the underlying concept before retrying similar drills.",
				humanTopic(topic),
			)
		}

		out = append(out, q)
	}
	return out
}

// humanTopic renders a topic tag for display in prompts and guidance.
func humanTopic(topic string) string {
	return strings.ReplaceAll(topic, "_", " ")
}

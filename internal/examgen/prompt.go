package examgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exam author producing mock exams for a study app.

Rules:
- Produce exactly the requested number of questions as a JSON array. No prose before or after the array.
- Each question object has: "type" ("multiple_choice" or "numeric"), "prompt", "options", "answer", "weight" (1 or 2), "topic", "explanation".
- For multiple_choice: "options" holds exactly 4 strings and "answer" is the 0-based index of the correct option. Distractors should reflect plausible mistakes, not random values.
- For numeric: omit "options" and put the correct value in "answer" as a number or short string.
- Use plain ASCII text. Questions must be self-contained and unambiguous.
- Spread questions across the given topics and use the topic tags verbatim.
- Match the requested difficulty; "mixed" means an even spread from easy to hard.`

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(opts Options, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	fmt.Fprintf(&b, "Difficulty: %s\n", opts.Difficulty)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(opts.Topics, ", "))

	if opts.IncludeExplanations {
		b.WriteString("Include a brief worked explanation for every question.\n")
	} else {
		b.WriteString("Do not include explanations.\n")
	}

	return b.String()
}

// maxTokensFor scales the response budget with the question count; the
// threshold doubles for full-length exams so generation is not truncated.
func maxTokensFor(count int) int {
	if count >= fullExamThreshold {
		return 8192
	}
	return 4096
}

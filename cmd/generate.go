package cmd

import (
	"fmt"
	"strings"

	"github.com/sidverma/prepquiz/internal/attempt"
	"github.com/sidverma/prepquiz/internal/examgen"
	"github.com/sidverma/prepquiz/internal/llm"
	"github.com/sidverma/prepquiz/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mock exam and open an attempt",
	Long: "Generates questions through the provider cascade (OpenAI, Gemini,\n" +
		"Anthropic, OpenRouter, then the built-in bank) and opens a new attempt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		topicsCSV, _ := cmd.Flags().GetString("topics")
		explanations, _ := cmd.Flags().GetBool("explanations")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		opts := examgen.Options{
			Count:               count,
			Difficulty:          examgen.Difficulty(difficulty),
			IncludeExplanations: explanations,
		}
		if topicsCSV != "" {
			for _, t := range strings.Split(topicsCSV, ",") {
				if t = strings.TrimSpace(t); t != "" {
					opts.Topics = append(opts.Topics, t)
				}
			}
		}
		if opts.Difficulty != "" && !examgen.ValidDifficulty(opts.Difficulty) {
			return fmt.Errorf("invalid difficulty %q (easy, medium, hard, mixed)", difficulty)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		cascade := examgen.NewCascade(llm.ConfigFromEnv(), s.EventRepo())
		questions := cascade.Generate(ctx, opts)

		if dryRun {
			printQuestions(questions, true)
			return nil
		}

		user, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		svc := attempt.NewService(s.AttemptRepo())
		att, err := svc.Create(ctx, user, questions)
		if err != nil {
			return fmt.Errorf("create attempt: %w", err)
		}

		fmt.Printf("Attempt %s opened with %d questions.\n\n", att.ID, att.TotalQuestions)
		printQuestions(att.Questions, false)
		fmt.Printf("\nSubmit with: prepquiz submit %s --answers '{\"1\": 0, ...}' --duration <seconds>\n", att.ID)
		return nil
	},
}

// printQuestions renders an exam for the terminal. Answers and
// explanations are only shown for dry runs.
func printQuestions(questions []examgen.Question, withAnswers bool) {
	for _, q := range questions {
		weight := ""
		if q.Weight == 2 {
			weight = " (2 pts)"
		}
		fmt.Printf("%d. [%s]%s %s\n", q.ID, q.Topic, weight, q.Prompt)
		if q.Type == examgen.TypeMultipleChoice {
			for i, opt := range q.Options {
				fmt.Printf("   %d) %s\n", i, opt)
			}
		}
		if withAnswers {
			if q.Type == examgen.TypeMultipleChoice {
				fmt.Printf("   answer: %d\n", q.AnswerIndex)
			} else {
				fmt.Printf("   answer: %s\n", q.AnswerValue)
			}
			if q.Explanation != "" {
				fmt.Printf("   why: %s\n", q.Explanation)
			}
		}
	}
}

func init() {
	generateCmd.Flags().IntP("count", "n", examgen.DefaultQuestions, "Number of questions (clamped to 5-65)")
	generateCmd.Flags().StringP("difficulty", "d", "mixed", "Difficulty: easy, medium, hard, or mixed")
	generateCmd.Flags().StringP("topics", "t", "", "Comma-separated topic hints")
	generateCmd.Flags().Bool("explanations", true, "Include per-question explanations")
	generateCmd.Flags().Bool("dry-run", false, "Print the generated exam with answers instead of opening an attempt")
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sidverma/prepquiz/internal/attempt"
	"github.com/sidverma/prepquiz/internal/store"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <attempt-id>",
	Short: "Submit answers for an open attempt",
	Long: "Grades the attempt and prints the score, mistakes, and study\n" +
		"guidance. Answers are a JSON object keyed by question id, e.g.\n" +
		`{"1": 2, "2": 11.5}; pass a literal object or @file to read one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answersArg, _ := cmd.Flags().GetString("answers")
		duration, _ := cmd.Flags().GetFloat64("duration")
		asJSON, _ := cmd.Flags().GetBool("json")

		answers, err := parseAnswers(answersArg)
		if err != nil {
			return err
		}

		user, err := resolveUser(cmd)
		if err != nil {
			return err
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

		svc := attempt.NewService(s.AttemptRepo())
		result, err := svc.Submit(cmd.Context(), user, args[0], answers, duration)
		if err != nil {
			switch {
			case errors.Is(err, attempt.ErrNotFound):
				return fmt.Errorf("attempt %s not found", args[0])
			case errors.Is(err, attempt.ErrNotAuthorized):
				return fmt.Errorf("attempt %s belongs to another user", args[0])
			case errors.Is(err, attempt.ErrAlreadySubmitted):
				return fmt.Errorf("attempt %s was already submitted", args[0])
			}
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printResult(result)
		return nil
	},
}

// parseAnswers decodes the answers argument, which is either a JSON
// object literal or @path to a file holding one.
func parseAnswers(arg string) (map[string]any, error) {
	if arg == "" {
		return map[string]any{}, nil
	}

	raw := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		raw = data
	}

	var answers map[string]any
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func printResult(result *attempt.Result) {
	fmt.Printf("Score: %d / %d\n", result.Score, result.Total)

	if len(result.Mistakes) > 0 {
		fmt.Println("\nMistakes")
		fmt.Println(strings.Repeat("─", 60))
		for _, m := range result.Mistakes {
			fmt.Printf("  Q%-3d %-22s correct: %-10s yours: %s\n", m.ID, m.Topic, m.Correct, m.Yours)
		}
	}

	if len(result.WeakTopics) > 0 {
		fmt.Printf("\nWeak topics: %s\n", strings.Join(result.WeakTopics, ", "))
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions")
		for _, sug := range result.Suggestions {
			fmt.Printf("  - %s\n", sug)
		}
	}
}

func init() {
	submitCmd.Flags().StringP("answers", "a", "", "Answers as a JSON object or @file")
	submitCmd.Flags().Float64P("duration", "s", 0, "Time taken in seconds")
	submitCmd.Flags().Bool("json", false, "Print the result as JSON")
}

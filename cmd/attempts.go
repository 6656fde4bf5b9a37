package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sidverma/prepquiz/internal/attempt"
	"github.com/sidverma/prepquiz/internal/store"
	"github.com/spf13/cobra"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "List your recent exam attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		attempts, err := svc.List(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts yet. Start one with: prepquiz generate")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-9s  %-7s  %s\n",
			"ID", "Created", "State", "Score", "Weak Topics")
		fmt.Println(strings.Repeat("─", 100))
		for _, a := range attempts {
			score := "-"
			if a.State == attempt.StateSubmitted {
				score = fmt.Sprintf("%d/%d", a.Score, a.TotalQuestions)
			}
			fmt.Printf("%-36s  %-19s  %-9s  %-7s  %s\n",
				a.ID,
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				a.State,
				score,
				strings.Join(a.WeakTopics, ", "),
			)
		}
		return nil
	},
}

var attemptsViewCmd = &cobra.Command{
	Use:   "view <attempt-id>",
	Short: "View one attempt in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		a, err := svc.Get(cmd.Context(), user, args[0])
		if err != nil {
			switch {
			case errors.Is(err, attempt.ErrNotFound):
				return fmt.Errorf("attempt %s not found", args[0])
			case errors.Is(err, attempt.ErrNotAuthorized):
				return fmt.Errorf("attempt %s belongs to another user", args[0])
			}
			return err
		}

		fmt.Printf("ID:       %s\n", a.ID)
		fmt.Printf("State:    %s\n", a.State)
		fmt.Printf("Created:  %s\n", a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if a.State == attempt.StateSubmitted {
			fmt.Printf("Score:    %d / %d\n", a.Score, a.TotalQuestions)
			fmt.Printf("Duration: %ds\n", a.DurationSeconds)
			if len(a.WeakTopics) > 0 {
				fmt.Printf("Weak:     %s\n", strings.Join(a.WeakTopics, ", "))
			}
		}
		fmt.Println()
		printQuestions(a.Questions, a.State == attempt.StateSubmitted)
		return nil
	},
}

func init() {
	attemptsCmd.AddCommand(attemptsViewCmd)
}

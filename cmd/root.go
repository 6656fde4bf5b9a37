package cmd

import (
	"os"

	"github.com/sidverma/prepquiz/internal/attempt"
	"github.com/sidverma/prepquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepquiz",
	Short: "AI-powered mock exam generator and grader",
	Long: "Prepquiz generates timed mock exams with an LLM provider cascade,\n" +
		"grades submissions, and points you at your weakest topics.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPQUIZ_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Acting user id (overrides PREPQUIZ_USER env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(attemptsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the acting user id from --user or PREPQUIZ_USER.
// Every attempt operation requires one.
func resolveUser(cmd *cobra.Command) (string, error) {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u, nil
	}
	if u := os.Getenv("PREPQUIZ_USER"); u != "" {
		return u, nil
	}
	return "", attempt.ErrAuthRequired
}

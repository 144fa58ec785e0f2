// Package cmd contains the CLI entry points.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lern",
	Short: "AI question generation service for exam prep",
	Long: `lern is the AI orchestration service behind the exam-prep platform.
It generates practice questions, analyzes test results, builds study plans,
and streams tutoring chat, with an offline fallback question bank for when
the AI provider is unavailable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; production configures via real env vars.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

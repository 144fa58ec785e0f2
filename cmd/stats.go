package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

var (
	statsDBPath string
	statsDays   int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded LLM usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsDBPath, "db", "", "SQLite path for usage events (default: user state dir)")
	statsCmd.Flags().IntVar(&statsDays, "days", 30, "window in days")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command) error {
	dbPath := statsDBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening event store: %w", err)
	}
	defer st.Close()

	since := time.Now().AddDate(0, 0, -statsDays)
	sum, err := st.EventRepo().Summary(cmd.Context(), since)
	if err != nil {
		return err
	}

	fmt.Printf("LLM usage over the last %d days\n\n", statsDays)
	fmt.Printf("Requests:       %d (%d failed)\n", sum.TotalRequests, sum.FailedCount)
	fmt.Printf("Input tokens:   %d\n", sum.InputTokens)
	fmt.Printf("Output tokens:  %d\n", sum.OutputTokens)
	fmt.Printf("Avg latency:    %.0f ms\n", sum.AvgLatencyMs)

	if len(sum.ByModel) > 0 {
		fmt.Println("\nBy model:")
		var total float64
		for _, m := range sum.ByModel {
			line := fmt.Sprintf("  %-28s %6d req  in=%d out=%d", m.Model, m.Requests, m.InputTokens, m.OutputTokens)
			if c := llm.LookupCost(m.Model); c != nil {
				cost := c.Cost(m.InputTokens, m.OutputTokens)
				total += cost
				line += fmt.Sprintf("  $%.4f", cost)
			}
			fmt.Println(line)
		}
		if total > 0 {
			fmt.Printf("\nEstimated cost: $%.4f\n", total)
		}
	}

	if len(sum.ByPurpose) > 0 {
		fmt.Println("\nBy purpose:")
		for _, p := range sum.ByPurpose {
			fmt.Printf("  %-24s %6d req  %d failed\n", p.Purpose, p.Requests, p.Failed)
		}
	}
	return nil
}

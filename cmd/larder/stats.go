package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsRepeat int

var statsCmd = &cobra.Command{
	Use:   "stats [customer-id]",
	Short: "Show cache statistics after repeated fetches",
	Long: `Fetch the full composite view for a customer several times and print
the resulting cache counters: hits, misses, hit rate, entry count, and the
approximate memory footprint.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsRepeat, "repeat", 3, "number of composite fetches to issue")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	date := "2025-07-29"
	for i := 0; i < statsRepeat; i++ {
		client.CustomerOverview(ctx, args[0], date, "gangnam")
	}

	st := client.Stats()
	fmt.Printf("Hits:     %d\n", st.Hits)
	fmt.Printf("Misses:   %d\n", st.Misses)
	fmt.Printf("Hit rate: %.1f%%\n", st.HitRate()*100)
	fmt.Printf("Entries:  %d\n", st.Entries)
	fmt.Printf("Memory:   %s (approximate)\n", formatBytes(st.MemoryBytes))

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

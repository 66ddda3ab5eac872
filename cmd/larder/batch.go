package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [customer-id...]",
	Short: "Batch-fetch customer profiles with bounded concurrency",
	Long: `Fetch several customer profiles in consecutive groups of at most
--concurrency fetches. Groups run strictly one after another; fetches
within a group run in parallel. Results come back in input order and a
failing fetch never aborts its siblings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	batch := client.BatchCustomers(context.Background(), args)

	for i, res := range batch.Results {
		printResult(args[i], res.Ok(), res.FromCache, res.Elapsed, res.Err)
	}
	fmt.Printf("\n%d ok, %d failed in %s (hit rate %.0f%%)\n",
		batch.Successes, batch.Failures,
		batch.Elapsed.Round(time.Millisecond), batch.CacheHitRate*100)

	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots [date]",
	Short: "Show open booking slots for a date",
	Long: `Show the clinic's open booking slots for a date (YYYY-MM-DD).

Slots are the most volatile entity type and stay cached for only 30
seconds.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlots,
}

func init() {
	rootCmd.AddCommand(slotsCmd)
}

func runSlots(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	res := client.TimeSlots(context.Background(), args[0])
	if !res.Ok() {
		return fmt.Errorf("fetching slots: %w", res.Err)
	}

	fmt.Printf("Open slots on %s:\n", args[0])
	for _, slot := range res.Value {
		fmt.Printf("  %s\n", slot.Range)
	}
	return nil
}

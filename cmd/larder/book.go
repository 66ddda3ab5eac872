package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder/mocksource"
)

var (
	bookDate      string
	bookSlot      string
	bookTreatment string
)

var bookCmd = &cobra.Command{
	Use:   "book [customer-id]",
	Short: "Book a treatment appointment (mock backend)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookDate, "date", time.Now().Format("2006-01-02"), "appointment date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookSlot, "slot", "9-11", "time range, e.g. 9-11")
	bookCmd.Flags().StringVar(&bookTreatment, "treatment", "Hydrafacial", "treatment name")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
	}
	src := mocksource.New(
		mocksource.WithLatency(latency),
		mocksource.WithLogger(logger),
	)

	appt, err := src.Schedule(context.Background(), args[0], bookDate, bookSlot, bookTreatment)
	if err != nil {
		return fmt.Errorf("booking: %w", err)
	}

	fmt.Printf("Booked %s\n", appt.Treatment)
	fmt.Printf("  ID:       %s\n", appt.AppointmentID)
	fmt.Printf("  When:     %s %s\n", appt.Date, appt.Time)
	fmt.Printf("  Where:    %s\n", appt.Location)
	fmt.Printf("  Doctor:   %s\n", appt.Doctor)
	fmt.Printf("  Status:   %s\n", appt.Status)
	return nil
}

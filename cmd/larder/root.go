package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder"
	"github.com/elitebeauty/larder/mocksource"
)

var (
	// Global flags.
	verbose     bool
	concurrency int
	timeout     time.Duration
	cacheSize   int
	latency     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Cache-aware fetches for beauty clinic service data",
	Long: `Larder fetches clinic service data (customer profiles, appointments,
treatment history, reviews, booking slots) through an in-memory TTL cache
with bounded batch concurrency.

The CLI runs against a built-in mock backend with configurable latency,
which makes cache hits and misses easy to observe.

Examples:
  # Composite fetch for one customer
  larder overview c1 --date 2025-07-29

  # Batch-fetch five customers with bounded concurrency
  larder batch c1 c2 c3 c4 c5 --concurrency 2

  # Open slots for a date
  larder slots 2025-07-29

  # Fetch twice and show hit-rate statistics
  larder stats c1`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 4, "max concurrent fetches per batch group")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "per-operation timeout")
	rootCmd.PersistentFlags().IntVar(&cacheSize, "cache-size", 1000, "max cached entries")
	rootCmd.PersistentFlags().DurationVar(&latency, "latency", 150*time.Millisecond, "simulated backend latency")
}

// newClient builds a mock-backed client from the global flags.
func newClient() (*larder.Client, error) {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	client, err := larder.New(
		larder.WithSource(mocksource.New(
			mocksource.WithLatency(latency),
			mocksource.WithLogger(logger.Named("mocksource")),
		)),
		larder.WithMaxConcurrency(concurrency),
		larder.WithOperationTimeout(timeout),
		larder.WithMaxCacheEntries(cacheSize),
		larder.WithLogger(logger.Named("larder")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return client, nil
}

// printResult renders one fetch outcome line.
func printResult(label string, ok bool, fromCache bool, elapsed time.Duration, err error) {
	switch {
	case !ok:
		fmt.Printf("%-14s FAIL   %v\n", label, err)
	case fromCache:
		fmt.Printf("%-14s OK     (cache)\n", label)
	default:
		fmt.Printf("%-14s OK     %s\n", label, elapsed.Round(time.Millisecond))
	}
}

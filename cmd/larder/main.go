// Package main provides the larder CLI for exercising the clinic data
// cache against the built-in mock backend.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

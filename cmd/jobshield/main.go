// Package main provides the entry point for the JobShield CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobshield",
	Short: "Fraud risk scoring for job postings",
	Long:  "JobShield scores job postings for fraud risk using weighted red-flag lexicons, linguistic analysis, and company domain reputation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the study-search CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "search_agent",
	Short: "Heuristic quiz-answering search engine",
	Long:  "search_agent answers multiple-choice questions against a reference document using deterministic keyword-evidence search, with no model calls.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-search/internal/parsing"
)

var detectCommand = &cobra.Command{
	Use:   "detect",
	Short: "Parse a question without solving it",
	Long:  `Detects whether the input is a multiple-choice question and prints the extracted question body, options and negative phrasing as JSON.`,
	RunE:  runDetectCmd,
}

var detectQuestion string

func init() {
	detectCommand.Flags().StringVarP(&detectQuestion, "question", "q", "", "Question text to parse")

	rootCmd.AddCommand(detectCommand)
}

func runDetectCmd(_ *cobra.Command, _ []string) error {
	if detectQuestion == "" {
		return fmt.Errorf("--question is required")
	}

	parsed := parsing.DetectQuizQuestion(detectQuestion)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(parsed)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/study-search/internal/logging"
	"github.com/jonathan/study-search/internal/schemas"
	"github.com/jonathan/study-search/internal/types"
)

// questionSetSchemaPath is where the batch input schema lives relative to the
// repository root.
const questionSetSchemaPath = "schemas/question_set.schema.json"

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Solve a set of questions against one document",
	Long: `Validates a question-set JSON file against its schema, solves every question
against the document concurrently and writes a JSON report.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath  string
	batchQuestions   string
	batchDocument    string
	batchOut         string
	batchConcurrency int
	batchChunkSize   int
	batchOverlap     int
	batchTopK        int
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVar(&batchQuestions, "questions", "", "Path to a question-set JSON file")
	batchCommand.Flags().StringVarP(&batchDocument, "document", "d", "", "Path to the document text file")
	batchCommand.Flags().StringVarP(&batchOut, "out", "o", "", "Write the report to this file instead of stdout")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Number of questions solved in parallel")
	batchCommand.Flags().IntVar(&batchChunkSize, "chunk-size", 0, "Window size in characters")
	batchCommand.Flags().IntVar(&batchOverlap, "overlap", 0, "Window overlap in characters")
	batchCommand.Flags().IntVar(&batchTopK, "top-k", 0, "Maximum number of hotspot windows to analyze")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, batchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("questions") {
		cfg.Questions = batchQuestions
	}
	if cmd.Flags().Changed("document") {
		cfg.Document = batchDocument
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = batchConcurrency
	}

	if cfg.Questions == "" {
		return fmt.Errorf("--questions is required (or set 'questions' in the config file)")
	}
	if cfg.Document == "" {
		return fmt.Errorf("--document is required (or set 'document' in the config file)")
	}

	logger := logging.New(cfg.LogLevel)

	// Validate the question set before doing any work.
	if schemaPath := schemas.ResolveSchemaPath(questionSetSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Questions); err != nil {
			return fmt.Errorf("question set is invalid: %w", err)
		}
	} else {
		logger.Warn().Str("schema", questionSetSchemaPath).Msg("schema not found, skipping validation")
	}

	data, err := os.ReadFile(cfg.Questions)
	if err != nil {
		return fmt.Errorf("failed to read question set: %w", err)
	}
	var set types.QuestionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("failed to parse question set: %w", err)
	}

	documentText, err := os.ReadFile(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	engine := engineFromConfig(cfg)
	report := types.BatchReport{
		Title:   set.Title,
		Total:   len(set.Questions),
		Results: make([]types.BatchItem, len(set.Questions)),
	}

	var group errgroup.Group
	group.SetLimit(cfg.Concurrency)
	for i, question := range set.Questions {
		group.Go(func() error {
			result := engine.Search(question, string(documentText))
			report.Results[i] = types.BatchItem{
				Index:    i,
				Question: question,
				Result:   result,
			}
			logger.Debug().Int("index", i).Str("answer", result.Answer).Msg("question solved")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, item := range report.Results {
		if item.Result.Method == types.MethodQuiz {
			report.Quiz++
		} else {
			report.Direct++
		}
	}
	logger.Info().Int("total", report.Total).Int("quiz", report.Quiz).Int("direct", report.Direct).Msg("batch complete")

	out := os.Stdout
	if batchOut != "" {
		f, err := os.Create(batchOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

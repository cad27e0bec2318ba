package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-search/internal/config"
	"github.com/jonathan/study-search/internal/observability"
	"github.com/jonathan/study-search/internal/search"
	"github.com/jonathan/study-search/internal/types"
)

var solveCommand = &cobra.Command{
	Use:   "solve",
	Short: "Answer a single question against a document",
	Long: `Parses a multiple-choice question, locates the most relevant passages in the
document, scores each option's evidentiary support and prints the answer with
a confidence estimate.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runSolveCmd,
}

var (
	solveConfigPath string
	solveQuestion   string
	solveDocument   string
	solveChunkSize  int
	solveOverlap    int
	solveTopK       int
	solveVerbose    bool
	solveJSON       bool
)

func init() {
	solveCommand.Flags().StringVar(&solveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	solveCommand.Flags().StringVarP(&solveQuestion, "question", "q", "", "Question text, including the answer options")
	solveCommand.Flags().StringVarP(&solveDocument, "document", "d", "", "Path to the document text file")
	solveCommand.Flags().IntVar(&solveChunkSize, "chunk-size", 0, "Window size in characters")
	solveCommand.Flags().IntVar(&solveOverlap, "overlap", 0, "Window overlap in characters")
	solveCommand.Flags().IntVar(&solveTopK, "top-k", 0, "Maximum number of hotspot windows to analyze")
	solveCommand.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Print detailed pipeline stages")
	solveCommand.Flags().BoolVar(&solveJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(solveCommand)
}

func runSolveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, solveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("document") {
		cfg.Document = solveDocument
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = solveVerbose
	}

	if solveQuestion == "" {
		return fmt.Errorf("--question is required")
	}
	if cfg.Document == "" {
		return fmt.Errorf("--document is required (or set 'document' in the config file)")
	}

	documentText, err := os.ReadFile(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	engine := engineFromConfig(cfg)
	parsed := engine.Detect(solveQuestion)

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintParsedQuestion(&parsed)
	}

	var result types.SearchResult
	if parsed.IsQuiz {
		var trace *search.Trace
		result, trace = engine.SolveQuizTraced(parsed, string(documentText))
		if cfg.Verbose {
			printer.PrintTrace(trace)
		}
	} else {
		result = engine.Search(solveQuestion, string(documentText))
	}

	if solveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer.PrintResult(&result)
	return nil
}

// loadMergedConfig loads the optional config file and merges pipeline flag
// overrides shared by the solve, batch and serve commands.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize, _ = cmd.Flags().GetInt("chunk-size")
	}
	if cmd.Flags().Changed("overlap") {
		cfg.Overlap, _ = cmd.Flags().GetInt("overlap")
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK, _ = cmd.Flags().GetInt("top-k")
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		LogLevel:    "info",
		Port:        8080,
		Concurrency: 4,
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// engineFromConfig builds a search engine with config tunables applied over
// the pipeline defaults.
func engineFromConfig(cfg config.Config) *search.Engine {
	engine := search.NewEngine()
	if cfg.ChunkSize > 0 {
		engine.ChunkSize = cfg.ChunkSize
	}
	if cfg.Overlap > 0 {
		engine.Overlap = cfg.Overlap
	}
	if cfg.TopK > 0 {
		engine.TopK = cfg.TopK
	}
	return engine
}

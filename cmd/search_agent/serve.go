package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-search/internal/logging"
	"github.com/jonathan/study-search/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the search engine over REST. Set
JWT_SECRET to require bearer-token authentication on the search endpoints.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
	serveLogLevel   string
	serveChunkSize  int
	serveOverlap    int
	serveTopK       int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCommand.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	serveCommand.Flags().IntVar(&serveChunkSize, "chunk-size", 0, "Window size in characters")
	serveCommand.Flags().IntVar(&serveOverlap, "overlap", 0, "Window overlap in characters")
	serveCommand.Flags().IntVar(&serveTopK, "top-k", 0, "Maximum number of hotspot windows to analyze")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = serveLogLevel
	}

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: engineFromConfig(cfg),
		Logger: logging.New(cfg.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Package main provides the CLI entry point for chertila.
package main

import (
	"fmt"
	"os"

	"github.com/chertila/chertila-go/internal/config"
	"github.com/chertila/chertila-go/internal/logger"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chertila",
		Short: "Draw scatter plots with a least squares line from text commands",
		Long: `chertila parses commands such as

  чертила "Зависимость скорости" {V(м/c),T(с)} [1,2 2,3 3,4] сетка погрешность(1,1)

and renders them as images, exports them as spreadsheets, or serves them
over HTTP and Telegram.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newRenderCmd(), newExportCmd(), newServeCmd())
	return rootCmd
}

// loadConfig reads configuration and initialises the global logger.
func loadConfig() (config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := logger.InitLogger(logger.Config{Level: cfg.LogLevel, Stage: cfg.Stage}); err != nil {
		return config.Config{}, fmt.Errorf("failed to initialise logger: %w", err)
	}
	return cfg, nil
}

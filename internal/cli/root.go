// Package cli defines Cobra command definitions for the policychat CLI.
// This file contains the root command, shared flags, and client wiring.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"policychat/internal/api"
	"policychat/internal/config"
	"policychat/internal/log"
	"policychat/internal/tui"
	"policychat/internal/tui/app"
)

var (
	serverURL string
	verbose   bool
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "policychat",
	Short: "Terminal client for the Climate Policy Intelligence Platform",
	Long: `policychat is a terminal client for a document-grounded climate policy
question-answering service. It keeps a running conversation, annotates
answers with source citations and confidence scores, and manages the
backend's document knowledge base.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the TUI if TTY, help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return tui.Run(app.New(cfg, client, logger))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildEnv loads the config and constructs the diagnostics logger and the
// backend client. The config file is optional; defaults apply without one.
func buildEnv() (*config.Config, *api.Client, *zap.Logger, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.ReadConfig(dir)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}

	logger := log.New(log.Options{
		Path:       cfg.LogPath(dir),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Debug:      verbose,
	})

	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.MaxResults, logger)
	return cfg, client, logger, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(initCmd)
}

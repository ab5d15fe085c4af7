// Command macro-tracker serves the nutrition log MCP tools over stdio or
// streamable HTTP, persisting the log as a single JSON file in a GitHub
// repository.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PeterBowles/Macro-Tracker/config"
	"github.com/PeterBowles/Macro-Tracker/logbook"
	"github.com/PeterBowles/Macro-Tracker/server"
	"github.com/PeterBowles/Macro-Tracker/store"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "macro-tracker",
	Short:        "MCP server for a GitHub-backed nutrition log",
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("macro-tracker version %s\n", version))
	rootCmd.AddCommand(newServeCmd())
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		RunE:  runServe,
	}

	cmd.Flags().String("config", "", "Path to YAML config file")
	cmd.Flags().String("transport", "", "Transport: stdio or http (overrides config)")
	cmd.Flags().String("addr", "", "Listen address for the http transport (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	transport, _ := cmd.Flags().GetString("transport")
	addr, _ := cmd.Flags().GetString("addr")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if transport != "" {
		cfg.Transport = transport
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	// Stdout carries the stdio transport; logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	st := store.NewGitHubStore(store.GitHubConfig{
		Token:  cfg.GitHub.Token,
		Owner:  cfg.GitHub.Owner,
		Repo:   cfg.GitHub.Repo,
		Path:   cfg.GitHub.Path,
		Branch: cfg.GitHub.Branch,
	})
	svc := logbook.NewService(st, logger)
	srv := server.New(svc, server.Options{Version: version, Logger: logger})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting macro-tracker",
		"version", version,
		"transport", cfg.Transport,
		"repo", cfg.GitHub.Owner+"/"+cfg.GitHub.Repo,
		"path", cfg.GitHub.Path,
		"branch", cfg.GitHub.Branch,
	)

	switch cfg.Transport {
	case config.TransportHTTP:
		return server.ServeHTTP(ctx, srv, cfg.HTTPAddr, logger)
	default:
		return server.ServeStdio(ctx, srv)
	}
}

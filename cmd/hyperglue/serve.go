package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/newthinker/hypergluex/internal/api"
	"github.com/newthinker/hypergluex/internal/config"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/newthinker/hypergluex/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE:  runServe,
}

var (
	servePort      int
	serveTemplates string
	serveWatch     bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveTemplates, "templates", "", "load templates from this directory instead of the embedded set")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload templates when files in --templates change")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize logger
	log := logger.Must(logger.Options{Development: debug})
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}
	applyServeFlags(cmd, cfg)

	// Flags may have changed the server section
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	bp, err := layout.ParseBreakpoint(cfg.UI.Breakpoint)
	if err != nil {
		return err
	}

	log.Info("starting HyperGlueX server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("breakpoint", string(bp)),
		zap.Bool("watch", cfg.Server.Watch),
	)

	server, err := api.NewServer(api.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		TemplatesDir:   cfg.Server.TemplatesDir,
		Watch:          cfg.Server.Watch,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		Site:           siteFromConfig(cfg),
		Breakpoint:     bp,
	}, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Wait for shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}
	if flags.Changed("templates") {
		cfg.Server.TemplatesDir = serveTemplates
	}
	if flags.Changed("watch") {
		cfg.Server.Watch = serveWatch
	}
}

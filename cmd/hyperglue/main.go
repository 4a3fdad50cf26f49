package main

import (
	"fmt"
	"os"

	"github.com/newthinker/hypergluex/internal/api/handler/web"
	"github.com/newthinker/hypergluex/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "hyperglue",
	Short: "HyperGlueX - HyperLiquid Dashboard",
	Long: `HyperGlueX serves the HyperLiquid analytics dashboard shell: a sticky
header, a collapsible navigation sidebar and the home page panels.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

// loadConfig reads --config, or the defaults when it is unset, applies
// HYPERGLUE_* overrides and validates the result.
func loadConfig(log *zap.Logger) (*config.Config, error) {
	if cfgFile == "" {
		log.Debug("no config file specified, using defaults")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func siteFromConfig(cfg *config.Config) web.Site {
	return web.Site{
		Name:        cfg.Site.Name,
		Subtitle:    cfg.Site.Subtitle,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

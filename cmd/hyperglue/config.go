package main

import (
	"fmt"

	"github.com/newthinker/hypergluex/internal/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config loads --config (or the defaults), applies environment overrides,
validates the result and prints it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Must(logger.Options{Development: debug, Level: "warn"})
		defer func() { _ = log.Sync() }()

		cfg, err := loadConfig(log)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

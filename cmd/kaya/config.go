package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kaya/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a session would use, as YAML.

The search order is --config, then $XDG_CONFIG_HOME/kaya/rocket.yaml, then
./configs/rocket.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

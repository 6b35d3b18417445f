package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Print the rules a game would use after applying --config and
--difficulty. The output is a valid config file.

Examples:
  mazechase config > ~/.mazechase/configs/chase.yaml
  mazechase config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
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

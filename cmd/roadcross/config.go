package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, as YAML.

The config is looked up in this order:
  --config <path>
  ~/.roadcross/configs/crossing.yaml
  ./configs/crossing.yaml
  built-in defaults

The --difficulty preset is applied on top. The output is a valid config
file and a good starting point for a custom one.

Examples:
  roadcross config > ~/.roadcross/configs/crossing.yaml
  roadcross config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(stderrLogger())
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/river-raid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, as YAML.

The configuration is resolved in this order:
  1. --config path (errors are reported)
  2. ~/.raid/configs/raid.yaml
  3. ./configs/raid.yaml
  4. built-in defaults

The --difficulty preset is applied on top. Redirect the output to a file
to start a custom configuration:
  raid config > ~/.raid/configs/raid.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.RaidConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.RaidConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadRaid(flagConfig)
	if err != nil {
		return config.RaidConfig{}, err
	}
	config.ApplyRaidPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RaidConfig{}, fmt.Errorf("invalid config after %s preset: %w", preset, err)
	}
	return cfg, nil
}

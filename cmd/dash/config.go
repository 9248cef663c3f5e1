package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/games/dash"
)

var flagConfigResolved string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the built-in default configuration, ready to copy to
~/.dash/configs/runner.yaml. With --resolved <course>, print the
configuration a course would run with after --config and --difficulty.

Examples:
  dash config > ~/.dash/configs/runner.yaml
  dash config --resolved dash-blocks --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigResolved, "resolved", "", "Print the effective config of a course")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigResolved == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	v, err := variantFor(flagConfigResolved)
	if err != nil {
		return err
	}
	cfg, err := dash.Configure(v)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

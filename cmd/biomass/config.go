package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biomass/internal/config"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default content config",
	Long: `Prints the built-in content config as YAML. Copy it to
~/.biomass/configs/biomass.yaml or ./configs/biomass.yaml to customize.

With --out, the effective config (after --config and --difficulty) is
written to the given file instead.

Examples:
  biomass config > my-biomass.yaml
  biomass config --difficulty hard --out ./hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigOut, "out", "", "Write the effective config to this file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigOut == "" {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	if err := mustContent().WriteYAML(flagConfigOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", flagConfigOut)
}

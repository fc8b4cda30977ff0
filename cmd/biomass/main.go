// biomass is an idle growth game for the terminal: eat nutrients, buy
// generators and upgrades, and grow from a single cell to a planet.
//
// Usage:
//
//	biomass play             - Play locally
//	biomass serve            - Start SSH server for remote play
//	biomass runs             - Show recorded runs
//	biomass levels           - List the level catalog
//	biomass advise           - Rank generators by value
//	biomass sim              - Run a headless autoplay simulation
//	biomass config           - Print the default content config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set nutrient seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.biomass/runs.db)
//	--config <path>       - Use a custom content config
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biomass/internal/config"
	"github.com/vovakirdan/biomass/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biomass",
	Short: "Biomass - grow a blob from a cell to a planet",
	Long: `Biomass is an idle growth game for the terminal.

Eat nutrients and feed the blob to gain biomass, spend it on generators
that grow it passively and on upgrades that multiply everything, and
evolve through the world from a petri dish to a whole planet.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  runs     - Show recorded runs
  levels   - List the level catalog
  advise   - Rank generators by growth per biomass spent
  sim      - Run a headless autoplay simulation
  config   - Print the default content config

Examples:
  biomass play
  biomass play --difficulty easy
  biomass serve --ssh :2222
  biomass runs --limit 20
  biomass sim --ticks 72000 --out ./sim-out`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Nutrient seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.biomass/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom content config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(simCmd)
}

// loadContent resolves the content config from --config and applies
// --difficulty.
func loadContent() (config.BiomassConfig, error) {
	cfg, err := config.LoadBiomass(flagConfig)
	if err != nil {
		return config.BiomassConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BiomassConfig{}, err
	}
	config.ApplyBiomassPreset(&cfg, preset)
	return cfg, nil
}

// gameFactory validates cfg once and returns a builder of fresh hosts.
func gameFactory(cfg config.BiomassConfig) (func() (*game.Game, error), error) {
	if _, _, err := cfg.Build(0); err != nil {
		return nil, err
	}
	return func() (*game.Game, error) {
		eng, state, err := cfg.Build(time.Now().UnixNano())
		if err != nil {
			return nil, err
		}
		return game.New(eng, state), nil
	}, nil
}

// mustContent loads the content config or exits.
func mustContent() config.BiomassConfig {
	cfg, err := loadContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

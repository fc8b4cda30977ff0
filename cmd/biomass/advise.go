package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biomass/internal/engine"
	"github.com/vovakirdan/biomass/internal/game"
)

var (
	flagAdviseBiomass float64
	flagAdviseLevels  map[string]int
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Rank generators by growth per biomass spent",
	Long: `Prints the advisory value ranking of every generator for a fresh
state. The ranking never blocks a purchase; it only shows which
generator gives the most growth for its next price.

Examples:
  biomass advise
  biomass advise --biomass 50000
  biomass advise --owned spore_pod=20,algae_mat=5`,
	Args: cobra.NoArgs,
	Run:  runAdvise,
}

func init() {
	adviseCmd.Flags().Float64Var(&flagAdviseBiomass, "biomass", 0, "Biomass held (sets the level too)")
	adviseCmd.Flags().StringToIntVar(&flagAdviseLevels, "owned", nil, "Owned generator levels as id=count pairs")
}

func runAdvise(_ *cobra.Command, _ []string) {
	cfg := mustContent()
	if flagAdviseBiomass > 0 {
		cfg.Economy.StartingBiomass = flagAdviseBiomass
	}

	eng, state, err := cfg.Build(flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	for id, count := range flagAdviseLevels {
		g, ok := state.Generator(engine.GeneratorID(id))
		if !ok || count < 0 {
			fmt.Fprintf(os.Stderr, "Error: bad --owned entry %s=%d\n", id, count)
			os.Exit(1)
		}
		g.Level = count
		state.Generators[g.ID] = g
	}
	state = eng.Tick(state, 0)

	fmt.Printf("Level: %s   Biomass: %s   Growth: %s\n",
		eng.CurrentLevel(state).Title(),
		game.FormatBiomass(state.Biomass),
		game.FormatRate(state.Growth))
	fmt.Println()
	fmt.Printf("  %-4s  %-16s  %-5s  %-10s  %-12s  %-8s  %s\n", "Rank", "Generator", "Owned", "Next cost", "Growth/cost", "Tier", "Status")
	fmt.Printf("  %-4s  %-16s  %-5s  %-10s  %-12s  %-8s  %s\n", "----", "---------", "-----", "---------", "-----------", "----", "------")

	for _, r := range engine.RankGeneratorValues(state) {
		g, _ := state.Generator(r.GeneratorID)
		status := "affordable"
		switch {
		case !eng.IsUnlocked(g.UnlockedAtLevel, state):
			status = "locked"
		case !engine.CanAfford(g.NextCost(), state):
			status = "too expensive"
		}
		fmt.Printf("  %-4d  %-16s  %-5d  %-10s  %-12.3g  %-8s  %s\n",
			r.Rank, g.Name, g.Level, game.FormatBiomass(g.NextCost()), r.Value, r.Tier, status)
	}
}

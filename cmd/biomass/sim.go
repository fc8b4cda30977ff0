package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/biomass/internal/game"
	"github.com/vovakirdan/biomass/internal/sim"
)

var (
	flagSimTicks       int
	flagSimRate        int
	flagSimEatEvery    int
	flagSimClickEvery  int
	flagSimSampleEvery int
	flagSimOut         string
	flagSimKeepGoing   bool
	flagSimVerbose     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autoplay simulation",
	Long: `Plays the game without a screen using a greedy policy: eat the
nearest nutrient on a fixed interval, buy every affordable upgrade and
then the best-value affordable generator.

With --out, samples.csv, milestones.csv and the effective config.yaml
are written to the given directory.

Examples:
  biomass sim
  biomass sim --ticks 360000 --eat-every 5
  biomass sim --difficulty hard --out ./sim-hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	defaults := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", defaults.Ticks, "Maximum number of steps")
	simCmd.Flags().IntVar(&flagSimRate, "tick-rate", defaults.TickRate, "Steps per simulated second")
	simCmd.Flags().IntVar(&flagSimEatEvery, "eat-every", defaults.EatEvery, "Eat a nutrient every N steps (0 = never)")
	simCmd.Flags().IntVar(&flagSimClickEvery, "click-every", defaults.ClickEvery, "Feed every N steps (0 = never)")
	simCmd.Flags().IntVar(&flagSimSampleEvery, "sample-every", defaults.SampleEvery, "Record a sample every N steps")
	simCmd.Flags().StringVar(&flagSimOut, "out", "", "Directory for CSV output")
	simCmd.Flags().BoolVar(&flagSimKeepGoing, "keep-going", false, "Keep running after the final level")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every purchase")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "biomass-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := simulate(logger); err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
}

// simulate runs one simulation. Output files are closed before it returns.
func simulate(logger *log.Logger) error {
	cfg, err := loadContent()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	eng, state, err := cfg.Build(flagSeed)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	opts := sim.Options{
		Ticks:       flagSimTicks,
		TickRate:    flagSimRate,
		EatEvery:    flagSimEatEvery,
		ClickEvery:  flagSimClickEvery,
		SampleEvery: flagSimSampleEvery,
		StopOnFinal: !flagSimKeepGoing,
	}
	s, err := sim.New(eng, state, opts, logger)
	if err != nil {
		return err
	}

	out, err := sim.NewOutputManager(flagSimOut)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := s.SetOutput(out); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := s.Run(ctx)
	if err != nil {
		logger.Error("simulation stopped", "error", err)
	}
	printSummary(summary)
	if out != nil {
		logger.Info("wrote output", "dir", out.Dir())
	}
	return nil
}

func printSummary(s sim.Summary) {
	fmt.Println()
	fmt.Printf("Simulated %s (%d steps)\n", game.FormatDuration(s.Elapsed), s.Ticks)
	fmt.Printf("Final level:   %s\n", s.FinalLevel)
	fmt.Printf("Final biomass: %s\n", game.FormatBiomass(s.FinalBiomass))
	fmt.Printf("Generators:    %d   Upgrades: %d   Nutrients eaten: %d\n", s.Generators, s.Upgrades, s.Eaten)
	fmt.Printf("Growth:        mean %s, std dev %s, peak %s\n",
		game.FormatRate(s.MeanGrowth), game.FormatRate(s.StdDevGrowth), game.FormatRate(s.PeakGrowth))

	if len(s.Milestones) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-13s  %-8s  %s\n", "Level", "Time", "Biomass")
	fmt.Printf("  %-13s  %-8s  %s\n", "-----", "----", "-------")
	for _, m := range s.Milestones {
		fmt.Printf("  %-13s  %-8s  %s\n", m.Level, game.FormatDuration(m.Elapsed), game.FormatBiomass(m.Biomass))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/biomass/internal/game"
	"github.com/vovakirdan/biomass/internal/platform/tui"
	"github.com/vovakirdan/biomass/internal/storage"
)

var (
	flagRunsLimit       int
	flagRunsPlayer      string
	flagRunsInteractive bool
	flagRunsClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs: highest level first, then most
biomass, then the fastest.

Examples:
  biomass runs
  biomass runs --limit 25
  biomass runs --player alice
  biomass runs --interactive
  biomass runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Show only this player's most recent runs")
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse runs in a table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the whole run history")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunBoard(store, playerName(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	title := "Top runs"
	if flagRunsPlayer != "" {
		runs, err = store.PlayerRuns(flagRunsPlayer, flagRunsLimit)
		title = fmt.Sprintf("Recent runs - %s", flagRunsPlayer)
	} else {
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'biomass play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-13s  %-10s  %-8s  %s\n", "Rank", "Player", "Level", "Biomass", "Time", "When")
	fmt.Printf("  %-4s  %-12s  %-13s  %-10s  %-8s  %s\n", "----", "------", "-----", "-------", "----", "----")

	for i, r := range runs {
		level := r.LevelName
		if r.Completed {
			level += " *"
		}
		fmt.Printf("  %-4d  %-12s  %-13s  %-10s  %-8s  %s\n",
			i+1, r.Player, level,
			game.FormatBiomass(r.Biomass),
			game.FormatDuration(r.DurationSecs),
			humanize.Time(r.CreatedAt))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("%s runs, %s completed, %s biomass grown in total\n",
			humanize.Comma(int64(stats.Runs)),
			humanize.Comma(int64(stats.Completed)),
			game.FormatBiomass(stats.TotalBiomass))
	}
}

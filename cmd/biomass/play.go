package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/biomass/internal/core"
	"github.com/vovakirdan/biomass/internal/platform/tui"
	"github.com/vovakirdan/biomass/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play biomass in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/E      - Eat the nearest nutrient
  F            - Feed the blob
  Up/Down, W/S - Move the shop cursor
  Tab          - Switch between generators and upgrades
  Enter        - Buy the selected item
  P            - Pause
  B/Esc        - Show recorded runs
  R            - Start a new run (after reaching the planet)
  Ctrl+S       - Save a screenshot to ~/.biomass/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Cheaper prices, double nutrient and feed yield
  normal - Prices as configured
  hard   - Pricier items, fewer nutrients in the world

Examples:
  biomass play
  biomass play --difficulty hard
  biomass play --config ./my-biomass.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	newGame, err := gameFactory(mustContent())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}
	g, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return core.DefaultConfig().Player
}

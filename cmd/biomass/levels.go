package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/biomass/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level of the world in order with its biomass threshold.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	catalog, err := mustContent().Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid levels: %v\n", err)
		os.Exit(1)
	}

	all := catalog.All()
	maxNameLen := len("Level")
	for _, l := range all {
		maxNameLen = max(maxNameLen, len(l.Title()))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-2s  %-*s  %-12s  %s\n", "ID", maxNameLen, "Level", "Threshold", "Description")
	fmt.Printf("  %-2s  %-*s  %-12s  %s\n", "--", maxNameLen, "-----", "---------", "-----------")

	for _, l := range all {
		fmt.Printf("  %-2d  %-*s  %-12s  %s\n", l.ID, maxNameLen, l.Title(), game.FormatBiomass(l.Threshold), l.Description)
	}
}

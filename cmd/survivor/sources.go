package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/registry"
	_ "github.com/vovakirdan/tui-survivor/internal/upgrades" // Registers the upgrade sources
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List upgrade sources",
	Long:  `Shows every upgrade source that can be passed to --upgrades.`,
	Args:  cobra.NoArgs,
	Run:   runSources,
}

func runSources(cmd *cobra.Command, args []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No upgrade sources registered.")
		return
	}

	fmt.Println("Upgrade sources:")
	fmt.Println()
	for _, s := range sources {
		marker := " "
		if s.ID == flagUpgrades {
			marker = "*"
		}
		fmt.Printf(" %s %-10s %s\n", marker, s.ID, s.Title)
	}
	fmt.Println()
	fmt.Println("Use with: survivor play --upgrades <source>")
}

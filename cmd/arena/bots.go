package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/registry"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List all available bots",
	Long:  `Shows every robot policy that can be named in an arena config.`,
	Run:   runBots,
}

func runBots(cmd *cobra.Command, args []string) {
	bots := registry.List()

	if len(bots) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println("Available bots:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, b := range bots {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range bots {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Use a name as the 'bot' of a robot in the arena config.")
}

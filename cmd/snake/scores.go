package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show stored high scores",
	Long: `Display the stored best score per player, highest first.

With a player name only that player's best is shown. --clear deletes the
named player's record, or every record when no player is given.

Examples:
  snake scores
  snake scores alice
  snake scores --clear
  snake scores alice --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		runClear(store, args)
		return
	}

	if len(args) == 1 {
		player := args[0]
		best, err := store.HighScore(player)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
			os.Exit(1)
		}
		if best == 0 {
			fmt.Printf("No score recorded for %q yet.\n", player)
			return
		}
		fmt.Printf("Best for %s: %d\n", player, best)
		return
	}

	entries, err := store.TopHighScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake' to set the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Best", "Updated")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "----", "-------")

	// Print scores
	for i, entry := range entries {
		dateStr := entry.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Player, entry.Best, dateStr)
	}
}

func runClear(store *storage.Store, args []string) {
	if len(args) == 1 {
		if err := store.ClearHighScore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared stored best for %q.\n", args[0])
		return
	}

	if err := store.ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Cleared all stored scores.")
}

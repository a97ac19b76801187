package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/younwookim/shadowkong/internal/infrastructure/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished campaigns.

Examples:
  shadowkong scores
  shadowkong scores --limit 3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Shadow Donkey Kong")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'shadowkong play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		res := "lost"
		if e.Won {
			res = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-6s  %s\n", i+1, e.Score, e.Level, res, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

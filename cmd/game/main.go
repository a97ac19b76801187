// shadowkong is a Donkey Kong style platformer.
//
// Usage:
//
//	shadowkong play                 - Start from the title screen
//	shadowkong play --level 2       - Jump straight into a level
//	shadowkong simulate <file>      - Replay a recording headlessly
//	shadowkong scores               - Show high scores
//
// Global flags:
//
//	--config <dir>     - Directory with game.yaml and levels/ (default: built-in)
//	--db <path>        - Scores database (default: ~/.shadowkong/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--scale <factor>   - Window scale
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

var (
	flagConfigDir string
	flagDBPath    string
	flagLogLevel  string
	flagScale     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadowkong",
	Short: "Shadow Donkey Kong - climb, jump and smash your way to Donkey",
	Long: `Shadow Donkey Kong is a frame-stepped platformer. Climb ladders, jump
over barrels, pick up the hammer or the blaster and reach Donkey before
the time runs out.

Examples:
  shadowkong play
  shadowkong play --level 2 --record run.json
  shadowkong simulate run.json
  shadowkong scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shadowkong/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Float64Var(&flagScale, "scale", 1, "Window scale factor")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shadowkong",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// loadCampaign reads --config, or the built-in configs when it is empty.
func loadCampaign(dir string) (*config.Campaign, error) {
	loader := config.NewLoader(dir)
	if dir == "" {
		sub, err := fs.Sub(builtinConfigs, "configs")
		if err != nil {
			return nil, err
		}
		loader = config.NewFSLoader(sub)
	}
	campaign, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading configs: %w", err)
	}
	return campaign, nil
}

package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/younwookim/shadowkong/internal/application/game"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/infrastructure/keyboard"
	"github.com/younwookim/shadowkong/internal/infrastructure/storage"
)

var (
	flagStartLevel int
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window.

Controls:
  Left/Right  - Move
  Up/Down     - Climb ladders
  Space       - Jump
  S           - Fire the blaster
  Enter       - Start (title screen)
  Esc         - Quit

Examples:
  shadowkong play
  shadowkong play --level 2
  shadowkong play --record replay.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Start directly at this level (0 = title screen)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the first level's input to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	campaign, err := loadCampaign(flagConfigDir)
	if err != nil {
		return err
	}
	if flagStartLevel < 0 || flagStartLevel > campaign.Game.Levels {
		return fmt.Errorf("--level must be between 1 and %d", campaign.Game.Levels)
	}

	keys := keyboard.New(keyboard.DefaultBindings())
	r := &router{
		campaign:   campaign,
		controls:   keys,
		logger:     logger,
		recordPath: flagRecord,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		r.board = store
	}

	var first scene.Scene
	if flagStartLevel > 0 {
		first = r.Level(flagStartLevel, 0)
	} else {
		first = r.Title()
	}

	w, h := r.size()
	g := game.New(first, w, h, campaign.Game.FPS)
	g.QuitOn(func() bool { return keys.JustPressed(ebiten.KeyEscape) })

	ebiten.SetWindowSize(int(float64(w)*flagScale), int(float64(h)*flagScale))
	ebiten.SetWindowTitle("Shadow Donkey Kong")
	ebiten.SetTPS(campaign.Game.FPS)

	// RunGame returns nil once Update reports ebiten.Termination.
	return ebiten.RunGame(g)
}

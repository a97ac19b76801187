package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/shadowkong/internal/application/level"
	"github.com/younwookim/shadowkong/internal/application/replay"
	"github.com/younwookim/shadowkong/internal/application/state"
	"github.com/younwookim/shadowkong/internal/application/system"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <replay.json>",
	Short: "Replay a recording without a window",
	Long: `Run a recorded level frame by frame with no window and print how it
ended. Once the recorded input runs out the player stands still until the
level ends.

Examples:
  shadowkong play --record run.json
  shadowkong simulate run.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulateCmd,
}

// simulation is the outcome of a replayed level.
type simulation struct {
	Level       int
	Outcome     state.Outcome
	Frames      int
	Replayed    int
	Score       int
	SecondsLeft int
}

func runSimulateCmd(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	campaign, err := loadCampaign(flagConfigDir)
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	sim, err := simulate(campaign, data, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level %d: %s after %d frames (%d replayed)\n", sim.Level, sim.Outcome, sim.Frames, sim.Replayed)
	fmt.Fprintf(out, "Seconds left: %d\n", sim.SecondsLeft)
	fmt.Fprintf(out, "Final score: %d\n", sim.Score)
	return nil
}

// simulate plays data against the campaign's level headlessly.
func simulate(campaign *config.Campaign, data *replay.ReplayData, logger *log.Logger) (simulation, error) {
	cfg, ok := campaign.Levels[data.Level]
	if !ok {
		return simulation{}, fmt.Errorf("replay is for level %d, which is not configured", data.Level)
	}

	lvl, err := level.Load(campaign.Game, cfg,
		level.WithNumber(data.Level),
		level.WithStartingScore(data.StartingScore),
		level.WithLogger(logger),
	)
	if err != nil {
		return simulation{}, err
	}

	r := replay.NewReplayer(*data)
	for {
		in, ok := r.GetInput()
		if !ok {
			in = system.InputState{}
		}
		if lvl.Update(in) {
			break
		}
	}

	return simulation{
		Level:       data.Level,
		Outcome:     lvl.Outcome(),
		Frames:      lvl.Frame(),
		Replayed:    r.CurrentFrame(),
		Score:       lvl.FinalScore(),
		SecondsLeft: lvl.SecondsRemaining(),
	}, nil
}

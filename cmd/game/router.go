package main

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/scene/playing"
	"github.com/younwookim/shadowkong/internal/application/scene/result"
	"github.com/younwookim/shadowkong/internal/application/scene/title"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

// router builds the scenes of one campaign.
type router struct {
	campaign *config.Campaign
	controls scene.Controls
	board    scene.ScoreBoard
	logger   *log.Logger

	// recordPath is handed to the first level only
	recordPath string
}

func (r *router) size() (int, int) {
	s := r.campaign.Game.Screen
	return int(s.Width), int(s.Height)
}

func (r *router) Title() scene.Scene {
	w, h := r.size()
	return title.New(r, r.controls, r.board, w, h)
}

func (r *router) Level(n, startingScore int) scene.Scene {
	cfg, ok := r.campaign.Levels[n]
	if !ok {
		r.logger.Error("no such level", "level", n)
		return r.Title()
	}

	p, err := playing.New(r.campaign.Game, cfg, n, startingScore, playing.Deps{
		Router:     r,
		Controls:   r.controls,
		Logger:     r.logger,
		Levels:     r.campaign.Game.Levels,
		RecordPath: r.recordPath,
	})
	r.recordPath = ""
	if err != nil {
		r.logger.Error("failed to start level", "level", n, "err", err)
		return r.Title()
	}
	return p
}

func (r *router) Result(res scene.Result) scene.Scene {
	w, h := r.size()
	return result.New(res, r, r.controls, r.board, r.logger, w, h)
}

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/session"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// Launcher builds sessions from menu selections.
type Launcher struct {
	Config config.Config
	Store  *storage.Store // nil disables run history
	Logger *log.Logger
	Source string
	Seed   int64 // seed for random maps, 0 means time based
}

// Options returns the session options for the given algorithm.
func (l Launcher) Options(algorithmID string) session.Options {
	opts := session.Options{
		Algorithm: algorithmID,
		Interval:  l.Config.Simulation.IterationInterval,
		Source:    l.Source,
		ShowStats: l.Config.Render.ShowStats,
		Logger:    l.Logger,
	}
	if l.Store != nil {
		opts.Saver = l.Store
	}
	return opts
}

// NewSession creates the session described by sel.
func (l Launcher) NewSession(sel Selection) (*session.Session, error) {
	opts := l.Options(sel.AlgorithmID)

	switch {
	case sel.Map.ID == MapBlank || sel.Map.ID == "":
		return session.New(l.Config.Columns(), l.Config.Rows(), opts)

	case sel.Map.ID == MapRandom:
		seed := l.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		params := maps.DefaultGenParams()
		params.Width = l.Config.Columns()
		params.Height = l.Config.Rows()
		params.Seed = uint64(seed)
		m, err := maps.Generate(params)
		if err != nil {
			return nil, fmt.Errorf("generating map: %w", err)
		}
		return session.NewFromMap(m, opts)

	case sel.Map.Map != nil:
		return session.NewFromMap(*sel.Map.Map, opts)
	}
	return nil, fmt.Errorf("map not found: %s", sel.Map.ID)
}

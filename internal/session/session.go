// Package session runs one interactive pathfinding simulation: it turns user
// actions into grid designations, drives the selected algorithm every frame
// and records the outcome. It has no terminal dependencies; the platform
// layer feeds it actions and elapsed time and displays what it renders.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/search"
)

// Options configures a session.
type Options struct {
	Algorithm string        // registry ID, defaults to the first entry
	Interval  time.Duration // time between search steps
	Source    string        // recorded with each run, e.g. "tui" or "ssh"
	ShowStats bool
	Logger    *log.Logger // nil discards logs
	Saver     RunSaver    // nil disables run history
}

// State summarizes the session for the platform layer.
type State struct {
	Phase     Phase
	Algorithm string
	Running   bool
	Completed bool
	Stats     search.Stats
}

// Session owns the grid and the live algorithm.
type Session struct {
	opts   Options
	logger *log.Logger

	grid   *grid.Grid
	layout *maps.Map // restored on Reset when set
	mapID  string

	algID  string
	alg    search.Algorithm
	phase  Phase
	cursor grid.Coord
	status string
	saved  bool
}

// New creates a session over an empty columns x rows grid.
func New(columns, rows int, opts Options) (*Session, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("session: grid must be at least 1x1, got %dx%d", columns, rows)
	}
	s := &Session{mapID: "custom"}
	s.setGrid(grid.New(columns, rows, 1))
	if err := s.init(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromMap creates a session preloaded with a map layout.
func NewFromMap(m maps.Map, opts Options) (*Session, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, maps.ErrEmptyLayout
	}
	layout := m
	s := &Session{layout: &layout, mapID: m.ID}
	s.setGrid(m.ToGrid())
	if err := s.init(opts); err != nil {
		return nil, err
	}
	s.phase = s.phaseFromGrid()
	return s, nil
}

func (s *Session) init(opts Options) error {
	if opts.Algorithm == "" {
		opts.Algorithm = registry.IDs()[0]
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s.opts = opts
	s.logger = opts.Logger
	return s.selectAlgorithm(opts.Algorithm)
}

func (s *Session) selectAlgorithm(id string) error {
	alg, err := registry.Create(id, search.WithInterval(s.opts.Interval))
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.algID = id
	s.alg = alg
	return nil
}

// phaseFromGrid picks the setup phase matching the designations present.
func (s *Session) phaseFromGrid() Phase {
	_, hasStart := s.grid.Start()
	_, hasGoal := s.grid.Goal()
	switch {
	case !hasStart:
		return PhaseSetStart
	case !hasGoal:
		return PhaseSetGoal
	default:
		return PhaseStartSimulation
	}
}

// Grid returns the session grid. Callers must not change designations.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Cursor returns the cell under the keyboard cursor.
func (s *Session) Cursor() grid.Coord { return s.cursor }

// Status returns the last message for the user.
func (s *Session) Status() string { return s.status }

// Notify replaces the status line, e.g. after a screenshot.
func (s *Session) Notify(msg string) { s.status = msg }

// MapID returns the ID of the loaded map, or "custom".
func (s *Session) MapID() string { return s.mapID }

// State returns a summary of the current phase and run.
func (s *Session) State() State {
	running := s.phase == PhaseEndSimulation && !s.alg.HasCompleted()
	return State{
		Phase:     s.phase,
		Algorithm: s.algID,
		Running:   running,
		Completed: s.alg.HasCompleted(),
		Stats:     s.alg.Stats(),
	}
}

// Statistics returns the algorithm's summary text.
func (s *Session) Statistics() string { return s.alg.Statistics() }

// AlgorithmName returns the display name of the selected algorithm.
func (s *Session) AlgorithmName() string { return s.alg.Name() }

// SetCursor moves the cursor to c if it lies on the grid.
func (s *Session) SetCursor(c grid.Coord) bool {
	if !s.grid.InBounds(c) {
		return false
	}
	s.cursor = c
	return true
}

// MoveCursor shifts the cursor, clamped to the grid.
func (s *Session) MoveCursor(dx, dy int) {
	c := s.cursor.Add(dx, dy)
	c.X = min(max(c.X, 0), s.grid.Columns()-1)
	c.Y = min(max(c.Y, 0), s.grid.Rows()-1)
	s.cursor = c
}

// Primary advances the phase at the cursor: it places the start, then the
// goal, then launches the search.
func (s *Session) Primary() {
	switch s.phase {
	case PhaseSetStart:
		if s.grid.SetDesignation(s.cursor, grid.RoleStart) {
			s.phase = PhaseSetGoal
			s.status = fmt.Sprintf("Start set at %v", s.cursor)
		}
	case PhaseSetGoal:
		if s.grid.SetDesignation(s.cursor, grid.RoleGoal) {
			s.phase = PhaseStartSimulation
			s.status = fmt.Sprintf("Goal set at %v", s.cursor)
		}
	case PhaseStartSimulation:
		s.start()
	}
}

func (s *Session) start() {
	if err := s.alg.Start(s.grid); err != nil {
		if errors.Is(err, search.ErrInvalidInput) {
			s.logger.Warn("User did not set the start or end point", "algorithm", s.algID)
			s.status = "Set both the start and the goal first"
			return
		}
		s.logger.Error("cannot start simulation", "algorithm", s.algID, "err", err)
		s.status = err.Error()
		return
	}
	s.phase = PhaseEndSimulation
	s.saved = false
	s.status = "Simulation Starts..."
	s.logger.Info("simulation started", "algorithm", s.algID, "map", s.mapID)
}

// Obstacle places an obstacle at the cursor before the search starts.
func (s *Session) Obstacle() bool {
	if s.phase == PhaseEndSimulation {
		return false
	}
	return s.grid.SetDesignation(s.cursor, grid.RoleObstacle)
}

// Reset cancels the run and clears the grid. A session created from a map
// gets its layout back.
func (s *Session) Reset() {
	s.alg.Reset(s.grid)
	s.phase = PhaseSetStart
	s.saved = false
	if s.layout != nil {
		s.setGrid(s.layout.ToGrid())
		s.phase = s.phaseFromGrid()
	}
	s.status = "Reset"
	s.logger.Debug("session reset", "algorithm", s.algID)
}

// NextAlgorithm switches to the next algorithm in menu order.
// It is refused while a run is active or finished; reset first.
func (s *Session) NextAlgorithm() bool {
	if s.phase == PhaseEndSimulation {
		return false
	}
	if err := s.selectAlgorithm(registry.Next(s.algID)); err != nil {
		s.logger.Error("cannot switch algorithm", "err", err)
		return false
	}
	s.status = "Algorithm: " + s.alg.Name()
	return true
}

// Step applies one frame of input and advances the search by dt.
func (s *Session) Step(in core.InputFrame, dt time.Duration) State {
	switch {
	case in.Has(core.ActionUp):
		s.MoveCursor(0, -1)
	case in.Has(core.ActionDown):
		s.MoveCursor(0, 1)
	case in.Has(core.ActionLeft):
		s.MoveCursor(-1, 0)
	case in.Has(core.ActionRight):
		s.MoveCursor(1, 0)
	}

	if in.Has(core.ActionReset) {
		s.Reset()
		return s.State()
	}
	if in.Has(core.ActionNextAlgo) {
		s.NextAlgorithm()
	}
	if in.Has(core.ActionObstacle) {
		s.Obstacle()
	}
	if in.Has(core.ActionPrimary) {
		s.Primary()
	}

	if s.phase == PhaseEndSimulation {
		s.alg.ExecuteStep(s.grid, dt)
		if s.alg.HasCompleted() && !s.saved {
			s.finish()
		}
	}
	return s.State()
}

// finish logs and records a completed run once.
func (s *Session) finish() {
	s.saved = true
	stats := s.alg.Stats()
	if stats.Found {
		s.status = "Path found"
	} else {
		s.status = "Goal is unreachable"
	}
	s.logger.Info("simulation finished",
		"algorithm", s.algID,
		"found", stats.Found,
		"path", stats.PathLength,
		"steps", stats.Steps,
		"visited", stats.Visited,
	)

	if s.opts.Saver == nil {
		return
	}
	rec := NewRunRecord(stats, s.mapID, s.grid.Columns(), s.grid.Rows(), s.opts.Source)
	if _, err := s.opts.Saver.SaveRun(rec); err != nil {
		s.logger.Error("cannot save run", "err", err)
	}
}

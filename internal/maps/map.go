// Package maps loads grid layouts from YAML files and generates random ones.
// This package depends on grid but grid does not depend on maps.
package maps

import (
	"strings"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Layout characters.
const (
	CharEmpty    = '.'
	CharObstacle = '#'
	CharStart    = 'S'
	CharGoal     = 'G'
)

// Map is a complete grid layout.
type Map struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Start     *grid.Coord
	Goal      *grid.Coord
	Obstacles []grid.Coord
	Metadata  map[string]string
	FilePath  string // empty for built-in and generated maps
}

// ToGrid creates a unit-cell grid from the map.
func (m *Map) ToGrid() *grid.Grid {
	g := grid.New(m.Width, m.Height, 1)
	for _, c := range m.Obstacles {
		g.SetDesignation(c, grid.RoleObstacle)
	}
	if m.Start != nil {
		g.SetDesignation(*m.Start, grid.RoleStart)
	}
	if m.Goal != nil {
		g.SetDesignation(*m.Goal, grid.RoleGoal)
	}
	return g
}

// Layout renders the map back into rows of layout characters.
func (m *Map) Layout() []string {
	rows := make([][]byte, m.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(CharEmpty), m.Width))
	}
	put := func(c grid.Coord, ch byte) {
		if c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height {
			rows[c.Y][c.X] = ch
		}
	}
	for _, c := range m.Obstacles {
		put(c, CharObstacle)
	}
	if m.Start != nil {
		put(*m.Start, CharStart)
	}
	if m.Goal != nil {
		put(*m.Goal, CharGoal)
	}

	out := make([]string, m.Height)
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}

// Description returns the description metadata, if any.
func (m *Map) Description() string {
	return m.Metadata["description"]
}

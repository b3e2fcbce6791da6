package session

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Screen layout: title on row 0, the framed grid below it and the side
// panel to the right of the frame.
const (
	gridX     = 2
	gridY     = 2
	panelGap  = 3
	PanelCols = 34 // width reserved for the side panel
)

// Size returns the screen size needed to show the whole session.
func (s *Session) Size() (width, height int) {
	frame := s.frame()
	return frame.Right() + panelGap + PanelCols, max(frame.Bottom()+2, gridY+12)
}

// frame is the box drawn around the grid.
func (s *Session) frame() core.Rect {
	b := s.grid.Bounds(gridX, gridY)
	return core.NewRect(gridX-2, gridY-1, b.W+3, b.H+2)
}

// setGrid installs g and registers where its top-left cell is drawn.
// Screen columns are halved so one cell spans one unit horizontally.
func (s *Session) setGrid(g *grid.Grid) {
	size := float64(g.CellSize())
	g.SetOrigin(float64(gridX/grid.CellWidth)*size, float64(gridY)*size)
	s.grid = g
}

// CellAtScreen maps a screen position, e.g. a mouse click, to a grid cell.
func (s *Session) CellAtScreen(x, y int) (grid.Coord, bool) {
	if x < 0 || y < 0 {
		return grid.Coord{}, false
	}
	size := float64(s.grid.CellSize())
	return s.grid.CellAt(float64(x/grid.CellWidth)*size, float64(y)*size)
}

// Render draws the title, the grid and the side panel into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(0, 0, "Pathfinder", core.ColorBrightGreen)
	dst.DrawTextColored(11, 0, "· "+s.alg.Name(), core.ColorYellow)

	frame := s.frame()
	dst.DrawBox(frame)

	var cursor *grid.Coord
	if s.phase != PhaseEndSimulation {
		c := s.cursor
		cursor = &c
	}
	s.grid.Render(dst, gridX, gridY, cursor)

	s.renderPanel(dst, frame.Right()+panelGap, gridY)

	if s.status != "" {
		dst.DrawTextColored(0, frame.Bottom(), s.status, core.ColorGray)
	}
}

func (s *Session) renderPanel(dst *core.Screen, x, y int) {
	st := s.State()

	if hint := s.phase.Hint(); hint != "" {
		dst.DrawTextColored(x, y, hint, core.ColorWhite)
		dst.DrawText(x, y+1, fmt.Sprintf("Cursor %v", s.cursor))
		s.renderLegend(dst, x, y+3)
		return
	}

	if !st.Completed {
		dst.DrawTextColored(x, y, "Searching...", core.ColorCyan)
		dst.DrawText(x, y+2, fmt.Sprintf("Steps:    %d", st.Stats.Steps))
		dst.DrawText(x, y+3, fmt.Sprintf("Visited:  %d", st.Stats.Visited))
		dst.DrawText(x, y+4, fmt.Sprintf("Frontier: %d", s.grid.Count(grid.TileFrontier)))
		return
	}

	if s.opts.ShowStats {
		dst.DrawLines(x, y, s.alg.Statistics())
		return
	}
	if st.Stats.Found {
		dst.DrawTextColored(x, y, fmt.Sprintf("Path length: %d", st.Stats.PathLength), core.ColorBlue)
	} else {
		dst.DrawTextColored(x, y, "Goal is unreachable!", core.ColorRed)
	}
}

func (s *Session) renderLegend(dst *core.Screen, x, y int) {
	legend := []grid.Tile{
		{Kind: grid.TileStart},
		{Kind: grid.TileGoal},
		{Kind: grid.TileObstacle},
		{Kind: grid.TileFrontier},
		{Kind: grid.TileEmpty, Visited: true},
		{Kind: grid.TilePath},
	}
	labels := []string{"start", "goal", "wall", "frontier", "visited", "path"}
	for i, t := range legend {
		r, c := t.Glyph()
		dst.SetColored(x, y+i, r, c)
		dst.DrawTextColored(x+2, y+i, labels[i], core.ColorGray)
	}
}

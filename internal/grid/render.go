package grid

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// CellWidth is how many screen columns one cell takes. Terminal glyphs are
// about twice as tall as wide, so a cell is a glyph plus a gap.
const CellWidth = 2

// Render draws every tile into dst with the top-left cell at (x, y).
// The cell under cursor, when non-nil, gets a marker to its right.
func (g *Grid) Render(dst *core.Screen, x, y int, cursor *Coord) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			c := C(col, row)
			r, color := g.tiles[g.index(c)].Glyph()
			sx := x + col*CellWidth
			dst.SetColored(sx, y+row, r, color)
			if cursor != nil && *cursor == c {
				dst.SetColored(sx+1, y+row, '◂', core.ColorWhite)
			}
		}
	}
}

// Bounds returns the screen rectangle Render covers when drawn at (x, y).
func (g *Grid) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, g.columns*CellWidth, g.rows)
}

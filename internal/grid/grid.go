// Package grid holds the tile model searched by the pathfinding algorithms:
// a fixed rectangle of cells, the start and goal designations and the
// four-directional adjacency rule.
package grid

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// Grid is a rectangle of tiles stored in row-major order.
type Grid struct {
	columns  int
	rows     int
	cellSize int
	originX  float64
	originY  float64
	tiles    []Tile

	start *Coord
	goal  *Coord
}

// New creates a grid covering width*height units split into square cells of
// cellSize units. All tiles start empty and there is no start or goal.
func New(width, height, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	columns := max(width/cellSize, 0)
	rows := max(height/cellSize, 0)

	return &Grid{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
		tiles:    make([]Tile, columns*rows),
	}
}

// Columns returns the number of cells per row.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the side of a cell in screen units.
func (g *Grid) CellSize() int { return g.cellSize }

// SetOrigin sets the screen position of the top-left corner used by CellAt.
func (g *Grid) SetOrigin(x, y float64) {
	g.originX = x
	g.originY = y
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.columns + c.X
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

// Tile returns the tile at c, or an obstacle tile when c is out of bounds.
func (g *Grid) Tile(c Coord) Tile {
	if !g.InBounds(c) {
		return Tile{Kind: TileObstacle}
	}
	return g.tiles[g.index(c)]
}

// Start returns the designated start cell, if any.
func (g *Grid) Start() (Coord, bool) {
	if g.start == nil {
		return Coord{}, false
	}
	return *g.start, true
}

// Goal returns the designated goal cell, if any.
func (g *Grid) Goal() (Coord, bool) {
	if g.goal == nil {
		return Coord{}, false
	}
	return *g.goal, true
}

// CellAt maps a point in screen units to the cell under it.
func (g *Grid) CellAt(px, py float64) (Coord, bool) {
	px -= g.originX
	py -= g.originY
	if px < 0 || py < 0 {
		return Coord{}, false
	}
	c := C(int(px)/g.cellSize, int(py)/g.cellSize)
	if !g.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}

// SetDesignation gives c the role if c currently holds an empty tile.
// A second start or goal moves the designation and frees the old tile.
// Start and goal outside the grid are recorded without a tile; an obstacle
// outside the grid is a no-op. Returns whether the designation was applied.
func (g *Grid) SetDesignation(c Coord, role Role) bool {
	if !g.InBounds(c) {
		switch role {
		case RoleStart:
			g.clearEndpoint(g.start, TileStart)
			g.start = &c
			return true
		case RoleGoal:
			g.clearEndpoint(g.goal, TileGoal)
			g.goal = &c
			return true
		default:
			return false
		}
	}

	idx := g.index(c)
	if g.tiles[idx].Kind != TileEmpty {
		return false
	}

	switch role {
	case RoleStart:
		g.clearEndpoint(g.start, TileStart)
		g.tiles[idx] = Tile{Kind: TileStart}
		g.start = &c
	case RoleGoal:
		g.clearEndpoint(g.goal, TileGoal)
		g.tiles[idx] = Tile{Kind: TileGoal}
		g.goal = &c
	case RoleObstacle:
		g.tiles[idx] = Tile{Kind: TileObstacle}
	default:
		return false
	}
	return true
}

func (g *Grid) clearEndpoint(at *Coord, kind TileKind) {
	if at == nil || !g.InBounds(*at) {
		return
	}
	if idx := g.index(*at); g.tiles[idx].Kind == kind {
		g.tiles[idx] = Empty()
	}
}

// IsObstacle reports whether c cannot be entered. Cells outside the grid
// count as obstacles.
func (g *Grid) IsObstacle(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.tiles[g.index(c)].Kind == TileObstacle
}

// Neighbors returns the traversable orthogonal neighbors of c in the order
// up, down, left, right.
func (g *Grid) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := c.Add(d[0], d[1])
		if g.IsObstacle(n) {
			continue
		}
		result = append(result, n)
	}
	return result
}

// Cost returns the cost of moving between two adjacent traversable cells.
func (g *Grid) Cost(a, b Coord) int {
	return 1
}

// Heuristic returns the Manhattan distance between a and b.
func (g *Grid) Heuristic(a, b Coord) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}

// markable returns the tile index for c when visual marking is allowed.
func (g *Grid) markable(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	idx := g.index(c)
	t := g.tiles[idx]
	if t.IsEndpoint() || t.Kind == TileObstacle {
		return 0, false
	}
	return idx, true
}

// MarkVisited flags c as expanded.
func (g *Grid) MarkVisited(c Coord) {
	if idx, ok := g.markable(c); ok {
		g.tiles[idx] = Tile{Kind: TileEmpty, Visited: true}
	}
}

// MarkFrontier flags c as queued for expansion.
func (g *Grid) MarkFrontier(c Coord) {
	if idx, ok := g.markable(c); ok {
		g.tiles[idx] = Tile{Kind: TileFrontier}
	}
}

// MarkPath flags c as part of the solution.
func (g *Grid) MarkPath(c Coord) {
	if idx, ok := g.markable(c); ok {
		g.tiles[idx] = Tile{Kind: TilePath}
	}
}

// Reset empties every tile and drops the start and goal.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i] = Empty()
	}
	g.start = nil
	g.goal = nil
}

// Count returns how many tiles have the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	clone := *g
	clone.tiles = tiles
	if g.start != nil {
		s := *g.start
		clone.start = &s
	}
	if g.goal != nil {
		gl := *g.goal
		clone.goal = &gl
	}
	return &clone
}

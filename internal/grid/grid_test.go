package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

func TestNewGridDimensions(t *testing.T) {
	g := grid.New(50, 50, 10)

	require.Equal(t, 5, g.Columns())
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 25, g.Count(grid.TileEmpty))

	_, hasStart := g.Start()
	_, hasGoal := g.Goal()
	require.False(t, hasStart)
	require.False(t, hasGoal)
}

func TestCellAt(t *testing.T) {
	g := grid.New(50, 50, 10)

	c, ok := g.CellAt(15.0, 15.3)
	require.True(t, ok)
	require.Equal(t, grid.C(1, 1), c)

	c, ok = g.CellAt(21.4, 36.3)
	require.True(t, ok)
	require.Equal(t, grid.C(2, 3), c)

	_, ok = g.CellAt(50, 10)
	require.False(t, ok)
	_, ok = g.CellAt(-1, 10)
	require.False(t, ok)

	g.SetOrigin(100, 0)
	c, ok = g.CellAt(141.4, 20.3)
	require.True(t, ok)
	require.Equal(t, grid.C(4, 2), c)
}

func TestSetDesignation(t *testing.T) {
	g := grid.New(5, 5, 1)

	require.True(t, g.SetDesignation(grid.C(1, 1), grid.RoleStart))
	require.True(t, g.SetDesignation(grid.C(2, 3), grid.RoleGoal))
	require.True(t, g.SetDesignation(grid.C(4, 2), grid.RoleObstacle))

	require.Equal(t, grid.TileStart, g.Tile(grid.C(1, 1)).Kind)
	require.Equal(t, grid.TileGoal, g.Tile(grid.C(2, 3)).Kind)
	require.Equal(t, grid.TileObstacle, g.Tile(grid.C(4, 2)).Kind)

	start, ok := g.Start()
	require.True(t, ok)
	require.Equal(t, grid.C(1, 1), start)

	// Occupied cells reject any new role.
	require.False(t, g.SetDesignation(grid.C(1, 1), grid.RoleObstacle))
	require.False(t, g.SetDesignation(grid.C(4, 2), grid.RoleGoal))
	require.False(t, g.SetDesignation(grid.C(2, 3), grid.RoleStart))
	require.Equal(t, grid.TileStart, g.Tile(grid.C(1, 1)).Kind)
}

func TestSetDesignationMovesEndpoint(t *testing.T) {
	g := grid.New(5, 5, 1)

	require.True(t, g.SetDesignation(grid.C(0, 0), grid.RoleStart))
	require.True(t, g.SetDesignation(grid.C(3, 3), grid.RoleStart))

	require.Equal(t, 1, g.Count(grid.TileStart))
	require.Equal(t, grid.TileEmpty, g.Tile(grid.C(0, 0)).Kind)
	start, _ := g.Start()
	require.Equal(t, grid.C(3, 3), start)
}

func TestSetDesignationOutOfBounds(t *testing.T) {
	g := grid.New(10, 10, 1)

	require.True(t, g.SetDesignation(grid.C(10, 10), grid.RoleGoal))
	goal, ok := g.Goal()
	require.True(t, ok)
	require.Equal(t, grid.C(10, 10), goal)
	require.Equal(t, 0, g.Count(grid.TileGoal))

	require.False(t, g.SetDesignation(grid.C(-1, 3), grid.RoleObstacle))
}

func TestIsObstacleFailsClosed(t *testing.T) {
	g := grid.New(4, 3, 1)
	g.SetDesignation(grid.C(1, 1), grid.RoleObstacle)

	tests := []struct {
		name string
		c    grid.Coord
		want bool
	}{
		{"obstacle", grid.C(1, 1), true},
		{"empty", grid.C(0, 0), false},
		{"left of grid", grid.C(-1, 0), true},
		{"above grid", grid.C(0, -1), true},
		{"right of grid", grid.C(4, 0), true},
		{"below grid", grid.C(0, 3), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.IsObstacle(tc.c))
		})
	}
}

func TestNeighborsOrderAndBounds(t *testing.T) {
	g := grid.New(10, 10, 1)

	require.Equal(t,
		[]grid.Coord{grid.C(3, 2), grid.C(3, 4), grid.C(2, 3), grid.C(4, 3)},
		g.Neighbors(grid.C(3, 3)))

	// Corners and edges never produce coordinates outside the grid.
	for _, c := range []grid.Coord{grid.C(0, 0), grid.C(9, 0), grid.C(0, 9), grid.C(9, 9), grid.C(5, 0), grid.C(0, 5)} {
		for _, n := range g.Neighbors(c) {
			require.True(t, g.InBounds(n), "neighbor %v of %v out of bounds", n, c)
		}
	}
	require.Equal(t, []grid.Coord{grid.C(0, 1), grid.C(1, 0)}, g.Neighbors(grid.C(0, 0)))

	g.SetDesignation(grid.C(3, 2), grid.RoleObstacle)
	require.Equal(t, []grid.Coord{grid.C(3, 4), grid.C(2, 3), grid.C(4, 3)}, g.Neighbors(grid.C(3, 3)))
}

func TestMarkingKeepsEndpoints(t *testing.T) {
	g := grid.New(5, 5, 1)
	g.SetDesignation(grid.C(0, 0), grid.RoleStart)
	g.SetDesignation(grid.C(4, 4), grid.RoleGoal)

	for _, c := range []grid.Coord{grid.C(0, 0), grid.C(4, 4)} {
		g.MarkVisited(c)
		g.MarkFrontier(c)
		g.MarkPath(c)
	}
	require.Equal(t, grid.TileStart, g.Tile(grid.C(0, 0)).Kind)
	require.Equal(t, grid.TileGoal, g.Tile(grid.C(4, 4)).Kind)

	g.MarkFrontier(grid.C(2, 2))
	require.Equal(t, grid.TileFrontier, g.Tile(grid.C(2, 2)).Kind)
	g.MarkVisited(grid.C(2, 2))
	require.Equal(t, grid.Tile{Kind: grid.TileEmpty, Visited: true}, g.Tile(grid.C(2, 2)))
	g.MarkPath(grid.C(2, 2))
	require.Equal(t, grid.TilePath, g.Tile(grid.C(2, 2)).Kind)

	// Out of bounds marks are silent.
	g.MarkVisited(grid.C(9, 9))
	g.MarkFrontier(grid.C(-1, 0))
	g.MarkPath(grid.C(5, 0))
}

func TestCostAndHeuristic(t *testing.T) {
	g := grid.New(10, 10, 1)

	require.Equal(t, 1, g.Cost(grid.C(0, 0), grid.C(0, 1)))
	require.Equal(t, 0, g.Heuristic(grid.C(3, 3), grid.C(3, 3)))
	require.Equal(t, 14, g.Heuristic(grid.C(3, 3), grid.C(10, 10)))
	require.Equal(t, 14, g.Heuristic(grid.C(10, 10), grid.C(3, 3)))
}

func TestReset(t *testing.T) {
	g := grid.New(5, 5, 1)
	g.SetDesignation(grid.C(0, 0), grid.RoleStart)
	g.SetDesignation(grid.C(4, 4), grid.RoleGoal)
	g.SetDesignation(grid.C(2, 2), grid.RoleObstacle)
	g.MarkVisited(grid.C(1, 1))

	g.Reset()

	require.Equal(t, 25, g.Count(grid.TileEmpty))
	require.Equal(t, grid.Empty(), g.Tile(grid.C(1, 1)))
	_, hasStart := g.Start()
	_, hasGoal := g.Goal()
	require.False(t, hasStart)
	require.False(t, hasGoal)
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New(3, 3, 1)
	g.SetDesignation(grid.C(0, 0), grid.RoleStart)

	clone := g.Clone()
	clone.MarkVisited(grid.C(1, 1))
	clone.SetDesignation(grid.C(2, 2), grid.RoleStart)

	require.Equal(t, grid.Empty(), g.Tile(grid.C(1, 1)))
	start, _ := g.Start()
	require.Equal(t, grid.C(0, 0), start)
	require.Equal(t, grid.TileStart, g.Tile(grid.C(0, 0)).Kind)
}

func TestRender(t *testing.T) {
	g := grid.New(3, 2, 1)
	g.SetDesignation(grid.C(0, 0), grid.RoleStart)
	g.SetDesignation(grid.C(2, 1), grid.RoleGoal)
	g.SetDesignation(grid.C(1, 0), grid.RoleObstacle)

	dst := core.NewScreen(8, 3)
	cursor := grid.C(0, 1)
	g.Render(dst, 1, 1, &cursor)

	require.Equal(t, " S █ ·  ", dst.Row(1))
	require.Equal(t, " ·◂· G  ", dst.Row(2))
	require.Equal(t, core.ColorBrown, dst.GetCell(3, 1).Color)
	require.Equal(t, core.NewRect(1, 1, 6, 2), g.Bounds(1, 1))
}

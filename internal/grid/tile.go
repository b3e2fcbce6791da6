package grid

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// TileKind is the logical and visual status of a cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileStart
	TileGoal
	TileObstacle
	TileFrontier
	TilePath
)

// String returns the name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileStart:
		return "Start"
	case TileGoal:
		return "Goal"
	case TileObstacle:
		return "Obstacle"
	case TileFrontier:
		return "Frontier"
	case TilePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// Tile is the state of one cell. Visited only has meaning for TileEmpty.
type Tile struct {
	Kind    TileKind
	Visited bool
}

// Empty returns an unvisited empty tile.
func Empty() Tile {
	return Tile{Kind: TileEmpty}
}

// IsEndpoint reports whether the tile is the start or the goal.
func (t Tile) IsEndpoint() bool {
	return t.Kind == TileStart || t.Kind == TileGoal
}

// Glyph returns the rune and color a tile is drawn with.
func (t Tile) Glyph() (rune, core.Color) {
	switch t.Kind {
	case TileStart:
		return 'S', core.ColorYellow
	case TileGoal:
		return 'G', core.ColorBrightBlue
	case TileObstacle:
		return '█', core.ColorBrown
	case TileFrontier:
		return '▒', core.ColorCyan
	case TilePath:
		return '●', core.ColorBlue
	}
	if t.Visited {
		return '░', core.ColorGreen
	}
	return '·', core.ColorGray
}

// Role is a designation the user can give to an empty cell.
type Role uint8

const (
	RoleStart Role = iota
	RoleGoal
	RoleObstacle
)

// String returns the name of the role.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleGoal:
		return "goal"
	case RoleObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

package maps

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

var (
	// ErrEmptyLayout is returned for a map without rows or columns.
	ErrEmptyLayout = errors.New("maps: empty layout")
	// ErrRaggedLayout is returned when layout rows differ in length.
	ErrRaggedLayout = errors.New("maps: layout rows differ in length")
	// ErrBadTile is returned for a character outside ".#SG".
	ErrBadTile = errors.New("maps: unknown layout character")
	// ErrDuplicateEndpoint is returned for a second S or G.
	ErrDuplicateEndpoint = errors.New("maps: start or goal given twice")
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   []string          `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Parse parses a YAML map file.
func Parse(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Map{}, errors.New("maps: missing id")
	}

	m, err := FromLayout(ym.Layout)
	if err != nil {
		return Map{}, err
	}
	m.ID = ym.ID
	m.Name = ym.Name
	if m.Name == "" {
		m.Name = ym.ID
	}
	m.Metadata = ym.Metadata
	return m, nil
}

// FromLayout builds a map from rows of layout characters.
func FromLayout(rows []string) (Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Map{}, ErrEmptyLayout
	}

	m := Map{Width: len(rows[0]), Height: len(rows)}
	for y, row := range rows {
		if len(row) != m.Width {
			return Map{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(row), m.Width)
		}
		for x := 0; x < len(row); x++ {
			c := grid.C(x, y)
			switch row[x] {
			case CharEmpty:
			case CharObstacle:
				m.Obstacles = append(m.Obstacles, c)
			case CharStart:
				if m.Start != nil {
					return Map{}, fmt.Errorf("%w: S at %v", ErrDuplicateEndpoint, c)
				}
				m.Start = &c
			case CharGoal:
				if m.Goal != nil {
					return Map{}, fmt.Errorf("%w: G at %v", ErrDuplicateEndpoint, c)
				}
				m.Goal = &c
			default:
				return Map{}, fmt.Errorf("%w %q at %v", ErrBadTile, row[x], c)
			}
		}
	}
	return m, nil
}

// Marshal encodes a map as YAML.
func Marshal(m Map) ([]byte, error) {
	return yaml.Marshal(YAMLMap{
		ID:       m.ID,
		Name:     m.Name,
		Layout:   m.Layout(),
		Metadata: m.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

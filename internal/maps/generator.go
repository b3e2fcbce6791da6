package maps

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// GenParams configures random map generation.
type GenParams struct {
	Width   int
	Height  int
	Density float64 // share of cells turned into obstacles, 0..0.9
	Seed    uint64  // same seed, same map
}

// DefaultGenParams returns a medium-sized, lightly cluttered map.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:   32,
		Height:  16,
		Density: 0.25,
		Seed:    1,
	}
}

// rng is a deterministic xorshift64 generator.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

func (r *rng) float() float64 {
	return float64(r.next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Generate builds a random map with distinct start and goal cells.
// The goal is not guaranteed to be reachable.
func Generate(p GenParams) (Map, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return Map{}, ErrEmptyLayout
	}
	if p.Width*p.Height < 2 {
		return Map{}, fmt.Errorf("maps: %dx%d is too small for a start and a goal", p.Width, p.Height)
	}
	density := min(max(p.Density, 0), 0.9)

	r := newRNG(p.Seed)
	start := grid.C(r.intn(p.Width), r.intn(p.Height))
	goal := start
	for goal == start {
		goal = grid.C(r.intn(p.Width), r.intn(p.Height))
	}

	m := Map{
		ID:     fmt.Sprintf("random-%d", p.Seed),
		Name:   fmt.Sprintf("Random #%d", p.Seed),
		Width:  p.Width,
		Height: p.Height,
		Start:  &start,
		Goal:   &goal,
		Metadata: map[string]string{
			"density": fmt.Sprintf("%.2f", density),
		},
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := grid.C(x, y)
			if r.float() < density && c != start && c != goal {
				m.Obstacles = append(m.Obstacles, c)
			}
		}
	}
	return m, nil
}

package maps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/search"
)

const sampleYAML = `
id: sample
name: Sample
metadata:
  description: tiny
layout:
  - "S.#"
  - "..#"
  - "..G"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.Equal(t, "sample", m.ID)
	require.Equal(t, "Sample", m.Name)
	require.Equal(t, "tiny", m.Description())
	require.Equal(t, 3, m.Width)
	require.Equal(t, 3, m.Height)
	require.Equal(t, grid.C(0, 0), *m.Start)
	require.Equal(t, grid.C(2, 2), *m.Goal)
	require.Equal(t, []grid.Coord{grid.C(2, 0), grid.C(2, 1)}, m.Obstacles)
	require.Equal(t, []string{"S.#", "..#", "..G"}, m.Layout())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "id: x\nlayout: []\n", ErrEmptyLayout},
		{"blank row", "id: x\nlayout: [\"\"]\n", ErrEmptyLayout},
		{"ragged", "id: x\nlayout: [\"...\", \"..\"]\n", ErrRaggedLayout},
		{"bad tile", "id: x\nlayout: [\"..x\"]\n", ErrBadTile},
		{"two starts", "id: x\nlayout: [\"S.S\"]\n", ErrDuplicateEndpoint},
		{"two goals", "id: x\nlayout: [\"G\", \"G\"]\n", ErrDuplicateEndpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("layout: [\"S.G\"]\n"))
	require.Error(t, err, "missing id")
	_, err = Parse([]byte("id: [unterminated"))
	require.Error(t, err)
}

func TestToGrid(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	g := m.ToGrid()
	require.Equal(t, 3, g.Columns())
	require.Equal(t, 3, g.Rows())
	start, ok := g.Start()
	require.True(t, ok)
	require.Equal(t, grid.C(0, 0), start)
	require.True(t, g.IsObstacle(grid.C(2, 1)))
	require.Equal(t, grid.TileGoal, g.Tile(grid.C(2, 2)).Kind)
}

func TestMarshalKeepsLayout(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Marshal(m)
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, m.Layout(), back.Layout())
}

func solve(t *testing.T, m Map, k search.Kind) search.Stats {
	t.Helper()
	g := m.ToGrid()
	alg, err := search.New(k, search.WithInterval(0))
	require.NoError(t, err)
	require.NoError(t, alg.Start(g))
	for i := 0; i < 10000 && !alg.HasCompleted(); i++ {
		alg.ExecuteStep(g, 0)
	}
	require.True(t, alg.HasCompleted())
	return alg.Stats()
}

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	ids := make([]string, len(builtins))
	for i, m := range builtins {
		ids[i] = m.ID
	}
	if diff := cmp.Diff([]string{"enclosed", "maze", "open", "wall"}, ids); diff != "" {
		t.Fatalf("builtin IDs mismatch (-want +got):\n%s", diff)
	}

	// Shortest path edges per map; -1 means unreachable.
	want := map[string]int{"open": 18, "wall": 18, "maze": 30, "enclosed": -1}
	for _, m := range builtins {
		t.Run(m.ID, func(t *testing.T) {
			require.NotNil(t, m.Start)
			require.NotNil(t, m.Goal)
			require.NotEmpty(t, m.Description())

			stats := solve(t, m, search.KindAStar)
			if want[m.ID] < 0 {
				require.False(t, stats.Found)
				return
			}
			require.True(t, stats.Found)
			require.Equal(t, want[m.ID], stats.PathLength-1)
		})
	}
}

func TestLoaderDirectory(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("b.yaml", "id: beta\nlayout: [\"S.G\"]\n")
	write("nested/a.yml", "id: alpha\nlayout: [\"SG\"]\n")
	write("broken.yaml", "id: broken\nlayout: [\"S..\", \".\"]\n")
	write("notes.txt", "id: ignored\n")
	write("open.yaml", "id: open\nname: Custom Open\nlayout: [\"S...G\"]\n")

	loader := NewLoader(root)
	all, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alpha", all[0].ID)
	require.Equal(t, filepath.Join(root, "nested", "a.yml"), all[0].FilePath)

	ids, err := loader.ListIDs()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", "open", "enclosed", "maze", "wall"}, ids)

	m, err := loader.Resolve("open")
	require.NoError(t, err)
	require.Equal(t, "Custom Open", m.Name, "user maps shadow built-ins")

	m, err = loader.Resolve("maze")
	require.NoError(t, err)
	require.Empty(t, m.FilePath)

	m, err = loader.Resolve(filepath.Join(root, "b.yaml"))
	require.NoError(t, err)
	require.Equal(t, "beta", m.ID)

	_, err = loader.Resolve("nowhere")
	require.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing"))
	all, err := loader.LoadAll()
	require.NoError(t, err)
	require.Empty(t, all)

	ids, err := NewLoader("").ListIDs()
	require.NoError(t, err)
	require.Len(t, ids, len(Builtins()))
}

func TestGenerate(t *testing.T) {
	p := GenParams{Width: 20, Height: 10, Density: 0.3, Seed: 42}
	a, err := Generate(p)
	require.NoError(t, err)
	b, err := Generate(p)
	require.NoError(t, err)
	require.Equal(t, a.Layout(), b.Layout(), "same seed must give the same map")

	require.NotEqual(t, *a.Start, *a.Goal)
	for _, c := range a.Obstacles {
		require.NotEqual(t, *a.Start, c)
		require.NotEqual(t, *a.Goal, c)
	}
	share := float64(len(a.Obstacles)) / float64(p.Width*p.Height)
	require.InDelta(t, 0.3, share, 0.1)

	p.Seed = 43
	c, err := Generate(p)
	require.NoError(t, err)
	require.NotEqual(t, a.Layout(), c.Layout())
}

func TestGenerateRejectsTinyMaps(t *testing.T) {
	_, err := Generate(GenParams{Width: 0, Height: 4})
	require.True(t, errors.Is(err, ErrEmptyLayout))
	_, err = Generate(GenParams{Width: 1, Height: 1})
	require.Error(t, err)

	m, err := Generate(GenParams{Width: 2, Height: 1, Density: 1})
	require.NoError(t, err)
	require.Empty(t, m.Obstacles)
}

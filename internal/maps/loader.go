package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the maps shipped with the binary, sorted by ID.
func Builtins() []Map {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}

	var result []Map
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			continue
		}
		m, err := Parse(data)
		if err != nil {
			continue
		}
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. A missing root yields no maps.
// Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Map, error) {
	if l.Root == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	var result []Map
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		result = append(result, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// Catalog returns the user maps followed by the built-ins they do not shadow.
func (l *Loader) Catalog() ([]Map, error) {
	user, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(user))
	for _, m := range user {
		seen[m.ID] = true
	}
	result := user
	for _, m := range Builtins() {
		if !seen[m.ID] {
			result = append(result, m)
		}
	}
	return result, nil
}

// Resolve finds a map by file path or by ID. User maps shadow built-ins.
func (l *Loader) Resolve(ref string) (Map, error) {
	if slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return l.LoadFile(ref)
		}
	}

	all, err := l.Catalog()
	if err != nil {
		return Map{}, err
	}
	for _, m := range all {
		if m.ID == ref {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("map not found: %s", ref)
}

// ListIDs returns the IDs of every map in the catalog.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.Catalog()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids, nil
}

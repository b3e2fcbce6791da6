// Package registry exposes the fixed set of search algorithms by ID.
// The CLI, menus and storage refer to algorithms only through these IDs.
package registry

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/search"
)

// ErrUnknownAlgorithm is returned when an ID is not in the table.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

// AlgorithmInfo contains metadata about an algorithm.
type AlgorithmInfo struct {
	ID          string
	Title       string
	Description string
	Kind        search.Kind
}

var table = []AlgorithmInfo{
	{
		ID:          search.KindBFS.ID(),
		Title:       search.KindBFS.Name(),
		Description: "explores in rings, shortest path on unit grids",
		Kind:        search.KindBFS,
	},
	{
		ID:          search.KindDijkstra.ID(),
		Title:       search.KindDijkstra.Name(),
		Description: "cheapest known cell first",
		Kind:        search.KindDijkstra,
	},
	{
		ID:          search.KindGreedy.ID(),
		Title:       search.KindGreedy.Name(),
		Description: "closest-looking cell first, fast but not optimal",
		Kind:        search.KindGreedy,
	},
	{
		ID:          search.KindAStar.ID(),
		Title:       search.KindAStar.Name(),
		Description: "cost so far plus Manhattan estimate",
		Kind:        search.KindAStar,
	},
}

// List returns every algorithm in menu order.
func List() []AlgorithmInfo {
	result := make([]AlgorithmInfo, len(table))
	copy(result, table)
	return result
}

// Lookup returns the metadata for id.
func Lookup(id string) (AlgorithmInfo, error) {
	for _, info := range table {
		if info.ID == id {
			return info, nil
		}
	}
	return AlgorithmInfo{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, id)
}

// Create instantiates a fresh algorithm by its ID.
func Create(id string, opts ...search.Option) (search.Algorithm, error) {
	info, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return search.New(info.Kind, opts...)
}

// Exists checks if an algorithm with the given ID exists.
func Exists(id string) bool {
	_, err := Lookup(id)
	return err == nil
}

// Next returns the ID following id in menu order, wrapping around.
// An unknown id yields the first entry.
func Next(id string) string {
	for i, info := range table {
		if info.ID == id {
			return table[(i+1)%len(table)].ID
		}
	}
	return table[0].ID
}

// IDs returns the algorithm IDs in menu order.
func IDs() []string {
	ids := make([]string, len(table))
	for i, info := range table {
		ids[i] = info.ID
	}
	return ids
}

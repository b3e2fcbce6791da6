package session

import (
	"github.com/vovakirdan/tui-pathfinder/internal/search"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// RunSaver persists finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

var _ RunSaver = (*storage.Store)(nil)

// NewRunRecord builds a storage record from a finished run.
func NewRunRecord(stats search.Stats, mapID string, columns, rows int, source string) storage.RunRecord {
	return storage.RunRecord{
		Algorithm:  stats.Algorithm,
		MapID:      mapID,
		Columns:    columns,
		Rows:       rows,
		Found:      stats.Found,
		PathLength: stats.PathLength,
		Steps:      int(stats.Steps),
		Visited:    stats.Visited,
		Interval:   stats.Interval,
		Source:     source,
	}
}

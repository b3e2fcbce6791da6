// Package storage provides SQLite-based persistence for search runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished search.
type RunRecord struct {
	ID         int64
	Algorithm  string
	MapID      string
	Columns    int
	Rows       int
	Found      bool
	PathLength int
	Steps      int
	Visited    int
	Interval   time.Duration
	Source     string // "tui", "ssh" or "solve"
	CreatedAt  time.Time
}

// AlgorithmStats contains aggregated statistics for one algorithm.
type AlgorithmStats struct {
	Algorithm  string
	Runs       int
	Found      int
	AvgVisited float64
	AvgPath    float64
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			algorithm TEXT NOT NULL,
			map_id TEXT NOT NULL DEFAULT '',
			grid_columns INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			found INTEGER NOT NULL,
			path_length INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			visited INTEGER NOT NULL DEFAULT 0,
			interval_ms INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(algorithm, map_id, found, visited);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (algorithm, map_id, grid_columns, grid_rows, found, path_length, steps, visited, interval_ms, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Algorithm, r.MapID, r.Columns, r.Rows, r.Found,
		r.PathLength, r.Steps, r.Visited, r.Interval.Milliseconds(), r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, algorithm, map_id, grid_columns, grid_rows, found, path_length, steps, visited, interval_ms, source, created_at`

// RecentRuns returns the newest runs first. An empty algorithm matches all.
func (s *Store) RecentRuns(algorithm string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR algorithm = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		algorithm, algorithm, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the successful run with the fewest visited cells for the
// algorithm on mapID, or nil when there is none.
func (s *Store) BestRun(algorithm, mapID string) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE algorithm = ? AND map_id = ? AND found = 1
		 ORDER BY visited ASC, path_length ASC, id ASC
		 LIMIT 1`,
		algorithm, mapID,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRuns deletes the runs of one algorithm, or all runs for "".
func (s *Store) ClearRuns(algorithm string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR algorithm = ?", algorithm, algorithm)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllAlgorithmStats aggregates the runs per algorithm.
func (s *Store) AllAlgorithmStats() (map[string]*AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT algorithm, COUNT(*), SUM(found), AVG(visited),
		        COALESCE(AVG(CASE WHEN found = 1 THEN path_length END), 0), MAX(created_at)
		 FROM runs
		 GROUP BY algorithm`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get algorithm stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*AlgorithmStats)
	for rows.Next() {
		var st AlgorithmStats
		var lastRun any
		if err := rows.Scan(&st.Algorithm, &st.Runs, &st.Found, &st.AvgVisited, &st.AvgPath, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Algorithm] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var intervalMs int64
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.Algorithm,
		&r.MapID,
		&r.Columns,
		&r.Rows,
		&r.Found,
		&r.PathLength,
		&r.Steps,
		&r.Visited,
		&intervalMs,
		&r.Source,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Interval = time.Duration(intervalMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

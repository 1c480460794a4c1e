package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	min_re         REAL NOT NULL,
	max_re         REAL NOT NULL,
	min_im         REAL NOT NULL,
	max_im         REAL NOT NULL,
	num_re         INTEGER NOT NULL,
	num_im         INTEGER NOT NULL,
	eps            REAL NOT NULL,
	max_iterations INTEGER NOT NULL,
	precision      TEXT NOT NULL,
	duration_ms    INTEGER NOT NULL,
	cells          INTEGER NOT NULL,
	non_finite     INTEGER NOT NULL,
	terminated     INTEGER NOT NULL,
	undetermined   INTEGER NOT NULL,
	created_at     TEXT NOT NULL
);
`
// #endregion schema

// #region store
// Store is the SQLite-backed catalog of scan runs.
type Store struct {
	db *sql.DB
}

// NewStore opens the catalog database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion store

// #region record
// Record inserts a run, assigning its ID and timestamp, and returns the
// completed value.
func (s *Store) Record(run Run) (Run, error) {
	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, min_re, max_re, min_im, max_im, num_re, num_im,
		 eps, max_iterations, precision, duration_ms, cells, non_finite, terminated,
		 undetermined, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.MinRe, run.MaxRe, run.MinIm, run.MaxIm,
		run.NumRe, run.NumIm,
		run.Eps, run.MaxIterations, run.Precision,
		run.Duration.Milliseconds(),
		run.Cells, run.NonFinite, run.Terminated, run.Undetermined,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}
// #endregion record

// #region queries
// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, min_re, max_re, min_im, max_im, num_re, num_im,
		 eps, max_iterations, precision, duration_ms, cells, non_finite,
		 terminated, undetermined, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Get returns a single run by ID.
func (s *Store) Get(id string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT run_id, min_re, max_re, min_im, max_im, num_re, num_im,
		 eps, max_iterations, precision, duration_ms, cells, non_finite,
		 terminated, undetermined, created_at
		 FROM runs WHERE run_id = ?`, id)
	return scanRun(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (Run, error) {
	var run Run
	var durMs int64
	var created string
	err := r.Scan(
		&run.ID,
		&run.MinRe, &run.MaxRe, &run.MinIm, &run.MaxIm,
		&run.NumRe, &run.NumIm,
		&run.Eps, &run.MaxIterations, &run.Precision,
		&durMs,
		&run.Cells, &run.NonFinite, &run.Terminated, &run.Undetermined,
		&created,
	)
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Duration = time.Duration(durMs) * time.Millisecond
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	return run, nil
}
// #endregion queries

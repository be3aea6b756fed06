// Package ledger persists a provenance record for every artifact the
// pipeline writes, backed by SQLite under the derivatives root. The
// report command reads it to show what a dataset's derivatives contain
// and which run produced them.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"flowline/internal/outputs"
)

// FileName is the ledger database file created under the derivatives
// root.
const FileName = "flowline.db"

const schema = `
CREATE TABLE IF NOT EXISTS artifacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    step TEXT NOT NULL,
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    size_bytes INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_artifacts_run ON artifacts(run_id);
CREATE INDEX IF NOT EXISTS idx_artifacts_step ON artifacts(step);
`

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database in dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, FileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordArtifact inserts one artifact row. It implements
// outputs.ArtifactRecorder.
func (s *Store) RecordArtifact(rec outputs.ArtifactRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO artifacts (run_id, step, name, path, size_bytes, duration_ms, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.StepID,
		rec.Name,
		rec.Path,
		rec.SizeBytes,
		rec.Duration.Milliseconds(),
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	return nil
}

// Artifact is one recorded write.
type Artifact struct {
	ID        int64
	RunID     string
	Step      string
	Name      string
	Path      string
	SizeBytes int64
	Duration  time.Duration
	CreatedAt time.Time
}

// List returns recorded artifacts, newest first.
func (s *Store) List(ctx context.Context) ([]Artifact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, step, name, path, size_bytes, duration_ms, created_at
         FROM artifacts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []Artifact
	for rows.Next() {
		var (
			artifact   Artifact
			durationMS int64
			createdAt  string
		)
		if err := rows.Scan(
			&artifact.ID,
			&artifact.RunID,
			&artifact.Step,
			&artifact.Name,
			&artifact.Path,
			&artifact.SizeBytes,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		artifact.Duration = time.Duration(durationMS) * time.Millisecond
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			artifact.CreatedAt = parsed
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// schemaVersions are applied in order; the version table records progress
// so re-opening an existing database is cheap and idempotent.
var schemaVersions = []string{
	`CREATE TABLE IF NOT EXISTS extraction_runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		sentence_count INTEGER NOT NULL,
		filename TEXT NOT NULL DEFAULT '',
		concept_count INTEGER NOT NULL,
		tool_error TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON extraction_runs(started_at DESC);`,
}

// RunStore is a SQLite-backed extraction run history.
type RunStore struct {
	db   *sql.DB
	path string
}

// NewRunStore creates a run store at the specified data directory.
// If dataDir is empty, defaults to ~/.metamap-cli/data/history.db.
func NewRunStore(dataDir string) (*RunStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".metamap-cli", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode: history writes must never block a concurrent reader.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &RunStore{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *RunStore) Path() string {
	return s.path
}

// migrate applies pending schema versions.
func (s *RunStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	for i, stmt := range schemaVersions {
		version := i + 1
		if version <= current {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema version %d: %w", version, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording schema version %d: %w", version, err)
		}
	}

	return nil
}

// SaveRun records one completed extraction call.
func (s *RunStore) SaveRun(ctx context.Context, run domain.ExtractionRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extraction_runs
			(id, started_at, duration_ms, sentence_count, filename, concept_count, tool_error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.StartedAt.UTC(),
		run.Duration.Milliseconds(),
		run.SentenceCount,
		run.Filename,
		run.ConceptCount,
		run.ToolError,
	)
	if err != nil {
		return fmt.Errorf("inserting extraction run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
// Returns domain.ErrNotFound if the run does not exist.
func (s *RunStore) GetRun(ctx context.Context, id string) (*domain.ExtractionRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, duration_ms, sentence_count, filename, concept_count, tool_error
		FROM extraction_runs WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning extraction run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, duration_ms, sentence_count, filename, concept_count, tool_error
		FROM extraction_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying extraction runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ExtractionRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning extraction run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating extraction runs: %w", err)
	}
	return runs, nil
}

// scanRun maps one row onto a domain run.
func scanRun(scan func(dest ...any) error) (*domain.ExtractionRun, error) {
	var (
		run        domain.ExtractionRun
		startedAt  time.Time
		durationMS int64
	)
	if err := scan(
		&run.ID,
		&startedAt,
		&durationMS,
		&run.SentenceCount,
		&run.Filename,
		&run.ConceptCount,
		&run.ToolError,
	); err != nil {
		return nil, err
	}
	run.StartedAt = startedAt
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}

// Package history records finished runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/samdwyer/embercrypt/internal/telemetry"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeDeath   Outcome = "death"
	OutcomeVictory Outcome = "victory"
	OutcomeQuit    Outcome = "quit"
)

// Run is one finished (or suspended) run.
type Run struct {
	ID             string
	Outcome        Outcome
	Floor          int
	Turns          int
	CharacterLevel int
	Kills          int
	FinishedAt     time.Time
}

// Store persists runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the history database at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts or replaces a run. Re-recording the same ID overwrites it,
// so a quit run that is later continued keeps a single row.
func (s *Store) Record(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(run.ID) == "" {
		return fmt.Errorf("run id is required")
	}

	tracer := telemetry.Tracer("history")
	ctx, span := tracer.Start(ctx, "history.record")
	defer span.End()
	span.SetAttributes(
		attribute.String("run.outcome", string(run.Outcome)),
		attribute.Int("run.floor", run.Floor),
	)

	finishedAt := run.FinishedAt.UTC()
	if finishedAt.IsZero() {
		finishedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO runs (
		   id, outcome, floor, turns, character_level, kills, finished_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		string(run.Outcome),
		run.Floor,
		run.Turns,
		run.CharacterLevel,
		run.Kills,
		finishedAt.UnixMilli(),
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, outcome, floor, turns, character_level, kills, finished_at
		   FROM runs
		  ORDER BY finished_at DESC, id
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			outcome  string
			finished int64
		)
		if err := rows.Scan(&run.ID, &outcome, &run.Floor, &run.Turns, &run.CharacterLevel, &run.Kills, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Outcome = Outcome(outcome)
		run.FinishedAt = time.UnixMilli(finished).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// applyMigrations runs each embedded migration at most once.
func applyMigrations(sqlDB *sql.DB) error {
	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
	    name TEXT PRIMARY KEY,
	    applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		var n int
		if err := sqlDB.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, file).Scan(&n); err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if n > 0 {
			continue
		}
		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

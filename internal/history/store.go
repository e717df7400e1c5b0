// Package history persists scan results in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"videofix/internal/util"
	"videofix/internal/validation"
)

// Store manages scan history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one recorded file scan.
type Entry struct {
	ID         int64
	RunID      string
	Path       string
	Target     string
	Container  string
	VideoCodec string
	AudioCodec string
	PixFmt     string
	Validation validation.Validation
	Remediated bool
	CreatedAt  time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    path TEXT NOT NULL,
    target TEXT NOT NULL,
    container TEXT NOT NULL,
    video_codec TEXT NOT NULL,
    audio_codec TEXT NOT NULL,
    pix_fmt TEXT NOT NULL,
    container_okay INTEGER NOT NULL,
    video_okay INTEGER NOT NULL,
    audio_okay INTEGER NOT NULL,
    pix_fmt_okay INTEGER NOT NULL,
    valid INTEGER NOT NULL,
    remediated INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans (created_at);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := util.EnsureDirectory(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
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
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
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
	if s == nil {
		return ""
	}
	return s.path
}

// Add records one scan. The entry's CreatedAt is ignored; the insert
// timestamp is always the current time.
func (s *Store) Add(ctx context.Context, e Entry) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scans (
            run_id, path, target, container, video_codec, audio_codec, pix_fmt,
            container_okay, video_okay, audio_okay, pix_fmt_okay,
            valid, remediated, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID,
		e.Path,
		e.Target,
		e.Container,
		e.VideoCodec,
		e.AudioCodec,
		e.PixFmt,
		boolInt(e.Validation.ContainerOkay),
		boolInt(e.Validation.VideoOkay),
		boolInt(e.Validation.AudioOkay),
		boolInt(e.Validation.PixFmtOkay),
		boolInt(e.Validation.IsValid()),
		boolInt(e.Remediated),
		now,
	)
	if err != nil {
		return fmt.Errorf("record scan: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, path, target, container, video_codec, audio_codec, pix_fmt,
            container_okay, video_okay, audio_okay, pix_fmt_okay, remediated, created_at
        FROM scans ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			cOK, vOK   int
			aOK, pOK   int
			remediated int
			createdAt  string
		)
		if err := rows.Scan(
			&e.ID, &e.RunID, &e.Path, &e.Target,
			&e.Container, &e.VideoCodec, &e.AudioCodec, &e.PixFmt,
			&cOK, &vOK, &aOK, &pOK, &remediated, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Validation = validation.Validation{
			ContainerOkay: cOK != 0,
			VideoOkay:     vOK != 0,
			AudioOkay:     aOK != 0,
			PixFmtOkay:    pOK != 0,
		}
		e.Remediated = remediated != 0
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all history entries and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scans")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package episode

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subcast/internal/services"
)

//go:embed schema.sql
var schemaSQL string

// Record is one ledger row describing a processed episode.
type Record struct {
	ID              string
	Title           string
	Slug            string
	Source          string
	CueCount        int
	DurationSeconds float64
	OutputDir       string
	CreatedAt       time.Time
}

// Store manages episode persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the ledger database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, services.Wrap(services.ErrValidation, "episode", "open ledger", "empty database path", nil)
	}
	path = filepath.Clean(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "episode", "open ledger", path, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, services.Wrap(services.ErrConfiguration, "episode", "open ledger", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, services.Wrap(services.ErrConfiguration, "episode", "apply schema", path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
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

// Add inserts a ledger row. A zero ID or CreatedAt is filled in.
func (s *Store) Add(ctx context.Context, rec Record) (Record, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return Record{}, services.Wrap(services.ErrValidation, "episode", "record", "empty title", nil)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO episodes
		(id, title, slug, source, cue_count, duration_seconds, output_dir, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Title, rec.Slug, rec.Source,
		rec.CueCount, rec.DurationSeconds, rec.OutputDir,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert episode: %w", err)
	}
	return rec, nil
}

// List returns all ledger rows, most recent first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	const query = `SELECT id, title, slug, source, cue_count, duration_seconds, output_dir, created_at
		FROM episodes ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return records, nil
}

// FindBySlug returns ledger rows for one episode slug, most recent first.
func (s *Store) FindBySlug(ctx context.Context, slug string) ([]Record, error) {
	const query = `SELECT id, title, slug, source, cue_count, duration_seconds, output_dir, created_at
		FROM episodes WHERE slug = ? ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("find episodes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find episodes: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var createdAt string
	if err := rows.Scan(
		&rec.ID, &rec.Title, &rec.Slug, &rec.Source,
		&rec.CueCount, &rec.DurationSeconds, &rec.OutputDir, &createdAt,
	); err != nil {
		return Record{}, fmt.Errorf("scan episode: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = parsed
	return rec, nil
}

package rosterstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"chosenoffset.com/herobound/internal/roster"
)

// SQLiteStore persists hand-off documents in a single SQLite file
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (and creates if needed) the roster database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS rosters (
		key TEXT PRIMARY KEY,
		doc TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`)
	return err
}

// Save upserts the roster for key
func (s *SQLiteStore) Save(ctx context.Context, key string, heroes []roster.Record) error {
	createdAt := s.now()
	doc, err := EncodeHandoff(key, heroes, createdAt)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rosters (key, doc, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET doc=excluded.doc, created_at=excluded.created_at`,
		key, string(doc), createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

// Load reads the roster for key
func (s *SQLiteStore) Load(ctx context.Context, key string) (Handoff, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM rosters WHERE key = ?`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return Handoff{}, ErrNotFound
	}
	if err != nil {
		return Handoff{}, fmt.Errorf("load roster: %w", err)
	}
	return DecodeHandoff([]byte(doc))
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

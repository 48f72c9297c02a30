package storage

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/filmboard/filmboard/internal/types"
)

const filmsSchema = `
CREATE TABLE IF NOT EXISTS films (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	release_year INTEGER,
	director     TEXT,
	box_office   TEXT,
	country      TEXT,
	url          TEXT
)`

// SQLiteStorage persists records to a local file-backed SQLite table.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStorage opens (or creates) the database and ensures the films
// table exists. Use ":memory:" for an in-process database.
func NewSQLiteStorage(path string, logger *slog.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("open %s: %w", path, err)}
	}

	// Single writer; also keeps ":memory:" databases on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(filmsSchema); err != nil {
		db.Close()
		return nil, &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("create schema: %w", err)}
	}

	return &SQLiteStorage{
		db:     db,
		logger: logger.With("component", "sqlite_storage"),
	}, nil
}

func (s *SQLiteStorage) Name() string { return "sqlite" }

// Store truncates the films table and inserts the records in order inside a
// single transaction. The auto-increment id therefore reflects assignment
// order, not an independent sort key.
func (s *SQLiteStorage) Store(records []types.FilmRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("begin: %w", err)}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM films`); err != nil {
		return &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("truncate: %w", err)}
	}

	stmt, err := tx.Prepare(`INSERT INTO films (title, release_year, director, box_office, country, url)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("prepare: %w", err)}
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Title, r.ReleaseYear, r.Director, r.BoxOffice, r.Country, r.URL); err != nil {
			return &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("insert %q: %w", r.Title, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &types.StorageError{Backend: "sqlite", Err: fmt.Errorf("commit: %w", err)}
	}

	s.logger.Info("films table replaced", "rows", len(records))
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests.
func (s *SQLiteStorage) DB() *sql.DB { return s.db }

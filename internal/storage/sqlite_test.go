package storage

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/filmboard/filmboard/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func testRecords() []types.FilmRecord {
	return []types.FilmRecord{
		{
			Title:       "Avatar",
			ReleaseYear: intPtr(2009),
			Director:    strPtr("James Cameron"),
			BoxOffice:   strPtr("$2923706026"),
			Country:     strPtr("United States, United Kingdom"),
			URL:         "https://en.wikipedia.org/wiki/Avatar_(2009_film)",
		},
		{
			Title: "Unknown Film",
			URL:   "https://en.wikipedia.org/wiki/Unknown_Film",
		},
	}
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM films`).Scan(&n); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func TestSQLiteStoreAndReadBack(t *testing.T) {
	s, err := NewSQLiteStorage(":memory:", testLogger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Store(testRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}

	var (
		title     string
		year      sql.NullInt64
		director  sql.NullString
		boxOffice sql.NullString
		country   sql.NullString
		url       sql.NullString
	)
	row := s.DB().QueryRow(`SELECT title, release_year, director, box_office, country, url FROM films WHERE id = 1`)
	if err := row.Scan(&title, &year, &director, &boxOffice, &country, &url); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if title != "Avatar" {
		t.Errorf("title = %q", title)
	}
	if !year.Valid || year.Int64 != 2009 {
		t.Errorf("release_year = %+v", year)
	}
	if !boxOffice.Valid || boxOffice.String != "$2923706026" {
		t.Errorf("box_office = %+v", boxOffice)
	}

	// Optional fields of the second record land as NULL.
	row = s.DB().QueryRow(`SELECT release_year, director, box_office, country FROM films WHERE id = 2`)
	if err := row.Scan(&year, &director, &boxOffice, &country); err != nil {
		t.Fatalf("scan second row: %v", err)
	}
	if year.Valid || director.Valid || boxOffice.Valid || country.Valid {
		t.Errorf("expected NULL optional fields, got year=%+v director=%+v box=%+v country=%+v",
			year, director, boxOffice, country)
	}
}

func TestSQLiteStoreReplacesPriorRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.db")

	s, err := NewSQLiteStorage(path, testLogger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	first := []types.FilmRecord{
		{Title: "One", URL: "https://example.com/1"},
		{Title: "Two", URL: "https://example.com/2"},
		{Title: "Three", URL: "https://example.com/3"},
	}
	if err := s.Store(first); err != nil {
		t.Fatalf("first store: %v", err)
	}
	if n := countRows(t, s.DB()); n != 3 {
		t.Fatalf("expected 3 rows after first run, got %d", n)
	}

	if err := s.Store(testRecords()); err != nil {
		t.Fatalf("second store: %v", err)
	}
	if n := countRows(t, s.DB()); n != 2 {
		t.Fatalf("expected 2 rows after second run, got %d", n)
	}

	// Insertion order is preserved in the id column.
	var firstTitle string
	if err := s.DB().QueryRow(`SELECT title FROM films ORDER BY id LIMIT 1`).Scan(&firstTitle); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if firstTitle != "Avatar" {
		t.Errorf("first row = %q, want Avatar", firstTitle)
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	s, err := NewSQLiteStorage(":memory:", testLogger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Store(testRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Store(nil); err != nil {
		t.Fatalf("empty store: %v", err)
	}
	if n := countRows(t, s.DB()); n != 0 {
		t.Errorf("expected empty table, got %d rows", n)
	}
}

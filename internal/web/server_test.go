package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func TestIndexPage(t *testing.T) {
	s := NewServer(8080, "grossing_films.json", testLogger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()

	// The page must carry the filter input and the table the script drives.
	for _, fragment := range []string{`id="titleFilter"`, `id="films"`, "grossing_films.json", "localeCompare", "display"} {
		if !strings.Contains(body, fragment) {
			t.Errorf("page missing %q", fragment)
		}
	}
}

func TestServeJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grossing_films.json")
	content := `[{"title":"Avatar","release_year":2009,"director":"James Cameron","box_office":"$2923706026","country":"United States","url":"https://en.wikipedia.org/wiki/Avatar_(2009_film)"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := NewServer(8080, path, testLogger)

	req := httptest.NewRequest(http.MethodGet, "/grossing_films.json", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var films []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &films); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(films) != 1 || films[0]["title"] != "Avatar" {
		t.Errorf("unexpected payload: %v", films)
	}
}

func TestUnknownPath(t *testing.T) {
	s := NewServer(8080, "grossing_films.json", testLogger)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

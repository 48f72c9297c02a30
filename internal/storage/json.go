package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/filmboard/filmboard/internal/types"
)

// JSONStorage writes the record list as a JSON array, overwriting any
// existing file of that name.
type JSONStorage struct {
	path   string
	logger *slog.Logger
}

// NewJSONStorage creates a JSON file sink at the given path.
func NewJSONStorage(outputPath string, logger *slog.Logger) (*JSONStorage, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.StorageError{Backend: "json", Err: fmt.Errorf("create output dir: %w", err)}
	}

	return &JSONStorage{
		path:   outputPath,
		logger: logger.With("component", "json_storage"),
	}, nil
}

func (s *JSONStorage) Name() string { return "json" }

func (s *JSONStorage) Store(records []types.FilmRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return &types.StorageError{Backend: "json", Err: fmt.Errorf("create output file: %w", err)}
	}
	defer f.Close()

	// An empty run still produces a valid array, not "null".
	if records == nil {
		records = []types.FilmRecord{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return &types.StorageError{Backend: "json", Err: fmt.Errorf("encode JSON: %w", err)}
	}

	s.logger.Info("JSON written", "path", s.path, "records", len(records))
	return nil
}

func (s *JSONStorage) Close() error { return nil }

// Path returns the output file location.
func (s *JSONStorage) Path() string { return s.path }

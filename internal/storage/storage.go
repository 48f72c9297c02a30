package storage

import (
	"github.com/filmboard/filmboard/internal/types"
)

// Storage is the interface for all export sinks. Each run hands every sink
// the same post-sort record list; a sink replaces whatever it held before.
type Storage interface {
	// Store replaces the sink's contents with the given records.
	Store(records []types.FilmRecord) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the sink identifier.
	Name() string
}

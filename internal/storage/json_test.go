package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/filmboard/filmboard/internal/types"
)

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grossing_films.json")

	s, err := NewJSONStorage(path, testLogger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer s.Close()

	records := testRecords()
	if err := s.Store(records); err != nil {
		t.Fatalf("store: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got []types.FilmRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, records)
	}
}

func TestJSONKeySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grossing_films.json")

	s, err := NewJSONStorage(path, testLogger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Store(testRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"box_office", "country", "director", "release_year", "title", "url"}
	for i, obj := range raw {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("object %d keys = %v, want %v", i, keys, want)
		}
	}

	// Absent optional fields serialize as null, not as empty strings.
	if raw[1]["director"] != nil {
		t.Errorf("missing director serialized as %v, want null", raw[1]["director"])
	}
	if raw[1]["release_year"] != nil {
		t.Errorf("missing release_year serialized as %v, want null", raw[1]["release_year"])
	}
}

func TestJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grossing_films.json")

	s, err := NewJSONStorage(path, testLogger)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Store(testRecords()); err != nil {
		t.Fatalf("first store: %v", err)
	}
	if err := s.Store(nil); err != nil {
		t.Fatalf("second store: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got []types.FilmRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty array after overwrite, got %d records", len(got))
	}
}

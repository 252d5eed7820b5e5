// Package dataset provides the framework-side pieces a loader plugs into:
// the file index, per-track metadata, remote-file descriptors and local
// checksum validation.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// IndexedFile is one registered file: a path relative to the dataset root
// and its expected md5 checksum.
type IndexedFile struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum"`
}

// MultitrackEntry registers a multitrack: its constituent track IDs plus
// its own mixture-level files.
type MultitrackEntry struct {
	TrackIDs []string               `json:"track_ids"`
	Files    map[string]IndexedFile `json:"files"`
}

// Index maps track and multitrack identifiers to their registered files,
// keyed by semantic name (e.g. "audio_dyn", "f0_crepe_hsm", "score").
// Loaded once from JSON and read-only afterwards.
type Index struct {
	Version     string                            `json:"version"`
	Tracks      map[string]map[string]IndexedFile `json:"tracks"`
	Multitracks map[string]MultitrackEntry        `json:"multitracks"`
}

// LoadIndex reads an index document from a JSON file.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse index %s: %w", path, err)
	}

	return &index, nil
}

// TrackIDs returns the indexed track identifiers in sorted order.
func (i *Index) TrackIDs() []string {
	ids := make([]string, 0, len(i.Tracks))
	for id := range i.Tracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MultitrackIDs returns the indexed multitrack identifiers in sorted order.
func (i *Index) MultitrackIDs() []string {
	ids := make([]string, 0, len(i.Multitracks))
	for id := range i.Multitracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

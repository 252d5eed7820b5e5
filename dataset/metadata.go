package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrackMetadata describes one recorded take as published with the dataset.
type TrackMetadata struct {
	Piece   string `json:"piece"`
	Setting string `json:"setting"`
	Take    string `json:"take"`
	Section string `json:"section"`
	Singer  string `json:"singer"`
}

// LoadMetadata reads per-track metadata from a JSON file mapping track ID
// to metadata record. A missing file is not an error: metadata is optional
// and lookups simply return nothing.
func LoadMetadata(path string) (map[string]TrackMetadata, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata map[string]TrackMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata %s: %w", path, err)
	}

	return metadata, nil
}

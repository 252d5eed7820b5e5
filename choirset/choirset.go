// Package choirset loads the Dagstuhl ChoirSet, a multitrack dataset of
// a cappella choral singing recorded with per-singer close-up microphones.
package choirset

import (
	"fmt"
	"path/filepath"

	"github.com/audiolabs/choirset/dataset"
)

// Name is the dataset identifier used by the surrounding framework.
const Name = "dagstuhl_choirset"

const (
	indexFilename    = "dagstuhl_choirset_index.json"
	metadataFilename = "dagstuhl_choirset_metadata.json"
)

// Remotes describes the dataset's downloadable archives on Zenodo.
// Download orchestration is up to the caller.
var Remotes = []dataset.Remote{
	{
		Filename:       "DagstuhlChoirSet_audio.zip",
		URL:            "https://zenodo.org/record/3897181/files/DagstuhlChoirSet_audio.zip?download=1",
		Checksum:       "2a5bd241a2cc96b5d5a8ce382d492cbe",
		DestinationDir: ".",
	},
	{
		Filename:       "DagstuhlChoirSet_annotations.zip",
		URL:            "https://zenodo.org/record/3897181/files/DagstuhlChoirSet_annotations.zip?download=1",
		Checksum:       "f064cd57fb0138328b8551eb4e31020c",
		DestinationDir: ".",
	},
	{
		Filename:       metadataFilename,
		URL:            "https://zenodo.org/record/3897181/files/dagstuhl_choirset_metadata.json?download=1",
		Checksum:       "44fd2b8cb6c7c8ef9b03c71c5d0ab675",
		DestinationDir: ".",
	},
}

// Dataset is a local copy of the Dagstuhl ChoirSet, opened from its root
// directory.
type Dataset struct {
	DataHome string

	index    *dataset.Index
	metadata map[string]dataset.TrackMetadata
}

// Open reads the index (and metadata, if present) from a local dataset
// copy rooted at dataHome.
func Open(dataHome string) (*Dataset, error) {
	index, err := dataset.LoadIndex(filepath.Join(dataHome, indexFilename))
	if err != nil {
		return nil, err
	}

	metadata, err := dataset.LoadMetadata(filepath.Join(dataHome, metadataFilename))
	if err != nil {
		return nil, err
	}

	return &Dataset{DataHome: dataHome, index: index, metadata: metadata}, nil
}

// TrackIDs returns all indexed track identifiers, sorted.
func (d *Dataset) TrackIDs() []string {
	return d.index.TrackIDs()
}

// MultiTrackIDs returns all indexed multitrack identifiers, sorted.
func (d *Dataset) MultiTrackIDs() []string {
	return d.index.MultitrackIDs()
}

// Track builds the Track for an identifier.
func (d *Dataset) Track(id string) (*Track, error) {
	files, ok := d.index.Tracks[id]
	if !ok {
		return nil, fmt.Errorf("track %q is not in the index: %w", id, ErrNotFound)
	}

	var metadata *dataset.TrackMetadata
	if record, ok := d.metadata[id]; ok {
		metadata = &record
	}

	return NewTrack(id, Name, d.DataHome, files, metadata), nil
}

// MultiTrack builds the MultiTrack for an identifier, along with its
// constituent Tracks.
func (d *Dataset) MultiTrack(id string) (*MultiTrack, error) {
	entry, ok := d.index.Multitracks[id]
	if !ok {
		return nil, fmt.Errorf("multitrack %q is not in the index: %w", id, ErrNotFound)
	}

	tracks := make(map[string]*Track, len(entry.TrackIDs))
	for _, trackID := range entry.TrackIDs {
		track, err := d.Track(trackID)
		if err != nil {
			return nil, err
		}
		tracks[trackID] = track
	}

	return NewMultiTrack(id, d.DataHome, entry, tracks), nil
}

// Validate checks the local files against the index checksums.
func (d *Dataset) Validate() (*dataset.ValidationResult, error) {
	return dataset.Validate(d.index, d.DataHome)
}

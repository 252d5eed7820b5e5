package choirset

import (
	"path/filepath"
	"sync"

	"github.com/audiolabs/choirset/annotations"
	"github.com/audiolabs/choirset/dataset"
	"github.com/audiolabs/choirset/jams"
)

// MultiTrack is a mixed recording unit: a set of constituent Tracks plus
// the mixture audio and its own time-aligned annotation.
type MultiTrack struct {
	ID       string
	TrackIDs []string
	Tracks   map[string]*Track

	mixPath        string
	annotationPath string

	mu         sync.Mutex
	annotation *annotations.NoteData
	annotated  bool
}

// NewMultiTrack builds a MultiTrack from its index entry. The mixture
// audio is registered under "audio_stm" and the mixture-level score under
// "score".
func NewMultiTrack(id, dataHome string, entry dataset.MultitrackEntry, tracks map[string]*Track) *MultiTrack {
	mtrack := &MultiTrack{
		ID:       id,
		TrackIDs: entry.TrackIDs,
		Tracks:   make(map[string]*Track, len(entry.TrackIDs)),
	}

	for _, trackID := range entry.TrackIDs {
		if track, ok := tracks[trackID]; ok {
			mtrack.Tracks[trackID] = track
		}
	}

	if file, ok := entry.Files["audio_stm"]; ok && file.Path != "" {
		mtrack.mixPath = filepath.Join(dataHome, file.Path)
	}
	if file, ok := entry.Files["score"]; ok && file.Path != "" {
		mtrack.annotationPath = filepath.Join(dataHome, file.Path)
	}

	return mtrack
}

// Audio decodes the mixture signal. Recomputed on every call.
func (m *MultiTrack) Audio() (*AudioBuffer, error) {
	return LoadAudio(m.mixPath)
}

// Annotation returns the mixture-level time-aligned score. Computed at
// most once.
func (m *MultiTrack) Annotation() (*annotations.NoteData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.annotated {
		return m.annotation, nil
	}

	annotation, err := LoadScore(m.annotationPath)
	if err != nil {
		return nil, err
	}

	m.annotation = annotation
	m.annotated = true
	return annotation, nil
}

// ToJAMS assembles the mixture's annotations into an exchange document.
func (m *MultiTrack) ToJAMS() (*jams.Document, error) {
	annotation, err := m.Annotation()
	if err != nil {
		return nil, err
	}

	return jams.Convert(m.mixPath, nil, []jams.TaggedNotes{{Data: annotation, Label: scoreLabel}}), nil
}

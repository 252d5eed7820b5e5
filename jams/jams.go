// Package jams converts loaded annotations into a minimal JAMS-style
// exchange document, the common container downstream consumers read.
package jams

import (
	"encoding/json"
	"path/filepath"

	"github.com/audiolabs/choirset/annotations"
)

// Namespaces for the annotation types this loader produces.
const (
	NamespacePitchContour = "pitch_contour"
	NamespaceNoteHz       = "note_hz"
)

// Observation is a single timed value within an annotation.
type Observation struct {
	Time       float64  `json:"time"`
	Duration   float64  `json:"duration"`
	Value      float64  `json:"value"`
	Confidence *float64 `json:"confidence"`
}

// Metadata describes where an annotation came from.
type Metadata struct {
	DataSource string `json:"data_source"`
}

// Annotation is one namespace's worth of observations.
type Annotation struct {
	Namespace string        `json:"namespace"`
	Data      []Observation `json:"data"`
	Metadata  Metadata      `json:"annotation_metadata"`
}

// FileMetadata identifies the audio the annotations describe.
type FileMetadata struct {
	Title       string            `json:"title,omitempty"`
	Identifiers map[string]string `json:"identifiers,omitempty"`
}

// Document is an annotation-exchange document.
type Document struct {
	FileMetadata FileMetadata   `json:"file_metadata"`
	Annotations  []Annotation   `json:"annotations"`
	Sandbox      map[string]any `json:"sandbox"`
}

// TaggedF0 pairs a pitch trajectory with its source label.
type TaggedF0 struct {
	Data  *annotations.F0Data
	Label string
}

// TaggedNotes pairs a note annotation with its source label.
type TaggedNotes struct {
	Data  *annotations.NoteData
	Label string
}

// Convert assembles an exchange document from an audio reference and the
// available annotations. Entries with nil data are skipped; they mean the
// annotation was not available, which is not an error.
func Convert(audioPath string, f0Data []TaggedF0, noteData []TaggedNotes) *Document {
	doc := &Document{
		Annotations: []Annotation{},
		Sandbox:     map[string]any{},
	}

	if audioPath != "" {
		doc.FileMetadata = FileMetadata{
			Title:       filepath.Base(audioPath),
			Identifiers: map[string]string{"audio_path": audioPath},
		}
	}

	for _, tagged := range f0Data {
		if tagged.Data == nil {
			continue
		}
		doc.Annotations = append(doc.Annotations, pitchContour(tagged))
	}

	for _, tagged := range noteData {
		if tagged.Data == nil {
			continue
		}
		doc.Annotations = append(doc.Annotations, noteHz(tagged))
	}

	return doc
}

func pitchContour(tagged TaggedF0) Annotation {
	f0 := tagged.Data
	data := make([]Observation, len(f0.Times))
	for i := range f0.Times {
		obs := Observation{Time: f0.Times[i], Value: f0.Frequencies[i]}
		if f0.Confidence != nil {
			confidence := f0.Confidence[i]
			obs.Confidence = &confidence
		}
		data[i] = obs
	}

	return Annotation{
		Namespace: NamespacePitchContour,
		Data:      data,
		Metadata:  Metadata{DataSource: tagged.Label},
	}
}

func noteHz(tagged TaggedNotes) Annotation {
	notes := tagged.Data
	data := make([]Observation, len(notes.Intervals))
	for i, interval := range notes.Intervals {
		data[i] = Observation{
			Time:     interval.Onset,
			Duration: interval.Offset - interval.Onset,
			Value:    notes.Frequencies[i],
		}
	}

	return Annotation{
		Namespace: NamespaceNoteHz,
		Data:      data,
		Metadata:  Metadata{DataSource: tagged.Label},
	}
}

// MarshalIndent serializes the document as indented JSON.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

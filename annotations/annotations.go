// Package annotations holds the typed annotation data passed between the
// dataset loaders and the JAMS converter.
package annotations

import (
	"fmt"
	"math"
)

// F0Data is a pitch trajectory: a time-ordered sequence of fundamental
// frequency estimates, optionally with a per-estimate confidence.
type F0Data struct {
	Times       []float64
	Frequencies []float64
	Confidence  []float64 // nil when the source file has no confidence column
}

// NewF0Data builds an F0Data, checking that the sequences line up.
// Confidence may be nil; if present it must match the number of estimates.
func NewF0Data(times, frequencies, confidence []float64) (*F0Data, error) {
	if len(times) != len(frequencies) {
		return nil, fmt.Errorf("times and frequencies differ in length: %d vs %d", len(times), len(frequencies))
	}
	if confidence != nil && len(confidence) != len(times) {
		return nil, fmt.Errorf("confidence length %d does not match %d estimates", len(confidence), len(times))
	}
	return &F0Data{Times: times, Frequencies: frequencies, Confidence: confidence}, nil
}

// Interval is a note's time span in seconds.
type Interval struct {
	Onset  float64
	Offset float64
}

// NoteData is a time-aligned score: note intervals paired 1:1 with
// frequencies in Hz.
type NoteData struct {
	Intervals   []Interval
	Frequencies []float64
}

// NewNoteData builds a NoteData, checking the 1:1 pairing invariant.
func NewNoteData(intervals []Interval, frequencies []float64) (*NoteData, error) {
	if len(intervals) != len(frequencies) {
		return nil, fmt.Errorf("intervals and frequencies differ in length: %d vs %d", len(intervals), len(frequencies))
	}
	return &NoteData{Intervals: intervals, Frequencies: frequencies}, nil
}

// MidiToHz converts a MIDI note number to frequency in Hz on the
// equal-tempered scale, with A4 = 440 Hz at MIDI note 69.
func MidiToHz(midi float64) float64 {
	return 440 * math.Pow(2, (midi-69)/12)
}

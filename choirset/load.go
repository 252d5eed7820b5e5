package choirset

import (
	"encoding/binary"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/audiolabs/choirset/annotations"
	"github.com/h2non/filetype"
)

// SampleRate is the rate every audio file is resampled to, regardless of
// the rate it was recorded at.
const SampleRate = 22050

// AudioBuffer is a decoded mono audio signal.
type AudioBuffer struct {
	Samples    []float64 // in [-1, 1)
	SampleRate int
}

// Duration returns the signal length in seconds.
func (b *AudioBuffer) Duration() float64 {
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// LoadF0 reads a pitch trajectory from a comma-delimited file of
// time,frequency[,confidence] rows. The confidence column must be present
// on every row or on none. An empty path means no annotation is available
// and yields nil.
func LoadF0(path string) (*annotations.F0Data, error) {
	if path == "" {
		return nil, nil
	}

	rows, err := readNumericRows(path, "pitch file")
	if err != nil {
		return nil, err
	}

	var times, freqs, confs []float64
	columns := 0
	for i, row := range rows {
		if len(row) != 2 && len(row) != 3 {
			return nil, fmt.Errorf("pitch file %s row %d has %d fields, want 2 or 3: %w", path, i+1, len(row), ErrMalformedInput)
		}
		if columns == 0 {
			columns = len(row)
		} else if len(row) != columns {
			return nil, fmt.Errorf("pitch file %s row %d has %d fields but earlier rows have %d: %w", path, i+1, len(row), columns, ErrMalformedInput)
		}

		times = append(times, row[0])
		freqs = append(freqs, row[1])
		if len(row) == 3 {
			confs = append(confs, row[2])
		}
	}

	return annotations.NewF0Data(times, freqs, confs)
}

// LoadScore reads a time-aligned score from a comma-delimited file of
// onset,offset,midi_pitch rows, converting MIDI pitch to Hz. An empty
// path yields nil.
func LoadScore(path string) (*annotations.NoteData, error) {
	if path == "" {
		return nil, nil
	}

	rows, err := readNumericRows(path, "score file")
	if err != nil {
		return nil, err
	}

	var intervals []annotations.Interval
	var notes []float64
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("score file %s row %d has %d fields, want 3: %w", path, i+1, len(row), ErrMalformedInput)
		}
		intervals = append(intervals, annotations.Interval{Onset: row[0], Offset: row[1]})
		notes = append(notes, row[2])
	}

	freqs := make([]float64, len(notes))
	for i, note := range notes {
		freqs[i] = annotations.MidiToHz(note)
	}

	return annotations.NewNoteData(intervals, freqs)
}

// LoadAudio decodes an audio file to a mono signal at 22050 Hz by running
// it through ffmpeg. An empty path means no audio is available and yields
// nil, not a failure.
func LoadAudio(path string) (*AudioBuffer, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("audio file %s: %w", path, ErrNotFound)
		}
		return nil, err
	}

	if err := checkAudioFile(path); err != nil {
		return nil, err
	}

	cmd := exec.Command("ffmpeg",
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", "1",
		"-loglevel", "error",
		"pipe:1",
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}

	// Ensure even byte count for int16 alignment
	if len(out)%2 != 0 {
		out = out[:len(out)-1]
	}

	samples := make([]float64, len(out)/2)
	for i := range samples {
		samples[i] = float64(int16(binary.LittleEndian.Uint16(out[i*2:i*2+2]))) / 32768
	}

	return &AudioBuffer{Samples: samples, SampleRate: SampleRate}, nil
}

// checkAudioFile sniffs the file header so that non-audio content fails
// fast instead of surfacing as an opaque ffmpeg error.
func checkAudioFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return err
	}

	if !filetype.IsAudio(head[:n]) {
		return fmt.Errorf("%s does not look like an audio file: %w", path, ErrMalformedInput)
	}
	return nil
}

// readNumericRows parses a headerless comma-delimited file into rows of
// floats, preserving file order.
func readNumericRows(path, kind string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s %s: %w", kind, path, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]float64
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s %s: %v: %w", kind, path, err, ErrMalformedInput)
		}

		line++
		row := make([]float64, len(record))
		for i, field := range record {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s %s row %d field %q is not numeric: %w", kind, path, line, field, ErrMalformedInput)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

package choirset

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/audiolabs/choirset/annotations"
	"github.com/audiolabs/choirset/dataset"
	"github.com/audiolabs/choirset/jams"
)

// scoreLabel tags the score annotation in exported documents.
const scoreLabel = "time-aligned score representation"

// Track is a single-microphone recording unit: one singer's registered
// audio and annotation files. Built once from the index and read-only
// afterwards; the pitch and score accessors memoize their results.
type Track struct {
	ID       string
	Dataset  string
	Metadata *dataset.TrackMetadata

	paths      map[string]string
	audioPaths []string
	f0Paths    map[AnnSource][]string
	scorePath  string

	mu      sync.Mutex
	f0Cache map[f0Key]*annotations.F0Data
	score   *annotations.NoteData
	scored  bool
}

type f0Key struct {
	mic Mic
	src AnnSource
}

// NewTrack builds a Track from its index entry. Registered paths are made
// absolute against dataHome and grouped by semantic key prefix.
func NewTrack(id, datasetName, dataHome string, files map[string]dataset.IndexedFile, metadata *dataset.TrackMetadata) *Track {
	track := &Track{
		ID:       id,
		Dataset:  datasetName,
		Metadata: metadata,
		paths:    make(map[string]string, len(files)),
		f0Paths:  make(map[AnnSource][]string),
		f0Cache:  make(map[f0Key]*annotations.F0Data),
	}

	keys := make([]string, 0, len(files))
	for key := range files {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := files[key].Path
		if path != "" {
			path = filepath.Join(dataHome, path)
		}
		track.paths[key] = path

		switch {
		case strings.HasPrefix(key, "audio_"):
			track.audioPaths = append(track.audioPaths, path)
		case strings.HasPrefix(key, "f0_crepe_"):
			track.f0Paths[AnnCrepe] = append(track.f0Paths[AnnCrepe], path)
		case strings.HasPrefix(key, "f0_pyin_"):
			track.f0Paths[AnnPyin] = append(track.f0Paths[AnnPyin], path)
		case strings.HasPrefix(key, "f0_manual_"):
			track.f0Paths[AnnManual] = append(track.f0Paths[AnnManual], path)
		case key == "score":
			track.scorePath = path
		}
	}

	return track
}

// Path returns the registered absolute path for a semantic key, or an
// empty string if the key is not registered.
func (t *Track) Path(key string) string {
	return t.paths[key]
}

// AudioPaths returns the registered audio paths in key order.
func (t *Track) AudioPaths() []string {
	return t.audioPaths
}

// Audio decodes the signal of the specified microphone. Recomputed on
// every call; it is a pure function of the resolved path.
func (t *Track) Audio(mic Mic) (*AudioBuffer, error) {
	mic, err := ParseMic(string(mic))
	if err != nil {
		return nil, err
	}

	path, err := resolvePath(t.audioPaths, string(mic))
	if err != nil {
		return nil, err
	}
	return LoadAudio(path)
}

// F0 returns the pitch trajectory of the given annotation source for the
// given microphone. Computed at most once per (mic, source) pair.
func (t *Track) F0(mic Mic, src AnnSource) (*annotations.F0Data, error) {
	mic, err := ParseMic(string(mic))
	if err != nil {
		return nil, err
	}
	src, err = ParseAnnSource(string(src))
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := f0Key{mic: mic, src: src}
	if f0, ok := t.f0Cache[key]; ok {
		return f0, nil
	}

	path, err := resolvePath(t.f0Paths[src], string(mic))
	if err != nil {
		return nil, err
	}

	f0, err := LoadF0(path)
	if err != nil {
		return nil, err
	}

	t.f0Cache[key] = f0
	return f0, nil
}

// Score returns the track's time-aligned score. Computed at most once.
func (t *Track) Score() (*annotations.NoteData, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.scored {
		return t.score, nil
	}

	score, err := LoadScore(t.scorePath)
	if err != nil {
		return nil, err
	}

	t.score = score
	t.scored = true
	return score, nil
}

// ToJAMS assembles the track's annotations into an exchange document: the
// first registered audio path, every pitch file tagged with its filename,
// and the score.
func (t *Track) ToJAMS() (*jams.Document, error) {
	var audioPath string
	if len(t.audioPaths) > 0 {
		audioPath = t.audioPaths[0]
	}

	var f0Paths []string
	for _, src := range AnnSources() {
		f0Paths = append(f0Paths, t.f0Paths[src]...)
	}

	var f0Data []jams.TaggedF0
	for _, path := range f0Paths {
		f0, err := LoadF0(path)
		if err != nil {
			return nil, err
		}
		f0Data = append(f0Data, jams.TaggedF0{Data: f0, Label: filepath.Base(path)})
	}

	score, err := LoadScore(t.scorePath)
	if err != nil {
		return nil, err
	}

	return jams.Convert(audioPath, f0Data, []jams.TaggedNotes{{Data: score, Label: scoreLabel}}), nil
}

package choirset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureIndex = `{
	"version": "1.2.3",
	"tracks": {
		"DCS_LI_QuartetB_Take04_B2": {
			"audio_dyn": {"path": "audio/take04_b2_dyn.wav", "checksum": "aa"},
			"f0_crepe_dyn": {"path": "f0/take04_b2_dyn.csv", "checksum": "bb"},
			"score": {"path": "score/take04_b2.csv", "checksum": "cc"}
		},
		"DCS_LI_QuartetB_Take04_S1": {
			"audio_dyn": {"path": "audio/take04_s1_dyn.wav", "checksum": "dd"}
		}
	},
	"multitracks": {
		"DCS_LI_QuartetB_Take04": {
			"track_ids": ["DCS_LI_QuartetB_Take04_B2", "DCS_LI_QuartetB_Take04_S1"],
			"files": {
				"audio_stm": {"path": "audio/take04_stm.wav", "checksum": "ee"}
			}
		}
	}
}`

const fixtureMetadata = `{
	"DCS_LI_QuartetB_Take04_B2": {"piece": "Locus Iste", "setting": "QuartetB", "section": "bass"}
}`

func fixtureDataset(t *testing.T, withMetadata bool) *Dataset {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "dagstuhl_choirset_index.json"), []byte(fixtureIndex), 0o644))
	if withMetadata {
		require.NoError(t, os.WriteFile(filepath.Join(home, "dagstuhl_choirset_metadata.json"), []byte(fixtureMetadata), 0o644))
	}

	ds, err := Open(home)
	require.NoError(t, err)
	return ds
}

func TestOpen(t *testing.T) {
	t.Run("with metadata", func(t *testing.T) {
		ds := fixtureDataset(t, true)
		assert.Equal(t, []string{"DCS_LI_QuartetB_Take04_B2", "DCS_LI_QuartetB_Take04_S1"}, ds.TrackIDs())
		assert.Equal(t, []string{"DCS_LI_QuartetB_Take04"}, ds.MultiTrackIDs())
	})

	t.Run("metadata is optional", func(t *testing.T) {
		ds := fixtureDataset(t, false)
		track, err := ds.Track("DCS_LI_QuartetB_Take04_B2")
		require.NoError(t, err)
		assert.Nil(t, track.Metadata)
	})

	t.Run("missing index", func(t *testing.T) {
		_, err := Open(t.TempDir())
		assert.Error(t, err)
	})
}

func TestDatasetTrack(t *testing.T) {
	ds := fixtureDataset(t, true)

	t.Run("known track", func(t *testing.T) {
		track, err := ds.Track("DCS_LI_QuartetB_Take04_B2")
		require.NoError(t, err)
		assert.Equal(t, Name, track.Dataset)
		require.NotNil(t, track.Metadata)
		assert.Equal(t, "Locus Iste", track.Metadata.Piece)
		assert.Equal(t, filepath.Join(ds.DataHome, "score/take04_b2.csv"), track.Path("score"))
	})

	t.Run("track without metadata record", func(t *testing.T) {
		track, err := ds.Track("DCS_LI_QuartetB_Take04_S1")
		require.NoError(t, err)
		assert.Nil(t, track.Metadata)
	})

	t.Run("unknown track", func(t *testing.T) {
		_, err := ds.Track("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDatasetMultiTrack(t *testing.T) {
	ds := fixtureDataset(t, true)

	mtrack, err := ds.MultiTrack("DCS_LI_QuartetB_Take04")
	require.NoError(t, err)
	assert.Len(t, mtrack.Tracks, 2)
	assert.Equal(t, []string{"DCS_LI_QuartetB_Take04_B2", "DCS_LI_QuartetB_Take04_S1"}, mtrack.TrackIDs)

	_, err = ds.MultiTrack("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatasetValidate(t *testing.T) {
	ds := fixtureDataset(t, true)

	// Nothing was downloaded, so every indexed file is missing.
	result, err := ds.Validate()
	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Len(t, result.Missing, 5)
	assert.Empty(t, result.InvalidChecksums)
}

func TestRemotes(t *testing.T) {
	require.NotEmpty(t, Remotes)
	for _, remote := range Remotes {
		assert.NotEmpty(t, remote.Filename)
		assert.NotEmpty(t, remote.URL)
		assert.NotEmpty(t, remote.Checksum)
	}
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/audiolabs/choirset/choirset"
	"github.com/audiolabs/choirset/jams"
	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"
)

var (
	dataHome = flag.String("data-home", "", "Root directory of the local Dagstuhl ChoirSet copy")
	trackID  = flag.String("track", "", "Track to operate on")
	mtrackID = flag.String("multitrack", "", "Multitrack to operate on")
	validate = flag.Bool("validate", false, "Check local files against the index checksums")
	export   = flag.String("export", "", "Write the selected track's annotations as a JAMS document to this file")
)

func main() {
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	if *dataHome == "" {
		slog.Error("data-home must be specified")
		os.Exit(1)
	}

	ds, err := choirset.Open(*dataHome)
	if err != nil {
		slog.Error("Failed to open dataset", "data_home", *dataHome, "error", err)
		os.Exit(1)
	}

	switch {
	case *validate:
		runValidate(ds)
	case *export != "":
		runExport(ds)
	default:
		listTracks(ds)
	}
}

func runValidate(ds *choirset.Dataset) {
	result, err := ds.Validate()
	if err != nil {
		slog.Error("Validation failed to run", "error", err)
		os.Exit(1)
	}

	for _, path := range result.Missing {
		slog.Warn("Missing file", "path", path)
	}
	for _, path := range result.InvalidChecksums {
		slog.Warn("Checksum mismatch", "path", path)
	}

	slog.Info("Validated local dataset",
		"data_home", ds.DataHome,
		"missing", len(result.Missing),
		"invalid_checksums", len(result.InvalidChecksums),
	)

	if !result.OK() {
		os.Exit(1)
	}
}

func runExport(ds *choirset.Dataset) {
	doc, err := exportDocument(ds)
	if err != nil {
		slog.Error("Failed to build JAMS document", "error", err)
		os.Exit(1)
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		slog.Error("Failed to serialize JAMS document", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*export, data, 0o644); err != nil {
		slog.Error("Failed to write JAMS document", "path", *export, "error", err)
		os.Exit(1)
	}

	slog.Info("Exported JAMS document", "path", *export, "annotations", len(doc.Annotations))
}

func exportDocument(ds *choirset.Dataset) (*jams.Document, error) {
	switch {
	case *trackID != "":
		track, err := ds.Track(*trackID)
		if err != nil {
			return nil, err
		}
		return track.ToJAMS()
	case *mtrackID != "":
		mtrack, err := ds.MultiTrack(*mtrackID)
		if err != nil {
			return nil, err
		}
		return mtrack.ToJAMS()
	default:
		return nil, fmt.Errorf("export requires track or multitrack to be specified")
	}
}

func listTracks(ds *choirset.Dataset) {
	for _, id := range ds.TrackIDs() {
		fmt.Println(id)
	}
	for _, id := range ds.MultiTrackIDs() {
		fmt.Println(id)
	}
}

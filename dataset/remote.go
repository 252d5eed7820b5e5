package dataset

// Remote describes one downloadable archive of a dataset. Download
// orchestration lives with the caller; this is purely a descriptor.
type Remote struct {
	Filename       string
	URL            string
	Checksum       string
	DestinationDir string
}

package choirset

import "errors"

// The loader's failure kinds. All are deterministic data problems raised
// at the point of detection; none are worth retrying.
var (
	// ErrInvalidArgument means a selector outside the recognized set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means a missing file, or a selector with no matching path.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousMatch means a selector matched more than one path.
	ErrAmbiguousMatch = errors.New("ambiguous match")

	// ErrMalformedInput means a file that could not be decoded: a
	// non-numeric field, a wrong column count, or non-audio content.
	ErrMalformedInput = errors.New("malformed input")
)

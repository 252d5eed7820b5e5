package dataset

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ValidationResult lists the index entries whose local files are missing
// or do not match their expected checksum.
type ValidationResult struct {
	Missing          []string
	InvalidChecksums []string
}

// OK reports whether every indexed file is present with the right checksum.
func (r *ValidationResult) OK() bool {
	return len(r.Missing) == 0 && len(r.InvalidChecksums) == 0
}

// Validate checks every file registered in the index against the local
// copy under dataHome. Entries with an empty path are skipped.
func Validate(index *Index, dataHome string) (*ValidationResult, error) {
	result := &ValidationResult{}

	check := func(file IndexedFile) error {
		if file.Path == "" {
			return nil
		}
		local := filepath.Join(dataHome, file.Path)
		checksum, err := fileChecksum(local)
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, file.Path)
			return nil
		}
		if err != nil {
			return err
		}
		if checksum != file.Checksum {
			result.InvalidChecksums = append(result.InvalidChecksums, file.Path)
		}
		return nil
	}

	for _, files := range index.Tracks {
		for _, file := range files {
			if err := check(file); err != nil {
				return nil, err
			}
		}
	}
	for _, entry := range index.Multitracks {
		for _, file := range entry.Files {
			if err := check(file); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.InvalidChecksums)
	return result, nil
}

// fileChecksum returns the hex md5 digest of a file's contents.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

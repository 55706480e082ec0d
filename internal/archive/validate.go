package archive

import (
	"archive/zip"
	"fmt"
	"io"
)

// Validate opens the archive at path, reads every member back in full so the
// stored CRCs are verified, and returns the member count. Any structural or
// checksum problem is reported as ErrCorruptArchive.
func Validate(path string) (int, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	defer r.Close()

	for _, member := range r.File {
		rc, err := member.Open()
		if err != nil {
			return 0, fmt.Errorf("%w: opening member %s: %v", ErrCorruptArchive, member.Name, err)
		}
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return 0, fmt.Errorf("%w: reading member %s: %v", ErrCorruptArchive, member.Name, err)
		}
	}

	return len(r.File), nil
}

// IsValid reports whether path holds a well-formed archive. It is the check
// the resume ledger applies before trusting a prior compressed outcome.
func IsValid(path string) bool {
	_, err := Validate(path)
	return err == nil
}

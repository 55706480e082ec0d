package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrMemberCountMismatch = errors.New("archive member count does not match files written")
	ErrCorruptArchive      = errors.New("archive failed integrity check")
)

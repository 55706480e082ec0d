package scan

import "errors"

// Sentinel errors for package scan.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrNotDirectory = errors.New("expected directory but got file")
)

// Package archive builds and validates the per-candidate ZIP archives.
//
// Writes are staged: the archive is assembled in a temporary file next to the
// final path, validated by reading it back, and only then renamed into place.
// The final path therefore always holds either a complete valid archive or
// nothing. The writer opens source files read-only and confines every write
// to the candidate's archive-output folder.
package archive

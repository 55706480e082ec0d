// Package scan enumerates candidate directories and measures their contents.
//
// The selector returns the sorted immediate subdirectories of a root (or the
// root itself in single-directory mode). The probe computes the total byte
// size and regular-file count of a candidate with an iterative traversal,
// always pruning the archive-output folder and symlinks. Inaccessible files
// and subdirectories are logged as warnings and excluded from the totals;
// they never abort a probe. The same traversal backs both size measurement
// and archive writing so the two always agree on a candidate's file set.
package scan

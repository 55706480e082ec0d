// Package ledger persists per-directory processing outcomes between runs.
//
// The backing store is a single JSON object mapping absolute directory paths
// to entries, indented so the file diffs cleanly. A missing or unreadable
// ledger file is treated as empty history, never as a fatal error. Entries
// for distinct paths are recorded independently under one mutex; the file is
// flushed after each record so a crash loses at most the in-flight entry.
package ledger

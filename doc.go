// Package main provides the mdfzip command-line interface.
//
// mdfzip selectively compresses the top-level subdirectories of a root
// directory into ZIP archives, skipping directories above a configurable
// size threshold. Source data is never modified; archives are created with
// atomic write-then-rename semantics and validated before they become
// visible, and a resume ledger avoids recompressing unchanged directories.
//
// The main binary supports multiple subcommands:
//   - run: Execute a compression sweep over a root directory
//   - plan: Show what a sweep would do without creating any files
//   - validate: Check existing archives for corruption and consistency
//   - schedule: Run sweeps repeatedly on a cron schedule
package main

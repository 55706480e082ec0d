// Package config holds runtime configuration for mdfzip: defaults, optional
// YAML config file loading, and validation. A Settings value is built once at
// startup (defaults, then config file, then CLI flags) and passed by value
// into every component; nothing mutates it after startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogFormat selects the console or JSON logging encoder.
type LogFormat string

const (
	FormatConsole LogFormat = "console"
	FormatJSON    LogFormat = "json"
)

// Settings holds all runtime options for a compression sweep.
type Settings struct {
	// Root is the directory whose immediate subdirectories are candidates
	// (or the sole candidate itself in single-directory mode). Set from the
	// positional argument, never from the config file.
	Root string `yaml:"-"`

	MaxSizeGB     float64 `yaml:"maxSizeGB"`     // Default: 10.0. Candidates above this are skipped.
	ArchiveName   string  `yaml:"archiveName"`   // Default: "dataset.zip".
	ArchiveFolder string  `yaml:"archiveFolder"` // Default: ".mdf". Excluded from size accounting.
	Workers       int     `yaml:"workers"`       // Default: 4. Worker pool size.
	Verbose       bool    `yaml:"verbose"`
	SingleDir     bool    `yaml:"singleDirectory"` // Process only Root itself.
	LedgerPath    string  `yaml:"logFile"`         // Empty disables the resume ledger.
	PlanMode      bool    `yaml:"-"`               // Dry run; command-level only.

	LogFormat LogFormat `yaml:"logFormat"` // Default: "console".
}

// Default returns a Settings with every option at its documented default.
func Default() Settings {
	return Settings{
		MaxSizeGB:     10.0,
		ArchiveName:   "dataset.zip",
		ArchiveFolder: ".mdf",
		Workers:       4,
		LogFormat:     FormatConsole,
	}
}

// Validate checks option values that no component can recover from later.
func (s Settings) Validate() error {
	if s.MaxSizeGB <= 0 {
		return fmt.Errorf("max size must be positive, got %g GB", s.MaxSizeGB)
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", s.Workers)
	}
	if s.ArchiveName == "" || strings.ContainsRune(s.ArchiveName, os.PathSeparator) {
		return fmt.Errorf("invalid archive name %q", s.ArchiveName)
	}
	if s.ArchiveFolder == "" || strings.ContainsRune(s.ArchiveFolder, os.PathSeparator) {
		return fmt.Errorf("invalid archive folder %q", s.ArchiveFolder)
	}
	switch s.LogFormat {
	case FormatConsole, FormatJSON:
		// valid
	default:
		return errors.New("invalid log format (use 'console' or 'json')")
	}
	return nil
}

// ArchivePath returns the final archive location for one candidate directory.
func (s Settings) ArchivePath(candidate string) string {
	return filepath.Join(candidate, s.ArchiveFolder, s.ArchiveName)
}

// ResolveRoot makes the root path absolute and confirms it is an existing
// directory. There is nothing useful to do without a root, so both failures
// abort the run.
func ResolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving root path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("root directory does not exist: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root path is not a directory: %s", abs)
	}
	return abs, nil
}

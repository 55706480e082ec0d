package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdf-science/mdfzip/internal/logging"
)

// FileEntry is one regular file found under a candidate directory.
type FileEntry struct {
	Path string // absolute path
	Rel  string // path relative to the candidate root
	Size int64
}

// ListFiles walks dir iteratively and returns every regular file beneath it,
// excluding anything under a directory named archiveFolder and all symlinks.
// Inaccessible files and subdirectories are logged as warnings, counted, and
// excluded; they do not abort the walk. The only hard failure is dir itself
// missing or not being a directory.
func ListFiles(dir, archiveFolder string) ([]FileEntry, int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	var files []FileEntry
	warnings := 0

	// Explicit stack instead of recursion so pathologically deep trees
	// cannot exhaust the goroutine stack.
	pending := []string{dir}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			logging.S().Warnw("cannot access directory", "path", current, "error", err)
			warnings++
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				if entry.Name() == archiveFolder {
					continue
				}
				pending = append(pending, path)
				continue
			}
			if !entry.Type().IsRegular() {
				// symlinks, sockets, devices
				continue
			}
			fi, err := entry.Info()
			if err != nil {
				logging.S().Warnw("cannot access file", "path", path, "error", err)
				warnings++
				continue
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				logging.S().Warnw("cannot resolve relative path", "path", path, "error", err)
				warnings++
				continue
			}
			files = append(files, FileEntry{Path: path, Rel: rel, Size: fi.Size()})
		}
	}

	return files, warnings, nil
}

// Probe fills in the candidate's total size, file count, and warning count.
// It never fails for partial-access conditions; an empty or fully
// inaccessible directory probes as zero bytes and zero files.
func Probe(c *Candidate, archiveFolder string) error {
	files, warnings, err := ListFiles(c.Path, archiveFolder)
	if err != nil {
		return err
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}

	c.SizeBytes = total
	c.FileCount = len(files)
	c.Warnings = warnings
	return nil
}

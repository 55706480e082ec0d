package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is one directory under compression evaluation. SizeBytes,
// FileCount, and Warnings are zero until Probe populates them.
type Candidate struct {
	Path      string
	SizeBytes int64
	FileCount int
	Warnings  int
}

// Select returns the candidates for a run. In single-directory mode that is
// the root itself; otherwise the sorted immediate subdirectories of root,
// skipping hidden directories (which covers the archive-output folder) and
// any directory named like the archive folder regardless of leading dot.
// Non-directory entries are ignored. Fails if root is missing or not a
// directory.
func Select(root, archiveFolder string, singleDir bool) ([]Candidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	if singleDir {
		return []Candidate{{Path: root}}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == archiveFolder {
			continue
		}
		candidates = append(candidates, Candidate{Path: filepath.Join(root, name)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Path < candidates[j].Path
	})
	return candidates, nil
}

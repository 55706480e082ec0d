package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mdf-science/mdfzip/internal/archive"
	"github.com/mdf-science/mdfzip/internal/logging"
)

// Ledger is the resume store: a serialized mapping from absolute directory
// path to its last-known processing entry.
type Ledger struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// Open loads the ledger at path. A missing or unreadable file yields an
// empty ledger with a warning; prior history is advisory, never load-fatal.
func Open(path string) *Ledger {
	l := &Ledger{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.S().Warnw("cannot read ledger, starting empty", "path", path, "error", err)
		}
		return l
	}
	if err := json.Unmarshal(data, &l.entries); err != nil {
		logging.S().Warnw("cannot parse ledger, starting empty", "path", path, "error", err)
		l.entries = make(map[string]Entry)
		return l
	}

	logging.S().Debugw("loaded ledger", "path", path, "entries", len(l.entries))
	return l
}

// Len returns the number of entries currently held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Get returns the entry recorded for key, if any.
func (l *Ledger) Get(key string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	return e, ok
}

// Record stores or overwrites the entry for key and flushes the file so a
// crash later in the run cannot lose this outcome.
func (l *Ledger) Record(key string, e Entry) {
	l.mu.Lock()
	l.entries[key] = e
	l.mu.Unlock()

	if err := l.Save(); err != nil {
		logging.S().Warnw("cannot flush ledger", "path", l.path, "error", err)
	}
}

// Save writes the full mapping back to disk, indented for human diffing.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger directory: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Eligible reports whether the candidate at key can skip reprocessing. All
// four conditions must hold: a compressed entry exists, its recorded archive
// matches the current run's configured location, the archive still exists
// and passes integrity validation, and the freshly measured size equals the
// recorded one. Any miss forces a reprocess.
//
// Size equality is the defined freshness check; a same-size content swap is
// not detected.
func (l *Ledger) Eligible(key string, measuredSize int64, archivePath string) bool {
	e, ok := l.Get(key)
	if !ok {
		return false
	}
	if e.Status != OutcomeCompressed {
		return false
	}
	if e.ArchivePath != archivePath {
		logging.S().Debugw("archive location changed, will reprocess", "path", key)
		return false
	}
	if !archive.IsValid(archivePath) {
		logging.S().Infow("recorded archive missing or invalid, will reprocess", "path", key)
		return false
	}
	if e.OriginalSizeBytes != measuredSize {
		logging.S().Infow("directory size changed, will reprocess",
			"path", key, "recorded", e.OriginalSizeBytes, "measured", measuredSize)
		return false
	}
	return true
}

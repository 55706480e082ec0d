package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdf-science/mdfzip/internal/archive"
	"github.com/mdf-science/mdfzip/internal/config"
	"github.com/mdf-science/mdfzip/internal/display"
	"github.com/mdf-science/mdfzip/internal/ledger"
	"github.com/mdf-science/mdfzip/internal/logging"
	"github.com/mdf-science/mdfzip/internal/scan"
)

const bytesPerGB = float64(1 << 30)

// planCompressionEstimate is the assumed archive-to-original ratio reported
// in plan mode, a rough figure for mixed dataset content.
const planCompressionEstimate = 0.30

// Runner drives one compression sweep over a root directory.
type Runner struct {
	cfg   config.Settings
	led   *ledger.Ledger
	runID string
}

// New builds a Runner. The resume ledger is opened only when a ledger path
// is configured and the run is not a plan: plan mode must not read or write
// any history.
func New(cfg config.Settings) *Runner {
	r := &Runner{cfg: cfg, runID: uuid.NewString()}
	if cfg.LedgerPath != "" && !cfg.PlanMode {
		r.led = ledger.Open(cfg.LedgerPath)
	}
	return r
}

// result is one candidate's terminal state, sent from a worker to the
// aggregation loop.
type result struct {
	cand           scan.Candidate
	outcome        ledger.Outcome
	compressedSize int64
}

// Run selects candidates and processes each one on a bounded worker pool.
// Cancellation stops dispatching new candidates; whatever already finished
// is reported in the returned stats. The only error returned is a fatal
// selection failure (root missing or not a directory).
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	stats := RunStats{RunID: r.runID, PlanMode: r.cfg.PlanMode}

	candidates, err := scan.Select(r.cfg.Root, r.cfg.ArchiveFolder, r.cfg.SingleDir)
	if err != nil {
		return stats, err
	}
	stats.Total = len(candidates)

	log := logging.S()
	if r.cfg.PlanMode {
		log.Infow("PLAN MODE - no files will be created")
	}
	log.Infow("processing directory",
		"root", r.cfg.Root,
		"run_id", r.runID,
		"max_size_gb", r.cfg.MaxSizeGB,
		"single_directory", r.cfg.SingleDir,
		"workers", r.cfg.Workers,
	)

	if len(candidates) == 0 {
		log.Warnw("no folders found to process")
		return stats, nil
	}
	log.Infow("found folders to process", "count", len(candidates))

	jobs := make(chan scan.Candidate)
	results := make(chan result)

	var wg sync.WaitGroup
	for range r.cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if ctx.Err() != nil {
					// drain remaining jobs without processing
					continue
				}
				results <- r.process(ctx, c)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, c := range candidates {
			select {
			case jobs <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		merge(&stats, res)
	}

	if ctx.Err() != nil {
		log.Warnw("interrupted, reporting partial results",
			"processed", stats.Processed, "total", stats.Total)
	}
	return stats, nil
}

// process runs one candidate end to end: measure, consult the ledger,
// decide against the threshold, write, record.
func (r *Runner) process(ctx context.Context, c scan.Candidate) result {
	start := time.Now()
	log := logging.S()
	name := filepath.Base(c.Path)
	label := logging.Label(name)

	if err := scan.Probe(&c, r.cfg.ArchiveFolder); err != nil {
		log.Errorw("cannot measure folder", "folder", label, "error", err)
		return r.finish(c, ledger.OutcomeFailed, 0, start)
	}

	archivePath := r.cfg.ArchivePath(c.Path)
	log.Infow("measured folder",
		"folder", label,
		"size", display.FormatGB(c.SizeBytes),
		"files", c.FileCount,
	)
	if c.Warnings > 0 {
		log.Warnw("some entries were inaccessible and excluded",
			"folder", label, "warnings", c.Warnings)
	}

	// Measurement happens before the ledger check: size equality is one of
	// the eligibility conditions.
	if r.led != nil && r.led.Eligible(c.Path, c.SizeBytes, archivePath) {
		entry, _ := r.led.Get(c.Path)
		log.Infow("already processed, skipping", "folder", label)
		return r.finish(c, ledger.OutcomeAlreadyProcessed, entry.CompressedSizeBytes, start)
	}

	if float64(c.SizeBytes) > r.cfg.MaxSizeGB*bytesPerGB {
		if r.cfg.PlanMode {
			log.Infow("WOULD SKIP",
				"folder", label,
				"size", display.FormatGB(c.SizeBytes),
				"reason", "exceeds size threshold",
			)
		} else {
			log.Infow("skipping folder, exceeds size threshold",
				"folder", label,
				"size", display.FormatGB(c.SizeBytes),
				"max_size_gb", r.cfg.MaxSizeGB,
			)
			r.record(c, 0, ledger.OutcomeSkippedTooLarge, archivePath)
		}
		return r.finish(c, ledger.OutcomeSkippedTooLarge, 0, start)
	}

	if r.cfg.PlanMode {
		log.Infow("WOULD COMPRESS",
			"folder", label,
			"size", display.FormatGB(c.SizeBytes),
			"files", c.FileCount,
			"archive", archivePath,
		)
		estimate := int64(float64(c.SizeBytes) * planCompressionEstimate)
		return r.finish(c, ledger.OutcomeCompressed, estimate, start)
	}

	log.Infow("creating archive", "folder", label, "archive", archivePath)
	res, err := archive.Write(ctx, c.Path, r.cfg.ArchiveFolder, r.cfg.ArchiveName)
	if err != nil {
		log.Errorw("failed to create archive", "folder", label, "error", err)
		r.record(c, 0, ledger.OutcomeFailed, archivePath)
		return r.finish(c, ledger.OutcomeFailed, 0, start)
	}

	log.Infow("created archive",
		"folder", label,
		"compressed", display.FormatBytes(res.CompressedSize),
		"files", res.FilesAdded,
	)
	r.record(c, res.CompressedSize, ledger.OutcomeCompressed, archivePath)
	return r.finish(c, ledger.OutcomeCompressed, res.CompressedSize, start)
}

// record writes the candidate's outcome to the resume ledger, when enabled.
func (r *Runner) record(c scan.Candidate, compressedSize int64, status ledger.Outcome, archivePath string) {
	if r.led == nil {
		return
	}
	e := ledger.NewEntry(filepath.Base(c.Path), c.SizeBytes, c.FileCount,
		compressedSize, status, archivePath, r.runID)
	r.led.Record(c.Path, e)
}

func (r *Runner) finish(c scan.Candidate, outcome ledger.Outcome, compressedSize int64, start time.Time) result {
	if r.cfg.Verbose {
		logging.S().Debugw("folder done",
			"folder", logging.Label(filepath.Base(c.Path)),
			"outcome", string(outcome),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}
	return result{cand: c, outcome: outcome, compressedSize: compressedSize}
}

// merge folds one candidate result into the aggregate stats. This is the
// single synchronization point for the counters; workers never touch them.
func merge(stats *RunStats, res result) {
	stats.Processed++
	stats.TotalOriginalBytes += res.cand.SizeBytes

	switch res.outcome {
	case ledger.OutcomeCompressed, ledger.OutcomeAlreadyProcessed:
		if res.outcome == ledger.OutcomeAlreadyProcessed {
			stats.AlreadyProcessed++
		} else {
			stats.Compressed++
		}
		stats.CompressedOriginal += res.cand.SizeBytes
		stats.TotalCompressedBytes += res.compressedSize
	case ledger.OutcomeSkippedTooLarge:
		stats.SkippedTooLarge++
	case ledger.OutcomeFailed:
		stats.Failed++
	}
}

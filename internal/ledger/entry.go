package ledger

import (
	"time"

	"github.com/mdf-science/mdfzip/version"
)

// Outcome is the terminal processing state of one candidate directory.
type Outcome string

const (
	OutcomeCompressed       Outcome = "compressed"
	OutcomeSkippedTooLarge  Outcome = "skipped_too_large"
	OutcomeFailed           Outcome = "failed"
	OutcomeAlreadyProcessed Outcome = "already_processed"
)

const bytesPerGB = float64(1 << 30)

// Entry records everything known about one processed directory.
type Entry struct {
	FolderName          string    `json:"folder_name"`
	ProcessedAt         time.Time `json:"processed_at"`
	OriginalSizeBytes   int64     `json:"original_size_bytes"`
	OriginalSizeGB      float64   `json:"original_size_gb"`
	FileCount           int       `json:"file_count"`
	CompressedSizeBytes int64     `json:"compressed_size_bytes"`
	CompressedSizeGB    float64   `json:"compressed_size_gb"`
	CompressionRatio    float64   `json:"compression_ratio"` // percent of original
	Status              Outcome   `json:"status"`
	ArchivePath         string    `json:"archive_path"`
	RunID               string    `json:"run_id"`
	ToolVersion         string    `json:"tool_version"`
}

// NewEntry builds a ledger entry for one processed candidate. compressedSize
// is zero for anything other than a compressed outcome.
func NewEntry(folderName string, originalSize int64, fileCount int, compressedSize int64, status Outcome, archivePath, runID string) Entry {
	ratio := 0.0
	if originalSize > 0 && status == OutcomeCompressed {
		ratio = float64(compressedSize) / float64(originalSize) * 100
	}
	return Entry{
		FolderName:          folderName,
		ProcessedAt:         time.Now(),
		OriginalSizeBytes:   originalSize,
		OriginalSizeGB:      float64(originalSize) / bytesPerGB,
		FileCount:           fileCount,
		CompressedSizeBytes: compressedSize,
		CompressedSizeGB:    float64(compressedSize) / bytesPerGB,
		CompressionRatio:    ratio,
		Status:              status,
		ArchivePath:         archivePath,
		RunID:               runID,
		ToolVersion:         version.GetVersion(),
	}
}

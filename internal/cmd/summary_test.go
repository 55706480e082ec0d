package cmd

import (
	"strings"
	"testing"

	"github.com/mdf-science/mdfzip/internal/pipeline"
)

func TestPrintSummary(t *testing.T) {
	stats := pipeline.RunStats{
		Total:                3,
		Processed:            3,
		Compressed:           1,
		SkippedTooLarge:      1,
		AlreadyProcessed:     1,
		TotalOriginalBytes:   4 << 30,
		TotalCompressedBytes: 1 << 30,
		CompressedOriginal:   2 << 30,
	}

	var sb strings.Builder
	printSummary(&sb, stats)
	out := sb.String()

	for _, want := range []string{
		"PROCESSING SUMMARY",
		"Total folders processed: 3",
		"Folders compressed: 1",
		"Folders skipped (too large): 1",
		"Folders already processed: 1",
		"Total original data size: 4.00 GB",
		"Total compressed data size: 1.00 GB",
		"Overall compression ratio: 50.0%",
		"Space saved: 1.00 GB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DRY RUN") {
		t.Error("real run summary mentions dry run")
	}
}

func TestPrintSummary_PlanMode(t *testing.T) {
	stats := pipeline.RunStats{
		PlanMode:           true,
		Total:              2,
		Processed:          2,
		Compressed:         2,
		TotalOriginalBytes: 1 << 30,
	}

	var sb strings.Builder
	printSummary(&sb, stats)
	out := sb.String()

	for _, want := range []string{
		"EXECUTION PLAN",
		"DRY RUN MODE - No files were created",
		"Total folders that would be processed: 2",
		"Folders that would be compressed: 2",
		"Estimated compressed data size",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan summary missing %q:\n%s", want, out)
		}
	}
}

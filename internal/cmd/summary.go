package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdf-science/mdfzip/internal/display"
	"github.com/mdf-science/mdfzip/internal/pipeline"
)

// printSummary renders the end-of-run summary block. Plan mode labels every
// size-derived figure as an estimate.
func printSummary(w io.Writer, stats pipeline.RunStats) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	if stats.PlanMode {
		fmt.Fprintln(w, "EXECUTION PLAN - PROCESSING SUMMARY")
	} else {
		fmt.Fprintln(w, "PROCESSING SUMMARY")
	}
	fmt.Fprintln(w, rule)

	if stats.PlanMode {
		fmt.Fprintln(w, "DRY RUN MODE - No files were created")
		fmt.Fprintf(w, "Total folders that would be processed: %d\n", stats.Total)
		fmt.Fprintf(w, "Folders that would be compressed: %d\n", stats.Compressed)
		fmt.Fprintf(w, "Folders that would be skipped (too large): %d\n", stats.SkippedTooLarge)
		fmt.Fprintf(w, "Total original data size: %s\n", display.FormatGB(stats.TotalOriginalBytes))
		fmt.Fprintf(w, "Estimated compressed data size: %s\n", display.FormatGB(stats.TotalCompressedBytes))
	} else {
		fmt.Fprintf(w, "Total folders processed: %d\n", stats.Processed)
		fmt.Fprintf(w, "Folders compressed: %d\n", stats.Compressed)
		fmt.Fprintf(w, "Folders skipped (too large): %d\n", stats.SkippedTooLarge)
		fmt.Fprintf(w, "Folders failed: %d\n", stats.Failed)
		fmt.Fprintf(w, "Folders already processed: %d\n", stats.AlreadyProcessed)
		fmt.Fprintf(w, "Total original data size: %s\n", display.FormatGB(stats.TotalOriginalBytes))
		fmt.Fprintf(w, "Total compressed data size: %s\n", display.FormatGB(stats.TotalCompressedBytes))
	}

	if ratio := stats.OverallRatio(); ratio > 0 {
		if stats.PlanMode {
			fmt.Fprintf(w, "Estimated compression ratio: %.1f%%\n", ratio)
			fmt.Fprintf(w, "Estimated space saved: %s\n", display.FormatGB(stats.SpaceSaved()))
		} else {
			fmt.Fprintf(w, "Overall compression ratio: %.1f%%\n", ratio)
			fmt.Fprintf(w, "Space saved: %s\n", display.FormatGB(stats.SpaceSaved()))
		}
	}

	fmt.Fprintln(w, rule)
}

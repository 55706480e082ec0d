package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdf-science/mdfzip/internal/archive"
	"github.com/mdf-science/mdfzip/internal/ledger"
	"github.com/mdf-science/mdfzip/internal/logging"
	"github.com/mdf-science/mdfzip/internal/scan"
)

// NewValidateCmd creates and returns the validate subcommand. It checks every
// existing dataset archive under the root for corruption and, when a ledger
// is supplied, cross-checks ledger entries against the archives on disk.
func NewValidateCmd() *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:   "validate DIRECTORY",
		Short: "Validate dataset archives for corruption and ledger consistency",
		Long: `Validate the archives a previous sweep created under DIRECTORY.

Every <candidate>/<archive-folder>/<archive-name> found is opened and read
back in full so member checksums are verified. With --log-file, ledger
entries recorded as compressed are cross-checked: an entry whose archive
is missing or invalid is reported, as is an archive with no ledger entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], &flags)
		},
	}

	addSweepFlags(cmd, &flags)

	return cmd
}

func runValidate(cmd *cobra.Command, rootArg string, flags *sweepFlags) error {
	cfg, err := buildSettings(cmd, flags, rootArg)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.S()

	candidates, err := scan.Select(cfg.Root, cfg.ArchiveFolder, cfg.SingleDir)
	if err != nil {
		return err
	}

	var led *ledger.Ledger
	if cfg.LedgerPath != "" {
		led = ledger.Open(cfg.LedgerPath)
	}

	out := cmd.OutOrStdout()
	var totalArchives, totalErrors int

	for _, c := range candidates {
		archivePath := cfg.ArchivePath(c.Path)
		_, statErr := os.Stat(archivePath)
		entry, hasEntry := ledger.Entry{}, false
		if led != nil {
			entry, hasEntry = led.Get(c.Path)
		}

		if statErr != nil {
			if hasEntry && entry.Status == ledger.OutcomeCompressed {
				fmt.Fprintf(out, "MISSING: %s (ledger records a compressed archive)\n", archivePath)
				totalErrors++
			}
			continue
		}

		totalArchives++
		log.Debugw("validating archive", "archive", archivePath)

		members, err := archive.Validate(archivePath)
		if err != nil {
			fmt.Fprintf(out, "CORRUPT: %s (%v)\n", archivePath, err)
			totalErrors++
			continue
		}

		if hasEntry && entry.FileCount != members {
			// Inaccessible files are excluded at write time, so fewer
			// members than the recorded count is not by itself corruption.
			log.Warnw("member count differs from ledger",
				"archive", archivePath, "ledger", entry.FileCount, "members", members)
		}
		if led != nil && !hasEntry {
			fmt.Fprintf(out, "UNTRACKED: %s (no ledger entry)\n", archivePath)
		}
		if cfg.Verbose {
			fmt.Fprintf(out, "OK: %s (%d members)\n", archivePath, members)
		}
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Archives checked: %d\n", totalArchives)
	fmt.Fprintf(out, "  Total errors: %d\n", totalErrors)

	if totalErrors > 0 {
		return errors.New("validation found corrupt or missing archives")
	}
	return nil
}

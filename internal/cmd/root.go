package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mdf-science/mdfzip/version"
)

// NewRootCmd creates and returns the root cobra command for the mdfzip CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdfzip",
		Short: "mdfzip - Selectively compress dataset subdirectories into ZIP archives",
		Long: `mdfzip compresses the top-level subdirectories of a root directory into
ZIP archives, skipping directories above a configurable size threshold.
Source data is never modified: archives are written atomically into a
dedicated subfolder of each candidate, and a resume ledger avoids
recompressing unchanged directories.

Use subcommands to perform different operations:
  - run: Execute a compression sweep over a root directory
  - plan: Show what a sweep would do without creating any files
  - validate: Check existing archives for corruption and consistency
  - schedule: Run sweeps repeatedly on a cron schedule`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}

	groupCompression := "compression"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCompression,
		Title: "Compression Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	runCmd := NewRunCmd()
	planCmd := NewPlanCmd()
	scheduleCmd := NewScheduleCmd()
	validateCmd := NewValidateCmd()

	runCmd.GroupID = groupCompression
	planCmd.GroupID = groupCompression
	scheduleCmd.GroupID = groupCompression
	validateCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}

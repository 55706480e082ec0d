package cmd

import (
	"github.com/spf13/cobra"
)

// NewPlanCmd creates and returns the plan subcommand: a dry run that reports
// the same compress/skip classification as a real sweep without touching the
// filesystem or the resume ledger.
func NewPlanCmd() *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:   "plan DIRECTORY",
		Short: "Show what a sweep over DIRECTORY would do, without writing anything",
		Long: `Plan a compression sweep over DIRECTORY.

Every candidate is measured and classified exactly as the run command
would classify it, but no archives are created, no directories are made,
and the resume ledger is neither read nor written. Compressed sizes in
the summary are estimates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args[0], &flags, true)
		},
	}

	addSweepFlags(cmd, &flags)

	return cmd
}

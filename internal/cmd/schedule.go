package cmd

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/mdf-science/mdfzip/internal/logging"
	"github.com/mdf-science/mdfzip/internal/pipeline"
)

// NewScheduleCmd creates and returns the schedule subcommand. It runs the
// same sweep as the run command on a recurring cron schedule; the resume
// ledger keeps repeated sweeps cheap for unchanged directories.
func NewScheduleCmd() *cobra.Command {
	var (
		flags    sweepFlags
		cronSpec string
	)

	cmd := &cobra.Command{
		Use:   "schedule DIRECTORY",
		Short: "Run compression sweeps on a cron schedule",
		Long: `Run compression sweeps over DIRECTORY on a recurring schedule.

The schedule uses standard five-field cron syntax (minute, hour, day of
month, month, day of week). A tick is skipped when the previous sweep is
still running. The process runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, args[0], &flags, cronSpec)
		},
	}

	addSweepFlags(cmd, &flags)
	cmd.Flags().StringVar(&cronSpec, "cron", "", "Cron schedule for sweeps, e.g. \"0 2 * * *\" (required)")
	cmd.MarkFlagRequired("cron")

	return cmd
}

func runSchedule(cmd *cobra.Command, rootArg string, flags *sweepFlags, cronSpec string) error {
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", cronSpec, err)
	}

	cfg, err := buildSettings(cmd, flags, rootArg)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.S()

	ctx := cmd.Context()
	var running sync.Mutex

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cronSpec, func() {
		if !running.TryLock() {
			log.Warnw("previous sweep still running, skipping tick")
			return
		}
		defer running.Unlock()

		stats, err := pipeline.New(cfg).Run(ctx)
		if err != nil {
			log.Errorw("scheduled sweep failed", "error", err)
			return
		}
		printSummary(cmd.OutOrStdout(), stats)
	})
	if err != nil {
		return fmt.Errorf("registering schedule: %w", err)
	}

	log.Infow("scheduler started", "cron", cronSpec, "root", cfg.Root)
	scheduler.Start()

	<-ctx.Done()
	log.Infow("shutting down scheduler")

	// Stop returns once no jobs are being dispatched; wait for an in-flight
	// sweep to settle before exiting.
	<-scheduler.Stop().Done()
	running.Lock()
	running.Unlock()

	return nil
}

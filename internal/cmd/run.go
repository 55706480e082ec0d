package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mdf-science/mdfzip/internal/config"
	"github.com/mdf-science/mdfzip/internal/logging"
	"github.com/mdf-science/mdfzip/internal/pipeline"
)

// sweepFlags holds the flag values shared by the run, plan, and schedule
// commands. Values only override the config file when the flag was set.
type sweepFlags struct {
	maxSizeGB     float64
	archiveName   string
	archiveFolder string
	workers       int
	verbose       bool
	singleDir     bool
	logFile       string
	configFile    string
	logFormat     string
}

// addSweepFlags registers the shared sweep flags on cmd.
func addSweepFlags(cmd *cobra.Command, f *sweepFlags) {
	cmd.Flags().Float64Var(&f.maxSizeGB, "max-size", 10.0, "Maximum size in GB for folders to be compressed")
	cmd.Flags().StringVar(&f.archiveName, "archive-name", "dataset.zip", "Name of the zip file to create")
	cmd.Flags().StringVar(&f.archiveFolder, "archive-folder", ".mdf", "Name of the folder to store the zip file")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 4, "Number of worker threads for parallel processing")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&f.singleDir, "single-directory", false, "Process only the specified directory (not its subdirectories)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Path to ledger file for tracking processed folders (enables resume)")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "console", "Log output format: console or json")
}

// buildSettings assembles the run configuration: defaults, then the optional
// YAML config file, then any flags the user explicitly set.
func buildSettings(cmd *cobra.Command, f *sweepFlags, rootArg string) (config.Settings, error) {
	cfg := config.Default()

	if f.configFile != "" {
		loaded, err := config.Load(f.configFile, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("max-size") {
		cfg.MaxSizeGB = f.maxSizeGB
	}
	if flags.Changed("archive-name") {
		cfg.ArchiveName = f.archiveName
	}
	if flags.Changed("archive-folder") {
		cfg.ArchiveFolder = f.archiveFolder
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if flags.Changed("single-directory") {
		cfg.SingleDir = f.singleDir
	}
	if flags.Changed("log-file") {
		cfg.LedgerPath = f.logFile
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = config.LogFormat(f.logFormat)
	}

	root, err := config.ResolveRoot(rootArg)
	if err != nil {
		return cfg, err
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewRunCmd creates and returns the run subcommand, the main entry point for
// a compression sweep.
func NewRunCmd() *cobra.Command {
	var (
		flags sweepFlags
		plan  bool
	)

	cmd := &cobra.Command{
		Use:   "run DIRECTORY",
		Short: "Compress eligible subdirectories of DIRECTORY into ZIP archives",
		Long: `Run a compression sweep over DIRECTORY.

Each immediate subdirectory is measured; those at or below the size
threshold are compressed into <dir>/<archive-folder>/<archive-name> with
atomic write-then-rename semantics. Directories above the threshold are
skipped. With --log-file, previously compressed directories whose size is
unchanged and whose archive still validates are skipped as already
processed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args[0], &flags, plan)
		},
	}

	addSweepFlags(cmd, &flags)
	cmd.Flags().BoolVar(&plan, "plan", false, "Show what would be processed without creating any archives")

	return cmd
}

// runSweep is the shared execution path behind the run and plan commands.
func runSweep(cmd *cobra.Command, rootArg string, flags *sweepFlags, plan bool) error {
	cfg, err := buildSettings(cmd, flags, rootArg)
	if err != nil {
		return err
	}
	cfg.PlanMode = plan

	if err := logging.Init(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	stats, err := pipeline.New(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats)
	return nil
}

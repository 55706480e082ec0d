// Package cmd provides the command-line interface implementation for mdfzip.
//
// This package contains all the subcommand implementations for the mdfzip CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - run: Execute a compression sweep over a root directory
//   - plan: Dry run reporting what a sweep would do, with no filesystem writes
//   - validate: Check existing archives for corruption and ledger consistency
//   - schedule: Run sweeps repeatedly on a cron schedule
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands build an immutable
// config.Settings (defaults, then optional YAML config file, then flags) and
// hand it to the pipeline package.
package cmd

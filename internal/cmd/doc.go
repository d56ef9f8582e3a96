// Package cmd provides the command-line interface implementation for blockpack.
//
// This package contains all the subcommand implementations for the blockpack
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - organize: Full analyze/pack/materialize pipeline over a directory tree
//   - split: Standalone chunking of a single large file
//   - join: Reassembly of a split file from its chunk manifest
//   - seed: Test corpus generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. All packing logic lives in the
// pack package; this package only parses flags, renders progress and
// summaries, and maps errors to exit status.
package cmd

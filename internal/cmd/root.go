package cmd

import (
	"github.com/dendrascience/blockpack/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the blockpack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blockpack",
		Short: "blockpack - organize file sets into bounded-size transfer blocks",
		Long: `blockpack packages arbitrary file sets for constrained transport channels.

It estimates post-compression sizes from file extensions, groups files into
a minimal number of bounded-size blocks using first-fit-decreasing bin
packing, splits individually oversized files into fixed-size chunks, and
writes JSON manifests sufficient for exact reassembly. Compressing the
assembled block directories is left to external tooling; every block
manifest carries the suggested command.

Use subcommands to perform different operations:
  - organize: Pack a directory tree into block directories
  - split: Split a single large file into chunks
  - join: Reassemble a file from its chunk manifest
  - seed: Generate a mixed test corpus`,
		Version: version.GetFullVersion(),
	}

	groupPacking := "packing"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPacking,
		Title: "Packing Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	organizeCmd := NewOrganizeCmd()
	splitCmd := NewSplitCmd()
	joinCmd := NewJoinCmd()
	seedCmd := NewSeedCmd()

	organizeCmd.GroupID = groupPacking
	splitCmd.GroupID = groupPacking
	joinCmd.GroupID = groupPacking
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}

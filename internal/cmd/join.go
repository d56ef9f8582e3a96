package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dendrascience/blockpack/pack"
	"github.com/dendrascience/blockpack/util"
)

// NewJoinCmd creates and returns the join subcommand for the blockpack CLI.
// It reassembles a split file from its reconstruction manifest.
func NewJoinCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "join MANIFEST",
		Short: "Reassemble a file from its chunk manifest",
		Long: `Reassemble the original file described by a _split_info.json manifest.

Chunks are read from the manifest's directory strictly in ascending
manifest index order; filesystem enumeration order is never trusted. The
reassembled byte count is verified against the manifest before the command
reports success.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runJoin(args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: original file name)")

	return cmd
}

func runJoin(manifestPath, outputPath string) {
	manifest, err := pack.LoadChunkManifest(manifestPath)
	if err != nil {
		log.Fatalf("Cannot read manifest: %v", err)
	}

	dest := outputPath
	if dest == "" {
		dest = filepath.Base(manifest.OriginalFile)
	}

	chunkDir := filepath.Dir(manifestPath)
	if err := pack.JoinChunks(manifest, chunkDir, dest); err != nil {
		log.Fatalf("Join failed: %v", err)
	}

	fmt.Printf("Reassembled %s (%s) from %d chunks\n", dest, util.FormatSize(manifest.OriginalSize), manifest.TotalChunks)
}

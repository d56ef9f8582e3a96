package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dendrascience/blockpack/pack"
	"github.com/dendrascience/blockpack/util"
)

// NewSplitCmd creates and returns the split subcommand for the blockpack
// CLI. It splits a single file into chunks without running the organizer.
func NewSplitCmd() *cobra.Command {
	var (
		chunkSize  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split a single large file into chunks",
		Long: `Split FILE into sequential chunks of the given size.

Chunks are named <stem>.partNNN<ext> with zero-padded 1-based indices so
that lexicographic order matches chunk order, and a <stem>_split_info.json
reconstruction manifest is written next to them. Concatenating the chunks
in manifest index order reproduces the original file exactly.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runSplit(args[0], outputPath, chunkSize)
		},
	}

	cmd.Flags().StringVarP(&chunkSize, "chunk-size", "s", "100KB", "Chunk size")
	cmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output directory")

	return cmd
}

func runSplit(inputPath, outputPath, chunkSizeStr string) {
	chunkSize, err := util.ParseSize(chunkSizeStr)
	if err != nil {
		log.Fatalf("Invalid chunk size: %v", err)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		log.Fatalf("Cannot read input file: %v", err)
	}

	fmt.Printf("Splitting: %s (%s)\n", inputPath, util.FormatSize(info.Size()))
	fmt.Printf("Chunk size: %s\n", util.FormatSize(chunkSize))

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	manifest, err := pack.SplitFile(inputPath, filepath.Base(inputPath), chunkSize, outputPath)
	if err != nil {
		log.Fatalf("Split failed: %v", err)
	}
	if err := manifest.Save(outputPath); err != nil {
		log.Fatalf("Failed to write manifest: %v", err)
	}

	fmt.Printf("Wrote %d chunks and %s\n", manifest.TotalChunks, manifest.ManifestName())
}

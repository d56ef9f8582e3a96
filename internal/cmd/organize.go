package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	"github.com/dendrascience/blockpack/pack"
	"github.com/dendrascience/blockpack/util"
)

// NewOrganizeCmd creates and returns the organize subcommand for the
// blockpack CLI. It runs the full analyze/pack/materialize pipeline over a
// directory tree.
func NewOrganizeCmd() *cobra.Command {
	var (
		targetSize string
		outputPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "organize DIRECTORY",
		Short: "Organize a directory tree into bounded-size block directories",
		Long: `Organize the files under DIRECTORY into block directories of roughly
the target estimated archive size.

Files are grouped with first-fit-decreasing bin packing based on estimated
compressed sizes. Any file estimated larger than the target size gets its
own block and is split into chunks with a reconstruction manifest. Each
non-splitting block directory receives a zip_info.json describing its
members and the external archive command to run; the output root receives
an organization_summary.json with run statistics.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runOrganize(args[0], outputPath, targetSize, verbose)
		},
	}

	cmd.Flags().StringVarP(&targetSize, "target-size", "s", "100KB", "Target estimated archive size per block")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "organized_blocks", "Path to output directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose per-block output")

	return cmd
}

func runOrganize(inputPath, outputPath, targetSize string, verbose bool) {
	budget, err := util.ParseSize(targetSize)
	if err != nil {
		log.Fatalf("Invalid target size: %v", err)
	}

	fmt.Printf("Analyzing directory: %s\n", inputPath)
	fmt.Printf("Target block size: %s\n", util.FormatSize(budget))

	analyzer := pack.NewAnalyzer(pack.NewEstimator(nil))
	files, warnings, err := analyzer.AnalyzeDirectory(inputPath)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	for _, w := range warnings {
		log.Printf("Warning: %s", w)
	}
	if len(files) == 0 {
		fmt.Println("No files found to organize")
		return
	}
	fmt.Printf("Found %d files\n", len(files))

	blocks, err := pack.PackBlocks(files, budget)
	if err != nil {
		log.Fatalf("Packing failed: %v", err)
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	fmt.Printf("Creating %d blocks in %s\n", len(blocks), outputPath)

	// The bar and the per-block listing fight over the terminal, so the bar
	// only runs in quiet mode.
	var bar *progressbar.ProgressBar
	if !verbose {
		bar = progressbar.Default(int64(len(blocks)), "materializing")
	}

	materializer := pack.NewMaterializer(outputPath)
	for i, b := range blocks {
		if verbose {
			printBlockDetail(i+1, b)
		}
		if err := materializer.MaterializeBlock(b, i+1); err != nil {
			log.Fatalf("Materialization failed: %v", err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	summary := pack.BuildSummary(blocks, budget)
	if err := summary.Save(outputPath); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	printSummary(summary)
}

// blockLabel renders a block header with a stable per-block terminal color
// derived from the label text.
func blockLabel(label string) string {
	color := 17 + colorhash.HashString(label)%214
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, label)
}

func printBlockDetail(n int, b pack.Block) {
	fmt.Printf("\n%s:\n", blockLabel(pack.BlockDirName(n)))
	fmt.Printf("   Files: %d\n", len(b.Files))
	fmt.Printf("   Original size: %s\n", util.FormatSize(b.TotalSize))
	fmt.Printf("   Estimated archive size: %s\n", util.FormatSize(b.TotalEstimated))
	if b.NeedsSplitting {
		fmt.Println("   Oversized file will be split:")
	}
	for _, fd := range b.Files {
		fmt.Printf("       %s (%s)\n", fd.RelPath, util.FormatSize(fd.Size))
	}
}

func printSummary(s pack.OrganizationSummary) {
	fmt.Println("\nSummary:")
	fmt.Printf("   Total blocks: %d\n", s.TotalBlocks)
	fmt.Printf("   Blocks needing split: %d\n", s.BlocksNeedingSplit)
	fmt.Printf("   Total files: %d\n", s.TotalFiles)
	fmt.Printf("   Original size: %s\n", util.FormatSize(s.TotalSize))
	fmt.Printf("   Estimated compressed: %s\n", util.FormatSize(s.TotalEstimated))
	if s.TotalSize > 0 {
		fmt.Printf("   Compression ratio: %.1f%%\n", float64(s.TotalEstimated)/float64(s.TotalSize)*100)
	}
	fmt.Printf("   Average block size: %s\n", util.FormatSize(s.AverageBlockSize))
}

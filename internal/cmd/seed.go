package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the blockpack CLI.
// It generates a mixed test corpus for exercising the organizer.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a mixed test corpus",
		Long: `Generate test files for exercising blockpack organization.

Files are spread across a small directory hierarchy with a mix of
extensions and sizes. Most files are small enough to be grouped into
blocks; a few are large enough to trigger chunked splitting. Content is
drawn from a pool of UUIDs, so runs are cheap but non-identical.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 200, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

var (
	seedDirs = []string{"", "docs", "data", "images", filepath.Join("logs", "archive")}
	seedExts = []string{".txt", ".json", ".csv", ".log", ".jpg", ".bin"}
)

func runSeed(outputPath string, fileCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test files in %s\n", fileCount, outputPath)
	}

	// Create output directory
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Generate pool of 50 UUIDs used as file content lines
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	filesCreated := 0
	for filesCreated < fileCount {
		dirRand, _ := rand.Int(rand.Reader, big.NewInt(int64(len(seedDirs))))
		extRand, _ := rand.Int(rand.Reader, big.NewInt(int64(len(seedExts))))
		dirPath := filepath.Join(outputPath, seedDirs[dirRand.Int64()])
		ext := seedExts[extRand.Int64()]

		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		// Size classes: mostly small files, roughly one in twenty large
		// enough to exceed a 100KB block budget on its own.
		lines := int64(1)
		classRand, _ := rand.Int(rand.Reader, big.NewInt(100))
		switch {
		case classRand.Int64() < 5:
			lines = 8000 // ~290KB, forces a splitting block
		case classRand.Int64() < 35:
			lines = 700 // ~25KB
		default:
			sizeRand, _ := rand.Int(rand.Reader, big.NewInt(200))
			lines = sizeRand.Int64() + 1
		}

		// Generate random filename (lowercase hex)
		filenameNum, _ := rand.Int(rand.Reader, big.NewInt(0xFFFFFFFF))
		filename := fmt.Sprintf("%08x%s", filenameNum.Int64(), ext)
		filePath := filepath.Join(dirPath, filename)

		// Skip if file already exists
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		uuidIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(uuidPool))))
		line := uuidPool[uuidIndex.Int64()] + "\n"
		content := strings.Repeat(line, int(lines))

		if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		filesCreated++
		if verbose && filesCreated%100 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files\n", filesCreated)
	}
}

package pack

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// BlockReport is the per-block line of an OrganizationSummary. Efficiency
// is the block's estimated size as a percentage of the budget.
type BlockReport struct {
	BlockNumber    int    `json:"block_number"`
	FileCount      int    `json:"file_count"`
	OriginalSize   int64  `json:"original_size"`
	EstimatedSize  int64  `json:"estimated_compressed"`
	NeedsSplitting bool   `json:"needs_splitting"`
	Efficiency     string `json:"efficiency"`
}

// OrganizationSummary aggregates statistics over all blocks of a run.
type OrganizationSummary struct {
	TotalBlocks        int           `json:"total_blocks"`
	BlocksNeedingSplit int           `json:"blocks_needing_split"`
	TotalFiles         int           `json:"total_files"`
	TotalSize          int64         `json:"total_original_size"`
	TotalEstimated     int64         `json:"total_estimated_compressed"`
	AverageBlockSize   int64         `json:"average_block_size"`
	Blocks             []BlockReport `json:"blocks"`
}

// BuildSummary computes the summary for the given blocks and budget. It is
// pure aggregation: no filesystem access, no mutation of the blocks. Zero
// blocks yields a summary with all totals zero.
func BuildSummary(blocks []Block, budget int64) OrganizationSummary {
	s := OrganizationSummary{
		TotalBlocks: len(blocks),
		Blocks:      make([]BlockReport, 0, len(blocks)),
	}
	for i, b := range blocks {
		if b.NeedsSplitting {
			s.BlocksNeedingSplit++
		}
		s.TotalFiles += len(b.Files)
		s.TotalSize += b.TotalSize
		s.TotalEstimated += b.TotalEstimated

		efficiency := "0.0%"
		if budget > 0 {
			efficiency = fmt.Sprintf("%.1f%%", float64(b.TotalEstimated)/float64(budget)*100)
		}
		s.Blocks = append(s.Blocks, BlockReport{
			BlockNumber:    i + 1,
			FileCount:      len(b.Files),
			OriginalSize:   b.TotalSize,
			EstimatedSize:  b.TotalEstimated,
			NeedsSplitting: b.NeedsSplitting,
			Efficiency:     efficiency,
		})
	}
	if len(blocks) > 0 {
		s.AverageBlockSize = int64(math.Round(float64(s.TotalEstimated) / float64(len(blocks))))
	}
	return s
}

// Save writes the summary as JSON. If path does not end in .json it is
// treated as a directory and organization_summary.json is appended.
func (s OrganizationSummary) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, "organization_summary.json")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	je := json.NewEncoder(f)
	je.SetIndent("", "  ")
	return je.Encode(s)
}

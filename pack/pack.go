package pack

import (
	"fmt"
	"slices"
	"sort"
)

// Block groups descriptors destined for one archive unit. A block either
// holds any number of files whose combined estimate fits the budget, or
// exactly one oversized file flagged NeedsSplitting for the chunker.
type Block struct {
	Files          []FileDescriptor `json:"files"`
	TotalSize      int64            `json:"total_size"`
	TotalEstimated int64            `json:"total_compressed"`
	NeedsSplitting bool             `json:"needs_splitting"`
}

func (b *Block) add(fd FileDescriptor) {
	b.Files = append(b.Files, fd)
	b.TotalSize += fd.Size
	b.TotalEstimated += fd.EstimatedSize
}

// PackBlocks partitions every descriptor into exactly one block, keeping
// each non-splitting block's estimated total within budget. Any descriptor
// whose estimate alone exceeds the budget gets its own splitting block and
// is never merged with other files.
//
// The heuristic is first-fit-decreasing with an opportunistic backfill:
// descriptors are sorted descending by estimate, each is placed into the
// earliest existing block with room, and whenever a new block has to be
// opened the remaining unplaced descriptors are scanned once and attached
// if they still fit. Placement is tracked in a separate set over an
// immutable snapshot, so the scan order never shifts mid-iteration. The
// result is deterministic for a given input order but not globally optimal.
//
// A budget of zero or less is a configuration error, rejected before any
// packing work begins. Empty input yields empty output.
func PackBlocks(files []FileDescriptor, budget int64) ([]Block, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBudget, budget)
	}

	sorted := slices.Clone(files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EstimatedSize > sorted[j].EstimatedSize
	})

	var blocks []Block

	// Oversized files first: one splitting block each.
	var normal []FileDescriptor
	for _, fd := range sorted {
		if fd.EstimatedSize > budget {
			b := Block{NeedsSplitting: true}
			b.add(fd)
			blocks = append(blocks, b)
			continue
		}
		normal = append(normal, fd)
	}

	placed := make([]bool, len(normal))
	for i, fd := range normal {
		if placed[i] {
			continue
		}

		// Earliest-created block with room wins.
		target := -1
		for bi := range blocks {
			if blocks[bi].NeedsSplitting {
				continue
			}
			if blocks[bi].TotalEstimated+fd.EstimatedSize <= budget {
				target = bi
				break
			}
		}
		if target >= 0 {
			blocks[target].add(fd)
			placed[i] = true
			continue
		}

		// No room anywhere: open a new block, then backfill it with any
		// later descriptors that still fit.
		b := Block{}
		b.add(fd)
		placed[i] = true
		for j := i + 1; j < len(normal); j++ {
			if placed[j] {
				continue
			}
			if b.TotalEstimated+normal[j].EstimatedSize <= budget {
				b.add(normal[j])
				placed[j] = true
			}
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}

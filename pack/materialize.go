package pack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlockMember is one file entry in a block manifest.
type BlockMember struct {
	Name          string `json:"name"`
	OriginalPath  string `json:"original_path"`
	Size          int64  `json:"size"`
	EstimatedSize int64  `json:"estimated_compressed"`
}

// BlockManifest is written into every non-splitting block directory. The
// Command field is informational only: it is the external archive command an
// operator would run inside the block directory, never executed here.
type BlockManifest struct {
	Block         int           `json:"block"`
	Files         []BlockMember `json:"files"`
	TotalSize     int64         `json:"total_original_size"`
	EstimatedSize int64         `json:"estimated_zip_size"`
	Command       string        `json:"command"`
}

// Save writes the manifest as JSON. If path does not end in .json it is
// treated as a directory and zip_info.json is appended.
func (m BlockManifest) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, "zip_info.json")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	je := json.NewEncoder(f)
	je.SetIndent("", "  ")
	return je.Encode(m)
}

// Materializer turns packed blocks into on-disk block directories. It is
// the sole mutation boundary of the pipeline: everything upstream of it is
// read-only analysis.
type Materializer struct {
	// OutputDir is the root under which block_<n> directories are created.
	OutputDir string
	// ChunkSize is the chunk size used for splitting blocks.
	// Zero selects DefaultChunkSize.
	ChunkSize int64
}

// NewMaterializer creates a Materializer writing under outputDir.
func NewMaterializer(outputDir string) Materializer {
	return Materializer{OutputDir: outputDir, ChunkSize: DefaultChunkSize}
}

// BlockDirName returns the directory name for the 1-based block number n.
func BlockDirName(n int) string {
	return fmt.Sprintf("block_%d", n)
}

// Materialize writes every block in order. Blocks are numbered from one in
// slice order. Write failures are fatal: materialization stops at the first
// error, which carries the block and file context for manual retry.
func (m Materializer) Materialize(blocks []Block) error {
	for i, b := range blocks {
		if err := m.MaterializeBlock(b, i+1); err != nil {
			return err
		}
	}
	return nil
}

// MaterializeBlock writes one block directory. For a non-splitting block
// every member's bytes are copied unchanged under its base name and a block
// manifest is written alongside. For a splitting block the single oversized
// member is chunked and its reconstruction manifest written instead.
//
// Re-running against an empty output root reproduces identical content.
// Reuse of a non-empty output root is not guaranteed safe: stale files from
// earlier runs are not removed.
func (m Materializer) MaterializeBlock(b Block, n int) error {
	dir := filepath.Join(m.OutputDir, BlockDirName(n))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("block %d: %w", n, err)
	}

	if b.NeedsSplitting {
		chunkSize := m.ChunkSize
		if chunkSize == 0 {
			chunkSize = DefaultChunkSize
		}
		fd := b.Files[0]
		manifest, err := SplitFile(fd.Path, fd.RelPath, chunkSize, dir)
		if err != nil {
			return fmt.Errorf("block %d: split %s: %w", n, fd.RelPath, err)
		}
		if err := manifest.Save(dir); err != nil {
			return fmt.Errorf("block %d: split %s: %w", n, fd.RelPath, err)
		}
		return nil
	}

	manifest := BlockManifest{
		Block:         n,
		Files:         make([]BlockMember, 0, len(b.Files)),
		TotalSize:     b.TotalSize,
		EstimatedSize: b.TotalEstimated,
		Command:       fmt.Sprintf("zip -r %s.zip *", BlockDirName(n)),
	}
	for _, fd := range b.Files {
		name := filepath.Base(fd.RelPath)
		if err := copyFile(fd.Path, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("block %d: copy %s: %w", n, fd.RelPath, err)
		}
		manifest.Files = append(manifest.Files, BlockMember{
			Name:          name,
			OriginalPath:  fd.RelPath,
			Size:          fd.Size,
			EstimatedSize: fd.EstimatedSize,
		})
	}
	if err := manifest.Save(dir); err != nil {
		return fmt.Errorf("block %d: %w", n, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

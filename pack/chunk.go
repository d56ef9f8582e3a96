package pack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultChunkSize is the secondary chunk size used when a file too large
// for any block is split, chosen to match the default block budget scale.
const DefaultChunkSize = 100 * 1024

// ChunkDescriptor identifies one chunk of a split file. Indices are 1-based
// and contiguous; the manifest order is the only sequencing authority during
// reassembly, never filesystem enumeration order.
type ChunkDescriptor struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Size  int64  `json:"size"`
}

// ChunkManifest records everything needed to reconstruct a split file.
// Concatenating chunk bytes in ascending Index order reproduces the
// original exactly.
type ChunkManifest struct {
	OriginalFile string            `json:"original_file"`
	OriginalSize int64             `json:"original_size"`
	ChunkSize    int64             `json:"chunk_size"`
	Chunks       []ChunkDescriptor `json:"chunks"`
	TotalChunks  int               `json:"total_chunks"`
	JoinCommand  string            `json:"join_command"`
}

// ManifestName returns the conventional on-disk name for this manifest,
// derived from the original file's stem.
func (m ChunkManifest) ManifestName() string {
	base := filepath.Base(m.OriginalFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_split_info.json"
}

// Save writes the manifest as JSON. If path does not end in .json it is
// treated as a directory and the conventional manifest name is appended.
func (m ChunkManifest) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, m.ManifestName())
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

// LoadChunkManifest reads a manifest previously written by Save.
func LoadChunkManifest(path string) (ChunkManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ChunkManifest{}, fmt.Errorf("%w: %s", ErrRootNotFound, path)
		}
		return ChunkManifest{}, err
	}
	defer f.Close()
	var m ChunkManifest
	jd := json.NewDecoder(f)
	err = jd.Decode(&m)
	return m, err
}

// chunkWidth returns the zero-pad width for chunk indices: wide enough for
// the expected chunk count, never narrower than three digits so that
// lexicographic filename order equals numeric order.
func chunkWidth(total int) int {
	width := len(fmt.Sprintf("%d", total))
	if width < 3 {
		width = 3
	}
	return width
}

// SplitFile splits the file at path into sequential chunks of chunkSize
// bytes (the last chunk may be shorter) inside outputDir, and returns the
// reconstruction manifest. relPath is recorded in the manifest as the
// original file identity; it is typically the analyzer's root-relative path.
//
// Chunk files are named <stem>.part<index><ext> with zero-padded indices.
// A zero-byte file produces zero chunks. SplitFile is deterministic:
// identical input bytes and chunk size always produce byte-identical chunks.
func SplitFile(path, relPath string, chunkSize int64, outputDir string) (ChunkManifest, error) {
	if chunkSize <= 0 {
		return ChunkManifest{}, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ChunkManifest{}, fmt.Errorf("%w: %s", ErrRootNotFound, path)
		}
		return ChunkManifest{}, err
	}
	if info.IsDir() {
		return ChunkManifest{}, fmt.Errorf("%w: %s", ErrExpectedFile, path)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	size := info.Size()
	total := int((size + chunkSize - 1) / chunkSize)
	width := chunkWidth(total)

	f, err := os.Open(path)
	if err != nil {
		return ChunkManifest{}, err
	}
	defer f.Close()

	m := ChunkManifest{
		OriginalFile: relPath,
		OriginalSize: size,
		ChunkSize:    chunkSize,
		Chunks:       []ChunkDescriptor{},
		TotalChunks:  total,
		JoinCommand:  fmt.Sprintf("cat %s.part* > %s", stem, base),
	}

	remaining := size
	for index := 1; index <= total; index++ {
		length := chunkSize
		if remaining < length {
			length = remaining
		}
		name := fmt.Sprintf("%s.part%0*d%s", stem, width, index, ext)
		if err := writeChunk(f, filepath.Join(outputDir, name), length); err != nil {
			return ChunkManifest{}, fmt.Errorf("chunk %s: %w", name, err)
		}
		m.Chunks = append(m.Chunks, ChunkDescriptor{Name: name, Index: index, Size: length})
		remaining -= length
	}
	return m, nil
}

// writeChunk copies the next length bytes of src into a new file at path.
func writeChunk(src io.Reader, path string, length int64) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.CopyN(out, src, length); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// JoinChunks reconstructs the original file described by m into destPath,
// reading chunk files from chunkDir strictly in ascending manifest index
// order. The manifest must be contiguous from index 1 and the reassembled
// byte count must match OriginalSize, otherwise ErrManifestMismatch is
// returned and destPath is removed.
func JoinChunks(m ChunkManifest, chunkDir, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}

	var written int64
	for i, c := range m.Chunks {
		if c.Index != i+1 {
			out.Close()
			os.Remove(destPath)
			return fmt.Errorf("%w: chunk index %d at position %d", ErrManifestMismatch, c.Index, i+1)
		}
		n, err := appendChunk(out, filepath.Join(chunkDir, c.Name))
		if err != nil {
			out.Close()
			os.Remove(destPath)
			return err
		}
		if n != c.Size {
			out.Close()
			os.Remove(destPath)
			return fmt.Errorf("%w: chunk %s is %d bytes, manifest says %d", ErrManifestMismatch, c.Name, n, c.Size)
		}
		written += n
	}

	if len(m.Chunks) != m.TotalChunks || written != m.OriginalSize {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("%w: reassembled %d bytes from %d chunks, manifest says %d bytes in %d chunks",
			ErrManifestMismatch, written, len(m.Chunks), m.OriginalSize, m.TotalChunks)
	}
	return out.Close()
}

func appendChunk(dst io.Writer, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(dst, f)
}

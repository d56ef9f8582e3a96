package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/blockpack/pack"
)

func TestOrganizeCommandEndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "blocks")

	// A handful of small files plus one oversized jpeg.
	small := strings.Repeat("hello line\n", 500)
	for _, name := range []string{"a.txt", "b.txt", filepath.Join("sub", "c.txt")} {
		path := filepath.Join(srcDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(small), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	big := make([]byte, 50000)
	if err := os.WriteFile(filepath.Join(srcDir, "big.jpg"), big, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewOrganizeCmd()
	cmd.SetArgs([]string{srcDir, "--target-size", "10KB", "--output", outDir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("organize command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "organization_summary.json"))
	if err != nil {
		t.Fatalf("summary missing: %v", err)
	}
	var summary pack.OrganizationSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("summary invalid JSON: %v", err)
	}
	if summary.TotalFiles != 4 {
		t.Errorf("summary files = %d, want 4", summary.TotalFiles)
	}
	if summary.BlocksNeedingSplit != 1 {
		t.Errorf("summary splitting blocks = %d, want 1", summary.BlocksNeedingSplit)
	}
	if summary.TotalBlocks < 2 {
		t.Errorf("summary blocks = %d, want at least 2", summary.TotalBlocks)
	}
}

func TestSplitAndJoinCommandsRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	chunkDir := filepath.Join(t.TempDir(), "chunks")

	original := make([]byte, 25000)
	for i := range original {
		original[i] = byte(i % 256)
	}
	srcPath := filepath.Join(srcDir, "payload.bin")
	if err := os.WriteFile(srcPath, original, 0o644); err != nil {
		t.Fatal(err)
	}

	split := NewSplitCmd()
	split.SetArgs([]string{srcPath, "--chunk-size", "10KB", "--output", chunkDir})
	if err := split.Execute(); err != nil {
		t.Fatalf("split command failed: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "restored.bin")
	join := NewJoinCmd()
	join.SetArgs([]string{filepath.Join(chunkDir, "payload_split_info.json"), "--output", dest})
	if err := join.Execute(); err != nil {
		t.Fatalf("join command failed: %v", err)
	}

	restored, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != len(original) {
		t.Fatalf("restored %d bytes, want %d", len(restored), len(original))
	}
	for i := range restored {
		if restored[i] != original[i] {
			t.Fatalf("restored bytes differ at offset %d", i)
		}
	}
}

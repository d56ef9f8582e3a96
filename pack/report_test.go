package pack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil, 102400)
	if s.TotalBlocks != 0 || s.TotalFiles != 0 || s.TotalSize != 0 || s.TotalEstimated != 0 {
		t.Errorf("empty summary has non-zero totals: %+v", s)
	}
	if s.AverageBlockSize != 0 {
		t.Errorf("empty summary average = %d, want 0", s.AverageBlockSize)
	}
}

func TestBuildSummary(t *testing.T) {
	normal := Block{}
	normal.add(descriptorFixture("a.txt", 40000))
	normal.add(descriptorFixture("b.txt", 30000))
	splitting := Block{NeedsSplitting: true}
	splitting.add(descriptorFixture("big.jpg", 200000))

	s := BuildSummary([]Block{normal, splitting}, 102400)

	if s.TotalBlocks != 2 {
		t.Errorf("TotalBlocks = %d, want 2", s.TotalBlocks)
	}
	if s.BlocksNeedingSplit != 1 {
		t.Errorf("BlocksNeedingSplit = %d, want 1", s.BlocksNeedingSplit)
	}
	if s.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", s.TotalFiles)
	}
	if s.TotalEstimated != 270000 {
		t.Errorf("TotalEstimated = %d, want 270000", s.TotalEstimated)
	}
	if s.AverageBlockSize != 135000 {
		t.Errorf("AverageBlockSize = %d, want 135000", s.AverageBlockSize)
	}

	if len(s.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(s.Blocks))
	}
	first := s.Blocks[0]
	if first.BlockNumber != 1 || first.FileCount != 2 || first.NeedsSplitting {
		t.Errorf("first block report = %+v", first)
	}
	// 70000 / 102400 = 68.359...%
	if first.Efficiency != "68.4%" {
		t.Errorf("first block efficiency = %q, want 68.4%%", first.Efficiency)
	}
	second := s.Blocks[1]
	if !second.NeedsSplitting || second.BlockNumber != 2 {
		t.Errorf("second block report = %+v", second)
	}
}

func TestSummarySave(t *testing.T) {
	b := Block{}
	b.add(descriptorFixture("a.txt", 500))
	s := BuildSummary([]Block{b}, 102400)

	dir := t.TempDir()
	if err := s.Save(dir); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "organization_summary.json"))
	if err != nil {
		t.Fatalf("summary file missing: %v", err)
	}
	var loaded OrganizationSummary
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("summary file invalid JSON: %v", err)
	}
	if loaded.TotalBlocks != 1 || loaded.TotalFiles != 1 {
		t.Errorf("loaded summary = %+v", loaded)
	}
}

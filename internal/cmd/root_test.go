package cmd

import (
	"strings"
	"testing"
)

func TestNewRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"organize", "split", "join", "seed"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				if c.GroupID == "" {
					t.Errorf("subcommand %s has no group", name)
				}
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestOrganizeFlagDefaults(t *testing.T) {
	cmd := NewOrganizeCmd()

	tests := []struct {
		flag string
		want string
	}{
		{"target-size", "100KB"},
		{"output", "organized_blocks"},
		{"verbose", "false"},
	}
	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag --%s not defined", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestBlockLabelStable(t *testing.T) {
	a := blockLabel("block_1")
	b := blockLabel("block_1")
	if a != b {
		t.Errorf("blockLabel not stable: %q vs %q", a, b)
	}
	if !strings.Contains(a, "block_1") {
		t.Errorf("blockLabel output %q does not contain the label text", a)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCalendarCommandPrintsMonth(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	ideas := `[{"date":"2024-03-14","idea":"granular choir pad"},{"date":"bogus","idea":"skipped"}]`
	if err := os.WriteFile(filepath.Join(dir, "data", "music-ideas.json"), []byte(ideas), 0o644); err != nil {
		t.Fatalf("write ideas: %v", err)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", filepath.Join(dir, "homedash.yaml"), "calendar", "--month", "2024-03"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, part := range []string{"March 2024", "2024-03-14  granular choir pad"} {
		if !strings.Contains(got, part) {
			t.Fatalf("output missing %q:\n%s", part, got)
		}
	}
	if strings.Contains(got, "skipped") {
		t.Fatalf("invalid entry should be skipped:\n%s", got)
	}
}

func TestCalendarCommandRejectsBadMonth(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "homedash.yaml"), "calendar", "--month", "03/2024"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected an error for a malformed month")
	}
}

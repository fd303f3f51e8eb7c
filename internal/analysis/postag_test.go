package analysis

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveTagged(t *testing.T) {
	tagged := []TaggedToken{
		{Token: "鲁迅", Tag: "nr"},
		{Token: "在", Tag: "p"},
		{Token: "北京", Tag: "ns"},
	}
	path := filepath.Join(t.TempDir(), "pos_result.txt")

	lines, err := SaveTagged(tagged, path)
	if err != nil {
		t.Fatalf("SaveTagged: %v", err)
	}
	if len(lines) != 3 || lines[0] != "鲁迅 nr" {
		t.Errorf("lines = %v", lines)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "鲁迅 nr\n在 p\n北京 ns" {
		t.Errorf("file content = %q", data)
	}

	// Every written line must parse back.
	parsed, malformed := ParseTaggedLines(lines)
	if len(malformed) != 0 {
		t.Errorf("round-trip produced malformed lines: %v", malformed)
	}
	if len(parsed) != len(tagged) {
		t.Errorf("round-trip parsed %d tokens, want %d", len(parsed), len(tagged))
	}
}

func TestSaveTaggedReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos_result.txt")
	if err := os.WriteFile(path, []byte("stale stale stale stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := SaveTagged([]TaggedToken{{Token: "北京", Tag: "ns"}}, path); err != nil {
		t.Fatalf("SaveTagged: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "北京 ns" {
		t.Errorf("file content = %q, want fully replaced", data)
	}
}

func TestSaveTaggedUnwritablePath(t *testing.T) {
	if _, err := SaveTagged(nil, filepath.Join(t.TempDir(), "missing", "out.txt")); err == nil {
		t.Error("write to missing directory should error")
	}
}

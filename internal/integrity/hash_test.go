package integrity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileHashIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	if err := os.WriteFile(path, []byte("var a=1;"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h1, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	h2, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("FileHash not deterministic: %q != %q", h1, h2)
	}
	if SRIValue(h1) != "sha384-"+h1 {
		t.Fatalf("SRIValue malformed: %q", SRIValue(h1))
	}
}

func TestFileHashChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.js")
	pathB := filepath.Join(dir, "b.js")
	os.WriteFile(pathA, []byte("var a=1;"), 0o644)
	os.WriteFile(pathB, []byte("var a=2;"), 0o644)

	ha, _ := FileHash(pathA)
	hb, _ := FileHash(pathB)
	if ha == hb {
		t.Fatalf("expected different hashes for different content")
	}
}

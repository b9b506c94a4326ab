package integrity

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestPrecompressProducesReadableGzipSibling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.min.js")
	if err := os.WriteFile(path, []byte("var a=1;var a=1;var a=1;"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	gzPath, err := Precompress(path)
	if err != nil {
		t.Fatalf("Precompress: %v", err)
	}
	if gzPath != path+".gz" {
		t.Fatalf("Precompress path = %q, want %q", gzPath, path+".gz")
	}

	f, err := os.Open(gzPath)
	if err != nil {
		t.Fatalf("Open(%s): %v", gzPath, err)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "var a=1;var a=1;var a=1;" {
		t.Fatalf("decompressed = %q", got)
	}
}

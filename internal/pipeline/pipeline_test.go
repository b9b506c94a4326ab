package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brinegen/staticgen/internal/integrity"
	"github.com/brinegen/staticgen/internal/symtab"
)

func mkfile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestCollectPrebuiltAddsMinifiedFilesOnly(t *testing.T) {
	staticDir := filepath.Join(t.TempDir(), "static")
	mkfile(t, filepath.Join(staticDir, "app.min.js"), "var a=1;")
	mkfile(t, filepath.Join(staticDir, "app.js"), "var a=1;")
	mkfile(t, filepath.Join(staticDir, "style.min.css"), ".x{color:red}")

	m := integrity.NewMap()
	if err := CollectPrebuilt(staticDir, staticDir+"/", nil, m, false); err != nil {
		t.Fatalf("CollectPrebuilt: %v", err)
	}

	if len(m.Keys()) != 2 {
		t.Fatalf("expected 2 prebuilt entries, got %d: %v", len(m.Keys()), m.Keys())
	}
}

func TestCollectPrebuiltRespectsExcludePaths(t *testing.T) {
	staticDir := t.TempDir()
	mkfile(t, filepath.Join(staticDir, "vendor", "lib.min.js"), "var a=1;")

	m := integrity.NewMap()
	if err := CollectPrebuilt(staticDir, staticDir+"/", []string{"vendor"}, m, false); err != nil {
		t.Fatalf("CollectPrebuilt: %v", err)
	}
	if len(m.Keys()) != 0 {
		t.Fatalf("expected vendor/ excluded, got %v", m.Keys())
	}
}

func TestCompressFilesReducesJSAndRecordsMapEntry(t *testing.T) {
	staticDir := t.TempDir()
	generationDir := t.TempDir()

	mkfile(t, filepath.Join(staticDir, "lib.js"), "function __greet(name) {\n    return \"hi \" + name;\n}\n")
	mkfile(t, filepath.Join(staticDir, "app.js.comp"), "includeJS: "+filepath.Join(staticDir, "lib.js")+"\n")

	table := symtab.New()
	m := integrity.NewMap()

	err := CompressFiles(CompressOptions{
		StaticDir:     staticDir,
		GenerationDir: generationDir,
		Reduce:        true,
		Inline:        false,
		Versioning:    integrity.ModeNone,
	}, table, m)
	if err != nil {
		t.Fatalf("CompressFiles: %v", err)
	}

	writtenPath := filepath.Join(generationDir, "app.js")
	data, err := os.ReadFile(writtenPath)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", writtenPath, err)
	}
	if strings.Contains(string(data), "__greet") {
		t.Fatalf("expected private function name reduced, got %q", data)
	}
	if len(m.Keys()) != 1 {
		t.Fatalf("expected 1 map entry, got %d", len(m.Keys()))
	}
}

func TestCompressFilesVersionsWithMD5AndWritesDict(t *testing.T) {
	staticDir := t.TempDir()
	generationDir := t.TempDir()

	mkfile(t, filepath.Join(staticDir, "lib.js"), "function __greet(name) {\n    return name;\n}\n")
	mkfile(t, filepath.Join(staticDir, "app.min.js.comp"), "includeJS: "+filepath.Join(staticDir, "lib.js")+"\n")

	table := symtab.New()
	m := integrity.NewMap()

	err := CompressFiles(CompressOptions{
		StaticDir:     staticDir,
		GenerationDir: generationDir,
		Reduce:        true,
		Inline:        false,
		Versioning:    integrity.ModeMD5,
	}, table, m)
	if err != nil {
		t.Fatalf("CompressFiles: %v", err)
	}

	entries, err := os.ReadDir(generationDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	var sawJS, sawDict bool
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".min.js") {
			sawJS = true
		}
		if strings.HasSuffix(e.Name(), ".min.dict") {
			sawDict = true
		}
	}
	if !sawJS || !sawDict {
		t.Fatalf("expected versioned .min.js and sibling .min.dict, got %v", entries)
	}
}

func TestUpdateStaticFilesSubstitutesIntegrityPlaceholders(t *testing.T) {
	templatesDir := t.TempDir()
	generationDir := t.TempDir()

	mkfile(t, filepath.Join(templatesDir, "index.comp.html"),
		"<!DOCTYPE html><html><script src=\"{{app.static}}\" integrity=\"{{app.integrity}}\"></script></html>")

	m := integrity.NewMap()
	m.Add("app", integrity.Entry{Integrity: "sha384-abc", Static: "/static/app.min.js"})

	if err := UpdateStaticFiles(templatesDir, generationDir, "", nil, m, false, false); err != nil {
		t.Fatalf("UpdateStaticFiles: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(generationDir, "index.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(out), "sha384-abc") || !strings.Contains(string(out), "/static/app.min.js") {
		t.Fatalf("placeholders not substituted: %q", out)
	}
}

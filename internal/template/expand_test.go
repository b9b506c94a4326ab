package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brinegen/staticgen/internal/minify"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestExpandIncludesJSAndCSSVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "var a=1;\n")
	writeFile(t, filepath.Join(dir, "b.css"), ".x{color:red}\n")
	writeFile(t, filepath.Join(dir, "c.txt"), "raw text\n")

	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "includeJS: "+filepath.Join(dir, "a.js")+"\n"+
		"includeCSS: "+filepath.Join(dir, "b.css")+"\n"+
		"include: "+filepath.Join(dir, "c.txt")+"\n")

	res, err := Expand(manifest, Options{JS: minify.Passthrough{}, CSS: minify.Passthrough{}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !containsAll(res.Data, "var a=1;", ".x{color:red}", "raw text") {
		t.Fatalf("Expand data missing expected fragments: %q", res.Data)
	}
}

func TestExpandJSReduceModeStripsCommentsWithoutMinify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "// leading comment\nvar a=1;\n")
	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "includeJS: "+filepath.Join(dir, "a.js")+"\n")

	res, err := Expand(manifest, Options{Reduce: true, JS: minify.Passthrough{}, CSS: minify.Passthrough{}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if containsAll(res.Data, "leading comment") {
		t.Fatalf("expected comment stripped in reduce mode, got %q", res.Data)
	}
	if !containsAll(res.Data, "var a=1;") {
		t.Fatalf("expected statement retained, got %q", res.Data)
	}
}

func TestExpandCSSHasNoReduceFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.css"), "/* note */\n.x{color:red}\n")
	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "includeCSS: "+filepath.Join(dir, "b.css")+"\n")

	res, err := Expand(manifest, Options{Reduce: true, JS: minify.Passthrough{}, CSS: minify.Passthrough{}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !containsAll(res.Data, "/* note */") {
		t.Fatalf("CSS reduce mode should not strip comments (no fallback exists), got %q", res.Data)
	}
}

func TestExpandMissingIncludeIsError(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "includeJS: "+filepath.Join(dir, "missing.js")+"\n")

	if _, err := Expand(manifest, Options{JS: minify.Passthrough{}, CSS: minify.Passthrough{}}); err == nil {
		t.Fatalf("expected error for missing include path")
	}
}

func TestExpandPublicDirectiveCollectsSkipItems(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "reducePublicJSExcept: display; onclick\n")

	res, err := Expand(manifest, Options{JS: minify.Passthrough{}, CSS: minify.Passthrough{}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !res.Public {
		t.Fatalf("expected Public=true")
	}
	if len(res.SkipItems) != 2 || res.SkipItems[0] != "display" || res.SkipItems[1] != "onclick" {
		t.Fatalf("SkipItems = %v, want [display onclick]", res.SkipItems)
	}
}

func TestExpandFrontMatterOverridesHeaders(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "bundle.comp")
	writeFile(t, manifest, "---\nheader_js: \"/* hdr */\"\nreduce_public_js: true\n---\nfoo\n")

	res, err := Expand(manifest, Options{JS: minify.Passthrough{}, CSS: minify.Passthrough{}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if res.HeaderJS != "/* hdr */" {
		t.Fatalf("HeaderJS = %q, want /* hdr */", res.HeaderJS)
	}
	if !res.Public {
		t.Fatalf("expected Public=true from front matter")
	}
}

func containsAll(haystack string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			return false
		}
	}
	return true
}

package integrity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeKeyLowercasesAndReplacesSeparators(t *testing.T) {
	got := NormalizeKey("/abs/static/js/App-Main.js", "/abs/static/")
	want := "js_app_main_js"
	if got != want {
		t.Fatalf("NormalizeKey = %q, want %q", got, want)
	}
}

func TestMapMarshalIsSortedAndIndented(t *testing.T) {
	m := NewMap()
	m.Add("zeta", Entry{AbsPath: "/z", Integrity: "sha384-z", Static: "/static/z"})
	m.Add("alpha", Entry{AbsPath: "/a", Integrity: "sha384-a", Static: "/static/a"})

	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	if idxAlpha, idxZeta := strings.Index(s, "alpha"), strings.Index(s, "zeta"); idxAlpha == -1 || idxZeta == -1 || idxAlpha > idxZeta {
		t.Fatalf("expected alpha before zeta in sorted output: %s", s)
	}
}

func TestMapMergeFromKeepsUnseenKeys(t *testing.T) {
	dir := t.TempDir()
	priorPath := filepath.Join(dir, "map.json")
	os.WriteFile(priorPath, []byte(`{"old_key":{"abs_path":"/old","integrity":"sha384-old","static":"/static/old"}}`), 0o644)

	m := NewMap()
	m.Add("new_key", Entry{AbsPath: "/new", Integrity: "sha384-new", Static: "/static/new"})

	if err := m.MergeFrom(priorPath); err != nil {
		t.Fatalf("MergeFrom: %v", err)
	}

	if _, ok := m.Get("old_key"); !ok {
		t.Fatalf("expected old_key preserved from prior map file")
	}
	if _, ok := m.Get("new_key"); !ok {
		t.Fatalf("expected new_key retained")
	}
}

func TestMapMergeFromDoesNotOverwriteFreshEntries(t *testing.T) {
	dir := t.TempDir()
	priorPath := filepath.Join(dir, "map.json")
	os.WriteFile(priorPath, []byte(`{"shared":{"abs_path":"/stale","integrity":"sha384-stale","static":"/static/stale"}}`), 0o644)

	m := NewMap()
	m.Add("shared", Entry{AbsPath: "/fresh", Integrity: "sha384-fresh", Static: "/static/fresh"})
	if err := m.MergeFrom(priorPath); err != nil {
		t.Fatalf("MergeFrom: %v", err)
	}

	got, _ := m.Get("shared")
	if got.AbsPath != "/fresh" {
		t.Fatalf("MergeFrom overwrote fresh entry: got %+v", got)
	}
}

func TestMapMergeFromMissingFileIsNotError(t *testing.T) {
	m := NewMap()
	if err := m.MergeFrom("/no/such/map.json"); err != nil {
		t.Fatalf("MergeFrom on missing file should be a no-op, got %v", err)
	}
}

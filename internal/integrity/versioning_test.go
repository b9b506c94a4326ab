package integrity

import "testing"

func TestRenameModeNoneLeavesPathUnchanged(t *testing.T) {
	got, err := Rename("/out/app.min.js", ModeNone, "abcd", "ef01")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got != "/out/app.min.js" {
		t.Fatalf("Rename(none) = %q, want unchanged", got)
	}
}

func TestRenameModeMD5UsesFileHash(t *testing.T) {
	got, err := Rename("/out/app.min.js", ModeMD5, "deadbeef", "ef01")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got != "/out/deadbeef.min.js" {
		t.Fatalf("Rename(md5) = %q, want /out/deadbeef.min.js", got)
	}
}

func TestRenameModeGitUsesGitHash(t *testing.T) {
	got, err := Rename("/out/app.min.css", ModeGit, "deadbeef", "ef01")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got != "/out/ef01.min.css" {
		t.Fatalf("Rename(git) = %q, want /out/ef01.min.css", got)
	}
}

func TestRenameRejectsFilenameWithoutMinMarker(t *testing.T) {
	if _, err := Rename("/out/app.js", ModeMD5, "deadbeef", ""); err == nil {
		t.Fatalf("expected error for filename missing \".min.\"")
	}
}

func TestDictSiblingReplacesMinJS(t *testing.T) {
	got := DictSibling("/out/deadbeef.min.js")
	if got != "/out/deadbeef.min.dict" {
		t.Fatalf("DictSibling = %q, want /out/deadbeef.min.dict", got)
	}
}

package vcs

import (
	"context"
	"os/exec"
	"testing"
)

func TestShortHashReturnsNonEmptyInAGitRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			t.Skipf("git setup failed, skipping: %v", err)
		}
	}
	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "test")
	run("commit", "--allow-empty", "-m", "init")

	hash, err := ShortHash(context.Background(), dir)
	if err != nil {
		t.Fatalf("ShortHash: %v", err)
	}
	if hash == "" {
		t.Fatalf("expected non-empty short hash")
	}
}

func TestShortHashErrorsOutsideGitRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	if _, err := ShortHash(context.Background(), dir); err == nil {
		t.Fatalf("expected error outside a git repo")
	}
}

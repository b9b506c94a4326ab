package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "staticgen.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "static_dir: ./static\ntemplates_dir: ./templates\ngeneration_dir: ./generated\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Minify || !cfg.Reduce || !cfg.Inline || !cfg.Clean {
		t.Fatalf("expected default booleans true, got %+v", cfg)
	}
	if cfg.Versioning != VersioningMD5 {
		t.Fatalf("Versioning = %q, want md5", cfg.Versioning)
	}
	if cfg.IncludeCacheSize != 256 {
		t.Fatalf("IncludeCacheSize = %d, want 256", cfg.IncludeCacheSize)
	}
}

func TestLoadRejectsInvalidVersioning(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "static_dir: ./static\ntemplates_dir: ./templates\ngeneration_dir: ./generated\nversioning: bogus\n")

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error for invalid versioning")
	}
}

func TestLoadRequiresStaticDir(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "templates_dir: ./templates\ngeneration_dir: ./generated\n")

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error for missing static_dir")
	}
}

func TestLoadMissingConfigFileUsesDefaultsOnly(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error since static_dir/templates_dir/generation_dir are required and absent")
	}
}

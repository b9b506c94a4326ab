package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeTestConfig(t *testing.T, dir, staticDir, templatesDir, generationDir string) {
	t.Helper()
	data := "static_dir: " + staticDir + "\n" +
		"templates_dir: " + templatesDir + "\n" +
		"generation_dir: " + generationDir + "\n" +
		"versioning: none\n" +
		"verbose: false\n"
	if err := os.WriteFile(filepath.Join(dir, "staticgen.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestRunBuildProducesGenerationOutput(t *testing.T) {
	root := t.TempDir()
	staticDir := filepath.Join(root, "static")
	templatesDir := filepath.Join(root, "templates")
	generationDir := filepath.Join(root, "generated")

	for _, d := range []string{staticDir, templatesDir, generationDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", d, err)
		}
	}

	if err := os.WriteFile(filepath.Join(staticDir, "app.js.comp"), []byte("console.log('hi');\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	writeTestConfig(t, root, staticDir, templatesDir, generationDir)

	configPath = root
	defer func() { configPath = "" }()

	if err := runBuild(buildCmd, nil); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	if _, err := os.Stat(filepath.Join(generationDir, "app.js")); err != nil {
		t.Fatalf("expected generated app.js, stat error: %v", err)
	}
}

func TestLoadConfigWithFlagOverridesAppliesStaticDirFlag(t *testing.T) {
	root := t.TempDir()
	staticDir := filepath.Join(root, "static")
	templatesDir := filepath.Join(root, "templates")
	generationDir := filepath.Join(root, "generated")
	for _, d := range []string{staticDir, templatesDir, generationDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", d, err)
		}
	}
	writeTestConfig(t, root, staticDir, templatesDir, generationDir)

	configPath = root
	defer func() { configPath = "" }()

	override := filepath.Join(root, "other-static")
	if err := os.MkdirAll(override, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	probe := &cobra.Command{Use: "probe"}
	probe.Flags().StringVar(&flagStaticDir, "static-dir", "", "")
	if err := probe.Flags().Set("static-dir", override); err != nil {
		t.Fatalf("Set(static-dir): %v", err)
	}
	defer func() { flagStaticDir = "" }()

	cfg, err := loadConfigWithFlagOverrides(probe)
	if err != nil {
		t.Fatalf("loadConfigWithFlagOverrides: %v", err)
	}
	if cfg.StaticDir != override {
		t.Fatalf("expected StaticDir override %q, got %q", override, cfg.StaticDir)
	}
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brinegen/staticgen/internal/cache"
	"github.com/brinegen/staticgen/internal/config"
	"github.com/brinegen/staticgen/internal/integrity"
	"github.com/brinegen/staticgen/internal/metrics"
	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/vcs"
)

// Run executes one full build: clean, already-minified passthrough,
// `.comp` compression, `.comp.html` expansion, and map-file emission -
// the original's top-level `run()` entrypoint, generalized over
// config.Config instead of positional keyword arguments.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Build) (err error) {
	start := time.Now()
	defer func() {
		if m != nil {
			m.RecordRun(err == nil, time.Since(start).Seconds())
		}
	}()

	if _, statErr := os.Stat(cfg.GenerationDir); statErr != nil {
		return fmt.Errorf("generation directory does not exist: %s", cfg.GenerationDir)
	}

	var gitShortHash string
	if cfg.Versioning == config.VersioningGit {
		gitShortHash, err = vcs.ShortHash(ctx, ".")
		if err != nil {
			return fmt.Errorf("resolving git short hash: %w", err)
		}
	}

	if cfg.Clean {
		logger.Info("cleaning generation directory", zap.String("dir", cfg.GenerationDir))
		if err = os.RemoveAll(cfg.GenerationDir); err != nil {
			return err
		}
		if err = os.Mkdir(cfg.GenerationDir, 0o755); err != nil {
			return err
		}
	}

	table := symtab.New()
	mapDict := integrity.NewMap()

	logger.Info("collecting already-minified files")
	if err = CollectPrebuilt(cfg.StaticDir, cfg.IntegrityKeyPfx, cfg.ExcludePaths, mapDict, cfg.Verbose); err != nil {
		return err
	}

	includes, err := cache.NewInclude(cfg.IncludeCacheSize)
	if err != nil {
		return err
	}

	logger.Info("compressing static files")
	if err = CompressFiles(CompressOptions{
		StaticDir:           cfg.StaticDir,
		GenerationDir:       cfg.GenerationDir,
		IntegrityKeyRemoval: cfg.IntegrityKeyPfx,
		ExcludePaths:        cfg.ExcludePaths,
		Minify:              cfg.Minify,
		Reduce:              cfg.Reduce,
		Versioning:          integrity.Mode(cfg.Versioning),
		GitShortHash:        gitShortHash,
		HeaderJS:            cfg.HeaderJS,
		HeaderCSS:           cfg.HeaderCSS,
		Inline:              cfg.Inline,
		Precompress:         cfg.Precompress,
		Verbose:             cfg.Verbose,
		Includes:            includes,
	}, table, mapDict); err != nil {
		return err
	}

	if len(table.Errors) > 0 {
		logger.Warn("reducer reported errors", zap.Strings("errors", table.Errors))
	}

	logger.Info("generating static HTML files")
	if err = UpdateStaticFiles(cfg.TemplatesDir, cfg.GenerationDir, gitShortHash, cfg.ExcludePaths, mapDict, cfg.KeepTree, cfg.Verbose); err != nil {
		return err
	}

	if cfg.MergeMapFile != "" {
		if err = mapDict.MergeFrom(cfg.MergeMapFile); err != nil {
			return fmt.Errorf("merging map file %s: %w", cfg.MergeMapFile, err)
		}
	}

	if cfg.MapFileName != "" {
		mapPath := filepath.Join(cfg.GenerationDir, cfg.MapFileName)
		if err = mapDict.WriteFile(mapPath); err != nil {
			return err
		}
		logger.Info("generated map file", zap.String("path", mapPath))
	}

	// Errors are sticky (spec §7): every remaining phase above still ran
	// so the maximum diagnostic surface is available in one invocation,
	// but a non-empty error log still fails the run once everything has
	// had a chance to execute.
	if len(table.Errors) > 0 {
		err = fmt.Errorf("build finished with %d reducer error(s):\n%s", len(table.Errors), strings.Join(table.Errors, "\n"))
		return err
	}

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brinegen/staticgen/internal/buildlog"
	"github.com/brinegen/staticgen/internal/metrics"
	"github.com/brinegen/staticgen/internal/pipeline"
)

// debounceWindow coalesces a burst of filesystem events (e.g. an
// editor's save-then-rename) into a single rebuild.
const debounceWindow = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild on every change under static_dir/templates_dir",
	Long: `Run the pipeline once, then watch static_dir and templates_dir
for changes and rebuild on each one. Serves Prometheus counters on
metrics_addr (if configured) for the lifetime of the watch.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&flagStaticDir, "static-dir", "", "override static_dir from config")
	watchCmd.Flags().StringVar(&flagTemplatesDir, "templates-dir", "", "override templates_dir from config")
	watchCmd.Flags().StringVar(&flagGenerationDir, "generation-dir", "", "override generation_dir from config")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigWithFlagOverrides(cmd)
	if err != nil {
		return err
	}

	logger, err := buildlog.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.NewBuild(prometheus.DefaultRegisterer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{cfg.StaticDir, cfg.TemplatesDir} {
		if err := addRecursive(watcher, dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	logger.Info("running initial build")
	if err := pipeline.Run(ctx, cfg, logger, m); err != nil {
		logger.Error("initial build failed", zap.Error(err))
	}

	var pending *time.Timer
	var pendingPath string

	for {
		var fire <-chan time.Time
		if pending != nil {
			fire = pending.C
		}

		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pendingPath = event.Name
			if pending == nil {
				pending = time.NewTimer(debounceWindow)
			} else {
				pending.Reset(debounceWindow)
			}

		case <-fire:
			pending = nil
			logger.Info("change detected, rebuilding", zap.String("path", pendingPath))
			if err := pipeline.Run(ctx, cfg, logger, m); err != nil {
				logger.Error("rebuild failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// addRecursive registers every directory under root with watcher,
// since fsnotify watches are not recursive on their own.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

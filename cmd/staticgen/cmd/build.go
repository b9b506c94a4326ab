package cmd

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/brinegen/staticgen/internal/buildlog"
	"github.com/brinegen/staticgen/internal/config"
	"github.com/brinegen/staticgen/internal/metrics"
	"github.com/brinegen/staticgen/internal/pipeline"
)

var (
	flagStaticDir     string
	flagTemplatesDir  string
	flagGenerationDir string
	flagMinify        bool
	flagReduce        bool
	flagVersioning    string
	flagClean         bool
	flagPrecompress   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the static asset pipeline once",
	Long: `Expand every .comp/.comp.html manifest under the configured
static and template directories, reduce and version the result, and
write it to the generation directory.

Examples:
  # Build using ./staticgen.yaml
  staticgen build

  # Build with an explicit config directory
  staticgen build --config ./deploy`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&flagStaticDir, "static-dir", "", "override static_dir from config")
	buildCmd.Flags().StringVar(&flagTemplatesDir, "templates-dir", "", "override templates_dir from config")
	buildCmd.Flags().StringVar(&flagGenerationDir, "generation-dir", "", "override generation_dir from config")
	buildCmd.Flags().BoolVar(&flagMinify, "minify", false, "override minify from config")
	buildCmd.Flags().BoolVar(&flagReduce, "reduce", false, "override reduce from config")
	buildCmd.Flags().StringVar(&flagVersioning, "versioning", "", "override versioning from config (md5, git, none)")
	buildCmd.Flags().BoolVar(&flagClean, "clean", false, "override clean from config")
	buildCmd.Flags().BoolVar(&flagPrecompress, "precompress", false, "override precompress from config")
}

func runBuild(cmd *cobra.Command, _ []string) error {
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

	return pipeline.Run(context.Background(), cfg, logger, m)
}

func loadConfigWithFlagOverrides(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("static-dir") {
		cfg.StaticDir = flagStaticDir
	}
	if flags.Changed("templates-dir") {
		cfg.TemplatesDir = flagTemplatesDir
	}
	if flags.Changed("generation-dir") {
		cfg.GenerationDir = flagGenerationDir
	}
	if flags.Changed("minify") {
		cfg.Minify = flagMinify
	}
	if flags.Changed("reduce") {
		cfg.Reduce = flagReduce
	}
	if flags.Changed("versioning") {
		cfg.Versioning = config.Versioning(flagVersioning)
	}
	if flags.Changed("clean") {
		cfg.Clean = flagClean
	}
	if flags.Changed("precompress") {
		cfg.Precompress = flagPrecompress
	}
	if verbose, _ := flags.GetBool("verbose"); flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	return cfg, nil
}

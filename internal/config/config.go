// Package config loads and validates staticgen's build configuration
// from a YAML file, environment variables, and CLI flags, in that
// order of increasing precedence (spec §2's ambient configuration
// layer, adapted from the teacher's flat-file config conventions).
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Versioning selects how emitted JS/CSS assets are cache-busted.
// Mirrors integrity.Mode but kept distinct so config stays decoupled
// from the integrity package's internal vocabulary.
type Versioning string

const (
	VersioningMD5  Versioning = "md5"
	VersioningGit  Versioning = "git"
	VersioningNone Versioning = "none"
)

// Config is the full set of options the original `run()` entrypoint
// accepted as keyword arguments, plus the supplemented ambient/domain
// options (logging, caching, metrics, precompression, map merging).
type Config struct {
	StaticDir         string     `mapstructure:"static_dir" validate:"required"`
	TemplatesDir      string     `mapstructure:"templates_dir" validate:"required"`
	GenerationDir     string     `mapstructure:"generation_dir" validate:"required"`
	MapFileName       string     `mapstructure:"map_file_name"`
	MergeMapFile      string     `mapstructure:"merge_map_file"`
	IntegrityKeyPfx   string     `mapstructure:"integrity_key_removal"`
	ExcludePaths      []string   `mapstructure:"exclude_paths"`
	Minify            bool       `mapstructure:"minify"`
	Reduce            bool       `mapstructure:"reduce"`
	Versioning        Versioning `mapstructure:"versioning" validate:"omitempty,oneof=md5 git none"`
	Verbose           bool       `mapstructure:"verbose"`
	HeaderJS          string     `mapstructure:"header_js"`
	HeaderCSS         string     `mapstructure:"header_css"`
	Inline            bool       `mapstructure:"inline"`
	Clean             bool       `mapstructure:"clean"`
	KeepTree          bool       `mapstructure:"keep_tree"`
	Precompress       bool       `mapstructure:"precompress"`
	IncludeCacheSize  int        `mapstructure:"include_cache_size" validate:"gte=0"`
	MetricsAddr       string     `mapstructure:"metrics_addr"`
	LogLevel          string     `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

var validate = validator.New()

// Defaults registers on v the option values the original `run()`
// signature defaulted to.
func Defaults(v *viper.Viper) {
	v.SetDefault("minify", true)
	v.SetDefault("reduce", true)
	v.SetDefault("versioning", string(VersioningMD5))
	v.SetDefault("verbose", true)
	v.SetDefault("inline", true)
	v.SetDefault("clean", true)
	v.SetDefault("keep_tree", false)
	v.SetDefault("precompress", false)
	v.SetDefault("integrity_key_removal", "")
	v.SetDefault("include_cache_size", 256)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log_level", "info")
}

// Load reads staticgen.yaml (if present) from configPaths, then
// environment variables prefixed STATICGEN_, unmarshals into a
// Config, and validates it.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	Defaults(v)

	v.SetConfigName("staticgen")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if len(configPaths) == 0 {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STATICGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

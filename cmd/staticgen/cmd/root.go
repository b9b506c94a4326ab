package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "staticgen",
	Short: "Static asset build pipeline with JS identifier reduction",
	Long: `staticgen compresses a site's JS/CSS manifests, rewrites private
(and, in public mode, public) JavaScript identifiers down to short aliases,
expands HTML templates with subresource-integrity placeholders, and
emits a versioned, cache-bustable static tree.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory containing staticgen.yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generation directory",
	Long:  `Delete generation_dir itself and everything in it, leaving static_dir and templates_dir untouched.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&flagGenerationDir, "generation-dir", "", "override generation_dir from config")
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigWithFlagOverrides(cmd)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(cfg.GenerationDir); err != nil {
		return fmt.Errorf("removing %s: %w", cfg.GenerationDir, err)
	}
	fmt.Printf("removed %s\n", cfg.GenerationDir)
	return nil
}

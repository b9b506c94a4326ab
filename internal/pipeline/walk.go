// Package pipeline orchestrates the full build: walking the static
// and template directories, driving the Template Expander and Reducer
// over every manifest, binding the results through the Integrity
// Binder, and writing the generated tree (spec §2, adapted from
// original_source/static_generator/main.py's `run`).
package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// walkFiles returns every regular file under root, sorted by absolute
// path, mirroring the original's os.walk + comp_paths.sort() pattern
// (determinism matters: map-file output and log ordering depend on
// it).
func walkFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		paths = append(paths, abs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// excluded reports whether path contains any of the configured
// exclude substrings, matching the original's
// `any(include_string in abs_path for include_string in exclude_paths)`.
func excluded(path string, excludePaths []string) bool {
	for _, sub := range excludePaths {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

func withSuffix(paths []string, suffix string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			out = append(out, p)
		}
	}
	return out
}

package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brinegen/staticgen/internal/integrity"
)

// CollectPrebuilt adds every already-minified `*.min.js`/`*.min.css`
// file under staticDir directly to m, without running it through the
// Template Expander or Reducer - the original's
// `__add_already_minified_files` (spec's supplemented "already-minified
// passthrough" feature).
func CollectPrebuilt(staticDir, integrityKeyRemoval string, excludePaths []string, m *integrity.Map, verbose bool) error {
	paths, err := walkFiles(staticDir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if excluded(path, excludePaths) {
			continue
		}
		if !strings.HasSuffix(path, ".min.js") && !strings.HasSuffix(path, ".min.css") {
			continue
		}

		if verbose {
			fmt.Println(" " + path)
		}

		hash, err := integrity.FileHash(path)
		if err != nil {
			return err
		}

		staticPath, err := staticURLPath(path)
		if err != nil {
			return err
		}

		key := integrity.NormalizeKey(path, integrityKeyRemoval)
		m.Add(key, integrity.Entry{
			AbsPath:   path,
			Integrity: integrity.SRIValue(hash),
			Static:    staticPath,
		})
	}
	return nil
}

// staticURLPath derives the `/static/...` URL the original computes as
// `"/static/" + file_path.split("static/")[1]`: everything from (and
// including) the first "static/" segment in the absolute path.
func staticURLPath(absPath string) (string, error) {
	idx := strings.Index(absPath, "static"+string(filepath.Separator))
	if idx == -1 {
		return "", fmt.Errorf("path %q does not contain a static/ segment", absPath)
	}
	rel := absPath[idx+len("static"+string(filepath.Separator)):]
	return "/static/" + filepath.ToSlash(rel), nil
}

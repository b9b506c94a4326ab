package pipeline

import (
	"fmt"
	"strings"

	"github.com/brinegen/staticgen/internal/integrity"
)

const htmlCompSuffix = ".comp.html"

// UpdateStaticFiles expands every `.comp.html` template under
// templatesDir into generationDir, substituting integrity-map
// placeholders (component F), mirroring the original's
// `__update_static_files`.
func UpdateStaticFiles(templatesDir, generationDir, gitShortHash string, excludePaths []string, m *integrity.Map, keepTree, verbose bool) error {
	paths, err := walkFiles(templatesDir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if excluded(path, excludePaths) {
			continue
		}
		if !strings.HasSuffix(path, htmlCompSuffix) {
			continue
		}

		writePath, err := integrity.ExpandStaticHTML(path, templatesDir, generationDir, gitShortHash, m, keepTree)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Println(" " + writePath)
		}
	}
	return nil
}

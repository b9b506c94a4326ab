package integrity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brinegen/staticgen/internal/cerrors"
)

const (
	htmlCompSuffix = ".comp.html"
	doctype        = "<!DOCTYPE html>"
	doctypeBanner  = doctype + "\n\n<!-- File dynamically generated -->\n"
)

// ExpandStaticHTML substitutes a `.comp.html` template's
// `{{key.integrity}}`, `{{key.static}}`, and `{{git_versioning}}`
// placeholders from the integrity map and emits the banner-prefixed
// result under generationDir.
//
// When keepTree is true, the output path mirrors templatePath's
// position relative to templatesDir beneath generationDir/<base name of
// templatesDir>; otherwise every template is flattened into
// generationDir directly. A pre-existing output path is a fatal
// OutputCollision - two templates must never be allowed to clobber
// each other silently.
func ExpandStaticHTML(templatePath, templatesDir, generationDir string, gitShortHash string, m *Map, keepTree bool) (string, error) {
	if !strings.HasSuffix(templatePath, htmlCompSuffix) {
		return "", fmt.Errorf("not a %s template: %s", htmlCompSuffix, templatePath)
	}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", err
	}
	template := string(raw)

	if gitShortHash != "" {
		template = strings.ReplaceAll(template, "{{git_versioning}}", gitShortHash)
	}
	template = strings.Replace(template, doctype, doctypeBanner, 1)

	for _, key := range m.Keys() {
		entry, _ := m.Get(key)
		template = strings.ReplaceAll(template, "{{"+key+".integrity}}", entry.Integrity)
		template = strings.ReplaceAll(template, "{{"+key+".static}}", entry.Static)
	}

	finalName := strings.Replace(filepath.Base(templatePath), ".comp.", ".", 1)

	writeDir := generationDir
	if keepTree {
		cleanTemplatesDir := strings.TrimSuffix(templatesDir, string(filepath.Separator)) + string(filepath.Separator)
		baseName := filepath.Base(filepath.Dir(cleanTemplatesDir))
		rel := strings.TrimPrefix(templatePath, cleanTemplatesDir)
		writeDir = filepath.Join(generationDir, baseName, filepath.Dir(rel))
		if err := os.MkdirAll(writeDir, 0o755); err != nil {
			return "", err
		}
	}
	writePath := filepath.Join(writeDir, finalName)

	if _, err := os.Stat(writePath); err == nil {
		return "", cerrors.New(cerrors.OutputCollision, templatePath, "output path already exists: %s", writePath)
	}

	if err := os.WriteFile(writePath, []byte(template), 0o644); err != nil {
		return "", err
	}
	return writePath, nil
}

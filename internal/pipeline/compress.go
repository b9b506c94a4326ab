package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brinegen/staticgen/internal/cache"
	"github.com/brinegen/staticgen/internal/integrity"
	"github.com/brinegen/staticgen/internal/minify"
	"github.com/brinegen/staticgen/internal/reducer"
	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/template"
	"github.com/brinegen/staticgen/internal/token"
)

// CompressOptions configures one CompressFiles run.
type CompressOptions struct {
	StaticDir           string
	GenerationDir       string
	IntegrityKeyRemoval string
	ExcludePaths        []string
	Minify              bool
	Reduce              bool
	Versioning          integrity.Mode
	GitShortHash        string
	HeaderJS            string
	HeaderCSS           string
	Inline              bool
	Precompress         bool
	Verbose             bool
	Includes            *cache.Include
}

// CompressFiles discovers every `.comp` manifest under opts.StaticDir,
// expands it (component E), reduces its JS through the tokenizer and
// reducer (components A-D) when it targets a `.js` output, versions
// and hashes the result (component F), and records it in m. table is
// shared across every file in the run so its encoding counters stay
// process-wide monotone (spec invariant 4).
func CompressFiles(opts CompressOptions, table *symtab.Table, m *integrity.Map) error {
	paths, err := walkFiles(opts.StaticDir)
	if err != nil {
		return err
	}
	compPaths := withSuffix(paths, template.FileExtension)

	for _, compPath := range compPaths {
		if excluded(compPath, opts.ExcludePaths) {
			continue
		}
		if err := compressOne(compPath, opts, table, m); err != nil {
			return err
		}
	}
	return nil
}

func compressOne(compPath string, opts CompressOptions, table *symtab.Table, m *integrity.Map) error {
	if opts.Verbose {
		fmt.Println(" " + compPath)
	}

	var js minify.JS = minify.Passthrough{}
	var css minify.CSS = minify.Passthrough{}
	if opts.Minify {
		js, css = minify.Whitespace{}, minify.Whitespace{}
	}

	result, err := template.Expand(compPath, template.Options{
		StaticDir: opts.StaticDir,
		Minify:    opts.Minify,
		Reduce:    opts.Reduce,
		Inline:    opts.Inline,
		JS:        js,
		CSS:       css,
		Includes:  opts.Includes,
	})
	if err != nil {
		return err
	}

	fileData := template.Renormalize(result.Data)

	integrityKeyPath := strings.TrimSuffix(compPath, template.FileExtension)
	writePath := filepath.Join(opts.GenerationDir, filepath.Base(integrityKeyPath))

	var dict string
	if opts.Reduce && strings.HasSuffix(writePath, ".js") {
		tokens, warnings := token.Tokenize(fileData)
		for _, w := range warnings {
			table.AddWarning("%s: %s", compPath, w)
		}
		reduced := reducer.Reduce(tokens, table, reducer.Options{
			Public: result.Public,
			Skip:   result.SkipItems,
		})
		fileData = token.Join(reduced)
		dict = table.Dump()
	}

	headerJS, headerCSS := opts.HeaderJS, opts.HeaderCSS
	if result.HeaderJS != "" {
		headerJS = result.HeaderJS
	}
	if result.HeaderCSS != "" {
		headerCSS = result.HeaderCSS
	}

	switch {
	case strings.HasSuffix(writePath, ".css"):
		fileData = headerCSS + fileData
	case strings.HasSuffix(writePath, ".js"):
		fileData = headerJS + fileData
	}

	if err := os.WriteFile(writePath, []byte(fileData), 0o644); err != nil {
		return err
	}

	fileHash, err := integrity.FileHash(writePath)
	if err != nil {
		return err
	}

	finalPath, err := integrity.Rename(writePath, opts.Versioning, fileHash, opts.GitShortHash)
	if err != nil {
		return err
	}
	if finalPath != writePath {
		if err := os.Rename(writePath, finalPath); err != nil {
			return err
		}
		writePath = finalPath
	}

	if opts.Reduce && strings.HasSuffix(writePath, ".js") {
		if err := os.WriteFile(integrity.DictSibling(writePath), []byte(dict), 0o644); err != nil {
			return err
		}
	}

	if opts.Precompress {
		if _, err := integrity.Precompress(writePath); err != nil {
			return err
		}
	}

	staticPath, err := generationURLPath(writePath, opts.GenerationDir)
	if err != nil {
		return err
	}

	key := integrity.NormalizeKey(integrityKeyPath, opts.IntegrityKeyRemoval)
	m.Add(key, integrity.Entry{
		AbsPath:   writePath,
		Integrity: integrity.SRIValue(fileHash),
		Static:    staticPath,
	})
	return nil
}

// generationURLPath mirrors the original's
// `f"/{basename(generation_dir)}{write_path.replace(generation_dir, "")}"`.
func generationURLPath(writePath, generationDir string) (string, error) {
	base := filepath.Base(generationDir)
	rel, err := filepath.Rel(generationDir, writePath)
	if err != nil {
		return "", err
	}
	return "/" + base + "/" + filepath.ToSlash(rel), nil
}

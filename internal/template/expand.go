// Package template implements the Template Expander (spec §4.E):
// manifest (`.comp` file) assembly into a single JS or CSS artifact
// ready for tokenization/reduction.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	goyaml "github.com/goccy/go-yaml"

	"github.com/brinegen/staticgen/internal/cache"
	"github.com/brinegen/staticgen/internal/cerrors"
	"github.com/brinegen/staticgen/internal/minify"
)

// Options configures one manifest expansion.
type Options struct {
	StaticDir string
	Minify    bool
	Reduce    bool
	Inline    bool
	JS        minify.JS
	CSS       minify.CSS
	Includes  *cache.Include
}

// Result is the fully assembled artifact text plus the per-manifest
// reduction mode a `reducePublicJSExcept:` directive (or YAML
// front-matter equivalent) may have requested.
type Result struct {
	Data      string
	Public    bool
	SkipItems []string
	HeaderJS  string
	HeaderCSS string
}

// frontMatter is an optional leading `---\n...\n---\n` YAML block
// (SPEC_FULL.md §3) overriding headers/public-mode for this manifest
// alone, instead of only through CLI-wide configuration.
type frontMatter struct {
	HeaderJS             string   `yaml:"header_js"`
	HeaderCSS            string   `yaml:"header_css"`
	ReducePublicJS       bool     `yaml:"reduce_public_js"`
	ReducePublicJSExcept []string `yaml:"reduce_public_js_except"`
}

// Expand reads and assembles a manifest file's directives into one
// artifact.
func Expand(manifestPath string, opts Options) (*Result, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	body, front, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing front matter of %s: %w", manifestPath, err)
	}

	res := &Result{HeaderJS: front.HeaderJS, HeaderCSS: front.HeaderCSS, Public: front.ReducePublicJS}
	res.SkipItems = append(res.SkipItems, front.ReducePublicJSExcept...)

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.Contains(line, InfoTag):
			out = append(out, strings.ReplaceAll(line, InfoTag, "@Generated at: "+time.Now().String()))

		case strings.HasPrefix(line, ReducePublicExceptPx):
			res.Public = true
			for _, elem := range strings.Split(strings.TrimPrefix(line, ReducePublicExceptPx), ";") {
				if elem = strings.TrimSpace(elem); elem != "" {
					res.SkipItems = append(res.SkipItems, elem)
				}
			}

		case strings.HasPrefix(line, IncludeJSPrefix):
			data, err := expandJSInclude(manifestPath, line, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, data)

		case strings.HasPrefix(line, IncludeCSSPrefix):
			data, err := expandCSSInclude(manifestPath, line, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, data)

		case strings.HasPrefix(line, IncludePrefix):
			data, err := includeVerbatim(manifestPath, line, opts.StaticDir)
			if err != nil {
				return nil, err
			}
			out = append(out, data)

		default:
			if opts.Inline && strings.TrimSpace(line) == "" {
				continue
			}
			out = append(out, line)
		}
	}

	if opts.Inline {
		res.Data = strings.Join(out, "")
	} else {
		res.Data = strings.Join(out, "\n")
	}
	return res, nil
}

// statIncludeAndRead resolves an include directive's path, validates it
// exists, checks the include cache, and returns the raw file data
// prefixed with a `/* <prefix><path> */` marker comment (spec §4.E).
// The caller is responsible for minification/post-processing and for
// populating the cache with the final result.
func statIncludeAndRead(manifestPath, line, prefix string, opts Options) (includePath string, modTime time.Time, data string, cached bool, err error) {
	includePath = pathFromLine(line, prefix, opts.StaticDir)
	info, statErr := os.Stat(includePath)
	if statErr != nil {
		return "", time.Time{}, "", false, cerrors.New(cerrors.MissingIncludePath, manifestPath, "include path %q does not exist", includePath)
	}
	modTime = info.ModTime()

	if opts.Includes != nil {
		if hit, ok := opts.Includes.Get(includePath, modTime); ok {
			return includePath, modTime, hit, true, nil
		}
	}

	raw, err := os.ReadFile(includePath)
	if err != nil {
		return "", time.Time{}, "", false, err
	}
	data = fmt.Sprintf("/* %s%s */\n%s", prefix, includePath, string(raw))
	return includePath, modTime, data, false, nil
}

// expandJSInclude handles `includeJS:` directives. When minification is
// enabled the fragment is run through opts.JS; in reduce mode, comments
// are then stripped (whether or not it was minified) ahead of
// tokenization so the reducer doesn't have to reason about them. Inline
// manifests get a trailing
// `;` appended when the fragment doesn't already end with one, so
// concatenated statements stay syntactically separated.
func expandJSInclude(manifestPath, line string, opts Options) (string, error) {
	includePath, modTime, data, cached, err := statIncludeAndRead(manifestPath, line, IncludeJSPrefix, opts)
	if err != nil {
		return "", err
	}
	if cached {
		return data, nil
	}

	if opts.Minify {
		data, err = opts.JS.MinifyJS(data)
		if err != nil {
			return "", err
		}
	}
	if opts.Reduce {
		data = StripComments(data)
	}

	data = normalizeJSInclude(data)
	if opts.Inline && !strings.HasSuffix(data, ";") {
		data += ";"
	}

	if opts.Includes != nil {
		opts.Includes.Put(includePath, modTime, data)
	}
	return data, nil
}

// expandCSSInclude handles `includeCSS:` directives. Unlike JS includes,
// CSS has no reduce-mode fallback: when minification is off the
// fragment is only comment-prefixed and normalized.
func expandCSSInclude(manifestPath, line string, opts Options) (string, error) {
	includePath, modTime, data, cached, err := statIncludeAndRead(manifestPath, line, IncludeCSSPrefix, opts)
	if err != nil {
		return "", err
	}
	if cached {
		return data, nil
	}

	if opts.Minify {
		data, err = opts.CSS.MinifyCSS(data)
		if err != nil {
			return "", err
		}
	}

	data = normalizeCSSInclude(data)

	if opts.Includes != nil {
		opts.Includes.Put(includePath, modTime, data)
	}
	return data, nil
}

func includeVerbatim(manifestPath, line, staticDir string) (string, error) {
	includePath := pathFromLine(line, IncludePrefix, staticDir)
	if _, err := os.Stat(includePath); err != nil {
		return "", cerrors.New(cerrors.MissingIncludePath, manifestPath, "include path %q does not exist", includePath)
	}
	raw, err := os.ReadFile(includePath)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func pathFromLine(line, tag, staticDir string) string {
	path := strings.TrimSpace(strings.SplitN(line, tag, 2)[1])
	if strings.HasPrefix(path, StaticPathSentinel) {
		complement := strings.SplitN(path, StaticPathSentinel, 2)[1]
		path = filepath.Join(staticDir, complement)
	}
	return path
}

func splitFrontMatter(raw string) (body string, fm frontMatter, err error) {
	const delim = "---"
	if !strings.HasPrefix(raw, delim+"\n") {
		return raw, fm, nil
	}
	rest := raw[len(delim)+1:]
	idx := strings.Index(rest, "\n"+delim)
	if idx == -1 {
		return raw, fm, nil
	}
	yamlBlock := rest[:idx]
	body = rest[idx+len("\n"+delim):]
	body = strings.TrimPrefix(body, "\n")
	if err := goyaml.Unmarshal([]byte(yamlBlock), &fm); err != nil {
		return raw, fm, err
	}
	return body, fm, nil
}

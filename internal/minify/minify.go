// Package minify defines the reducer pipeline's minifier collaborator
// interfaces (spec §4.E: "optionally minifies it (external
// collaborator)"). No JS/CSS minifier library appears anywhere in the
// retrieved example pack (see DESIGN.md); Whitespace is a conservative
// stand-in that never changes program behavior, used when --minify is
// requested without a real minifier wired in.
package minify

import "strings"

// JS reduces JavaScript source size without changing its behavior.
type JS interface {
	MinifyJS(src string) (string, error)
}

// CSS reduces CSS source size without changing its behavior.
type CSS interface {
	MinifyCSS(src string) (string, error)
}

// Passthrough returns input unchanged; used when minification is
// disabled entirely.
type Passthrough struct{}

func (Passthrough) MinifyJS(src string) (string, error)  { return src, nil }
func (Passthrough) MinifyCSS(src string) (string, error) { return src, nil }

// Whitespace trims trailing whitespace from every line and collapses
// runs of blank lines to one, without parsing JS/CSS grammar. It is
// deliberately conservative: a real minifier would also strip
// comments and shorten tokens, but doing that safely requires a
// grammar-aware parser, which is an explicit spec.md §1 non-goal.
type Whitespace struct{}

func (Whitespace) MinifyJS(src string) (string, error)  { return collapse(src), nil }
func (Whitespace) MinifyCSS(src string) (string, error) { return collapse(src), nil }

func collapse(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

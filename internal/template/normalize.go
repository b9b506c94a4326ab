package template

import "strings"

// normalizeJSInclude applies the include-site JS post-processing spec
// §4.E describes: strip stray `use strict` pragmas (redundant once
// fragments are concatenated) and collapse `;}` to `}`.
func normalizeJSInclude(data string) string {
	data = strings.ReplaceAll(data, `"use strict";`, "")
	data = strings.ReplaceAll(data, `'use strict';`, "")
	data = strings.ReplaceAll(data, ";}", "}")
	return data
}

// normalizeCSSInclude applies the include-site CSS post-processing:
// spaced `+` (CSS calc/selector combinators read oddly minified) and
// `opacity:0` -> `opacity: 0`.
func normalizeCSSInclude(data string) string {
	data = strings.ReplaceAll(data, "+", " + ")
	data = strings.ReplaceAll(data, "  ", " ")
	data = strings.ReplaceAll(data, "opacity:0", "opacity: 0")
	return data
}

// Renormalize re-indents emitted JS/CSS with tabs: every run of four
// spaces collapses to one tab, after existing tabs are first expanded
// to four spaces. This mirrors the original pipeline's own
// space-then-tab double pass, which exists to normalize mixed
// indentation coming from differently-configured include sources.
func Renormalize(data string) string {
	data = strings.ReplaceAll(data, "\t", "    ")
	for strings.Contains(data, "    ") {
		data = strings.ReplaceAll(data, "    ", "\t")
	}
	return data
}

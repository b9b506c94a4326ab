package template

import (
	"regexp"
	"strings"
)

var wsRun = regexp.MustCompile(`\s+`)
var quoteOrWS = regexp.MustCompile(`([\s'"])`)

// splitKeepDelims mirrors Python's re.split(pattern, text) when pattern
// has a single capturing group: unlike Go's regexp.Split, the
// delimiters themselves are kept in the result, interleaved with the
// surrounding text.
func splitKeepDelims(re *regexp.Regexp, text string) []string {
	locs := re.FindAllStringIndex(text, -1)
	if locs == nil {
		return []string{text}
	}
	var out []string
	prev := 0
	for _, loc := range locs {
		out = append(out, text[prev:loc[0]], text[loc[0]:loc[1]])
		prev = loc[1]
	}
	out = append(out, text[prev:])
	return out
}

// StripComments removes `/* ... */` block comments and `//` line
// comments from JS source while leaving string contents untouched, a
// direct port of the original pipeline's comment-removal pass. It runs
// ahead of tokenization whenever the reducer is enabled, whether or not
// the include was minified first (spec §9's "comment sensitivity" open
// question).
func StripComments(text string) string {
	return stripLineComments(stripBlockComments(text))
}

func stripBlockComments(text string) string {
	var sb strings.Builder
	insideComment := false
	for _, chunk := range splitKeepDelims(wsRun, text) {
		switch {
		case strings.HasPrefix(chunk, "/*"):
			insideComment = !strings.HasSuffix(chunk[2:], "*/")
		case strings.HasSuffix(chunk, "*/"):
			insideComment = false
		case !insideComment:
			sb.WriteString(chunk)
		}
	}
	return sb.String()
}

// stripLineComments removes `//` comments line by line, careful not to
// treat a `//` inside a quoted string (e.g. "https://example.com") as
// a comment opener.
func stripLineComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "//") {
			continue
		}

		var keep strings.Builder
		var quoteChar string
		for _, part := range splitKeepDelims(quoteOrWS, line) {
			switch {
			case (part == `'` || part == `"`) && quoteChar == "":
				quoteChar = part
				keep.WriteString(part)
			case part == quoteChar && quoteChar != "":
				quoteChar = ""
				keep.WriteString(part)
			case strings.Contains(part, "//") && quoteChar == "":
				keep.WriteString(strings.SplitN(part, "//", 2)[0])
				goto doneLine
			default:
				keep.WriteString(part)
			}
		}
	doneLine:
		lines[i] = strings.TrimSpace(keep.String())
	}
	return strings.Join(lines, "\n")
}

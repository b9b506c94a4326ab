package token

import "strings"

// regexArtifacts are the two fixed literal sequences spec §4.A calls
// out: each would otherwise have its embedded quote mis-detected as
// opening a string literal by joinStringLiterals, because a lone
// quote delimiter token looks identical whether it belongs to a real
// string or to one of these regex literals.
var regexArtifacts = []string{`/"/g`, `/'/g`}

// glueRegexArtifacts scans for either fixed sequence appearing as
// consecutive single-character tokens and merges each match into one
// opaque Literal token, pass 1 of spec §4.A.
func glueRegexArtifacts(tokens []Token) []Token {
	for _, artifact := range regexArtifacts {
		tokens = glueOne(tokens, artifact)
	}
	return tokens
}

func glueOne(tokens []Token, artifact string) []Token {
	out := make([]Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if matchesArtifact(tokens, i, artifact) {
			out = append(out, Token{Kind: Literal, Text: artifact, Line: tokens[i].Line})
			i += len(artifact)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// matchesArtifact reports whether len(artifact) consecutive tokens
// starting at i concatenate (byte for byte) to artifact. Each rune of
// the artifact is a single-character token from rawSplit, so the
// token count equals len(artifact).
func matchesArtifact(tokens []Token, i int, artifact string) bool {
	if i+len(artifact) > len(tokens) {
		return false
	}
	var sb strings.Builder
	for j := 0; j < len(artifact); j++ {
		sb.WriteString(tokens[i+j].Text)
	}
	return sb.String() == artifact
}

// joinStringLiterals is pass 2 of spec §4.A: string-literal joining.
// It carries a single active quote delimiter, buffering tokens between
// an opening and closing quote of the same kind into one opaque
// Literal token. Degenerate single-token and empty literals are
// detected without buffering. A newline discovered inside a buffered
// literal produces a JoinedStringContainsNewline warning (non-fatal).
func joinStringLiterals(tokens []Token) ([]Token, []string) {
	out := make([]Token, 0, len(tokens))
	var buffer []Token
	var delimiter byte
	var warnings []string

	closeBuffer := func() {
		var sb strings.Builder
		for _, t := range buffer {
			sb.WriteString(t.Text)
		}
		text := sb.String()
		if strings.Contains(text, "\n") {
			warnings = append(warnings, "JoinedStringContainsNewline: literal spans a line break: "+summarize(text))
		}
		out = append(out, Token{Kind: Literal, Text: text, Line: buffer[0].Line})
		buffer = nil
		delimiter = 0
	}

	for _, t := range tokens {
		if len(buffer) == 0 {
			if delimiter == 0 && (t.Text == "'" || t.Text == "\"") {
				delimiter = t.Text[0]
			} else if delimiter != 0 {
				// A literal was open and this token did not immediately
				// close it as a degenerate one-token case below; fall
				// through to the generic buffering logic.
			}
		}

		switch {
		case delimiter == 0:
			out = append(out, t)

		case len(buffer) == 0 && len(t.Text) > 0 && t.Text[0] == delimiter:
			// Either a single-token literal ("hello" arriving pre-glued)
			// or an empty literal (""), both closing immediately.
			if (t.Text != string(delimiter) && t.Text[len(t.Text)-1] == delimiter) ||
				t.Text == string(delimiter)+string(delimiter) {
				out = append(out, Token{Kind: Literal, Text: t.Text, Line: t.Line})
				delimiter = 0
			} else {
				buffer = append(buffer, t)
			}

		case len(t.Text) > 0 && t.Text[len(t.Text)-1] == delimiter && len(buffer) > 0:
			buffer = append(buffer, t)
			closeBuffer()

		case len(buffer) > 0:
			buffer = append(buffer, t)

		default:
			out = append(out, t)
		}
	}

	// An unterminated literal at EOF is flushed as-is; the caller's
	// input contract (well-formed source) makes this unreachable in
	// practice, but we must not drop tokens.
	if len(buffer) > 0 {
		closeBuffer()
	}

	return out, warnings
}

func summarize(s string) string {
	const max = 40
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

package reducer

import (
	"unicode"

	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/token"
)

// isIdentLike reports whether s could be a JavaScript identifier: every
// rune is a letter, digit, or underscore. It is deliberately looser
// than a real identifier grammar (it would accept "3d") because its
// only job is to reject obvious non-identifiers like "=" or "+" when
// peeking ahead for a `function name (` shape.
func isIdentLike(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == '_' {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// WalkFunctions performs the Scope Walker's first pass (spec §4.C,
// Walk 1): it scans for `function name (` declarations, at any brace
// depth outside an already-captured function, not
// immediately preceded by `=` (ruling out `const x = function(...)`
// expressions, which this reducer does not touch), captures each one's
// full brace-matched body, declares it in table, and replaces the
// captured slice with the shared function-block reducer's output.
func WalkFunctions(tokens []token.Token, table *symtab.Table) []token.Token {
	out := make([]token.Token, 0, len(tokens))

	insideFunction := false
	bracketOpen := false
	bracketLevel := 0
	funcName := ""
	var block []token.Token

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !insideFunction {
			if tok.Kind == token.Word && tok.Text == "function" {
				prev, _, hasPrev := token.PrevNonWS(tokens, i)
				next2 := token.NextNNonWS(tokens, i, 2)
				if (!hasPrev || prev.Text != "=") && len(next2) == 2 && isIdentLike(next2[0].Text) && next2[1].Text == "(" {
					insideFunction = true
					bracketOpen = false
					bracketLevel = 0
					funcName = next2[0].Text
					block = []token.Token{tok}
					continue
				}
			}
			out = append(out, tok)
			continue
		}

		if !bracketOpen && tok.Kind == token.Delimiter && tok.Text == "{" {
			bracketOpen = true
		}
		if tok.Kind == token.Delimiter {
			switch tok.Text {
			case "{":
				bracketLevel++
			case "}":
				bracketLevel--
			}
		}
		block = append(block, tok)

		if bracketOpen && bracketLevel <= 0 {
			private := len(funcName) >= len(privatePrefix) && funcName[:len(privatePrefix)] == privatePrefix
			fn, err := table.DeclareFunction(funcName, private)
			if err != nil {
				fn, _ = table.Function(funcName)
			}
			out = append(out, reduceFunctionBody(block, fn, table)...)

			insideFunction = false
			bracketOpen = false
			bracketLevel = 0
			block = nil
		}
	}

	// An unterminated function (malformed input) still has its
	// partially captured block flushed verbatim rather than dropped.
	if insideFunction {
		out = append(out, block...)
	}

	return out
}

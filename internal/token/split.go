package token

import "strings"

// delimiters is the fixed single-character split class from spec §3:
// ({ [ ] ( ) { } ' * " ? + . - : ; , % / ! & | = < > plus whitespace},
// kept as a string for a cheap IndexByte membership test.
const delimiters = "[](){}'*\"?+.-:;,%/!&|=<>"

func isDelimiterByte(b byte) bool {
	return strings.IndexByte(delimiters, b) >= 0
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// rawSplit performs the first half of component A: splitting on the
// fixed delimiter class while preserving delimiters as their own
// tokens, merging consecutive whitespace bytes into one Whitespace
// token (spec §3's "whitespace run" shape), and dropping no bytes.
//
// The scan is byte-oriented rather than rune-oriented: every character
// in the delimiter class and every ASCII whitespace character is a
// single byte, so multi-byte UTF-8 runs (identifiers, string contents)
// are safely carried inside Word/Literal tokens without ever being
// split mid-rune.
func rawSplit(text string) []Token {
	var out []Token
	line := 1
	i := 0
	n := len(text)

	flushLine := func(s string) {
		line += strings.Count(s, "\n")
	}

	for i < n {
		startLine := line
		b := text[i]

		switch {
		case isSpaceByte(b):
			j := i
			for j < n && isSpaceByte(text[j]) {
				j++
			}
			seg := text[i:j]
			out = append(out, Token{Kind: Whitespace, Text: seg, Line: startLine})
			flushLine(seg)
			i = j

		case isDelimiterByte(b):
			out = append(out, Token{Kind: Delimiter, Text: text[i : i+1], Line: startLine})
			i++

		default:
			j := i
			for j < n && !isSpaceByte(text[j]) && !isDelimiterByte(text[j]) {
				j++
			}
			out = append(out, Token{Kind: Word, Text: text[i:j], Line: startLine})
			i = j
		}
	}

	return out
}

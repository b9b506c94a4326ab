package token

// Tokenize implements component A end to end: it splits text on the
// fixed delimiter class, glues the two regex-literal artifacts back
// together, and joins quoted string literals into opaque tokens.
//
// Tokenize does not understand comments. Per spec §4.A and §9, the
// input contract requires comment-free JavaScript; callers that accept
// unminified source first run a comment-stripping pass (see package
// template) unconditionally before calling Tokenize.
//
// The returned warnings are diagnostic strings for the
// JoinedStringContainsNewline condition; they are informational only
// and never affect the reducer's exit status.
func Tokenize(text string) (tokens []Token, warnings []string) {
	tokens = rawSplit(text)
	tokens = glueRegexArtifacts(tokens)
	tokens, warnings = joinStringLiterals(tokens)
	return tokens, warnings
}

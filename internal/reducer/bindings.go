package reducer

import (
	"strings"

	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/token"
)

// extractArgs pulls the argument names out of a function/method token
// slice that starts at (or before) the opening `(` of its parameter
// list. It mirrors the original reducer's naive approach: join the raw
// text between the first `(` and its depth-matched `)`, split on every
// comma (default-value expressions are not parenthesis-aware, so a
// default object argument with a comma inside it would mis-split here
// exactly as it would have in the original), then drop each piece's
// `= default` suffix, trim it, and discard "" and "self".
func extractArgs(tokens []token.Token) []string {
	start := -1
	for i, t := range tokens {
		if t.Kind == token.Delimiter && t.Text == "(" {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	depth := 1
	end := -1
	for i := start + 1; i < len(tokens); i++ {
		if tokens[i].Kind != token.Delimiter {
			continue
		}
		switch tokens[i].Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return nil
	}

	var sb strings.Builder
	for i := start + 1; i < end; i++ {
		sb.WriteString(tokens[i].Text)
	}

	var names []string
	for _, part := range strings.Split(sb.String(), ",") {
		if idx := strings.Index(part, "="); idx >= 0 {
			part = part[:idx]
		}
		part = strings.TrimSpace(part)
		if part == "" || part == "self" {
			continue
		}
		names = append(names, part)
	}
	return names
}

// reduceFunctionBody runs the shared function-block reducer (spec
// §4.C) over one free function or method's full token slice (header
// through closing brace). It registers the function's arguments and
// var/let/const bindings against fn, logging any conflict as a
// DuplicateDeclaration error, then rewrites every occurrence of a
// registered name - except where it's a property-access target
// (immediately preceded by `.`) - to its encoded alias.
func reduceFunctionBody(tokens []token.Token, fn *symtab.Function, table *symtab.Table) []token.Token {
	scope := "function " + fn.Name
	if fn.Class != "" {
		scope = "method " + fn.Class + "." + fn.Name
	}

	for _, name := range extractArgs(tokens) {
		if res, _ := fn.AddArg(name); res == symtab.Conflict {
			table.AddError("DuplicateDeclaration: %q already declared in %s", name, scope)
		}
	}

	for i, tok := range tokens {
		if tok.Kind != token.Word || len(tok.Text) < minVarReplacementLen {
			continue
		}
		prev, _, ok := token.PrevNonWS(tokens, i)
		if !ok {
			continue
		}

		var res symtab.AddResult
		switch prev.Text {
		case "var":
			res, _ = fn.AddVar(tok.Text)
		case "let":
			res, _ = fn.AddLet(tok.Text)
		case "const":
			res, _ = fn.AddConst(tok.Text)
		default:
			continue
		}
		if res == symtab.Conflict {
			table.AddError("DuplicateDeclaration: %q already declared in %s", tok.Text, scope)
		}
	}

	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	for i, tok := range out {
		if tok.Kind != token.Word {
			continue
		}
		enc, ok := fn.EncodingOf(tok.Text)
		if !ok {
			continue
		}
		if prev, _, hasPrev := token.PrevNonWS(out, i); hasPrev && prev.Text == "." {
			continue
		}
		out[i].Text = enc
	}
	return out
}

package reducer

import (
	"sort"
	"strings"

	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/token"
)

// Reduce runs the full pipeline over one tokenized JavaScript artifact
// (spec §4.C-§4.D): the two scope-walker passes, which populate table
// and reduce every function/method body in place, followed by the
// rewriter's five ordered global passes. table accumulates counters
// and diagnostics across every call made against it in one pipeline
// run (spec §9's single shared context per invocation).
func Reduce(tokens []token.Token, table *symtab.Table, opts Options) []token.Token {
	tokens = WalkFunctions(tokens, table)
	tokens = walkClasses(tokens, table, false)
	tokens = walkClasses(tokens, table, true)

	tokens = rewriteTopLevelConstants(tokens, table, opts)
	tokens = rewriteConstantUsages(tokens, table)
	tokens = rewriteFunctionNames(tokens, table, opts)
	tokens = rewritePublicMethodNames(tokens, table, opts)
	tokens = rewriteClassNames(tokens, table, opts)

	return tokens
}

// rewriteTopLevelConstants is rewriter pass 1 (spec §4.D.1).
func rewriteTopLevelConstants(tokens []token.Token, table *symtab.Table, opts Options) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	depth := 0
	var openConst *symtab.Constant
	dictDepth := 0

	for i := 0; i < len(out); i++ {
		tok := out[i]

		if tok.Kind == token.Delimiter {
			switch tok.Text {
			case "{":
				depth++
			case "}":
				depth--
				if openConst != nil && depth < dictDepth {
					openConst = nil
				}
			}
		}

		if openConst != nil && depth >= dictDepth {
			if depth == dictDepth && tok.Kind == token.Word {
				if next, _, ok := token.NextNonWS(out, i); ok && next.Text == ":" {
					_, enc := openConst.AddParameter(tok.Text)
					out[i].Text = enc
				}
			}
			continue
		}

		if depth != 0 || tok.Kind != token.Word {
			continue
		}

		prev, _, hasPrev := token.PrevNonWS(out, i)
		if !hasPrev || prev.Text != "const" {
			continue
		}

		private := strings.HasPrefix(tok.Text, privatePrefix)
		eligiblePublic := opts.Public && isIdentLike(tok.Text) && !opts.excluded(tok.Text)
		if !private && !eligiblePublic {
			continue
		}

		c, err := table.DeclareConstant(tok.Text)
		if err != nil {
			c, _ = table.Constant(tok.Text)
		}
		out[i].Text = c.Encoding

		next2 := token.NextNNonWS(out, i, 2)
		if len(next2) == 2 && next2[0].Text == "=" && next2[1].Text == "{" {
			openConst = c
			dictDepth = depth + 1
		}
	}

	return out
}

// rewriteConstantUsages is rewriter pass 2 (spec §4.D.2).
func rewriteConstantUsages(tokens []token.Token, table *symtab.Table) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	for _, name := range table.ConstantNames() {
		c, _ := table.Constant(name)
		for i := 0; i < len(out); i++ {
			if out[i].Kind != token.Word || out[i].Text != name {
				continue
			}

			if c.HasParameters() {
				if dot, dotIdx, ok := token.NextNonWS(out, i); ok && dot.Text == "." {
					if key, keyIdx, ok := token.NextNonWS(out, dotIdx); ok {
						if enc, ok := c.ParameterEncoding(key.Text); ok {
							out[i].Text = c.Encoding
							out[keyIdx].Text = enc
							continue
						}
						// ConstantParameterMiss (spec §7): the key isn't a
						// registered parameter of this constant. The key
						// token is left untouched; the constant name itself
						// is still replaced below, matching the original's
						// two-pass parameter/name replacement.
						table.AddError("ConstantParameterMiss: %q is not a registered key of %q", key.Text, name)
					}
				}
			}

			out[i].Text = c.Encoding
		}
	}

	return out
}

// rewriteFunctionNames is rewriter pass 3 (spec §4.D.3).
func rewriteFunctionNames(tokens []token.Token, table *symtab.Table, opts Options) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	for _, name := range table.FunctionNames() {
		fn, _ := table.Function(name)

		if !strings.HasPrefix(name, privatePrefix) {
			if !opts.Public || opts.excluded(name) {
				continue
			}
			if fn.Encoding == "" {
				table.EncodeFunctionPublic(name)
			}
		}
		if fn.Encoding == "" {
			continue
		}

		for i := range out {
			if out[i].Kind == token.Word && out[i].Text == name {
				out[i].Text = fn.Encoding
			}
		}
	}

	return out
}

// rewritePublicMethodNames is rewriter pass 4 (spec §4.D.4), a no-op
// outside public mode.
func rewritePublicMethodNames(tokens []token.Token, table *symtab.Table, opts Options) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	if !opts.Public {
		return out
	}

	publicFunctionNames := make(map[string]bool)
	for _, name := range table.FunctionNames() {
		if !strings.HasPrefix(name, privatePrefix) {
			publicFunctionNames[name] = true
		}
	}

	for _, className := range table.ClassNames() {
		cl, _ := table.Class(className)
		methods := cl.Methods()
		sort.Slice(methods, func(a, b int) bool { return methods[a].Name < methods[b].Name })

		for _, m := range methods {
			if strings.HasPrefix(m.Name, privatePrefix) || opts.excluded(m.Name) {
				continue
			}
			m.Encoding = table.EncodePublicMethod(m.Name)
		}
	}

	for i := 0; i < len(out); i++ {
		if out[i].Kind != token.Word {
			continue
		}
		enc, ok := table.PublicMethodEncoding(out[i].Text)
		if !ok {
			continue
		}

		if next, _, ok := token.NextNonWS(out, i); ok && next.Text == "(" {
			// PublicNameShadow (spec §7): a public method name that
			// collides with an existing public function name is left
			// unreplaced at its definition site.
			if publicFunctionNames[out[i].Text] {
				table.AddWarning("PublicNameShadow: public method name %q collides with a public function of the same name", out[i].Text)
				continue
			}
			out[i].Text = enc
			continue
		}
		if prev, _, ok := token.PrevNonWS(out, i); ok && prev.Text == "." {
			// Same shadow guard at the member-access site.
			if publicFunctionNames[out[i].Text] {
				table.AddWarning("PublicNameShadow: public method name %q collides with a public function of the same name", out[i].Text)
				continue
			}
			out[i].Text = enc
		}
	}

	return out
}

// rewriteClassNames is rewriter pass 5 (spec §4.D.5), a no-op outside
// public mode.
func rewriteClassNames(tokens []token.Token, table *symtab.Table, opts Options) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	if !opts.Public {
		return out
	}

	for _, name := range table.ClassNames() {
		if opts.excluded(name) {
			continue
		}
		enc, ok := table.EncodeClassPublic(name)
		if !ok {
			continue
		}
		for i := range out {
			if out[i].Kind == token.Word && out[i].Text == name {
				out[i].Text = enc
			}
		}
	}

	return out
}

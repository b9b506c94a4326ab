package reducer

import (
	"strings"

	"github.com/brinegen/staticgen/internal/symtab"
	"github.com/brinegen/staticgen/internal/token"
)

// walkClasses performs one traversal of the Scope Walker's second pass
// (spec §4.C, Walk 2). The pass runs twice over identical token input:
//
//   - populate (rewriteNames=false): discovers each class, its `__`
//     properties (assigned via `this.__x =` / `self.__x =`, found even
//     outside a method body), and its methods; each method body is
//     reduced in place by the shared function-block reducer as soon as
//     its closing brace is seen.
//   - rewrite (rewriteNames=true): a second identical traversal over
//     every token of each class body, method bodies included, that
//     rewrites private method names (declarations and uses) and
//     `this.__x`/`self.__x` property accesses to their already-assigned
//     encodings; it registers nothing and does not re-run the
//     function-block reducer.
//
// Both traversals share one state machine because method/property
// detection depends on the same brace-tracking positions either way.
func walkClasses(tokens []token.Token, table *symtab.Table, rewriteNames bool) []token.Token {
	out := make([]token.Token, 0, len(tokens))

	classTag := false
	classAccoladeLevel := -1
	possibleClassName := ""
	var currentClass *symtab.Class

	insideMethod := false
	methodAccoladeLevel := 0
	possibleMethodName := ""
	currentSequence := ""
	var methodBlock []token.Token

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Kind == token.Word && tok.Text == "class" && !classTag {
			classTag = true
			classAccoladeLevel = -1
			possibleClassName = ""
			insideMethod = false
			methodAccoladeLevel = 0
			currentSequence = ""
			possibleMethodName = ""
			out = append(out, tok)
			continue
		}

		if !classTag {
			out = append(out, tok)
			continue
		}

		if possibleClassName == "" {
			switch {
			case tok.IsWhitespace():
			case !isIdentLike(tok.Text):
				classTag = false
			default:
				possibleClassName = tok.Text
			}
			out = append(out, tok)
			continue
		}

		if classAccoladeLevel == -1 && tok.Kind == token.Delimiter && tok.Text == "{" {
			if !rewriteNames {
				cl, err := table.DeclareClass(possibleClassName)
				if err != nil {
					cl, _ = table.Class(possibleClassName)
				}
				currentClass = cl
			} else {
				currentClass, _ = table.Class(possibleClassName)
			}
			classAccoladeLevel = 1
			out = append(out, tok)
			continue
		}

		if classAccoladeLevel == -1 {
			// Still scanning past an `extends Base` clause or
			// whitespace before the opening brace.
			out = append(out, tok)
			continue
		}

		if tok.Kind == token.Delimiter && tok.Text == "{" {
			classAccoladeLevel++
		} else if tok.Kind == token.Delimiter && tok.Text == "}" {
			classAccoladeLevel--
			if classAccoladeLevel <= 0 {
				classTag = false
				classAccoladeLevel = -1
				possibleClassName = ""
				currentClass = nil
				out = append(out, tok)
				continue
			}
		}

		if rewriteNames {
			if tok.Kind == token.Word && strings.HasPrefix(tok.Text, privatePrefix) && currentClass != nil {
				prev2 := token.PrevNNonWS(tokens, i, 2)
				accessedViaThis := len(prev2) == 2 && prev2[0].Text == "." && (prev2[1].Text == "this" || prev2[1].Text == "self")

				if fn, ok := currentClass.Method(tok.Text); ok && fn.Encoding != "" {
					tok.Text = fn.Encoding
				} else if enc, ok := currentClass.PropertyEncoding(tok.Text); ok {
					if accessedViaThis {
						tok.Text = enc
					}
				} else if accessedViaThis {
					// LookupMiss (spec §7): this.__x/self.__x refers to a
					// private name that was never registered as a method
					// or a property of currentClass. Logged and left
					// unchanged.
					table.AddError("LookupMiss: %q is not a declared method or property of class %q", tok.Text, currentClass.Name)
				}
			}
			out = append(out, tok)
			continue
		}

		// Populate pass only from here on.

		if tok.Kind == token.Word && (tok.Text == "self" || tok.Text == "this") && currentClass != nil {
			next3 := token.NextNNonWS(tokens, i, 3)
			if len(next3) == 3 && next3[0].Text == "." && next3[2].Text == "=" && strings.HasPrefix(next3[1].Text, privatePrefix) {
				currentClass.AddProperty(next3[1].Text)
			}
		}

		if !insideMethod && strings.TrimSpace(tok.Text) != "" && tok.Text != "(" && currentSequence == "" {
			possibleMethodName = tok.Text
		}

		if !insideMethod && tok.Kind == token.Delimiter && (tok.Text == "(" || tok.Text == ")" || tok.Text == "{") {
			if !(tok.Text == "{" && !strings.Contains(currentSequence, ")")) {
				currentSequence += tok.Text
			}

			switch currentSequence {
			case "(", "()":
				out = append(out, tok)
				continue
			case "(){":
				insideMethod = true
				methodAccoladeLevel = 0
				methodBlock = nil

				headerStart := -1
				for j := len(out) - 1; j >= 0; j-- {
					if out[j].Text == possibleMethodName {
						headerStart = j
						break
					}
				}
				if headerStart >= 0 {
					methodBlock = append(methodBlock, out[headerStart:]...)
					out = out[:headerStart]
				}

				if currentClass != nil {
					if _, err := currentClass.AddMethod(possibleMethodName); err != nil {
						table.AddError("%s", err.Error())
					}
				}
				// fall through: tok ('{') is appended to methodBlock below.
			default:
				currentSequence = ""
				out = append(out, tok)
				continue
			}
		}

		if !insideMethod {
			out = append(out, tok)
			continue
		}

		methodBlock = append(methodBlock, tok)

		if tok.Kind == token.Delimiter && tok.Text == "{" {
			methodAccoladeLevel++
		} else if tok.Kind == token.Delimiter && tok.Text == "}" {
			methodAccoladeLevel--
			if methodAccoladeLevel <= 0 {
				methodAccoladeLevel = 0
				currentSequence = ""
				insideMethod = false

				if currentClass != nil {
					if fn, ok := currentClass.Method(possibleMethodName); ok {
						out = append(out, reduceFunctionBody(methodBlock, fn, table)...)
					} else {
						out = append(out, methodBlock...)
					}
				} else {
					out = append(out, methodBlock...)
				}
				methodBlock = nil
			}
		}
	}

	if insideMethod {
		out = append(out, methodBlock...)
	}

	return out
}

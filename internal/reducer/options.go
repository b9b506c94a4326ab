// Package reducer implements the reducer's Scope Walker and Rewriter
// (components C and D of spec §4): a single-pass-per-walk scan that
// populates a symtab.Table and emits a token stream with every
// reducible identifier replaced by its encoded alias.
package reducer

// Options configures one Reduce call. Public enables reduction of
// public (non `__`-prefixed) functions, methods, and classes (spec
// §4.D passes 3-5); Skip extends the fixed exclusion set with
// per-manifest names from a `reducePublicJSExcept:` directive.
type Options struct {
	Public bool
	Skip   []string
}

// excludedPublicNames is the fixed exclusion set from spec §4.D: these
// public method/function names are never renamed regardless of mode,
// because they are framework entry points (DOM event handlers,
// constructors) that must keep their conventional names.
var excludedPublicNames = map[string]bool{
	"constructor":           true,
	"addEventListener":      true,
	"display":               true,
	"onclick":               true,
	"onreadystatechange":    true,
}

func (o Options) excluded(name string) bool {
	if excludedPublicNames[name] {
		return true
	}
	for _, s := range o.Skip {
		if s == name {
			return true
		}
	}
	return false
}

// minVarReplacementLen is spec §4.C's threshold: a var/let/const
// binding shorter than this is left untouched (not worth the
// indirection of an encoded alias).
const minVarReplacementLen = 3

// privatePrefix marks a name as private (spec §3): reducible unless
// public mode is enabled.
const privatePrefix = "__"

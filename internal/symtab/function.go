package symtab

import "fmt"

// AddResult is the tri-state outcome of adding an argument/var/let/const
// binding to a Function, per spec §3 invariants 1-2: same-kind
// redeclaration of a var/let/const is silently idempotent (the
// brace-unaware scanner observes both branches of an if/else), while
// redeclaring an argument, or redeclaring any name under a different
// kind than it was first seen, is a hard error.
type AddResult int

const (
	Added AddResult = iota
	DuplicateIdempotent
	Conflict
)

type bindingKind int

const (
	bindingArg bindingKind = iota
	bindingVar
	bindingLet
	bindingConst
)

// Function is a free-function or method record: spec §3's "ordered
// mappings: arguments, vars, lets, consts". Encoding is set only for
// private functions, or — in public mode — for eligible public
// functions; Class is the owning class name for methods, empty for
// free functions.
type Function struct {
	Name     string
	Encoding string
	Class    string

	args   *orderedMap[string, string]
	vars   *orderedMap[string, string]
	lets   *orderedMap[string, string]
	consts *orderedMap[string, string]
	kindOf map[string]bindingKind
}

func newFunction(name string) *Function {
	return &Function{
		Name:   name,
		args:   newOrderedMap[string, string](),
		vars:   newOrderedMap[string, string](),
		lets:   newOrderedMap[string, string](),
		consts: newOrderedMap[string, string](),
		kindOf: make(map[string]bindingKind),
	}
}

// add is the shared implementation behind AddArg/AddVar/AddLet/AddConst.
// encPrefix is the namespace prefix ("a", "v", "l", "c"); idempotentOK
// allows a same-kind redeclaration to return DuplicateIdempotent instead
// of Conflict (false only for arguments, per invariant 2).
func (f *Function) add(kind bindingKind, encPrefix, name string, idempotentOK bool) (AddResult, string) {
	if existingKind, exists := f.kindOf[name]; exists {
		if existingKind != kind {
			return Conflict, ""
		}
		if !idempotentOK {
			return Conflict, ""
		}
		enc, _ := f.collection(kind).get(name)
		return DuplicateIdempotent, enc
	}

	coll := f.collection(kind)
	enc := fmt.Sprintf("%s%d", encPrefix, coll.len()+1)
	coll.set(name, enc)
	f.kindOf[name] = kind
	return Added, enc
}

func (f *Function) collection(kind bindingKind) *orderedMap[string, string] {
	switch kind {
	case bindingArg:
		return f.args
	case bindingVar:
		return f.vars
	case bindingLet:
		return f.lets
	default:
		return f.consts
	}
}

// AddArg registers a function/method argument. Per spec §4.B,
// redeclaration as an argument is always a Conflict.
func (f *Function) AddArg(name string) (AddResult, string) {
	return f.add(bindingArg, "a", name, false)
}

// AddVar registers a `var` binding. Same-kind redeclaration is
// DuplicateIdempotent.
func (f *Function) AddVar(name string) (AddResult, string) {
	return f.add(bindingVar, "v", name, true)
}

// AddLet registers a `let` binding.
func (f *Function) AddLet(name string) (AddResult, string) {
	return f.add(bindingLet, "l", name, true)
}

// AddConst registers a function-scope `const` binding (distinct from a
// top-level constant, which the Table handles separately).
func (f *Function) AddConst(name string) (AddResult, string) {
	return f.add(bindingConst, "c", name, true)
}

// EncodingOf looks up the encoded alias for any argument/var/let/const
// name declared in this function, regardless of kind.
func (f *Function) EncodingOf(name string) (string, bool) {
	kind, ok := f.kindOf[name]
	if !ok {
		return "", false
	}
	return f.collection(kind).get(name)
}

// Args, Vars, Lets, Consts return the (name, encoding) pairs in
// insertion order, for the dictionary dump.
func (f *Function) Args() []Binding   { return bindingsOf(f.args) }
func (f *Function) Vars() []Binding   { return bindingsOf(f.vars) }
func (f *Function) Lets() []Binding   { return bindingsOf(f.lets) }
func (f *Function) Consts() []Binding { return bindingsOf(f.consts) }

// Binding is a name/encoding pair within a function scope.
type Binding struct {
	Name     string
	Encoding string
}

func bindingsOf(m *orderedMap[string, string]) []Binding {
	out := make([]Binding, 0, m.len())
	for _, name := range m.keys() {
		enc, _ := m.get(name)
		out = append(out, Binding{Name: name, Encoding: enc})
	}
	return out
}

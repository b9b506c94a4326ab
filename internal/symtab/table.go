// Package symtab implements the reducer's symbol table (component B):
// the passive per-scope collections of constants, functions, classes,
// and the bindings within them, plus the append-only diagnostic log.
// All mutation goes through the narrow declare/add operations described
// in spec §4.B; counters are taken from a collection's size at
// insertion time so encodings are deterministic for a given insertion
// order (spec §4.D: "iteration over symbol records is by sorted name",
// not by encoding order).
package symtab

import (
	"fmt"
	"sort"
	"strconv"
)

// Table is one run's symbol table. Per spec §3 invariant 4, the
// C/f/CL counters are process-wide and monotone across every file
// processed in a single run: a Table is constructed once per pipeline
// invocation (spec §9's "one context per invocation") and threaded
// through every file the run processes.
type Table struct {
	constants *orderedMap[string, *Constant]
	functions *orderedMap[string, *Function]
	classes   *orderedMap[string, *Class]

	constantCounter int
	functionCounter int
	classCounter    int

	publicMethods      *orderedMap[string, string]
	publicMethodCounter int

	Errors   []string
	Warnings []string
}

// New constructs an empty Table with fresh global counters.
func New() *Table {
	return &Table{
		constants:     newOrderedMap[string, *Constant](),
		functions:     newOrderedMap[string, *Function](),
		classes:       newOrderedMap[string, *Class](),
		publicMethods: newOrderedMap[string, string](),
	}
}

// EncodePublicMethod assigns a public method name its global `mp<k>`
// encoding (spec §4.D pass 4): the first class to declare a public
// method of this name wins the assignment; every other class reusing
// the name gets the same encoding back.
func (t *Table) EncodePublicMethod(name string) string {
	if enc, ok := t.publicMethods.get(name); ok {
		return enc
	}
	enc := "mp" + strconv.Itoa(t.publicMethodCounter)
	t.publicMethodCounter++
	t.publicMethods.set(name, enc)
	return enc
}

// PublicMethodEncoding looks up a previously assigned `mp<k>` encoding.
func (t *Table) PublicMethodEncoding(name string) (string, bool) {
	return t.publicMethods.get(name)
}

// AddError appends a diagnostic to the sticky error log. Per spec §7,
// later passes keep running after an error is logged; the process only
// exits non-zero once every pass has had a chance to run.
func (t *Table) AddError(format string, args ...any) {
	t.Errors = append(t.Errors, fmt.Sprintf(format, args...))
}

// AddWarning appends an informational diagnostic that never affects
// exit status (e.g. JoinedStringContainsNewline).
func (t *Table) AddWarning(format string, args ...any) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}

// DeclareConstant registers a top-level constant and assigns it the
// next global `C<k>` encoding. Fails if name is already declared.
func (t *Table) DeclareConstant(name string) (*Constant, error) {
	if t.constants.has(name) {
		err := &DuplicateDeclarationError{Scope: "top level constants", Name: name}
		t.AddError("%s", err.Error())
		return nil, err
	}
	t.constantCounter++
	c := newConstant(name, "C"+strconv.Itoa(t.constantCounter))
	t.constants.set(name, c)
	return c, nil
}

func (t *Table) Constant(name string) (*Constant, bool) { return t.constants.get(name) }

// ConstantNames returns declared constant names sorted ascending, for
// the rewriter's deterministic-iteration requirement (spec §4.D).
func (t *Table) ConstantNames() []string { return sortedKeys(t.constants) }

// DeclareFunction registers a free function. private selects whether
// it receives a global `f<k>` encoding immediately (spec §4.C: the
// index is only consumed for names starting with `__`; public names
// may still gain an encoding later, in public mode, via
// EncodeFunctionPublic).
func (t *Table) DeclareFunction(name string, private bool) (*Function, error) {
	if t.functions.has(name) {
		err := &DuplicateDeclarationError{Scope: "free functions", Name: name}
		t.AddError("%s", err.Error())
		return nil, err
	}
	fn := newFunction(name)
	if private {
		t.functionCounter++
		fn.Encoding = "f" + strconv.Itoa(t.functionCounter)
	}
	t.functions.set(name, fn)
	return fn, nil
}

func (t *Table) Function(name string) (*Function, bool) { return t.functions.get(name) }

// FunctionNames returns declared free-function names sorted ascending.
func (t *Table) FunctionNames() []string { return sortedKeys(t.functions) }

// EncodeFunctionPublic assigns a global `f<k>` encoding to an
// already-declared public function, for public-mode reduction (spec
// §4.D pass 3).
func (t *Table) EncodeFunctionPublic(name string) (string, bool) {
	fn, ok := t.functions.get(name)
	if !ok || fn.Encoding != "" {
		return "", false
	}
	t.functionCounter++
	fn.Encoding = "f" + strconv.Itoa(t.functionCounter)
	return fn.Encoding, true
}

// DeclareClass registers a class. Classes receive no encoding until
// public-mode's class-name pass (spec §4.D pass 5).
func (t *Table) DeclareClass(name string) (*Class, error) {
	if t.classes.has(name) {
		err := &DuplicateDeclarationError{Scope: "classes", Name: name}
		t.AddError("%s", err.Error())
		return nil, err
	}
	cl := newClass(name)
	t.classes.set(name, cl)
	return cl, nil
}

func (t *Table) Class(name string) (*Class, bool) { return t.classes.get(name) }

// ClassNames returns declared class names sorted ascending.
func (t *Table) ClassNames() []string { return sortedKeys(t.classes) }

// EncodeClassPublic assigns the next global `CL<k>` encoding.
func (t *Table) EncodeClassPublic(name string) (string, bool) {
	cl, ok := t.classes.get(name)
	if !ok {
		return "", false
	}
	t.classCounter++
	cl.Encoding = "CL" + strconv.Itoa(t.classCounter)
	return cl.Encoding, true
}

// Classes returns every declared class, in declaration (insertion)
// order; used by passes that must visit every class regardless of name
// (e.g. collecting public method names across classes).
func (t *Table) Classes() []*Class {
	out := make([]*Class, 0, t.classes.len())
	for _, name := range t.classes.keys() {
		cl, _ := t.classes.get(name)
		out = append(out, cl)
	}
	return out
}

func sortedKeys[V any](m *orderedMap[string, V]) []string {
	keys := m.keys()
	sort.Strings(keys)
	return keys
}

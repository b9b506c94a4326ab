package symtab

import (
	"strconv"
	"strings"
)

// privateMethodPrefix is the marker (spec §3) distinguishing private
// names, eligible for reduction, from public ones.
const privateMethodPrefix = "__"

// Class is a class record: spec §3's "ordered mapping of
// property-name -> property-encoding, ordered mapping of
// method-name -> function-record". Encoding is only set in public mode.
type Class struct {
	Name     string
	Encoding string

	properties *orderedMap[string, string]
	methods    *orderedMap[string, *Function]
	privateCnt int
}

func newClass(name string) *Class {
	return &Class{
		Name:       name,
		properties: newOrderedMap[string, string](),
		methods:    newOrderedMap[string, *Function](),
	}
}

// AddProperty assigns a class property its `p<k>` encoding (0-based,
// per-class). It is a no-op returning the existing encoding if the
// property is already registered.
func (c *Class) AddProperty(name string) string {
	if enc, ok := c.properties.get(name); ok {
		return enc
	}
	enc := "p" + strconv.Itoa(c.properties.len())
	c.properties.set(name, enc)
	return enc
}

func (c *Class) PropertyEncoding(name string) (string, bool) {
	return c.properties.get(name)
}

// Properties returns (name, encoding) pairs in insertion order.
func (c *Class) Properties() []Binding {
	out := make([]Binding, 0, c.properties.len())
	for _, name := range c.properties.keys() {
		enc, _ := c.properties.get(name)
		out = append(out, Binding{Name: name, Encoding: enc})
	}
	return out
}

// AddMethod registers a method. Private methods (`__name`) are
// assigned `m<k>`, k being the 1-based count of private methods
// already in this class; public methods get no encoding here (public
// mode assigns `mp<k>` globally in a later rewriter pass). Returns a
// DuplicateDeclaration error if the method name is already registered.
func (c *Class) AddMethod(name string) (*Function, error) {
	if c.methods.has(name) {
		return nil, &DuplicateDeclarationError{Scope: "class " + c.Name, Name: name}
	}

	fn := newFunction(name)
	fn.Class = c.Name
	if strings.HasPrefix(name, privateMethodPrefix) {
		c.privateCnt++
		fn.Encoding = "m" + strconv.Itoa(c.privateCnt)
	}
	c.methods.set(name, fn)
	return fn, nil
}

func (c *Class) Method(name string) (*Function, bool) {
	return c.methods.get(name)
}

// Methods returns the method records in insertion order.
func (c *Class) Methods() []*Function {
	out := make([]*Function, 0, c.methods.len())
	for _, name := range c.methods.keys() {
		fn, _ := c.methods.get(name)
		out = append(out, fn)
	}
	return out
}


package symtab

import "strconv"

// Constant is a top-level constant record: spec §3's "{name, encoding,
// ordered-mapping of parameter-name -> parameter-encoding}". Parameters
// are only populated for constants initialized to an object literal
// (`const __S = { a: 1, b: 2 }`).
type Constant struct {
	Name     string
	Encoding string

	params *orderedMap[string, string]
}

func newConstant(name, encoding string) *Constant {
	return &Constant{Name: name, Encoding: encoding, params: newOrderedMap[string, string]()}
}

// AddParameter registers a dictionary key of this constant's
// initializer, assigning it `p<i>` (0-based, per-constant). Returns
// added=false and the existing encoding if the key was already seen.
func (c *Constant) AddParameter(key string) (added bool, encoding string) {
	if enc, ok := c.params.get(key); ok {
		return false, enc
	}
	enc := "p" + strconv.Itoa(c.params.len())
	c.params.set(key, enc)
	return true, enc
}

func (c *Constant) ParameterEncoding(key string) (string, bool) {
	return c.params.get(key)
}

func (c *Constant) HasParameters() bool { return c.params.len() > 0 }

// Parameters returns (key, encoding) pairs in insertion order.
func (c *Constant) Parameters() []Binding {
	out := make([]Binding, 0, c.params.len())
	for _, name := range c.params.keys() {
		enc, _ := c.params.get(name)
		out = append(out, Binding{Name: name, Encoding: enc})
	}
	return out
}

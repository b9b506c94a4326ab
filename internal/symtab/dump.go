package symtab

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Dump renders the table's full contents as the human-auditable
// dictionary text described in spec §4.D: top-level errors first, then
// every constant (with its parameters), every free function (with its
// arguments/vars/lets/consts), then every class (with its properties
// and methods), each group in insertion order. No third-party
// column-alignment library appears anywhere in the example pack, so
// this uses the standard library's text/tabwriter, which is the
// idiomatic stdlib tool for exactly this job.
func (t *Table) Dump() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	if len(t.Errors) > 0 {
		fmt.Fprintln(w, "errors:")
		for _, e := range t.Errors {
			fmt.Fprintf(w, "\t%s\n", e)
		}
	}
	if len(t.Warnings) > 0 {
		fmt.Fprintln(w, "warnings:")
		for _, wn := range t.Warnings {
			fmt.Fprintf(w, "\t%s\n", wn)
		}
	}

	for _, name := range t.constants.keys() {
		c, _ := t.constants.get(name)
		fmt.Fprintf(w, "const\t%s\t%s\n", c.Name, c.Encoding)
		for _, p := range c.Parameters() {
			fmt.Fprintf(w, "\tparam\t%s\t%s\n", p.Name, p.Encoding)
		}
	}

	for _, name := range t.functions.keys() {
		fn, _ := t.functions.get(name)
		fmt.Fprintf(w, "function\t%s\t%s\n", fn.Name, fn.Encoding)
		dumpFunctionBody(w, fn)
	}

	for _, name := range t.classes.keys() {
		cl, _ := t.classes.get(name)
		fmt.Fprintf(w, "class\t%s\t%s\n", cl.Name, cl.Encoding)
		for _, p := range cl.Properties() {
			fmt.Fprintf(w, "\tproperty\t%s\t%s\n", p.Name, p.Encoding)
		}
		for _, m := range cl.Methods() {
			fmt.Fprintf(w, "\tmethod\t%s\t%s\n", m.Name, m.Encoding)
			dumpFunctionBody(w, m)
		}
	}

	w.Flush()
	return sb.String()
}

func dumpFunctionBody(w *tabwriter.Writer, fn *Function) {
	for _, a := range fn.Args() {
		fmt.Fprintf(w, "\t\targ\t%s\t%s\n", a.Name, a.Encoding)
	}
	for _, v := range fn.Vars() {
		fmt.Fprintf(w, "\t\tvar\t%s\t%s\n", v.Name, v.Encoding)
	}
	for _, l := range fn.Lets() {
		fmt.Fprintf(w, "\t\tlet\t%s\t%s\n", l.Name, l.Encoding)
	}
	for _, c := range fn.Consts() {
		fmt.Fprintf(w, "\t\tconst\t%s\t%s\n", c.Name, c.Encoding)
	}
}

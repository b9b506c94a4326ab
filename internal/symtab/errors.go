package symtab

import "fmt"

// DuplicateDeclarationError is the structured form of spec §7's
// DuplicateDeclaration error kind. The table still appends a plain
// string to its sticky error log (errors are diagnostic text, per
// spec §3's "append-only ordered sequence of diagnostic strings"); this
// type exists so callers that want to branch on the kind instead of
// matching strings can do so with errors.As.
type DuplicateDeclarationError struct {
	Scope string
	Name  string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("DuplicateDeclaration: %q already declared in %s", e.Name, e.Scope)
}

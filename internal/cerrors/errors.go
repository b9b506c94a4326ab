// Package cerrors formats the pipeline's fatal build errors (spec §7:
// MissingIncludePath, InvalidFilename, OutputCollision), in the same
// file/line-header-plus-message shape the teacher's compiler
// diagnostics use, adapted for a build pipeline that reports file
// paths rather than source positions.
package cerrors

import (
	"fmt"
	"strings"
)

// Kind identifies one of the pipeline's fatal error conditions. Unlike
// the symtab's sticky, non-fatal diagnostic log, any BuildError aborts
// the run as soon as it is returned; the rest of the current stage does
// not run.
type Kind int

const (
	// MissingIncludePath: a manifest directive references a file that
	// does not exist under the configured source root.
	MissingIncludePath Kind = iota
	// InvalidFilename: an asset being versioned has no ".min." marker
	// in its file name.
	InvalidFilename
	// OutputCollision: an expanded template's output path already
	// exists.
	OutputCollision
)

func (k Kind) String() string {
	switch k {
	case MissingIncludePath:
		return "MissingIncludePath"
	case InvalidFilename:
		return "InvalidFilename"
	case OutputCollision:
		return "OutputCollision"
	default:
		return "UnknownError"
	}
}

// BuildError is one fatal pipeline diagnostic: a kind, the manifest or
// source file it was raised against, and a human-readable message.
type BuildError struct {
	Kind    Kind
	File    string
	Message string
}

func New(kind Kind, file, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, File: file, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return e.Format()
}

// Format renders the error with a file header, mirroring the
// teacher's "Error in FILE:LINE:COL" convention minus the
// line/column (these errors are path-level, not token-level).
func (e *BuildError) Format() string {
	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s [%s]\n", e.File, e.Kind)
	} else {
		fmt.Fprintf(&sb, "Error [%s]\n", e.Kind)
	}
	sb.WriteString(e.Message)
	return sb.String()
}

// FormatErrors renders a batch of fatal errors the way the teacher's
// FormatErrors renders multiple CompilerErrors: numbered when there is
// more than one, plain when there's exactly one.
func FormatErrors(errs []*BuildError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Build failed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(e.Format())
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

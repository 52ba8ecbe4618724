package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Kind classifies a diagnostic by the rule that produced it
type Kind int

const (
	UndefinedName Kind = iota
	DuplicateDeclaration
	TypeMismatch
	ArityMismatch
	InvalidControlFlow
	InvalidMemberAccess
	NativeLoadError
	SyntaxError
	StyleIssue
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case UndefinedName:
		return "undefined-name"
	case DuplicateDeclaration:
		return "duplicate-declaration"
	case TypeMismatch:
		return "type-mismatch"
	case ArityMismatch:
		return "arity-mismatch"
	case InvalidControlFlow:
		return "invalid-control-flow"
	case InvalidMemberAccess:
		return "invalid-member-access"
	case NativeLoadError:
		return "native-load-error"
	case SyntaxError:
		return "syntax-error"
	case StyleIssue:
		return "style-issue"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single error, warning, or info message
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Line     int
	Column   int
}

// Diagnostics manages an ordered collection of diagnostic messages.
// Messages come out in the order they went in.
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Errorf adds an error diagnostic with formatted message
func (d *Diagnostics) Errorf(kind Kind, line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// Warningf adds a warning diagnostic with formatted message
func (d *Diagnostics) Warningf(kind Kind, line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// Infof adds an info diagnostic with formatted message
func (d *Diagnostics) Infof(kind Kind, line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Info,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	errors := make([]Diagnostic, 0)
	for _, item := range d.items {
		if item.Severity == Error {
			errors = append(errors, item)
		}
	}
	return errors
}

// All returns all diagnostics in insertion order
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// ErrorCount returns the number of error-level diagnostics
func (d *Diagnostics) ErrorCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Error {
			count++
		}
	}
	return count
}

// Merge appends all diagnostics from other, preserving their order
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.items = append(d.items, other.items...)
}

// Report returns the human-readable report, one line per diagnostic:
//
//	error: undeclared variable 'x' (3:10)
//	warning: unused variable 'z' (5:1)
func (d *Diagnostics) Report() string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		builder.WriteString(fmt.Sprintf("%s: %s (%d:%d)",
			item.Severity.String(),
			item.Message,
			item.Line,
			item.Column,
		))
		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// Clear removes all diagnostics from the collection
func (d *Diagnostics) Clear() {
	d.items = make([]Diagnostic, 0)
}

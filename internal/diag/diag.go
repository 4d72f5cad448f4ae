// Package diag provides diagnostic (error) types shared by the lexer
// and parser.
package diag

import (
	"fmt"

	"kismet/internal/span"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error   Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Kind classifies why a diagnostic was raised, per spec.md §7: Grammar
// means the input does not match the grammar; Runtime means an
// internal invariant was violated (e.g. reducing an empty span where a
// non-empty one was required) and should never be user-triggerable.
type Kind int

const (
	Grammar Kind = iota
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Grammar:
		return "grammar"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single error/warning message.
type Diagnostic struct {
	Code     string    `json:"code"`           // stable error code, e.g. "E0001"
	Severity Severity  `json:"severity"`       // error or warning
	Kind     Kind      `json:"kind"`           // grammar or runtime
	Message  string    `json:"message"`        // human-readable description
	Span     span.Span `json:"span"`           // source location
	Hint     string    `json:"hint,omitempty"` // optional hint
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	prefix := d.Severity.String()
	loc := fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
	msg := fmt.Sprintf("[%s] %s at %s: %s", d.Code, prefix, loc, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// Errorf creates a Grammar-kind error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Kind:     Grammar,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// RuntimeErrorf creates a Runtime-kind error diagnostic, used only for
// internal invariant violations (spec.md §7).
func RuntimeErrorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Kind:     Runtime,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// Warningf creates a warning diagnostic at the given span.
func Warningf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Warning,
		Kind:     Grammar,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

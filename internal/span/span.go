// Package span provides source position and span types used across the
// parser, plus the generic Node wrapper every AST value is carried in.
package span

import "fmt"

// Position represents a position in source code.
type Position struct {
	Offset int `json:"offset"` // byte offset from beginning of source
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in source code [Start, End).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Add returns the convex hull of two spans: the min of their starts and
// the max of their ends. Adding a span to itself is the identity.
func (s Span) Add(other Span) Span {
	start := s.Start
	if other.Start.Offset < start.Offset {
		start = other.Start
	}
	end := s.End
	if other.End.Offset > end.Offset {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// AddOption lifts Add to optional spans: nil is the identity element.
func AddOption(lhs, rhs *Span) *Span {
	switch {
	case lhs == nil && rhs == nil:
		return nil
	case lhs == nil:
		r := *rhs
		return &r
	case rhs == nil:
		l := *lhs
		return &l
	default:
		hull := lhs.Add(*rhs)
		return &hull
	}
}

// Node pairs a value of type T with the Span it was parsed from.
// Span is authoritative for diagnostics; AST equality in tests should
// compare Data, not Span.
type Node[T any] struct {
	Span Span
	Data T
}

// New constructs a Node.
func New[T any](s Span, data T) Node[T] {
	return Node[T]{Span: s, Data: data}
}

// stringer is implemented by node payloads that know how to render
// themselves in Kismet's canonical display form.
type stringer interface {
	String() string
}

// Join renders a slice of Nodes whose payload implements String(),
// separated by sep. Used only for human-readable forms (canonical
// render, not diagnostics).
func Join[T stringer](nodes []Node[T], sep string) string {
	out := ""
	for i, n := range nodes {
		if i > 0 {
			out += sep
		}
		out += n.Data.String()
	}
	return out
}

// VecToString mirrors the original crate's Node::vec_to_string helper.
func VecToString[T stringer](nodes []Node[T], sep string) string {
	return Join(nodes, sep)
}

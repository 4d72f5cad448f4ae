package parser

import (
	"fmt"

	"kismet/internal/ast"
	"kismet/internal/span"
	"kismet/internal/token"
)

// Parse is the sole public entry point (§6): it consumes an ordered
// token sequence and produces a fully-annotated expression tree, or a
// *Failure pinning the span of whatever broke the parse. No partial
// tree is ever returned alongside an error.
func Parse(tokens []token.Token) (span.Node[ast.Expr], error) {
	p := New(tokens)
	p.skipDelims()

	result, err := p.assignmentExpr()
	if err != nil {
		if err == errNoMatch {
			return span.Node[ast.Expr]{}, &Failure{Span: p.peek().Span, Message: "expected expression"}
		}
		return span.Node[ast.Expr]{}, err
	}

	p.skipDelims()
	if tail := p.peek(); tail.Kind != token.EOF {
		return span.Node[ast.Expr]{}, &Failure{Span: tail.Span, Message: fmt.Sprintf("unexpected trailing token %q", tail.Lexeme)}
	}
	return result, nil
}

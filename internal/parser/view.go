// Package parser implements Kismet's recursive-descent, precedence
// climbing expression grammar: an immutable-in-spirit cursor over a
// pre-lexed token slice, one function per precedence level (§4.3), and
// the fallible Expr→Target rewrite wired into assignment (see
// internal/ast for the rewrite itself).
//
// The grammar is purely functional over its input: a Parser holds only
// a token slice and a read position, never mutates a token, and every
// level either advances past what it consumes or backtracks to where
// it started. Concurrent parses over independent token slices need no
// synchronization (§5).
package parser

import "kismet/internal/token"

// Parser is a cursor over a pre-lexed token sequence. Backtracking is
// done explicitly via mark/reset rather than by threading a persistent
// value through every call, which is the idiomatic Go rendering of the
// source's immutable TokenView.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser positioned at the start of tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// mark and reset implement backtracking for alternatives that turn out
// not to match.
func (p *Parser) mark() int      { return p.pos }
func (p *Parser) reset(m int)    { p.pos = m }

// tokenTag succeeds and advances iff the head token's kind equals kind.
func (p *Parser) tokenTag(kind token.Kind) (token.Token, bool) {
	if p.peek().Kind == kind {
		return p.advance(), true
	}
	return token.Token{}, false
}

// tokenTagAny tries each kind in order and succeeds on the first
// match, advancing past it.
func (p *Parser) tokenTagAny(kinds ...token.Kind) (token.Token, bool) {
	head := p.peek()
	for _, k := range kinds {
		if head.Kind == k {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}

// tokenIf succeeds and advances iff pred holds for the head token.
func (p *Parser) tokenIf(pred func(token.Token) bool) (token.Token, bool) {
	head := p.peek()
	if pred(head) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// tokenAction runs fn on the head token; on a true result it advances
// past the head and yields fn's value, on false it fails without
// advancing. Used where a token's payload must be decoded (e.g. a
// numeric literal) rather than merely matched by kind.
func tokenAction[T any](p *Parser, fn func(token.Token) (T, bool)) (T, bool) {
	var zero T
	v, ok := fn(p.peek())
	if !ok {
		return zero, false
	}
	p.advance()
	return v, true
}

// skipDelims consumes zero or more DELIM tokens, allowing an operator
// or opening bracket to be immediately followed by a line break.
func (p *Parser) skipDelims() {
	for p.peek().Kind == token.DELIM {
		p.advance()
	}
}

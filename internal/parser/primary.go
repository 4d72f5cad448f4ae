package parser

import (
	"kismet/internal/ast"
	"kismet/internal/span"
	"kismet/internal/token"
)

// primary (§4.3 level 14, §4.4) folds postfix ".", "[...]", "(...)"
// left-associatively over an initial atom.
func (p *Parser) primary() (span.Node[ast.Expr], error) {
	atomNode, err := p.atom()
	if err != nil {
		return zeroExpr, err
	}
	primaryNode := span.New[ast.Primary](atomNode.Span, ast.AtomPrimary{Atom: atomNode})

	for {
		if dotTok, ok := p.tokenTag(token.DOT); ok {
			nameTok, ok2 := p.tokenTag(token.IDENT)
			if !ok2 {
				return zeroExpr, p.fail(dotTok.Span, "expected identifier after '.'")
			}
			hull := primaryNode.Span.Add(nameTok.Span)
			primaryNode = span.New[ast.Primary](hull, ast.Attribute{Receiver: primaryNode, Name: nameTok.Lexeme})
			continue
		}
		if openTok, ok := p.tokenTag(token.LBRACKET); ok {
			idx, ierr := p.exprItemsUntil(token.RBRACKET)
			if ierr != nil {
				return zeroExpr, ierr
			}
			closeTok, ok2 := p.tokenTag(token.RBRACKET)
			if !ok2 {
				return zeroExpr, p.fail(openTok.Span, "expected ']'")
			}
			hull := primaryNode.Span.Add(closeTok.Span)
			primaryNode = span.New[ast.Primary](hull, ast.Subscription{Receiver: primaryNode, Index: idx})
			continue
		}
		if openTok, ok := p.tokenTag(token.LPAREN); ok {
			args, aerr := p.exprItemsUntil(token.RPAREN)
			if aerr != nil {
				return zeroExpr, aerr
			}
			closeTok, ok2 := p.tokenTag(token.RPAREN)
			if !ok2 {
				return zeroExpr, p.fail(openTok.Span, "expected ')'")
			}
			hull := primaryNode.Span.Add(closeTok.Span)
			primaryNode = span.New[ast.Primary](hull, ast.Call{Receiver: primaryNode, Args: args})
			continue
		}
		break
	}

	return span.New[ast.Expr](primaryNode.Span, ast.PrimaryExpr{Primary: primaryNode}), nil
}

// exprItemsUntil parses a comma-separated, optionally-spread sequence
// of expressions, not consuming close; an empty or trailing comma is
// both legal.
func (p *Parser) exprItemsUntil(close token.Kind) ([]span.Node[ast.Expr], error) {
	var items []span.Node[ast.Expr]
	p.skipDelims()
	if p.peek().Kind == close {
		return items, nil
	}
	for {
		item, err := p.exprOrSpread()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		p.skipDelims()
		if _, ok := p.tokenTag(token.COMMA); !ok {
			break
		}
		p.skipDelims()
		if p.peek().Kind == close {
			break
		}
	}
	p.skipDelims()
	return items, nil
}

// atom (§4.3 level 15) parses a terminal: identifier, literal, or a
// parenthesised/bracketed/braced display.
func (p *Parser) atom() (span.Node[ast.Atom], error) {
	if numNode, ok := tokenAction(p, numericAtom); ok {
		return numNode, nil
	}

	tok := p.peek()
	switch tok.Kind {
	case token.IDENT:
		p.advance()
		return span.New[ast.Atom](tok.Span, ast.Id{Name: tok.Lexeme}), nil
	case token.STRING:
		p.advance()
		return span.New[ast.Atom](tok.Span, ast.StringLit{Value: tok.Lexeme}), nil
	case token.KW_TRUE:
		p.advance()
		return span.New[ast.Atom](tok.Span, ast.BoolLit{Value: true}), nil
	case token.KW_FALSE:
		p.advance()
		return span.New[ast.Atom](tok.Span, ast.BoolLit{Value: false}), nil
	case token.KW_NULL:
		p.advance()
		return span.New[ast.Atom](tok.Span, ast.NullLit{}), nil
	case token.LPAREN:
		return p.parenOrTuple()
	case token.LBRACKET:
		return p.listDisplay()
	case token.LBRACE:
		return p.dictDisplay()
	default:
		return span.Node[ast.Atom]{}, errNoMatch
	}
}

// parenOrTuple disambiguates "(a)" (Paren) from "(a, b)" / "()"
// (Tuple) on comma presence, per §3's Atom shapes.
func (p *Parser) parenOrTuple() (span.Node[ast.Atom], error) {
	openTok, _ := p.tokenTag(token.LPAREN)
	p.skipDelims()

	if closeTok, ok := p.tokenTag(token.RPAREN); ok {
		return span.New[ast.Atom](openTok.Span.Add(closeTok.Span), ast.Tuple{}), nil
	}

	first, err := p.exprOrSpread()
	if err != nil {
		if err == errNoMatch {
			return span.Node[ast.Atom]{}, p.fail(openTok.Span, "expected expression after '('")
		}
		return span.Node[ast.Atom]{}, err
	}
	items := []span.Node[ast.Expr]{first}
	p.skipDelims()

	isTuple := false
	for {
		commaTok, ok := p.tokenTag(token.COMMA)
		if !ok {
			break
		}
		isTuple = true
		p.skipDelims()
		if p.peek().Kind == token.RPAREN {
			break
		}
		next, err := p.exprOrSpread()
		if err != nil {
			if err == errNoMatch {
				return span.Node[ast.Atom]{}, p.fail(commaTok.Span, "expected expression after ','")
			}
			return span.Node[ast.Atom]{}, err
		}
		items = append(items, next)
		p.skipDelims()
	}

	closeTok, ok := p.tokenTag(token.RPAREN)
	if !ok {
		return span.Node[ast.Atom]{}, p.fail(openTok.Span, "expected ')'")
	}
	hull := openTok.Span.Add(closeTok.Span)
	if !isTuple {
		return span.New[ast.Atom](hull, ast.Paren{Item: first}), nil
	}
	return span.New[ast.Atom](hull, ast.Tuple{Items: items}), nil
}

func (p *Parser) listDisplay() (span.Node[ast.Atom], error) {
	openTok, _ := p.tokenTag(token.LBRACKET)
	items, err := p.exprItemsUntil(token.RBRACKET)
	if err != nil {
		return span.Node[ast.Atom]{}, err
	}
	closeTok, ok := p.tokenTag(token.RBRACKET)
	if !ok {
		return span.Node[ast.Atom]{}, p.fail(openTok.Span, "expected ']'")
	}
	return span.New[ast.Atom](openTok.Span.Add(closeTok.Span), ast.ListDisplay{Items: items}), nil
}

func (p *Parser) dictDisplay() (span.Node[ast.Atom], error) {
	openTok, _ := p.tokenTag(token.LBRACE)
	var items []span.Node[ast.DictItem]
	p.skipDelims()

	for p.peek().Kind != token.RBRACE {
		item, err := p.dictItem()
		if err != nil {
			return span.Node[ast.Atom]{}, err
		}
		items = append(items, item)
		p.skipDelims()
		if _, ok := p.tokenTag(token.COMMA); !ok {
			break
		}
		p.skipDelims()
	}

	closeTok, ok := p.tokenTag(token.RBRACE)
	if !ok {
		return span.Node[ast.Atom]{}, p.fail(openTok.Span, "expected '}'")
	}
	return span.New[ast.Atom](openTok.Span.Add(closeTok.Span), ast.DictDisplay{Items: items}), nil
}

// dictItem parses one of Shorthand ("x"), KeyVal ("x: expr"), or
// SpreadItem ("...expr").
func (p *Parser) dictItem() (span.Node[ast.DictItem], error) {
	if spreadTok, ok := p.tokenTag(token.SPREAD); ok {
		val, err := p.assignmentExpr()
		if err != nil {
			if err == errNoMatch {
				return span.Node[ast.DictItem]{}, p.fail(spreadTok.Span, "expected expression after '...'")
			}
			return span.Node[ast.DictItem]{}, err
		}
		return span.New[ast.DictItem](spreadTok.Span.Add(val.Span), ast.SpreadItem{Value: val}), nil
	}

	nameTok, ok := p.tokenTag(token.IDENT)
	if !ok {
		return span.Node[ast.DictItem]{}, p.fail(p.peek().Span, "expected identifier in dict display")
	}
	colonTok, hasColon := p.tokenTag(token.COLON)
	if !hasColon {
		return span.New[ast.DictItem](nameTok.Span, ast.Shorthand{Name: nameTok.Lexeme}), nil
	}
	val, err := p.assignmentExpr()
	if err != nil {
		if err == errNoMatch {
			return span.Node[ast.DictItem]{}, p.fail(colonTok.Span, "expected expression after ':'")
		}
		return span.Node[ast.DictItem]{}, err
	}
	return span.New[ast.DictItem](nameTok.Span.Add(val.Span), ast.KeyVal{Key: nameTok.Lexeme, Val: val}), nil
}

package parser

import (
	"strconv"

	"kismet/internal/ast"
	"kismet/internal/span"
	"kismet/internal/token"
)

var zeroExpr span.Node[ast.Expr]

// assignmentExpr is the grammar entry point (§4.3 level 0): an
// optional ":=" turns the already-parsed left-hand side into a
// destructuring target via ast.ExprToTarget. Right-associative: the
// value of an assignment may itself be an assignment.
func (p *Parser) assignmentExpr() (span.Node[ast.Expr], error) {
	lhs, err := p.conditionalExpr()
	if err != nil {
		return zeroExpr, err
	}

	assignTok, ok := p.tokenTag(token.ASSIGNE)
	if !ok {
		return lhs, nil
	}

	target, terr := ast.ExprToTarget(lhs, assignTok.Span)
	if terr != nil {
		return zeroExpr, p.fail(assignTok.Span, "%s", terr.Error())
	}

	p.skipDelims()
	value, err := p.assignmentExpr()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(assignTok.Span, "expected expression after ':='")
		}
		return zeroExpr, err
	}

	hull := target.Span.Add(assignTok.Span).Add(value.Span)
	return span.New[ast.Expr](hull, ast.Assign{Target: target, Value: value}), nil
}

// lambdaExpr (§4.3 level 2) is a pure passthrough to orTest: the table
// gives this row no operator column and Notes "passthrough". The real
// "=>" recognition lives one level up, in conditionalExpr, alongside
// the other reserved forms — see the note there.
func (p *Parser) lambdaExpr() (span.Node[ast.Expr], error) {
	return p.orTest()
}

// conditionalExpr (§4.3 level 1) is the reserved if/match/for/while/loop/λ
// level. Its grammar is a placeholder per §9's design notes: every
// alternative is only recognized and reserved as a Branch node, never
// given a working condition/body (or parameter/block) grammar.
//
// λ can't be recognized by a single leading-token peek the way the
// keyword forms are: its marker ("=>") only appears after a candidate
// expression. So this parses that candidate via the passthrough chain
// first, then checks for a trailing "=>" the same way the keyword
// branches check their leading token — if found, the candidate and
// arrow are folded into a reserved Branch node and the body is left
// unconsumed, exactly as "if"/"match"/etc. leave their condition and
// body unconsumed. block() remains in this file as the body-parsing
// infrastructure a future Function/Branch grammar would resume from
// (see blockString's render support and TestBlockHelper).
func (p *Parser) conditionalExpr() (span.Node[ast.Expr], error) {
	if tok, ok := p.tokenIf(isBranchKeyword); ok {
		return span.New[ast.Expr](tok.Span, ast.Branch{Keyword: tok.Lexeme}), nil
	}

	candidate, err := p.lambdaExpr()
	if err != nil {
		return zeroExpr, err
	}
	arrowTok, ok := p.tokenTag(token.ARROW)
	if !ok {
		return candidate, nil
	}
	hull := candidate.Span.Add(arrowTok.Span)
	return span.New[ast.Expr](hull, ast.Branch{Keyword: arrowTok.Lexeme}), nil
}

// orTest (§4.3 level 3): right-associative short-circuit "or".
func (p *Parser) orTest() (span.Node[ast.Expr], error) {
	left, err := p.andTest()
	if err != nil {
		return zeroExpr, err
	}
	if _, ok := p.tokenTag(token.OR); !ok {
		return left, nil
	}
	p.skipDelims()
	right, rerr := p.orTest()
	if rerr != nil {
		if rerr == errNoMatch {
			return zeroExpr, p.fail(left.Span, "expected expression after 'or'")
		}
		return zeroExpr, rerr
	}
	hull := left.Span.Add(right.Span)
	return span.New[ast.Expr](hull, ast.Or{Left: left, Right: right}), nil
}

// andTest (§4.3 level 4): right-associative short-circuit "and".
func (p *Parser) andTest() (span.Node[ast.Expr], error) {
	left, err := p.notTest()
	if err != nil {
		return zeroExpr, err
	}
	if _, ok := p.tokenTag(token.AND); !ok {
		return left, nil
	}
	p.skipDelims()
	right, rerr := p.andTest()
	if rerr != nil {
		if rerr == errNoMatch {
			return zeroExpr, p.fail(left.Span, "expected expression after 'and'")
		}
		return zeroExpr, rerr
	}
	hull := left.Span.Add(right.Span)
	return span.New[ast.Expr](hull, ast.And{Left: left, Right: right}), nil
}

// notTest (§4.3 level 5): a single prefix "not" level.
func (p *Parser) notTest() (span.Node[ast.Expr], error) {
	tok, ok := p.tokenTag(token.NOT)
	if !ok {
		return p.cExpr()
	}
	p.skipDelims()
	operand, err := p.notTest()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(tok.Span, "expected expression after 'not'")
		}
		return zeroExpr, err
	}
	hull := tok.Span.Add(operand.Span)
	return span.New[ast.Expr](hull, ast.Not{Operand: operand}), nil
}

// cExpr (§4.3 level 6) implements compound comparison chaining: after
// lhs, consume up to two (op, operand) pairs. Zero pairs returns lhs
// unchanged, one produces Compare, two produces CompareBound. A third
// comparison operator is left unconsumed, per §4.3 — it becomes a
// syntax error at whatever level tries to consume it next.
func (p *Parser) cExpr() (span.Node[ast.Expr], error) {
	lhs, err := p.rExpr()
	if err != nil {
		return zeroExpr, err
	}

	op1, ok1 := p.tokenIf(isCompareOp)
	if !ok1 {
		return lhs, nil
	}
	mid, err := p.rExpr()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(op1.Span, "expected expression after comparison operator")
		}
		return zeroExpr, err
	}

	op2, ok2 := p.tokenIf(isCompareOp)
	if !ok2 {
		hull := lhs.Span.Add(mid.Span)
		return span.New[ast.Expr](hull, ast.Compare{Left: lhs, Op: compareOp(op1.Kind), Right: mid}), nil
	}
	rhs, err := p.rExpr()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(op2.Span, "expected expression after comparison operator")
		}
		return zeroExpr, err
	}

	hull := lhs.Span.Add(rhs.Span)
	node := ast.CompareBound{LVal: lhs, LOp: compareOp(op1.Kind), Val: mid, ROp: compareOp(op2.Kind), RVal: rhs}
	return span.New[ast.Expr](hull, node), nil
}

// rExpr (§4.3 level 7) produces the six Range shapes. Both the lhs and
// rhs operands are optional; a range operator must appear for this
// level to match at all (a bare lhs with no range operator falls
// through unchanged).
func (p *Parser) rExpr() (span.Node[ast.Expr], error) {
	mark := p.mark()

	var start *span.Node[ast.Expr]
	if lhs, err := p.aExpr(); err == nil {
		start = &lhs
	} else if err != errNoMatch {
		return zeroExpr, err
	}

	rangeTok, hasRange := p.tokenTagAny(token.RANGE, token.RANGEI)
	if !hasRange {
		if start != nil {
			return *start, nil
		}
		p.reset(mark)
		return zeroExpr, errNoMatch
	}

	var end *span.Node[ast.Expr]
	if rhs, err := p.aExpr(); err == nil {
		end = &rhs
	} else if err != errNoMatch {
		return zeroExpr, err
	}

	inclusive := rangeTok.Kind == token.RANGEI
	var kind ast.RangeKind
	switch {
	case start != nil && end != nil:
		if inclusive {
			kind = ast.RangeBoundedI
		} else {
			kind = ast.RangeBounded
		}
	case start != nil:
		kind = ast.RangeFrom
	case end != nil:
		if inclusive {
			kind = ast.RangeToI
		} else {
			kind = ast.RangeTo
		}
	default:
		kind = ast.RangeFull
	}

	var startSpan, endSpan *span.Span
	if start != nil {
		startSpan = &start.Span
	}
	if end != nil {
		endSpan = &end.Span
	}
	hull := *span.AddOption(span.AddOption(startSpan, &rangeTok.Span), endSpan)
	return span.New[ast.Expr](hull, ast.RangeExpr{Range: ast.Range{Kind: kind, Start: start, End: end}}), nil
}

// aExpr (§4.3 level 8): "+ -", folded left-associative per the
// resolution in SPEC_FULL.md §0.
func (p *Parser) aExpr() (span.Node[ast.Expr], error) {
	left, err := p.mExpr()
	if err != nil {
		return zeroExpr, err
	}
	for {
		opTok, ok := p.tokenTagAny(token.ADD, token.SUB)
		if !ok {
			break
		}
		p.skipDelims()
		right, rerr := p.mExpr()
		if rerr != nil {
			if rerr == errNoMatch {
				return zeroExpr, p.fail(opTok.Span, "expected expression after '%s'", opTok.Lexeme)
			}
			return zeroExpr, rerr
		}
		hull := left.Span.Add(right.Span)
		left = span.New[ast.Expr](hull, ast.Arith{Left: left, Op: arithOp(opTok.Kind), Right: right})
	}
	return left, nil
}

// mExpr (§4.3 level 9): "* / %", folded left-associative.
func (p *Parser) mExpr() (span.Node[ast.Expr], error) {
	left, err := p.pExpr()
	if err != nil {
		return zeroExpr, err
	}
	for {
		opTok, ok := p.tokenTagAny(token.MUL, token.DIV, token.MOD)
		if !ok {
			break
		}
		p.skipDelims()
		right, rerr := p.pExpr()
		if rerr != nil {
			if rerr == errNoMatch {
				return zeroExpr, p.fail(opTok.Span, "expected expression after '%s'", opTok.Lexeme)
			}
			return zeroExpr, rerr
		}
		hull := left.Span.Add(right.Span)
		left = span.New[ast.Expr](hull, ast.Arith{Left: left, Op: arithOp(opTok.Kind), Right: right})
	}
	return left, nil
}

// pExpr (§4.3 level 10): "^", right-associative.
func (p *Parser) pExpr() (span.Node[ast.Expr], error) {
	left, err := p.uExpr()
	if err != nil {
		return zeroExpr, err
	}
	opTok, ok := p.tokenTag(token.POW)
	if !ok {
		return left, nil
	}
	p.skipDelims()
	right, rerr := p.pExpr()
	if rerr != nil {
		if rerr == errNoMatch {
			return zeroExpr, p.fail(opTok.Span, "expected expression after '^'")
		}
		return zeroExpr, rerr
	}
	hull := left.Span.Add(right.Span)
	return span.New[ast.Expr](hull, ast.Arith{Left: left, Op: ast.OpPow, Right: right}), nil
}

// uExpr (§4.3 level 11): exactly one optional prefix sign. Repeated
// signs ("--3") are reached only via a_expr's right operand seeing a
// fresh unary, not by this level recursing into itself.
func (p *Parser) uExpr() (span.Node[ast.Expr], error) {
	opTok, ok := p.tokenTagAny(token.ADD, token.SUB)
	if !ok {
		return p.coefficient()
	}
	operand, err := p.coefficient()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(opTok.Span, "expected expression after unary '%s'", opTok.Lexeme)
		}
		return zeroExpr, err
	}
	hull := opTok.Span.Add(operand.Span)
	return span.New[ast.Expr](hull, ast.Unary{Op: arithOp(opTok.Kind), Operand: operand}), nil
}

// coefficient (§4.3 level 12): "numeric? die?" — see dieOnly for why a
// bare numeric-less, die-less position falls through to primary.
func (p *Parser) coefficient() (span.Node[ast.Expr], error) {
	numNode, hasNum := tokenAction(p, numericAtom)
	if hasNum {
		dieExpr, derr := p.dieOnly()
		switch {
		case derr == nil:
			hull := numNode.Span.Add(dieExpr.Span)
			return span.New[ast.Expr](hull, ast.Coefficient{Num: numNode, Die: dieExpr}), nil
		case derr == errNoMatch:
			primaryNode := span.New[ast.Primary](numNode.Span, ast.AtomPrimary{Atom: numNode})
			return span.New[ast.Expr](numNode.Span, ast.PrimaryExpr{Primary: primaryNode}), nil
		default:
			return zeroExpr, derr
		}
	}

	dieExpr, derr := p.dieOnly()
	if derr == nil {
		return dieExpr, nil
	}
	if derr != errNoMatch {
		return zeroExpr, derr
	}
	return p.primary()
}

// dieOnly (§4.3 level 13) matches strictly "DIE numeric"; it never
// falls through itself. coefficient is what falls through to primary
// when dieOnly reports no match, which is how "die = (DIE numeric)?...
// falls through to a plain primary expression" (§4.3) is realized.
func (p *Parser) dieOnly() (span.Node[ast.Expr], error) {
	dieTok, ok := p.tokenTag(token.DIE)
	if !ok {
		return zeroExpr, errNoMatch
	}
	atomNode, ok2 := tokenAction(p, numericAtom)
	if !ok2 {
		return zeroExpr, p.fail(dieTok.Span, "expected numeric literal after 'd'")
	}
	hull := dieTok.Span.Add(atomNode.Span)
	return span.New[ast.Expr](hull, ast.Die{Value: atomNode}), nil
}

// numericAtom decodes an INT/FLOAT token into its literal Atom; it is
// the tokenAction payload shared by atom, coefficient, and dieOnly (§4.2's
// token_action primitive — matching-and-decoding a token in one step
// rather than tagging it and separately converting its lexeme).
func numericAtom(tok token.Token) (span.Node[ast.Atom], bool) {
	switch tok.Kind {
	case token.FLOAT:
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return span.New[ast.Atom](tok.Span, ast.FloatLit{Value: v}), true
	case token.INT:
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return span.New[ast.Atom](tok.Span, ast.IntLit{Value: v}), true
	default:
		return span.Node[ast.Atom]{}, false
	}
}

// exprOrSpread parses a list/tuple/call-argument item, allowing a
// leading "..." spread.
func (p *Parser) exprOrSpread() (span.Node[ast.Expr], error) {
	spreadTok, ok := p.tokenTag(token.SPREAD)
	if !ok {
		return p.assignmentExpr()
	}
	inner, err := p.assignmentExpr()
	if err != nil {
		if err == errNoMatch {
			return zeroExpr, p.fail(spreadTok.Span, "expected expression after '...'")
		}
		return zeroExpr, err
	}
	hull := spreadTok.Span.Add(inner.Span)
	return span.New[ast.Expr](hull, ast.Spread{Value: inner}), nil
}

// block parses a Function/Branch body: either a braced sequence of
// expressions separated by DELIM, or (with no braces) a single
// expression. Rendering collapses the single-element and zero-element
// cases (§4.6).
func (p *Parser) block() (span.Node[ast.Block], error) {
	openTok, braced := p.tokenTag(token.LBRACE)
	if !braced {
		e, err := p.assignmentExpr()
		if err != nil {
			return span.Node[ast.Block]{}, err
		}
		return span.New[ast.Block](e.Span, ast.Block{Stmts: []span.Node[ast.Expr]{e}}), nil
	}

	var stmts []span.Node[ast.Expr]
	p.skipDelims()
	for {
		if _, ok := p.tokenTag(token.RBRACE); ok {
			hull := openTok.Span
			if len(stmts) > 0 {
				hull = hull.Add(stmts[len(stmts)-1].Span)
			}
			return span.New[ast.Block](hull, ast.Block{Stmts: stmts}), nil
		}
		e, err := p.assignmentExpr()
		if err != nil {
			if err == errNoMatch {
				return span.Node[ast.Block]{}, p.fail(openTok.Span, "expected '}'")
			}
			return span.Node[ast.Block]{}, err
		}
		stmts = append(stmts, e)
		p.skipDelims()
	}
}

package parser

import (
	"kismet/internal/ast"
	"kismet/internal/token"
)

func arithOp(kind token.Kind) ast.OpArith {
	switch kind {
	case token.ADD:
		return ast.OpAdd
	case token.SUB:
		return ast.OpSub
	case token.MUL:
		return ast.OpMul
	case token.DIV:
		return ast.OpDiv
	case token.MOD:
		return ast.OpMod
	case token.POW:
		return ast.OpPow
	default:
		return ast.OpAdd
	}
}

func compareOp(kind token.Kind) ast.OpEqs {
	switch kind {
	case token.EQ:
		return ast.OpEq
	case token.NE:
		return ast.OpNe
	case token.LT:
		return ast.OpLt
	case token.LE:
		return ast.OpLe
	case token.GT:
		return ast.OpGt
	case token.GE:
		return ast.OpGe
	default:
		return ast.OpEq
	}
}

func isBranchKeyword(t token.Token) bool {
	switch t.Kind {
	case token.KW_IF, token.KW_MATCH, token.KW_FOR, token.KW_WHILE, token.KW_LOOP:
		return true
	default:
		return false
	}
}

func isCompareOp(t token.Token) bool {
	return t.Kind.IsCompareOp()
}

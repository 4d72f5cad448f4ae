package ast

import (
	"strconv"
	"strings"

	"kismet/internal/span"
)

// Render returns the canonical textual form of a parsed expression,
// used by the round-trip property in §8: render(t) re-parses to a
// tree equal to t modulo span.
func Render(n span.Node[Expr]) string {
	return exprString(n.Data)
}

func exprString(e Expr) string {
	switch v := e.(type) {
	case Assign:
		return targetString(v.Target.Data) + " := " + exprString(v.Value.Data)
	case Function:
		return "(" + targetString(v.Args.Data) + ") => " + blockString(v.Block.Data)
	case Or:
		return exprString(v.Left.Data) + " or " + exprString(v.Right.Data)
	case And:
		return exprString(v.Left.Data) + " and " + exprString(v.Right.Data)
	case Not:
		return "not " + exprString(v.Operand.Data)
	case Compare:
		return exprString(v.Left.Data) + " " + v.Op.String() + " " + exprString(v.Right.Data)
	case CompareBound:
		return exprString(v.LVal.Data) + " " + v.LOp.String() + " " + exprString(v.Val.Data) +
			" " + v.ROp.String() + " " + exprString(v.RVal.Data)
	case RangeExpr:
		return rangeString(v.Range)
	case Arith:
		if v.Op.tight() {
			return exprString(v.Left.Data) + v.Op.String() + exprString(v.Right.Data)
		}
		return exprString(v.Left.Data) + " " + v.Op.String() + " " + exprString(v.Right.Data)
	case Unary:
		return v.Op.String() + exprString(v.Operand.Data)
	case Coefficient:
		return atomString(v.Num.Data) + exprString(v.Die.Data)
	case Die:
		if id, ok := v.Value.Data.(Id); ok {
			return "d(" + id.Name + ")"
		}
		return "d" + atomString(v.Value.Data)
	case PrimaryExpr:
		return primaryString(v.Primary.Data)
	case Spread:
		return "..." + exprString(v.Value.Data)
	case Branch:
		return "<" + v.Keyword + ">"
	default:
		return "<?>"
	}
}

func rangeString(r Range) string {
	var start, end string
	if r.Start != nil {
		start = exprString(r.Start.Data)
	}
	if r.End != nil {
		end = exprString(r.End.Data)
	}
	switch r.Kind {
	case RangeBounded:
		return start + ".." + end
	case RangeBoundedI:
		return start + "..=" + end
	case RangeFrom:
		return start + ".."
	case RangeTo:
		return ".." + end
	case RangeToI:
		return "..=" + end
	case RangeFull:
		return ".."
	default:
		return "<?range>"
	}
}

func blockString(b Block) string {
	switch len(b.Stmts) {
	case 0:
		return ""
	case 1:
		return exprString(b.Stmts[0].Data)
	default:
		return "{\n  " + span.VecToString(wrapExprs(b.Stmts), "\n  ") + "\n}"
	}
}

func primaryString(p Primary) string {
	switch v := p.(type) {
	case AtomPrimary:
		return atomString(v.Atom.Data)
	case Attribute:
		return primaryString(v.Receiver.Data) + "." + v.Name
	case Subscription:
		parts := make([]string, len(v.Index))
		for i, idx := range v.Index {
			parts[i] = exprString(idx.Data)
		}
		return primaryString(v.Receiver.Data) + "[" + strings.Join(parts, ", ") + "]"
	case Call:
		parts := make([]string, len(v.Args))
		for i, arg := range v.Args {
			parts[i] = exprString(arg.Data)
		}
		return primaryString(v.Receiver.Data) + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<?primary>"
	}
}

func atomString(a Atom) string {
	switch v := a.(type) {
	case Id:
		return v.Name
	case IntLit:
		return strconv.FormatInt(v.Value, 10)
	case FloatLit:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case StringLit:
		return strconv.Quote(v.Value)
	case BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case NullLit:
		return "null"
	case Paren:
		return "(" + exprString(v.Item.Data) + ")"
	case Tuple:
		return "(" + joinExprs(v.Items) + ")"
	case ListDisplay:
		return "[" + joinExprs(v.Items) + "]"
	case DictDisplay:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = dictItemString(item.Data)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<?atom>"
	}
}

// exprStringer adapts Expr to span.Join/VecToString's stringer
// constraint: Expr itself carries no String() method (rendering goes
// through the exprString free function, since a method per variant
// would scatter one-line switches across the file), so node payloads
// are wrapped just long enough to satisfy the constraint.
type exprStringer struct{ Expr }

func (e exprStringer) String() string { return exprString(e.Expr) }

func wrapExprs(items []span.Node[Expr]) []span.Node[exprStringer] {
	wrapped := make([]span.Node[exprStringer], len(items))
	for i, item := range items {
		wrapped[i] = span.New(item.Span, exprStringer{item.Data})
	}
	return wrapped
}

func joinExprs(items []span.Node[Expr]) string {
	return span.Join(wrapExprs(items), ", ")
}

func dictItemString(d DictItem) string {
	switch v := d.(type) {
	case Shorthand:
		return v.Name
	case KeyVal:
		return v.Key + ": " + exprString(v.Val.Data)
	case SpreadItem:
		return "..." + exprString(v.Value.Data)
	default:
		return "<?dictitem>"
	}
}

func targetString(t Target) string {
	switch v := t.(type) {
	case TargetId:
		return v.Name
	case TargetTuple:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = targetListItemString(item.Data)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case TargetList:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = targetListItemString(item.Data)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TargetDict:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = targetDictItemString(item.Data)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<?target>"
	}
}

func targetListItemString(item TargetListItem) string {
	switch v := item.(type) {
	case PlainTarget:
		return targetString(v.Target.Data)
	case SpreadTarget:
		return "..." + targetString(v.Target.Data)
	default:
		return "<?listitem>"
	}
}

func targetDictItemString(item TargetDictItem) string {
	switch v := item.(type) {
	case TargetShorthand:
		return v.Name
	case TargetPair:
		return v.Key + ": " + targetString(v.Val.Data)
	case TargetDictSpread:
		return "..." + targetString(v.Target.Data)
	default:
		return "<?dictitem>"
	}
}

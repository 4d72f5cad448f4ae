package ast

import "kismet/internal/span"

// ExprToMap converts a parsed expression to a tagged-union map
// suitable for JSON serialization: every node carries a "kind" field
// and its span.
func ExprToMap(n span.Node[Expr]) map[string]interface{} {
	switch v := n.Data.(type) {
	case Assign:
		return m("Assign", n.Span, "target", TargetToMap(v.Target), "value", ExprToMap(v.Value))
	case Function:
		return m("Function", n.Span, "args", TargetToMap(v.Args), "block", blockToMap(v.Block))
	case Or:
		return m("Or", n.Span, "left", ExprToMap(v.Left), "right", ExprToMap(v.Right))
	case And:
		return m("And", n.Span, "left", ExprToMap(v.Left), "right", ExprToMap(v.Right))
	case Not:
		return m("Not", n.Span, "operand", ExprToMap(v.Operand))
	case Compare:
		return m("Compare", n.Span, "op", v.Op.String(), "left", ExprToMap(v.Left), "right", ExprToMap(v.Right))
	case CompareBound:
		return m("CompareBound", n.Span,
			"lVal", ExprToMap(v.LVal), "lOp", v.LOp.String(),
			"val", ExprToMap(v.Val),
			"rOp", v.ROp.String(), "rVal", ExprToMap(v.RVal))
	case RangeExpr:
		return rangeToMap(n.Span, v.Range)
	case Arith:
		return m("Arith", n.Span, "op", v.Op.String(), "left", ExprToMap(v.Left), "right", ExprToMap(v.Right))
	case Unary:
		return m("Unary", n.Span, "op", v.Op.String(), "operand", ExprToMap(v.Operand))
	case Coefficient:
		return m("Coefficient", n.Span, "num", AtomToMap(v.Num), "die", ExprToMap(v.Die))
	case Die:
		return m("Die", n.Span, "value", AtomToMap(v.Value))
	case PrimaryExpr:
		return m("PrimaryExpr", n.Span, "primary", PrimaryToMap(v.Primary))
	case Spread:
		return m("Spread", n.Span, "value", ExprToMap(v.Value))
	case Branch:
		return m("Branch", n.Span, "keyword", v.Keyword)
	default:
		return unknown()
	}
}

func rangeToMap(s span.Span, r Range) map[string]interface{} {
	result := m("Range", s, "rangeKind", rangeKindName(r.Kind))
	if r.Start != nil {
		result["start"] = ExprToMap(*r.Start)
	}
	if r.End != nil {
		result["end"] = ExprToMap(*r.End)
	}
	return result
}

func rangeKindName(k RangeKind) string {
	switch k {
	case RangeBounded:
		return "Bounded"
	case RangeBoundedI:
		return "BoundedInclusive"
	case RangeFrom:
		return "From"
	case RangeTo:
		return "To"
	case RangeToI:
		return "ToInclusive"
	case RangeFull:
		return "Full"
	default:
		return "Unknown"
	}
}

func blockToMap(n span.Node[Block]) map[string]interface{} {
	stmts := make([]interface{}, len(n.Data.Stmts))
	for i, s := range n.Data.Stmts {
		stmts[i] = ExprToMap(s)
	}
	return m("Block", n.Span, "stmts", stmts)
}

// PrimaryToMap converts a Primary chain node to its tagged-union map.
func PrimaryToMap(n span.Node[Primary]) map[string]interface{} {
	switch v := n.Data.(type) {
	case AtomPrimary:
		return m("AtomPrimary", n.Span, "atom", AtomToMap(v.Atom))
	case Attribute:
		return m("Attribute", n.Span, "receiver", PrimaryToMap(v.Receiver), "name", v.Name)
	case Subscription:
		idx := make([]interface{}, len(v.Index))
		for i, e := range v.Index {
			idx[i] = ExprToMap(e)
		}
		return m("Subscription", n.Span, "receiver", PrimaryToMap(v.Receiver), "index", idx)
	case Call:
		args := make([]interface{}, len(v.Args))
		for i, a := range v.Args {
			args[i] = ExprToMap(a)
		}
		return m("Call", n.Span, "receiver", PrimaryToMap(v.Receiver), "args", args)
	default:
		return unknown()
	}
}

// AtomToMap converts an Atom node to its tagged-union map.
func AtomToMap(n span.Node[Atom]) map[string]interface{} {
	switch v := n.Data.(type) {
	case Id:
		return m("Id", n.Span, "name", v.Name)
	case IntLit:
		return m("IntLit", n.Span, "value", v.Value)
	case FloatLit:
		return m("FloatLit", n.Span, "value", v.Value)
	case StringLit:
		return m("StringLit", n.Span, "value", v.Value)
	case BoolLit:
		return m("BoolLit", n.Span, "value", v.Value)
	case NullLit:
		return m("NullLit", n.Span)
	case Paren:
		return m("Paren", n.Span, "item", ExprToMap(v.Item))
	case Tuple:
		return m("Tuple", n.Span, "items", exprSlice(v.Items))
	case ListDisplay:
		return m("ListDisplay", n.Span, "items", exprSlice(v.Items))
	case DictDisplay:
		items := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			items[i] = dictItemToMap(item)
		}
		return m("DictDisplay", n.Span, "items", items)
	default:
		return unknown()
	}
}

func dictItemToMap(n span.Node[DictItem]) map[string]interface{} {
	switch v := n.Data.(type) {
	case Shorthand:
		return m("Shorthand", n.Span, "name", v.Name)
	case KeyVal:
		return m("KeyVal", n.Span, "key", v.Key, "val", ExprToMap(v.Val))
	case SpreadItem:
		return m("SpreadItem", n.Span, "value", ExprToMap(v.Value))
	default:
		return unknown()
	}
}

// TargetToMap converts a destructuring target node to its
// tagged-union map.
func TargetToMap(n span.Node[Target]) map[string]interface{} {
	switch v := n.Data.(type) {
	case TargetId:
		return m("TargetId", n.Span, "name", v.Name)
	case TargetTuple:
		return m("TargetTuple", n.Span, "items", targetListItemSlice(v.Items))
	case TargetList:
		return m("TargetList", n.Span, "items", targetListItemSlice(v.Items))
	case TargetDict:
		items := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			items[i] = targetDictItemToMap(item)
		}
		return m("TargetDict", n.Span, "items", items)
	default:
		return unknown()
	}
}

func targetListItemSlice(items []span.Node[TargetListItem]) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		switch v := item.Data.(type) {
		case PlainTarget:
			out[i] = m("PlainTarget", item.Span, "target", TargetToMap(v.Target))
		case SpreadTarget:
			out[i] = m("SpreadTarget", item.Span, "target", TargetToMap(v.Target))
		default:
			out[i] = unknown()
		}
	}
	return out
}

func targetDictItemToMap(n span.Node[TargetDictItem]) map[string]interface{} {
	switch v := n.Data.(type) {
	case TargetShorthand:
		return m("TargetShorthand", n.Span, "name", v.Name)
	case TargetPair:
		return m("TargetPair", n.Span, "key", v.Key, "val", TargetToMap(v.Val))
	case TargetDictSpread:
		return m("TargetDictSpread", n.Span, "target", TargetToMap(v.Target))
	default:
		return unknown()
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs, following
// the teacher's tagged-union convention (internal/ast/json.go).
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func exprSlice(exprs []span.Node[Expr]) []interface{} {
	result := make([]interface{}, len(exprs))
	for i, e := range exprs {
		result[i] = ExprToMap(e)
	}
	return result
}

func unknown() map[string]interface{} {
	return map[string]interface{}{"kind": "Unknown"}
}

package ast

import (
	"fmt"

	"kismet/internal/span"
)

// Target is a destructuring pattern, the LHS of ":=" after rewrite
// (§3, §4.5).
type Target interface {
	targetNode()
}

// TargetId binds a single identifier.
type TargetId struct {
	Name string
}

// TargetTuple destructures a parenthesised tuple: "(a, b)".
type TargetTuple struct {
	Items []span.Node[TargetListItem]
}

// TargetList destructures a bracketed list: "[a, b]".
type TargetList struct {
	Items []span.Node[TargetListItem]
}

// TargetDict destructures a braced dict: "{a, b: c, ...rest}".
type TargetDict struct {
	Items []span.Node[TargetDictItem]
}

func (TargetId) targetNode()    {}
func (TargetTuple) targetNode() {}
func (TargetList) targetNode()  {}
func (TargetDict) targetNode()  {}

// TargetListItem is one element of a TargetTuple/TargetList: a plain
// nested target, or a spread capturing the remainder.
type TargetListItem interface {
	targetListItemNode()
}

// PlainTarget is a non-spread list/tuple element.
type PlainTarget struct {
	Target span.Node[Target]
}

// SpreadTarget is a "...target" list/tuple element.
type SpreadTarget struct {
	Target span.Node[Target]
}

func (PlainTarget) targetListItemNode()  {}
func (SpreadTarget) targetListItemNode() {}

// TargetDictItem is one entry of a TargetDict.
type TargetDictItem interface {
	targetDictItemNode()
}

// TargetShorthand binds a dict entry to a same-named variable.
type TargetShorthand struct {
	Name string
}

// TargetPair binds a dict entry under an explicit key to a nested
// target.
type TargetPair struct {
	Key string
	Val span.Node[Target]
}

// TargetDictSpread captures the remaining dict entries into a nested
// target (supplemented from original_source/lib/kismet/src/ast/expr.rs,
// whose rewrite recurses into DictItem::Spread the same way the list
// and tuple rewrites do).
type TargetDictSpread struct {
	Target span.Node[Target]
}

func (TargetShorthand) targetDictItemNode()   {}
func (TargetPair) targetDictItemNode()        {}
func (TargetDictSpread) targetDictItemNode()  {}

// RewriteError is a Failure (§7): the LHS of ":=" was not rewritable
// into a Target. It is always pinned at the ":=" span, not the
// offending subexpression, per §4.5.
type RewriteError struct {
	AssignSpan span.Span
	Reason     string
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("invalid assignment target at %s: %s", e.AssignSpan, e.Reason)
}

// ExprToTarget rewrites a parsed expression into a destructuring
// target, per the table in §4.5. assignSpan is the span of the ":="
// token that triggered the rewrite; it is what any RewriteError
// reports, not the span of e itself. The rewrite is total on the
// subset of shapes below and fails atomically otherwise — no partial
// target is ever produced.
func ExprToTarget(e span.Node[Expr], assignSpan span.Span) (span.Node[Target], error) {
	primaryExpr, ok := e.Data.(PrimaryExpr)
	if !ok {
		return span.Node[Target]{}, &RewriteError{AssignSpan: assignSpan, Reason: "left-hand side is not a bindable expression"}
	}
	atomPrimary, ok := primaryExpr.Primary.Data.(AtomPrimary)
	if !ok {
		return span.Node[Target]{}, &RewriteError{AssignSpan: assignSpan, Reason: "attribute/subscription/call expressions cannot be assignment targets"}
	}

	switch atom := atomPrimary.Atom.Data.(type) {
	case Id:
		return span.New[Target](e.Span, TargetId{Name: atom.Name}), nil

	case Paren:
		item, err := ExprToTarget(atom.Item, assignSpan)
		if err != nil {
			return span.Node[Target]{}, err
		}
		listItem := span.New[TargetListItem](item.Span, PlainTarget{Target: item})
		return span.New[Target](e.Span, TargetTuple{Items: []span.Node[TargetListItem]{listItem}}), nil

	case Tuple:
		items, err := rewriteListItems(atom.Items, assignSpan)
		if err != nil {
			return span.Node[Target]{}, err
		}
		return span.New[Target](e.Span, TargetTuple{Items: items}), nil

	case ListDisplay:
		items, err := rewriteListItems(atom.Items, assignSpan)
		if err != nil {
			return span.Node[Target]{}, err
		}
		return span.New[Target](e.Span, TargetList{Items: items}), nil

	case DictDisplay:
		items, err := rewriteDictItems(atom.Items, assignSpan)
		if err != nil {
			return span.Node[Target]{}, err
		}
		return span.New[Target](e.Span, TargetDict{Items: items}), nil

	default:
		return span.Node[Target]{}, &RewriteError{AssignSpan: assignSpan, Reason: "literal expressions cannot be assignment targets"}
	}
}

// rewriteListItems rewrites every tuple/list element. A plain element
// rewrites as a PlainTarget; a Spread element's inner expression
// rewrites as a SpreadTarget. Any single failure fails the whole list.
func rewriteListItems(items []span.Node[Expr], assignSpan span.Span) ([]span.Node[TargetListItem], error) {
	out := make([]span.Node[TargetListItem], 0, len(items))
	for _, item := range items {
		if spread, ok := item.Data.(Spread); ok {
			inner, err := ExprToTarget(spread.Value, assignSpan)
			if err != nil {
				return nil, err
			}
			out = append(out, span.New[TargetListItem](item.Span, SpreadTarget{Target: inner}))
			continue
		}
		rewritten, err := ExprToTarget(item, assignSpan)
		if err != nil {
			return nil, err
		}
		out = append(out, span.New[TargetListItem](item.Span, PlainTarget{Target: rewritten}))
	}
	return out, nil
}

// rewriteDictItems rewrites every dict element: Shorthand -> Shorthand,
// KeyVal{k,v} -> Pair{k, v'}, Spread(e) -> TargetDictSpread(e'). Dict
// keys are never rewritten; they remain bare identifiers.
func rewriteDictItems(items []span.Node[DictItem], assignSpan span.Span) ([]span.Node[TargetDictItem], error) {
	out := make([]span.Node[TargetDictItem], 0, len(items))
	for _, item := range items {
		switch di := item.Data.(type) {
		case Shorthand:
			out = append(out, span.New[TargetDictItem](item.Span, TargetShorthand{Name: di.Name}))
		case KeyVal:
			val, err := ExprToTarget(di.Val, assignSpan)
			if err != nil {
				return nil, err
			}
			out = append(out, span.New[TargetDictItem](item.Span, TargetPair{Key: di.Key, Val: val}))
		case SpreadItem:
			inner, err := ExprToTarget(di.Value, assignSpan)
			if err != nil {
				return nil, err
			}
			out = append(out, span.New[TargetDictItem](item.Span, TargetDictSpread{Target: inner}))
		default:
			return nil, &RewriteError{AssignSpan: assignSpan, Reason: "unrecognized dict display item"}
		}
	}
	return out, nil
}

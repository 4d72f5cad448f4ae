package ast

import "kismet/internal/span"

// Atom is a terminal expression form: an identifier, a literal, or a
// parenthesised/bracketed display. Atom is the tightest-binding
// precedence level (§4.3 level 15).
type Atom interface {
	atomNode()
}

// Id is a bare identifier reference.
type Id struct {
	Name string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

// BoolLit is the true/false literal.
type BoolLit struct {
	Value bool
}

// NullLit is the null literal.
type NullLit struct{}

// Paren is a single parenthesised expression, e.g. "(x)". Distinct
// from Tuple: a Tuple always has an explicit comma (or is empty).
type Paren struct {
	Item span.Node[Expr]
}

// Tuple is a comma-separated, parenthesised sequence: "(a, b)".
type Tuple struct {
	Items []span.Node[Expr]
}

// ListDisplay is a bracketed sequence: "[a, b]".
type ListDisplay struct {
	Items []span.Node[Expr]
}

// DictDisplay is a braced sequence of dict items: "{a, b: c, ...d}".
type DictDisplay struct {
	Items []span.Node[DictItem]
}

func (Id) atomNode()          {}
func (IntLit) atomNode()      {}
func (FloatLit) atomNode()    {}
func (StringLit) atomNode()   {}
func (BoolLit) atomNode()     {}
func (NullLit) atomNode()     {}
func (Paren) atomNode()       {}
func (Tuple) atomNode()       {}
func (ListDisplay) atomNode() {}
func (DictDisplay) atomNode() {}

// DictItem is one entry of a DictDisplay: a bare name shared with an
// outer binding, an explicit key/value pair, or a spread of another
// mapping.
type DictItem interface {
	dictItemNode()
}

// Shorthand is a bare name inside a dict display ("{x}" meaning
// "{x: x}").
type Shorthand struct {
	Name string
}

// KeyVal is an explicit "key: value" dict entry. The key is always a
// bare identifier, never itself rewritten (§4.5).
type KeyVal struct {
	Key string
	Val span.Node[Expr]
}

// SpreadItem is a "...expr" entry inside a dict display. Spreads inside
// list and tuple displays are the Spread expression instead.
type SpreadItem struct {
	Value span.Node[Expr]
}

func (Shorthand) dictItemNode()  {}
func (KeyVal) dictItemNode()     {}
func (SpreadItem) dictItemNode() {}

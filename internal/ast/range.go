package ast

import "kismet/internal/span"

// RangeKind distinguishes the six shapes r_expr can produce (§4.3).
type RangeKind int

const (
	RangeBounded    RangeKind = iota // a..b
	RangeBoundedI                    // a..=b
	RangeFrom                        // a..
	RangeTo                          // ..b
	RangeToI                         // ..=b
	RangeFull                        // ..
)

// Range is the AST shape for all six range forms. Start and/or End are
// nil according to Kind.
type Range struct {
	Kind  RangeKind
	Start *span.Node[Expr]
	End   *span.Node[Expr]
}

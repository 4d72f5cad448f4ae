package ast

import "kismet/internal/span"

// Primary is the left-associative postfix chain built over an Atom:
// attribute access, subscription, and call (§4.4).
type Primary interface {
	primaryNode()
}

// AtomPrimary lifts a bare Atom into the Primary chain; it is the base
// case every Attribute/Subscription/Call folds over.
type AtomPrimary struct {
	Atom span.Node[Atom]
}

// Attribute is "receiver.name".
type Attribute struct {
	Receiver span.Node[Primary]
	Name     string
}

// Subscription is "receiver[index, ...]".
type Subscription struct {
	Receiver span.Node[Primary]
	Index    []span.Node[Expr]
}

// Call is "receiver(args...)".
type Call struct {
	Receiver span.Node[Primary]
	Args     []span.Node[Expr]
}

func (AtomPrimary) primaryNode()   {}
func (Attribute) primaryNode()     {}
func (Subscription) primaryNode()  {}
func (Call) primaryNode()          {}

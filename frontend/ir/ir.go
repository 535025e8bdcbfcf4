// Package ir carries the identity information the parser and binder attach to
// declarations. The type core stores these values but never interprets them:
// annotation expressions stay opaque, and a Declaration is compared by pointer
// identity only.
package ir

import (
	"fmt"
	"go/token"
)

// Positioner allows finding the location in the original source file.
type Positioner interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Range represents a range of positions in the source code.
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

// Pos returns the starting position of the range.
func (r Range) Pos() token.Pos { return r.PosStart }

// End returns the ending position of the range.
func (r Range) End() token.Pos { return r.PosEnd }

func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%v", r.PosStart)
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// RangeOf creates a Range from a Positioner.
func RangeOf(p Positioner) Range {
	if p == nil {
		return Range{}
	}
	if asRange, ok := p.(Range); ok {
		return asRange
	}
	return Range{p.Pos(), p.End()}
}

// Node is an opaque syntax node. Parameter and return annotations reach the
// type core as Nodes; only the binder ever looks inside them.
type Node interface {
	Positioner
}

// DeclarationKind distinguishes what sort of source construct a Declaration
// points at.
type DeclarationKind int

const (
	DeclarationKindClass DeclarationKind = iota
	DeclarationKindFunction
	DeclarationKindVariable
	DeclarationKindParameter
	DeclarationKindAlias
)

// Declaration identifies the source construct a type originates from.
// Two types share an origin exactly when they hold the same *Declaration.
type Declaration struct {
	Kind       DeclarationKind
	Node       Node
	ModuleName string
	Path       string
	Range      Range
}

func (d *Declaration) String() string {
	if d == nil {
		return "<no declaration>"
	}
	return fmt.Sprintf("%s@%s", d.ModuleName, d.Range)
}

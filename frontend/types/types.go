// Package types is the canonical in-memory model for every type the checker
// reasons about, together with the algebra that combines, compares and
// specializes those types.
//
// All variants follow the same sharing discipline: a details record may be
// referenced by many outer values at once and is logically immutable once
// published. Operations that change a facet clone the outer value (and, when
// the facet lives in the details record, the record itself) rather than
// mutating in place.
package types

import "fmt"

// TypeVarScopeID identifies the generic scope that owns a type variable.
// Scope ids are handed to the core by the binder.
type TypeVarScopeID string

// Type is the closed union over all type variants. The unexported methods
// keep the union closed: every variant embeds typeBase.
type Type interface {
	fmt.Stringer
	Category() Category
	Flags() TypeFlags
	AliasInfo() *AliasInfo

	// shallowCopy clones the outer value only; details records stay shared.
	shallowCopy() Type
	setAliasInfo(*AliasInfo)
	addFlags(TypeFlags)
}

// AliasInfo records that a value is a named alias for another type, keeping
// the alias's identity for display without changing the aliased type.
type AliasInfo struct {
	Name           string
	FullName       string
	TypeParameters []*TypeVarType
	TypeArguments  []Type
	TypeVarScopeID TypeVarScopeID
}

// typeBase is the common header every variant embeds.
type typeBase struct {
	category  Category
	flags     TypeFlags
	aliasInfo *AliasInfo
}

func (b *typeBase) Category() Category    { return b.category }
func (b *typeBase) Flags() TypeFlags      { return b.flags }
func (b *typeBase) AliasInfo() *AliasInfo { return b.aliasInfo }

// WithAliasInfo returns a copy of t carrying the given alias identity.
func WithAliasInfo(t Type, info *AliasInfo) Type {
	copied := t.shallowCopy()
	copied.setAliasInfo(info)
	return copied
}

func (b *typeBase) setAliasInfo(info *AliasInfo) { b.aliasInfo = info }

// WithAnnotatedFlag returns a copy of t marked as wrapped by an
// auxiliary-metadata annotation.
func WithAnnotatedFlag(t Type) Type {
	if t.Flags()&FlagAnnotated != 0 {
		return t
	}
	copied := t.shallowCopy()
	copied.addFlags(FlagAnnotated)
	return copied
}

func (b *typeBase) addFlags(flags TypeFlags) { b.flags |= flags }

// CanBeInstantiated reports whether t may occupy a type-annotation position.
func CanBeInstantiated(t Type) bool { return t.Flags()&FlagInstantiable != 0 }

// CanBeInstance reports whether t may occupy a value position.
func CanBeInstance(t Type) bool { return t.Flags()&FlagInstance != 0 }

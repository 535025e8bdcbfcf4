package types

import (
	"github.com/pkg/errors"
)

// TypeVarDetails is the per-declaration record shared by every scoped clone
// of one type variable.
type TypeVarDetails struct {
	Name        string
	Constraints []Type
	BoundType   Type
	Variance    Variance

	// IsParamSpec marks a variable standing for an entire parameter list
	IsParamSpec bool
	// IsVariadic marks a variable standing for an ordered sequence of types
	IsVariadic bool

	IsSynthesized    bool
	SynthesizedIndex int // -1 when not synthesized with an index

	// set when the variable stands in for a recursive type alias while the
	// alias's body is still being evaluated
	RecursiveTypeAliasName    string
	RecursiveTypeAliasScopeID TypeVarScopeID
	RecursiveTypeParameters   []*TypeVarType
}

// TypeVarType is a generic type variable.
type TypeVarType struct {
	typeBase
	details *TypeVarDetails

	// scopeID binds the variable to the generic scope solving it; without it,
	// two same-named variables from different scopes are indistinguishable
	scopeID       TypeVarScopeID
	scopeName     string
	nameWithScope string

	// isVariadicUnpacked marks a variadic variable in unpacked position
	isVariadicUnpacked bool
}

// NewTypeVar creates an instantiable type variable.
func NewTypeVar(name string) *TypeVarType {
	return newTypeVar(name, FlagInstantiable)
}

// NewTypeVarInstance creates a type variable usable as a value.
func NewTypeVarInstance(name string) *TypeVarType {
	return newTypeVar(name, FlagInstance)
}

func newTypeVar(name string, typeFlags TypeFlags) *TypeVarType {
	return &TypeVarType{
		typeBase: typeBase{category: CategoryTypeVar, flags: typeFlags},
		details: &TypeVarDetails{
			Name:             name,
			SynthesizedIndex: -1,
		},
	}
}

func (t *TypeVarType) Details() *TypeVarDetails { return t.details }
func (t *TypeVarType) ScopeID() TypeVarScopeID  { return t.scopeID }
func (t *TypeVarType) ScopeName() string        { return t.scopeName }
func (t *TypeVarType) IsVariadicUnpacked() bool { return t.isVariadicUnpacked }

// NameWithScope is the cache key "<name>.<scopeId>" once the variable is
// scoped, and the bare name before that. The bare-name fallback is
// intentionally imprecise; it only exists for display of unscoped variables.
func (t *TypeVarType) NameWithScope() string {
	if t.nameWithScope != "" {
		return t.nameWithScope
	}
	return t.details.Name
}

func makeNameWithScope(name string, scopeID TypeVarScopeID) string {
	return name + "." + string(scopeID)
}

func (t *TypeVarType) shallowCopy() Type {
	copied := *t
	return &copied
}

// CloneAsInvariant strips variance, bound and constraints, yielding the
// variable's shape without its solving constraints. Parameter specifications
// and variadics pass through unchanged, as does a variable that is already
// invariant and unconstrained.
func (t *TypeVarType) CloneAsInvariant() *TypeVarType {
	if t.details.IsParamSpec || t.details.IsVariadic {
		return t
	}
	if t.details.Variance == VarianceInvariant && t.details.BoundType == nil && len(t.details.Constraints) == 0 {
		return t
	}
	copied := *t
	details := *t.details
	details.Variance = VarianceInvariant
	details.BoundType = nil
	details.Constraints = nil
	copied.details = &details
	return &copied
}

// CloneForScopeID binds the variable to the generic scope in which it is
// being solved.
func (t *TypeVarType) CloneForScopeID(scopeID TypeVarScopeID, scopeName string) *TypeVarType {
	copied := *t
	copied.scopeID = scopeID
	copied.scopeName = scopeName
	copied.nameWithScope = makeNameWithScope(t.details.Name, scopeID)
	return &copied
}

// CloneForUnpacked marks a variadic variable as appearing in unpacked
// position. Unpacking a non-variadic variable is a caller defect.
func (t *TypeVarType) CloneForUnpacked() *TypeVarType {
	if !t.details.IsVariadic {
		panic(errors.Errorf("unpacking non-variadic type variable %s", t.details.Name))
	}
	copied := *t
	copied.isVariadicUnpacked = true
	return &copied
}

// CloneForPacked undoes CloneForUnpacked.
func (t *TypeVarType) CloneForPacked() *TypeVarType {
	if !t.details.IsVariadic {
		panic(errors.Errorf("packing non-variadic type variable %s", t.details.Name))
	}
	copied := *t
	copied.isVariadicUnpacked = false
	return &copied
}

func (t *TypeVarType) String() string {
	if t.details.IsVariadic && t.isVariadicUnpacked {
		return "*" + t.details.Name
	}
	return t.details.Name
}

// isUnpackedVariadic reports whether t is a variadic type variable in
// unpacked position; such a member may not degenerate out of a union.
func isUnpackedVariadic(t Type) bool {
	tv, ok := t.(*TypeVarType)
	return ok && tv.details.IsVariadic && tv.isVariadicUnpacked
}

package types

import (
	"sort"

	"github.com/tapir-lang/tapir/internal/log"
	"github.com/tapir-lang/tapir/util"
)

var logger = log.For("types")

// ConstrainedType pairs a union member candidate with the constraint set
// conditioning its applicability. Nil constraints mean unconditional.
type ConstrainedType struct {
	Type        Type
	Constraints SubtypeConstraints
}

// UnionType is an ordered sequence of non-union, non-Never subtypes, with an
// optional index-aligned constraint-set array and two fast-path maps that
// keep membership tests over large literal unions near-linear.
type UnionType struct {
	typeBase
	subtypes []Type
	// constraints is nil until any member carries a constraint set; once
	// present it stays index-aligned with subtypes
	constraints []SubtypeConstraints

	literalStrMap map[StrLiteral]Type
	literalIntMap map[IntLiteral]Type
}

func newUnion() *UnionType {
	return &UnionType{
		typeBase: typeBase{category: CategoryUnion, flags: FlagInstantiable | FlagInstance},
	}
}

func (u *UnionType) Subtypes() []Type { return u.subtypes }

// ConstraintsFor returns the constraint set of the i-th member, or nil when
// the member is unconditional.
func (u *UnionType) ConstraintsFor(i int) SubtypeConstraints {
	if u.constraints == nil {
		return nil
	}
	return u.constraints[i]
}

func (u *UnionType) shallowCopy() Type {
	copied := *u
	return &copied
}

func (u *UnionType) String() string {
	return util.JoinString(u.subtypes, " | ")
}

// literalStrOf extracts the fast-path map key from a builtin str literal
// instance.
func literalStrOf(t Type) (StrLiteral, bool) {
	obj, ok := t.(*ObjectType)
	if !ok || !IsBuiltIn(obj.classType, "str") {
		return "", false
	}
	value, ok := obj.classType.literalValue.(StrLiteral)
	return value, ok
}

func literalIntOf(t Type) (IntLiteral, bool) {
	obj, ok := t.(*ObjectType)
	if !ok || !IsBuiltIn(obj.classType, "int") {
		return 0, false
	}
	value, ok := obj.classType.literalValue.(IntLiteral)
	return value, ok
}

// ContainsType reports whether t already appears as a member, consulting the
// literal fast-path maps before falling back to a structural scan.
func (u *UnionType) ContainsType(t Type, recursionCount int) bool {
	if key, ok := literalStrOf(t); ok && u.literalStrMap != nil {
		_, found := u.literalStrMap[key]
		return found
	}
	if key, ok := literalIntOf(t); ok && u.literalIntMap != nil {
		_, found := u.literalIntMap[key]
		return found
	}
	for _, existing := range u.subtypes {
		if isTypeSame(existing, t, recursionCount+1) {
			return true
		}
	}
	return false
}

// CombineTypes combines unconditional types into one normalized type.
// maxSubtypeCount of 0 means uncapped.
func CombineTypes(subtypes []Type, maxSubtypeCount int) Type {
	entries := make([]ConstrainedType, len(subtypes))
	for i, t := range subtypes {
		entries[i] = ConstrainedType{Type: t}
	}
	return CombineConstrainedTypes(entries, maxSubtypeCount)
}

// CombineConstrainedTypes normalizes an ordered list of (type, constraints)
// pairs into a single type: Never members are dropped, nested unions are
// flattened with constraint composition, members are deduplicated, and
// degenerate unions collapse to their sole member.
func CombineConstrainedTypes(entries []ConstrainedType, maxSubtypeCount int) Type {
	// a bottom type contributes no reachable value; it must not pollute the
	// union
	filtered := make([]ConstrainedType, 0, len(entries))
	for _, entry := range entries {
		if !IsNever(entry.Type) {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == 0 {
		return Never
	}

	// a one-element union and its element are the same type
	if len(filtered) == 1 && filtered[0].Constraints == nil && !isUnpackedVariadic(filtered[0].Type) {
		return filtered[0].Type
	}

	// unions stay one level deep
	expanded := make([]ConstrainedType, 0, len(filtered))
	for _, entry := range filtered {
		expandUnionMembers(entry, &expanded)
	}

	// literal-valued members must follow their corresponding non-literal
	// member and empty containers must follow non-empty instances; the
	// uniqueness filter relies on this order to decide which of two
	// overlapping members survives
	sort.SliceStable(expanded, func(i, j int) bool {
		return unionSortWeight(expanded[i].Type) < unionSortWeight(expanded[j].Type)
	})

	// an empty union after normalization signals "no information"
	if len(expanded) == 0 {
		return Unknown
	}

	union := newUnion()
	hitMaxCount := false
	for i, entry := range expanded {
		if i == 0 {
			union.appendMember(entry.Type, entry.Constraints)
			continue
		}
		if maxSubtypeCount > 0 && len(union.subtypes) >= maxSubtypeCount {
			hitMaxCount = true
			break
		}
		union.addTypeIfUnique(entry.Type, entry.Constraints)
	}
	if hitMaxCount {
		logger.Debug("union exceeded max subtype count, collapsing to Any",
			"maxSubtypeCount", maxSubtypeCount, "candidates", len(expanded))
		return Any
	}

	if len(union.subtypes) == 1 && union.constraints == nil && !isUnpackedVariadic(union.subtypes[0]) {
		return union.subtypes[0]
	}
	return union
}

func expandUnionMembers(entry ConstrainedType, out *[]ConstrainedType) {
	if inner, ok := entry.Type.(*UnionType); ok {
		for i, sub := range inner.subtypes {
			expandUnionMembers(ConstrainedType{
				Type:        sub,
				Constraints: inner.ConstraintsFor(i).Combine(entry.Constraints),
			}, out)
		}
		return
	}
	*out = append(*out, entry)
}

func unionSortWeight(t Type) int {
	if obj, ok := t.(*ObjectType); ok {
		if obj.classType.literalValue != nil {
			return 2
		}
		if obj.classType.isEmptyContainer {
			return 1
		}
	}
	return 0
}

// appendMember appends unconditionally, keeping the constraint array and the
// literal fast-path maps in step.
func (u *UnionType) appendMember(t Type, constraints SubtypeConstraints) {
	u.subtypes = append(u.subtypes, t)
	if constraints != nil && u.constraints == nil {
		u.constraints = make([]SubtypeConstraints, len(u.subtypes)-1)
	}
	if u.constraints != nil {
		u.constraints = append(u.constraints, constraints)
	}
	if constraints != nil {
		return
	}
	if key, ok := literalStrOf(t); ok {
		if u.literalStrMap == nil {
			u.literalStrMap = make(map[StrLiteral]Type)
		}
		u.literalStrMap[key] = t
	} else if key, ok := literalIntOf(t); ok {
		if u.literalIntMap == nil {
			u.literalIntMap = make(map[IntLiteral]Type)
		}
		u.literalIntMap[key] = t
	}
}

// addTypeIfUnique appends t unless an existing member with the same
// constraint set already covers it.
func (u *UnionType) addTypeIfUnique(t Type, constraints SubtypeConstraints) {
	// a literal value already present in the fast-path map is a guaranteed
	// duplicate; no scan needed
	if constraints == nil {
		if key, ok := literalStrOf(t); ok && u.literalStrMap != nil {
			if _, found := u.literalStrMap[key]; found {
				return
			}
		}
		if key, ok := literalIntOf(t); ok && u.literalIntMap != nil {
			if _, found := u.literalIntMap[key]; found {
				return
			}
		}
	}

	candidate, _ := t.(*ObjectType)

	for i, existing := range u.subtypes {
		if !u.ConstraintsFor(i).Equals(constraints) {
			continue
		}
		if isTypeSame(existing, t, 0) {
			return
		}

		if candidate != nil && candidate.classType.literalValue != nil {
			// a broader type subsumes its literal
			stripped := NewObject(candidate.classType.CloneWithLiteral(nil))
			if isTypeSame(existing, stripped, 0) {
				return
			}

			// Literal[True] | Literal[False] normalizes to plain bool
			if value, ok := candidate.classType.literalValue.(BoolLiteral); ok {
				if existingObj, ok := existing.(*ObjectType); ok && IsBuiltIn(existingObj.classType, "bool") {
					if existingValue, ok := existingObj.classType.literalValue.(BoolLiteral); ok && existingValue != value {
						u.subtypes[i] = NewObject(existingObj.classType.CloneWithLiteral(nil))
						return
					}
				}
			}
		}

		// a concrete element type is strictly more informative than an
		// unknown-element empty instance of the same class
		if candidate != nil && candidate.classType.isEmptyContainer {
			if existingObj, ok := existing.(*ObjectType); ok && !existingObj.classType.isEmptyContainer &&
				IsSameGenericClass(existingObj.classType, candidate.classType) {
				return
			}
		}
	}

	u.appendMember(t, constraints)
}

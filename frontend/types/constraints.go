package types

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xtgo/set"
)

// SubtypeConstraint pins one arm of a constrained type variable: the member
// it is attached to only applies when the named variable resolved to its
// constraint at ConstraintIndex.
type SubtypeConstraint struct {
	TypeVarName     string
	ConstraintIndex int
}

func (c SubtypeConstraint) String() string {
	return c.TypeVarName + "#" + strconv.Itoa(c.ConstraintIndex)
}

// SubtypeConstraints is a canonically sorted, deduplicated set of pins.
// A nil value means unconstrained. Canonical ordering makes set equality a
// plain element-wise comparison.
type SubtypeConstraints []SubtypeConstraint

// sort.Interface over (TypeVarName, ConstraintIndex).
func (s SubtypeConstraints) Len() int      { return len(s) }
func (s SubtypeConstraints) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s SubtypeConstraints) Less(i, j int) bool {
	if s[i].TypeVarName != s[j].TypeVarName {
		return s[i].TypeVarName < s[j].TypeVarName
	}
	return s[i].ConstraintIndex < s[j].ConstraintIndex
}

// Combine unions two constraint sets. An absent set is the identity.
func (s SubtypeConstraints) Combine(other SubtypeConstraints) SubtypeConstraints {
	if s == nil {
		return other
	}
	if other == nil {
		return s
	}
	merged := make(SubtypeConstraints, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	sort.Sort(merged)
	return merged[:set.Uniq(merged)]
}

// IsCompatible reports whether the two sets could hold simultaneously: every
// type variable pinned in both must be pinned to the same constraint. A
// variable pinned in only one set is no conflict; the other context simply
// does not care.
func (s SubtypeConstraints) IsCompatible(other SubtypeConstraints) bool {
	for _, pin := range s {
		for _, otherPin := range other {
			if pin.TypeVarName == otherPin.TypeVarName && pin.ConstraintIndex != otherPin.ConstraintIndex {
				return false
			}
		}
	}
	return true
}

// Equals is element-wise equality; both sets are canonical.
func (s SubtypeConstraints) Equals(other SubtypeConstraints) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s SubtypeConstraints) String() string {
	if s == nil {
		return "<unconstrained>"
	}
	parts := make([]string, len(s))
	for i, pin := range s {
		parts[i] = pin.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

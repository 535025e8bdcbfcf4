package types

// RemoveFromUnion filters union members matching remove and recombines what
// is left. Non-union types pass through untouched; a union whose members are
// all removed collapses to Never.
func RemoveFromUnion(t Type, remove func(Type) bool) Type {
	union, ok := t.(*UnionType)
	if !ok {
		return t
	}
	remaining := make([]ConstrainedType, 0, len(union.subtypes))
	for i, sub := range union.subtypes {
		if !remove(sub) {
			remaining = append(remaining, ConstrainedType{Type: sub, Constraints: union.ConstraintsFor(i)})
		}
	}
	if len(remaining) == len(union.subtypes) {
		return t
	}
	return CombineConstrainedTypes(remaining, 0)
}

func RemoveAnyFromUnion(t Type) Type {
	return RemoveFromUnion(t, func(sub Type) bool { return sub.Category() == CategoryAny })
}

func RemoveUnknownFromUnion(t Type) Type {
	return RemoveFromUnion(t, func(sub Type) bool { return sub.Category() == CategoryUnknown })
}

func RemoveUnboundFromUnion(t Type) Type {
	return RemoveFromUnion(t, IsUnbound)
}

func RemoveNoneFromUnion(t Type) Type {
	return RemoveFromUnion(t, IsNone)
}

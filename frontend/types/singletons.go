package types

// The five stateless variants are interned process-wide constants. They are
// immutable after package initialization, so identity comparison suffices and
// sharing them across goroutines is safe.

// UnboundType is the type of a name before any assignment binds it.
type UnboundType struct{ typeBase }

// UnknownType is the implicit form of Any produced when the checker has no
// information. Malformed annotations surface as Unknown members inside
// otherwise-normal types rather than as errors.
type UnknownType struct{ typeBase }

// AnyType is the explicit escape hatch from static checking.
type AnyType struct{ typeBase }

// NoneSingletonType is the type of the None value and the None annotation.
type NoneSingletonType struct{ typeBase }

// NeverType is the bottom type: no value can have it.
type NeverType struct{ typeBase }

const singletonFlags = FlagInstantiable | FlagInstance

var (
	Unbound Type = &UnboundType{typeBase{category: CategoryUnbound, flags: singletonFlags}}
	Unknown Type = &UnknownType{typeBase{category: CategoryUnknown, flags: singletonFlags}}
	Any     Type = &AnyType{typeBase{category: CategoryAny, flags: singletonFlags}}
	None    Type = &NoneSingletonType{typeBase{category: CategoryNone, flags: singletonFlags}}
	Never   Type = &NeverType{typeBase{category: CategoryNever, flags: singletonFlags}}
)

func (t *UnboundType) String() string       { return "Unbound" }
func (t *UnknownType) String() string       { return "Unknown" }
func (t *AnyType) String() string           { return "Any" }
func (t *NoneSingletonType) String() string { return "None" }
func (t *NeverType) String() string         { return "Never" }

func (t *UnboundType) shallowCopy() Type {
	copied := *t
	return &copied
}

func (t *UnknownType) shallowCopy() Type {
	copied := *t
	return &copied
}

func (t *AnyType) shallowCopy() Type {
	copied := *t
	return &copied
}

func (t *NoneSingletonType) shallowCopy() Type {
	copied := *t
	return &copied
}

func (t *NeverType) shallowCopy() Type {
	copied := *t
	return &copied
}

// IsAnyOrUnknown reports whether t conveys no usable type information.
func IsAnyOrUnknown(t Type) bool {
	return t.Category() == CategoryAny || t.Category() == CategoryUnknown
}

// IsNever reports whether t is the bottom type.
func IsNever(t Type) bool { return t.Category() == CategoryNever }

// IsNone reports whether t is the None singleton.
func IsNone(t Type) bool { return t.Category() == CategoryNone }

// IsUnbound reports whether t is the Unbound singleton.
func IsUnbound(t Type) bool { return t.Category() == CategoryUnbound }

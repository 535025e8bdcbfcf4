package types

// The builtin universe: class types for the handful of builtins the algebra
// itself has opinions about (bool collapse, literal fast paths, the implicit
// object base), plus the common container classes. Real programs replace
// these with classes built from parsed stubs; tests and the CLI use them
// directly. All are constructed once at startup and never mutated after.

const builtinsModule = "builtins"

var (
	ObjectClass *ClassType
	TypeClass   *ClassType
	IntClass    *ClassType
	FloatClass  *ClassType
	StrClass    *ClassType
	BoolClass   *ClassType
	ListClass   *ClassType
	DictClass   *ClassType
	TupleClass  *ClassType
	NoneClass   *ClassType
)

func init() {
	ObjectClass = newBuiltinClass("object", ClassBuiltIn|ClassSupportsAbstractMethods, nil)
	TypeClass = newBuiltinClass("type", ClassBuiltIn, ObjectClass)
	IntClass = newBuiltinClass("int", ClassBuiltIn, ObjectClass)
	FloatClass = newBuiltinClass("float", ClassBuiltIn, ObjectClass)
	StrClass = newBuiltinClass("str", ClassBuiltIn, ObjectClass)
	BoolClass = newBuiltinClass("bool", ClassBuiltIn, IntClass)
	ListClass = newGenericBuiltinClass("list", ClassBuiltIn, ObjectClass, "_T")
	DictClass = newGenericBuiltinClass("dict", ClassBuiltIn, ObjectClass, "_KT", "_VT")
	TupleClass = newGenericBuiltinClass("tuple", ClassBuiltIn|ClassTuple, ObjectClass, "_T_co")
	NoneClass = newBuiltinClass("NoneType", ClassBuiltIn, ObjectClass)
}

func newBuiltinClass(name string, flags ClassFlags, base *ClassType) *ClassType {
	c := NewClass(name, builtinsModule+"."+name, builtinsModule, "", flags)
	if base != nil {
		c.details.BaseClasses = []Type{base}
		c.details.MRO = append([]Type{c}, base.details.MRO...)
	} else {
		c.details.MRO = []Type{c}
	}
	return c
}

func newGenericBuiltinClass(name string, flags ClassFlags, base *ClassType, typeParamNames ...string) *ClassType {
	c := newBuiltinClass(name, flags, base)
	params := make([]*TypeVarType, len(typeParamNames))
	for i, paramName := range typeParamNames {
		param := NewTypeVar(paramName)
		param.details.IsSynthesized = true
		param.details.SynthesizedIndex = i
		params[i] = param.CloneForScopeID(TypeVarScopeID(c.details.FullName), c.details.Name)
	}
	c.details.TypeParameters = params
	return c
}

// BuiltinClasses lists the builtin universe in a stable order.
func BuiltinClasses() []*ClassType {
	return []*ClassType{
		ObjectClass, TypeClass, IntClass, FloatClass, StrClass,
		BoolClass, ListClass, DictClass, TupleClass, NoneClass,
	}
}

// NewIntLiteral is the instance type Literal[value] for a builtin int.
func NewIntLiteral(value int64) Type {
	return NewObject(IntClass.CloneWithLiteral(IntLiteral(value)))
}

// NewStrLiteral is the instance type Literal[value] for a builtin str.
func NewStrLiteral(value string) Type {
	return NewObject(StrClass.CloneWithLiteral(StrLiteral(value)))
}

// NewBoolLiteral is Literal[True] or Literal[False].
func NewBoolLiteral(value bool) Type {
	return NewObject(BoolClass.CloneWithLiteral(BoolLiteral(value)))
}

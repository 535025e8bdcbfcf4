package types

// Category discriminates the closed set of type variants.
type Category int

const (
	CategoryUnbound Category = iota
	CategoryUnknown
	CategoryAny
	CategoryNone
	CategoryNever
	CategoryFunction
	CategoryOverloaded
	CategoryClass
	CategoryObject
	CategoryModule
	CategoryUnion
	CategoryTypeVar
)

func (c Category) String() string {
	switch c {
	case CategoryUnbound:
		return "Unbound"
	case CategoryUnknown:
		return "Unknown"
	case CategoryAny:
		return "Any"
	case CategoryNone:
		return "None"
	case CategoryNever:
		return "Never"
	case CategoryFunction:
		return "Function"
	case CategoryOverloaded:
		return "OverloadedFunction"
	case CategoryClass:
		return "Class"
	case CategoryObject:
		return "Object"
	case CategoryModule:
		return "Module"
	case CategoryUnion:
		return "Union"
	case CategoryTypeVar:
		return "TypeVar"
	}
	return "<invalid category>"
}

// TypeFlags records which syntactic positions a type may occupy.
type TypeFlags uint8

const (
	// FlagInstantiable marks a type usable in a type annotation position.
	FlagInstantiable TypeFlags = 1 << iota
	// FlagInstance marks a type usable in a value position.
	FlagInstance
	// FlagAnnotated marks a type wrapped by an auxiliary-metadata annotation.
	FlagAnnotated
)

// ClassFlags are independent facets of a class declaration. Consumers often
// test several at once through a combined mask, so each facet stays a bit.
type ClassFlags uint32

const (
	ClassBuiltIn ClassFlags = 1 << iota
	ClassSpecialForm
	ClassDataClass
	ClassFrozenDataClass
	ClassSynthesizeDataClassEq
	ClassSynthesizeDataClassOrder
	ClassSkipSynthesizedInit
	ClassTypedDict
	ClassCanOmitDictValues
	ClassSupportsAbstractMethods
	ClassHasAbstractMethods
	ClassProperty
	ClassFinal
	ClassProtocol
	ClassPseudoGeneric
	ClassRuntimeCheckable
	ClassPartiallyConstructed
	ClassHasCustomClassGetItem
	ClassTuple
	ClassEnum
)

// FunctionFlags are independent facets of a callable declaration.
type FunctionFlags uint32

const (
	FunctionConstructorMethod FunctionFlags = 1 << iota
	FunctionClassMethod
	FunctionStaticMethod
	FunctionAbstractMethod
	FunctionGenerator
	FunctionDisableDefaultChecks
	FunctionSynthesizedMethod
	FunctionOverloaded
	FunctionAsync
	FunctionWrapReturnTypeInAwait
	FunctionStubDefinition
	FunctionPyTypedDefinition
	FunctionFinal
	FunctionUnannotatedParams
	FunctionSkipParamCompatCheck
	FunctionParamSpecValue
)

// ParamCategory distinguishes ordinary parameters from the two variadic forms.
type ParamCategory int

const (
	ParamSimple ParamCategory = iota
	ParamVarArgList
	ParamVarArgDictionary
)

// Variance of a type variable.
type Variance int

const (
	VarianceInvariant Variance = iota
	VarianceCovariant
	VarianceContravariant
)

func (v Variance) String() string {
	switch v {
	case VarianceCovariant:
		return "covariant"
	case VarianceContravariant:
		return "contravariant"
	}
	return "invariant"
}

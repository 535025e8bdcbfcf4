package types

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tapir-lang/tapir/frontend/ir"
)

// FuncParam is one declared parameter of a callable.
type FuncParam struct {
	Category ParamCategory
	Name     string
	// IsNameSynthesized marks parameters the checker invented (the implicit
	// receiver of a synthesized method, param-spec placeholders and the like)
	IsNameSynthesized bool
	HasDefault        bool
	DefaultExpr       ir.Node
	HasDeclaredType   bool
	// TypeAnnotation is the annotation expression as written; the core
	// carries it for the binder but never interprets it
	TypeAnnotation ir.Node
	Type           Type
}

// FunctionDetails is the per-declaration record shared by all clones of one
// callable.
type FunctionDetails struct {
	Name               string
	FullName           string
	ModuleName         string
	Flags              FunctionFlags
	Parameters         []FuncParam
	DeclaredReturnType Type
	Declaration        *ir.Declaration
	TypeVarScopeID     TypeVarScopeID
	BuiltInName        string
	DocString          string
	// ParamSpec is the trailing parameter-specification placeholder, when the
	// callable was declared over one
	ParamSpec *TypeVarType
}

// HasFlags reports whether every bit of mask is set.
func (d *FunctionDetails) HasFlags(mask FunctionFlags) bool { return d.Flags&mask == mask }

// HasAnyFlags reports whether at least one bit of mask is set.
func (d *FunctionDetails) HasAnyFlags(mask FunctionFlags) bool { return d.Flags&mask != 0 }

// SpecializedFunctionTypes overlays concrete parameter and return types over
// a generic declaration without mutating it.
type SpecializedFunctionTypes struct {
	ParameterTypes []Type
	ReturnType     Type
}

// ParamSpecEntry is one concrete parameter a parameter-specification resolves
// to.
type ParamSpecEntry struct {
	Category   ParamCategory
	Name       string
	HasDefault bool
	Type       Type
}

// FunctionType models one callable signature.
type FunctionType struct {
	typeBase
	details *FunctionDetails

	// specializedTypes, when present, is congruent with details.Parameters
	specializedTypes *SpecializedFunctionTypes

	// inferredReturnType caches the return type inference computed lazily
	// when no return annotation was declared
	inferredReturnType Type

	// set on bound methods
	strippedFirstParamType Type
	boundToType            Type
	boundTypeVarScopeID    TypeVarScopeID
}

// NewFunction creates an instantiable (unbound) callable.
func NewFunction(name, fullName, moduleName string, flags FunctionFlags) *FunctionType {
	return newFunction(name, fullName, moduleName, flags, FlagInstantiable)
}

// NewFunctionInstance creates a callable usable as a value, such as a lambda
// or a bound method.
func NewFunctionInstance(name, fullName, moduleName string, flags FunctionFlags) *FunctionType {
	return newFunction(name, fullName, moduleName, flags, FlagInstance)
}

func newFunction(name, fullName, moduleName string, flags FunctionFlags, typeFlags TypeFlags) *FunctionType {
	return &FunctionType{
		typeBase: typeBase{category: CategoryFunction, flags: typeFlags},
		details: &FunctionDetails{
			Name:       name,
			FullName:   fullName,
			ModuleName: moduleName,
			Flags:      flags,
		},
	}
}

func (f *FunctionType) Details() *FunctionDetails                   { return f.details }
func (f *FunctionType) SpecializedTypes() *SpecializedFunctionTypes { return f.specializedTypes }
func (f *FunctionType) StrippedFirstParamType() Type                { return f.strippedFirstParamType }
func (f *FunctionType) BoundToType() Type                           { return f.boundToType }
func (f *FunctionType) BoundTypeVarScopeID() TypeVarScopeID         { return f.boundTypeVarScopeID }

// AddParameter appends a declared parameter. Only legal before the function
// value is published.
func (f *FunctionType) AddParameter(param FuncParam) {
	f.details.Parameters = append(f.details.Parameters, param)
}

// SetInferredReturnType records the lazily computed return type for a
// function with no declared annotation.
func (f *FunctionType) SetInferredReturnType(t Type) { f.inferredReturnType = t }

func (f *FunctionType) shallowCopy() Type {
	copied := *f
	return &copied
}

func (f *FunctionType) cloneWithDetailsCopy() *FunctionType {
	copied := *f
	details := *f.details
	details.Parameters = append([]FuncParam(nil), f.details.Parameters...)
	copied.details = &details
	return &copied
}

// Clone deep-copies the declaration record, optionally turning a method into
// its bound form. Stripping the first parameter records that parameter's
// effective type (unless the parameter was synthesized), demotes
// constructor/classmethod flags to static since a bound method is no longer
// receiver-polymorphic, and shifts any specialization overlay by one slot.
func (f *FunctionType) Clone(stripFirstParam bool, boundTo Type, boundScopeID TypeVarScopeID) *FunctionType {
	copied := f.cloneWithDetailsCopy()

	if stripFirstParam {
		if len(f.details.Parameters) == 0 {
			panic(errors.Errorf("stripping first parameter of zero-parameter function %s", f.details.FullName))
		}
		if !f.details.Parameters[0].IsNameSynthesized {
			copied.strippedFirstParamType = f.EffectiveParameterType(0)
		}
		copied.details.Parameters = copied.details.Parameters[1:]

		if copied.details.HasAnyFlags(FunctionConstructorMethod | FunctionClassMethod) {
			copied.details.Flags &^= FunctionConstructorMethod | FunctionClassMethod
			copied.details.Flags |= FunctionStaticMethod
		}

		if f.specializedTypes != nil {
			copied.specializedTypes = &SpecializedFunctionTypes{
				ParameterTypes: f.specializedTypes.ParameterTypes[1:],
				ReturnType:     f.specializedTypes.ReturnType,
			}
		}
	}

	copied.boundToType = boundTo
	copied.boundTypeVarScopeID = boundScopeID
	return copied
}

// CloneForSpecialization attaches a concrete parameter/return overlay without
// touching the shared declaration record.
func (f *FunctionType) CloneForSpecialization(specialized *SpecializedFunctionTypes) *FunctionType {
	if len(specialized.ParameterTypes) != len(f.details.Parameters) {
		panic(errors.Errorf(
			"specialization overlay of %d parameter types for %d-parameter function %s",
			len(specialized.ParameterTypes), len(f.details.Parameters), f.details.FullName))
	}
	copied := *f
	copied.specializedTypes = specialized
	return &copied
}

// CloneWithNewFlags replaces the declaration flag set. Flags live in the
// shared details record, so this clones the record too.
func (f *FunctionType) CloneWithNewFlags(flags FunctionFlags) *FunctionType {
	copied := f.cloneWithDetailsCopy()
	copied.details.Flags = flags
	return copied
}

// CloneForParamSpec substitutes the trailing parameter-specification
// placeholder for another one.
func (f *FunctionType) CloneForParamSpec(paramSpec *TypeVarType) *FunctionType {
	if paramSpec != nil && !paramSpec.details.IsParamSpec {
		panic(errors.Errorf("substituting non-param-spec type variable %s as param spec", paramSpec.details.Name))
	}
	copied := f.cloneWithDetailsCopy()
	copied.details.ParamSpec = paramSpec
	return copied
}

// CloneForParamSpecApplication expands the parameter-specification
// placeholder into the concrete parameter list it resolved to. The two
// synthesized variadic parameters standing in for the placeholder are
// removed before the resolved parameters are spliced in.
func (f *FunctionType) CloneForParamSpecApplication(entries []ParamSpecEntry) *FunctionType {
	if len(f.details.Parameters) < 2 {
		panic(errors.Errorf("applying param spec to function %s with no placeholder parameters", f.details.FullName))
	}
	copied := f.cloneWithDetailsCopy()
	copied.details.Parameters = copied.details.Parameters[:len(copied.details.Parameters)-2]
	for _, entry := range entries {
		copied.details.Parameters = append(copied.details.Parameters, FuncParam{
			Category:        entry.Category,
			Name:            entry.Name,
			HasDefault:      entry.HasDefault,
			HasDeclaredType: true,
			Type:            entry.Type,
		})
	}
	copied.details.ParamSpec = nil
	return copied
}

// EffectiveParameterType is the single source of truth for a parameter's
// type: the specialization overlay when present, the declared type otherwise.
func (f *FunctionType) EffectiveParameterType(index int) Type {
	if index < 0 || index >= len(f.details.Parameters) {
		panic(errors.Errorf("parameter index %d out of range for function %s", index, f.details.FullName))
	}
	if f.specializedTypes != nil {
		return f.specializedTypes.ParameterTypes[index]
	}
	return f.details.Parameters[index].Type
}

// EffectiveReturnType prefers the specialization overlay, then the declared
// annotation, then the lazily inferred return type.
func (f *FunctionType) EffectiveReturnType() Type {
	if f.specializedTypes != nil && f.specializedTypes.ReturnType != nil {
		return f.specializedTypes.ReturnType
	}
	if f.details.DeclaredReturnType != nil {
		return f.details.DeclaredReturnType
	}
	return f.inferredReturnType
}

// declaredOrSpecializedReturnType ignores the inferred type; equivalence
// checks only look at what the declaration and its overlays state.
func (f *FunctionType) declaredOrSpecializedReturnType() Type {
	if f.specializedTypes != nil && f.specializedTypes.ReturnType != nil {
		return f.specializedTypes.ReturnType
	}
	return f.details.DeclaredReturnType
}

func (f *FunctionType) String() string {
	sb := strings.Builder{}
	sb.WriteString("(")
	for i, param := range f.details.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch param.Category {
		case ParamVarArgList:
			sb.WriteString("*")
		case ParamVarArgDictionary:
			sb.WriteString("**")
		}
		sb.WriteString(param.Name)
		if t := f.EffectiveParameterType(i); t != nil {
			sb.WriteString(": ")
			sb.WriteString(t.String())
		}
	}
	sb.WriteString(") -> ")
	if ret := f.EffectiveReturnType(); ret != nil {
		sb.WriteString(ret.String())
	} else {
		sb.WriteString("Unknown")
	}
	return sb.String()
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tapir-lang/tapir/frontend/ir"
	"github.com/tapir-lang/tapir/frontend/symbols"
)

func TestIsTypeSameReflexive(t *testing.T) {
	scoped := NewTypeVar("_T").CloneForScopeID("app.f", "f")
	testCases := []struct {
		name string
		t    Type
	}{
		{"unbound", Unbound},
		{"unknown", Unknown},
		{"any", Any},
		{"none", None},
		{"never", Never},
		{"class", IntClass},
		{"object", NewObject(StrClass)},
		{"literal", NewIntLiteral(1)},
		{"specialized class", ListClass.CloneForSpecialization([]Type{NewObject(IntClass)}, true, SpecializeOpts{})},
		{"type variable", scoped},
		{"union", CombineTypes([]Type{NewObject(IntClass), NewObject(StrClass)}, 0)},
		{"module", NewModule("app", nil, nil)},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.True(t, IsTypeSame(testCase.t, testCase.t))
		})
	}
}

func TestIsTypeSameCategoryMismatch(t *testing.T) {
	assert.False(t, IsTypeSame(Any, Unknown))
	assert.False(t, IsTypeSame(None, Never))
	assert.False(t, IsTypeSame(IntClass, NewObject(IntClass)))
}

func TestIsTypeSameSingletonsCompareByCategory(t *testing.T) {
	assert.True(t, IsTypeSame(Any, Any.shallowCopy()))
	assert.True(t, IsTypeSame(None, None.shallowCopy()))
}

func TestIsTypeSameClassVersusObject(t *testing.T) {
	// the class reference and its instance are different categories even
	// though they wrap the same declaration
	classRef := IntClass
	instance := NewObject(IntClass)
	assert.False(t, IsTypeSame(classRef, instance))
	assert.True(t, IsTypeSame(instance, NewObject(IntClass)))
}

func TestIsTypeSameImplicitAnyArguments(t *testing.T) {
	// a missing type argument compares equal to an explicit Any
	explicit := ListClass.CloneForSpecialization([]Type{Any}, true, SpecializeOpts{})
	assert.True(t, IsTypeSame(ListClass, explicit))

	concrete := ListClass.CloneForSpecialization([]Type{NewObject(IntClass)}, true, SpecializeOpts{})
	assert.False(t, IsTypeSame(ListClass, concrete))
}

func TestIsTypeSameTupleArguments(t *testing.T) {
	pair := TupleClass.CloneForSpecialization(nil, true, SpecializeOpts{
		TupleTypeArguments: []Type{NewObject(IntClass), NewObject(StrClass)},
	})
	samePair := TupleClass.CloneForSpecialization(nil, true, SpecializeOpts{
		TupleTypeArguments: []Type{NewObject(IntClass), NewObject(StrClass)},
	})
	triple := TupleClass.CloneForSpecialization(nil, true, SpecializeOpts{
		TupleTypeArguments: []Type{NewObject(IntClass), NewObject(StrClass), NewObject(IntClass)},
	})
	assert.True(t, IsTypeSame(pair, samePair))
	// tuple arity is part of identity, unlike ordinary argument lists
	assert.False(t, IsTypeSame(pair, triple))
}

func TestIsTypeSameLiterals(t *testing.T) {
	assert.True(t, IsTypeSame(NewIntLiteral(3), NewIntLiteral(3)))
	assert.False(t, IsTypeSame(NewIntLiteral(3), NewIntLiteral(4)))
	assert.False(t, IsTypeSame(NewIntLiteral(3), NewObject(IntClass)))
	assert.False(t, IsTypeSame(NewObject(IntClass), NewIntLiteral(3)))
}

func TestIsTypeSameFunctions(t *testing.T) {
	makeFunc := func(declaredReturn Type) *FunctionType {
		f := NewFunction("greet", "app.greet", "app", 0)
		f.AddParameter(FuncParam{Category: ParamSimple, Name: "name", HasDeclaredType: true, Type: NewObject(StrClass)})
		f.details.DeclaredReturnType = declaredReturn
		return f
	}

	a := makeFunc(NewObject(StrClass))
	b := makeFunc(NewObject(StrClass))
	// structurally identical signatures from different declarations differ
	assert.False(t, IsTypeSame(a, b))

	decl := &ir.Declaration{Kind: ir.DeclarationKindFunction, ModuleName: "app"}
	a.details.Declaration = decl
	b.details.Declaration = decl
	assert.True(t, IsTypeSame(a, b))

	c := makeFunc(NewObject(IntClass))
	c.details.Declaration = decl
	assert.False(t, IsTypeSame(a, c))
}

func TestIsTypeSameFunctionIgnoresInferredReturn(t *testing.T) {
	decl := &ir.Declaration{Kind: ir.DeclarationKindFunction}
	a := NewFunction("f", "app.f", "app", 0)
	a.details.Declaration = decl
	b := NewFunction("f", "app.f", "app", 0)
	b.details.Declaration = decl
	b.SetInferredReturnType(NewObject(IntClass))
	assert.True(t, IsTypeSame(a, b))
}

func TestIsTypeSameUnannotatedParameters(t *testing.T) {
	decl := &ir.Declaration{Kind: ir.DeclarationKindFunction}
	makeFunc := func(paramType Type) *FunctionType {
		f := NewFunction("f", "app.f", "app", 0)
		f.AddParameter(FuncParam{Category: ParamSimple, Name: "x", Type: paramType})
		f.details.Declaration = decl
		return f
	}
	assert.True(t, IsTypeSame(makeFunc(nil), makeFunc(nil)))
	assert.False(t, IsTypeSame(makeFunc(nil), makeFunc(NewObject(IntClass))))
}

func TestIsTypeSameOverloadOrderMatters(t *testing.T) {
	declA := &ir.Declaration{Kind: ir.DeclarationKindFunction}
	declB := &ir.Declaration{Kind: ir.DeclarationKindFunction}
	fa := NewFunction("f", "app.f", "app", 0)
	fa.details.Declaration = declA
	fb := NewFunction("f", "app.f", "app", 0)
	fb.details.Declaration = declB

	ab := NewOverloadedFunction()
	ab.AddOverload(fa)
	ab.AddOverload(fb)
	ba := NewOverloadedFunction()
	ba.AddOverload(fb)
	ba.AddOverload(fa)
	abAgain := NewOverloadedFunction()
	abAgain.AddOverload(fa)
	abAgain.AddOverload(fb)

	assert.True(t, IsTypeSame(ab, abAgain))
	assert.False(t, IsTypeSame(ab, ba))
}

func TestIsTypeSameTypeVarScopes(t *testing.T) {
	base := NewTypeVar("_T")
	inF := base.CloneForScopeID("app.f", "f")
	inG := base.CloneForScopeID("app.g", "g")
	inFAgain := base.CloneForScopeID("app.f", "f")

	assert.True(t, IsTypeSame(inF, inFAgain))
	assert.False(t, IsTypeSame(inF, inG), "same declaration in different scopes is a different variable")
	assert.False(t, IsTypeSame(base, inF))
}

func TestIsTypeSameTypeVarConstraintOrder(t *testing.T) {
	makeVar := func(constraints ...Type) *TypeVarType {
		v := NewTypeVar("_T")
		v.details.Constraints = constraints
		return v.CloneForScopeID("app.f", "f")
	}
	intStr := makeVar(NewObject(IntClass), NewObject(StrClass))
	strInt := makeVar(NewObject(StrClass), NewObject(IntClass))
	intStrAgain := makeVar(NewObject(IntClass), NewObject(StrClass))

	assert.True(t, IsTypeSame(intStr, intStrAgain))
	assert.False(t, IsTypeSame(intStr, strInt), "constraint order is significant")
}

func TestIsTypeSameTypeVarBounds(t *testing.T) {
	makeVar := func(bound Type) *TypeVarType {
		v := NewTypeVar("_T")
		v.details.BoundType = bound
		return v.CloneForScopeID("app.f", "f")
	}
	assert.True(t, IsTypeSame(makeVar(NewObject(IntClass)), makeVar(NewObject(IntClass))))
	assert.False(t, IsTypeSame(makeVar(NewObject(IntClass)), makeVar(NewObject(StrClass))))
	assert.False(t, IsTypeSame(makeVar(NewObject(IntClass)), makeVar(nil)))
}

func TestIsTypeSameModules(t *testing.T) {
	a := NewModule("app", nil, nil)
	b := NewModule("other", nil, nil)
	// empty modules compare equal regardless of name
	assert.True(t, IsTypeSame(a, b))

	fields := symbols.NewTable()
	fields.Set("x", &symbols.Symbol{Name: "x"})
	withFields := NewModule("app", fields, nil)
	assert.False(t, IsTypeSame(a, withFields))
	assert.True(t, IsTypeSame(withFields, withFields.shallowCopy().(*ModuleType)))
}

func TestIsTypeSameRecursionCeiling(t *testing.T) {
	// two structurally identical but separately built deep nestings; past the
	// ceiling the comparison gives up and reports equal, which keeps it
	// terminating on recursive aliases
	deepList := func() Type {
		t := Type(NewObject(IntClass))
		for i := 0; i < maxTypeRecursionCount*2; i++ {
			t = NewObject(ListClass.CloneForSpecialization([]Type{t}, true, SpecializeOpts{}))
		}
		return t
	}
	assert.True(t, IsTypeSame(deepList(), deepList()))

	selfReferential := func() *ClassType {
		node := NewClass("Node", "app.Node", "app", "app.tp", 0)
		node.Details().BaseClasses = []Type{node}
		return node
	}
	a, b := selfReferential(), selfReferential()
	// must terminate; the verdict past the ceiling is the permissive one
	_ = IsTypeSame(a, b)
}

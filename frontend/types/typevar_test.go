package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneForScopeID(t *testing.T) {
	v := NewTypeVar("_T")
	assert.Equal(t, "_T", v.NameWithScope(), "unscoped variables fall back to the bare name")

	scoped := v.CloneForScopeID("app.Widget", "Widget")
	assert.Equal(t, TypeVarScopeID("app.Widget"), scoped.ScopeID())
	assert.Equal(t, "Widget", scoped.ScopeName())
	assert.Equal(t, "_T.app.Widget", scoped.NameWithScope())

	// the declaration record is shared; scope lives on the value
	assert.Same(t, v.Details(), scoped.Details())
	assert.Equal(t, TypeVarScopeID(""), v.ScopeID())
}

func TestCloneAsInvariant(t *testing.T) {
	t.Run("strips variance bound and constraints", func(t *testing.T) {
		v := NewTypeVar("_T")
		v.Details().Variance = VarianceCovariant
		v.Details().BoundType = NewObject(IntClass)
		v.Details().Constraints = []Type{NewObject(IntClass), NewObject(StrClass)}

		stripped := v.CloneAsInvariant()
		assert.NotSame(t, v.Details(), stripped.Details())
		assert.Equal(t, VarianceInvariant, stripped.Details().Variance)
		assert.Nil(t, stripped.Details().BoundType)
		assert.Empty(t, stripped.Details().Constraints)

		// the original declaration keeps everything
		assert.Equal(t, VarianceCovariant, v.Details().Variance)
		require.NotNil(t, v.Details().BoundType)
	})

	t.Run("already invariant and unconstrained is a no-op", func(t *testing.T) {
		v := NewTypeVar("_T")
		assert.Same(t, v, v.CloneAsInvariant())
	})

	t.Run("param specs pass through", func(t *testing.T) {
		v := NewTypeVar("_P")
		v.Details().IsParamSpec = true
		v.Details().BoundType = NewObject(IntClass)
		assert.Same(t, v, v.CloneAsInvariant())
	})

	t.Run("variadics pass through", func(t *testing.T) {
		v := NewTypeVar("_Ts")
		v.Details().IsVariadic = true
		v.Details().Variance = VarianceContravariant
		assert.Same(t, v, v.CloneAsInvariant())
	})
}

func TestCloneForUnpackedAndPacked(t *testing.T) {
	v := NewTypeVar("_Ts")
	v.Details().IsVariadic = true

	unpacked := v.CloneForUnpacked()
	assert.True(t, unpacked.IsVariadicUnpacked())
	assert.False(t, v.IsVariadicUnpacked())
	assert.Equal(t, "*_Ts", unpacked.String())

	packed := unpacked.CloneForPacked()
	assert.False(t, packed.IsVariadicUnpacked())
	assert.Equal(t, "_Ts", packed.String())
}

func TestUnpackingNonVariadicPanics(t *testing.T) {
	v := NewTypeVar("_T")
	assert.Panics(t, func() { v.CloneForUnpacked() })
	assert.Panics(t, func() { v.CloneForPacked() })
}

func TestTypeVarInstantiability(t *testing.T) {
	assert.True(t, CanBeInstantiated(NewTypeVar("_T")))
	assert.True(t, CanBeInstance(NewTypeVarInstance("_T")))
	assert.False(t, CanBeInstance(NewTypeVar("_T")))
}

func TestSynthesizedBuiltinTypeParameters(t *testing.T) {
	params := ListClass.Details().TypeParameters
	require.Len(t, params, 1)
	assert.True(t, params[0].Details().IsSynthesized)
	assert.Equal(t, 0, params[0].Details().SynthesizedIndex)
	assert.Equal(t, TypeVarScopeID("builtins.list"), params[0].ScopeID())

	v := NewTypeVar("_T")
	assert.Equal(t, -1, v.Details().SynthesizedIndex)
}

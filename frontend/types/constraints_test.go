package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pins(pairs ...SubtypeConstraint) SubtypeConstraints { return pairs }

func pin(name string, index int) SubtypeConstraint {
	return SubtypeConstraint{TypeVarName: name, ConstraintIndex: index}
}

func TestConstraintsCombine(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     SubtypeConstraints
		expected SubtypeConstraints
	}{
		{"nil is left identity", nil, pins(pin("_T", 0)), pins(pin("_T", 0))},
		{"nil is right identity", pins(pin("_T", 0)), nil, pins(pin("_T", 0))},
		{"both nil", nil, nil, nil},
		{
			"merge sorts by name then index",
			pins(pin("_U", 1)),
			pins(pin("_T", 2), pin("_T", 0)),
			pins(pin("_T", 0), pin("_T", 2), pin("_U", 1)),
		},
		{
			"duplicate pins collapse",
			pins(pin("_T", 0), pin("_U", 1)),
			pins(pin("_T", 0)),
			pins(pin("_T", 0), pin("_U", 1)),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.a.Combine(testCase.b))
		})
	}
}

func TestConstraintsCombineDoesNotMutateOperands(t *testing.T) {
	a := pins(pin("_U", 1), pin("_T", 0))
	b := pins(pin("_A", 3))
	combined := a.Combine(b)

	assert.Equal(t, pins(pin("_U", 1), pin("_T", 0)), a)
	assert.Equal(t, pins(pin("_A", 3), pin("_T", 0), pin("_U", 1)), combined)
}

func TestConstraintsIsCompatible(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     SubtypeConstraints
		expected bool
	}{
		{"nil with anything", nil, pins(pin("_T", 0)), true},
		{"disjoint variables", pins(pin("_T", 0)), pins(pin("_U", 1)), true},
		{"same variable same index", pins(pin("_T", 0)), pins(pin("_T", 0)), true},
		{"same variable different index", pins(pin("_T", 0)), pins(pin("_T", 1)), false},
		{
			"one conflict among many",
			pins(pin("_T", 0), pin("_U", 1)),
			pins(pin("_U", 2), pin("_V", 0)),
			false,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.a.IsCompatible(testCase.b))
			assert.Equal(t, testCase.expected, testCase.b.IsCompatible(testCase.a))
		})
	}
}

func TestConstraintsEquals(t *testing.T) {
	assert.True(t, SubtypeConstraints(nil).Equals(nil))
	assert.True(t, pins(pin("_T", 0)).Equals(pins(pin("_T", 0))))
	assert.False(t, pins(pin("_T", 0)).Equals(nil))
	assert.False(t, pins(pin("_T", 0)).Equals(pins(pin("_T", 1))))
	assert.False(t, pins(pin("_T", 0)).Equals(pins(pin("_T", 0), pin("_U", 0))))
}

func TestConstraintsString(t *testing.T) {
	assert.Equal(t, "<unconstrained>", SubtypeConstraints(nil).String())
	assert.Equal(t, "{_T#0, _U#2}", pins(pin("_T", 0), pin("_U", 2)).String())
}

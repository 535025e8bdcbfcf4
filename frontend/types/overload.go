package types

import (
	"github.com/tapir-lang/tapir/util"
)

// OverloadedFunctionType is an ordered sequence of overload signatures.
// Callers resolve calls first-match-wins, so the declared order is part of
// the type's identity and must survive cloning verbatim.
type OverloadedFunctionType struct {
	typeBase
	overloads []*FunctionType
}

func NewOverloadedFunction() *OverloadedFunctionType {
	return &OverloadedFunctionType{
		typeBase: typeBase{category: CategoryOverloaded, flags: FlagInstance},
	}
}

// AddOverload appends fn as the lowest-priority overload and marks it as
// participating in an overload set.
func (o *OverloadedFunctionType) AddOverload(fn *FunctionType) {
	fn.details.Flags |= FunctionOverloaded
	o.overloads = append(o.overloads, fn)
}

func (o *OverloadedFunctionType) Overloads() []*FunctionType { return o.overloads }

func (o *OverloadedFunctionType) shallowCopy() Type {
	copied := *o
	copied.overloads = append([]*FunctionType(nil), o.overloads...)
	return &copied
}

func (o *OverloadedFunctionType) String() string {
	return "Overload[" + util.JoinString(o.overloads, ", ") + "]"
}

package types

import (
	"fmt"
	"strconv"
)

// LiteralValue is the value a literal-typed class is narrowed to.
// The closed set mirrors what the annotation syntax admits: ints, strings,
// bools and enum members.
type LiteralValue interface {
	fmt.Stringer
	equals(other LiteralValue) bool
}

type IntLiteral int64

type StrLiteral string

type BoolLiteral bool

// EnumLiteral identifies one member of an enum class. Two enum literals of
// the same class compare by member name.
type EnumLiteral struct {
	ClassFullName string
	MemberName    string
}

func (v IntLiteral) String() string { return strconv.FormatInt(int64(v), 10) }
func (v StrLiteral) String() string { return strconv.Quote(string(v)) }

func (v BoolLiteral) String() string {
	if v {
		return "True"
	}
	return "False"
}

func (v EnumLiteral) String() string { return v.MemberName }

func (v IntLiteral) equals(other LiteralValue) bool {
	o, ok := other.(IntLiteral)
	return ok && v == o
}

func (v StrLiteral) equals(other LiteralValue) bool {
	o, ok := other.(StrLiteral)
	return ok && v == o
}

func (v BoolLiteral) equals(other LiteralValue) bool {
	o, ok := other.(BoolLiteral)
	return ok && v == o
}

func (v EnumLiteral) equals(other LiteralValue) bool {
	o, ok := other.(EnumLiteral)
	return ok && v.MemberName == o.MemberName
}

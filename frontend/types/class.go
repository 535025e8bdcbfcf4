package types

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"github.com/tapir-lang/tapir/frontend/symbols"
	"github.com/tapir-lang/tapir/util"
)

// TypeSourceID identifies the source declaration a class originated from.
// Ids are handed out monotonically; two classes created from the same
// declaration during one analysis pass share one id.
type TypeSourceID int32

var nextTypeSourceID TypeSourceID

func synthesizeTypeSourceID() TypeSourceID {
	nextTypeSourceID++
	return nextTypeSourceID
}

// DataClassEntry describes one synthesized field of a dataclass.
type DataClassEntry struct {
	Name       string
	HasDefault bool
	Type       Type
}

// TypedDictEntry describes one key of a typed dict.
type TypedDictEntry struct {
	ValueType  Type
	IsRequired bool
	IsProvided bool
}

// TypedDictEntries maps a typed dict's key names to entries. Narrowing clones
// share structure with the map they narrow, which is why this is an immutable
// map rather than a built-in one.
type TypedDictEntries = immutable.Map[string, TypedDictEntry]

// NewTypedDictEntries builds an entry map from name/entry pairs.
func NewTypedDictEntries(entries ...util.Pair[string, TypedDictEntry]) *TypedDictEntries {
	m := immutable.NewMap[string, TypedDictEntry](nil)
	for _, entry := range entries {
		m = m.Set(entry.Fst, entry.Snd)
	}
	return m
}

// ClassDetails is the per-declaration record shared by every specialization
// and narrowing of one class. It is mutable only until the class is published
// to callers: bases, MRO and fields are populated after create because they
// may refer to the class being built.
type ClassDetails struct {
	Name               string
	FullName           string
	ModuleName         string
	FilePath           string
	Flags              ClassFlags
	TypeSourceID       TypeSourceID
	BaseClasses        []Type
	MRO                []Type
	DeclaredMetaclass  Type
	EffectiveMetaclass Type
	Fields             *symbols.Table
	TypeParameters     []*TypeVarType
	DocString          string
	DataClassEntries   []DataClassEntry
	TypedDictEntries   *TypedDictEntries
}

// HasFlags reports whether every bit of mask is set.
func (d *ClassDetails) HasFlags(mask ClassFlags) bool { return d.Flags&mask == mask }

// HasAnyFlags reports whether at least one bit of mask is set.
func (d *ClassDetails) HasAnyFlags(mask ClassFlags) bool { return d.Flags&mask != 0 }

// ClassType is a class reference: the thing a class declaration names.
// Instances of the class are represented by ObjectType.
type ClassType struct {
	typeBase
	details *ClassDetails

	// typeArguments is set once the generic declaration is specialized
	typeArguments          []Type
	tupleTypeArguments     []Type
	isTypeArgumentExplicit bool

	// isEmptyContainer marks a specialization derived from a literally-empty
	// collection, whose element types are elidable rather than meaningful
	isEmptyContainer bool

	literalValue             LiteralValue
	aliasName                string
	narrowedTypedDictEntries *TypedDictEntries
}

// NewClass creates a fresh, unspecialized class. Bases, MRO and fields start
// empty; callers fill them in afterwards since they may refer to the class
// being built.
func NewClass(name, fullName, moduleName, filePath string, flags ClassFlags) *ClassType {
	return &ClassType{
		typeBase: typeBase{category: CategoryClass, flags: FlagInstantiable},
		details: &ClassDetails{
			Name:         name,
			FullName:     fullName,
			ModuleName:   moduleName,
			FilePath:     filePath,
			Flags:        flags,
			TypeSourceID: synthesizeTypeSourceID(),
			Fields:       symbols.NewTable(),
		},
	}
}

func (c *ClassType) Details() *ClassDetails { return c.details }

func (c *ClassType) TypeArguments() []Type        { return c.typeArguments }
func (c *ClassType) TupleTypeArguments() []Type   { return c.tupleTypeArguments }
func (c *ClassType) IsTypeArgumentExplicit() bool { return c.isTypeArgumentExplicit }
func (c *ClassType) IsEmptyContainer() bool       { return c.isEmptyContainer }
func (c *ClassType) LiteralValue() LiteralValue   { return c.literalValue }
func (c *ClassType) AliasName() string            { return c.aliasName }

// NarrowedTypedDictEntries returns the per-value narrowed entry map, or the
// declaration's entries when no narrowing applies.
func (c *ClassType) NarrowedTypedDictEntries() *TypedDictEntries {
	if c.narrowedTypedDictEntries != nil {
		return c.narrowedTypedDictEntries
	}
	return c.details.TypedDictEntries
}

func (c *ClassType) shallowCopy() Type {
	copied := *c
	return &copied
}

// SpecializeOpts carries the optional facets of a specialization.
type SpecializeOpts struct {
	TupleTypeArguments []Type
	IsEmptyContainer   bool
}

// CloneForSpecialization binds concrete type arguments to the class. A Never
// argument is replaced by Unknown: once surfaced here, "no possible value"
// signals an uninferable generic context, not a bottom type. The details
// record stays shared.
func (c *ClassType) CloneForSpecialization(typeArguments []Type, isExplicit bool, opts SpecializeOpts) *ClassType {
	copied := *c
	args := make([]Type, len(typeArguments))
	for i, arg := range typeArguments {
		if IsNever(arg) {
			arg = Unknown
		}
		args[i] = arg
	}
	copied.typeArguments = args
	copied.tupleTypeArguments = opts.TupleTypeArguments
	copied.isTypeArgumentExplicit = isExplicit
	copied.isEmptyContainer = opts.IsEmptyContainer
	return &copied
}

// CloneWithLiteral narrows the class to a single literal value.
func (c *ClassType) CloneWithLiteral(value LiteralValue) *ClassType {
	copied := *c
	copied.literalValue = value
	return &copied
}

// CloneWithAliasName attaches a display-only alias name.
func (c *ClassType) CloneWithAliasName(name string) *ClassType {
	copied := *c
	copied.aliasName = name
	return &copied
}

// CloneForNarrowedTypedDictEntries narrows the typed-dict entry map of this
// value without touching the declaration's map.
func (c *ClassType) CloneForNarrowedTypedDictEntries(entries *TypedDictEntries) *ClassType {
	if !c.details.HasFlags(ClassTypedDict) {
		panic(errors.Errorf("narrowing typed-dict entries of non-typed-dict class %s", c.details.FullName))
	}
	copied := *c
	copied.narrowedTypedDictEntries = entries
	return &copied
}

// CloneWithNewFlags replaces the declaration flag set. Flags live in the
// shared details record, so this clones the record too.
func (c *ClassType) CloneWithNewFlags(flags ClassFlags) *ClassType {
	copied := *c
	details := *c.details
	details.Flags = flags
	copied.details = &details
	return &copied
}

// IsBuiltIn reports whether c is a builtin class, optionally with the given
// name. The display alias counts: `Tuple` aliased to `tuple` matches both.
func IsBuiltIn(c *ClassType, name string) bool {
	if !c.details.HasFlags(ClassBuiltIn) {
		return false
	}
	if name == "" {
		return true
	}
	return c.details.Name == name || c.aliasName == name
}

// IsSameGenericClass reports whether two class values refer to the same
// generic declaration, ignoring specialization and narrowing.
func IsSameGenericClass(a, b *ClassType) bool {
	return isSameGenericClass(a, b, 0)
}

func isSameGenericClass(a, b *ClassType, recursionCount int) bool {
	if recursionCount > maxTypeRecursionCount {
		return true
	}

	// the overwhelming common case: both values share one details record
	if a.details == b.details {
		return true
	}

	// NamedTuple and tuple-derived classes get their bases synthesized per
	// declaration, so structural comparison would never match them
	if IsBuiltIn(a, "NamedTuple") && IsBuiltIn(b, "NamedTuple") {
		return true
	}
	if a.details.HasFlags(ClassTuple) && b.details.HasFlags(ClassTuple) {
		return true
	}

	ad, bd := a.details, b.details
	if ad.FullName != bd.FullName ||
		ad.Flags != bd.Flags ||
		ad.TypeSourceID != bd.TypeSourceID ||
		len(ad.BaseClasses) != len(bd.BaseClasses) ||
		len(ad.TypeParameters) != len(bd.TypeParameters) {
		return false
	}
	for i := range ad.BaseClasses {
		if !isTypeSame(ad.BaseClasses[i], bd.BaseClasses[i], recursionCount+1) {
			return false
		}
	}
	for i := range ad.TypeParameters {
		if !isTypeSame(ad.TypeParameters[i], bd.TypeParameters[i], recursionCount+1) {
			return false
		}
	}
	return true
}

// IsDerivedFrom walks the declared bases of sub depth-first looking for
// parent. When chain is non-nil it is filled root-to-leaf as the recursion
// unwinds; a base of Any/Unknown contributes an Unknown sentinel, since an
// unknown ancestry cannot be proven not derived.
func IsDerivedFrom(sub, parent *ClassType, chain *[]Type) bool {
	return derivesFrom(sub, parent, chain, set.New[TypeSourceID](0))
}

func derivesFrom(sub, parent *ClassType, chain *[]Type, visited *set.Set[TypeSourceID]) bool {
	if IsSameGenericClass(sub, parent) {
		if chain != nil {
			*chain = append(*chain, sub)
		}
		return true
	}

	// builtins all derive from builtin object even though their declared
	// bases do not name it
	if IsBuiltIn(sub, "") && IsBuiltIn(parent, "object") {
		if chain != nil {
			*chain = append(*chain, parent)
		}
		return true
	}

	// self-referential bases are legal, so guard the walk
	if !visited.Insert(sub.details.TypeSourceID) {
		return false
	}

	for _, base := range sub.details.BaseClasses {
		if baseClass, ok := base.(*ClassType); ok {
			if derivesFrom(baseClass, parent, chain, visited) {
				if chain != nil {
					*chain = append(*chain, sub)
				}
				return true
			}
		} else if IsAnyOrUnknown(base) {
			if chain != nil {
				*chain = append(*chain, Unknown)
			}
			return true
		}
	}
	return false
}

func (c *ClassType) String() string {
	name := c.details.Name
	if c.aliasName != "" {
		name = c.aliasName
	}
	if c.literalValue != nil {
		return fmt.Sprintf("Literal[%s]", c.literalValue)
	}
	args := c.typeArguments
	if c.tupleTypeArguments != nil {
		args = c.tupleTypeArguments
	}
	if len(args) == 0 {
		return name
	}
	return name + "[" + util.JoinString(args, ", ") + "]"
}

package types

// ObjectType is an instance of a class. It has no identity of its own: two
// objects are the same type exactly when their classes are.
type ObjectType struct {
	typeBase
	classType *ClassType
}

// NewObject wraps a class reference as an instance of that class.
func NewObject(classType *ClassType) *ObjectType {
	return &ObjectType{
		typeBase:  typeBase{category: CategoryObject, flags: FlagInstance},
		classType: classType,
	}
}

func (o *ObjectType) ClassType() *ClassType { return o.classType }

func (o *ObjectType) shallowCopy() Type {
	copied := *o
	return &copied
}

func (o *ObjectType) String() string { return o.classType.String() }

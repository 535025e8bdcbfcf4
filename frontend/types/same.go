package types

// maxTypeRecursionCount bounds recursion over self-referential generics.
// Past the ceiling comparisons conservatively succeed; without a hard ceiling
// equality over legitimately recursive structures does not terminate.
const maxTypeRecursionCount = 16

// IsTypeSame reports structural equivalence of two types.
func IsTypeSame(a, b Type) bool {
	return isTypeSame(a, b, 0)
}

func isTypeSame(a, b Type, recursionCount int) bool {
	if a.Category() != b.Category() {
		return false
	}
	if recursionCount > maxTypeRecursionCount {
		return true
	}

	switch a := a.(type) {
	case *ClassType:
		return isClassSame(a, b.(*ClassType), recursionCount)
	case *ObjectType:
		return isClassSame(a.classType, b.(*ObjectType).classType, recursionCount)
	case *FunctionType:
		return isFunctionSame(a, b.(*FunctionType), recursionCount)
	case *OverloadedFunctionType:
		bOverloads := b.(*OverloadedFunctionType).overloads
		if len(a.overloads) != len(bOverloads) {
			return false
		}
		// overload order is part of identity
		for i := range a.overloads {
			if !isTypeSame(a.overloads[i], bOverloads[i], recursionCount+1) {
				return false
			}
		}
		return true
	case *UnionType:
		bUnion := b.(*UnionType)
		if len(a.subtypes) != len(bUnion.subtypes) {
			return false
		}
		// with counts equal, one-sided containment suffices; this is what
		// lets unions built in different insertion orders compare equal
		for _, sub := range a.subtypes {
			if !bUnion.ContainsType(sub, recursionCount+1) {
				return false
			}
		}
		return true
	case *TypeVarType:
		return isTypeVarSame(a, b.(*TypeVarType), recursionCount)
	case *ModuleType:
		bModule := b.(*ModuleType)
		if a.fields == bModule.fields {
			return true
		}
		// module identity is keyed on its symbol table, not its name
		return a.fields.Len() == 0 && bModule.fields.Len() == 0
	}

	// stateless singleton variants compare by category alone
	return true
}

func isClassSame(a, b *ClassType, recursionCount int) bool {
	if !isSameGenericClass(a, b, recursionCount+1) {
		return false
	}

	if a.tupleTypeArguments != nil || b.tupleTypeArguments != nil {
		if len(a.tupleTypeArguments) != len(b.tupleTypeArguments) {
			return false
		}
		for i := range a.tupleTypeArguments {
			if !isTypeSame(a.tupleTypeArguments[i], b.tupleTypeArguments[i], recursionCount+1) {
				return false
			}
		}
	} else if a.typeArguments != nil || b.typeArguments != nil {
		// an unspecified argument on the shorter list is implicitly Any
		argCount := max(len(a.typeArguments), len(b.typeArguments))
		for i := 0; i < argCount; i++ {
			argA, argB := Any, Any
			if i < len(a.typeArguments) {
				argA = a.typeArguments[i]
			}
			if i < len(b.typeArguments) {
				argB = b.typeArguments[i]
			}
			if !isTypeSame(argA, argB, recursionCount+1) {
				return false
			}
		}
	}

	if (a.literalValue == nil) != (b.literalValue == nil) {
		return false
	}
	if a.literalValue != nil && !a.literalValue.equals(b.literalValue) {
		return false
	}
	return true
}

func isFunctionSame(a, b *FunctionType, recursionCount int) bool {
	aParams, bParams := a.details.Parameters, b.details.Parameters
	if len(aParams) != len(bParams) {
		return false
	}
	for i := range aParams {
		if aParams[i].Category != bParams[i].Category || aParams[i].Name != bParams[i].Name {
			return false
		}
		aParamType := a.EffectiveParameterType(i)
		bParamType := b.EffectiveParameterType(i)
		if (aParamType == nil) != (bParamType == nil) {
			return false
		}
		if aParamType != nil && !isTypeSame(aParamType, bParamType, recursionCount+1) {
			return false
		}
	}

	aReturn := a.declaredOrSpecializedReturnType()
	bReturn := b.declaredOrSpecializedReturnType()
	if (aReturn == nil) != (bReturn == nil) {
		return false
	}
	if aReturn != nil && !isTypeSame(aReturn, bReturn, recursionCount+1) {
		return false
	}

	return a.details.Declaration == b.details.Declaration
}

func isTypeVarSame(a, b *TypeVarType, recursionCount int) bool {
	if a.scopeID != b.scopeID {
		return false
	}
	if a.details == b.details {
		return true
	}

	ad, bd := a.details, b.details
	if ad.Name != bd.Name ||
		ad.IsParamSpec != bd.IsParamSpec ||
		ad.IsVariadic != bd.IsVariadic ||
		ad.IsSynthesized != bd.IsSynthesized ||
		ad.Variance != bd.Variance {
		return false
	}

	if (ad.BoundType == nil) != (bd.BoundType == nil) {
		return false
	}
	if ad.BoundType != nil && !isTypeSame(ad.BoundType, bd.BoundType, recursionCount+1) {
		return false
	}

	// constraint order is significant for type variables, unlike for unions
	if len(ad.Constraints) != len(bd.Constraints) {
		return false
	}
	for i := range ad.Constraints {
		if !isTypeSame(ad.Constraints[i], bd.Constraints[i], recursionCount+1) {
			return false
		}
	}
	return true
}

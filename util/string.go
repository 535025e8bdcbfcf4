package util

import (
	"fmt"
	"strings"
)

// JoinString renders each element with String() and joins them with sep.
func JoinString[T fmt.Stringer](elems []T, sep string) string {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		parts[i] = elem.String()
	}
	return strings.Join(parts, sep)
}

// Package compare implements the two-operand comparator step.
package compare

import "cmp"

// Max returns the larger of a and b. When the operands are equal the second
// operand is returned.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

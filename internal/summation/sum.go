// Package summation implements the array summation step.
package summation

// Integer is the set of integer types Sum accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sum adds values in a single forward pass starting from zero. Overflow wraps
// according to Go's integer semantics.
func Sum[T Integer](values []T) T {
	var total T
	for i := 0; i < len(values); i++ {
		total += values[i]
	}
	return total
}

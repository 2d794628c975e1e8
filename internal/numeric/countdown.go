package numeric

import (
	"fmt"
	"io"
	"iter"
)

// Countdown yields n, n-1, ..., 1. Nothing is yielded when n <= 0.
func Countdown(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		countdown(n, yield)
	}
}

func countdown(n int, yield func(int) bool) bool {
	if n <= 0 {
		return true
	}
	if !yield(n) {
		return false
	}
	return countdown(n-1, yield)
}

// CountdownPrint writes each countdown value followed by a space.
func CountdownPrint(w io.Writer, n int) error {
	var err error
	for v := range Countdown(n) {
		if _, err = fmt.Fprintf(w, "%d ", v); err != nil {
			break
		}
	}
	return err
}

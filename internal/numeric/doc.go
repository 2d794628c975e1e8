// Package numeric implements the recursive numeric routines: Fibonacci and
// the countdown.
//
// Fibonacci is the plain doubly recursive definition. The package also
// registers alternative strategies (iterative and memoized) behind a Factory
// so that callers can select or cross-check them; every strategy returns the
// same value as Fibonacci for every input.
package numeric

// Package logging provides a unified logging interface for flowsample.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while keeping stdout reserved for program output.
package logging

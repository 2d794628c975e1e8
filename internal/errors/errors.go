package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0 // Indicates successful execution.
	ExitErrorGeneric    = 1 // Indicates a generic error.
	ExitErrorMismatch   = 3 // Indicates Fibonacci strategies disagreed.
	ExitErrorConfig     = 4 // Indicates a configuration error.
	ExitErrorAllocation = 5 // Indicates node storage could not be acquired.
)

// AllocationDiagnostic is the message written to stderr when node storage
// cannot be acquired.
const AllocationDiagnostic = "内存分配失败"

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// AllocationError reports that a list node could not be acquired from its
// arena. It is fatal: the list manager never hands it back to a caller.
type AllocationError struct {
	// InUse is the number of slots held when the request failed.
	InUse int
	// Capacity is the arena limit in slots.
	Capacity int
}

// Error returns a formatted message describing the exhausted arena.
func (e AllocationError) Error() string {
	return fmt.Sprintf("node allocation failed: %d of %d slots in use", e.InUse, e.Capacity)
}

// StepError wraps a failure raised while a demonstration step was running.
type StepError struct {
	// Step is the name of the failing step.
	Step string
	// Cause is the underlying error.
	Cause error
}

// Error returns the step name followed by the cause.
func (e StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e StepError) Unwrap() error { return e.Cause }

// MismatchError reports that Fibonacci strategies produced different values
// for the same input.
type MismatchError struct {
	N       int
	Results map[string]int
}

// Error returns a formatted message listing the disagreeing strategies.
func (e MismatchError) Error() string {
	return fmt.Sprintf("fibonacci strategies disagree for n=%d: %v", e.N, e.Results)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr   ConfigError
		allocErr    AllocationError
		mismatchErr MismatchError
	)
	switch {
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &allocErr):
		return ExitErrorAllocation
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

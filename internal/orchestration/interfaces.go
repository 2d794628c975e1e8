//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"time"
)

// Step is one demonstration routine. Run writes the step's output to out.
type Step interface {
	// Name identifies the step in logs, traces and the summary.
	Name() string
	// Run executes the step.
	Run(ctx context.Context, out io.Writer) error
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func(ctx context.Context, out io.Writer) error
}

// Name returns the step name.
func (s StepFunc) Name() string { return s.StepName }

// Run calls the underlying function.
func (s StepFunc) Run(ctx context.Context, out io.Writer) error { return s.Fn(ctx, out) }

// StepResult encapsulates the outcome of a single step.
type StepResult struct {
	// Name is the step name.
	Name string
	// Duration is the time taken by Run.
	Duration time.Duration
	// Err is the error returned by Run, if any.
	Err error
}

// StepObserver receives the outcome of every step as it completes.
type StepObserver interface {
	ObserveStep(step string, d time.Duration, err error)
}

// NullStepObserver discards step outcomes.
type NullStepObserver struct{}

// ObserveStep does nothing.
func (NullStepObserver) ObserveStep(string, time.Duration, error) {}

// ResultPresenter renders the collected step results.
type ResultPresenter interface {
	PresentSummary(results []StepResult, out io.Writer)
}

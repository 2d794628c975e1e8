package orchestration

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/flowsample/internal/errors"
	"github.com/agbru/flowsample/internal/logging"
)

const tracerName = "github.com/agbru/flowsample/internal/orchestration"

// Runner executes steps sequentially.
type Runner struct {
	tracer   trace.Tracer
	observer StepObserver
	logger   logging.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTracer sets the tracer used for per-step spans.
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) { r.tracer = t }
}

// WithObserver sets the observer notified after each step.
func WithObserver(o StepObserver) RunnerOption {
	return func(r *Runner) { r.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner. By default it traces through the global
// OpenTelemetry provider, which is a no-op unless one is installed.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		tracer:   otel.Tracer(tracerName),
		observer: NullStepObserver{},
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes steps in order, writing their output to out. It stops at the
// first failing step and returns the results gathered so far together with
// an apperrors.StepError. A canceled context stops the run before the next
// step starts.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - steps: The steps to execute, in order.
//   - out: The writer receiving step output.
//
// Returns:
//   - []StepResult: One result per executed step.
//   - error: The first step failure or context error.
func (r *Runner) Run(ctx context.Context, steps []Step, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := step.Name()
		stepCtx, span := r.tracer.Start(ctx, "step."+name,
			trace.WithAttributes(attribute.String("flowsample.step", name)))

		start := time.Now()
		err := step.Run(stepCtx, out)
		elapsed := time.Since(start)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		r.observer.ObserveStep(name, elapsed, err)
		results = append(results, StepResult{Name: name, Duration: elapsed, Err: err})

		if err != nil {
			r.logger.Error("step failed", err, logging.String("step", name))
			return results, apperrors.StepError{Step: name, Cause: err}
		}
		r.logger.Debug("step finished", logging.String("step", name), logging.Duration("elapsed", elapsed))
	}
	return results, nil
}

package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agbru/flowsample/internal/config"
	apperrors "github.com/agbru/flowsample/internal/errors"
	"github.com/agbru/flowsample/internal/logging"
	"github.com/agbru/flowsample/internal/numeric"
	"github.com/agbru/flowsample/internal/ui"
)

var update = flag.Bool("update", false, "rewrite golden files")

// exitCalled carries the code passed to the exit hook out of Run.
type exitCalled int

func panicExit(code int) { panic(exitCalled(code)) }

func newTestApp(t *testing.T, errBuf *bytes.Buffer, args ...string) *Application {
	t.Helper()
	application, err := New(append([]string{"flowsample"}, args...), errBuf,
		WithLogger(logging.Nop()), WithExitFunc(panicExit))
	if err != nil {
		t.Fatalf("New(%v) error = %v, stderr: %s", args, err, errBuf.String())
	}
	return application
}

// runCapturingExit runs the application and reports the exit hook's code,
// if it was called.
func runCapturingExit(application *Application, out *bytes.Buffer) (code int, exited bool) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCalled)
			if !ok {
				panic(r)
			}
			code, exited = int(c), true
		}
	}()
	return application.Run(context.Background(), out), false
}

func TestRunDefaultGolden(t *testing.T) {
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf)

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d; stderr: %s", code, apperrors.ExitSuccess, errBuf.String())
	}

	golden := filepath.Join("testdata", "default.golden")
	if *update {
		if err := os.WriteFile(golden, out.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), out.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr should be empty, got %q", errBuf.String())
	}
}

func TestRunAlgorithmsAgree(t *testing.T) {
	for _, algo := range []string{numeric.Iterative, numeric.Memo, config.AlgoAll} {
		t.Run(algo, func(t *testing.T) {
			var out, errBuf bytes.Buffer
			application := newTestApp(t, &errBuf, "-fib-algo", algo, "-n", "20")
			if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run() = %d; stderr: %s", code, errBuf.String())
			}
			if !strings.Contains(out.String(), "Fibonacci(20) = 6765\n") {
				t.Errorf("output missing Fibonacci(20) line:\n%s", out.String())
			}
		})
	}
}

func TestRunAllocationFailureIsFatal(t *testing.T) {
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf, "-max-nodes", "2")

	code, exited := runCapturingExit(application, &out)
	if !exited {
		t.Fatalf("exit hook not called, Run returned %d", code)
	}
	if code != apperrors.ExitErrorAllocation {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorAllocation)
	}
	if !strings.Contains(errBuf.String(), apperrors.AllocationDiagnostic) {
		t.Errorf("stderr = %q, want diagnostic %q", errBuf.String(), apperrors.AllocationDiagnostic)
	}
	want := "较大的数字是: 20\n数组的和为: 15\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStrategyMismatch(t *testing.T) {
	factory := numeric.NewFactory()
	factory.Register(numeric.NewStrategy(numeric.Recursive, numeric.Fibonacci))
	factory.Register(numeric.NewStrategy("broken", func(int) int { return -1 }))

	var out, errBuf bytes.Buffer
	application, err := New([]string{"flowsample", "-fib-algo", "all"}, &errBuf,
		WithFactory(factory), WithLogger(logging.Nop()), WithExitFunc(panicExit))
	if err != nil {
		t.Fatal(err)
	}

	if code := application.Run(context.Background(), &out); code != apperrors.ExitErrorMismatch {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if strings.Contains(out.String(), "Fibonacci(") {
		t.Errorf("no Fibonacci line expected after a mismatch:\n%s", out.String())
	}
	if !strings.Contains(errBuf.String(), "Error:") {
		t.Errorf("stderr should report the error, got %q", errBuf.String())
	}
}

func TestRunCanceledContext(t *testing.T) {
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := application.Run(ctx, &out); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if out.Len() != 0 {
		t.Errorf("no output expected, got %q", out.String())
	}
}

func TestRunDetails(t *testing.T) {
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf, "-details", "-no-color")

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d; stderr: %s", code, errBuf.String())
	}
	output := out.String()
	if !strings.HasPrefix(output, "较大的数字是: 20\n") {
		t.Errorf("demonstration output should come first:\n%s", output)
	}
	for _, step := range []string{StepCompare, StepSum, StepList, StepFibonacci, StepCountdown, StepRelease, "Step Summary", "Success"} {
		if !strings.Contains(output, step) {
			t.Errorf("summary missing %q:\n%s", step, output)
		}
	}
}

func TestRunMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowsample.prom")
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf, "-metrics-file", path)

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d; stderr: %s", code, errBuf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		"flowsample_nodes_allocated_total 5",
		"flowsample_nodes_released_total 5",
		"flowsample_nodes_live 0",
		"flowsample_fibonacci_value 8",
		`flowsample_step_duration_seconds_count{step="release"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics file missing %q:\n%s", want, text)
		}
	}
}

func TestRunJSONLogFormat(t *testing.T) {
	var out, errBuf bytes.Buffer
	application, err := New([]string{"flowsample", "-log-format", "json", "-v", "-theme", "light"}, &errBuf,
		WithExitFunc(panicExit))
	if err != nil {
		t.Fatal(err)
	}

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d; stderr: %s", code, errBuf.String())
	}
	for _, want := range []string{`"level":"debug"`, `"component":"flowsample"`, `"message":"list released"`, `"nodes":5`} {
		if !strings.Contains(errBuf.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errBuf.String())
		}
	}
	if !strings.HasPrefix(out.String(), "较大的数字是: 20\n") {
		t.Errorf("logging must not reach stdout:\n%s", out.String())
	}
	if got := ui.GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme on a non-terminal writer = %q, want none", got)
	}
}

func TestRunMetricsFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "flowsample.prom")
	var out, errBuf bytes.Buffer
	application := newTestApp(t, &errBuf, "-metrics-file", path)

	if code := application.Run(context.Background(), &out); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errBuf.String(), "writing metrics") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"negative list size", []string{"-list-size", "-1"}, apperrors.ExitErrorConfig, "list-size"},
		{"unknown flag", []string{"-bogus"}, apperrors.ExitErrorConfig, "bogus"},
		{"unknown algorithm", []string{"-fib-algo", "fast"}, apperrors.ExitErrorConfig, "fast"},
		{"positional argument", []string{"extra"}, apperrors.ExitErrorConfig, "extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := New(append([]string{"flowsample"}, tt.args...), &errBuf, WithLogger(logging.Nop()))
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := apperrors.ExitCode(err); code != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(errBuf.String(), "Error:") || !strings.Contains(errBuf.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want an error mentioning %q", errBuf.String(), tt.wantErr)
			}
		})
	}
}

func TestNewHelp(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"flowsample", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Fatalf("IsHelpError(%v) = false", err)
	}
	if !strings.Contains(errBuf.String(), "Usage: flowsample") {
		t.Errorf("usage not printed: %q", errBuf.String())
	}
	if strings.Contains(errBuf.String(), "Error:") {
		t.Errorf("help should not be reported as an error: %q", errBuf.String())
	}
}

func TestIsHelpError(t *testing.T) {
	t.Parallel()
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be a help error")
	}
	if IsHelpError(errors.New("other")) {
		t.Error("arbitrary errors are not help errors")
	}
}

func TestBuildStepsOrder(t *testing.T) {
	t.Parallel()
	steps := BuildSteps(config.Default(), Deps{Factory: numeric.NewDefaultFactory()})
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}
	want := []string{StepCompare, StepSum, StepList, StepFibonacci, StepCountdown, StepRelease}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("step order mismatch (-want +got):\n%s", diff)
	}
}

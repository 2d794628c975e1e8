package list

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/flowsample/internal/errors"
)

type countingObserver struct {
	allocated, released int
}

func (c *countingObserver) NodeAllocated() { c.allocated++ }
func (c *countingObserver) NodeReleased()  { c.released++ }

func buildList(values ...int) *List {
	l := New()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	l := New()
	for i := range 5 {
		l.Append(i * 10)
	}

	want := []int{0, 10, 20, 30, 40}
	if diff := cmp.Diff(want, l.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 5 {
		t.Errorf("Len() = %d, want 5", l.Len())
	}
}

func TestAll_IsRestartable(t *testing.T) {
	t.Parallel()
	l := buildList(3, 1, 4)

	first := l.Values()
	second := l.Values()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second traversal differs (-first +second):\n%s", diff)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()
	l := buildList(1, 2, 3, 4)

	var seen []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("early break mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"five nodes", []int{0, 10, 20, 30, 40}, "0 10 20 30 40 "},
		{"empty", nil, ""},
		{"negative", []int{-1}, "-1 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := buildList(tt.values...).Print(&buf); err != nil {
				t.Fatalf("Print: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Print() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	t.Parallel()
	obs := &countingObserver{}
	arena := NewArena(0)
	l := New(WithArena(arena), WithObserver(obs))
	for i := range 5 {
		l.Append(i)
	}

	if got := l.Release(); got != 5 {
		t.Errorf("Release() = %d, want 5", got)
	}
	if !l.Empty() || l.Len() != 0 {
		t.Error("list should be empty after Release")
	}
	if arena.InUse() != 0 {
		t.Errorf("arena still holds %d nodes", arena.InUse())
	}
	if obs.allocated != 5 || obs.released != 5 {
		t.Errorf("observer saw %d allocations and %d releases, want 5 and 5", obs.allocated, obs.released)
	}
}

func TestRelease_EmptyIsNoop(t *testing.T) {
	t.Parallel()
	l := New()
	if got := l.Release(); got != 0 {
		t.Errorf("Release() on empty list = %d, want 0", got)
	}
	if got := l.Release(); got != 0 {
		t.Errorf("second Release() = %d, want 0", got)
	}
}

func TestRelease_ListIsReusable(t *testing.T) {
	t.Parallel()
	l := buildList(1, 2)
	l.Release()
	l.Append(7)
	if diff := cmp.Diff([]int{7}, l.Values()); diff != "" {
		t.Errorf("reuse mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_AllocationFailureIsFatal(t *testing.T) {
	t.Parallel()
	var fatalErr error
	l := New(
		WithArena(NewArena(2)),
		WithFatalHandler(func(err error) {
			fatalErr = err
			panic(errFatalCalled)
		}),
	)
	l.Append(1)
	l.Append(2)

	func() {
		defer func() {
			if r := recover(); r != errFatalCalled {
				t.Fatalf("expected fatal handler to run, recovered %v", r)
			}
		}()
		l.Append(3)
	}()

	var allocErr apperrors.AllocationError
	if !errors.As(fatalErr, &allocErr) {
		t.Fatalf("fatal handler received %v, want AllocationError", fatalErr)
	}
	if diff := cmp.Diff([]int{1, 2}, l.Values()); diff != "" {
		t.Errorf("failed append must leave the list unchanged (-want +got):\n%s", diff)
	}
}

func TestAppend_ReturningFatalHandlerPanics(t *testing.T) {
	t.Parallel()
	l := New(WithArena(NewArena(1)), WithFatalHandler(func(error) {}))
	l.Append(1)

	defer func() {
		r := recover()
		if _, ok := r.(apperrors.AllocationError); !ok {
			t.Errorf("expected panic with AllocationError, got %v", r)
		}
	}()
	l.Append(2)
}

var errFatalCalled = errors.New("fatal called")

func TestList_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("traversal returns appended values in order", prop.ForAll(
		func(values []int) bool {
			return slices.Equal(values, buildList(values...).Values())
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("release count equals length", prop.ForAll(
		func(values []int) bool {
			l := buildList(values...)
			return l.Release() == len(values) && l.Empty()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

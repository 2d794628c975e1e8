package list

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	apperrors "github.com/agbru/flowsample/internal/errors"
)

// Observer is notified of node lifecycle events.
type Observer interface {
	NodeAllocated()
	NodeReleased()
}

type nopObserver struct{}

func (nopObserver) NodeAllocated() {}
func (nopObserver) NodeReleased()  {}

// List is a singly linked list of integers. The zero value is not usable;
// create lists with New.
type List struct {
	arena    *Arena
	head     int
	observer Observer
	fatal    func(error)
}

// Option configures a List.
type Option func(*List)

// WithArena draws nodes from a.
func WithArena(a *Arena) Option {
	return func(l *List) { l.arena = a }
}

// WithObserver reports node allocations and releases to o.
func WithObserver(o Observer) Option {
	return func(l *List) { l.observer = o }
}

// WithFatalHandler replaces the handler invoked when a node cannot be
// acquired. The handler must not return control to the list; if it does,
// Append panics with the allocation error.
func WithFatalHandler(fn func(error)) Option {
	return func(l *List) { l.fatal = fn }
}

// New returns an empty list.
func New(opts ...Option) *List {
	l := &List{head: nilSlot, observer: nopObserver{}, fatal: DefaultFatal}
	for _, opt := range opts {
		opt(l)
	}
	if l.arena == nil {
		l.arena = NewArena(0)
	}
	return l
}

// DefaultFatal writes the allocation diagnostic to stderr and terminates the
// process with apperrors.ExitErrorAllocation.
func DefaultFatal(err error) {
	fmt.Fprintln(os.Stderr, apperrors.AllocationDiagnostic)
	os.Exit(apperrors.ExitErrorAllocation)
}

// Append adds value after the current tail. The tail is found by walking from
// the head on every call.
func (l *List) Append(value int) {
	idx, err := l.arena.alloc(value)
	if err != nil {
		l.fatal(err)
		panic(err)
	}
	l.observer.NodeAllocated()

	if l.head == nilSlot {
		l.head = idx
		return
	}
	cur := l.head
	for l.arena.at(cur).next != nilSlot {
		cur = l.arena.at(cur).next
	}
	l.arena.at(cur).next = idx
}

// All returns the stored values in insertion order. The sequence is lazy and
// may be ranged over any number of times.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := l.head; cur != nilSlot; cur = l.arena.at(cur).next {
			if !yield(l.arena.at(cur).value) {
				return
			}
		}
	}
}

// Values collects All into a slice.
func (l *List) Values() []int {
	return slices.Collect(l.All())
}

// Len counts the nodes reachable from the head.
func (l *List) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// Empty reports whether the list has no nodes.
func (l *List) Empty() bool {
	return l.head == nilSlot
}

// Print writes each value followed by a space, in insertion order.
func (l *List) Print(w io.Writer) error {
	for v := range l.All() {
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	return nil
}

// Release frees every node from head to tail and returns how many nodes were
// released. The successor is read before the current node is freed. The list
// is empty afterwards and may be reused.
func (l *List) Release() int {
	released := 0
	cur := l.head
	l.head = nilSlot
	for cur != nilSlot {
		victim := cur
		cur = l.arena.at(cur).next
		l.arena.release(victim)
		l.observer.NodeReleased()
		released++
	}
	return released
}

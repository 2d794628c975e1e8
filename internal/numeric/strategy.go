package numeric

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy computes Fibonacci numbers.
type Strategy interface {
	// Name returns the identifier used on the command line.
	Name() string
	// Compute returns F(n) under the recursive definition.
	Compute(n int) int
}

type funcStrategy struct {
	name string
	fn   func(int) int
}

func (s funcStrategy) Name() string      { return s.name }
func (s funcStrategy) Compute(n int) int { return s.fn(n) }

// Strategy names.
const (
	Recursive = "recursive"
	Iterative = "iterative"
	Memo      = "memo"
)

// NewStrategy wraps fn as a named Strategy.
func NewStrategy(name string, fn func(int) int) Strategy {
	return funcStrategy{name: name, fn: fn}
}

// Factory is a registry of named strategies.
type Factory struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{strategies: make(map[string]Strategy)}
}

// NewDefaultFactory returns a factory with the recursive, iterative and
// memo strategies registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register(NewStrategy(Recursive, Fibonacci))
	f.Register(NewStrategy(Iterative, fibonacciIterative))
	f.Register(NewStrategy(Memo, fibonacciMemo))
	return f
}

// Register adds or replaces a strategy.
func (f *Factory) Register(s Strategy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strategies[s.Name()] = s
}

// Get returns the strategy registered under name.
func (f *Factory) Get(name string) (Strategy, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown fibonacci strategy %q", name)
	}
	return s, nil
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.strategies))
	for name := range f.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered strategy, ordered by name.
func (f *Factory) GetAll() []Strategy {
	names := f.List()
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make([]Strategy, 0, len(names))
	for _, name := range names {
		all = append(all, f.strategies[name])
	}
	return all
}

package list

import apperrors "github.com/agbru/flowsample/internal/errors"

// nilSlot marks the absence of a successor.
const nilSlot = -1

type node struct {
	value int
	next  int
	live  bool
}

// Arena is a growable block of node slots. Released slots go on a free list
// and are reused before the block grows.
//
// A capacity of zero means the arena grows without limit; otherwise an
// allocation past capacity fails with apperrors.AllocationError.
type Arena struct {
	slots    []node
	free     []int
	capacity int
	inUse    int
}

// NewArena creates an arena limited to capacity live nodes (0 = unbounded).
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	a := &Arena{capacity: capacity}
	if capacity > 0 {
		a.slots = make([]node, 0, capacity)
	}
	return a
}

// alloc returns a fresh terminal node slot holding value.
func (a *Arena) alloc(value int) (int, error) {
	if a.capacity > 0 && a.inUse >= a.capacity {
		return nilSlot, apperrors.AllocationError{InUse: a.inUse, Capacity: a.capacity}
	}
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, node{})
		idx = len(a.slots) - 1
	}
	a.slots[idx] = node{value: value, next: nilSlot, live: true}
	a.inUse++
	return idx, nil
}

// release returns slot idx to the free list.
func (a *Arena) release(idx int) {
	if !a.slots[idx].live {
		panic("list: node slot released twice")
	}
	a.slots[idx] = node{next: nilSlot}
	a.free = append(a.free, idx)
	a.inUse--
}

func (a *Arena) at(idx int) *node {
	return &a.slots[idx]
}

// InUse returns the number of live nodes.
func (a *Arena) InUse() int {
	return a.inUse
}

// Capacity returns the configured node limit (0 = unbounded).
func (a *Arena) Capacity() int {
	return a.capacity
}

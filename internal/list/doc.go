// Package list implements a singly linked list of integers whose nodes are
// drawn from an index-addressed arena.
//
// Links are slot indices rather than pointers, so a released node cannot be
// reached again through the list: Release clears the head and hands every
// slot back to the arena's free list. Node acquisition failure is fatal; it
// is routed to the list's fatal handler and never returned to the caller.
package list

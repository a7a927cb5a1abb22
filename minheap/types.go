// SPDX-License-Identifier: MIT
// Package: lvpath/minheap
//
// types.go - Item, MaxKey and sentinel errors.

package minheap

import (
	"errors"
	"math"
)

// MaxKey is the largest representable key. Insert parks a new slot at
// MaxKey before lowering it to the requested key.
const MaxKey int64 = math.MaxInt64

// Sentinel errors returned by heap operations.
var (
	// ErrNilHeap is returned when a method is invoked on a nil *Heap.
	ErrNilHeap = errors.New("minheap: heap is nil")

	// ErrBadCapacity indicates a negative capacity or one below the item count.
	ErrBadCapacity = errors.New("minheap: invalid capacity")

	// ErrEmpty is returned by PeekMin, ExtractMin and DeleteMin on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")

	// ErrCapacityExhausted is returned by Insert when the heap is full.
	ErrCapacityExhausted = errors.New("minheap: capacity exhausted")

	// ErrPositionOutOfBounds is returned for a position outside [1, Len()].
	ErrPositionOutOfBounds = errors.New("minheap: position out of bounds")

	// ErrUnknownID is returned when an id is not currently in the heap.
	ErrUnknownID = errors.New("minheap: id not in heap")

	// ErrDuplicateID is returned when an id is already in the heap.
	ErrDuplicateID = errors.New("minheap: duplicate id")
)

// Item is one heap entry: a caller-chosen id ordered by Key.
type Item struct {
	ID  int
	Key int64
}

// SPDX-License-Identifier: MIT
// Package: lvpath/minheap
//
// heap.go - Heap, construction, queries and the sift operations.

// Package minheap implements an array-backed binary min-heap over int64 keys
// with a reverse index from item id to array position.
//
// The reverse index makes DecreaseKey by id O(log n) without scanning the
// array: every swap updates the positions of both moved items.
//
// Positions are 1-based: the root lives at position 1 and the children of
// position i live at 2i and 2i+1. Slot 0 of the backing array is unused.
//
// Complexity:
//
//   - Build:                 O(n)
//   - PeekMin:               O(1)
//   - ExtractMin, DeleteMin: O(log n)
//   - DecreaseKey, Insert:   O(log n)
//
// Ties between equal keys are broken by array position; no order among
// equal keys is guaranteed.
package minheap

import "fmt"

// Heap is an indexed binary min-heap. It is not safe for concurrent use.
type Heap struct {
	arr      []Item      // arr[1..Len()] is the live heap; arr[0] unused
	pos      map[int]int // id → position in arr
	capacity int
}

// New returns an empty heap able to hold capacity items.
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &Heap{
		arr:      make([]Item, 1, capacity+1),
		pos:      make(map[int]int, capacity),
		capacity: capacity,
	}, nil
}

// Build copies items into a new heap of capacity len(items) and restores
// the heap property bottom-up.
func Build(items []Item) (*Heap, error) {
	return BuildWithCapacity(items, len(items))
}

// BuildWithCapacity is Build with room for capacity-len(items) later inserts.
//
// Stage 1 (Validate): capacity ≥ len(items), ids unique.
// Stage 2 (Prepare): copy items into positions 1..n and index them.
// Stage 3 (Execute): heapify every internal node from n/2 down to 1.
func BuildWithCapacity(items []Item, capacity int) (*Heap, error) {
	if capacity < len(items) {
		return nil, fmt.Errorf("%w: %d < %d items", ErrBadCapacity, capacity, len(items))
	}
	h, err := New(capacity)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if _, dup := h.pos[it.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		h.arr = append(h.arr, it)
		h.pos[it.ID] = len(h.arr) - 1
	}
	for i := h.Len() / 2; i >= 1; i-- {
		h.heapify(i)
	}

	return h, nil
}

// Len returns the number of live items.
func (h *Heap) Len() int {
	if h == nil {
		return 0
	}

	return len(h.arr) - 1
}

// Cap returns the maximum number of items.
func (h *Heap) Cap() int {
	if h == nil {
		return 0
	}

	return h.capacity
}

// Empty reports whether the heap holds no items.
func (h *Heap) Empty() bool { return h.Len() == 0 }

// Contains reports whether id is currently in the heap.
func (h *Heap) Contains(id int) bool {
	if h == nil {
		return false
	}
	_, ok := h.pos[id]

	return ok
}

// Position returns the current 1-based position of id.
func (h *Heap) Position(id int) (int, bool) {
	if h == nil {
		return 0, false
	}
	p, ok := h.pos[id]

	return p, ok
}

// Key returns the current key of id.
func (h *Heap) Key(id int) (int64, bool) {
	p, ok := h.Position(id)
	if !ok {
		return 0, false
	}

	return h.arr[p].Key, true
}

// Items returns a copy of the live items in position order.
func (h *Heap) Items() []Item {
	if h == nil {
		return nil
	}
	out := make([]Item, h.Len())
	copy(out, h.arr[1:])

	return out
}

// PeekMin returns the root without removing it.
func (h *Heap) PeekMin() (Item, error) {
	if h == nil {
		return Item{}, ErrNilHeap
	}
	if h.Len() < 1 {
		return Item{}, ErrEmpty
	}

	return h.arr[1], nil
}

// ExtractMin removes and returns the root.
func (h *Heap) ExtractMin() (Item, error) {
	root, err := h.PeekMin()
	if err != nil {
		return Item{}, err
	}
	h.removeRoot()

	return root, nil
}

// DeleteMin removes the root without returning it.
func (h *Heap) DeleteMin() error {
	_, err := h.ExtractMin()

	return err
}

// DecreaseKey lowers the key of id to key and sifts it up.
// It reports false, without error, when key is not strictly smaller than
// the current key.
func (h *Heap) DecreaseKey(id int, key int64) (bool, error) {
	if h == nil {
		return false, ErrNilHeap
	}
	p, ok := h.pos[id]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return h.DecreaseKeyAt(p, key)
}

// DecreaseKeyAt lowers the key stored at position p (1 ≤ p ≤ Len()).
// Same no-op rule as DecreaseKey.
func (h *Heap) DecreaseKeyAt(p int, key int64) (bool, error) {
	if h == nil {
		return false, ErrNilHeap
	}
	if p < 1 || p > h.Len() {
		return false, fmt.Errorf("%w: %d not in [1,%d]", ErrPositionOutOfBounds, p, h.Len())
	}
	if key >= h.arr[p].Key {
		return false, nil
	}
	h.arr[p].Key = key
	for p > 1 && h.arr[parent(p)].Key > h.arr[p].Key {
		h.swap(p, parent(p))
		p = parent(p)
	}

	return true, nil
}

// Insert adds id with the given key.
func (h *Heap) Insert(id int, key int64) error {
	if h == nil {
		return ErrNilHeap
	}
	if h.Len() >= h.capacity {
		return fmt.Errorf("%w: cap %d", ErrCapacityExhausted, h.capacity)
	}
	if _, dup := h.pos[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	h.arr = append(h.arr, Item{ID: id, Key: MaxKey})
	h.pos[id] = h.Len()
	_, err := h.DecreaseKeyAt(h.Len(), key)

	return err
}

// parent, left and right are 1-based index helpers.
func parent(i int) int { return i / 2 }
func left(i int) int   { return 2 * i }
func right(i int) int  { return 2*i + 1 }

// heapify sifts position i down until both children hold larger or equal keys.
func (h *Heap) heapify(i int) {
	n := h.Len()
	for {
		least := i
		if l := left(i); l <= n && h.arr[l].Key < h.arr[least].Key {
			least = l
		}
		if r := right(i); r <= n && h.arr[r].Key < h.arr[least].Key {
			least = r
		}
		if least == i {
			return
		}
		h.swap(i, least)
		i = least
	}
}

// removeRoot moves the last item to the root, shrinks, and sifts down.
func (h *Heap) removeRoot() {
	last := h.Len()
	h.swap(1, last)
	delete(h.pos, h.arr[last].ID)
	h.arr = h.arr[:last]
	if h.Len() > 1 {
		h.heapify(1)
	}
}

// swap exchanges two positions and keeps the reverse index in step.
func (h *Heap) swap(i, j int) {
	h.arr[i], h.arr[j] = h.arr[j], h.arr[i]
	h.pos[h.arr[i].ID] = i
	h.pos[h.arr[j].ID] = j
}

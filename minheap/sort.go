// SPDX-License-Identifier: MIT
// Package: lvpath/minheap
//
// sort.go - HeapSort over a plain slice.

package minheap

// HeapSort arranges values in descending order in place and returns them.
//
// It builds a min-heap over values, then repeatedly swaps the root with the
// last live element and shrinks the live region by one, so the smallest
// remaining key settles at the tail each round.
// Complexity: O(n log n) time, O(1) extra space.
func HeapSort(values []int64) []int64 {
	n := len(values)
	for i := n / 2; i >= 1; i-- {
		siftDown(values, i, n)
	}
	for size := n; size >= 2; size-- {
		values[0], values[size-1] = values[size-1], values[0]
		siftDown(values, 1, size-1)
	}

	return values
}

// siftDown is heapify over a plain slice; i and size use 1-based positions,
// so position p lives at values[p-1].
func siftDown(values []int64, i, size int) {
	for {
		least := i
		if l := left(i); l <= size && values[l-1] < values[least-1] {
			least = l
		}
		if r := right(i); r <= size && values[r-1] < values[least-1] {
			least = r
		}
		if least == i {
			return
		}
		values[i-1], values[least-1] = values[least-1], values[i-1]
		i = least
	}
}

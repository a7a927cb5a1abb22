package minheap

// CheckInvariant reports the first position whose key is larger than one of
// its children, or 0 when the heap property and reverse index both hold.
func CheckInvariant(h *Heap) int {
	n := h.Len()
	for i := 1; i <= n; i++ {
		if p := h.pos[h.arr[i].ID]; p != i {
			return i
		}
		if l := left(i); l <= n && h.arr[l].Key < h.arr[i].Key {
			return i
		}
		if r := right(i); r <= n && h.arr[r].Key < h.arr[i].Key {
			return i
		}
	}
	if len(h.pos) != n {
		return -1
	}

	return 0
}

package cursorlist

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for list operations.
var (
	// ErrNilList is returned when a method is invoked on a nil *List.
	ErrNilList = errors.New("cursorlist: list is nil")

	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("cursorlist: list is empty")

	// ErrCursorUndefined is returned when an operation needs a defined cursor.
	ErrCursorUndefined = errors.New("cursorlist: cursor is undefined")
)

// none marks an absent link or an undefined cursor inside the arena.
const none = -1

// node is one arena slot. prev/next are slot indices or none.
type node struct {
	val  int
	prev int
	next int
}

// List is an ordered sequence of ints with a cursor.
//
// The zero value is not usable; call New or FromSlice.
type List struct {
	nodes []node // arena; live and free slots
	free  []int  // recycled slot indices

	front  int // slot of the first element or none
	back   int // slot of the last element or none
	cursor int // slot under the cursor or none
	index  int // logical cursor position, none when undefined
	length int
}

// New returns an empty list with an undefined cursor.
// Complexity: O(1).
func New() *List {
	return &List{front: none, back: none, cursor: none, index: none}
}

// FromSlice returns a list holding vals in the given order.
// Complexity: O(n).
func FromSlice(vals ...int) *List {
	l := New()
	l.nodes = make([]node, 0, len(vals))
	for _, v := range vals {
		l.Append(v)
	}

	return l
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// Index returns the cursor position in [0, Len()-1] and true,
// or (-1, false) when the cursor is undefined.
func (l *List) Index() (int, bool) {
	if l == nil || l.cursor == none {
		return none, false
	}

	return l.index, true
}

// Front returns the first element.
func (l *List) Front() (int, error) {
	if l == nil {
		return 0, ErrNilList
	}
	if l.length == 0 {
		return 0, ErrEmpty
	}

	return l.nodes[l.front].val, nil
}

// Back returns the last element.
func (l *List) Back() (int, error) {
	if l == nil {
		return 0, ErrNilList
	}
	if l.length == 0 {
		return 0, ErrEmpty
	}

	return l.nodes[l.back].val, nil
}

// Get returns the element under the cursor.
func (l *List) Get() (int, error) {
	if l == nil {
		return 0, ErrNilList
	}
	if l.cursor == none {
		return 0, ErrCursorUndefined
	}

	return l.nodes[l.cursor].val, nil
}

// Set overwrites the element under the cursor.
func (l *List) Set(v int) error {
	if l == nil {
		return ErrNilList
	}
	if l.cursor == none {
		return ErrCursorUndefined
	}
	l.nodes[l.cursor].val = v

	return nil
}

// Equals reports whether l and other hold the same sequence.
// Cursor state is ignored. Two nil lists are equal.
// Complexity: O(n).
func (l *List) Equals(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.length != other.length {
		return false
	}
	a, b := l.front, other.front
	for a != none {
		if l.nodes[a].val != other.nodes[b].val {
			return false
		}
		a, b = l.nodes[a].next, other.nodes[b].next
	}

	return true
}

// Clear empties the list and undefines the cursor. The arena is kept
// for reuse.
func (l *List) Clear() {
	if l == nil {
		return
	}
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.front, l.back = none, none
	l.cursor, l.index = none, none
	l.length = 0
}

// MoveFront places the cursor on the first element. No-op on an empty list.
func (l *List) MoveFront() {
	if l == nil || l.length == 0 {
		return
	}
	l.cursor, l.index = l.front, 0
}

// MoveBack places the cursor on the last element. No-op on an empty list.
func (l *List) MoveBack() {
	if l == nil || l.length == 0 {
		return
	}
	l.cursor, l.index = l.back, l.length-1
}

// MovePrev steps the cursor toward the front. At the front the cursor
// becomes undefined; with an undefined cursor it does nothing.
func (l *List) MovePrev() {
	if l == nil || l.cursor == none {
		return
	}
	l.cursor = l.nodes[l.cursor].prev
	if l.cursor == none {
		l.index = none
		return
	}
	l.index--
}

// MoveNext steps the cursor toward the back. At the back the cursor
// becomes undefined; with an undefined cursor it does nothing.
func (l *List) MoveNext() {
	if l == nil || l.cursor == none {
		return
	}
	l.cursor = l.nodes[l.cursor].next
	if l.cursor == none {
		l.index = none
		return
	}
	l.index++
}

// Prepend inserts v before the front element.
// A defined cursor keeps its element, so its index shifts by one.
func (l *List) Prepend(v int) {
	if l == nil {
		return
	}
	s := l.alloc(v)
	if l.length == 0 {
		l.front, l.back = s, s
	} else {
		l.nodes[s].next = l.front
		l.nodes[l.front].prev = s
		l.front = s
	}
	l.length++
	if l.cursor != none {
		l.index++
	}
}

// Append inserts v after the back element. The cursor is unaffected.
func (l *List) Append(v int) {
	if l == nil {
		return
	}
	s := l.alloc(v)
	if l.length == 0 {
		l.front, l.back = s, s
	} else {
		l.nodes[s].prev = l.back
		l.nodes[l.back].next = s
		l.back = s
	}
	l.length++
}

// InsertBefore inserts v immediately before the cursor element.
func (l *List) InsertBefore(v int) error {
	if l == nil {
		return ErrNilList
	}
	if l.cursor == none {
		return ErrCursorUndefined
	}
	l.linkBefore(l.cursor, v)
	l.index++

	return nil
}

// InsertAfter inserts v immediately after the cursor element.
func (l *List) InsertAfter(v int) error {
	if l == nil {
		return ErrNilList
	}
	if l.cursor == none {
		return ErrCursorUndefined
	}
	next := l.nodes[l.cursor].next
	if next == none {
		l.Append(v)
		return nil
	}
	l.linkBefore(next, v)

	return nil
}

// InsertInOrder inserts v before the first element strictly greater than v,
// or appends it when there is none. On an ascending list the result stays
// ascending and equal values keep their insertion order.
// The cursor stays on the same element.
// Complexity: O(n).
func (l *List) InsertInOrder(v int) {
	if l == nil {
		return
	}
	pos := 0
	for s := l.front; s != none; s = l.nodes[s].next {
		if v < l.nodes[s].val {
			l.linkBefore(s, v)
			if l.cursor != none && pos <= l.index {
				l.index++
			}
			return
		}
		pos++
	}
	l.Append(v)
}

// DeleteFront removes the first element.
func (l *List) DeleteFront() error {
	if l == nil {
		return ErrNilList
	}
	if l.length == 0 {
		return ErrEmpty
	}
	l.unlink(l.front, 0)

	return nil
}

// DeleteBack removes the last element.
func (l *List) DeleteBack() error {
	if l == nil {
		return ErrNilList
	}
	if l.length == 0 {
		return ErrEmpty
	}
	l.unlink(l.back, l.length-1)

	return nil
}

// Delete removes the cursor element; the cursor becomes undefined.
func (l *List) Delete() error {
	if l == nil {
		return ErrNilList
	}
	if l.cursor == none {
		return ErrCursorUndefined
	}
	l.unlink(l.cursor, l.index)

	return nil
}

// Copy returns a new list with the same sequence and an undefined cursor.
// Complexity: O(n).
func (l *List) Copy() *List {
	if l == nil {
		return nil
	}

	return FromSlice(l.ToSlice()...)
}

// ToSlice returns the elements front to back in a fresh slice.
func (l *List) ToSlice() []int {
	if l == nil {
		return nil
	}
	out := make([]int, 0, l.length)
	for s := l.front; s != none; s = l.nodes[s].next {
		out = append(out, l.nodes[s].val)
	}

	return out
}

// String renders the elements separated by single spaces.
func (l *List) String() string {
	if l == nil {
		return ""
	}
	var b strings.Builder
	for s := l.front; s != none; s = l.nodes[s].next {
		if s != l.front {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(l.nodes[s].val))
	}

	return b.String()
}

// alloc takes a slot from the free list or grows the arena.
func (l *List) alloc(v int) int {
	if n := len(l.free); n > 0 {
		s := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[s] = node{val: v, prev: none, next: none}
		return s
	}
	l.nodes = append(l.nodes, node{val: v, prev: none, next: none})

	return len(l.nodes) - 1
}

// linkBefore inserts a new node holding v in front of slot at.
// Cursor bookkeeping is left to the caller.
func (l *List) linkBefore(at, v int) {
	s := l.alloc(v)
	prev := l.nodes[at].prev
	l.nodes[s].prev = prev
	l.nodes[s].next = at
	l.nodes[at].prev = s
	if prev == none {
		l.front = s
	} else {
		l.nodes[prev].next = s
	}
	l.length++
}

// unlink removes slot s sitting at logical position pos and fixes the cursor.
func (l *List) unlink(s, pos int) {
	prev, next := l.nodes[s].prev, l.nodes[s].next
	if prev == none {
		l.front = next
	} else {
		l.nodes[prev].next = next
	}
	if next == none {
		l.back = prev
	} else {
		l.nodes[next].prev = prev
	}

	switch {
	case s == l.cursor:
		l.cursor, l.index = none, none
	case l.cursor != none && pos < l.index:
		l.index--
	}

	l.nodes[s] = node{prev: none, next: none}
	l.free = append(l.free, s)
	l.length--
	if l.length == 0 {
		// empty: reset the arena
		l.nodes = l.nodes[:0]
		l.free = l.free[:0]
	}
}

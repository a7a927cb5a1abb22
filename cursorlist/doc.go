// Package cursorlist provides an ordered, doubly linked sequence of integers
// with a movable cursor.
//
// What
//
//   - Front/back access, insertion at either end, and insertion or deletion
//     next to the cursor in O(1).
//   - InsertInOrder keeps a list sorted ascending; equal values keep their
//     insertion order.
//   - The cursor is either undefined or sits on one element. Index reports
//     the cursor's position together with an ok flag instead of a magic -1.
//
// Why
//
//   - The graph engine stores every adjacency list as a cursorlist.List and
//     walks it with MoveFront/MoveNext until the cursor falls off the end.
//   - Path reconstruction builds its output back-to-front with InsertBefore
//     and MovePrev.
//
// Storage
//
//	Nodes live in a per-list arena ([]node) and link to each other by slot
//	index, so a list owns all of its nodes and nothing outlives it. Slots
//	released by deletions are recycled by later insertions.
//
// Errors
//
//   - ErrNilList          if a method is called on a nil *List.
//   - ErrEmpty            if Front/Back/DeleteFront/DeleteBack run on an empty list.
//   - ErrCursorUndefined  if Get/Set/InsertBefore/InsertAfter/Delete run without a cursor.
//
// Lists are not safe for concurrent use.
package cursorlist

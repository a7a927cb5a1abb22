package core

import (
	"fmt"

	"github.com/katalvlaran/lvpath/cursorlist"
)

// resetState marks every vertex unvisited, unreached and parentless.
func (g *Graph) resetState() {
	for v := 0; v <= g.order; v++ {
		g.visited[v] = false
		g.distance[v] = Infinity
		g.parent[v] = Nil
	}
}

// Parent returns v's predecessor in the last traversal tree.
// ok is false, and the id is Nil, when v is the source, was not reached,
// or no traversal has run.
func (g *Graph) Parent(v int) (int, bool, error) {
	if g == nil {
		return Nil, false, ErrNilGraph
	}
	if err := g.checkVertex(v); err != nil {
		return Nil, false, fmt.Errorf("Parent: %w", err)
	}
	p := g.parent[v]

	return p, p != Nil, nil
}

// Distance returns v's distance from the last traversal source: hop count
// after BFS, path weight after Dijkstra. ok is false, and the distance is
// Infinity, when v was not reached or no traversal has run.
func (g *Graph) Distance(v int) (int64, bool, error) {
	if g == nil {
		return Infinity, false, ErrNilGraph
	}
	if err := g.checkVertex(v); err != nil {
		return Infinity, false, fmt.Errorf("Distance: %w", err)
	}
	d := g.distance[v]

	return d, d != Infinity, nil
}

// Visited reports whether the last traversal reached (BFS) or settled
// (Dijkstra) v.
func (g *Graph) Visited(v int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("Visited: %w", err)
	}

	return g.visited[v], nil
}

// AppendPath appends to l the vertices of the last traversal's path from
// the source to v, source first. When v is unreachable it appends a single
// Nil and reports false.
//
// The path is built back to front: v is appended, then each parent is
// inserted before the cursor and the cursor steps back onto it. On return
// the cursor rests on the source.
//
// Preconditions (in order): l non-nil, a traversal has run, 1 ≤ v ≤ Order().
// Complexity: O(path length).
func (g *Graph) AppendPath(l *cursorlist.List, v int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if l == nil {
		return false, ErrNilList
	}
	if g.source == Nil {
		return false, ErrNoSource
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("AppendPath: %w", err)
	}

	// Unreachable target: a lone Nil marks "no path"
	if g.parent[v] == Nil && v != g.source {
		l.Append(Nil)
		return false, nil
	}
	// Anchor the cursor on v, then prepend ancestors one by one
	l.Append(v)
	l.MoveBack()
	for p := g.parent[v]; p != Nil; p = g.parent[p] {
		if err := l.InsertBefore(p); err != nil {
			return false, err
		}
		l.MovePrev()
	}

	return true, nil
}

// Path returns the source-to-v path of the last traversal. When v is
// unreachable it returns []int{Nil} and false.
func (g *Graph) Path(v int) ([]int, bool, error) {
	l := cursorlist.New()
	ok, err := g.AppendPath(l, v)
	if err != nil {
		return nil, false, err
	}

	return l.ToSlice(), ok, nil
}

package core

import "fmt"

// vertexError wraps ErrVertexOutOfBounds with the offending id.
func vertexError(v, order int) error {
	return fmt.Errorf("%w: %d not in [1,%d]", ErrVertexOutOfBounds, v, order)
}

// AddEdge records an undirected edge u–v: v joins u's adjacency list and
// u joins v's, both in ascending position. Size grows by one.
// A self-loop puts u into its own list twice.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) AddEdge(u, v int) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	// Mirror the edge into both lists
	g.adjacency[u].InsertInOrder(v)
	g.adjacency[v].InsertInOrder(u)
	g.size++

	return nil
}

// AddArc records a directed arc u→v in u's adjacency list. Size grows by one.
// Complexity: O(deg(u)).
func (g *Graph) AddArc(u, v int) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("AddArc(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("AddArc(%d,%d): %w", u, v, err)
	}
	g.adjacency[u].InsertInOrder(v)
	g.size++

	return nil
}

// Clear removes every edge and arc and resets Size to zero.
// Traversal state is left as it was. Calling Clear twice is harmless.
func (g *Graph) Clear() {
	if g == nil {
		return
	}
	for v := 1; v <= g.order; v++ {
		g.adjacency[v].Clear()
	}
	g.size = 0
}

// Neighbors returns v's adjacency list in ascending order as a fresh slice.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.adjacency[v].ToSlice(), nil
}

// HasArc reports whether v appears in u's adjacency list.
func (g *Graph) HasArc(u, v int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if err := g.checkVertex(u); err != nil {
		return false, err
	}
	if err := g.checkVertex(v); err != nil {
		return false, err
	}
	// Walk the sorted list; stop early once past v
	adj := g.adjacency[u]
	for adj.MoveFront(); ; adj.MoveNext() {
		if _, ok := adj.Index(); !ok {
			return false, nil
		}
		w, _ := adj.Get()
		if w == v {
			return true, nil
		}
		if w > v {
			return false, nil
		}
	}
}

// OutDegree returns the length of v's adjacency list.
func (g *Graph) OutDegree(v int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.adjacency[v].Len(), nil
}

// Copy returns a graph with the same order, size and adjacency lists.
// The copy has no traversal state and shares the logger.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	if g == nil {
		return nil
	}
	c, _ := New(g.order, WithLogger(g.log))
	for v := 1; v <= g.order; v++ {
		c.adjacency[v] = g.adjacency[v].Copy()
	}
	c.size = g.size

	return c
}

// Transpose returns a graph with every arc reversed: v appears in the
// transpose's list of u exactly as often as u appears in v's list here.
// Undirected edges map onto themselves. Size is carried over.
// Complexity: O(V + E).
func (g *Graph) Transpose() *Graph {
	if g == nil {
		return nil
	}
	t, _ := New(g.order, WithLogger(g.log))
	for u := 1; u <= g.order; u++ {
		adj := g.adjacency[u]
		for adj.MoveFront(); ; adj.MoveNext() {
			if _, ok := adj.Index(); !ok {
				break
			}
			v, _ := adj.Get()
			// u ascends, so appending keeps every list sorted
			t.adjacency[v].Append(u)
		}
	}
	t.size = g.size

	return t
}

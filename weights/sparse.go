package weights

import "fmt"

// arc keys Sparse entries.
type arc struct{ u, v int }

// Sparse stores arc weights in a map. It suits large, thin graphs where an
// order×order matrix would be mostly empty.
type Sparse struct {
	w map[arc]int64
}

// NewSparse returns an empty store.
func NewSparse() *Sparse {
	return &Sparse{w: make(map[arc]int64)}
}

// Set stores weight w for u→v, replacing any previous value.
func (s *Sparse) Set(u, v int, w int64) error {
	if w < 0 {
		return fmt.Errorf("Sparse.Set(%d,%d): %w", u, v, ErrNegativeWeight)
	}
	s.w[arc{u, v}] = w

	return nil
}

// SetEdge stores w for both directions.
func (s *Sparse) SetEdge(u, v int, w int64) error {
	if err := s.Set(u, v, w); err != nil {
		return err
	}

	return s.Set(v, u, w)
}

// Len returns the number of stored arcs.
func (s *Sparse) Len() int { return len(s.w) }

// Weight implements core.Weigher.
func (s *Sparse) Weight(u, v int) (int64, bool) {
	w, ok := s.w[arc{u, v}]

	return w, ok
}

// Func adapts a function to core.Weigher.
type Func func(u, v int) (int64, bool)

// Weight calls f(u, v).
func (f Func) Weight(u, v int) (int64, bool) { return f(u, v) }

// Unit weighs every arc 1, which makes Dijkstra distances equal BFS hop
// counts.
var Unit = Func(func(int, int) (int64, bool) { return 1, true })

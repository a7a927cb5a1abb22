// Package weights provides arc-weight stores that satisfy core.Weigher.
// Dense is a row-major order×order matrix with a presence mask, storing
// weights in a flat slice for cache friendliness.
package weights

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that the requested order is non-positive.
var ErrInvalidDimensions = errors.New("weights: order must be > 0")

// ErrIndexOutOfBounds indicates that a vertex id is outside [1, order].
var ErrIndexOutOfBounds = errors.New("weights: vertex out of bounds")

// ErrNegativeWeight indicates an attempt to store a negative weight.
var ErrNegativeWeight = errors.New("weights: negative weight")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, u, v int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, u, v, err)
}

// Dense stores arc weights for vertices 1..n in an n×n row-major matrix.
// Cell (u,v) is meaningful only when its presence bit is set, so a zero
// weight and a missing arc are never confused.
type Dense struct {
	n       int     // number of vertices
	data    []int64 // flat weights, length n*n
	present []bool  // flat presence mask, length n*n
}

// NewDense creates an empty order×order weight matrix.
// Stage 1 (Validate): ensure order > 0.
// Stage 2 (Prepare): allocate flat backing slices.
// Complexity: O(order²) time and memory.
func NewDense(order int) (*Dense, error) {
	if order <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		n:       order,
		data:    make([]int64, order*order),
		present: make([]bool, order*order),
	}, nil
}

// Order returns the number of vertices the matrix covers.
func (m *Dense) Order() int {
	return m.n
}

// indexOf computes the flat index for arc (u,v) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 1 ≤ u, v ≤ n.
// Stage 2 (Execute): compute the row-major offset.
// Complexity: O(1).
func (m *Dense) indexOf(method string, u, v int) (int, error) {
	// Validate row vertex
	if u < 1 || u > m.n {
		return 0, denseErrorf(method, u, v, ErrIndexOutOfBounds)
	}
	// Validate column vertex
	if v < 1 || v > m.n {
		return 0, denseErrorf(method, u, v, ErrIndexOutOfBounds)
	}

	// Compute flat offset; vertices are 1-based, rows are 0-based
	return (u-1)*m.n + (v - 1), nil
}

// Set stores weight w for the arc u→v.
// Stage 1 (Validate): bounds via indexOf, then w ≥ 0.
// Stage 2 (Execute): write the weight and raise the presence bit.
// Complexity: O(1).
func (m *Dense) Set(u, v int, w int64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", u, v)
	if err != nil {
		return err
	}
	// Reject negative weights at the source
	if w < 0 {
		return denseErrorf("Set", u, v, ErrNegativeWeight)
	}
	m.data[idx] = w
	m.present[idx] = true

	return nil
}

// SetEdge stores w for both u→v and v→u.
func (m *Dense) SetEdge(u, v int, w int64) error {
	if err := m.Set(u, v, w); err != nil {
		return err
	}

	return m.Set(v, u, w)
}

// Unset forgets the weight of u→v.
func (m *Dense) Unset(u, v int) error {
	idx, err := m.indexOf("Unset", u, v)
	if err != nil {
		return err
	}
	// Clear both the value and its presence bit
	m.data[idx] = 0
	m.present[idx] = false

	return nil
}

// At returns the weight of u→v and whether it is set.
func (m *Dense) At(u, v int) (int64, bool, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", u, v)
	if err != nil {
		return 0, false, err
	}
	// Return stored value with its presence bit

	return m.data[idx], m.present[idx], nil
}

// Weight implements core.Weigher. Out-of-range ids read as missing.
func (m *Dense) Weight(u, v int) (int64, bool) {
	w, ok, err := m.At(u, v)
	if err != nil {
		return 0, false
	}

	return w, ok
}

// String renders one row per vertex; unset cells print as ".".
// Complexity: O(order²).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ { // iterate over rows
		b.WriteString("[")
		for j := 0; j < m.n; j++ { // iterate over columns
			if j > 0 {
				b.WriteString(", ")
			}
			k := i*m.n + j
			if m.present[k] {
				fmt.Fprintf(&b, "%d", m.data[k])
			} else {
				b.WriteString(".")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

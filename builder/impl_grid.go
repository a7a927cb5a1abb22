// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood orthogonal grid.
//
// Cell (r, c), 0-based, is vertex r*cols + c + 1 (row-major). For each cell
// the Right then Bottom neighbor is linked when present. Directed builds also
// emit the reverse arc so neighborhoods stay symmetric.
//
// Complexity: O(rows*cols) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridVertex maps a 0-based cell to its vertex in a grid with cols columns.
func GridVertex(r, c, cols int) int {
	return r*cols + c + 1
}

// Grid returns a Constructor for a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireOrder(methodGrid, g, rows*cols); err != nil {
			return err
		}

		pair := func(u, v int) error {
			if err := link(methodGrid, g, w, cfg, u, v); err != nil {
				return err
			}
			if cfg.directed {
				return link(methodGrid, g, w, cfg, v, u)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertex(r, c, cols)
				if c+1 < cols {
					if err := pair(u, GridVertex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := pair(u, GridVertex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

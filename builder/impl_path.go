// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - Path(n): vertices 1..n, edges i→i+1 in ascending i.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := requireOrder(methodPath, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(methodPath, g, w, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

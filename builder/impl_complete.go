// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_complete.go - Complete(n): every pair {i,j}, i<j, once; directed
// builds emit both i→j and j→i.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := requireOrder(methodComplete, g, n); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err := link(methodComplete, g, w, cfg, i, j); err != nil {
					return err
				}
				if !cfg.directed {
					continue
				}
				if err := link(methodComplete, g, w, cfg, j, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

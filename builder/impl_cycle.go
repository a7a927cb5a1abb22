// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_cycle.go - Cycle(n): Path(n) closed by n→1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Edges are emitted as i→i%n+1 for i = 1..n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := requireOrder(methodCycle, g, n); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			if err := link(methodCycle, g, w, cfg, i, i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}

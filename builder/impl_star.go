// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_star.go - Star(n): center 1 with spokes to 2..n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor with center 1 and leaves 2..n (n ≥ 2).
// Directed builds point every spoke away from the center.
func Star(n int) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireOrder(methodStar, g, n); err != nil {
			return err
		}
		for leaf := 2; leaf <= n; leaf++ {
			if err := link(methodStar, g, w, cfg, 1, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

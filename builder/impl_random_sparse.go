// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Undirected builds try unordered pairs {i,j}, i<j; directed builds try
// ordered pairs (i,j), i≠j. Each pair is included independently with
// probability p. Trial order is i asc, then j asc, so a fixed seed yields a
// fixed graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling pairs over vertices 1..n.
// An RNG is required only when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := requireOrder(methodRandomSparse, g, n); err != nil {
			return err
		}

		include := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}

		for i := 1; i <= n; i++ {
			start := i + 1
			if cfg.directed {
				start = 1
			}
			for j := start; j <= n; j++ {
				if i == j || !include() {
					continue
				}
				if err := link(methodRandomSparse, g, w, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

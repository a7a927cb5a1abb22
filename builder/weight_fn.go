// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// weight_fn.go - WeightFn distributions for emitted edges.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight recorded when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces a non-negative edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi] inclusive.
// Panics unless 0 ≤ lo ≤ hi. A nil rng yields lo.
// Complexity: O(1).
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

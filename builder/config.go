// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - builderConfig resolution and BuilderOptions.

package builder

import (
	"math/rand"
)

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	// directed selects AddArc over AddEdge.
	directed bool
	// rng feeds RandomSparse and random weight functions; nil unless set.
	rng *rand.Rand
	// weightFn produces one weight per emitted edge or arc.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithDirected makes constructors emit one-way arcs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

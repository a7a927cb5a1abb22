// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - BuildGraph orchestrator and the shared edge emitter.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

// Constructor applies a deterministic mutation to g and records the weight of
// every emitted edge in w. Constructors validate parameters before touching g
// and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, w *weights.Sparse, cfg builderConfig) error

// BuildGraph creates an order-vertex graph, resolves bopts and applies every
// constructor in order. Errors are wrapped as "BuildGraph: %w"; the partial
// graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(order int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, *weights.Sparse, error) {
	g, err := core.New(order)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildGraph: %w", err)
	}
	w := weights.NewSparse()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, w, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, w, nil
}

// requireOrder fails when g cannot hold vertices 1..n.
func requireOrder(method string, g *core.Graph, n int) error {
	if g.Order() < n {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, n, g.Order(), ErrOrderTooSmall)
	}

	return nil
}

// link emits u→v (and v→u when undirected) with one drawn weight.
func link(method string, g *core.Graph, w *weights.Sparse, cfg builderConfig, u, v int) error {
	wt := cfg.weightFn(cfg.rng)

	var err error
	if cfg.directed {
		if err = g.AddArc(u, v); err == nil {
			err = w.Set(u, v, wt)
		}
	} else {
		if err = g.AddEdge(u, v); err == nil {
			err = w.SetEdge(u, v, wt)
		}
	}
	if err != nil {
		return fmt.Errorf("%s: link(%d→%d, w=%d): %w: %w", method, u, v, wt, err, ErrConstructFailed)
	}

	return nil
}

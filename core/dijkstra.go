package core

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/minheap"
)

// Weigher looks up arc weights for Dijkstra.
//
// Weight returns the weight of the arc u→v and true, or false when no such
// arc is known. A missing weight is never read as a number: the arc is
// simply not relaxed.
type Weigher interface {
	Weight(u, v int) (int64, bool)
}

// WeightFunc adapts a plain function to Weigher.
type WeightFunc func(u, v int) (int64, bool)

// Weight calls f(u, v).
func (f WeightFunc) Weight(u, v int) (int64, bool) { return f(u, v) }

// Dijkstra computes single-source shortest paths from source over the
// adjacency lists, reading arc weights from w.
//
// Algorithm:
//  1. Reset state: distance[source] = 0, every other distance Infinity,
//     no parents.
//  2. Build a min-heap over all vertices keyed by distance.
//  3. Extract the minimum x. If its distance is Infinity every remaining
//     vertex is unreachable and the loop ends. Otherwise x is settled and
//     each neighbor y of x is relaxed:
//     candidate = distance[x] + w(x,y); if candidate < distance[y] then
//     parent[y] = x, distance[y] = candidate, and y's heap key decreases.
//
// Preconditions (in order): w non-nil, 1 ≤ source ≤ Order().
// A negative weight aborts the run with ErrNegativeWeight; the graph's
// state is then partial and should not be read.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func (g *Graph) Dijkstra(source int, w Weigher, opts ...TraversalOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if w == nil {
		return ErrNilWeigher
	}
	if err := g.checkVertex(source); err != nil {
		return fmt.Errorf("Dijkstra: %w", err)
	}
	o := buildTraversalOptions(opts)

	// Stage 1: reset state; only the source starts at a finite distance
	g.source = source
	g.resetState()
	g.distance[source] = 0

	// Stage 2: heap over every vertex keyed by its current distance
	items := make([]minheap.Item, 0, g.order)
	for v := 1; v <= g.order; v++ {
		items = append(items, minheap.Item{ID: v, Key: g.distance[v]})
	}
	pq, err := minheap.Build(items)
	if err != nil {
		return fmt.Errorf("Dijkstra: %w", err)
	}

	// Stage 3: settle the closest vertex, then relax its arcs
	r := &relaxer{g: g, w: w, pq: pq}
	settled := 0
	for !pq.Empty() {
		it, _ := pq.ExtractMin()
		x := it.ID
		if g.distance[x] == Infinity {
			break // everything left is unreachable
		}
		g.visited[x] = true
		settled++
		if err := o.onVisit(x, g.distance[x]); err != nil {
			return fmt.Errorf("Dijkstra: OnVisit error at %d: %w", x, err)
		}

		adj := g.adjacency[x]
		for adj.MoveFront(); ; adj.MoveNext() {
			if _, ok := adj.Index(); !ok {
				break
			}
			y, _ := adj.Get()
			if err := r.relax(x, y); err != nil {
				return err
			}
		}
	}

	g.log.WithFields(logrus.Fields{
		"algorithm": "dijkstra",
		"source":    source,
		"order":     g.order,
		"reached":   settled,
		"relaxed":   r.improved,
	}).Debug("traversal complete")

	return nil
}

// relaxer carries the state shared by relaxations of one Dijkstra run.
type relaxer struct {
	g        *Graph
	w        Weigher
	pq       *minheap.Heap
	improved int
}

// relax tries to shorten the path to y through x.
// Assumes distance[x] is final and finite.
func (r *relaxer) relax(x, y int) error {
	// Look up the arc weight; missing means no arc to relax
	wt, ok := r.w.Weight(x, y)
	if !ok {
		r.g.log.WithFields(logrus.Fields{"from": x, "to": y}).Debug("no weight for arc; skipped")
		return nil
	}
	if wt < 0 {
		return fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, x, y, wt)
	}

	dx := r.g.distance[x]
	if wt >= Infinity-dx {
		// the sum would reach Infinity; y stays unreached through x
		return nil
	}
	candidate := dx + wt
	if candidate >= r.g.distance[y] {
		return nil // no strict improvement
	}
	// Record the shorter path and sift y toward the root
	r.g.parent[y] = x
	r.g.distance[y] = candidate
	r.improved++
	if _, err := r.pq.DecreaseKey(y, candidate); err != nil {
		return fmt.Errorf("Dijkstra: %w", err)
	}

	return nil
}

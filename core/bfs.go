package core

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/cursorlist"
)

// BFS runs breadth-first search from source and records, for every vertex,
// whether it was reached, its hop distance and its parent in the BFS tree.
//
// Algorithm:
//  1. Reset visited/distance/parent for all vertices; mark source visited
//     at distance 0.
//  2. Dequeue u; scan u's adjacency list in ascending order; every
//     unvisited neighbor v becomes visited with distance[u]+1, parent u,
//     and is enqueued.
//  3. Stop when the queue is empty.
//
// The frontier is a cursorlist.List used as a FIFO queue.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) BFS(source int, opts ...TraversalOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return fmt.Errorf("BFS: %w", err)
	}
	o := buildTraversalOptions(opts)

	// Reset per-vertex state and seed the source
	g.source = source
	g.resetState()
	g.visited[source] = true
	g.distance[source] = 0

	// FIFO frontier: append at the back, pop at the front
	queue := cursorlist.New()
	queue.Append(source)
	reached := 1
	for queue.Len() > 0 {
		u, _ := queue.Front()
		_ = queue.DeleteFront()
		if err := o.onVisit(u, g.distance[u]); err != nil {
			return fmt.Errorf("BFS: OnVisit error at %d: %w", u, err)
		}

		// Scan u's neighbors in ascending order
		adj := g.adjacency[u]
		for adj.MoveFront(); ; adj.MoveNext() {
			if _, ok := adj.Index(); !ok {
				break // cursor fell off the back
			}
			v, _ := adj.Get()
			if g.visited[v] {
				continue
			}
			// First discovery fixes v's hop distance and parent
			g.visited[v] = true
			g.distance[v] = g.distance[u] + 1
			g.parent[v] = u
			queue.Append(v)
			reached++
		}
	}

	g.log.WithFields(logrus.Fields{
		"algorithm": "bfs",
		"source":    source,
		"order":     g.order,
		"reached":   reached,
	}).Debug("traversal complete")

	return nil
}

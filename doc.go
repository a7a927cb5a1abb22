// Package lvpath is an in-memory engine for vertex-indexed graphs: build a
// graph by edge and arc insertion, then ask breadth-first or shortest-path
// questions about it.
//
// What is in the box?
//
//	• core/       Graph over vertices 1..n, AddEdge/AddArc, BFS, Dijkstra,
//	              Distance/Parent/Visited queries and path reconstruction
//	• minheap/    indexed binary min-heap with decrease-key and HeapSort
//	• cursorlist/ ordered list with a movable cursor; adjacency lists and
//	              path buffers are built on it
//	• weights/    arc weight tables (Dense matrix, Sparse map, Func, Unit)
//	• builder/    deterministic fixture graphs (Path, Cycle, Star, Grid,
//	              Complete, RandomSparse)
//	• cmd/graphclient  YAML-driven demo printing traversals to the console
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	g, _ := core.New(4)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	_ = g.AddEdge(3, 4)
//	_ = g.AddEdge(4, 1)
//	_ = g.BFS(1)
//	path, _, _ := g.Path(3) // [1 2 3]
//
// Weights never live in the graph itself. Dijkstra asks a core.Weigher for
// each arc it relaxes, so the same topology can be searched under several
// weightings.
package lvpath

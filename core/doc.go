// Package core provides a vertex-indexed graph engine: sorted adjacency
// lists, breadth-first search, Dijkstra's shortest paths and path
// reconstruction.
//
// The Graph G = (V,E) has a fixed vertex set V = {1, …, n} chosen at
// construction. Edges and arcs are recorded in per-vertex adjacency lists
// (cursorlist.List) kept in ascending order, so every traversal scans
// neighbors deterministically from smallest to largest id.
//
// Lifecycles:
//
//   - Edge set: AddEdge (undirected, two list entries), AddArc (directed,
//     one entry), Clear (remove all). Size counts successful add calls.
//   - Traversal state: BFS or Dijkstra reset visited/distance/parent for
//     every vertex, then fill them from the chosen source. Each call is a
//     full re-run; capture results before the next call if you need both.
//
// Sentinels and explicit flags:
//
//	Nil      (0)             : no vertex: parent of the source, of unreached
//	                           vertices, and Source() before any traversal.
//	Infinity (math.MaxInt64) : distance of unreached vertices.
//
//	Parent, Distance and Path return an ok flag next to the value, so callers
//	never have to compare against the sentinels.
//
// Weights:
//
//	Dijkstra reads weights through the Weigher interface
//	(Weight(u, v) (int64, bool)). Storage is up to the caller; see package
//	weights for a dense matrix and a sparse map. A lookup reporting false
//	means "no such arc" and the arc is skipped.
//
// Complexity (V = Order(), E = adjacency entries):
//
//   - AddEdge/AddArc: O(deg) sorted insertion
//   - BFS:            O(V + E)
//   - Dijkstra:       O((V + E) log V) with an indexed binary heap
//   - Path:           O(path length)
//
// Logging:
//
//	WithLogger(logrus.FieldLogger) receives a Debug entry per traversal
//	(fields: algorithm, source, order, reached). The default logger
//	discards output.
//
// A Graph is not safe for concurrent use.
package core

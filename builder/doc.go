// Package builder assembles deterministic fixture graphs for core: paths,
// cycles, stars, complete graphs, orthogonal grids and seeded random sparse
// graphs, each paired with a weights.Sparse table.
//
// A build is one call to BuildGraph with functional options and a sequence of
// Constructors applied in order:
//
//	g, w, err := builder.BuildGraph(16,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(4, 4))
//
// Vertices are the 1-based integers of core. Every constructor numbers its
// own vertices from 1, so the graph order must cover the largest vertex it
// touches (else ErrOrderTooSmall). Undirected builds add each edge with
// AddEdge and record a symmetric weight; WithDirected switches to AddArc.
//
// Determinism: equal order, options, seed and constructor list produce equal
// adjacency lists and weights.
package builder

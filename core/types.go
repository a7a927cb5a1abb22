// types.go declares Graph, GraphOption, the Nil/Infinity sentinels,
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrNilGraph          - method called on a nil *Graph.
//	ErrBadOrder          - New called with order ≤ 0.
//	ErrVertexOutOfBounds - vertex id outside [1, Order()].
//	ErrNoSource          - path queried before any traversal ran.
//	ErrNilList           - AppendPath given a nil output list.
//	ErrNilWeigher        - Dijkstra given a nil weight lookup.
//	ErrNegativeWeight    - the weight lookup reported a negative weight.

package core

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/cursorlist"
)

// Nil is the "no vertex" id: the parent of a source or of an unreached
// vertex, and the source of a graph that was never traversed.
const Nil = 0

// Infinity is the distance reported for vertices a traversal did not reach.
// No real distance can equal it: relaxation never produces a sum past it.
const Infinity int64 = math.MaxInt64

// Sentinel errors for graph operations.
var (
	// ErrNilGraph indicates a method was called on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrBadOrder indicates a non-positive vertex count.
	ErrBadOrder = errors.New("core: order must be positive")

	// ErrVertexOutOfBounds indicates a vertex id outside [1, Order()].
	ErrVertexOutOfBounds = errors.New("core: vertex out of bounds")

	// ErrNoSource indicates a path query before BFS or Dijkstra set a source.
	ErrNoSource = errors.New("core: no traversal source; run BFS or Dijkstra first")

	// ErrNilList indicates a nil output list was passed to AppendPath.
	ErrNilList = errors.New("core: output list is nil")

	// ErrNilWeigher indicates Dijkstra was called without a weight lookup.
	ErrNilWeigher = errors.New("core: weight lookup is nil")

	// ErrNegativeWeight indicates the weight lookup returned a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight encountered")
)

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLogger routes traversal diagnostics to l. Nil keeps the default,
// which discards everything.
func WithLogger(l logrus.FieldLogger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is a graph over the vertices 1..Order(), stored as sorted
// adjacency lists, together with the state of the last traversal.
//
// Two lifecycles are independent: the edge set changes only through
// AddEdge, AddArc and Clear; the per-vertex state (visited, distance,
// parent) is rebuilt from scratch by every BFS or Dijkstra call.
//
// Index 0 of every per-vertex slice is unused so vertex v lives at [v].
// A Graph is not safe for concurrent use.
type Graph struct {
	order  int
	size   int
	source int

	adjacency []*cursorlist.List

	visited  []bool
	distance []int64
	parent   []int

	log logrus.FieldLogger
}

// New creates a graph with order vertices, no edges and no traversal state.
// Complexity: O(order).
func New(order int, opts ...GraphOption) (*Graph, error) {
	if order <= 0 {
		return nil, ErrBadOrder
	}
	g := &Graph{
		order:     order,
		source:    Nil,
		adjacency: make([]*cursorlist.List, order+1),
		visited:   make([]bool, order+1),
		distance:  make([]int64, order+1),
		parent:    make([]int, order+1),
		log:       discardLogger(),
	}
	for v := 1; v <= order; v++ {
		g.adjacency[v] = cursorlist.New()
	}
	g.resetState()
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return g.order
}

// Size returns the number of successful AddEdge and AddArc calls since
// construction or the last Clear. An undirected edge counts once.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}

	return g.size
}

// Source returns the origin of the last traversal, or Nil.
func (g *Graph) Source() int {
	if g == nil {
		return Nil
	}

	return g.source
}

// checkVertex validates v against [1, order].
func (g *Graph) checkVertex(v int) error {
	if v < 1 || v > g.order {
		return vertexError(v, g.order)
	}

	return nil
}

package core

// TraversalOption configures a single BFS or Dijkstra run.
type TraversalOption func(*traversalOptions)

// traversalOptions holds per-run callbacks.
type traversalOptions struct {
	// onVisit runs once per vertex when its distance becomes final:
	// on dequeue in BFS, on extraction in Dijkstra. A non-nil error stops
	// the traversal.
	onVisit func(v int, dist int64) error
}

func defaultTraversalOptions() traversalOptions {
	return traversalOptions{
		onVisit: func(int, int64) error { return nil },
	}
}

// WithOnVisit registers fn to run when a vertex's distance becomes final.
// Vertices are reported in non-decreasing distance order. Returning an error
// aborts the traversal; BFS and Dijkstra wrap and return it, leaving the
// graph state partial.
func WithOnVisit(fn func(v int, dist int64) error) TraversalOption {
	return func(o *traversalOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

func buildTraversalOptions(opts []TraversalOption) traversalOptions {
	o := defaultTraversalOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
)

func neighbors(t *testing.T, g *core.Graph, v int) []int {
	t.Helper()
	adj, err := g.Neighbors(v)
	require.NoError(t, err)

	return adj
}

// TestBuilders_Functional checks counts and a sample of topology per constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		order       int
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantSize    int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", order: 4, ctor: builder.Path(4), wantSize: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1, 3}, neighbors(t, g, 2))
				assert.Equal(t, []int{3}, neighbors(t, g, 4))
			},
		},
		{
			name: "Cycle(5)", order: 5, ctor: builder.Cycle(5), wantSize: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{2, 5}, neighbors(t, g, 1))
			},
		},
		{
			name: "Cycle(3) directed", order: 3, opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.Cycle(3), wantSize: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1}, neighbors(t, g, 3))
				assert.Equal(t, []int{2}, neighbors(t, g, 1))
			},
		},
		{
			name: "Star(4)", order: 4, ctor: builder.Star(4), wantSize: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{2, 3, 4}, neighbors(t, g, 1))
				assert.Equal(t, []int{1}, neighbors(t, g, 3))
			},
		},
		{
			name: "Complete(4)", order: 4, ctor: builder.Complete(4), wantSize: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1, 2, 4}, neighbors(t, g, 3))
			},
		},
		{
			name: "Complete(3) directed", order: 3, opts: []builder.BuilderOption{builder.WithDirected()},
			ctor: builder.Complete(3), wantSize: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1, 3}, neighbors(t, g, 2))
			},
		},
		{
			name: "Grid(2,3)", order: 6, ctor: builder.Grid(2, 3), wantSize: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// cell (0,1) is vertex 2: left 1, right 3, bottom 5
				assert.Equal(t, []int{1, 3, 5}, neighbors(t, g, builder.GridVertex(0, 1, 3)))
			},
		},
		{
			name: "RandomSparse(5,1)", order: 5, ctor: builder.RandomSparse(5, 1), wantSize: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1, 2, 3, 4}, neighbors(t, g, 5))
			},
		},
		{
			name: "RandomSparse(5,0)", order: 5, ctor: builder.RandomSparse(5, 0), wantSize: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, w, err := builder.BuildGraph(tc.order, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSize, g.Size())

			for u := 1; u <= g.Order(); u++ {
				for _, v := range neighbors(t, g, u) {
					wt, ok := w.Weight(u, v)
					assert.True(t, ok, "arc %d→%d has a weight", u, v)
					assert.Equal(t, builder.DefaultEdgeWeight, wt)
				}
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := builder.BuildGraph(0, nil)
	require.ErrorIs(t, err, core.ErrBadOrder)

	_, _, err = builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, _, err = builder.BuildGraph(3, nil, builder.Path(4))
	require.ErrorIs(t, err, builder.ErrOrderTooSmall)

	cases := map[string]builder.Constructor{
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(0, 3),
		"sparse":   builder.RandomSparse(0, 0.5),
	}
	for name, ctor := range cases {
		_, _, err := builder.BuildGraph(3, nil, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, _, err = builder.BuildGraph(3, nil, builder.RandomSparse(3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, _, err = builder.BuildGraph(3, nil, builder.RandomSparse(3, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_ComposesConstructors(t *testing.T) {
	t.Parallel()

	// a star over 1..4 plus a path over 1..6 shares the arc 1–2
	g, _, err := builder.BuildGraph(6, nil, builder.Star(4), builder.Path(6))
	require.NoError(t, err)
	require.Equal(t, 3+5, g.Size())
	assert.Equal(t, []int{2, 2, 3, 4}, neighbors(t, g, 1))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithDirected(),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
		}
	}
	g1, w1, err := builder.BuildGraph(20, opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	g2, w2, err := builder.BuildGraph(20, opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	require.Equal(t, g1.Size(), g2.Size())
	require.Equal(t, w1.Len(), w2.Len())
	for u := 1; u <= 20; u++ {
		a1, a2 := neighbors(t, g1, u), neighbors(t, g2, u)
		require.Equal(t, a1, a2)
		for _, v := range a1 {
			x, _ := w1.Weight(u, v)
			y, _ := w2.Weight(u, v)
			require.Equal(t, x, y)
			require.GreaterOrEqual(t, x, int64(1))
			require.LessOrEqual(t, x, int64(9))
			require.NotEqual(t, u, v, "no self-loops")
		}
	}
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))
	require.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))
	require.Equal(t, int64(5), builder.UniformWeightFn(5, 5)(rand.New(rand.NewSource(1))))

	r := rand.New(rand.NewSource(9))
	u := builder.UniformWeightFn(0, 2)
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		seen[u(r)] = true
	}
	require.Equal(t, map[int64]bool{0: true, 1: true, 2: true}, seen)

	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(4, 2) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

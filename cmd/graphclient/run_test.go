package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

func scenarioByName(t *testing.T, name string) Scenario {
	t.Helper()
	for _, s := range DefaultConfig().Scenarios {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no default scenario %q", name)

	return Scenario{}
}

func TestBuildGraphDirectedBFS(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	g, w, err := buildGraph(scenarioByName(t, "D"), logger)
	require.NoError(t, err)
	require.Nil(t, w)
	require.Equal(t, 7, g.Size())

	require.NoError(t, g.BFS(3))
	want := []int64{2, 1, 0, 2, 1}
	for v := 1; v <= 5; v++ {
		d, ok, err := g.Distance(v)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want[v-1], d, "vertex %d", v)
	}
}

func TestBuildGraphWeighted(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	g, w, err := buildGraph(scenarioByName(t, "W"), logger)
	require.NoError(t, err)
	require.NotNil(t, w)

	require.NoError(t, g.Dijkstra(1, w))
	want := []int64{0, 8, 5, 9, 7}
	for v := 1; v <= 5; v++ {
		d, _, err := g.Distance(v)
		require.NoError(t, err)
		require.Equal(t, want[v-1], d, "vertex %d", v)
	}
	path, ok, err := g.Path(4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{1, 3, 2, 4}, path)
}

func TestBuildGraphUnitWeights(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := Scenario{Name: "u", Order: 3, Edges: [][]int{{1, 2}, {2, 3}}, Algorithm: algorithmDijkstra}
	g, w, err := buildGraph(s, logger)
	require.NoError(t, err)

	require.NoError(t, g.Dijkstra(1, w))
	d, _, err := g.Distance(3)
	require.NoError(t, err)
	require.Equal(t, int64(2), d)
}

func TestRunScenarioOutput(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, runScenario(&out, scenarioByName(t, "A"), logger))

	text := out.String()
	require.Contains(t, text, "== A: order 4, size 4 ==\n1: 2 4\n2: 1 3\n3: 2 4\n4: 1 3\n")
	require.Contains(t, text, "-- bfs from 1 --\nvertex: 1, distance: 0, parent: 0\n")
	require.Contains(t, text, "path 1 -> 3: 1 2 3\n")
	require.NotContains(t, text, "transpose:")
	require.Len(t, hook.AllEntries(), 4, "one entry per source")
	require.Equal(t, "A", hook.LastEntry().Data[logKeyScenario])
}

func TestRunScenarioDirectedPrintsTranspose(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, runScenario(&out, scenarioByName(t, "D"), logger))
	require.Contains(t, out.String(), "transpose:\n1: 2\n2: 3\n3: \n4: 1 5\n5: 1 2 3\n")
	require.Contains(t, out.String(), "path 3 -> 4: 3 5 4\n")
}

func TestRunScenarioUnreachable(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := Scenario{Name: "split", Order: 3, Directed: true, Edges: [][]int{{1, 2}},
		Algorithm: algorithmBFS, Sources: []int{1}, Paths: true}
	var out bytes.Buffer
	require.NoError(t, runScenario(&out, s, logger))
	require.Contains(t, out.String(), "vertex: 3, distance: INF, parent: 0\n")
	require.Contains(t, out.String(), "path 1 -> 3: no path\n")
}

func TestRunScenarioSurfacesEngineErrors(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := Scenario{Name: "bad", Order: 2, Edges: [][]int{{1, 3}}}
	err := runScenario(&bytes.Buffer{}, s, logger)
	require.ErrorIs(t, err, core.ErrVertexOutOfBounds)
}

func TestRunDefaultsAndFile(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(clientConfig{}, &out, logger))
	require.Contains(t, out.String(), "== W: order 5, size 10 ==")
	require.Equal(t, 4, hook.Entries[0].Data["count"])

	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: solo\n    order: 1\n"), 0o600))
	out.Reset()
	require.NoError(t, run(clientConfig{configPath: path}, &out, logger))
	require.Equal(t, "== solo: order 1, size 0 ==\n1: \n-- bfs from 1 --\nvertex: 1, distance: 0, parent: 0\n", out.String())

	err := run(clientConfig{configPath: filepath.Join(t.TempDir(), "nope.yaml")}, &out, logger)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

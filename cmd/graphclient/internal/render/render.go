// Package render turns a core.Graph and its traversal state into console text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// Adjacency writes one line per vertex in ascending order: "v: n1 n2 n3".
func Adjacency(w io.Writer, g *core.Graph) error {
	for v := 1; v <= g.Order(); v++ {
		adj, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", v, joinInts(adj)); err != nil {
			return err
		}
	}

	return nil
}

// Traversal writes the distance and parent of every vertex after the last
// BFS or Dijkstra run. Unreached distances print as INF, missing parents as 0.
func Traversal(w io.Writer, g *core.Graph) error {
	for v := 1; v <= g.Order(); v++ {
		d, ok, err := g.Distance(v)
		if err != nil {
			return err
		}
		p, _, err := g.Parent(v)
		if err != nil {
			return err
		}
		dist := "INF"
		if ok {
			dist = strconv.FormatInt(d, 10)
		}
		if _, err := fmt.Fprintf(w, "vertex: %d, distance: %s, parent: %d\n", v, dist, p); err != nil {
			return err
		}
	}

	return nil
}

// Path writes the source-to-v path of the last traversal, or a
// "no path" line when v was not reached.
func Path(w io.Writer, g *core.Graph, v int) error {
	path, ok, err := g.Path(v)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintf(w, "path %d -> %d: no path\n", g.Source(), v)
		return err
	}
	_, err = fmt.Fprintf(w, "path %d -> %d: %s\n", g.Source(), v, joinInts(path))

	return err
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/cmd/graphclient/internal/render"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/weights"
)

const (
	logKeyScenario  = "scenario"
	logKeyAlgorithm = "algorithm"
	logKeySource    = "source"
)

// buildGraph materializes a validated scenario. The weigher is nil for BFS
// scenarios and weights.Unit for Dijkstra scenarios that list no weights.
func buildGraph(s Scenario, log logrus.FieldLogger) (*core.Graph, core.Weigher, error) {
	g, err := core.New(s.Order, core.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	add := g.AddEdge
	if s.Directed {
		add = g.AddArc
	}
	for _, e := range s.Edges {
		if err := add(e[0], e[1]); err != nil {
			return nil, nil, err
		}
	}

	if s.Algorithm != algorithmDijkstra {
		return g, nil, nil
	}
	if len(s.Weights) == 0 {
		return g, weights.Unit, nil
	}

	w := weights.NewSparse()
	set := w.SetEdge
	if s.Directed {
		set = w.Set
	}
	for _, t := range s.Weights {
		if err := set(int(t[0]), int(t[1]), t[2]); err != nil {
			return nil, nil, err
		}
	}

	return g, w, nil
}

// runScenario builds the scenario graph, prints it, then runs the configured
// traversal from every source and prints the resulting state.
func runScenario(out io.Writer, s Scenario, log logrus.FieldLogger) error {
	log = log.WithField(logKeyScenario, s.Name)

	g, w, err := buildGraph(s, log)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	fmt.Fprintf(out, "== %s: order %d, size %d ==\n", s.Name, g.Order(), g.Size())
	if err := render.Adjacency(out, g); err != nil {
		return err
	}
	if s.Directed {
		fmt.Fprintln(out, "transpose:")
		if err := render.Adjacency(out, g.Transpose()); err != nil {
			return err
		}
	}

	for _, src := range s.Sources {
		log.WithFields(logrus.Fields{
			logKeyAlgorithm: s.Algorithm,
			logKeySource:    src,
		}).Info("running traversal")

		switch s.Algorithm {
		case algorithmDijkstra:
			err = g.Dijkstra(src, w)
		default:
			err = g.BFS(src)
		}
		if err != nil {
			return fmt.Errorf("scenario %s: %s from %d: %w", s.Name, s.Algorithm, src, err)
		}

		fmt.Fprintf(out, "-- %s from %d --\n", s.Algorithm, src)
		if err := render.Traversal(out, g); err != nil {
			return err
		}
		if !s.Paths {
			continue
		}
		for v := 1; v <= g.Order(); v++ {
			if err := render.Path(out, g, v); err != nil {
				return err
			}
		}
	}

	return nil
}

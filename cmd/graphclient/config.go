package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrInvalidScenario is wrapped by every scenario validation failure.
var ErrInvalidScenario = errors.New("graphclient: invalid scenario")

const (
	algorithmBFS      = "bfs"
	algorithmDijkstra = "dijkstra"
)

// Config is the top-level YAML document.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one graph and the traversals to run over it.
type Scenario struct {
	Name      string    `yaml:"name"`
	Order     int       `yaml:"order"`
	Directed  bool      `yaml:"directed"`
	Edges     [][]int   `yaml:"edges"`
	Weights   [][]int64 `yaml:"weights"`
	Algorithm string    `yaml:"algorithm"`
	Sources   []int     `yaml:"sources"`
	Paths     bool      `yaml:"paths"`
}

// LoadConfig reads and validates a scenario file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig unmarshals YAML, fills defaults and validates every scenario.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Scenarios) == 0 {
		return Config{}, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	for i := range cfg.Scenarios {
		s := &cfg.Scenarios[i]
		s.applyDefaults(i)
		if err := s.Validate(); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (s *Scenario) applyDefaults(i int) {
	if s.Name == "" {
		s.Name = fmt.Sprintf("scenario-%d", i+1)
	}
	if s.Algorithm == "" {
		s.Algorithm = algorithmBFS
	}
	if len(s.Sources) == 0 {
		for v := 1; v <= s.Order; v++ {
			s.Sources = append(s.Sources, v)
		}
	}
}

// Validate checks shapes and vertex bounds without building a graph.
func (s Scenario) Validate() error {
	if s.Order < 1 {
		return fmt.Errorf("%w: %s: order %d", ErrInvalidScenario, s.Name, s.Order)
	}
	if s.Algorithm != algorithmBFS && s.Algorithm != algorithmDijkstra {
		return fmt.Errorf("%w: %s: unknown algorithm %q", ErrInvalidScenario, s.Name, s.Algorithm)
	}
	inRange := func(v int) bool { return v >= 1 && v <= s.Order }
	for _, e := range s.Edges {
		if len(e) != 2 || !inRange(e[0]) || !inRange(e[1]) {
			return fmt.Errorf("%w: %s: bad edge %v", ErrInvalidScenario, s.Name, e)
		}
	}
	for _, w := range s.Weights {
		if len(w) != 3 || !inRange(int(w[0])) || !inRange(int(w[1])) {
			return fmt.Errorf("%w: %s: bad weight %v", ErrInvalidScenario, s.Name, w)
		}
		if w[2] < 0 {
			return fmt.Errorf("%w: %s: negative weight %v", ErrInvalidScenario, s.Name, w)
		}
	}
	if len(s.Weights) > 0 && s.Algorithm != algorithmDijkstra {
		return fmt.Errorf("%w: %s: weights need algorithm %q", ErrInvalidScenario, s.Name, algorithmDijkstra)
	}
	for _, v := range s.Sources {
		if !inRange(v) {
			return fmt.Errorf("%w: %s: source %d", ErrInvalidScenario, s.Name, v)
		}
	}

	return nil
}

// DefaultConfig replays the classic demo graphs when no file is given.
func DefaultConfig() Config {
	cfg := Config{Scenarios: []Scenario{
		{
			Name:  "A",
			Order: 4,
			Edges: [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}},
			Paths: true,
		},
		{
			Name:  "B",
			Order: 6,
			Edges: [][]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {2, 6}, {3, 4}, {4, 5}, {5, 6}},
			Paths: true,
		},
		{
			Name:     "D",
			Order:    5,
			Directed: true,
			Edges:    [][]int{{1, 4}, {1, 5}, {2, 1}, {2, 5}, {3, 2}, {3, 5}, {5, 4}},
			Paths:    true,
		},
		{
			Name:      "W",
			Order:     5,
			Directed:  true,
			Edges:     [][]int{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 2}, {3, 4}, {3, 5}, {4, 5}, {5, 1}, {5, 4}},
			Weights:   [][]int64{{1, 2, 10}, {1, 3, 5}, {2, 3, 2}, {2, 4, 1}, {3, 2, 3}, {3, 4, 9}, {3, 5, 2}, {4, 5, 4}, {5, 1, 7}, {5, 4, 6}},
			Algorithm: algorithmDijkstra,
			Sources:   []int{1},
			Paths:     true,
		},
	}}
	for i := range cfg.Scenarios {
		cfg.Scenarios[i].applyDefaults(i)
	}

	return cfg
}

// Command graphclient builds graphs from YAML scenarios, runs BFS or Dijkstra
// over them and prints adjacency lists, distances, parents and paths.
//
// Usage:
//
//	graphclient [-config scenarios.yaml] [-debug]
//
// Without -config the built-in demo graphs are used.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type clientConfig struct {
	configPath string
	debug      bool
}

func main() {
	cfg := parseFlags()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if cfg.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("graphclient failed")
		os.Exit(1)
	}
}

func parseFlags() clientConfig {
	cfg := clientConfig{}

	flag.StringVar(&cfg.configPath, "config", "",
		"Path to a YAML scenario file (built-in demo graphs when empty)")
	flag.BoolVar(&cfg.debug, "debug", false,
		"Enable debug logging")

	flag.Parse()

	return cfg
}

// run loads the scenarios and executes them in order, stopping at the first error.
func run(cfg clientConfig, out io.Writer, log logrus.FieldLogger) error {
	scenarios := DefaultConfig()
	if cfg.configPath != "" {
		loaded, err := LoadConfig(cfg.configPath)
		if err != nil {
			return err
		}
		scenarios = loaded
	}
	log.WithField("count", len(scenarios.Scenarios)).Info("loaded scenarios")

	for _, s := range scenarios.Scenarios {
		if err := runScenario(out, s, log); err != nil {
			return err
		}
	}

	return nil
}

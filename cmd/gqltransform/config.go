package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const defaultConfigFile = "gqltransform.yaml"

type projectConfig struct {
	Schema    []string `yaml:"schema"`
	Output    string   `yaml:"output"`
	APIID     string   `yaml:"apiId"`
	Region    string   `yaml:"region"`
	Verbosity int      `yaml:"verbosity"`
}

// loadProjectConfig reads the project file at path. A missing file is
// tolerated when optional, and yields the defaults.
func loadProjectConfig(path string, optional bool) (*projectConfig, error) {
	cfg := &projectConfig{}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) && optional {
		// use defaults
	} else if err != nil {
		return nil, err
	} else {
		err = yaml.UnmarshalWithOptions(b, cfg, yaml.Strict())
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if len(cfg.Schema) == 0 {
		cfg.Schema = []string{"schema.graphql"}
	}
	if cfg.Output == "" {
		cfg.Output = "build"
	}

	return cfg, nil
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/vvakame/gqltransform/transformer"
)

func writeOutput(dir string, output *transformer.Output) error {
	resolverDir := filepath.Join(dir, "resolvers")
	err := os.MkdirAll(resolverDir, 0755)
	if err != nil {
		return err
	}

	for name, template := range output.Resolvers {
		err = os.WriteFile(filepath.Join(resolverDir, name), []byte(template), 0644)
		if err != nil {
			return err
		}
	}

	err = os.WriteFile(filepath.Join(dir, "schema.graphql"), []byte(output.Schema), 0644)
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(output)
	if err != nil {
		return err
	}
	err = os.WriteFile(filepath.Join(dir, "stack.yaml"), b, 0644)
	if err != nil {
		return err
	}

	b, err = json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "stack.json"), b, 0644)
}

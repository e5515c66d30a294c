package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-logr/stdr"
	"github.com/urfave/cli/v2"
	"github.com/vektah/gqlparser/v2/ast"
	gqllog "github.com/vvakame/gqltransform/internal/log"
	"github.com/vvakame/gqltransform/transformer"
	"github.com/vvakame/gqltransform/transformer/defaultvalue"
	"github.com/vvakame/gqltransform/transformer/model"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "gqltransform",
		Usage: "generate AppSync resolvers from an annotated GraphQL schema",
		Commands: []*cli.Command{
			{
				Name:  "transform",
				Usage: "transform the schema and write resolvers and a stack document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "project file",
						Value:   defaultConfigFile,
					},
					&cli.StringSliceFlag{
						Name:  "schema",
						Usage: "schema file glob, repeatable",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "output directory",
					},
					&cli.StringFlag{
						Name:  "api-id",
						Usage: "AppSync API id written into resources",
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "region of generated tables",
					},
					&cli.IntFlag{
						Name:    "verbosity",
						Aliases: []string{"v"},
						Usage:   "log verbosity",
					},
				},
				Action: runTransform,
			},
		},
	}
}

func runTransform(c *cli.Context) error {
	cfg, err := loadProjectConfig(c.String("config"), !c.IsSet("config"))
	if err != nil {
		return err
	}
	if c.IsSet("schema") {
		cfg.Schema = c.StringSlice("schema")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("api-id") {
		cfg.APIID = c.String("api-id")
	}
	if c.IsSet("region") {
		cfg.Region = c.String("region")
	}
	if c.IsSet("verbosity") {
		cfg.Verbosity = c.Int("verbosity")
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	ctx := gqllog.WithLogger(c.Context, logger)

	err = transform(ctx, cfg)
	if err != nil {
		logger.Error(err, "failed to transform")
		return err
	}
	return nil
}

func transform(ctx context.Context, cfg *projectConfig) error {
	logger := gqllog.FromContext(ctx)

	sources, err := readSources(cfg.Schema)
	if err != nil {
		return err
	}

	modelTransformer := model.New()
	if cfg.Region != "" {
		modelTransformer.Region = cfg.Region
	}
	tr, err := transformer.NewTransform(&transformer.Config{
		Transformers: []transformer.Transformer{
			modelTransformer,
			defaultvalue.New(),
		},
		APIID: cfg.APIID,
	})
	if err != nil {
		return err
	}

	output, err := tr.Transform(ctx, sources...)
	if err != nil {
		return err
	}

	err = writeOutput(cfg.Output, output)
	if err != nil {
		return err
	}

	logger.Info("transformed", "output", cfg.Output, "resources", len(output.Resources), "resolvers", len(output.Resolvers))

	return nil
}

func readSources(patterns []string) ([]*ast.Source, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid schema pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no schema file matches %s", pattern)
		}
		sort.Strings(matches)
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{
			Name:  file,
			Input: string(b),
		})
	}

	return sources, nil
}

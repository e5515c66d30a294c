package gqlgenplugin

import (
	"testing"

	"github.com/99designs/gqlgen/plugin"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

func TestPlugin_InjectSourceEarly(t *testing.T) {
	p := New()
	if p.Name() != "gqltransform" {
		t.Errorf("unexpected name: %s", p.Name())
	}

	injector, ok := p.(plugin.EarlySourceInjector)
	if !ok {
		t.Fatal("plugin must inject sources")
	}
	source := injector.InjectSourceEarly()
	if !source.BuiltIn {
		t.Error("injected source must be built in")
	}

	schemaDoc, gErr := parser.ParseSchemas(
		validator.Prelude,
		source,
		&ast.Source{
			Name: "schema.graphql",
			Input: `
				type Query { post: Post }
				type Post @model {
					id: ID!
					viewCount: Int @default(value: "9001")
					publishedAt: AWSDateTime
				}
			`,
		},
	)
	if gErr != nil {
		t.Fatal(gErr)
	}

	schema, vErr := validator.ValidateSchemaDocument(schemaDoc)
	if vErr != nil {
		t.Fatal(vErr)
	}

	for _, name := range []string{"model", "default"} {
		if schema.Directives[name] == nil {
			t.Errorf("directive @%s is not declared", name)
		}
	}
	if schema.Types["AWSDateTime"] == nil {
		t.Error("scalar AWSDateTime is not declared")
	}
}

// Package gqlgenplugin lets gqlgen projects load schemas written for the transform.
//
// Register it with api.AddPlugin so the @model and @default directives and
// the AppSync scalars are declared before gqlgen validates the schema.
package gqlgenplugin

import (
	"bytes"

	"github.com/99designs/gqlgen/plugin"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vvakame/gqltransform/internal/graphql"
)

var _ plugin.EarlySourceInjector = (*Plugin)(nil)

type Plugin struct{}

func New() plugin.Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string {
	return "gqltransform"
}

func (p *Plugin) InjectSourceEarly() *ast.Source {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(&ast.SchemaDocument{
		Directives: graphql.AppSyncDirectives,
	})

	return &ast.Source{
		Name:    "gqltransform/prelude.graphql",
		Input:   graphql.Prelude.Input + "\n" + buf.String(),
		BuiltIn: true,
	}
}

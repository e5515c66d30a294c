package transformer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

var _ json.Marshaler = (*Output)(nil)
var _ yaml.InterfaceMarshaler = (*Output)(nil)

type Output struct {
	Resources map[LogicalID]*Resource
	// Resolvers maps a template file name such as `Mutation.createPost.req.vtl` to its content.
	Resolvers map[string]string
	// Schema is the user schema after transformation, without preludes.
	Schema string
}

func newOutput(tctx *MemoryContext) (*Output, error) {
	output := &Output{
		Resources: make(map[LogicalID]*Resource),
		Resolvers: make(map[string]string),
	}

	for _, id := range tctx.LogicalIDs() {
		resource := tctx.Resource(id)
		output.Resources[id] = resource

		resolver := resource.Resolver()
		if resolver == nil {
			continue
		}
		reqName := fmt.Sprintf("%s.%s.req.vtl", resolver.TypeName, resolver.FieldName)
		resName := fmt.Sprintf("%s.%s.res.vtl", resolver.TypeName, resolver.FieldName)
		if _, ok := output.Resolvers[reqName]; ok {
			return nil, fmt.Errorf("resolver %s.%s is generated twice", resolver.TypeName, resolver.FieldName)
		}
		output.Resolvers[reqName] = resolver.RequestMappingTemplate
		output.Resolvers[resName] = resolver.ResponseMappingTemplate
	}

	output.Schema = formatUserSchema(tctx.Document())

	return output, nil
}

type stackDocument struct {
	Resources map[LogicalID]*Resource `json:"Resources" yaml:"Resources"`
}

func (o *Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(&stackDocument{Resources: o.Resources})
}

func (o *Output) MarshalYAML() (interface{}, error) {
	return &stackDocument{Resources: o.Resources}, nil
}

func formatUserSchema(doc *ast.SchemaDocument) string {
	userDoc := &ast.SchemaDocument{
		Schema:          doc.Schema,
		SchemaExtension: doc.SchemaExtension,
	}
	for _, directive := range doc.Directives {
		if directive.Position != nil && directive.Position.Src != nil && directive.Position.Src.BuiltIn {
			continue
		}
		userDoc.Directives = append(userDoc.Directives, directive)
	}
	for _, def := range doc.Definitions {
		if isBuiltIn(def) {
			continue
		}
		userDoc.Definitions = append(userDoc.Definitions, withoutIntrospectionFields(def))
	}
	for _, def := range doc.Extensions {
		if isBuiltIn(def) {
			continue
		}
		userDoc.Extensions = append(userDoc.Extensions, def)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(userDoc)
	return buf.String()
}

// the validator appends __schema and __type to the query root.
func withoutIntrospectionFields(def *ast.Definition) *ast.Definition {
	hasIntrospection := false
	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			hasIntrospection = true
			break
		}
	}
	if !hasIntrospection {
		return def
	}

	copied := *def
	copied.Fields = nil
	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}
		copied.Fields = append(copied.Fields, field)
	}
	return &copied
}

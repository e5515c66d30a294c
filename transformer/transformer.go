package transformer

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
)

// Transformer handles one directive. It also implements ObjectTransformer,
// FieldTransformer or both, depending on where the directive may appear.
type Transformer interface {
	Name() string
	Directive() *ast.DirectiveDefinition
}

type ObjectTransformer interface {
	Transformer
	Object(ctx context.Context, tctx Context, def *ast.Definition, directive *ast.Directive) error
}

type FieldTransformer interface {
	Transformer
	Field(ctx context.Context, tctx Context, parent *ast.Definition, field *ast.FieldDefinition, directive *ast.Directive) error
}

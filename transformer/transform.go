package transformer

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
	"github.com/vvakame/gqltransform/internal/graphql"
	"github.com/vvakame/gqltransform/internal/log"
)

type Config struct {
	// Transformers run in order. A transformer may rely on resources
	// registered by the ones before it.
	Transformers []Transformer
	// APIID is written into every generated resource.
	APIID string
}

type Transform struct {
	transformers []Transformer
	apiID        string
}

func NewTransform(cfg *Config) (*Transform, error) {
	if cfg == nil || len(cfg.Transformers) == 0 {
		return nil, errors.New("at least one transformer is required")
	}

	// report every misconfigured transformer at once.
	var result *multierror.Error
	seen := make(map[string]string)
	for _, tr := range cfg.Transformers {
		directive := tr.Directive()
		if directive == nil {
			result = multierror.Append(result, fmt.Errorf("transformer %s has no directive definition", tr.Name()))
			continue
		}
		if other, ok := seen[directive.Name]; ok {
			result = multierror.Append(result, fmt.Errorf("directive @%s is claimed by both %s and %s", directive.Name, other, tr.Name()))
		} else {
			seen[directive.Name] = tr.Name()
		}

		_, isObject := tr.(ObjectTransformer)
		_, isField := tr.(FieldTransformer)
		if !isObject && !isField {
			result = multierror.Append(result, fmt.Errorf("transformer %s implements neither Object nor Field", tr.Name()))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Transform{
		transformers: cfg.Transformers,
		apiID:        cfg.APIID,
	}, nil
}

// Transform parses and validates sources, then runs every transformer over
// them. The first failing directive aborts the whole transform.
func (t *Transform) Transform(ctx context.Context, sources ...*ast.Source) (*Output, error) {
	logger := log.FromContext(ctx)

	if len(sources) == 0 {
		return nil, errors.New("no schema sources given")
	}

	inputs := make([]*ast.Source, 0, len(sources)+2)
	inputs = append(inputs, validator.Prelude, graphql.Prelude)
	inputs = append(inputs, sources...)
	schemaDoc, gErr := parser.ParseSchemas(inputs...)
	if gErr != nil {
		return nil, gErr
	}

	for _, tr := range t.transformers {
		directive := tr.Directive()
		if schemaDoc.Directives.ForName(directive.Name) != nil {
			continue
		}
		schemaDoc.Directives = append(schemaDoc.Directives, directive)
	}

	if _, gErr := validator.ValidateSchemaDocument(schemaDoc); gErr != nil {
		return nil, gErr
	}

	tctx := NewContext(schemaDoc)
	ctx = WithAPIID(ctx, t.apiID)

	for _, tr := range t.transformers {
		logger.V(1).Info("run transformer", "transformer", tr.Name())
		err := t.runTransformer(log.WithName(ctx, tr.Name()), tctx, tr)
		if err != nil {
			return nil, err
		}
	}

	return newOutput(tctx)
}

func (t *Transform) runTransformer(ctx context.Context, tctx *MemoryContext, tr Transformer) error {
	logger := log.FromContext(ctx)
	directiveName := tr.Directive().Name

	for _, def := range tctx.Document().Definitions {
		if isBuiltIn(def) {
			continue
		}
		if def.Kind != ast.Object && def.Kind != ast.Interface {
			continue
		}

		if objectTransformer, ok := tr.(ObjectTransformer); ok {
			for _, directive := range def.Directives.ForNames(directiveName) {
				logger.V(2).Info("visit type", "directive", directiveName, "type", def.Name)
				err := objectTransformer.Object(ctx, tctx, def, directive)
				if err != nil {
					return err
				}
			}
		}

		fieldTransformer, ok := tr.(FieldTransformer)
		if !ok {
			continue
		}
		for _, field := range def.Fields {
			for _, directive := range field.Directives.ForNames(directiveName) {
				logger.V(2).Info("visit field", "directive", directiveName, "type", def.Name, "field", field.Name)
				err := fieldTransformer.Field(ctx, tctx, def, field, directive)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func isBuiltIn(def *ast.Definition) bool {
	if def.BuiltIn {
		return true
	}
	return def.Position != nil && def.Position.Src != nil && def.Position.Src.BuiltIn
}

type apiIDKey struct{}

// WithAPIID stores the AppSync API id generated resources refer to.
func WithAPIID(ctx context.Context, apiID string) context.Context {
	return context.WithValue(ctx, apiIDKey{}, apiID)
}

func APIIDFromContext(ctx context.Context) string {
	apiID, _ := ctx.Value(apiIDKey{}).(string)
	return apiID
}

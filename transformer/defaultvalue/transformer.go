// Package defaultvalue implements the @default field directive.
//
// @default(value: String!) may annotate scalar or enum fields of @model
// types. The value is validated against the field type at transform time and
// written into the create mutation input when the client leaves the field
// unset.
package defaultvalue

import (
	"context"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqltransform/internal/graphql"
	"github.com/vvakame/gqltransform/internal/log"
	"github.com/vvakame/gqltransform/transformer"
	"github.com/vvakame/gqltransform/transformer/resourceid"
	"github.com/vvakame/gqltransform/vtl"
)

const (
	directiveName      = "default"
	modelDirectiveName = "model"
	valueArgumentName  = "value"
)

var _ transformer.FieldTransformer = (*Transformer)(nil)

type Transformer struct{}

func New() *Transformer {
	return &Transformer{}
}

func (t *Transformer) Name() string {
	return "DefaultValueTransformer"
}

func (t *Transformer) Directive() *ast.DirectiveDefinition {
	return graphql.DefaultDirective
}

func (t *Transformer) Field(ctx context.Context, tctx transformer.Context, parent *ast.Definition, field *ast.FieldDefinition, directive *ast.Directive) error {
	logger := log.FromContext(ctx).WithValues("type", parent.Name, "field", field.Name)

	err := assertModelDirective(parent, directive)
	if err != nil {
		return err
	}

	comp := resolveTypeComposition(field.Type, snapshotTypeDefinitions(tctx))
	logger.V(2).Info("resolved type composition", "sequence", comp.TypeSequence, "enum", comp.IsEnum, "scalar", comp.IsScalar)

	err = assertCompatibleFieldType(comp, field)
	if err != nil {
		return err
	}

	defaultValue, err := defaultValueArgument(directive)
	if err != nil {
		return err
	}

	err = assertFieldTypeAndDefaultValueMatch(comp, defaultValue, directive)
	if err != nil {
		return err
	}

	snippet := createSnippet(field.Name, defaultValue, comp.IsScalar && !storeAsString(ScalarKind(comp.BaseTypeName)))
	id := resourceid.CreateResolver(parent.Name)
	if augmentResolver(tctx, id, snippet) {
		logger.V(1).Info("inject default value", "resolver", id, "value", defaultValue)
	} else {
		logger.V(1).Info("no create resolver, skip", "resolver", id)
	}

	return nil
}

func assertModelDirective(parent *ast.Definition, directive *ast.Directive) error {
	if parent.Directives.ForName(modelDirectiveName) != nil {
		return nil
	}
	return invalidDirectiveErrorf(
		directive.Position,
		CodeRequiresModel,
		"Fields annotated with @%s must have parent types annotated with @%s.",
		directiveName, modelDirectiveName,
	)
}

func assertCompatibleFieldType(comp TypeComposition, field *ast.FieldDefinition) error {
	if !comp.IsList && (comp.IsEnum || comp.IsScalar) {
		return nil
	}
	return invalidDirectiveErrorf(
		field.Position,
		CodeUnsupportedFieldType,
		"Fields annotated with @%s must be scalar or enum types.",
		directiveName,
	)
}

func defaultValueArgument(directive *ast.Directive) (string, error) {
	switch {
	case len(directive.Arguments) == 0:
		return "", invalidDirectiveErrorf(directive.Position, CodeInvalidArgument, "Directive for @%s must declare a value property.", directiveName)
	case len(directive.Arguments) > 1:
		return "", invalidDirectiveErrorf(directive.Position, CodeInvalidArgument, "Directive for @%s only takes a value property.", directiveName)
	}

	arg := directive.Arguments[0]
	if arg.Name != valueArgumentName {
		return "", invalidDirectiveErrorf(arg.Position, CodeInvalidArgument, "Directive for @%s must declare a value property, got %s.", directiveName, arg.Name)
	}
	if arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return "", invalidDirectiveErrorf(arg.Position, CodeInvalidArgument, "Directive for @%s does not support null values.", directiveName)
	}
	switch arg.Value.Kind {
	case ast.StringValue, ast.BlockValue:
		return arg.Value.Raw, nil
	default:
		return "", invalidDirectiveErrorf(arg.Position, CodeInvalidArgument, "Directive for @%s takes a string literal value, got %s.", directiveName, arg.Value.String())
	}
}

func assertFieldTypeAndDefaultValueMatch(comp TypeComposition, defaultValue string, directive *ast.Directive) error {
	if comp.IsEnum {
		for _, member := range comp.EnumValues {
			if member == defaultValue {
				return nil
			}
		}
		return invalidDirectiveErrorf(
			directive.Position,
			CodeValueMismatch,
			"Default value \"%s\" is not a member of enum %s.",
			defaultValue, comp.BaseTypeName,
		)
	}

	validate, ok := lookupValidator(ScalarKind(comp.BaseTypeName))
	if !ok {
		return fmt.Errorf("@%s on scalar %s: %w", directiveName, comp.BaseTypeName, ErrNoScalarValidator)
	}
	if !validate(defaultValue) {
		return invalidDirectiveErrorf(
			directive.Position,
			CodeValueMismatch,
			"Default value \"%s\" is not a valid %s.",
			defaultValue, comp.BaseTypeName,
		)
	}
	return nil
}

func createSnippet(fieldName, defaultValue string, unquoted bool) string {
	formatted := fmt.Sprintf(`"%s"`, defaultValue)
	if unquoted {
		formatted = defaultValue
	}
	return vtl.PrintBlock(
		fmt.Sprintf(`Setting "%s" to default value of %s`, fieldName, formatted),
		vtl.NewIf(
			vtl.NewRaw(fmt.Sprintf("$util.isNull($ctx.args.input.%s)", fieldName)),
			vtl.NewQuietRef(fmt.Sprintf(`$ctx.args.input.put("%s", %s)`, fieldName, formatted)),
		),
	)
}

// augmentResolver reports whether a resolver was found and rewritten.
func augmentResolver(tctx transformer.Context, id transformer.LogicalID, snippet string) bool {
	resource := tctx.Resource(id)
	resolver := resource.Resolver()
	if resolver == nil {
		return false
	}
	resolver.RequestMappingTemplate = snippet + "\n\n" + resolver.RequestMappingTemplate
	tctx.SetResource(id, resource)
	return true
}

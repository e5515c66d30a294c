// Package model is a small @model transformer. It registers a DynamoDB data
// source per model type and the CRUD resolvers other transformers augment.
package model

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

const defaultRegion = "us-east-1"

var _ transformer.ObjectTransformer = (*Transformer)(nil)

type Transformer struct {
	// Region of the generated tables. Defaults to us-east-1.
	Region string
}

func New() *Transformer {
	return &Transformer{Region: defaultRegion}
}

func (t *Transformer) Name() string {
	return "ModelTransformer"
}

func (t *Transformer) Directive() *ast.DirectiveDefinition {
	return graphql.ModelDirective
}

func (t *Transformer) Object(ctx context.Context, tctx transformer.Context, def *ast.Definition, directive *ast.Directive) error {
	logger := log.FromContext(ctx)
	apiID := transformer.APIIDFromContext(ctx)
	typeName := def.Name

	dataSourceID := resourceid.DataSource(typeName)
	if tctx.Resource(dataSourceID) != nil {
		return fmt.Errorf("data source for %s is already registered", typeName)
	}

	region := t.Region
	if region == "" {
		region = defaultRegion
	}
	tctx.SetResource(dataSourceID, &transformer.Resource{
		Type: transformer.ResourceTypeDataSource,
		Properties: &transformer.DataSourceProperties{
			APIID: apiID,
			Name:  string(dataSourceID),
			Type:  "AMAZON_DYNAMODB",
			DynamoDBConfig: &transformer.DynamoDBConfig{
				TableName: string(resourceid.Table(typeName)),
				AwsRegion: region,
			},
		},
	})

	resolvers := []struct {
		id        transformer.LogicalID
		typeName  string
		fieldName string
		request   string
		response  string
	}{
		{resourceid.CreateResolver(typeName), "Mutation", "create" + typeName, createRequest(typeName), itemResponse()},
		{resourceid.UpdateResolver(typeName), "Mutation", "update" + typeName, updateRequest(typeName), itemResponse()},
		{resourceid.DeleteResolver(typeName), "Mutation", "delete" + typeName, deleteRequest(), itemResponse()},
		{resourceid.GetResolver(typeName), "Query", "get" + typeName, getRequest(), itemResponse()},
		{resourceid.ListResolver(typeName), "Query", "list" + pluralize(typeName), listRequest(), itemResponse()},
	}
	for _, r := range resolvers {
		tctx.SetResource(r.id, &transformer.Resource{
			Type:      transformer.ResourceTypeResolver,
			DependsOn: []transformer.LogicalID{dataSourceID},
			Properties: &transformer.ResolverProperties{
				APIID:                   apiID,
				DataSourceName:          string(dataSourceID),
				TypeName:                r.typeName,
				FieldName:               r.fieldName,
				RequestMappingTemplate:  r.request,
				ResponseMappingTemplate: r.response,
			},
		})
	}

	logger.V(1).Info("register model", "type", typeName, "dataSource", dataSourceID)

	return nil
}

func pluralize(name string) string {
	if name == "" {
		return name
	}
	switch name[len(name)-1] {
	case 's', 'x':
		return name + "es"
	case 'y':
		return name[:len(name)-1] + "ies"
	}
	return name + "s"
}

func timestamp(fieldName string) vtl.Expression {
	return vtl.NewQuietRef(fmt.Sprintf(
		`$context.args.input.put("%[1]s", $util.defaultIfNull($ctx.args.input.%[1]s, $util.time.nowISO8601()))`,
		fieldName,
	))
}

func keyObj(idExpr string) *vtl.Obj {
	return vtl.NewObj(vtl.Attr("id", vtl.NewRaw(fmt.Sprintf("$util.dynamodb.toDynamoDBJson(%s)", idExpr))))
}

func createRequest(typeName string) string {
	return vtl.PrintBlock("Prepare DynamoDB PutItem Request", vtl.NewCompound(
		timestamp("createdAt"),
		timestamp("updatedAt"),
		vtl.NewQuietRef(fmt.Sprintf(`$context.args.input.put("__typename", "%s")`, typeName)),
		vtl.NewSet("condition", vtl.NewObj(
			vtl.Attr("expression", vtl.NewStr("attribute_not_exists(#id)")),
			vtl.Attr("expressionNames", vtl.NewObj(vtl.Attr("#id", vtl.NewStr("id")))),
		)),
		vtl.NewObj(
			vtl.Attr("version", vtl.NewStr("2017-02-28")),
			vtl.Attr("operation", vtl.NewStr("PutItem")),
			vtl.Attr("key", keyObj("$util.defaultIfNullOrBlank($ctx.args.input.id, $util.autoId())")),
			vtl.Attr("attributeValues", vtl.NewRaw("$util.dynamodb.toMapValuesJson($context.args.input)")),
			vtl.Attr("condition", vtl.NewToJSON(vtl.NewRef("condition"))),
		),
	))
}

func updateRequest(typeName string) string {
	return vtl.PrintBlock("Prepare DynamoDB UpdateItem Request", vtl.NewCompound(
		timestamp("updatedAt"),
		vtl.NewQuietRef(fmt.Sprintf(`$context.args.input.put("__typename", "%s")`, typeName)),
		vtl.NewSet("condition", vtl.NewObj(
			vtl.Attr("expression", vtl.NewStr("attribute_exists(#id)")),
			vtl.Attr("expressionNames", vtl.NewObj(vtl.Attr("#id", vtl.NewStr("id")))),
		)),
		vtl.NewObj(
			vtl.Attr("version", vtl.NewStr("2017-02-28")),
			vtl.Attr("operation", vtl.NewStr("UpdateItem")),
			vtl.Attr("key", keyObj("$ctx.args.input.id")),
			vtl.Attr("update", vtl.NewRaw("$util.toJson($util.dynamodb.toUpdateExpression($context.args.input))")),
			vtl.Attr("condition", vtl.NewToJSON(vtl.NewRef("condition"))),
		),
	))
}

func deleteRequest() string {
	return vtl.PrintBlock("Prepare DynamoDB DeleteItem Request", vtl.NewObj(
		vtl.Attr("version", vtl.NewStr("2017-02-28")),
		vtl.Attr("operation", vtl.NewStr("DeleteItem")),
		vtl.Attr("key", keyObj("$ctx.args.input.id")),
	))
}

func getRequest() string {
	return vtl.PrintBlock("Prepare DynamoDB GetItem Request", vtl.NewObj(
		vtl.Attr("version", vtl.NewStr("2017-02-28")),
		vtl.Attr("operation", vtl.NewStr("GetItem")),
		vtl.Attr("key", keyObj("$ctx.args.id")),
	))
}

func listRequest() string {
	return vtl.PrintBlock("Prepare DynamoDB Scan Request", vtl.NewCompound(
		vtl.NewSet("limit", vtl.NewRaw("$util.defaultIfNull($context.args.limit, 100)")),
		vtl.NewObj(
			vtl.Attr("version", vtl.NewStr("2017-02-28")),
			vtl.Attr("operation", vtl.NewStr("Scan")),
			vtl.Attr("limit", vtl.NewRef("limit")),
			vtl.Attr("nextToken", vtl.NewRaw("$util.toJson($util.defaultIfNullOrEmpty($context.args.nextToken, null))")),
		),
	))
}

func itemResponse() string {
	return vtl.Print(vtl.NewToJSON(vtl.NewRef("context.result")))
}

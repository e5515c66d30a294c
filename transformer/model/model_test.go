package model

import (
	"context"
	"testing"

	testlogr "github.com/go-logr/logr/testing"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqltransform/internal/log"
	"github.com/vvakame/gqltransform/internal/testutils"
	"github.com/vvakame/gqltransform/transformer"
	"github.com/vvakame/gqltransform/transformer/resourceid"
)

func TestTransformer_Object(t *testing.T) {
	schemaDoc, gErr := parser.ParseSchema(&ast.Source{
		Name:  "schema.graphql",
		Input: `type Story @model { id: ID! title: String }`,
	})
	if gErr != nil {
		t.Fatal(gErr)
	}

	ctx := context.Background()
	ctx = log.WithLogger(ctx, testlogr.NewTestLogger(t))
	ctx = transformer.WithAPIID(ctx, "api")

	tctx := transformer.NewContext(schemaDoc)
	def := schemaDoc.Definitions.ForName("Story")
	tr := New()

	err := tr.Object(ctx, tctx, def, def.Directives.ForName("model"))
	if err != nil {
		t.Fatal(err)
	}

	want := []transformer.LogicalID{
		"CreateStoryResolver",
		"DeleteStoryResolver",
		"GetStoryResolver",
		"ListStoryResolver",
		"StoryDataSource",
		"UpdateStoryResolver",
	}
	got := tctx.LogicalIDs()
	if len(got) != len(want) {
		t.Fatalf("unexpected resources: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unexpected resource at %d: %s, want %s", i, got[i], want[i])
		}
	}

	create := tctx.Resource(resourceid.CreateResolver("Story")).Resolver()
	if create.TypeName != "Mutation" || create.FieldName != "createStory" {
		t.Errorf("unexpected create resolver target: %s.%s", create.TypeName, create.FieldName)
	}
	if create.APIID != "api" || create.DataSourceName != "StoryDataSource" {
		t.Errorf("unexpected create resolver wiring: %+v", create)
	}
	testutils.CheckGoldenFile(t, []byte(create.RequestMappingTemplate), "./testdata/expected/create.req.vtl")

	list := tctx.Resource(resourceid.ListResolver("Story")).Resolver()
	if list.FieldName != "listStories" {
		t.Errorf("unexpected list field: %s", list.FieldName)
	}

	ds, ok := tctx.Resource(resourceid.DataSource("Story")).Properties.(*transformer.DataSourceProperties)
	if !ok {
		t.Fatal("data source properties are expected")
	}
	if ds.DynamoDBConfig.TableName != "StoryTable" || ds.DynamoDBConfig.AwsRegion != "us-east-1" {
		t.Errorf("unexpected dynamodb config: %+v", ds.DynamoDBConfig)
	}

	err = tr.Object(ctx, tctx, def, def.Directives.ForName("model"))
	if err == nil {
		t.Error("registering the same model twice must fail")
	}
}

func TestPluralize(t *testing.T) {
	tests := map[string]string{
		"Post":  "Posts",
		"Story": "Stories",
		"Box":   "Boxes",
		"Bus":   "Buses",
		"":      "",
	}
	for in, want := range tests {
		if got := pluralize(in); got != want {
			t.Errorf("pluralize(%q) = %q, want %q", in, got, want)
		}
	}
}

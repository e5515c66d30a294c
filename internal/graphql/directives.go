package graphql

import "github.com/vektah/gqlparser/v2/ast"

// for formatter
var blankPos = &ast.Position{
	Src: &ast.Source{
		BuiltIn: false,
	},
}

// Marks an object type as backed by a table with generated CRUD resolvers.
var ModelDirective = &ast.DirectiveDefinition{
	Description: "Stores the annotated type in a table and generates its query and mutation resolvers.",
	Name:        "model",
	Locations: []ast.DirectiveLocation{
		ast.LocationObject,
	},
	Position: blankPos,
}

// Used to supply a value for a field omitted from a create mutation.
var DefaultDirective = &ast.DirectiveDefinition{
	Description: "Assigns `value` to the field when a create mutation input leaves it unset.",
	Name:        "default",
	Arguments: ast.ArgumentDefinitionList{
		&ast.ArgumentDefinition{
			Description: "The default written to storage, given as a string literal regardless of the field type.",
			Name:        "value",
			Type: &ast.Type{
				NamedType: "String",
				NonNull:   true,
			},
		},
	},
	Locations: []ast.DirectiveLocation{
		ast.LocationFieldDefinition,
	},
	Position: blankPos,
}

// AppSyncDirectives is the list of directives the transform understands.
var AppSyncDirectives = ast.DirectiveDefinitionList{
	ModelDirective,
	DefaultDirective,
}

package defaultvalue

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqltransform/transformer"
)

const (
	tokenNonNull = "NonNullType"
	tokenList    = "ListType"
)

// TypeComposition describes how a field type is built from wrappers and its
// base type.
type TypeComposition struct {
	// TypeSequence records wrappers from the outside in, followed by the base type name.
	TypeSequence []string
	IsList       bool
	IsEnum       bool
	IsScalar     bool
	HasNonNull   bool
	BaseTypeName string
	// EnumValues holds member names in declaration order when IsEnum.
	EnumValues []string
}

type typeDefinitions struct {
	composites ast.DefinitionList
	enums      ast.DefinitionList
}

func snapshotTypeDefinitions(tctx transformer.Context) *typeDefinitions {
	defs := &typeDefinitions{}
	defs.composites = append(defs.composites, tctx.TypeDefinitionsOfKind(ast.Object)...)
	defs.composites = append(defs.composites, tctx.TypeDefinitionsOfKind(ast.Interface)...)
	defs.composites = append(defs.composites, tctx.TypeDefinitionsOfKind(ast.Union)...)
	defs.enums = tctx.TypeDefinitionsOfKind(ast.Enum)
	return defs
}

func resolveTypeComposition(typ *ast.Type, defs *typeDefinitions) TypeComposition {
	return unwrapType(typ, defs, TypeComposition{})
}

func unwrapType(typ *ast.Type, defs *typeDefinitions, comp TypeComposition) TypeComposition {
	if typ.NonNull {
		comp.HasNonNull = true
		comp.TypeSequence = appendToken(comp.TypeSequence, tokenNonNull)
		nullable := *typ
		nullable.NonNull = false
		return unwrapType(&nullable, defs, comp)
	}
	if typ.Elem != nil {
		comp.IsList = true
		comp.TypeSequence = appendToken(comp.TypeSequence, tokenList)
		return unwrapType(typ.Elem, defs, comp)
	}

	name := typ.NamedType
	comp.BaseTypeName = name
	comp.TypeSequence = appendToken(comp.TypeSequence, name)

	if defs.composites.ForName(name) != nil {
		return comp
	}
	if enum := defs.enums.ForName(name); enum != nil {
		comp.IsEnum = true
		comp.EnumValues = make([]string, 0, len(enum.EnumValues))
		for _, value := range enum.EnumValues {
			comp.EnumValues = append(comp.EnumValues, value.Name)
		}
		return comp
	}

	comp.IsScalar = true
	return comp
}

// appendToken never writes into a backing array shared with the caller.
func appendToken(seq []string, token string) []string {
	return append(seq[:len(seq):len(seq)], token)
}

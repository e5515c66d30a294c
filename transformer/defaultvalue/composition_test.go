package defaultvalue

import (
	"reflect"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestResolveTypeComposition(t *testing.T) {
	tctx := newTestContext(t, heredoc.Doc(`
		type Post @model {
			a: String
			b: Int!
			c: [Tag!]!
			d: Tag
			e: Author
			f: Money
		}
		type Author { name: String }
		enum Tag { NEWS RANDOM }
		scalar Money
	`))
	defs := snapshotTypeDefinitions(tctx)
	post := tctx.Document().Definitions.ForName("Post")

	tests := []struct {
		field string
		want  TypeComposition
	}{
		{
			field: "a",
			want: TypeComposition{
				TypeSequence: []string{"String"},
				IsScalar:     true,
				BaseTypeName: "String",
			},
		},
		{
			field: "b",
			want: TypeComposition{
				TypeSequence: []string{tokenNonNull, "Int"},
				IsScalar:     true,
				HasNonNull:   true,
				BaseTypeName: "Int",
			},
		},
		{
			field: "c",
			want: TypeComposition{
				TypeSequence: []string{tokenNonNull, tokenList, tokenNonNull, "Tag"},
				IsList:       true,
				IsEnum:       true,
				HasNonNull:   true,
				BaseTypeName: "Tag",
				EnumValues:   []string{"NEWS", "RANDOM"},
			},
		},
		{
			field: "d",
			want: TypeComposition{
				TypeSequence: []string{"Tag"},
				IsEnum:       true,
				BaseTypeName: "Tag",
				EnumValues:   []string{"NEWS", "RANDOM"},
			},
		},
		{
			field: "e",
			want: TypeComposition{
				TypeSequence: []string{"Author"},
				BaseTypeName: "Author",
			},
		},
		{
			field: "f",
			want: TypeComposition{
				TypeSequence: []string{"Money"},
				IsScalar:     true,
				BaseTypeName: "Money",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field := post.Fields.ForName(tt.field)
			got := resolveTypeComposition(field.Type, defs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unexpected composition: %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveTypeComposition_DoesNotShareState(t *testing.T) {
	defs := &typeDefinitions{}
	typ := &ast.Type{
		NonNull: true,
		Elem: &ast.Type{
			NamedType: "String",
		},
	}

	first := resolveTypeComposition(typ, defs)
	second := resolveTypeComposition(typ, defs)
	first.TypeSequence[0] = "mutated"

	if second.TypeSequence[0] != tokenNonNull {
		t.Errorf("compositions share a sequence: %v", second.TypeSequence)
	}
	if !typ.NonNull {
		t.Error("input type must not be modified")
	}
}

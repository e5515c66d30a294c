package vtl

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{
			name: "raw",
			expr: NewRaw("$ctx.args"),
			want: `$ctx.args`,
		},
		{
			name: "quiet ref",
			expr: NewQuietRef(`$ctx.args.input.put("a", 1)`),
			want: `$util.qr($ctx.args.input.put("a", 1))`,
		},
		{
			name: "if",
			expr: NewIf(NewRaw("$util.isNull($ctx.args.input.viewCount)"), NewQuietRef(`$ctx.args.input.put("viewCount", 9001)`)),
			want: heredoc.Doc(`
				#if( $util.isNull($ctx.args.input.viewCount) )
				  $util.qr($ctx.args.input.put("viewCount", 9001))
				#end`),
		},
		{
			name: "inline if",
			expr: &If{Predicate: NewRef("a"), Expr: NewRaw("b"), Inline: true},
			want: `#if( $a ) b #end`,
		},
		{
			name: "if else",
			expr: NewIfElse(NewRef("a"), NewRaw("b"), NewRaw("c")),
			want: heredoc.Doc(`
				#if( $a )
				  b
				#else
				  c
				#end`),
		},
		{
			name: "set object",
			expr: NewSet("condition", NewObj(
				Attr("expression", NewStr("attribute_not_exists(#id)")),
				Attr("expressionNames", NewObj(Attr("#id", NewStr("id")))),
			)),
			want: heredoc.Doc(`
				#set( $condition = {
				  "expression": "attribute_not_exists(#id)",
				  "expressionNames": {
				    "#id": "id"
				  }
				} )`),
		},
		{
			name: "empty object",
			expr: NewObj(),
			want: `{}`,
		},
		{
			name: "list and literals",
			expr: NewList(NewStr("a"), NewInt(1), NewBool(true), &Null{}),
			want: `["a", 1, true, null]`,
		},
		{
			name: "to json",
			expr: NewToJSON(NewRef("context.result")),
			want: `$util.toJson($context.result)`,
		},
		{
			name: "comment",
			expr: NewComment("hello"),
			want: `## hello **`,
		},
		{
			name: "nested if in compound",
			expr: NewCompound(
				NewRaw("a"),
				NewIf(NewRef("b"), NewIf(NewRef("c"), NewRaw("d"))),
			),
			want: heredoc.Doc(`
				a
				#if( $b )
				  #if( $c )
				    d
				  #end
				#end`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Print(tt.expr)
			if got != tt.want {
				t.Errorf("unexpected: got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPrintBlock(t *testing.T) {
	got := PrintBlock(
		`Setting "title" to default value of "hello world"`,
		NewIf(NewRaw("$util.isNull($ctx.args.input.title)"), NewQuietRef(`$ctx.args.input.put("title", "hello world")`)),
	)
	want := heredoc.Doc(`
		## [Start] Setting "title" to default value of "hello world". **
		#if( $util.isNull($ctx.args.input.title) )
		  $util.qr($ctx.args.input.put("title", "hello world"))
		#end
		## [End] Setting "title" to default value of "hello world". **`)
	if got != want {
		t.Errorf("unexpected: got\n%s\nwant\n%s", got, want)
	}
}

package vtl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Print renders expr as VTL text.
func Print(expr Expression) string {
	var buf strings.Builder
	(&formatter{writer: &buf}).formatExpression(expr)
	return buf.String()
}

// PrintBlock renders expr framed by `## [Start] name. **` / `## [End] name. **`.
func PrintBlock(name string, expr Expression) string {
	return Print(NewBlock(name, expr))
}

type formatter struct {
	writer io.Writer
}

func (f *formatter) writeString(s string) {
	_, _ = f.writer.Write([]byte(s))
}

func (f *formatter) formatExpression(expr Expression) {
	f.writeString(f.format(expr, ""))
}

func (f *formatter) format(expr Expression, indent string) string {
	switch expr := expr.(type) {
	case nil:
		return ""
	case *Raw:
		return indent + expr.Value
	case *Ref:
		return indent + "$" + expr.Value
	case *QuietRef:
		return indent + "$util.qr(" + expr.Value + ")"
	case *If:
		if expr.Inline {
			return fmt.Sprintf("%s#if( %s ) %s #end", indent, f.format(expr.Predicate, ""), f.format(expr.Expr, ""))
		}
		return fmt.Sprintf(
			"%s#if( %s )\n%s\n%s#end",
			indent, f.format(expr.Predicate, ""),
			f.format(expr.Expr, indent+indentUnit),
			indent,
		)
	case *IfElse:
		if expr.Inline {
			return fmt.Sprintf(
				"%s#if( %s ) %s #else %s #end",
				indent, f.format(expr.Predicate, ""),
				f.format(expr.IfExpr, ""), f.format(expr.ElseExpr, ""),
			)
		}
		return fmt.Sprintf(
			"%s#if( %s )\n%s\n%s#else\n%s\n%s#end",
			indent, f.format(expr.Predicate, ""),
			f.format(expr.IfExpr, indent+indentUnit),
			indent,
			f.format(expr.ElseExpr, indent+indentUnit),
			indent,
		)
	case *Set:
		return fmt.Sprintf("%s#set( %s = %s )", indent, f.format(expr.Key, ""), strings.TrimLeft(f.format(expr.Value, indent), " \t"))
	case *Compound:
		return f.formatList(expr.Expressions, indent, "\n")
	case *Block:
		return fmt.Sprintf(
			"%s## [Start] %s. **\n%s\n%s## [End] %s. **",
			indent, expr.Name,
			f.formatList(expr.Expressions, indent, "\n"),
			indent, expr.Name,
		)
	case *Comment:
		return fmt.Sprintf("%s## %s **", indent, expr.Text)
	case *Obj:
		attrs := make([]string, 0, len(expr.Attributes))
		for i, attr := range expr.Attributes {
			s := fmt.Sprintf("%s  \"%s\": %s", indent, attr.Key, strings.TrimLeft(f.format(attr.Value, indent+indentUnit), " \t"))
			if i < len(expr.Attributes)-1 {
				s += ","
			}
			attrs = append(attrs, s)
		}
		if len(attrs) == 0 {
			return "{}"
		}
		return "{\n" + strings.Join(attrs, "\n") + "\n" + indent + "}"
	case *List:
		return "[" + f.formatList(expr.Expressions, "", ", ") + "]"
	case *Str:
		return `"` + expr.Value + `"`
	case *Int:
		return strconv.Itoa(expr.Value)
	case *Bool:
		return strconv.FormatBool(expr.Value)
	case *Null:
		return "null"
	case *ToJSON:
		return indent + "$util.toJson(" + f.format(expr.Expr, "") + ")"
	default:
		panic(fmt.Sprintf("unsupported vtl expression: %T", expr))
	}
}

func (f *formatter) formatList(exprs []Expression, indent, sep string) string {
	ss := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		ss = append(ss, f.format(expr, indent))
	}
	return strings.Join(ss, sep)
}

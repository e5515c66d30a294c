package vtl

// Expression is a node of an AppSync VTL mapping template.
type Expression interface {
	isExpression()
}

var _ Expression = (*Raw)(nil)
var _ Expression = (*Ref)(nil)
var _ Expression = (*QuietRef)(nil)
var _ Expression = (*If)(nil)
var _ Expression = (*IfElse)(nil)
var _ Expression = (*Set)(nil)
var _ Expression = (*Compound)(nil)
var _ Expression = (*Block)(nil)
var _ Expression = (*Comment)(nil)
var _ Expression = (*Obj)(nil)
var _ Expression = (*List)(nil)
var _ Expression = (*Str)(nil)
var _ Expression = (*Int)(nil)
var _ Expression = (*Bool)(nil)
var _ Expression = (*Null)(nil)
var _ Expression = (*ToJSON)(nil)

// Raw is emitted verbatim.
type Raw struct {
	Value string
}

func (*Raw) isExpression() {}

// Ref is a variable reference. Value is written without the leading `$`.
type Ref struct {
	Value string
}

func (*Ref) isExpression() {}

// QuietRef wraps Value in `$util.qr(...)` so its result is discarded.
type QuietRef struct {
	Value string
}

func (*QuietRef) isExpression() {}

type If struct {
	Predicate Expression
	Expr      Expression
	Inline    bool
}

func (*If) isExpression() {}

type IfElse struct {
	Predicate Expression
	IfExpr    Expression
	ElseExpr  Expression
	Inline    bool
}

func (*IfElse) isExpression() {}

// Set renders `#set( $Key = Value )`.
type Set struct {
	Key   *Ref
	Value Expression
}

func (*Set) isExpression() {}

// Compound joins its expressions with newlines at the same indentation.
type Compound struct {
	Expressions []Expression
}

func (*Compound) isExpression() {}

// Block is a Compound framed by start/end marker comments.
type Block struct {
	Name        string
	Expressions []Expression
}

func (*Block) isExpression() {}

type Comment struct {
	Text string
}

func (*Comment) isExpression() {}

type Attribute struct {
	Key   string
	Value Expression
}

// Obj is a JSON-like map literal. Attribute order is preserved.
type Obj struct {
	Attributes []*Attribute
}

func (*Obj) isExpression() {}

type List struct {
	Expressions []Expression
}

func (*List) isExpression() {}

// Str is a double quoted literal. Value is not escaped.
type Str struct {
	Value string
}

func (*Str) isExpression() {}

type Int struct {
	Value int
}

func (*Int) isExpression() {}

type Bool struct {
	Value bool
}

func (*Bool) isExpression() {}

type Null struct{}

func (*Null) isExpression() {}

// ToJSON renders `$util.toJson(Expr)`.
type ToJSON struct {
	Expr Expression
}

func (*ToJSON) isExpression() {}

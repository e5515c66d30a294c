package vtl

func NewRaw(value string) *Raw {
	return &Raw{Value: value}
}

func NewRef(value string) *Ref {
	return &Ref{Value: value}
}

func NewQuietRef(value string) *QuietRef {
	return &QuietRef{Value: value}
}

func NewIf(predicate, expr Expression) *If {
	return &If{Predicate: predicate, Expr: expr}
}

func NewIfElse(predicate, ifExpr, elseExpr Expression) *IfElse {
	return &IfElse{Predicate: predicate, IfExpr: ifExpr, ElseExpr: elseExpr}
}

func NewSet(key string, value Expression) *Set {
	return &Set{Key: NewRef(key), Value: value}
}

func NewCompound(exprs ...Expression) *Compound {
	return &Compound{Expressions: exprs}
}

func NewBlock(name string, exprs ...Expression) *Block {
	return &Block{Name: name, Expressions: exprs}
}

func NewComment(text string) *Comment {
	return &Comment{Text: text}
}

func NewStr(value string) *Str {
	return &Str{Value: value}
}

func NewInt(value int) *Int {
	return &Int{Value: value}
}

func NewBool(value bool) *Bool {
	return &Bool{Value: value}
}

func NewList(exprs ...Expression) *List {
	return &List{Expressions: exprs}
}

func NewToJSON(expr Expression) *ToJSON {
	return &ToJSON{Expr: expr}
}

func NewObj(attrs ...*Attribute) *Obj {
	return &Obj{Attributes: attrs}
}

func Attr(key string, value Expression) *Attribute {
	return &Attribute{Key: key, Value: value}
}

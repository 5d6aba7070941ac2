package kql

import "github.com/go-faster/qlast/internal/kql/lexer"

// Expr is a scalar expression.
type Expr interface {
	Node
	expr()
}

func (*Literal) node()     {}
func (*NameRef) node()     {}
func (*MemberExpr) node()  {}
func (*IndexExpr) node()   {}
func (*CallExpr) node()    {}
func (*BinaryExpr) node()  {}
func (*UnaryExpr) node()   {}
func (*ParenExpr) node()   {}
func (*InExpr) node()      {}
func (*BetweenExpr) node() {}
func (*StarExpr) node()    {}

func (*Literal) expr()     {}
func (*NameRef) expr()     {}
func (*MemberExpr) expr()  {}
func (*IndexExpr) expr()   {}
func (*CallExpr) expr()    {}
func (*BinaryExpr) expr()  {}
func (*UnaryExpr) expr()   {}
func (*ParenExpr) expr()   {}
func (*InExpr) expr()      {}
func (*BetweenExpr) expr() {}
func (*StarExpr) expr()    {}

// Literal is a literal value.
type Literal struct {
	// Type is a literal token type.
	Type lexer.TokenType
	// Text is a literal text, strings are unquoted.
	Text string
}

// NameRef is a column or table reference.
type NameRef struct {
	Name string
}

// MemberExpr is a member access, like `a.b`.
type MemberExpr struct {
	Expr   Expr
	Member string
}

// IndexExpr is an index access, like `a["b"]` or `a[0]`.
type IndexExpr struct {
	Expr  Expr
	Index Expr
}

// CallExpr is a function call.
type CallExpr struct {
	Func string
	Args []Expr
}

// BinaryExpr is a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// UnaryExpr is a unary expression.
type UnaryExpr struct {
	Op   UnaryOp
	Expr Expr
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Expr Expr
}

// InExpr is a `in` or `!in` set membership test.
type InExpr struct {
	Left    Expr
	Negated bool
	Values  []Expr
}

// BetweenExpr is a `between` or `!between` range test.
type BetweenExpr struct {
	Left    Expr
	Negated bool
	Low     Expr
	High    Expr
}

// StarExpr is a `*`, allowed as a call argument, like `count(*)`.
type StarExpr struct{}

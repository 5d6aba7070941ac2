package ast

import "strings"

// Expression is an AST expression.
type Expression interface {
	Node
	expression()
}

func (*Literal) expression()                   {}
func (*Identifier) expression()                {}
func (*BinaryExpression) expression()          {}
func (*UnaryExpression) expression()           {}
func (*CallExpression) expression()            {}
func (*ParenthesizedExpression) expression()   {}
func (*SpecialOperatorExpression) expression() {}
func (*WildcardExpression) expression()        {}
func (*PathExpression) expression()            {}

// Literal is a constant value.
type Literal struct {
	Value Value
}

// LiteralKind returns kind of literal value.
func (l *Literal) LiteralKind() LiteralKind {
	return l.Value.Kind()
}

// Identifier is a field reference.
type Identifier struct {
	Name string
	// Namespace qualifies cross-domain fields like "span" or "trace".
	//
	// Empty means default domain.
	Namespace string
}

// String implements fmt.Stringer.
func (i *Identifier) String() string {
	if i.Namespace == "" {
		return i.Name
	}
	return i.Namespace + "." + i.Name
}

// BinaryExpression is a binary operation between two expressions.
type BinaryExpression struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

// UnaryExpression is a unary operation.
type UnaryExpression struct {
	// Op is an operator token, like "-" or "!".
	Op       string
	Argument Expression
}

// CallExpression is a function call.
type CallExpression struct {
	Callee    *Identifier
	Arguments []Expression
}

// ParenthesizedExpression is an explicit grouping.
type ParenthesizedExpression struct {
	Expr Expression
}

// SpecialOperatorExpression is an operator with multi-value right operand,
// like IN or BETWEEN.
type SpecialOperatorExpression struct {
	Left  Expression
	Op    SpecialOp
	Right []Expression
}

// WildcardExpression is a "*" argument.
type WildcardExpression struct{}

// PathExpression is a member or index access into a dynamic value.
type PathExpression struct {
	Base     Expression
	Elements []PathElement
}

// String returns path in dotted notation.
func (p *PathExpression) String() string {
	var sb strings.Builder
	switch b := p.Base.(type) {
	case *Identifier:
		sb.WriteString(b.String())
	default:
		sb.WriteString("<expr>")
	}
	for _, e := range p.Elements {
		if e.IsIndex() {
			sb.WriteString("[]")
			continue
		}
		sb.WriteByte('.')
		sb.WriteString(e.Member)
	}
	return sb.String()
}

// PathElement is a single path step.
type PathElement struct {
	// Member is a member name, like "b" in "a.b".
	Member string
	// Index is an index expression, like 0 in "a[0]".
	Index Expression // nilable
}

// IsIndex whether element is an index access.
func (e PathElement) IsIndex() bool {
	return e.Index != nil
}

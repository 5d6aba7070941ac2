package traceql

// FieldExpr is a field expression.
type FieldExpr interface {
	fieldExpr()
	ValueType() StaticType
	Node
}

func (*BinaryFieldExpr) fieldExpr() {}
func (*UnaryFieldExpr) fieldExpr()  {}
func (*ParenFieldExpr) fieldExpr()  {}
func (*Static) fieldExpr()          {}
func (*Attribute) fieldExpr()       {}

// BinaryFieldExpr is a binary operation between two field expressions.
type BinaryFieldExpr struct {
	Left  FieldExpr
	Op    BinaryOp
	Right FieldExpr
}

// ValueType returns value type of expression.
func (s *BinaryFieldExpr) ValueType() StaticType {
	if s.Op.IsBoolean() {
		return StaticBool
	}

	t := s.Left.ValueType()
	if t != StaticAttribute {
		return t
	}
	return s.Right.ValueType()
}

func (s *BinaryFieldExpr) String() string {
	return binary(s.Left, s.Op.String(), s.Right)
}

// UnaryFieldExpr is a unary field expression operation.
type UnaryFieldExpr struct {
	Expr FieldExpr
	Op   UnaryOp
}

// ValueType returns value type of expression.
func (s *UnaryFieldExpr) ValueType() StaticType {
	if s.Op == OpNot {
		return StaticBool
	}
	return s.Expr.ValueType()
}

func (s *UnaryFieldExpr) String() string {
	if s.Op == OpNeg {
		// "-1" would lex as a negative literal.
		return s.Op.String() + " " + s.Expr.String()
	}
	return s.Op.String() + s.Expr.String()
}

// ParenFieldExpr is a parenthesized field expression.
type ParenFieldExpr struct {
	Expr FieldExpr
}

// ValueType returns value type of expression.
func (s *ParenFieldExpr) ValueType() StaticType {
	return s.Expr.ValueType()
}

func (s *ParenFieldExpr) String() string {
	return "(" + s.Expr.String() + ")"
}

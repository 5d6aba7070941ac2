package kql

import "github.com/go-faster/qlast/internal/kql/lexer"

// BinaryOp defines binary operator.
type BinaryOp int

const (
	OpOr BinaryOp = iota + 1
	OpAnd
	// Comparison.
	OpEq
	OpNotEq
	OpTildeEq
	OpNotTildeEq
	OpLt
	OpLte
	OpGt
	OpGte
	// String predicates.
	OpContains
	OpNotContains
	OpHas
	OpNotHas
	OpStartsWith
	OpNotStartsWith
	OpEndsWith
	OpNotEndsWith
	OpMatchesRegex
	// Arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

// String implements fmt.Stringer.
func (op BinaryOp) String() string {
	switch op {
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpTildeEq:
		return "=~"
	case OpNotTildeEq:
		return "!~"
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpContains:
		return "contains"
	case OpNotContains:
		return "!contains"
	case OpHas:
		return "has"
	case OpNotHas:
		return "!has"
	case OpStartsWith:
		return "startswith"
	case OpNotStartsWith:
		return "!startswith"
	case OpEndsWith:
		return "endswith"
	case OpNotEndsWith:
		return "!endswith"
	case OpMatchesRegex:
		return "matches regex"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "<unknown op>"
	}
}

const (
	precedenceOr = iota + 1
	precedenceAnd
	precedenceComparison
	precedenceAdditive
	precedenceMultiplicative
)

// Precedence returns operator precedence.
func (op BinaryOp) Precedence() int {
	switch op {
	case OpOr:
		return precedenceOr
	case OpAnd:
		return precedenceAnd
	case OpAdd, OpSub:
		return precedenceAdditive
	case OpMul, OpDiv, OpMod:
		return precedenceMultiplicative
	default:
		return precedenceComparison
	}
}

var binaryOps = map[lexer.TokenType]BinaryOp{
	lexer.Or:            OpOr,
	lexer.And:           OpAnd,
	lexer.Eq:            OpEq,
	lexer.NotEq:         OpNotEq,
	lexer.TildeEq:       OpTildeEq,
	lexer.NotTildeEq:    OpNotTildeEq,
	lexer.Lt:            OpLt,
	lexer.Lte:           OpLte,
	lexer.Gt:            OpGt,
	lexer.Gte:           OpGte,
	lexer.Contains:      OpContains,
	lexer.NotContains:   OpNotContains,
	lexer.Has:           OpHas,
	lexer.NotHas:        OpNotHas,
	lexer.StartsWith:    OpStartsWith,
	lexer.NotStartsWith: OpNotStartsWith,
	lexer.EndsWith:      OpEndsWith,
	lexer.NotEndsWith:   OpNotEndsWith,
	lexer.Matches:       OpMatchesRegex,
	lexer.Add:           OpAdd,
	lexer.Sub:           OpSub,
	lexer.Mul:           OpMul,
	lexer.Div:           OpDiv,
	lexer.Mod:           OpMod,
}

// UnaryOp defines unary operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota + 1
	OpPlus
)

// String implements fmt.Stringer.
func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpPlus:
		return "+"
	default:
		return "<unknown op>"
	}
}

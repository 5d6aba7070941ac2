package traceql

import (
	"fmt"

	"github.com/go-faster/qlast/internal/traceql/lexer"
)

type opClass uint8

const (
	classLogical opClass = iota + 1
	classArithmetic
	classComparison
)

// BinaryOp defines binary operation.
type BinaryOp int

const (
	// Logical ops.
	OpAnd BinaryOp = iota + 1
	OpOr
	// Math ops.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	// Comparison ops.
	OpEq
	OpNotEq
	OpRe
	OpNotRe
	OpGt
	OpGte
	OpLt
	OpLte
)

type binaryOpInfo struct {
	text       string
	token      lexer.TokenType
	precedence int
	class      opClass
}

var binaryOpInfos = [...]binaryOpInfo{
	OpOr:    {"||", lexer.Or, 1, classLogical},
	OpAnd:   {"&&", lexer.And, 2, classLogical},
	OpEq:    {"=", lexer.Eq, 3, classComparison},
	OpNotEq: {"!=", lexer.NotEq, 3, classComparison},
	OpRe:    {"=~", lexer.Re, 3, classComparison},
	OpNotRe: {"!~", lexer.NotRe, 3, classComparison},
	OpGt:    {">", lexer.Gt, 3, classComparison},
	OpGte:   {">=", lexer.Gte, 3, classComparison},
	OpLt:    {"<", lexer.Lt, 3, classComparison},
	OpLte:   {"<=", lexer.Lte, 3, classComparison},
	OpAdd:   {"+", lexer.Add, 4, classArithmetic},
	OpSub:   {"-", lexer.Sub, 4, classArithmetic},
	OpMul:   {"*", lexer.Mul, 5, classArithmetic},
	OpDiv:   {"/", lexer.Div, 5, classArithmetic},
	OpMod:   {"%", lexer.Mod, 5, classArithmetic},
	OpPow:   {"^", lexer.Pow, 6, classArithmetic},
}

var binaryOpByToken = func() map[lexer.TokenType]BinaryOp {
	r := make(map[lexer.TokenType]BinaryOp, len(binaryOpInfos))
	for op, info := range binaryOpInfos {
		if info.token != 0 {
			r[info.token] = BinaryOp(op)
		}
	}
	return r
}()

func (op BinaryOp) info() (binaryOpInfo, bool) {
	if op <= 0 || int(op) >= len(binaryOpInfos) {
		return binaryOpInfo{}, false
	}
	return binaryOpInfos[op], true
}

// Precedence returns operator precedence, -1 for unknown operator.
func (op BinaryOp) Precedence() int {
	info, ok := op.info()
	if !ok {
		return -1
	}
	return info.precedence
}

func (op BinaryOp) class() opClass {
	info, _ := op.info()
	return info.class
}

// IsLogical whether is operation logical.
func (op BinaryOp) IsLogical() bool {
	return op.class() == classLogical
}

// IsArithmetic whether is operation arithmetic.
func (op BinaryOp) IsArithmetic() bool {
	return op.class() == classArithmetic
}

// IsComparison whether is operation comparison.
func (op BinaryOp) IsComparison() bool {
	return op.class() == classComparison
}

// IsBoolean whether operation result is boolean.
func (op BinaryOp) IsBoolean() bool {
	return op.IsLogical() || op.IsComparison()
}

// IsRegex whether is operation regexp matching.
func (op BinaryOp) IsRegex() bool {
	return op == OpRe || op == OpNotRe
}

// IsOrdering whether is operation ordering comparison.
func (op BinaryOp) IsOrdering() bool {
	return op.IsComparison() && op != OpEq && op != OpNotEq && !op.IsRegex()
}

// CheckType whether operation is defined on given type.
func (op BinaryOp) CheckType(t StaticType) bool {
	if t == StaticAttribute {
		return true
	}
	switch {
	case op.IsLogical():
		return t == StaticBool
	case op.IsArithmetic():
		return t.IsNumeric()
	case op.IsRegex():
		return t == StaticString
	case op.IsOrdering():
		return t.IsNumeric() || t == StaticString
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (op BinaryOp) String() string {
	info, ok := op.info()
	if !ok {
		return fmt.Sprintf("<unknown op %d>", int(op))
	}
	return info.text
}

// UnaryOp defines unary operation.
type UnaryOp int

const (
	OpNot UnaryOp = iota + 1
	OpNeg
)

var unaryOpByToken = map[lexer.TokenType]UnaryOp{
	lexer.Not: OpNot,
	lexer.Sub: OpNeg,
}

// CheckType whether operation is defined on given type.
func (op UnaryOp) CheckType(t StaticType) bool {
	if t == StaticAttribute {
		return true
	}
	switch op {
	case OpNot:
		return t == StaticBool
	case OpNeg:
		return t.IsNumeric()
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return fmt.Sprintf("<unknown op %d>", int(op))
	}
}

// SpansetOp defines spanset operation.
type SpansetOp int

const (
	SpansetOpAnd SpansetOp = iota + 1
	SpansetOpChild
	SpansetOpDescendant
	SpansetOpUnion
	SpansetOpSibling
)

var spansetOpTexts = [...]string{
	SpansetOpAnd:        "&&",
	SpansetOpChild:      ">",
	SpansetOpDescendant: ">>",
	SpansetOpUnion:      "||",
	SpansetOpSibling:    "~",
}

var spansetOpByToken = map[lexer.TokenType]SpansetOp{
	lexer.And:   SpansetOpAnd,
	lexer.Gt:    SpansetOpChild,
	lexer.Desc:  SpansetOpDescendant,
	lexer.Or:    SpansetOpUnion,
	lexer.Tilde: SpansetOpSibling,
}

// Precedence returns operator precedence.
//
// Structural operators bind tighter than set operators.
func (op SpansetOp) Precedence() int {
	switch op {
	case SpansetOpAnd, SpansetOpUnion:
		return 1
	case SpansetOpChild, SpansetOpDescendant, SpansetOpSibling:
		return 2
	default:
		return -1
	}
}

// IsStructural whether operation relates spans by tree structure.
func (op SpansetOp) IsStructural() bool {
	return op.Precedence() == 2
}

// String implements fmt.Stringer.
func (op SpansetOp) String() string {
	if op <= 0 || int(op) >= len(spansetOpTexts) {
		return fmt.Sprintf("<unknown op %d>", int(op))
	}
	return spansetOpTexts[op]
}

// AggregateOp defines aggregation operation.
type AggregateOp int

const (
	AggregateOpCount AggregateOp = iota + 1
	AggregateOpMax
	AggregateOpMin
	AggregateOpAvg
	AggregateOpSum
)

var aggregateOpNames = [...]string{
	AggregateOpCount: "count",
	AggregateOpMax:   "max",
	AggregateOpMin:   "min",
	AggregateOpAvg:   "avg",
	AggregateOpSum:   "sum",
}

var aggregateOpByToken = map[lexer.TokenType]AggregateOp{
	lexer.Count: AggregateOpCount,
	lexer.Max:   AggregateOpMax,
	lexer.Min:   AggregateOpMin,
	lexer.Avg:   AggregateOpAvg,
	lexer.Sum:   AggregateOpSum,
}

// String implements fmt.Stringer.
func (op AggregateOp) String() string {
	if op <= 0 || int(op) >= len(aggregateOpNames) {
		return fmt.Sprintf("<unknown op %d>", int(op))
	}
	return aggregateOpNames[op]
}

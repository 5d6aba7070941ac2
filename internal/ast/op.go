package ast

import "fmt"

// OpClass defines binary operator class.
type OpClass uint8

const (
	ClassComparison OpClass = iota + 1
	ClassArithmetic
	ClassLogical
)

// String implements fmt.Stringer.
func (c OpClass) String() string {
	switch c {
	case ClassComparison:
		return "comparison"
	case ClassArithmetic:
		return "arithmetic"
	case ClassLogical:
		return "logical"
	default:
		return fmt.Sprintf("<unknown class %d>", c)
	}
}

// BinaryOp defines binary operation.
type BinaryOp uint8

const (
	// Comparison ops.
	OpEqual BinaryOp = iota + 1
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	// Arithmetic ops.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	// Logical ops.
	OpAnd
	OpOr
)

var binaryOps = map[string]BinaryOp{
	"==":  OpEqual,
	"!=":  OpNotEqual,
	"<":   OpLessThan,
	"<=":  OpLessOrEqual,
	">":   OpGreaterThan,
	">=":  OpGreaterOrEqual,
	"+":   OpAdd,
	"-":   OpSubtract,
	"*":   OpMultiply,
	"/":   OpDivide,
	"%":   OpModulo,
	"and": OpAnd,
	"or":  OpOr,
}

// ParseBinaryOp maps canonical operator token to BinaryOp.
func ParseBinaryOp(token string) (BinaryOp, bool) {
	op, ok := binaryOps[token]
	return op, ok
}

// IsValid whether op is a known operator.
func (op BinaryOp) IsValid() bool {
	return op >= OpEqual && op <= OpOr
}

// Class returns operator class.
func (op BinaryOp) Class() OpClass {
	switch op {
	case OpEqual,
		OpNotEqual,
		OpLessThan,
		OpLessOrEqual,
		OpGreaterThan,
		OpGreaterOrEqual:
		return ClassComparison
	case OpAdd,
		OpSubtract,
		OpMultiply,
		OpDivide,
		OpModulo:
		return ClassArithmetic
	case OpAnd, OpOr:
		return ClassLogical
	default:
		return 0
	}
}

// IsBoolean whether operator result is boolean.
func (op BinaryOp) IsBoolean() bool {
	c := op.Class()
	return c == ClassComparison || c == ClassLogical
}

// String implements fmt.Stringer.
func (op BinaryOp) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return fmt.Sprintf("<unknown op %d>", op)
	}
}

// SpecialOp defines operation with multi-value right operand.
type SpecialOp uint8

const (
	SpecialIn SpecialOp = iota + 1
	SpecialNotIn
	SpecialBetween
	SpecialNotBetween
	SpecialContains
	SpecialNotContains
	SpecialStartsWith
	SpecialEndsWith
	SpecialHas
	SpecialMatchesRegex
	SpecialNotMatchesRegex
)

var specialOps = map[string]SpecialOp{
	"in":             SpecialIn,
	"!in":            SpecialNotIn,
	"between":        SpecialBetween,
	"!between":       SpecialNotBetween,
	"contains":       SpecialContains,
	"!contains":      SpecialNotContains,
	"startswith":     SpecialStartsWith,
	"endswith":       SpecialEndsWith,
	"has":            SpecialHas,
	"matches regex":  SpecialMatchesRegex,
	"!matches regex": SpecialNotMatchesRegex,
}

// ParseSpecialOp maps canonical operator token to SpecialOp.
func ParseSpecialOp(token string) (SpecialOp, bool) {
	op, ok := specialOps[token]
	return op, ok
}

// IsValid whether op is a known operator.
func (op SpecialOp) IsValid() bool {
	return op >= SpecialIn && op <= SpecialNotMatchesRegex
}

// IsNegated whether operator is a negated form.
func (op SpecialOp) IsNegated() bool {
	switch op {
	case SpecialNotIn,
		SpecialNotBetween,
		SpecialNotContains,
		SpecialNotMatchesRegex:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (op SpecialOp) String() string {
	switch op {
	case SpecialIn:
		return "in"
	case SpecialNotIn:
		return "!in"
	case SpecialBetween:
		return "between"
	case SpecialNotBetween:
		return "!between"
	case SpecialContains:
		return "contains"
	case SpecialNotContains:
		return "!contains"
	case SpecialStartsWith:
		return "startswith"
	case SpecialEndsWith:
		return "endswith"
	case SpecialHas:
		return "has"
	case SpecialMatchesRegex:
		return "matches regex"
	case SpecialNotMatchesRegex:
		return "!matches regex"
	default:
		return fmt.Sprintf("<unknown op %d>", op)
	}
}

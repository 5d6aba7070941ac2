package kqlconv

import (
	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/kql"
)

var binaryOps = map[kql.BinaryOp]ast.BinaryOp{
	kql.OpOr:    ast.OpOr,
	kql.OpAnd:   ast.OpAnd,
	kql.OpEq:    ast.OpEqual,
	kql.OpNotEq: ast.OpNotEqual,
	kql.OpLt:    ast.OpLessThan,
	kql.OpLte:   ast.OpLessOrEqual,
	kql.OpGt:    ast.OpGreaterThan,
	kql.OpGte:   ast.OpGreaterOrEqual,
	kql.OpAdd:   ast.OpAdd,
	kql.OpSub:   ast.OpSubtract,
	kql.OpMul:   ast.OpMultiply,
	kql.OpDiv:   ast.OpDivide,
	kql.OpMod:   ast.OpModulo,
}

var specialOps = map[kql.BinaryOp]ast.SpecialOp{
	kql.OpContains:     ast.SpecialContains,
	kql.OpNotContains:  ast.SpecialNotContains,
	kql.OpHas:          ast.SpecialHas,
	kql.OpStartsWith:   ast.SpecialStartsWith,
	kql.OpEndsWith:     ast.SpecialEndsWith,
	kql.OpMatchesRegex: ast.SpecialMatchesRegex,
}

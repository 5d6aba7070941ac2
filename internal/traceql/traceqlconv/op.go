package traceqlconv

import (
	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/traceql"
)

var binaryOps = map[traceql.BinaryOp]ast.BinaryOp{
	traceql.OpAnd:   ast.OpAnd,
	traceql.OpOr:    ast.OpOr,
	traceql.OpAdd:   ast.OpAdd,
	traceql.OpSub:   ast.OpSubtract,
	traceql.OpMul:   ast.OpMultiply,
	traceql.OpDiv:   ast.OpDivide,
	traceql.OpMod:   ast.OpModulo,
	traceql.OpEq:    ast.OpEqual,
	traceql.OpNotEq: ast.OpNotEqual,
	traceql.OpGt:    ast.OpGreaterThan,
	traceql.OpGte:   ast.OpGreaterOrEqual,
	traceql.OpLt:    ast.OpLessThan,
	traceql.OpLte:   ast.OpLessOrEqual,
}

var specialOps = map[traceql.BinaryOp]ast.SpecialOp{
	traceql.OpRe:    ast.SpecialMatchesRegex,
	traceql.OpNotRe: ast.SpecialNotMatchesRegex,
}

var combinations = map[traceql.SpansetOp]ast.Combination{
	traceql.SpansetOpAnd:   ast.CombinationAll,
	traceql.SpansetOpUnion: ast.CombinationAny,
}

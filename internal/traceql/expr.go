// Package traceql contains TraceQL parser.
package traceql

import "strings"

// Node is a TraceQL syntax tree node.
//
// String returns TraceQL text that parses back to an equal tree.
type Node interface {
	node()
	String() string
}

func (*SpansetPipeline) node()     {}
func (*BinarySpansetExpr) node()   {}
func (*ParenSpansetExpr) node()    {}
func (*SpansetFilter) node()       {}
func (*ScalarFilter) node()        {}
func (*GroupOperation) node()      {}
func (*CoalesceOperation) node()   {}
func (*SelectOperation) node()     {}
func (*BinaryFieldExpr) node()     {}
func (*UnaryFieldExpr) node()      {}
func (*ParenFieldExpr) node()      {}
func (*Static) node()              {}
func (*Attribute) node()           {}
func (*BinaryScalarExpr) node()    {}
func (*ParenScalarExpr) node()     {}
func (*AggregateScalarExpr) node() {}

// Expr is a TraceQL expression.
type Expr interface {
	expr()
	Node
}

func (*SpansetPipeline) expr() {}

// SpansetPipeline is a spanset pipeline.
type SpansetPipeline struct {
	Pipeline []PipelineStage
}

func (e *SpansetPipeline) String() string {
	return join(e.Pipeline, " | ")
}

// PipelineStage is a pipeline stage.
type PipelineStage interface {
	pipelineStage()
	Node
}

func (*BinarySpansetExpr) pipelineStage() {}
func (*ParenSpansetExpr) pipelineStage()  {}
func (*SpansetFilter) pipelineStage()     {}
func (*ScalarFilter) pipelineStage()      {}
func (*GroupOperation) pipelineStage()    {}
func (*CoalesceOperation) pipelineStage() {}
func (*SelectOperation) pipelineStage()   {}

// SpansetExpr is a spanset expression.
type SpansetExpr interface {
	spansetExpr()
	PipelineStage
}

func (*BinarySpansetExpr) spansetExpr() {}
func (*ParenSpansetExpr) spansetExpr()  {}
func (*SpansetFilter) spansetExpr()     {}

// BinarySpansetExpr is a binary operation between two spanset expressions.
type BinarySpansetExpr struct {
	Left  SpansetExpr
	Op    SpansetOp
	Right SpansetExpr
}

func (e *BinarySpansetExpr) String() string {
	return binary(e.Left, e.Op.String(), e.Right)
}

// ParenSpansetExpr is a parenthesized spanset expression.
type ParenSpansetExpr struct {
	Expr SpansetExpr
}

func (e *ParenSpansetExpr) String() string {
	return "(" + e.Expr.String() + ")"
}

// SpansetFilter selects spans matching the expression.
type SpansetFilter struct {
	Expr FieldExpr // if filter is empty, expr is True
}

func (e *SpansetFilter) String() string {
	if s, ok := e.Expr.(*Static); ok && s.Type == StaticBool && s.AsBool() {
		return "{}"
	}
	return "{ " + e.Expr.String() + " }"
}

// ScalarFilter is a scalar filter, like `count() > 2`.
type ScalarFilter struct {
	Left  ScalarExpr
	Op    BinaryOp
	Right ScalarExpr
}

func (e *ScalarFilter) String() string {
	return binary(e.Left, e.Op.String(), e.Right)
}

// GroupOperation is a `by()` operation.
type GroupOperation struct {
	By FieldExpr
}

func (e *GroupOperation) String() string {
	return "by(" + e.By.String() + ")"
}

// CoalesceOperation is a `coalesce()` operation.
type CoalesceOperation struct{}

func (*CoalesceOperation) String() string {
	return "coalesce()"
}

// SelectOperation is a `select()` operation.
type SelectOperation struct {
	Args []FieldExpr
}

func (e *SelectOperation) String() string {
	return "select(" + join(e.Args, ", ") + ")"
}

// ScalarExpr is a scalar expression.
type ScalarExpr interface {
	scalarExpr()
	Node
}

func (*BinaryScalarExpr) scalarExpr()    {}
func (*ParenScalarExpr) scalarExpr()     {}
func (*Static) scalarExpr()              {}
func (*AggregateScalarExpr) scalarExpr() {}

// BinaryScalarExpr is an arithmetic operation between two scalar expressions.
type BinaryScalarExpr struct {
	Left  ScalarExpr
	Op    BinaryOp
	Right ScalarExpr
}

func (e *BinaryScalarExpr) String() string {
	return binary(e.Left, e.Op.String(), e.Right)
}

// ParenScalarExpr is a parenthesized scalar expression.
type ParenScalarExpr struct {
	Expr ScalarExpr
}

func (e *ParenScalarExpr) String() string {
	return "(" + e.Expr.String() + ")"
}

// AggregateScalarExpr is an aggregate function.
type AggregateScalarExpr struct {
	Op    AggregateOp
	Field FieldExpr // nilable
}

func (e *AggregateScalarExpr) String() string {
	if e.Field == nil {
		return e.Op.String() + "()"
	}
	return e.Op.String() + "(" + e.Field.String() + ")"
}

func binary(left Node, op string, right Node) string {
	return left.String() + " " + op + " " + right.String()
}

func join[N Node](nodes []N, sep string) string {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}

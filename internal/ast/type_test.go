package ast

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInferType(t *testing.T) {
	field := &Identifier{Name: "field"}
	dur := &Literal{Value: DurationValue{Text: "1s", Duration: time.Second}}
	ts := &Literal{Value: DateTimeValue{Text: "2024-01-01", Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}
	call := func(name string, args ...Expression) Expression {
		return &CallExpression{Callee: &Identifier{Name: name}, Arguments: args}
	}

	tests := []struct {
		expr Expression
		want ValueType
	}{
		{String("a"), TypeString},
		{Int(1), TypeInt},
		{Float(1.5), TypeFloat},
		{Bool(true), TypeBool},
		{Null(), TypeDynamic},
		{dur, TypeDuration},
		{ts, TypeDateTime},
		{&Literal{Value: GuidValue{}}, TypeGuid},
		{&Literal{Value: DynamicValue(`{"a":1}`)}, TypeDynamic},
		{field, TypeDynamic},
		{&WildcardExpression{}, TypeDynamic},

		{&BinaryExpression{Left: field, Op: OpGreaterThan, Right: Int(1)}, TypeBool},
		{&BinaryExpression{Left: field, Op: OpAnd, Right: field}, TypeBool},
		{&BinaryExpression{Left: field, Op: OpDivide, Right: Int(1000)}, TypeInt},
		{&BinaryExpression{Left: field, Op: OpDivide, Right: Float(1000)}, TypeFloat},
		{&BinaryExpression{Left: Int(1), Op: OpAdd, Right: Float(1)}, TypeFloat},
		{&BinaryExpression{Left: Int(1), Op: OpAdd, Right: Int(1)}, TypeInt},
		{&BinaryExpression{Left: field, Op: OpAdd, Right: field}, TypeDynamic},
		{&BinaryExpression{Left: dur, Op: OpMultiply, Right: Int(2)}, TypeDuration},
		{&BinaryExpression{Left: dur, Op: OpDivide, Right: dur}, TypeFloat},
		{&BinaryExpression{Left: ts, Op: OpSubtract, Right: ts}, TypeDuration},
		{&BinaryExpression{Left: ts, Op: OpAdd, Right: dur}, TypeDateTime},
		{&BinaryExpression{Left: String("a"), Op: OpAdd, Right: String("b")}, TypeString},
		{&BinaryExpression{Left: String("a"), Op: OpMultiply, Right: Int(2)}, TypeDynamic},

		{&UnaryExpression{Op: "-", Argument: Int(1)}, TypeInt},
		{&UnaryExpression{Op: "!", Argument: field}, TypeBool},
		{&ParenthesizedExpression{Expr: Float(1)}, TypeFloat},
		{&SpecialOperatorExpression{Left: field, Op: SpecialIn, Right: []Expression{Int(1)}}, TypeBool},

		{call("strlen", field), TypeInt},
		{call("ToLower", field), TypeString},
		{call("now"), TypeDateTime},
		{call("round", Float(1.5), Int(1)), TypeFloat},
		{call("bin", dur, dur), TypeDuration},
		{call("unknown_func", Int(1)), TypeDynamic},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			require.Equal(t, tt.want, InferType(tt.expr))
		})
	}
}

func TestLiteralType(t *testing.T) {
	for k := LiteralString; k <= LiteralDynamic; k++ {
		require.NotContains(t, k.String(), "unknown")
		require.NotEqual(t, TypeUnset, LiteralType(k))
	}
}

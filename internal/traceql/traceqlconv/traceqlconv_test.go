package traceqlconv

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astvisitor"
	"github.com/go-faster/qlast/internal/traceql"
)

func ident(name, ns string) *ast.Identifier {
	return &ast.Identifier{Name: name, Namespace: ns}
}

func binary(left ast.Expression, op ast.BinaryOp, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: left, Op: op, Right: right}
}

func spans(c ast.Combination, exprs ...ast.Expression) *ast.Filter {
	return &ast.Filter{
		SpanFilter: &ast.SpanFilter{
			Expressions: exprs,
			Combination: c,
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Operation
	}{
		{
			`{ .service.name = "gateway" }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(ident("service.name", ""), ast.OpEqual, ast.String("gateway")),
				),
			},
		},
		{
			`{}`,
			[]ast.Operation{
				spans(ast.CombinationAny, ast.Bool(true)),
			},
		},
		{
			`{ span.http.status_code >= 500 } && { resource.service.name = "api" }`,
			[]ast.Operation{
				spans(ast.CombinationAll,
					binary(ident("http.status_code", "span"), ast.OpGreaterOrEqual, ast.Int(500)),
					binary(ident("service.name", "resource"), ast.OpEqual, ast.String("api")),
				),
			},
		},
		{
			`({ .a = 1 } || { .b = 2 }) || { .c = 3.5 }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(ident("a", ""), ast.OpEqual, ast.Int(1)),
					binary(ident("b", ""), ast.OpEqual, ast.Int(2)),
					binary(ident("c", ""), ast.OpEqual, ast.Float(3.5)),
				),
			},
		},
		{
			`{ duration > 1s && traceDuration < 1m }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(
						binary(
							ident("duration", "span"),
							ast.OpGreaterThan,
							&ast.Literal{Value: ast.DurationValue{Text: "1s", Duration: time.Second}},
						),
						ast.OpAnd,
						binary(
							ident("traceDuration", "trace"),
							ast.OpLessThan,
							&ast.Literal{Value: ast.DurationValue{Text: "1m", Duration: time.Minute}},
						),
					),
				),
			},
		},
		{
			`{ status = error || kind != server }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(
						binary(ident("status", "span"), ast.OpEqual, ast.String("error")),
						ast.OpOr,
						binary(ident("kind", "span"), ast.OpNotEqual, ast.String("server")),
					),
				),
			},
		},
		{
			`{ parent.span.a = nil && parent.b != nil && rootServiceName = "x" }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(
						binary(
							binary(ident("a", "parent.span"), ast.OpEqual, ast.Null()),
							ast.OpAnd,
							binary(ident("b", "parent"), ast.OpNotEqual, ast.Null()),
						),
						ast.OpAnd,
						binary(ident("rootServiceName", "trace"), ast.OpEqual, ast.String("x")),
					),
				),
			},
		},
		{
			`{ name =~ "GET.*" && name !~ "POST" }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(
						&ast.SpecialOperatorExpression{
							Left:  ident("name", "span"),
							Op:    ast.SpecialMatchesRegex,
							Right: []ast.Expression{ast.String("GET.*")},
						},
						ast.OpAnd,
						&ast.SpecialOperatorExpression{
							Left:  ident("name", "span"),
							Op:    ast.SpecialNotMatchesRegex,
							Right: []ast.Expression{ast.String("POST")},
						},
					),
				),
			},
		},
		{
			`{ !(.a = true) && -childCount < 0 }`,
			[]ast.Operation{
				spans(ast.CombinationAny,
					binary(
						&ast.UnaryExpression{
							Op: "!",
							Argument: &ast.ParenthesizedExpression{
								Expr: binary(ident("a", ""), ast.OpEqual, ast.Bool(true)),
							},
						},
						ast.OpAnd,
						binary(
							&ast.UnaryExpression{Op: "-", Argument: ident("childCount", "span")},
							ast.OpLessThan,
							ast.Int(0),
						),
					),
				),
			},
		},
		{
			`{ .a } | select(.b, span.c, duration / 1000)`,
			[]ast.Operation{
				spans(ast.CombinationAny, ident("a", "")),
				&ast.Project{
					Keyword: "select",
					Projections: []*ast.ProjectionExpression{
						{Expression: ident("b", "")},
						{Expression: ident("c", "span")},
						{
							Expression: binary(ident("duration", "span"), ast.OpDivide, ast.Int(1000)),
							ResultType: ast.TypeInt,
						},
					},
				},
			},
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("Input:\n%s", tt.input)
				}
			}()

			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, &ast.Query{Operations: tt.want}, got)
			require.NoError(t, ast.Validate(got))
		})
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		input     string
		construct string
		operator  string
	}{
		{`{ .a } > { .b }`, "", ">"},
		{`{ .a } >> { .b }`, "", ">>"},
		{`{ .a } ~ { .b }`, "", "~"},
		{`{ .a } && { .b } || { .c }`, "mixed spanset operators", ""},
		{`count() > 2`, "scalar filter", ""},
		{`{ .a } | count() > 2`, "scalar filter", ""},
		{`{ .a } | by(.b)`, "by operation", ""},
		{`{ .a } | by(.b) | coalesce()`, "by operation", ""},
		{`{ .a ^ 2 = 4 }`, "", "^"},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, astvisitor.ErrUnsupported)

			if tt.operator != "" {
				var opErr *astvisitor.UnsupportedOperatorError
				require.ErrorAs(t, err, &opErr)
				require.Equal(t, Language, opErr.Language)
				require.Equal(t, tt.operator, opErr.Operator)
				return
			}
			var uerr *astvisitor.UnsupportedError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, Language, uerr.Language)
			require.Equal(t, tt.construct, uerr.Construct)
		})
	}
}

func TestParseError(t *testing.T) {
	for _, input := range []string{
		`{ .a = `,
		`{ "foo" }`,
		`coalesce()`,
	} {
		_, err := Parse(input)
		require.Error(t, err, input)
		require.False(t, errors.Is(err, astvisitor.ErrUnsupported), input)
	}

	_, err := Parse(`{ 1 + "a" = 1 }`)
	var te *traceql.TypeError
	require.ErrorAs(t, err, &te)
}

func TestConvertNil(t *testing.T) {
	_, err := Convert(nil)
	require.Error(t, err)
}

func TestConvertFreshState(t *testing.T) {
	expr, err := traceql.Parse(`{ .a = 1 }`)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, err := Convert(expr)
		require.NoError(t, err)
		require.Len(t, got.Operations, 1)
	}
}

func TestParser(t *testing.T) {
	var p Parser
	q, err := p.Parse(`{ span.service = "gateway" }`)
	require.NoError(t, err)
	require.Len(t, q.Operations, 1)
}

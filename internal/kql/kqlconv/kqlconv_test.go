package kqlconv

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astvisitor"
	"github.com/go-faster/qlast/internal/kql"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func binary(left ast.Expression, op ast.BinaryOp, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: left, Op: op, Right: right}
}

func filter(expr ast.Expression) *ast.Filter {
	return &ast.Filter{Keyword: "where", TraceExpression: expr}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *ast.Query
	}{
		{
			`MyTable | where field > 10 and status == "active"`,
			&ast.Query{
				Source: "MyTable",
				Operations: []ast.Operation{
					filter(binary(
						binary(ident("field"), ast.OpGreaterThan, ast.Int(10)),
						ast.OpAnd,
						binary(ident("status"), ast.OpEqual, ast.String("active")),
					)),
				},
			},
		},
		{
			`T`,
			&ast.Query{Source: "T"},
		},
		{
			`where a == 1 | select a`,
			&ast.Query{
				Operations: []ast.Operation{
					filter(binary(ident("a"), ast.OpEqual, ast.Int(1))),
					&ast.Project{
						Keyword: "select",
						Projections: []*ast.ProjectionExpression{
							{Expression: ident("a")},
						},
					},
				},
			},
		},
		{
			`T | project name, d_ms = duration / 1000, span.http.method, c = count(*)`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					&ast.Project{
						Keyword: "project",
						Projections: []*ast.ProjectionExpression{
							{Expression: ident("name")},
							{
								Expression: binary(ident("duration"), ast.OpDivide, ast.Int(1000)),
								Alias:      "d_ms",
								ResultType: ast.TypeInt,
							},
							{Expression: &ast.Identifier{Name: "http.method", Namespace: "span"}},
							{
								Expression: &ast.CallExpression{
									Callee:    ident("count"),
									Arguments: []ast.Expression{&ast.WildcardExpression{}},
								},
								Alias:      "c",
								ResultType: ast.TypeInt,
							},
						},
					},
				},
			},
		},
		{
			`T | where x in ("a", "b") or y !between (1 .. 5)`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						&ast.SpecialOperatorExpression{
							Left:  ident("x"),
							Op:    ast.SpecialIn,
							Right: []ast.Expression{ast.String("a"), ast.String("b")},
						},
						ast.OpOr,
						&ast.SpecialOperatorExpression{
							Left:  ident("y"),
							Op:    ast.SpecialNotBetween,
							Right: []ast.Expression{ast.Int(1), ast.Int(5)},
						},
					)),
				},
			},
		},
		{
			`T | where s !contains "foo" and s matches regex "^a"`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						&ast.SpecialOperatorExpression{
							Left:  ident("s"),
							Op:    ast.SpecialNotContains,
							Right: []ast.Expression{ast.String("foo")},
						},
						ast.OpAnd,
						&ast.SpecialOperatorExpression{
							Left:  ident("s"),
							Op:    ast.SpecialMatchesRegex,
							Right: []ast.Expression{ast.String("^a")},
						},
					)),
				},
			},
		},
		{
			`T | where props["k"].v == 1`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						&ast.PathExpression{
							Base: ident("props"),
							Elements: []ast.PathElement{
								{Index: ast.String("k")},
								{Member: "v"},
							},
						},
						ast.OpEqual,
						ast.Int(1),
					)),
				},
			},
		},
		{
			`T | where span.attributes["http.method"] == "GET"`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						&ast.PathExpression{
							Base: ident("span"),
							Elements: []ast.PathElement{
								{Member: "attributes"},
								{Index: ast.String("http.method")},
							},
						},
						ast.OpEqual,
						ast.String("GET"),
					)),
				},
			},
		},
		{
			`T | where -x < +1 and (not(isempty(y)))`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						binary(
							&ast.UnaryExpression{Op: "-", Argument: ident("x")},
							ast.OpLessThan,
							ast.Int(1),
						),
						ast.OpAnd,
						&ast.ParenthesizedExpression{
							Expr: &ast.CallExpression{
								Callee: ident("not"),
								Arguments: []ast.Expression{
									&ast.CallExpression{
										Callee:    ident("isempty"),
										Arguments: []ast.Expression{ident("y")},
									},
								},
							},
						},
					)),
				},
			},
		},
		{
			`T | where trace.duration > 1s`,
			&ast.Query{
				Source: "T",
				Operations: []ast.Operation{
					filter(binary(
						&ast.Identifier{Name: "duration", Namespace: "trace"},
						ast.OpGreaterThan,
						&ast.Literal{Value: ast.DurationValue{Text: "1s", Duration: time.Second}},
					)),
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
			require.Equal(t, tt.want, got)
			require.NoError(t, ast.Validate(got))
		})
	}
}

func TestScenarioA(t *testing.T) {
	q, err := Parse(`MyTable | where field > 10 and status == "active"`)
	require.NoError(t, err)
	require.Equal(t, "MyTable", q.Source)
	require.Len(t, q.Operations, 1)

	f, ok := q.Operations[0].(*ast.Filter)
	require.True(t, ok)
	require.Nil(t, f.SpanFilter)

	and, ok := f.TraceExpression.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, ast.OpAnd, and.Op)

	gt, ok := and.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, ast.OpGreaterThan, gt.Op)
	require.Equal(t, ast.LiteralInteger, gt.Right.(*ast.Literal).LiteralKind())

	eq, ok := and.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, ast.OpEqual, eq.Op)
	require.Equal(t, ast.LiteralString, eq.Right.(*ast.Literal).LiteralKind())
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		literal string
		want    ast.Value
	}{
		{`"s"`, ast.StringValue("s")},
		{`'s'`, ast.StringValue("s")},
		{`10`, ast.IntValue(10)},
		{`0x10`, ast.IntValue(16)},
		{`1.5`, ast.FloatValue(1.5)},
		{`true`, ast.BoolValue(true)},
		{`false`, ast.BoolValue(false)},
		{`null`, ast.NullValue{}},
		{`2h`, ast.DurationValue{Text: "2h", Duration: 2 * time.Hour}},
		{`timespan(1d)`, ast.DurationValue{Text: "1d", Duration: 24 * time.Hour}},
		{`3minutes`, ast.DurationValue{Text: "3minutes", Duration: 3 * time.Minute}},
		{
			`datetime(2024-01-02)`,
			ast.DateTimeValue{Text: "2024-01-02", Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
		{
			`guid(74be27de-1e4e-49d9-b579-fe0b331d3642)`,
			ast.GuidValue(uuid.MustParse("74be27de-1e4e-49d9-b579-fe0b331d3642")),
		},
		{
			`guid(not-a-guid)`,
			ast.GuidValue(uuid.Nil),
		},
		{`dynamic({"a": 1})`, ast.DynamicValue(`{"a": 1}`)},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			q, err := Parse("T | where x == " + tt.literal)
			require.NoError(t, err)

			f := q.Operations[0].(*ast.Filter)
			eq := f.TraceExpression.(*ast.BinaryExpression)
			require.Equal(t, &ast.Literal{Value: tt.want}, eq.Right)
		})
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		input     string
		construct string
		operator  string
	}{
		{`T | take 10`, "take operator", ""},
		{`T | limit 10`, "take operator", ""},
		{`T | extend a = 1`, "extend operator", ""},
		{`T | sort by a`, "sort operator", ""},
		{`T | summarize count() by a`, "summarize operator", ""},
		{`T | join (U) on id`, "join operator", ""},
		{`T | count`, "count operator", ""},
		{`T | distinct a`, "distinct operator", ""},
		{`T | project *`, "wildcard projection", ""},
		{`T | where a =~ "x"`, "", "=~"},
		{`T | where a !~ "x"`, "", "!~"},
		{`T | where a !has "x"`, "", "!has"},
		{`T | where a !startswith "x"`, "", "!startswith"},
		{`T | where a !endswith "x"`, "", "!endswith"},
		{`T | where a == 1 | take 1`, "take operator", ""},
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
	_, err := Parse(`T | where`)
	require.Error(t, err)

	var se *kql.SyntaxError
	require.ErrorAs(t, err, &se)
	require.False(t, errors.Is(err, astvisitor.ErrUnsupported))
}

func TestConvertNil(t *testing.T) {
	_, err := Convert(nil)
	require.Error(t, err)
}

func TestConvertFreshState(t *testing.T) {
	// Each conversion uses its own traversal state.
	q := &kql.Query{
		Source: "T",
		Operators: []kql.Operator{
			&kql.WhereOperator{Keyword: "where", Predicate: &kql.NameRef{Name: "ok"}},
		},
	}
	for i := 0; i < 3; i++ {
		got, err := Convert(q)
		require.NoError(t, err)
		require.Len(t, got.Operations, 1)
		require.Equal(t, filter(ident("ok")), got.Operations[0])
	}
}

func TestParser(t *testing.T) {
	var p Parser
	q, err := p.Parse(`T | where a > 1`)
	require.NoError(t, err)
	require.Equal(t, "T", q.Source)
}

package traceql

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

type TestCase struct {
	input   string
	want    Expr
	wantErr bool
}

func testBinFieldExpr(left FieldExpr, op BinaryOp, right FieldExpr) Expr {
	return testFilter(&BinaryFieldExpr{
		Left:  left,
		Op:    op,
		Right: right,
	})
}

func testFilter(expr FieldExpr) Expr {
	return &SpansetPipeline{
		Pipeline: []PipelineStage{
			&SpansetFilter{Expr: expr},
		},
	}
}

var noConst = 0

var tests = []TestCase{
	{
		`{}`,
		testFilter(&Static{Type: StaticBool, Data: 1}),
		false,
	},
	{
		`{ rootServiceName = "bar" }`,
		testBinFieldExpr(
			&Attribute{Prop: RootServiceName},
			OpEq,
			&Static{Type: StaticString, Str: "bar"},
		),
		false,
	},
	{
		`{ rootName != "bar" }`,
		testBinFieldExpr(
			&Attribute{Prop: RootSpanName},
			OpNotEq,
			&Static{Type: StaticString, Str: "bar"},
		),
		false,
	},
	{
		`{ name =~ "bar" }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanName},
			OpRe,
			&Static{Type: StaticString, Str: "bar"},
		),
		false,
	},
	{
		`{ childCount = 10 }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanChildCount},
			OpEq,
			&Static{Type: StaticInteger, Data: 10},
		),
		false,
	},
	{
		`{ .foo >= -10 }`,
		testBinFieldExpr(
			&Attribute{Name: "foo"},
			OpGte,
			&Static{Type: StaticInteger, Data: uint64(-10 + noConst)},
		),
		false,
	},
	{
		`{ .foo <= .5 }`,
		testBinFieldExpr(
			&Attribute{Name: "foo"},
			OpLte,
			&Static{Type: StaticNumber, Data: math.Float64bits(.5)},
		),
		false,
	},
	{
		`{ .foo && false }`,
		testBinFieldExpr(
			&Attribute{Name: "foo"},
			OpAnd,
			&Static{Type: StaticBool, Data: 0},
		),
		false,
	},
	{
		`{ .foo = nil }`,
		testBinFieldExpr(
			&Attribute{Name: "foo"},
			OpEq,
			&Static{Type: StaticNil},
		),
		false,
	},
	{
		`{ parent = nil }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanParent},
			OpEq,
			&Static{Type: StaticNil},
		),
		false,
	},
	{
		`{ duration > 10s }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanDuration},
			OpGt,
			&Static{Type: StaticDuration, Data: uint64(10 * time.Second), Str: "10s"},
		),
		false,
	},
	{
		`{ traceDuration < 1d }`,
		testBinFieldExpr(
			&Attribute{Prop: TraceDuration},
			OpLt,
			&Static{Type: StaticDuration, Data: uint64(24 * time.Hour), Str: "1d"},
		),
		false,
	},
	{
		`{ status = error }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanStatus},
			OpEq,
			&Static{Type: StaticSpanStatus, Data: uint64(ptrace.StatusCodeError)},
		),
		false,
	},
	{
		`{ kind = server }`,
		testBinFieldExpr(
			&Attribute{Prop: SpanKind},
			OpEq,
			&Static{Type: StaticSpanKind, Data: uint64(ptrace.SpanKindServer)},
		),
		false,
	},
	{
		`{ (kind = client) }`,
		testFilter(&ParenFieldExpr{
			Expr: &BinaryFieldExpr{
				Left:  &Attribute{Prop: SpanKind},
				Op:    OpEq,
				Right: &Static{Type: StaticSpanKind, Data: uint64(ptrace.SpanKindClient)},
			},
		}),
		false,
	},
	{
		`{ -(childCount) < 0 }`,
		testBinFieldExpr(
			&UnaryFieldExpr{
				Op:   OpNeg,
				Expr: &ParenFieldExpr{Expr: &Attribute{Prop: SpanChildCount}},
			},
			OpLt,
			&Static{Type: StaticInteger, Data: 0},
		),
		false,
	},
	{
		`{ !(.a = 1) }`,
		testFilter(&UnaryFieldExpr{
			Op: OpNot,
			Expr: &ParenFieldExpr{Expr: &BinaryFieldExpr{
				Left:  &Attribute{Name: "a"},
				Op:    OpEq,
				Right: &Static{Type: StaticInteger, Data: 1},
			}},
		}),
		false,
	},
	{
		`{ resource.github.com/ogen-go/ogen.attr !~ "foo" }`,
		testBinFieldExpr(
			&Attribute{Name: "github.com/ogen-go/ogen.attr", Scope: ScopeResource},
			OpNotRe,
			&Static{Type: StaticString, Str: "foo"},
		),
		false,
	},
	// Binary operators are left-associative.
	{
		`{ .a - .b - .c = 0 }`,
		testBinFieldExpr(
			&BinaryFieldExpr{
				Left: &BinaryFieldExpr{
					Left:  &Attribute{Name: "a"},
					Op:    OpSub,
					Right: &Attribute{Name: "b"},
				},
				Op:    OpSub,
				Right: &Attribute{Name: "c"},
			},
			OpEq,
			&Static{Type: StaticInteger, Data: 0},
		),
		false,
	},
	{
		`{ .a || span.a && resource.a }`,
		testBinFieldExpr(
			&Attribute{Name: "a"},
			OpOr,
			&BinaryFieldExpr{
				Left:  &Attribute{Name: "a", Scope: ScopeSpan},
				Op:    OpAnd,
				Right: &Attribute{Name: "a", Scope: ScopeResource},
			},
		),
		false,
	},
	{
		`{ parent.a && parent.span.a && parent.resource.a }`,
		testBinFieldExpr(
			&BinaryFieldExpr{
				Left:  &Attribute{Name: "a", Parent: true},
				Op:    OpAnd,
				Right: &Attribute{Name: "a", Scope: ScopeSpan, Parent: true},
			},
			OpAnd,
			&Attribute{Name: "a", Scope: ScopeResource, Parent: true},
		),
		false,
	},
	{
		`{ .foo.bar + span.foo.bar * resource.foo.bar > 10 }`,
		testBinFieldExpr(
			&BinaryFieldExpr{
				Left: &Attribute{Name: "foo.bar"},
				Op:   OpAdd,
				Right: &BinaryFieldExpr{
					Left:  &Attribute{Name: "foo.bar", Scope: ScopeSpan},
					Op:    OpMul,
					Right: &Attribute{Name: "foo.bar", Scope: ScopeResource},
				},
			},
			OpGt,
			&Static{Type: StaticInteger, Data: 10},
		),
		false,
	},
	{
		`{ .a } && { .b } ~ { .c }`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&BinarySpansetExpr{
					Left: &SpansetFilter{Expr: &Attribute{Name: "a"}},
					Op:   SpansetOpAnd,
					Right: &BinarySpansetExpr{
						Left:  &SpansetFilter{Expr: &Attribute{Name: "b"}},
						Op:    SpansetOpSibling,
						Right: &SpansetFilter{Expr: &Attribute{Name: "c"}},
					},
				},
			},
		},
		false,
	},
	{
		`{ .a } && { .b } || { .c }`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&BinarySpansetExpr{
					Left: &BinarySpansetExpr{
						Left:  &SpansetFilter{Expr: &Attribute{Name: "a"}},
						Op:    SpansetOpAnd,
						Right: &SpansetFilter{Expr: &Attribute{Name: "b"}},
					},
					Op:    SpansetOpUnion,
					Right: &SpansetFilter{Expr: &Attribute{Name: "c"}},
				},
			},
		},
		false,
	},
	{
		`({ .a } > { .b })`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&ParenSpansetExpr{
					Expr: &BinarySpansetExpr{
						Left:  &SpansetFilter{Expr: &Attribute{Name: "a"}},
						Op:    SpansetOpChild,
						Right: &SpansetFilter{Expr: &Attribute{Name: "b"}},
					},
				},
			},
		},
		false,
	},
	{
		`{ .a } | by(.b) | coalesce() | select(.c, name)`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&SpansetFilter{Expr: &Attribute{Name: "a"}},
				&GroupOperation{By: &Attribute{Name: "b"}},
				&CoalesceOperation{},
				&SelectOperation{Args: []FieldExpr{
					&Attribute{Name: "c"},
					&Attribute{Prop: SpanName},
				}},
			},
		},
		false,
	},
	{
		`avg(.foo) > count() + sum(.bar)`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&ScalarFilter{
					Left: &AggregateScalarExpr{Op: AggregateOpAvg, Field: &Attribute{Name: "foo"}},
					Op:   OpGt,
					Right: &BinaryScalarExpr{
						Left:  &AggregateScalarExpr{Op: AggregateOpCount},
						Op:    OpAdd,
						Right: &AggregateScalarExpr{Op: AggregateOpSum, Field: &Attribute{Name: "bar"}},
					},
				},
			},
		},
		false,
	},
	{
		`-2 = -2`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&ScalarFilter{
					Left:  &Static{Type: StaticInteger, Data: uint64(-2 + noConst)},
					Op:    OpEq,
					Right: &Static{Type: StaticInteger, Data: uint64(-2 + noConst)},
				},
			},
		},
		false,
	},
	{
		`2+3*4+5 = 19`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&ScalarFilter{
					Left: &BinaryScalarExpr{
						Left: &BinaryScalarExpr{
							Left: &Static{Type: StaticInteger, Data: 2},
							Op:   OpAdd,
							Right: &BinaryScalarExpr{
								Left:  &Static{Type: StaticInteger, Data: 3},
								Op:    OpMul,
								Right: &Static{Type: StaticInteger, Data: 4},
							},
						},
						Op:    OpAdd,
						Right: &Static{Type: StaticInteger, Data: 5},
					},
					Op:    OpEq,
					Right: &Static{Type: StaticInteger, Data: 19},
				},
			},
		},
		false,
	},
	{
		`(max(duration)) >= 1s`,
		&SpansetPipeline{
			Pipeline: []PipelineStage{
				&ScalarFilter{
					Left: &ParenScalarExpr{
						Expr: &AggregateScalarExpr{Op: AggregateOpMax, Field: &Attribute{Prop: SpanDuration}},
					},
					Op:    OpGte,
					Right: &Static{Type: StaticDuration, Data: uint64(time.Second), Str: "1s"},
				},
			},
		},
		false,
	},

	// Invalid syntax.
	{`{`, nil, true},
	{`{ 1+ }`, nil, true},
	{`{ -- }`, nil, true},
	{`{ (1+) }`, nil, true},
	{`{ (1+1 }`, nil, true},
	{`{ .a = 1 } |`, nil, true},
	{`{ .a = 1 } }`, nil, true},
	{`coalesce()`, nil, true},
	{`{ .a } | by .a`, nil, true},
	{`count() + 1`, nil, true},
	{`"foo"`, nil, true},
	{`{ span. = 1 }`, nil, true},
}

func TestParse(t *testing.T) {
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("Input:\n%s", tt.input)
				}
			}()

			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseString(t *testing.T) {
	for i, tt := range tests {
		if tt.wantErr {
			continue
		}
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)

			text := got.String()
			again, err := Parse(text)
			require.NoError(t, err, text)
			require.Equal(t, got, again, text)
		})
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, `{}`},
		{`{true}`, `{}`},
		{`{.a=1}`, `{ .a = 1 }`},
		{`{ .a = 1.0 }`, `{ .a = 1.0 }`},
		{`{ -(childCount) < 0 }`, `{ - (childCount) < 0 }`},
		{`{ !(.a = 1) }`, `{ !(.a = 1) }`},
		{`{ status = unset && kind = unspecified }`, `{ status = unset && kind = unspecified }`},
		{`{ .a }&&{ .b }>>{ .c }`, `{ .a } && { .b } >> { .c }`},
		{`{ .a } | by(.b) | coalesce() | select(.c, name)`, `{ .a } | by(.b) | coalesce() | select(.c, name)`},
		{`2+3*4+5 = 19`, `2 + 3 * 4 + 5 = 19`},
		{`(max(duration)) >= 1m30s`, `(max(duration)) >= 1m30s`},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{`coalesce()`, `at <input>:1:1: coalesce cannot be first operation`},
		{`{ .a = 1 )`, `expected "CloseBrace": at <input>:1:10: unexpected token ")"`},
		{`{ .a = 1 } }`, `at <input>:1:12: unexpected token "}"`},
		{`"foo"`, `at <input>:1:1: unexpected token "foo"`},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			_, err := Parse(tt.input)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func FuzzParse(f *testing.F) {
	for _, tt := range tests {
		f.Add(tt.input)
	}
	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil || t.Failed() {
				t.Logf("Input:\n%s", input)
			}
		}()

		expr, err := Parse(input)
		if err != nil {
			return
		}
		if _, err := Parse(expr.String()); err != nil {
			t.Fatalf("Parse(%q): %+v", expr.String(), err)
		}
	})
}

package traceqlconv

import (
	"fmt"
	"strings"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astvisitor"
	"github.com/go-faster/qlast/internal/traceql"
)

type visitor struct {
	a *astvisitor.Assembler
}

var _ astvisitor.Visitor[traceql.Node] = (*visitor)(nil)

func newVisitor() *visitor {
	return &visitor{a: astvisitor.NewAssembler("")}
}

// Visit converts given node.
//
// Field expressions leave exactly one expression on the stack, pipeline
// stages consume everything they push.
func (v *visitor) Visit(n traceql.Node) error {
	switch n := n.(type) {
	case *traceql.SpansetPipeline:
		for _, stage := range n.Pipeline {
			if err := v.Visit(stage); err != nil {
				return err
			}
		}
		return nil
	case traceql.SpansetExpr:
		return v.visitSpanset(n)
	case *traceql.SelectOperation:
		columns := make([]astvisitor.Column, len(n.Args))
		for _, arg := range n.Args {
			if err := v.Visit(arg); err != nil {
				return err
			}
		}
		return v.a.Project("select", columns)
	case *traceql.ScalarFilter,
		*traceql.GroupOperation,
		*traceql.CoalesceOperation:
		return unsupported(n)
	case traceql.FieldExpr:
		return v.a.Expr(constructName(n), func() error {
			return v.visitField(n)
		})
	default:
		return unsupported(n)
	}
}

// visitSpanset flattens spanset expression into a span-only filter.
func (v *visitor) visitSpanset(n traceql.SpansetExpr) error {
	var (
		filters []*traceql.SpansetFilter
		comb    = ast.CombinationAny
		seen    bool
	)
	var collect func(e traceql.SpansetExpr) error
	collect = func(e traceql.SpansetExpr) error {
		switch e := e.(type) {
		case *traceql.SpansetFilter:
			filters = append(filters, e)
			return nil
		case *traceql.ParenSpansetExpr:
			return collect(e.Expr)
		case *traceql.BinarySpansetExpr:
			c, ok := combinations[e.Op]
			if !ok {
				return unsupportedOp(e.Op.String())
			}
			if seen && c != comb {
				return &astvisitor.UnsupportedError{
					Language:  Language,
					Construct: "mixed spanset operators",
				}
			}
			comb, seen = c, true
			if err := collect(e.Left); err != nil {
				return err
			}
			return collect(e.Right)
		default:
			return unsupported(e)
		}
	}
	if err := collect(n); err != nil {
		return err
	}

	for _, f := range filters {
		if err := v.Visit(f.Expr); err != nil {
			return err
		}
	}
	return v.a.SpanFilter("", len(filters), comb)
}

func (v *visitor) visitField(n traceql.FieldExpr) error {
	switch n := n.(type) {
	case *traceql.Static:
		lit, err := convertStatic(n)
		if err != nil {
			return err
		}
		v.a.Push(lit)
		return nil
	case *traceql.Attribute:
		name, ns := attributeName(n)
		return v.a.Identifier(name, ns)
	case *traceql.BinaryFieldExpr:
		if err := v.Visit(n.Left); err != nil {
			return err
		}
		if err := v.Visit(n.Right); err != nil {
			return err
		}
		if op, ok := binaryOps[n.Op]; ok {
			return v.a.Binary(op)
		}
		if op, ok := specialOps[n.Op]; ok {
			return v.a.Special(op, 1)
		}
		return unsupportedOp(n.Op.String())
	case *traceql.UnaryFieldExpr:
		if err := v.Visit(n.Expr); err != nil {
			return err
		}
		return v.a.Unary(n.Op.String())
	case *traceql.ParenFieldExpr:
		if err := v.Visit(n.Expr); err != nil {
			return err
		}
		return v.a.Paren()
	default:
		return unsupported(n)
	}
}

// attributeName returns identifier name and namespace of attribute.
func attributeName(a *traceql.Attribute) (name, namespace string) {
	if a.Prop != traceql.SpanAttribute {
		if a.Prop.IsTraceLevel() {
			return a.Prop.String(), "trace"
		}
		return a.Prop.String(), "span"
	}

	var ns []string
	if a.Parent {
		ns = append(ns, "parent")
	}
	if scope := a.Scope.String(); scope != "" {
		ns = append(ns, scope)
	}
	return a.Name, strings.Join(ns, ".")
}

func convertStatic(s *traceql.Static) (*ast.Literal, error) {
	switch s.Type {
	case traceql.StaticString:
		return astvisitor.ConvertString(s.AsString()), nil
	case traceql.StaticInteger:
		return ast.Int(s.AsInteger()), nil
	case traceql.StaticNumber:
		return ast.Float(s.AsNumber()), nil
	case traceql.StaticBool:
		return ast.Bool(s.AsBool()), nil
	case traceql.StaticNil:
		return astvisitor.ConvertNull(), nil
	case traceql.StaticDuration:
		return &ast.Literal{Value: ast.DurationValue{
			Text:     s.String(),
			Duration: s.AsDuration(),
		}}, nil
	case traceql.StaticSpanStatus, traceql.StaticSpanKind:
		return astvisitor.ConvertString(s.String()), nil
	default:
		return nil, &astvisitor.UnsupportedError{
			Language:  Language,
			Construct: fmt.Sprintf("static of type %s", s.Type),
		}
	}
}

func unsupported(n traceql.Node) error {
	return &astvisitor.UnsupportedError{
		Language:  Language,
		Construct: constructName(n),
	}
}

func unsupportedOp(op string) error {
	return &astvisitor.UnsupportedOperatorError{
		Language: Language,
		Operator: op,
	}
}

func constructName(n traceql.Node) string {
	switch n := n.(type) {
	case *traceql.SpansetPipeline:
		return "pipeline"
	case *traceql.BinarySpansetExpr:
		return "spanset operation"
	case *traceql.ParenSpansetExpr:
		return "parenthesized spanset"
	case *traceql.SpansetFilter:
		return "spanset filter"
	case *traceql.ScalarFilter:
		return "scalar filter"
	case *traceql.GroupOperation:
		return "by operation"
	case *traceql.CoalesceOperation:
		return "coalesce operation"
	case *traceql.SelectOperation:
		return "select operation"
	case *traceql.BinaryFieldExpr:
		return "binary expression"
	case *traceql.UnaryFieldExpr:
		return "unary expression"
	case *traceql.ParenFieldExpr:
		return "parenthesized expression"
	case *traceql.Static:
		return "static"
	case *traceql.Attribute:
		return "attribute"
	case *traceql.BinaryScalarExpr,
		*traceql.ParenScalarExpr,
		*traceql.AggregateScalarExpr:
		return "scalar expression"
	default:
		return fmt.Sprintf("%T", n)
	}
}

package kqlconv

import (
	"fmt"
	"strings"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astvisitor"
	"github.com/go-faster/qlast/internal/kql"
	"github.com/go-faster/qlast/internal/kql/lexer"
)

type visitor struct {
	a *astvisitor.Assembler
}

var _ astvisitor.Visitor[kql.Node] = (*visitor)(nil)

func newVisitor() *visitor {
	return &visitor{a: astvisitor.NewAssembler("")}
}

// Visit converts given node.
//
// Expression nodes leave exactly one expression on the stack, operators
// consume everything they push.
func (v *visitor) Visit(n kql.Node) error {
	switch n := n.(type) {
	case *kql.Query:
		v.a.SetSource(n.Source)
		for _, op := range n.Operators {
			if err := v.Visit(op); err != nil {
				return err
			}
		}
		return nil
	case *kql.WhereOperator:
		if err := v.Visit(n.Predicate); err != nil {
			return err
		}
		return v.a.Filter(n.Keyword)
	case *kql.ProjectOperator:
		return v.visitProject(n)
	case *kql.ExtendOperator,
		*kql.TakeOperator,
		*kql.SortOperator,
		*kql.SummarizeOperator,
		*kql.JoinOperator,
		*kql.CountOperator,
		*kql.DistinctOperator:
		return unsupported(n)
	case kql.Expr:
		return v.a.Expr(constructName(n), func() error {
			return v.visitExpr(n)
		})
	default:
		return unsupported(n)
	}
}

func (v *visitor) visitProject(n *kql.ProjectOperator) error {
	columns := make([]astvisitor.Column, 0, len(n.Columns))
	for _, col := range n.Columns {
		if _, ok := col.Expr.(*kql.StarExpr); ok {
			return &astvisitor.UnsupportedError{
				Language:  Language,
				Construct: "wildcard projection",
			}
		}
		if err := v.Visit(col.Expr); err != nil {
			return err
		}
		columns = append(columns, astvisitor.Column{Alias: col.Name})
	}
	return v.a.Project(n.Keyword, columns)
}

func (v *visitor) visitExpr(n kql.Expr) error {
	switch n := n.(type) {
	case *kql.Literal:
		lit, err := convertLiteral(n)
		if err != nil {
			return err
		}
		v.a.Push(lit)
		return nil
	case *kql.NameRef:
		return v.a.Identifier(n.Name, "")
	case *kql.MemberExpr, *kql.IndexExpr:
		return v.visitPath(n)
	case *kql.CallExpr:
		if err := v.visitAll(n.Args); err != nil {
			return err
		}
		return v.a.Call(n.Func, len(n.Args))
	case *kql.BinaryExpr:
		return v.visitBinary(n)
	case *kql.UnaryExpr:
		if err := v.Visit(n.Expr); err != nil {
			return err
		}
		switch n.Op {
		case kql.OpNeg:
			return v.a.Unary("-")
		case kql.OpPlus:
			// Unary plus is an identity, operand is left as is.
			return nil
		default:
			return unsupportedOp(n.Op.String())
		}
	case *kql.ParenExpr:
		if err := v.Visit(n.Expr); err != nil {
			return err
		}
		return v.a.Paren()
	case *kql.InExpr:
		op := ast.SpecialIn
		if n.Negated {
			op = ast.SpecialNotIn
		}
		if err := v.Visit(n.Left); err != nil {
			return err
		}
		if err := v.visitAll(n.Values); err != nil {
			return err
		}
		return v.a.Special(op, len(n.Values))
	case *kql.BetweenExpr:
		op := ast.SpecialBetween
		if n.Negated {
			op = ast.SpecialNotBetween
		}
		if err := v.visitAll([]kql.Expr{n.Left, n.Low, n.High}); err != nil {
			return err
		}
		return v.a.Special(op, 2)
	case *kql.StarExpr:
		v.a.Push(ast.NewWildcard())
		return nil
	default:
		return unsupported(n)
	}
}

func (v *visitor) visitAll(exprs []kql.Expr) error {
	for _, e := range exprs {
		if err := v.Visit(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) visitBinary(n *kql.BinaryExpr) error {
	if op, ok := binaryOps[n.Op]; ok {
		if err := v.visitAll([]kql.Expr{n.Left, n.Right}); err != nil {
			return err
		}
		return v.a.Binary(op)
	}
	if op, ok := specialOps[n.Op]; ok {
		if err := v.visitAll([]kql.Expr{n.Left, n.Right}); err != nil {
			return err
		}
		return v.a.Special(op, 1)
	}
	return unsupportedOp(n.Op.String())
}

// namespaces are path heads converted to identifier namespace.
var namespaces = map[string]struct{}{
	"span":     {},
	"trace":    {},
	"resource": {},
}

type pathStep struct {
	member string
	index  kql.Expr
}

// visitPath converts member and index access chain.
//
// Dotted names under known namespace, like `span.http.method`, become
// namespaced identifiers, everything else is a PathExpression.
func (v *visitor) visitPath(n kql.Expr) error {
	var steps []pathStep
	base := n
loop:
	for {
		switch e := base.(type) {
		case *kql.MemberExpr:
			steps = append(steps, pathStep{member: e.Member})
			base = e.Expr
		case *kql.IndexExpr:
			steps = append(steps, pathStep{index: e.Index})
			base = e.Expr
		default:
			break loop
		}
	}
	// Steps were collected from the outermost access.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	if ref, ok := base.(*kql.NameRef); ok {
		if _, ok := namespaces[ref.Name]; ok {
			if name, ok := memberName(steps); ok {
				return v.a.Identifier(name, ref.Name)
			}
		}
	}

	if err := v.Visit(base); err != nil {
		return err
	}
	astSteps := make([]astvisitor.PathStep, len(steps))
	for i, s := range steps {
		if s.index != nil {
			if err := v.Visit(s.index); err != nil {
				return err
			}
			astSteps[i] = astvisitor.PathStep{Index: true}
			continue
		}
		astSteps[i] = astvisitor.PathStep{Member: s.member}
	}
	return v.a.Path(astSteps)
}

// memberName joins member-only steps into dotted name.
func memberName(steps []pathStep) (string, bool) {
	names := make([]string, len(steps))
	for i, s := range steps {
		if s.index != nil {
			return "", false
		}
		names[i] = s.member
	}
	return strings.Join(names, "."), true
}

func convertLiteral(n *kql.Literal) (*ast.Literal, error) {
	switch n.Type {
	case lexer.String:
		return astvisitor.ConvertString(n.Text), nil
	case lexer.Integer:
		return astvisitor.ConvertInt(n.Text), nil
	case lexer.Number:
		return astvisitor.ConvertFloat(n.Text), nil
	case lexer.True, lexer.False:
		return astvisitor.ConvertBool(n.Text), nil
	case lexer.Null:
		return astvisitor.ConvertNull(), nil
	case lexer.Duration:
		return astvisitor.ConvertDuration(n.Text), nil
	case lexer.DateTime:
		return astvisitor.ConvertDateTime(n.Text), nil
	case lexer.Guid:
		return astvisitor.ConvertGuid(n.Text), nil
	case lexer.Dynamic:
		return astvisitor.ConvertDynamic(n.Text), nil
	default:
		return nil, &astvisitor.UnsupportedError{
			Language:  Language,
			Construct: fmt.Sprintf("literal of type %s", n.Type),
		}
	}
}

func unsupported(n kql.Node) error {
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

func constructName(n kql.Node) string {
	switch n.(type) {
	case *kql.Query:
		return "query"
	case *kql.WhereOperator:
		return "where operator"
	case *kql.ProjectOperator:
		return "project operator"
	case *kql.ExtendOperator:
		return "extend operator"
	case *kql.TakeOperator:
		return "take operator"
	case *kql.SortOperator:
		return "sort operator"
	case *kql.SummarizeOperator:
		return "summarize operator"
	case *kql.JoinOperator:
		return "join operator"
	case *kql.CountOperator:
		return "count operator"
	case *kql.DistinctOperator:
		return "distinct operator"
	case *kql.Literal:
		return "literal"
	case *kql.NameRef:
		return "name reference"
	case *kql.MemberExpr:
		return "member access"
	case *kql.IndexExpr:
		return "index access"
	case *kql.CallExpr:
		return "call"
	case *kql.BinaryExpr:
		return "binary expression"
	case *kql.UnaryExpr:
		return "unary expression"
	case *kql.ParenExpr:
		return "parenthesized expression"
	case *kql.InExpr:
		return "in expression"
	case *kql.BetweenExpr:
		return "between expression"
	case *kql.StarExpr:
		return "star"
	default:
		return fmt.Sprintf("%T", n)
	}
}

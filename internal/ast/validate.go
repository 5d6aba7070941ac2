package ast

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ValidationError is a structural invariant violation found by Validate.
type ValidationError struct {
	Path string
	Msg  string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Path, e.Msg)
}

// Validate checks structural invariants of the tree.
//
// It returns all found violations combined. A Filter without any predicate
// is valid.
func Validate(n Node) error {
	if n == nil {
		return &ValidationError{Path: "<root>", Msg: "node is nil"}
	}
	v := validator{}
	v.node(n, []string{n.Kind().String()})
	return v.err
}

type validator struct {
	err error
}

func (v *validator) fail(path []string, format string, args ...any) {
	v.err = multierr.Append(v.err, &ValidationError{
		Path: strings.Join(path, "."),
		Msg:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) child(path []string, name string, c Node) {
	p := sub(path, name)
	if isNilNode(c) {
		v.fail(p, "required node is nil")
		return
	}
	v.node(c, p)
}

func (v *validator) node(n Node, path []string) {
	switch n := n.(type) {
	case *Query:
		for i, op := range n.Operations {
			v.child(path, fmt.Sprintf("operations[%d]", i), op)
		}
	case *Filter:
		if n.TraceExpression != nil {
			v.child(path, "trace", n.TraceExpression)
		}
		if n.SpanFilter != nil {
			v.child(path, "span", n.SpanFilter)
		}
	case *SpanFilter:
		if len(n.Expressions) == 0 {
			v.fail(path, "span filter is empty")
		}
		if !n.Combination.IsValid() {
			v.fail(path, "unknown combination %d", n.Combination)
		}
		for i, e := range n.Expressions {
			v.child(path, fmt.Sprintf("expressions[%d]", i), e)
		}
	case *Project:
		if len(n.Projections) == 0 {
			v.fail(path, "project has no projections")
		}
		for i, p := range n.Projections {
			if p == nil {
				v.fail(sub(path, fmt.Sprintf("projections[%d]", i)), "required node is nil")
				continue
			}
			v.child(path, fmt.Sprintf("projections[%d]", i), p)
		}
	case *ProjectionExpression:
		if _, ok := n.Expression.(*WildcardExpression); ok {
			v.fail(path, "wildcard projection is not allowed")
			return
		}
		v.child(path, "expression", n.Expression)
	case *Literal:
		if n.Value == nil {
			v.fail(path, "literal has no value")
		}
	case *Identifier:
		if n.Name == "" {
			v.fail(path, "identifier has empty name")
		}
	case *BinaryExpression:
		if !n.Op.IsValid() {
			v.fail(path, "unknown binary operator %d", n.Op)
		}
		v.child(path, "left", n.Left)
		v.child(path, "right", n.Right)
	case *UnaryExpression:
		if n.Op == "" {
			v.fail(path, "unary operator is empty")
		}
		v.child(path, "argument", n.Argument)
	case *CallExpression:
		if n.Callee == nil {
			v.fail(path, "call has no callee")
		} else {
			v.child(path, "callee", n.Callee)
		}
		for i, arg := range n.Arguments {
			v.child(path, fmt.Sprintf("arguments[%d]", i), arg)
		}
	case *ParenthesizedExpression:
		v.child(path, "expression", n.Expr)
	case *SpecialOperatorExpression:
		if !n.Op.IsValid() {
			v.fail(path, "unknown special operator %d", n.Op)
		}
		switch n.Op {
		case SpecialBetween, SpecialNotBetween:
			if len(n.Right) != 2 {
				v.fail(path, "%s expects 2 bounds, got %d", n.Op, len(n.Right))
			}
		default:
			if len(n.Right) == 0 {
				v.fail(path, "%s has no right operands", n.Op)
			}
		}
		v.child(path, "left", n.Left)
		for i, e := range n.Right {
			v.child(path, fmt.Sprintf("right[%d]", i), e)
		}
	case *PathExpression:
		if len(n.Elements) == 0 {
			v.fail(path, "path has no elements")
		}
		v.child(path, "base", n.Base)
		for i, e := range n.Elements {
			if e.Index != nil {
				v.child(path, fmt.Sprintf("elements[%d]", i), e.Index)
			} else if e.Member == "" {
				v.fail(sub(path, fmt.Sprintf("elements[%d]", i)), "path element is empty")
			}
		}
	case *WildcardExpression:
	}
}

func sub(path []string, name string) []string {
	return append(path[:len(path):len(path)], name)
}

// Package astdump contains diagnostic AST dumpers.
package astdump

import (
	"strconv"

	"github.com/go-faster/qlast/internal/ast"
)

type attr struct {
	key    string
	value  string
	quoted bool
}

func (a attr) String() string {
	if a.quoted {
		return a.key + "=" + strconv.Quote(a.value)
	}
	return a.key + "=" + a.value
}

// attrs returns node attributes shown in dumps.
func attrs(n ast.Node) (r []attr) {
	add := func(key, value string, quoted bool) {
		r = append(r, attr{key: key, value: value, quoted: quoted})
	}
	optional := func(key, value string) {
		if value != "" {
			add(key, value, true)
		}
	}
	switch n := n.(type) {
	case *ast.Query:
		optional("source", n.Source)
	case *ast.Filter:
		optional("keyword", n.Keyword)
	case *ast.SpanFilter:
		add("combination", n.Combination.String(), false)
	case *ast.Project:
		optional("keyword", n.Keyword)
	case *ast.ProjectionExpression:
		optional("alias", n.Alias)
		if n.HasResultType() {
			add("type", n.ResultType.String(), false)
		}
	case *ast.Literal:
		if n.Value == nil {
			add("type", "<nil>", false)
			break
		}
		kind := n.Value.Kind()
		add("type", kind.String(), false)
		switch kind {
		case ast.LiteralInteger, ast.LiteralFloat, ast.LiteralBoolean, ast.LiteralNull:
			add("value", n.Value.String(), false)
		default:
			add("value", n.Value.String(), true)
		}
	case *ast.Identifier:
		add("name", n.Name, true)
		optional("namespace", n.Namespace)
	case *ast.BinaryExpression:
		add("op", n.Op.String(), true)
	case *ast.UnaryExpression:
		add("op", n.Op, true)
	case *ast.SpecialOperatorExpression:
		add("op", n.Op.String(), true)
	case *ast.PathExpression:
		add("path", n.String(), true)
	}
	return r
}

// label returns node kind with attributes.
func label(n ast.Node) string {
	s := n.Kind().String()
	for _, a := range attrs(n) {
		s += " " + a.String()
	}
	return s
}

// Package traceqlconv converts TraceQL syntax tree into unified query AST.
package traceqlconv

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/traceql"
)

// Language is a language name used in conversion errors.
const Language = "traceql"

// Parse parses TraceQL query and converts it into AST.
func Parse(input string) (*ast.Query, error) {
	expr, err := traceql.Parse(input)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return Convert(expr)
}

// Convert converts TraceQL syntax tree into AST.
func Convert(expr traceql.Expr) (*ast.Query, error) {
	if expr == nil {
		return nil, errors.New("nil expression")
	}
	v := newVisitor()
	if err := v.Visit(expr); err != nil {
		return nil, err
	}
	return v.a.Finish()
}

// Parser implements query parser for TraceQL.
type Parser struct{}

// Parse parses TraceQL query and converts it into AST.
func (Parser) Parse(input string) (*ast.Query, error) {
	return Parse(input)
}

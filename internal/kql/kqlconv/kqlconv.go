// Package kqlconv converts KQL syntax tree into unified query AST.
package kqlconv

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/kql"
)

// Language is a language name used in conversion errors.
const Language = "kql"

// Parse parses KQL query and converts it into AST.
func Parse(input string) (*ast.Query, error) {
	q, err := kql.Parse(input)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return Convert(q)
}

// Convert converts KQL syntax tree into AST.
func Convert(q *kql.Query) (*ast.Query, error) {
	if q == nil {
		return nil, errors.New("nil query")
	}
	v := newVisitor()
	if err := v.Visit(q); err != nil {
		return nil, err
	}
	return v.a.Finish()
}

// Parser implements query parser for KQL.
type Parser struct{}

// Parse parses KQL query and converts it into AST.
func (Parser) Parse(input string) (*ast.Query, error) {
	return Parse(input)
}

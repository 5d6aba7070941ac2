package ast

import "fmt"

// Query is a root of a complete query.
type Query struct {
	// Source is a name of the queried data set.
	//
	// Empty for languages without explicit source.
	Source string
	// Operations is a list of pipeline stages, evaluated left to right.
	Operations []Operation
}

// Append appends operation to the pipeline.
func (q *Query) Append(op Operation) error {
	if isNilOperation(op) {
		return nodeError(KindQuery, "operations", "operation is nil")
	}
	q.Operations = append(q.Operations, op)
	return nil
}

// Operation is a pipeline stage.
type Operation interface {
	Node
	operation()
}

func (*Filter) operation()  {}
func (*Project) operation() {}

// Filter is a predicate stage.
//
// A Filter without both TraceExpression and SpanFilter is a no-op: it applies
// no filtering at all.
type Filter struct {
	// Keyword is a surface-syntax hint like "where", kept for diagnostics.
	Keyword string
	// TraceExpression is evaluated once per top-level record.
	TraceExpression Expression // nilable
	// SpanFilter is evaluated per sub-record.
	SpanFilter *SpanFilter // nilable
}

// IsNoop whether filter has no predicate at all.
func (f *Filter) IsNoop() bool {
	return f.TraceExpression == nil && f.SpanFilter == nil
}

// Expression returns trace expression.
//
// It is a view for callers that only know single-expression filters.
// Returns ErrNoTraceExpression if trace expression is not set.
func (f *Filter) Expression() (Expression, error) {
	if f.TraceExpression == nil {
		return nil, ErrNoTraceExpression
	}
	return f.TraceExpression, nil
}

// SetExpression sets trace expression.
func (f *Filter) SetExpression(e Expression) {
	f.TraceExpression = e
}

// Combination defines how span-level expressions are combined.
type Combination uint8

const (
	// CombinationAny is a logical OR across span expressions.
	CombinationAny Combination = iota
	// CombinationAll is a logical AND across span expressions.
	CombinationAll
)

// String implements fmt.Stringer.
func (c Combination) String() string {
	switch c {
	case CombinationAny:
		return "Any"
	case CombinationAll:
		return "All"
	default:
		return fmt.Sprintf("<unknown combination %d>", c)
	}
}

// IsValid whether combination is a known value.
func (c Combination) IsValid() bool {
	return c == CombinationAny || c == CombinationAll
}

// SpanFilter is a group of span-level predicates.
//
// Never empty when built by constructors.
type SpanFilter struct {
	Expressions []Expression
	Combination Combination
}

// Project is a column selection stage.
//
// There is no "all columns" projection: omit the stage instead.
type Project struct {
	// Keyword is a surface-syntax hint like "project", kept for diagnostics.
	Keyword     string
	Projections []*ProjectionExpression
}

// ProjectionExpression is a single output column.
type ProjectionExpression struct {
	Expression Expression
	// Alias is an output column name override.
	Alias string
	// ResultType is a declared output type.
	//
	// Set only for computed values, TypeUnset for plain field references.
	ResultType ValueType
}

// HasResultType whether result type is declared.
func (p *ProjectionExpression) HasResultType() bool {
	return p.ResultType != TypeUnset
}

// OutputName returns name of the output column, if it can be determined.
func (p *ProjectionExpression) OutputName() (string, bool) {
	if p.Alias != "" {
		return p.Alias, true
	}
	if id, ok := p.Expression.(*Identifier); ok {
		return id.Name, true
	}
	return "", false
}

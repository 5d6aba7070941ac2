// Package kql contains a parser of a KQL subset: tabular pipelines of
// filtering and projection operators.
package kql

// Node is a KQL syntax tree node.
type Node interface {
	node()
}

func (*Query) node()             {}
func (*WhereOperator) node()     {}
func (*ProjectOperator) node()   {}
func (*ExtendOperator) node()    {}
func (*TakeOperator) node()      {}
func (*SortOperator) node()      {}
func (*SummarizeOperator) node() {}
func (*JoinOperator) node()      {}
func (*CountOperator) node()     {}
func (*DistinctOperator) node()  {}

// Query is a tabular pipeline: source table followed by piped operators.
type Query struct {
	// Source is a source table name, may be empty.
	Source    string
	Operators []Operator
}

// Operator is a tabular operator.
type Operator interface {
	Node
	operator()
}

func (*WhereOperator) operator()     {}
func (*ProjectOperator) operator()   {}
func (*ExtendOperator) operator()    {}
func (*TakeOperator) operator()      {}
func (*SortOperator) operator()      {}
func (*SummarizeOperator) operator() {}
func (*JoinOperator) operator()      {}
func (*CountOperator) operator()     {}
func (*DistinctOperator) operator()  {}

// WhereOperator is a `where` or `filter` operator.
type WhereOperator struct {
	Keyword   string
	Predicate Expr
}

// ProjectOperator is a `project` or `select` operator.
type ProjectOperator struct {
	Keyword string
	Columns []Column
}

// ExtendOperator is a `extend` operator.
type ExtendOperator struct {
	Columns []Column
}

// Column is a column definition like `name = expr` or just `expr`.
type Column struct {
	// Name is an optional column name.
	Name string
	Expr Expr
}

// TakeOperator is a `take` or `limit` operator.
type TakeOperator struct {
	Keyword string
	Count   Expr
}

// SortOperator is a `sort by` or `order by` operator.
type SortOperator struct {
	Keyword string
	By      []SortKey
}

// SortKey is a sorting key.
type SortKey struct {
	Expr Expr
	// Order is "asc", "desc" or empty.
	Order string
}

// SummarizeOperator is a `summarize` operator.
type SummarizeOperator struct {
	Aggregates []Column
	By         []Column
}

// JoinOperator is a `join` operator.
type JoinOperator struct {
	// Kind is an optional join flavor.
	Kind  string
	Right *Query
	On    []Expr
}

// CountOperator is a `count` operator.
type CountOperator struct{}

// DistinctOperator is a `distinct` operator.
type DistinctOperator struct {
	Columns []Expr
}

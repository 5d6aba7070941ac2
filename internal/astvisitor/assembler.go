package astvisitor

import (
	"strconv"

	"github.com/go-faster/errors"

	"github.com/go-faster/qlast/internal/ast"
)

// Visitor converts a native syntax tree node into AST nodes.
//
// Implementations keep traversal state, a Visitor must be used for a single
// parse only.
type Visitor[N any] interface {
	Visit(n N) error
}

// Assembler is a traversal state of a single parse: an expression assembly
// stack and the query being populated.
//
// Source-language visitors push completed expressions bottom-up and use
// composite and clause builders to pop them.
type Assembler struct {
	stack Stack
	query *ast.Query
}

// NewAssembler creates new Assembler for query with given source.
func NewAssembler(source string) *Assembler {
	return &Assembler{query: ast.NewQuery(source)}
}

// Depth returns stack depth.
func (a *Assembler) Depth() int {
	return a.stack.Len()
}

// SetSource sets query source.
func (a *Assembler) SetSource(source string) {
	a.query.Source = source
}

// Push pushes completed expression.
func (a *Assembler) Push(e ast.Expression) {
	a.stack.Push(e)
}

// Pop pops completed expression.
func (a *Assembler) Pop(construct string) (ast.Expression, error) {
	return a.stack.Pop(construct)
}

// PopN pops n completed expressions, in push order.
func (a *Assembler) PopN(construct string, n int) ([]ast.Expression, error) {
	return a.stack.PopN(construct, n)
}

// Expr calls fn, which must leave exactly one new expression on the stack.
func (a *Assembler) Expr(construct string, fn func() error) error {
	before := a.stack.Len()
	if err := fn(); err != nil {
		return err
	}
	if after := a.stack.Len(); after != before+1 {
		return &BalanceError{Construct: construct, Before: before, After: after}
	}
	return nil
}

// Identifier pushes new Identifier.
func (a *Assembler) Identifier(name, namespace string) error {
	id, err := ast.NewIdentifier(name, namespace)
	if err != nil {
		return err
	}
	a.Push(id)
	return nil
}

// Binary pops right and left operands and pushes BinaryExpression.
func (a *Assembler) Binary(op ast.BinaryOp) error {
	operands, err := a.stack.PopN("binary "+op.String(), 2)
	if err != nil {
		return err
	}
	e, err := ast.NewBinary(operands[0], op, operands[1])
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// Unary pops argument and pushes UnaryExpression.
func (a *Assembler) Unary(op string) error {
	arg, err := a.stack.Pop("unary " + op)
	if err != nil {
		return err
	}
	e, err := ast.NewUnary(op, arg)
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// Call pops argc arguments and pushes CallExpression.
func (a *Assembler) Call(name string, argc int) error {
	args, err := a.stack.PopN("call "+name, argc)
	if err != nil {
		return err
	}
	e, err := ast.NewCall(name, args)
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// Paren pops expression and pushes ParenthesizedExpression.
func (a *Assembler) Paren() error {
	inner, err := a.stack.Pop("parentheses")
	if err != nil {
		return err
	}
	e, err := ast.NewParen(inner)
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// Special pops left operand and rightc right operands and pushes
// SpecialOperatorExpression.
func (a *Assembler) Special(op ast.SpecialOp, rightc int) error {
	operands, err := a.stack.PopN("operator "+op.String(), rightc+1)
	if err != nil {
		return err
	}
	e, err := ast.NewSpecialOperator(operands[0], op, operands[1:])
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// PathStep is a path step description.
type PathStep struct {
	// Member is a member name.
	Member string
	// Index whether step is an index access, index expression is taken
	// from the stack.
	Index bool
}

// Path pops base and index expressions and pushes PathExpression.
//
// Base must be pushed first, then index expressions in step order.
func (a *Assembler) Path(steps []PathStep) error {
	var indices int
	for _, s := range steps {
		if s.Index {
			indices++
		}
	}
	operands, err := a.stack.PopN("path", indices+1)
	if err != nil {
		return err
	}
	var (
		elems = make([]ast.PathElement, 0, len(steps))
		next  = 1
	)
	for _, s := range steps {
		if s.Index {
			elems = append(elems, ast.PathElement{Index: operands[next]})
			next++
			continue
		}
		elems = append(elems, ast.PathElement{Member: s.Member})
	}
	e, err := ast.NewPath(operands[0], elems)
	if err != nil {
		return err
	}
	a.Push(e)
	return nil
}

// Filter pops predicate and appends Filter operation.
func (a *Assembler) Filter(keyword string) error {
	pred, err := a.stack.Pop("filter " + strconv.Quote(keyword))
	if err != nil {
		return err
	}
	f, err := ast.NewFilter(pred, keyword)
	if err != nil {
		return err
	}
	return a.query.Append(f)
}

// SpanFilter pops n span predicates and appends span-only Filter operation.
func (a *Assembler) SpanFilter(keyword string, n int, c ast.Combination) error {
	spans, err := a.stack.PopN("span filter", n)
	if err != nil {
		return err
	}
	f, err := ast.NewSpanOnlyFilter(spans, c, keyword)
	if err != nil {
		return err
	}
	return a.query.Append(f)
}

// Column describes a single projection column.
type Column struct {
	Alias string
	// ResultType overrides inferred result type.
	ResultType ast.ValueType
}

// Project pops one expression per column and appends Project operation.
//
// Result type is set only for computed columns: plain field references are
// left untyped.
func (a *Assembler) Project(keyword string, columns []Column) error {
	exprs, err := a.stack.PopN("project "+strconv.Quote(keyword), len(columns))
	if err != nil {
		return err
	}
	projections := make([]*ast.ProjectionExpression, len(columns))
	for i, col := range columns {
		e := exprs[i]

		typ := col.ResultType
		if typ == ast.TypeUnset && !isFieldReference(e) {
			typ = ast.InferType(e)
		}
		p, err := ast.NewProjection(e, col.Alias, typ)
		if err != nil {
			return err
		}
		projections[i] = p
	}
	p, err := ast.NewProject(projections, keyword)
	if err != nil {
		return err
	}
	return a.query.Append(p)
}

func isFieldReference(e ast.Expression) bool {
	_, ok := e.(*ast.Identifier)
	return ok
}

// Finish returns assembled query.
//
// Stack must be empty.
func (a *Assembler) Finish() (*ast.Query, error) {
	if n := a.stack.Len(); n != 0 {
		return nil, errors.Errorf("query: %d unconsumed expression(s) left on stack", n)
	}
	return a.query, nil
}

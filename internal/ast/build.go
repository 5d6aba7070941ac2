package ast

import (
	"slices"
	"strconv"
)

// NewQuery creates new Query with empty operation list.
func NewQuery(source string) *Query {
	return &Query{Source: source}
}

// NewFilter creates new Filter with trace expression only.
func NewFilter(expr Expression, keyword string) (*Filter, error) {
	if isNil(expr) {
		return nil, nodeError(KindFilter, "expression", "expression is nil")
	}
	return &Filter{
		Keyword:         keyword,
		TraceExpression: expr,
	}, nil
}

// NewCombinedFilter creates new Filter with optional trace expression and
// optional span expressions.
//
// If spans is empty, the result has no SpanFilter. If trace is nil too, the
// result is a no-op Filter.
func NewCombinedFilter(trace Expression, spans []Expression, c Combination, keyword string) (*Filter, error) {
	f := &Filter{Keyword: keyword}
	if !isNil(trace) {
		f.TraceExpression = trace
	}
	if len(spans) == 0 {
		return f, nil
	}
	sf, err := newSpanFilter(spans, c)
	if err != nil {
		return nil, err
	}
	f.SpanFilter = sf
	return f, nil
}

// NewSpanOnlyFilter creates new Filter with span expressions only.
func NewSpanOnlyFilter(spans []Expression, c Combination, keyword string) (*Filter, error) {
	if len(spans) == 0 {
		return nil, nodeError(KindSpanFilter, "expressions", "at least one span expression required")
	}
	sf, err := newSpanFilter(spans, c)
	if err != nil {
		return nil, err
	}
	return &Filter{
		Keyword:    keyword,
		SpanFilter: sf,
	}, nil
}

func newSpanFilter(spans []Expression, c Combination) (*SpanFilter, error) {
	if !c.IsValid() {
		return nil, nodeError(KindSpanFilter, "combination", "unknown combination "+strconv.Itoa(int(c)))
	}
	for i, e := range spans {
		if isNil(e) {
			return nil, nodeError(KindSpanFilter, "expressions", "expression #"+strconv.Itoa(i)+" is nil")
		}
	}
	return &SpanFilter{
		Expressions: slices.Clone(spans),
		Combination: c,
	}, nil
}

// NewProject creates new Project.
func NewProject(projections []*ProjectionExpression, keyword string) (*Project, error) {
	if len(projections) == 0 {
		return nil, nodeError(KindProject, "projections", "at least one projection required")
	}
	for i, p := range projections {
		if p == nil {
			return nil, nodeError(KindProject, "projections", "projection #"+strconv.Itoa(i)+" is nil")
		}
	}
	return &Project{
		Keyword:     keyword,
		Projections: slices.Clone(projections),
	}, nil
}

// NewProjection creates new ProjectionExpression.
func NewProjection(expr Expression, alias string, resultType ValueType) (*ProjectionExpression, error) {
	if isNil(expr) {
		return nil, nodeError(KindProjectionExpression, "expression", "expression is nil")
	}
	if _, ok := expr.(*WildcardExpression); ok {
		return nil, nodeError(KindProjectionExpression, "expression", "wildcard projection is not allowed")
	}
	return &ProjectionExpression{
		Expression: expr,
		Alias:      alias,
		ResultType: resultType,
	}, nil
}

// NewFieldProjection creates new ProjectionExpression of a field reference.
func NewFieldProjection(name, alias string, resultType ValueType, namespace string) (*ProjectionExpression, error) {
	id, err := NewIdentifier(name, namespace)
	if err != nil {
		return nil, err
	}
	return NewProjection(id, alias, resultType)
}

// NewLiteral creates new Literal.
func NewLiteral(v Value) (*Literal, error) {
	if v == nil {
		return nil, nodeError(KindLiteral, "value", "value is nil")
	}
	return &Literal{Value: v}, nil
}

// NewIdentifier creates new Identifier.
func NewIdentifier(name, namespace string) (*Identifier, error) {
	if name == "" {
		return nil, nodeError(KindIdentifier, "name", "name is empty")
	}
	return &Identifier{Name: name, Namespace: namespace}, nil
}

// NewBinary creates new BinaryExpression.
func NewBinary(left Expression, op BinaryOp, right Expression) (*BinaryExpression, error) {
	switch {
	case isNil(left):
		return nil, nodeError(KindBinaryExpression, "left", "operand is nil")
	case isNil(right):
		return nil, nodeError(KindBinaryExpression, "right", "operand is nil")
	case !op.IsValid():
		return nil, nodeError(KindBinaryExpression, "op", "unknown operator "+op.String())
	}
	return &BinaryExpression{Left: left, Op: op, Right: right}, nil
}

// NewUnary creates new UnaryExpression.
func NewUnary(op string, arg Expression) (*UnaryExpression, error) {
	switch {
	case op == "":
		return nil, nodeError(KindUnaryExpression, "op", "operator is empty")
	case isNil(arg):
		return nil, nodeError(KindUnaryExpression, "argument", "argument is nil")
	}
	return &UnaryExpression{Op: op, Argument: arg}, nil
}

// NewCall creates new CallExpression.
func NewCall(name string, args []Expression) (*CallExpression, error) {
	callee, err := NewIdentifier(name, "")
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		if isNil(arg) {
			return nil, nodeError(KindCallExpression, "arguments", "argument #"+strconv.Itoa(i)+" is nil")
		}
	}
	return &CallExpression{
		Callee:    callee,
		Arguments: slices.Clone(args),
	}, nil
}

// NewParen creates new ParenthesizedExpression.
func NewParen(expr Expression) (*ParenthesizedExpression, error) {
	if isNil(expr) {
		return nil, nodeError(KindParenthesizedExpression, "expression", "expression is nil")
	}
	return &ParenthesizedExpression{Expr: expr}, nil
}

// NewSpecialOperator creates new SpecialOperatorExpression.
//
// Operand count of Between is not checked, see Validate.
func NewSpecialOperator(left Expression, op SpecialOp, right []Expression) (*SpecialOperatorExpression, error) {
	switch {
	case isNil(left):
		return nil, nodeError(KindSpecialOperatorExpression, "left", "operand is nil")
	case !op.IsValid():
		return nil, nodeError(KindSpecialOperatorExpression, "op", "unknown operator "+op.String())
	case len(right) == 0:
		return nil, nodeError(KindSpecialOperatorExpression, "right", "at least one operand required")
	}
	for i, e := range right {
		if isNil(e) {
			return nil, nodeError(KindSpecialOperatorExpression, "right", "operand #"+strconv.Itoa(i)+" is nil")
		}
	}
	return &SpecialOperatorExpression{
		Left:  left,
		Op:    op,
		Right: slices.Clone(right),
	}, nil
}

// NewWildcard creates new WildcardExpression.
func NewWildcard() *WildcardExpression {
	return &WildcardExpression{}
}

// NewPath creates new PathExpression.
func NewPath(base Expression, elems []PathElement) (*PathExpression, error) {
	switch {
	case isNil(base):
		return nil, nodeError(KindPathExpression, "base", "base is nil")
	case len(elems) == 0:
		return nil, nodeError(KindPathExpression, "elements", "at least one element required")
	}
	for i, e := range elems {
		if e.Member == "" && isNil(e.Index) {
			return nil, nodeError(KindPathExpression, "elements", "element #"+strconv.Itoa(i)+" is empty")
		}
		if e.Member != "" && e.Index != nil {
			return nil, nodeError(KindPathExpression, "elements", "element #"+strconv.Itoa(i)+" is both member and index")
		}
	}
	return &PathExpression{
		Base:     base,
		Elements: slices.Clone(elems),
	}, nil
}

// String creates new String literal.
func String(v string) *Literal {
	return &Literal{Value: StringValue(v)}
}

// Int creates new Integer literal.
func Int(v int64) *Literal {
	return &Literal{Value: IntValue(v)}
}

// Float creates new Float literal.
func Float(v float64) *Literal {
	return &Literal{Value: FloatValue(v)}
}

// Bool creates new Boolean literal.
func Bool(v bool) *Literal {
	return &Literal{Value: BoolValue(v)}
}

// Null creates new Null literal.
func Null() *Literal {
	return &Literal{Value: NullValue{}}
}

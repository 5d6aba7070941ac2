package astvisitor

import "github.com/go-faster/qlast/internal/ast"

// Stack is a LIFO of completed expressions.
type Stack struct {
	items []ast.Expression
}

// Len returns stack depth.
func (s *Stack) Len() int {
	return len(s.items)
}

// Push pushes expression.
func (s *Stack) Push(e ast.Expression) {
	s.items = append(s.items, e)
}

// Pop pops single expression.
//
// Construct is used in underflow error.
func (s *Stack) Pop(construct string) (ast.Expression, error) {
	n := len(s.items)
	if n == 0 {
		return nil, &StackUnderflowError{Construct: construct, Want: 1, Have: 0}
	}
	e := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return e, nil
}

// PopN pops n expressions and returns them in push order.
func (s *Stack) PopN(construct string, n int) ([]ast.Expression, error) {
	have := len(s.items)
	if n > have {
		return nil, &StackUnderflowError{Construct: construct, Want: n, Have: have}
	}
	if n <= 0 {
		return nil, nil
	}
	start := have - n
	popped := make([]ast.Expression, n)
	copy(popped, s.items[start:])
	clear(s.items[start:])
	s.items = s.items[:start]
	return popped, nil
}

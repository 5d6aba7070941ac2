package astvisitor

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrUnsupported is matched by UnsupportedError and UnsupportedOperatorError.
var ErrUnsupported = errors.New("unsupported")

// UnsupportedError is returned when visitor meets a native construct it
// cannot convert.
type UnsupportedError struct {
	Language  string
	Construct string
}

// Error implements error.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported construct %s", e.Language, e.Construct)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// UnsupportedOperatorError is returned when visitor meets an operator token
// it cannot map.
type UnsupportedOperatorError struct {
	Language string
	Operator string
}

// Error implements error.
func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%s: unsupported operator %q", e.Language, e.Operator)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedOperatorError) Is(target error) bool {
	return target == ErrUnsupported
}

// StackUnderflowError is returned when a composite construct needs more
// operands than the stack has.
type StackUnderflowError struct {
	Construct string
	Want      int
	Have      int
}

// Error implements error.
func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("%s: stack underflow: want %d operand(s), have %d", e.Construct, e.Want, e.Have)
}

// BalanceError is returned when an expression-producing visit did not leave
// exactly one new expression on the stack.
type BalanceError struct {
	Construct string
	Before    int
	After     int
}

// Error implements error.
func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s: unbalanced stack: depth %d before, %d after, want %d",
		e.Construct, e.Before, e.After, e.Before+1,
	)
}

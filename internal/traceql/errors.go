package traceql

import (
	"fmt"
	"text/scanner"
)

// SyntaxError reports malformed query text.
type SyntaxError struct {
	Msg string
	Pos scanner.Position
	// Err is the underlying cause, like a number parsing error.
	Err error
}

func syntaxErrorf(pos scanner.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Error implements error.
func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("at %s: %s", e.Pos, msg)
}

// Unwrap returns the underlying cause.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TypeError reports an operation applied to operands of wrong type.
//
// The query is well-formed, so TypeError is never returned for input that
// fails to tokenize.
type TypeError struct {
	Msg string
	Pos scanner.Position
}

func typeErrorf(pos scanner.Position, format string, args ...any) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Error implements error.
func (e *TypeError) Error() string {
	return fmt.Sprintf("at %s: type error: %s", e.Pos, e.Msg)
}

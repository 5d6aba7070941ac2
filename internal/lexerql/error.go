package lexerql

import (
	"fmt"
	"text/scanner"
)

// Error is a tokenization error shared by query language lexers.
type Error struct {
	Msg string
	Pos scanner.Position
}

// Errorf creates new *Error at given position.
func Errorf(pos scanner.Position, format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Msg)
}

package kql

import (
	"fmt"
	"text/scanner"
)

// SyntaxError reports malformed query text.
type SyntaxError struct {
	Msg string
	Pos scanner.Position
}

func errorAt(pos scanner.Position, format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Msg)
}

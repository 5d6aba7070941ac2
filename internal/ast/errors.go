package ast

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrInvalidNode is returned by constructors given malformed arguments.
	ErrInvalidNode = errors.New("invalid node")
	// ErrNoTraceExpression is returned by Filter.Expression if filter
	// has no trace expression.
	ErrNoTraceExpression = errors.New("filter has no trace expression")
)

// NodeError is a structural construction error.
type NodeError struct {
	Kind  NodeKind
	Field string
	Msg   string
}

// Error implements error.
func (e *NodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s: %s", e.Kind, e.Field, e.Msg)
}

// Is reports whether target is ErrInvalidNode.
func (e *NodeError) Is(target error) bool {
	return target == ErrInvalidNode
}

func nodeError(kind NodeKind, field, msg string) error {
	return &NodeError{Kind: kind, Field: field, Msg: msg}
}

// isNil reports whether e is nil or a typed nil pointer.
func isNil(e Expression) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *Literal:
		return e == nil
	case *Identifier:
		return e == nil
	case *BinaryExpression:
		return e == nil
	case *UnaryExpression:
		return e == nil
	case *CallExpression:
		return e == nil
	case *ParenthesizedExpression:
		return e == nil
	case *SpecialOperatorExpression:
		return e == nil
	case *WildcardExpression:
		return e == nil
	case *PathExpression:
		return e == nil
	default:
		return false
	}
}

// isNilOperation reports whether op is nil or a typed nil pointer.
func isNilOperation(op Operation) bool {
	switch op := op.(type) {
	case nil:
		return true
	case *Filter:
		return op == nil
	case *Project:
		return op == nil
	default:
		return false
	}
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case Expression:
		return isNil(n)
	case Operation:
		return isNilOperation(n)
	case *Query:
		return n == nil
	case *SpanFilter:
		return n == nil
	case *ProjectionExpression:
		return n == nil
	default:
		return false
	}
}

// Package ast contains the unified query AST shared by all source-language
// front ends.
//
// Trees are built with the New* constructors and treated as immutable once
// the owning Query is complete. Every child node is owned by exactly one
// parent; there are no back references.
package ast

import "fmt"

// NodeKind is a node discriminator.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindQuery
	KindFilter
	KindSpanFilter
	KindProject
	KindProjectionExpression
	KindLiteral
	KindIdentifier
	KindBinaryExpression
	KindUnaryExpression
	KindCallExpression
	KindParenthesizedExpression
	KindSpecialOperatorExpression
	KindWildcardExpression
	KindPathExpression
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case KindQuery:
		return "Query"
	case KindFilter:
		return "Filter"
	case KindSpanFilter:
		return "SpanFilter"
	case KindProject:
		return "Project"
	case KindProjectionExpression:
		return "ProjectionExpression"
	case KindLiteral:
		return "Literal"
	case KindIdentifier:
		return "Identifier"
	case KindBinaryExpression:
		return "BinaryExpression"
	case KindUnaryExpression:
		return "UnaryExpression"
	case KindCallExpression:
		return "CallExpression"
	case KindParenthesizedExpression:
		return "ParenthesizedExpression"
	case KindSpecialOperatorExpression:
		return "SpecialOperatorExpression"
	case KindWildcardExpression:
		return "WildcardExpression"
	case KindPathExpression:
		return "PathExpression"
	default:
		return fmt.Sprintf("<unknown kind %d>", k)
	}
}

// IsExpression whether node kind is an expression variant.
func (k NodeKind) IsExpression() bool {
	return k >= KindLiteral && k <= KindPathExpression
}

// IsOperation whether node kind is an operation variant.
func (k NodeKind) IsOperation() bool {
	return k == KindFilter || k == KindProject
}

// Node is an AST node.
type Node interface {
	Kind() NodeKind
}

func (*Query) Kind() NodeKind                     { return KindQuery }
func (*Filter) Kind() NodeKind                    { return KindFilter }
func (*SpanFilter) Kind() NodeKind                { return KindSpanFilter }
func (*Project) Kind() NodeKind                   { return KindProject }
func (*ProjectionExpression) Kind() NodeKind      { return KindProjectionExpression }
func (*Literal) Kind() NodeKind                   { return KindLiteral }
func (*Identifier) Kind() NodeKind                { return KindIdentifier }
func (*BinaryExpression) Kind() NodeKind          { return KindBinaryExpression }
func (*UnaryExpression) Kind() NodeKind           { return KindUnaryExpression }
func (*CallExpression) Kind() NodeKind            { return KindCallExpression }
func (*ParenthesizedExpression) Kind() NodeKind   { return KindParenthesizedExpression }
func (*SpecialOperatorExpression) Kind() NodeKind { return KindSpecialOperatorExpression }
func (*WildcardExpression) Kind() NodeKind        { return KindWildcardExpression }
func (*PathExpression) Kind() NodeKind            { return KindPathExpression }

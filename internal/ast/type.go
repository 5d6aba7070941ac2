package ast

import (
	"fmt"
	"strings"
)

// ValueType defines declared output type.
type ValueType uint8

const (
	// TypeUnset means type is not declared.
	TypeUnset ValueType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeDuration
	TypeDateTime
	TypeGuid
	// TypeDynamic is a type determined at evaluation time.
	TypeDynamic
)

// String implements fmt.Stringer.
func (t ValueType) String() string {
	switch t {
	case TypeUnset:
		return "Unset"
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeDuration:
		return "Duration"
	case TypeDateTime:
		return "DateTime"
	case TypeGuid:
		return "Guid"
	case TypeDynamic:
		return "Dynamic"
	default:
		return fmt.Sprintf("<unknown type %d>", t)
	}
}

// IsNumeric returns true if type is numeric.
func (t ValueType) IsNumeric() bool {
	switch t {
	case TypeInt, TypeFloat:
		return true
	default:
		return false
	}
}

// LiteralType returns value type of literal kind.
func LiteralType(k LiteralKind) ValueType {
	switch k {
	case LiteralString:
		return TypeString
	case LiteralInteger:
		return TypeInt
	case LiteralFloat:
		return TypeFloat
	case LiteralBoolean:
		return TypeBool
	case LiteralDuration:
		return TypeDuration
	case LiteralDateTime:
		return TypeDateTime
	case LiteralGuid:
		return TypeGuid
	default:
		return TypeDynamic
	}
}

var callTypes = map[string]ValueType{
	"strlen":       TypeInt,
	"toint":        TypeInt,
	"tolong":       TypeInt,
	"count":        TypeInt,
	"dcount":       TypeInt,
	"countif":      TypeInt,
	"todouble":     TypeFloat,
	"toreal":       TypeFloat,
	"avg":          TypeFloat,
	"tostring":     TypeString,
	"tolower":      TypeString,
	"toupper":      TypeString,
	"strcat":       TypeString,
	"substring":    TypeString,
	"trim":         TypeString,
	"tobool":       TypeBool,
	"not":          TypeBool,
	"isnull":       TypeBool,
	"isnotnull":    TypeBool,
	"isempty":      TypeBool,
	"isnotempty":   TypeBool,
	"now":          TypeDateTime,
	"ago":          TypeDateTime,
	"todatetime":   TypeDateTime,
	"startofday":   TypeDateTime,
	"datetime_add": TypeDateTime,
	"totimespan":   TypeDuration,
	"toguid":       TypeGuid,
	"todynamic":    TypeDynamic,
	"parse_json":   TypeDynamic,
}

// InferType infers value type of expression.
//
// Field references and paths are TypeDynamic: their type is known only from
// the source schema.
func InferType(e Expression) ValueType {
	switch e := e.(type) {
	case *Literal:
		if e.Value == nil {
			return TypeDynamic
		}
		return LiteralType(e.Value.Kind())
	case *ParenthesizedExpression:
		return InferType(e.Expr)
	case *BinaryExpression:
		if e.Op.IsBoolean() {
			return TypeBool
		}
		return arithmeticType(e.Op, InferType(e.Left), InferType(e.Right))
	case *UnaryExpression:
		switch e.Op {
		case "!", "not":
			return TypeBool
		default:
			return InferType(e.Argument)
		}
	case *SpecialOperatorExpression:
		return TypeBool
	case *CallExpression:
		if e.Callee == nil {
			return TypeDynamic
		}
		name := strings.ToLower(e.Callee.Name)
		if t, ok := callTypes[name]; ok {
			return t
		}
		switch name {
		case "abs", "round", "floor", "ceiling", "bin", "min", "max", "sum", "coalesce", "iff", "iif":
			// Type of the first value argument.
			for _, arg := range e.Arguments {
				if t := InferType(arg); t != TypeDynamic && t != TypeBool {
					return t
				}
			}
		}
		return TypeDynamic
	default:
		return TypeDynamic
	}
}

func arithmeticType(op BinaryOp, l, r ValueType) ValueType {
	switch {
	case l == TypeDynamic:
		return r
	case r == TypeDynamic:
		return l
	case l == TypeDateTime && r == TypeDateTime && op == OpSubtract:
		return TypeDuration
	case l == TypeDateTime && r == TypeDuration,
		l == TypeDuration && r == TypeDateTime:
		return TypeDateTime
	case l == TypeDuration && r == TypeDuration:
		if op == OpDivide {
			return TypeFloat
		}
		return TypeDuration
	case l == TypeDuration && r.IsNumeric(),
		l.IsNumeric() && r == TypeDuration:
		return TypeDuration
	case l == TypeFloat || r == TypeFloat:
		return TypeFloat
	case l == TypeInt && r == TypeInt:
		return TypeInt
	case l == TypeString && r == TypeString && op == OpAdd:
		return TypeString
	default:
		return TypeDynamic
	}
}

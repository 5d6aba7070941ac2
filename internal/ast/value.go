package ast

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LiteralKind defines literal kind.
type LiteralKind uint8

const (
	LiteralString LiteralKind = iota + 1
	LiteralInteger
	LiteralFloat
	LiteralBoolean
	LiteralNull
	LiteralDuration
	LiteralDateTime
	LiteralGuid
	LiteralDynamic
)

// String implements fmt.Stringer.
func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "String"
	case LiteralInteger:
		return "Integer"
	case LiteralFloat:
		return "Float"
	case LiteralBoolean:
		return "Boolean"
	case LiteralNull:
		return "Null"
	case LiteralDuration:
		return "Duration"
	case LiteralDateTime:
		return "DateTime"
	case LiteralGuid:
		return "Guid"
	case LiteralDynamic:
		return "Dynamic"
	default:
		return fmt.Sprintf("<unknown literal kind %d>", k)
	}
}

// Value is a literal payload.
//
// Value is a closed union, the kind is determined by the concrete type.
type Value interface {
	Kind() LiteralKind
	String() string
	value()
}

func (StringValue) value()   {}
func (IntValue) value()      {}
func (FloatValue) value()    {}
func (BoolValue) value()     {}
func (NullValue) value()     {}
func (DurationValue) value() {}
func (DateTimeValue) value() {}
func (GuidValue) value()     {}
func (DynamicValue) value()  {}

// StringValue is a String literal value.
type StringValue string

// Kind implements Value.
func (StringValue) Kind() LiteralKind { return LiteralString }

// String implements Value.
func (v StringValue) String() string { return string(v) }

// IntValue is an Integer literal value.
type IntValue int64

// Kind implements Value.
func (IntValue) Kind() LiteralKind { return LiteralInteger }

// String implements Value.
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

// FloatValue is a Float literal value.
type FloatValue float64

// Kind implements Value.
func (FloatValue) Kind() LiteralKind { return LiteralFloat }

// String implements Value.
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// BoolValue is a Boolean literal value.
type BoolValue bool

// Kind implements Value.
func (BoolValue) Kind() LiteralKind { return LiteralBoolean }

// String implements Value.
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }

// NullValue is a Null literal value.
type NullValue struct{}

// Kind implements Value.
func (NullValue) Kind() LiteralKind { return LiteralNull }

// String implements Value.
func (NullValue) String() string { return "null" }

// DurationValue is a Duration literal value.
type DurationValue struct {
	// Text is a surface text, like "1s".
	Text     string
	Duration time.Duration
}

// Kind implements Value.
func (DurationValue) Kind() LiteralKind { return LiteralDuration }

// String implements Value.
func (v DurationValue) String() string {
	if v.Text != "" {
		return v.Text
	}
	return v.Duration.String()
}

// DateTimeValue is a DateTime literal value.
type DateTimeValue struct {
	// Text is a surface text, like "2024-01-01".
	Text string
	Time time.Time
}

// Kind implements Value.
func (DateTimeValue) Kind() LiteralKind { return LiteralDateTime }

// String implements Value.
func (v DateTimeValue) String() string {
	if v.Text != "" {
		return v.Text
	}
	return v.Time.Format(time.RFC3339Nano)
}

// GuidValue is a Guid literal value.
type GuidValue uuid.UUID

// Kind implements Value.
func (GuidValue) Kind() LiteralKind { return LiteralGuid }

// String implements Value.
func (v GuidValue) String() string { return uuid.UUID(v).String() }

// DynamicValue is a Dynamic literal value, kept as raw text.
type DynamicValue string

// Kind implements Value.
func (DynamicValue) Kind() LiteralKind { return LiteralDynamic }

// String implements Value.
func (v DynamicValue) String() string { return string(v) }

package traceql

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/collector/pdata/ptrace"
)

// StaticType defines static type.
type StaticType int

const (
	// StaticAttribute is a type of attribute, determined at execution time.
	StaticAttribute StaticType = iota
	StaticString
	StaticInteger
	StaticNumber
	StaticBool
	StaticNil
	StaticDuration
	StaticSpanStatus
	StaticSpanKind
)

// String implements fmt.Stringer.
func (s StaticType) String() string {
	switch s {
	case StaticAttribute:
		return "Attribute"
	case StaticString:
		return "String"
	case StaticInteger:
		return "Integer"
	case StaticNumber:
		return "Number"
	case StaticBool:
		return "Bool"
	case StaticNil:
		return "Nil"
	case StaticDuration:
		return "Duration"
	case StaticSpanStatus:
		return "SpanStatus"
	case StaticSpanKind:
		return "SpanKind"
	default:
		return fmt.Sprintf("<unknown type %d>", int(s))
	}
}

// CheckOperand whether is a and b are valid operands.
func (s StaticType) CheckOperand(s2 StaticType) bool {
	return s == s2 ||
		s == StaticAttribute || s2 == StaticAttribute ||
		s == StaticNil || s2 == StaticNil ||
		(s.IsNumeric() && s2.IsNumeric())
}

// IsNumeric returns true if type is numeric.
func (s StaticType) IsNumeric() bool {
	switch s {
	case StaticInteger, StaticNumber, StaticDuration:
		return true
	default:
		return false
	}
}

// Static is a constant value.
type Static struct {
	Type StaticType
	Data uint64 // stores everything, except strings
	// Str stores String value or duration literal text.
	Str string
}

// ValueType returns value type of expression.
func (s *Static) ValueType() StaticType {
	return s.Type
}

func (s *Static) resetTo(typ StaticType) {
	s.Type = typ
	s.Data = 0
	s.Str = ""
}

// SetString sets String value.
func (s *Static) SetString(v string) {
	s.resetTo(StaticString)
	s.Str = v
}

// SetInteger sets Integer value.
func (s *Static) SetInteger(v int64) {
	s.resetTo(StaticInteger)
	s.Data = uint64(v)
}

// SetNumber sets Number value.
func (s *Static) SetNumber(v float64) {
	s.resetTo(StaticNumber)
	s.Data = math.Float64bits(v)
}

// SetBool sets Bool value.
func (s *Static) SetBool(v bool) {
	s.resetTo(StaticBool)
	if v {
		s.Data = 1
	}
}

// SetNil sets Nil value.
func (s *Static) SetNil() {
	s.resetTo(StaticNil)
}

// SetDuration sets Duration value and its literal text.
func (s *Static) SetDuration(v time.Duration, text string) {
	s.resetTo(StaticDuration)
	s.Data = uint64(v)
	s.Str = text
}

// SetSpanStatus sets SpanStatus value.
func (s *Static) SetSpanStatus(status ptrace.StatusCode) {
	s.resetTo(StaticSpanStatus)
	s.Data = uint64(status)
}

// SetSpanKind sets SpanKind value.
func (s *Static) SetSpanKind(kind ptrace.SpanKind) {
	s.resetTo(StaticSpanKind)
	s.Data = uint64(kind)
}

// AsString returns String value.
func (s *Static) AsString() string {
	return s.Str
}

// AsInteger returns Integer value.
func (s *Static) AsInteger() int64 {
	return int64(s.Data)
}

// AsNumber returns Number value.
func (s *Static) AsNumber() float64 {
	return math.Float64frombits(s.Data)
}

// AsBool returns Bool value.
func (s *Static) AsBool() bool {
	return s.Data != 0
}

// IsNil returns true, if static is Nil.
func (s *Static) IsNil() bool {
	return s.Type == StaticNil
}

// AsDuration returns Duration value.
func (s *Static) AsDuration() time.Duration {
	return time.Duration(s.Data)
}

// AsSpanStatus returns SpanStatus value.
func (s *Static) AsSpanStatus() ptrace.StatusCode {
	return ptrace.StatusCode(s.Data)
}

// AsSpanKind returns SpanKind value.
func (s *Static) AsSpanKind() ptrace.SpanKind {
	return ptrace.SpanKind(s.Data)
}

// String returns TraceQL representation of static.
func (s *Static) String() string {
	switch s.Type {
	case StaticString:
		return fmt.Sprintf("%q", s.Str)
	case StaticInteger:
		return fmt.Sprintf("%d", s.AsInteger())
	case StaticNumber:
		v := strconv.FormatFloat(s.AsNumber(), 'f', -1, 64)
		if !strings.ContainsAny(v, ".NI") {
			// Keep it a Number literal.
			v += ".0"
		}
		return v
	case StaticBool:
		return fmt.Sprintf("%t", s.AsBool())
	case StaticNil:
		return "nil"
	case StaticDuration:
		if s.Str != "" {
			return s.Str
		}
		return s.AsDuration().String()
	case StaticSpanStatus:
		return strings.ToLower(s.AsSpanStatus().String())
	case StaticSpanKind:
		return strings.ToLower(s.AsSpanKind().String())
	default:
		return fmt.Sprintf("<unknown static %d>", int(s.Type))
	}
}

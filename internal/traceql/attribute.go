package traceql

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/go-faster/qlast/internal/traceql/lexer"
)

// Attribute is a span attribute or intrinsic.
type Attribute struct {
	Name   string
	Scope  AttributeScope
	Prop   SpanProperty
	Parent bool // refers to parent
}

// ParseAttribute parses attribute selector from given string.
func ParseAttribute(s string) (Attribute, error) {
	p, err := newParser(s)
	if err != nil {
		return Attribute{}, err
	}
	if len(p.tokens) != 1 {
		return Attribute{}, errors.Errorf("expected single attribute, got %d token(s)", len(p.tokens))
	}
	a, err := p.parseAttribute()
	if err != nil {
		return Attribute{}, err
	}
	return *a, nil
}

// String implements fmt.Stringer.
func (s Attribute) String() string {
	if s.Prop != SpanAttribute {
		return s.Prop.String()
	}

	var prefix []string
	if s.Parent {
		prefix = append(prefix, "parent")
	}
	if scope := s.Scope.String(); scope != "" {
		prefix = append(prefix, scope)
	}
	return strings.Join(prefix, ".") + "." + s.Name
}

// ValueType returns value type of expression.
func (s *Attribute) ValueType() StaticType {
	switch s.Prop {
	case SpanDuration, TraceDuration:
		return StaticDuration
	case SpanChildCount:
		return StaticInteger
	case SpanName, RootSpanName, RootServiceName:
		return StaticString
	case SpanStatus:
		return StaticSpanStatus
	case SpanKind:
		return StaticSpanKind
	case SpanParent:
		return StaticNil
	default:
		return StaticAttribute
	}
}

// SpanProperty is a span intrinsic property.
type SpanProperty uint8

const (
	SpanAttribute SpanProperty = iota
	SpanDuration
	SpanChildCount
	SpanName
	SpanStatus
	SpanKind
	SpanParent
	RootSpanName
	RootServiceName
	TraceDuration
)

// String implements fmt.Stringer.
func (p SpanProperty) String() string {
	switch p {
	case SpanDuration:
		return "duration"
	case SpanChildCount:
		return "childCount"
	case SpanName:
		return "name"
	case SpanStatus:
		return "status"
	case SpanKind:
		return "kind"
	case SpanParent:
		return "parent"
	case RootSpanName:
		return "rootName"
	case RootServiceName:
		return "rootServiceName"
	case TraceDuration:
		return "traceDuration"
	default:
		return "attribute"
	}
}

// IsTraceLevel whether property describes the whole trace.
func (p SpanProperty) IsTraceLevel() bool {
	switch p {
	case RootSpanName, RootServiceName, TraceDuration:
		return true
	default:
		return false
	}
}

// AttributeScope is an attribute scope.
type AttributeScope uint8

const (
	ScopeNone AttributeScope = iota
	ScopeResource
	ScopeSpan
)

// String implements fmt.Stringer.
func (s AttributeScope) String() string {
	switch s {
	case ScopeResource:
		return "resource"
	case ScopeSpan:
		return "span"
	default:
		return ""
	}
}

var intrinsics = map[lexer.TokenType]SpanProperty{
	lexer.SpanDuration:    SpanDuration,
	lexer.ChildCount:      SpanChildCount,
	lexer.Name:            SpanName,
	lexer.Status:          SpanStatus,
	lexer.Kind:            SpanKind,
	lexer.Parent:          SpanParent,
	lexer.RootName:        RootSpanName,
	lexer.RootServiceName: RootServiceName,
	lexer.TraceDuration:   TraceDuration,
}

package lexer

import (
	"fmt"
	"text/scanner"
)

// Token is a TraceQL token.
type Token struct {
	Type TokenType
	Text string
	Pos  scanner.Position
}

// TokenType defines TraceQL token type.
type TokenType int

const (
	Invalid TokenType = iota
	EOF
	Ident
	// Literals
	String
	Integer
	Number
	Duration

	Comma
	Dot
	OpenBrace
	CloseBrace
	OpenParen
	CloseParen
	Eq
	NotEq
	Re
	NotRe
	Gt
	Gte
	Lt
	Lte
	Add
	Sub
	Div
	Mod
	Mul
	Pow
	True
	False
	Nil
	StatusOk
	StatusError
	StatusUnset
	KindUnspecified
	KindInternal
	KindServer
	KindClient
	KindProducer
	KindConsumer
	And
	Or
	Not
	Pipe
	Desc
	Tilde
	// Intrinsics.
	SpanDuration
	ChildCount
	Name
	Status
	Kind
	RootName
	RootServiceName
	TraceDuration
	Parent
	// Aggregates and pipeline operations.
	Count
	Avg
	Max
	Min
	Sum
	By
	Coalesce
	Select
)

var tokens = map[string]TokenType{
	",":               Comma,
	".":               Dot,
	"{":               OpenBrace,
	"}":               CloseBrace,
	"(":               OpenParen,
	")":               CloseParen,
	"=":               Eq,
	"!=":              NotEq,
	"=~":              Re,
	"!~":              NotRe,
	">":               Gt,
	">=":              Gte,
	"<":               Lt,
	"<=":              Lte,
	"+":               Add,
	"-":               Sub,
	"/":               Div,
	"%":               Mod,
	"*":               Mul,
	"^":               Pow,
	"true":            True,
	"false":           False,
	"nil":             Nil,
	"ok":              StatusOk,
	"error":           StatusError,
	"unset":           StatusUnset,
	"unspecified":     KindUnspecified,
	"internal":        KindInternal,
	"server":          KindServer,
	"client":          KindClient,
	"producer":        KindProducer,
	"consumer":        KindConsumer,
	"&&":              And,
	"||":              Or,
	"!":               Not,
	"|":               Pipe,
	">>":              Desc,
	"~":               Tilde,
	"duration":        SpanDuration,
	"childCount":      ChildCount,
	"name":            Name,
	"status":          Status,
	"kind":            Kind,
	"rootName":        RootName,
	"rootServiceName": RootServiceName,
	"traceDuration":   TraceDuration,
	"parent":          Parent,
	"count":           Count,
	"avg":             Avg,
	"max":             Max,
	"min":             Min,
	"sum":             Sum,
	"by":              By,
	"coalesce":        Coalesce,
	"select":          Select,
}

var tokenTypeNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	String:          "String",
	Integer:         "Integer",
	Number:          "Number",
	Duration:        "Duration",
	Comma:           "Comma",
	Dot:             "Dot",
	OpenBrace:       "OpenBrace",
	CloseBrace:      "CloseBrace",
	OpenParen:       "OpenParen",
	CloseParen:      "CloseParen",
	Eq:              "Eq",
	NotEq:           "NotEq",
	Re:              "Re",
	NotRe:           "NotRe",
	Gt:              "Gt",
	Gte:             "Gte",
	Lt:              "Lt",
	Lte:             "Lte",
	Add:             "Add",
	Sub:             "Sub",
	Div:             "Div",
	Mod:             "Mod",
	Mul:             "Mul",
	Pow:             "Pow",
	True:            "True",
	False:           "False",
	Nil:             "Nil",
	StatusOk:        "StatusOk",
	StatusError:     "StatusError",
	StatusUnset:     "StatusUnset",
	KindUnspecified: "KindUnspecified",
	KindInternal:    "KindInternal",
	KindServer:      "KindServer",
	KindClient:      "KindClient",
	KindProducer:    "KindProducer",
	KindConsumer:    "KindConsumer",
	And:             "And",
	Or:              "Or",
	Not:             "Not",
	Pipe:            "Pipe",
	Desc:            "Desc",
	Tilde:           "Tilde",
	SpanDuration:    "SpanDuration",
	ChildCount:      "ChildCount",
	Name:            "Name",
	Status:          "Status",
	Kind:            "Kind",
	RootName:        "RootName",
	RootServiceName: "RootServiceName",
	TraceDuration:   "TraceDuration",
	Parent:          "Parent",
	Count:           "Count",
	Avg:             "Avg",
	Max:             "Max",
	Min:             "Min",
	Sum:             "Sum",
	By:              "By",
	Coalesce:        "Coalesce",
	Select:          "Select",
}

// String implements fmt.Stringer.
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenTypeNames[tt]
}

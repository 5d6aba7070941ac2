package lexer

import (
	"fmt"
	"text/scanner"
)

// Token is a KQL token.
type Token struct {
	Type TokenType
	Text string
	Pos  scanner.Position
}

// TokenType defines KQL token type.
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
	DateTime
	Guid
	Dynamic

	Comma
	Dot
	DotDot
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Pipe
	Assign
	Eq
	NotEq
	TildeEq
	NotTildeEq
	Gt
	Gte
	Lt
	Lte
	Add
	Sub
	Mul
	Div
	Mod
	True
	False
	Null
	And
	Or
	In
	NotIn
	Between
	NotBetween
	Contains
	NotContains
	Has
	NotHas
	StartsWith
	NotStartsWith
	EndsWith
	NotEndsWith
	Matches
)

var tokens = map[string]TokenType{
	",":           Comma,
	".":           Dot,
	"..":          DotDot,
	"(":           OpenParen,
	")":           CloseParen,
	"[":           OpenBracket,
	"]":           CloseBracket,
	"|":           Pipe,
	"=":           Assign,
	"==":          Eq,
	"!=":          NotEq,
	"<>":          NotEq,
	"=~":          TildeEq,
	"!~":          NotTildeEq,
	">":           Gt,
	">=":          Gte,
	"<":           Lt,
	"<=":          Lte,
	"+":           Add,
	"-":           Sub,
	"*":           Mul,
	"/":           Div,
	"%":           Mod,
	"true":        True,
	"false":       False,
	"null":        Null,
	"and":         And,
	"or":          Or,
	"in":          In,
	"!in":         NotIn,
	"between":     Between,
	"!between":    NotBetween,
	"contains":    Contains,
	"!contains":   NotContains,
	"has":         Has,
	"!has":        NotHas,
	"startswith":  StartsWith,
	"!startswith": NotStartsWith,
	"endswith":    EndsWith,
	"!endswith":   NotEndsWith,
	"matches":     Matches,
}

var tokenTypeNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	String:        "String",
	Integer:       "Integer",
	Number:        "Number",
	Duration:      "Duration",
	DateTime:      "DateTime",
	Guid:          "Guid",
	Dynamic:       "Dynamic",
	Comma:         "Comma",
	Dot:           "Dot",
	DotDot:        "DotDot",
	OpenParen:     "OpenParen",
	CloseParen:    "CloseParen",
	OpenBracket:   "OpenBracket",
	CloseBracket:  "CloseBracket",
	Pipe:          "Pipe",
	Assign:        "Assign",
	Eq:            "Eq",
	NotEq:         "NotEq",
	TildeEq:       "TildeEq",
	NotTildeEq:    "NotTildeEq",
	Gt:            "Gt",
	Gte:           "Gte",
	Lt:            "Lt",
	Lte:           "Lte",
	Add:           "Add",
	Sub:           "Sub",
	Mul:           "Mul",
	Div:           "Div",
	Mod:           "Mod",
	True:          "True",
	False:         "False",
	Null:          "Null",
	And:           "And",
	Or:            "Or",
	In:            "In",
	NotIn:         "NotIn",
	Between:       "Between",
	NotBetween:    "NotBetween",
	Contains:      "Contains",
	NotContains:   "NotContains",
	Has:           "Has",
	NotHas:        "NotHas",
	StartsWith:    "StartsWith",
	NotStartsWith: "NotStartsWith",
	EndsWith:      "EndsWith",
	NotEndsWith:   "NotEndsWith",
	Matches:       "Matches",
}

// String implements fmt.Stringer.
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenTypeNames[tt]
}

// literalFuncs maps literal constructor names to token types.
var literalFuncs = map[string]TokenType{
	"datetime": DateTime,
	"guid":     Guid,
	"dynamic":  Dynamic,
	"timespan": Duration,
}

package astvisitor

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/lexerql"
)

// Literal conversion helpers map lexical literal forms to AST literals.
//
// Source parsers are expected to validate lexical well-formedness, so
// conversion never fails: malformed payloads degrade to the zero value of
// the intended kind.

// ConvertString returns String literal.
func ConvertString(s string) *ast.Literal {
	return ast.String(s)
}

// ConvertInt parses Integer literal, using zero on failure.
func ConvertInt(text string) *ast.Literal {
	v, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 0, 64)
	if err != nil {
		return ast.Int(0)
	}
	return ast.Int(v)
}

// ConvertFloat parses Float literal, using zero on failure.
func ConvertFloat(text string) *ast.Literal {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ast.Float(0)
	}
	return ast.Float(v)
}

// ConvertBool parses Boolean literal, using false on failure.
func ConvertBool(text string) *ast.Literal {
	v, err := strconv.ParseBool(strings.ToLower(text))
	if err != nil {
		return ast.Bool(false)
	}
	return ast.Bool(v)
}

// ConvertNull returns Null literal.
func ConvertNull() *ast.Literal {
	return ast.Null()
}

// ConvertDuration parses Duration literal, using zero duration on failure.
//
// Surface text is kept.
func ConvertDuration(text string) *ast.Literal {
	d, err := lexerql.ParseDuration(text)
	if err != nil {
		d = 0
	}
	return &ast.Literal{Value: ast.DurationValue{Text: text, Duration: d}}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123,
}

// ConvertDateTime parses DateTime literal, using zero time on failure.
//
// Timestamps without zone are UTC. Surface text is kept.
func ConvertDateTime(text string) *ast.Literal {
	var t time.Time
	for _, layout := range dateTimeLayouts {
		parsed, err := time.ParseInLocation(layout, text, time.UTC)
		if err == nil {
			t = parsed
			break
		}
	}
	return &ast.Literal{Value: ast.DateTimeValue{Text: text, Time: t}}
}

// ConvertGuid parses Guid literal, using nil UUID on failure.
func ConvertGuid(text string) *ast.Literal {
	id, err := uuid.Parse(text)
	if err != nil {
		id = uuid.Nil
	}
	return &ast.Literal{Value: ast.GuidValue(id)}
}

// ConvertDynamic returns Dynamic literal of raw text.
func ConvertDynamic(raw string) *ast.Literal {
	return &ast.Literal{Value: ast.DynamicValue(raw)}
}

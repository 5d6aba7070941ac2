package compose

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

var (
	// ErrNothingToParse is returned when input has no segment to parse.
	ErrNothingToParse = errors.New("nothing to parse")
	// ErrNestedGroup is returned when span group contains another group.
	ErrNestedGroup = errors.New("nested span group")
	// ErrMultipleGroups is returned when input has more than one span group.
	ErrMultipleGroups = errors.New("multiple span groups")
	// ErrUnclosedGroup is returned when span group has no closing delimiter.
	ErrUnclosedGroup = errors.New("span group is not closed")
	// ErrTrailingSegment is returned when input has a segment after span group.
	ErrTrailingSegment = errors.New("segment after span group")
)

// Segment separators.
const (
	SegmentSeparator = "$$"
	GroupOpen        = "<<"
	GroupClose       = ">>"
)

// Segments is a split multi-segment query.
type Segments struct {
	// Trace is a trace segment.
	Trace    string
	HasTrace bool
	// Spans are non-empty span segments of the span group.
	Spans    []string
	HasGroup bool
}

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenSeparator
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenize splits input by separators, skipping quoted strings.
func tokenize(input string) (tokens []token) {
	var (
		start int
		quote byte
	)
	flush := func(end int) {
		if end > start {
			tokens = append(tokens, token{kind: tokenText, text: input[start:end], pos: start})
		}
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		if quote != 0 {
			switch {
			case c == '\\' && quote != '`':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' || c == '`' {
			quote = c
			continue
		}
		if i+1 >= len(input) {
			continue
		}

		var kind tokenKind
		switch input[i : i+2] {
		case SegmentSeparator:
			kind = tokenSeparator
		case GroupOpen:
			kind = tokenOpen
		case GroupClose:
			kind = tokenClose
		default:
			continue
		}
		flush(i)
		tokens = append(tokens, token{kind: kind, text: input[i : i+2], pos: i})
		i++
		start = i + 1
	}
	flush(len(input))
	return tokens
}

// Split splits multi-segment query into trace and span segments.
//
// Input is `Trace [$$ << Span ($$ Span)* >>]` or `<< Span ($$ Span)* >>`.
// Separators inside quoted strings are ignored, segments are trimmed and
// empty segments are dropped. A span group without segments is allowed.
func Split(input string) (s Segments, _ error) {
	type topSegment struct {
		text       string
		afterGroup bool
	}
	var (
		top     []topSegment
		cur     strings.Builder
		inGroup bool
	)
	pushTop := func() {
		top = append(top, topSegment{
			text:       cur.String(),
			afterGroup: s.HasGroup,
		})
		cur.Reset()
	}
	pushSpan := func() {
		if seg := strings.TrimSpace(cur.String()); seg != "" {
			s.Spans = append(s.Spans, seg)
		}
		cur.Reset()
	}

	for _, tok := range tokenize(input) {
		switch {
		case tok.kind == tokenText,
			tok.kind == tokenClose && !inGroup:
			// ">>" outside of group is a part of segment, like TraceQL
			// descendant operator.
			cur.WriteString(tok.text)
		case tok.kind == tokenSeparator && !inGroup:
			pushTop()
		case tok.kind == tokenSeparator && inGroup:
			pushSpan()
		case tok.kind == tokenOpen && inGroup:
			return s, errors.Wrapf(ErrNestedGroup, "at %d", tok.pos)
		case tok.kind == tokenOpen:
			if s.HasGroup {
				return s, errors.Wrapf(ErrMultipleGroups, "at %d", tok.pos)
			}
			pushTop()
			inGroup = true
			s.HasGroup = true
		case tok.kind == tokenClose:
			pushSpan()
			inGroup = false
		}
	}
	if inGroup {
		return s, ErrUnclosedGroup
	}
	pushTop()

	for _, t := range top {
		seg := strings.TrimSpace(t.text)
		if seg == "" {
			continue
		}
		if t.afterGroup {
			return s, errors.Wrapf(ErrTrailingSegment, "unexpected segment %q", seg)
		}
		if s.HasTrace {
			return s, errors.Errorf("unexpected segment %q: only one trace segment is allowed", seg)
		}
		s.Trace = seg
		s.HasTrace = true
	}

	if !s.HasTrace && !s.HasGroup {
		return s, ErrNothingToParse
	}
	return s, nil
}

// SegmentError is a segment parsing error.
type SegmentError struct {
	// Index is a span segment index, -1 for trace segment.
	Index int
	Err   error
}

// Segment returns segment name.
func (e *SegmentError) Segment() string {
	if e.Index < 0 {
		return "trace segment"
	}
	return fmt.Sprintf("span segment #%d", e.Index)
}

// Error implements error.
func (e *SegmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Segment(), e.Err)
}

// Unwrap returns underlying error.
func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Package lexer contains TraceQL lexer.
package lexer

import (
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/go-faster/qlast/internal/lexerql"
)

type lexer struct {
	scanner scanner.Scanner
	tokens  []Token
	err     error
}

// TokenizeOptions is a Tokenize options structure.
type TokenizeOptions struct {
	// Filename sets filename for the scanner.
	Filename string
}

// Tokenize scans given string to TraceQL tokens.
func Tokenize(s string, opts TokenizeOptions) ([]Token, error) {
	l := lexer{}
	l.scanner.Init(strings.NewReader(s))
	l.scanner.Filename = opts.Filename
	l.scanner.Error = func(s *scanner.Scanner, msg string) {
		l.setError(s.Position, "%s", msg)
	}

	for {
		r := l.scanner.Scan()
		if l.err != nil {
			return l.tokens, l.err
		}
		switch r {
		case scanner.EOF:
			return l.tokens, nil
		case '#':
			lexerql.ScanComment(&l.scanner)
			continue
		}

		tok, ok := l.nextToken(r, l.scanner.TokenText())
		if !ok {
			return l.tokens, l.err
		}
		l.tokens = append(l.tokens, tok)
	}
}

func (l *lexer) setError(pos scanner.Position, format string, args ...any) {
	l.err = lexerql.Errorf(pos, format, args...)
}

func (l *lexer) nextToken(r rune, text string) (tok Token, _ bool) {
	tok.Pos = l.scanner.Position
	if r == '-' {
		// Negative number literal.
		if peekCh := l.scanner.Peek(); lexerql.IsDigit(peekCh) || peekCh == '.' {
			r = l.scanner.Scan()
			text = "-" + l.scanner.TokenText()
		}
	}
	tok.Text = text

	switch r {
	case scanner.Int, scanner.Float:
		tok.Type = Integer
		if r == scanner.Float {
			tok.Type = Number
		}
		if lexerql.IsDurationRune(l.scanner.Peek()) {
			duration, err := lexerql.ScanDuration(&l.scanner, text)
			if err != nil {
				l.setError(tok.Pos, "%s", err)
				return tok, false
			}
			tok.Type = Duration
			tok.Text = duration
		}
		return tok, true
	case scanner.String, scanner.RawString:
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			l.setError(tok.Pos, "unquote string: %s", err)
			return tok, false
		}
		tok.Type = String
		tok.Text = unquoted
		return tok, true
	}

	peekCh := l.scanner.Peek()
	switch {
	case text == "parent" && peekCh != '.':
		// Intrinsic "parent".
	case text == "." || text == "parent" || text == "resource" || text == "span":
		tok.Type = Ident
		tok.Text = l.scanAttribute(text)
		return tok, true
	}

	peeked := text + string(peekCh)
	if tt, ok := tokens[peeked]; ok {
		l.scanner.Next()
		tok.Type = tt
		tok.Text = peeked
		return tok, true
	}

	if tt, ok := tokens[text]; ok {
		tok.Type = tt
		return tok, true
	}

	if r != scanner.Ident {
		l.setError(tok.Pos, "unexpected character %q", text)
		return tok, false
	}
	tok.Type = Ident
	return tok, true
}

// scanAttribute reads the rest of attribute selector, like ".foo.bar" or
// "resource.service.name".
func (l *lexer) scanAttribute(prefix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for isAttributeRune(l.scanner.Peek()) {
		sb.WriteRune(l.scanner.Next())
	}
	return sb.String()
}

func isAttributeRune(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}

	switch r {
	case scanner.EOF, '{', '}', '(', ')', '=', '~', '!', '<', '>', '&', '|', '^', ',':
		return false
	default:
		return true
	}
}

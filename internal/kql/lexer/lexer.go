// Package lexer contains KQL lexer.
package lexer

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/go-faster/errors"

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

// Tokenize scans given string to KQL tokens.
func Tokenize(s string, opts TokenizeOptions) ([]Token, error) {
	l := lexer{}
	l.scanner.Init(strings.NewReader(s))
	// Single-quoted strings are scanned by lexer itself.
	l.scanner.Mode = scanner.ScanIdents |
		scanner.ScanInts |
		scanner.ScanFloats |
		scanner.ScanStrings |
		scanner.ScanRawStrings |
		scanner.ScanComments |
		scanner.SkipComments
	l.scanner.Filename = opts.Filename
	l.scanner.Error = func(s *scanner.Scanner, msg string) {
		l.setError(s.Position, "%s", msg)
	}

	for {
		r := l.scanner.Scan()
		if l.err != nil {
			return l.tokens, l.err
		}
		if r == scanner.EOF {
			return l.tokens, nil
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
	tok.Text = text

	switch r {
	case scanner.Float:
		if strings.HasSuffix(text, ".") && l.scanner.Peek() == '.' {
			// Range bound followed by "..", like "1..10".
			l.scanner.Next()

			tok.Type = Integer
			tok.Text = strings.TrimSuffix(text, ".")
			l.tokens = append(l.tokens, tok)

			dotPos := tok.Pos
			dotPos.Offset += len(tok.Text)
			dotPos.Column += len(tok.Text)
			return Token{Type: DotDot, Text: "..", Pos: dotPos}, true
		}
		return l.scanNumber(tok, Number)
	case scanner.Int:
		return l.scanNumber(tok, Integer)
	case scanner.String, scanner.RawString:
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			l.setError(tok.Pos, "unquote string: %s", err)
			return tok, false
		}
		tok.Type = String
		tok.Text = unquoted
		return tok, true
	case '\'':
		s, err := l.scanSingleQuoted()
		if err != nil {
			l.setError(tok.Pos, "%s", err)
			return tok, false
		}
		tok.Type = String
		tok.Text = s
		return tok, true
	case scanner.Ident:
		if tt, ok := literalFuncs[text]; ok && l.scanner.Peek() == '(' {
			return l.scanLiteralFunc(tok, tt)
		}
		if tt, ok := tokens[text]; ok {
			tok.Type = tt
			return tok, true
		}
		tok.Type = Ident
		return tok, true
	case '!':
		if lexerql.IsLetter(l.scanner.Peek()) {
			// Negated operator, like "!contains".
			l.scanner.Scan()
			word := text + l.scanner.TokenText()

			tt, ok := tokens[word]
			if !ok {
				l.setError(tok.Pos, "unexpected %q", word)
				return tok, false
			}
			tok.Type = tt
			tok.Text = word
			return tok, true
		}
	}

	peeked := text + string(l.scanner.Peek())
	if tt, ok := tokens[peeked]; ok {
		tok.Type = tt
		tok.Text = peeked
		l.scanner.Next()
		return tok, true
	}

	if tt, ok := tokens[text]; ok {
		tok.Type = tt
		return tok, true
	}

	l.setError(tok.Pos, "unexpected character %q", text)
	return tok, false
}

func (l *lexer) scanNumber(tok Token, tt TokenType) (Token, bool) {
	if lexerql.IsDurationRune(l.scanner.Peek()) {
		duration, err := lexerql.ScanDuration(&l.scanner, tok.Text)
		if err != nil {
			l.setError(tok.Pos, "%s", err)
			return tok, false
		}
		tok.Type = Duration
		tok.Text = duration
		return tok, true
	}
	tok.Type = tt
	return tok, true
}

func (l *lexer) scanSingleQuoted() (string, error) {
	var sb strings.Builder
	for {
		switch ch := l.scanner.Next(); ch {
		case scanner.EOF, '\n':
			return "", errors.New("string literal not terminated")
		case '\'':
			return sb.String(), nil
		case '\\':
			switch esc := l.scanner.Next(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteRune(esc)
			default:
				return "", errors.Errorf("unknown escape sequence %q", `\`+string(esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

// scanLiteralFunc scans literal like "datetime(2024-01-01)" or
// "dynamic({"a": [1, 2]})" into single token.
func (l *lexer) scanLiteralFunc(tok Token, tt TokenType) (Token, bool) {
	// Skip open paren.
	l.scanner.Next()

	var (
		sb    strings.Builder
		depth = 1
	)
scan:
	for {
		ch := l.scanner.Next()
		switch ch {
		case scanner.EOF:
			l.setError(tok.Pos, "%s literal not terminated", tok.Text)
			return tok, false
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				break scan
			}
		case '"', '\'':
			sb.WriteRune(ch)
			if err := l.copyQuoted(&sb, ch); err != nil {
				l.setError(tok.Pos, "%s", err)
				return tok, false
			}
			continue
		}
		sb.WriteRune(ch)
	}

	raw := strings.TrimSpace(sb.String())
	switch tt {
	case Dynamic:
	case Duration:
		if _, err := lexerql.ParseDuration(raw); err != nil {
			l.setError(tok.Pos, "%s", err)
			return tok, false
		}
	default:
		raw = trimQuotes(raw)
	}
	tok.Type = tt
	tok.Text = raw
	return tok, true
}

// copyQuoted copies quoted string body verbatim, including closing quote.
func (l *lexer) copyQuoted(sb *strings.Builder, quote rune) error {
	for {
		ch := l.scanner.Next()
		switch ch {
		case scanner.EOF:
			return errors.New("string literal not terminated")
		case '\\':
			sb.WriteRune(ch)
			ch = l.scanner.Next()
			if ch == scanner.EOF {
				return errors.New("string literal not terminated")
			}
			sb.WriteRune(ch)
			continue
		}
		sb.WriteRune(ch)
		if ch == quote {
			return nil
		}
	}
}

func trimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	switch q := s[0]; q {
	case '"', '\'':
		if s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

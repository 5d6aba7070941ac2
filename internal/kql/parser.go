package kql

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/qlast/internal/kql/lexer"
)

// Parse parses KQL query from string.
func Parse(input string) (*Query, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}

	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if t := p.next(); t.Type != lexer.EOF {
		return nil, p.unexpectedToken(t)
	}
	return q, nil
}

func newParser(input string) (parser, error) {
	tokens, err := lexer.Tokenize(input, lexer.TokenizeOptions{})
	if err != nil {
		return parser{}, errors.Wrap(err, "tokenize")
	}
	return parser{
		tokens: tokens,
	}, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) consume(tt lexer.TokenType) error {
	if t := p.next(); t.Type != tt {
		return errors.Wrapf(p.unexpectedToken(t), "expected %q", tt)
	}
	return nil
}

// consumeKeyword consumes identifier with given text, like "by".
func (p *parser) consumeKeyword(kw string) error {
	if t := p.next(); t.Type != lexer.Ident || t.Text != kw {
		return errors.Wrapf(p.unexpectedToken(t), "expected %q", kw)
	}
	return nil
}

func (p *parser) consumeText(expect lexer.TokenType) (string, error) {
	t := p.next()
	if t.Type != expect {
		return "", errorAt(t.Pos, "expected %q, got %q", expect, t.Type)
	}
	return t.Text, nil
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if t.Type != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *parser) peek() lexer.Token {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) lexer.Token {
	if len(p.tokens) <= p.pos+n {
		return p.eof()
	}
	return p.tokens[p.pos+n]
}

func (p *parser) eof() lexer.Token {
	t := lexer.Token{Type: lexer.EOF}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		t.Pos = last.Pos
		t.Pos.Offset += len(last.Text)
		t.Pos.Column += len(last.Text)
	}
	return t
}

func (p *parser) unexpectedToken(t lexer.Token) error {
	if t.Type == lexer.EOF {
		return errorAt(t.Pos, "unexpected EOF")
	}
	return errorAt(t.Pos, "unexpected token %q", t.Text)
}

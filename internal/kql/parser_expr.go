package kql

import (
	"github.com/go-faster/qlast/internal/kql/lexer"
)

func (p *parser) parseExpr() (Expr, error) {
	expr, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryExpr(expr, 0)
}

func (p *parser) parseExprList() (list []Expr, _ error) {
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)

		if t := p.peek(); t.Type != lexer.Comma {
			return list, nil
		}
		p.next()
	}
}

// peekPrecedence returns precedence of infix operator at current token.
func (p *parser) peekPrecedence() (int, bool) {
	switch t := p.peek(); t.Type {
	case lexer.In, lexer.NotIn, lexer.Between, lexer.NotBetween:
		return precedenceComparison, true
	default:
		op, ok := binaryOps[t.Type]
		if !ok {
			return 0, false
		}
		return op.Precedence(), true
	}
}

func (p *parser) parseBinaryExpr(left Expr, minPrecedence int) (Expr, error) {
	for {
		precedence, ok := p.peekPrecedence()
		if !ok || precedence < minPrecedence {
			return left, nil
		}

		opToken := p.next()
		switch opToken.Type {
		case lexer.In, lexer.NotIn:
			values, err := p.parseInValues()
			if err != nil {
				return nil, err
			}
			left = &InExpr{
				Left:    left,
				Negated: opToken.Type == lexer.NotIn,
				Values:  values,
			}
			continue
		case lexer.Between, lexer.NotBetween:
			low, high, err := p.parseRange()
			if err != nil {
				return nil, err
			}
			left = &BetweenExpr{
				Left:    left,
				Negated: opToken.Type == lexer.NotBetween,
				Low:     low,
				High:    high,
			}
			continue
		case lexer.Matches:
			if err := p.consumeKeyword("regex"); err != nil {
				return nil, err
			}
		}
		op := binaryOps[opToken.Type]

		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		for {
			rightPrecedence, ok := p.peekPrecedence()
			if !ok || rightPrecedence <= precedence {
				break
			}

			right, err = p.parseBinaryExpr(right, precedence+1)
			if err != nil {
				return nil, err
			}
		}

		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *parser) parseInValues() ([]Expr, error) {
	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}
	values, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *parser) parseRange() (low, high Expr, _ error) {
	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, nil, err
	}
	low, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if err := p.consume(lexer.DotDot); err != nil {
		return nil, nil, err
	}
	high, err = p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, nil, err
	}
	return low, high, nil
}

func (p *parser) parseUnaryExpr() (Expr, error) {
	switch t := p.peek(); t.Type {
	case lexer.Sub, lexer.Add:
		p.next()

		expr, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		op := OpNeg
		if t.Type == lexer.Add {
			op = OpPlus
		}
		return &UnaryExpr{Op: op, Expr: expr}, nil
	default:
		expr, err := p.parsePrimaryExpr()
		if err != nil {
			return nil, err
		}
		return p.parsePostfixExpr(expr)
	}
}

func (p *parser) parsePrimaryExpr() (Expr, error) {
	switch t := p.next(); t.Type {
	case lexer.OpenParen:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return &ParenExpr{Expr: expr}, nil
	case lexer.String,
		lexer.Integer,
		lexer.Number,
		lexer.Duration,
		lexer.DateTime,
		lexer.Guid,
		lexer.Dynamic,
		lexer.True,
		lexer.False,
		lexer.Null:
		return &Literal{Type: t.Type, Text: t.Text}, nil
	case lexer.Mul:
		return &StarExpr{}, nil
	case lexer.Ident:
		if p.peek().Type != lexer.OpenParen {
			return &NameRef{Name: t.Text}, nil
		}
		// Consume "(".
		p.next()

		call := &CallExpr{Func: t.Text}
		if p.peek().Type != lexer.CloseParen {
			args, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			call.Args = args
		}
		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return call, nil
	default:
		return nil, p.unexpectedToken(t)
	}
}

func (p *parser) parsePostfixExpr(expr Expr) (Expr, error) {
	for {
		switch t := p.peek(); t.Type {
		case lexer.Dot:
			p.next()

			member, err := p.consumeText(lexer.Ident)
			if err != nil {
				return nil, err
			}
			expr = &MemberExpr{Expr: expr, Member: member}
		case lexer.OpenBracket:
			p.next()

			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.consume(lexer.CloseBracket); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Expr: expr, Index: index}
		default:
			return expr, nil
		}
	}
}

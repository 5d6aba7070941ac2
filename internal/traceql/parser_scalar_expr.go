package traceql

import "github.com/go-faster/qlast/internal/traceql/lexer"

func (p *parser) parseScalarExpr() (ScalarExpr, error) {
	expr, err := p.parseScalarExpr1()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryScalarExpr(expr, 0)
}

func (p *parser) parseScalarExpr1() (ScalarExpr, error) {
	switch t := p.peek(); t.Type {
	case lexer.OpenParen:
		p.next()

		expr, err := p.parseScalarExpr()
		if err != nil {
			return nil, err
		}

		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return &ParenScalarExpr{Expr: expr}, nil
	case lexer.Integer,
		lexer.Number,
		lexer.Duration:
		return p.parseStatic()
	case lexer.Count,
		lexer.Max,
		lexer.Min,
		lexer.Avg,
		lexer.Sum:
		return p.parseAggregateScalarExpr()
	default:
		return nil, p.unexpectedToken(t)
	}
}

func (p *parser) parseAggregateScalarExpr() (expr *AggregateScalarExpr, _ error) {
	expr = new(AggregateScalarExpr)

	t := p.next()
	op, ok := aggregateOpByToken[t.Type]
	if !ok {
		return nil, p.unexpectedToken(t)
	}
	expr.Op = op

	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}

	if expr.Op != AggregateOpCount {
		pos := p.peek().Pos
		field, err := p.parseFieldExpr()
		if err != nil {
			return nil, err
		}
		if vt := field.ValueType(); !vt.IsNumeric() && vt != StaticAttribute {
			return nil, typeErrorf(pos, "aggregate %q expects a number, got %q", expr.Op, vt)
		}
		expr.Field = field
	}

	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *parser) parseBinaryScalarExpr(left ScalarExpr, minPrecedence int) (ScalarExpr, error) {
	for {
		op, ok := p.peekBinaryOp()
		if !ok || !op.IsArithmetic() || op.Precedence() < minPrecedence {
			return left, nil
		}
		// Consume op.
		p.next()

		right, err := p.parseScalarExpr1()
		if err != nil {
			return nil, err
		}

		for {
			rightOp, ok := p.peekBinaryOp()
			if !ok || !rightOp.IsArithmetic() || rightOp.Precedence() <= op.Precedence() {
				break
			}

			right, err = p.parseBinaryScalarExpr(right, op.Precedence()+1)
			if err != nil {
				return nil, err
			}
		}

		left = &BinaryScalarExpr{Left: left, Op: op, Right: right}
	}
}

package traceql

import "github.com/go-faster/qlast/internal/traceql/lexer"

func (p *parser) parsePipeline() (stages []PipelineStage, _ error) {
	for {
		stage, err := p.parsePipelineStage(len(stages) == 0)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)

		if t := p.peek(); t.Type != lexer.Pipe {
			return stages, nil
		}
		// Consume "|".
		p.next()
	}
}

func (p *parser) parsePipelineStage(first bool) (PipelineStage, error) {
	switch t := p.peek(); t.Type {
	case lexer.By:
		p.next()
		return p.parseGroupOperation()
	case lexer.Coalesce:
		if first {
			return nil, syntaxErrorf(t.Pos, "coalesce cannot be first operation")
		}
		p.next()
		return p.parseCoalesceOperation()
	case lexer.Select:
		p.next()
		return p.parseSelectOperation()
	}

	// Look through leading parens to choose between spanset expression and
	// scalar filter.
	n := 0
	for p.peekAt(n).Type == lexer.OpenParen {
		n++
	}
	switch t := p.peekAt(n); t.Type {
	case lexer.OpenBrace:
		return p.parseSpansetExpr()
	case lexer.Integer,
		lexer.Number,
		lexer.Duration,
		lexer.Count,
		lexer.Max,
		lexer.Min,
		lexer.Avg,
		lexer.Sum:
		return p.parseScalarFilter()
	default:
		return nil, p.unexpectedToken(t)
	}
}

func (p *parser) parseSpansetExpr() (SpansetExpr, error) {
	expr, err := p.parseSpansetExpr1()
	if err != nil {
		return nil, err
	}
	return p.parseBinarySpansetExpr(expr, 0)
}

func (p *parser) parseSpansetExpr1() (SpansetExpr, error) {
	switch t := p.next(); t.Type {
	case lexer.OpenParen:
		expr, err := p.parseSpansetExpr()
		if err != nil {
			return nil, err
		}

		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return &ParenSpansetExpr{Expr: expr}, nil
	case lexer.OpenBrace:
		var filter SpansetFilter
		if t2 := p.peek(); t2.Type != lexer.CloseBrace {
			fieldExpr, err := p.parseFieldExpr()
			if err != nil {
				return nil, err
			}
			if vt := fieldExpr.ValueType(); vt != StaticBool && vt != StaticAttribute {
				return nil, typeErrorf(t2.Pos, "filter expression must evaluate to %q, got %q", StaticBool, vt)
			}
			filter.Expr = fieldExpr
		} else {
			s := &Static{}
			s.SetBool(true)
			filter.Expr = s
		}

		if err := p.consume(lexer.CloseBrace); err != nil {
			return nil, err
		}
		return &filter, nil
	default:
		return nil, p.unexpectedToken(t)
	}
}

func (p *parser) parseBinarySpansetExpr(left SpansetExpr, minPrecedence int) (SpansetExpr, error) {
	for {
		op, ok := p.peekSpansetOp()
		if !ok || op.Precedence() < minPrecedence {
			return left, nil
		}
		// Consume op.
		p.next()

		right, err := p.parseSpansetExpr1()
		if err != nil {
			return nil, err
		}

		for {
			rightOp, ok := p.peekSpansetOp()
			if !ok || rightOp.Precedence() <= op.Precedence() {
				break
			}

			right, err = p.parseBinarySpansetExpr(right, op.Precedence()+1)
			if err != nil {
				return nil, err
			}
		}

		left = &BinarySpansetExpr{Left: left, Op: op, Right: right}
	}
}

func (p *parser) peekSpansetOp() (SpansetOp, bool) {
	op, ok := spansetOpByToken[p.peek().Type]
	return op, ok
}

func (p *parser) parseScalarFilter() (*ScalarFilter, error) {
	left, err := p.parseScalarExpr()
	if err != nil {
		return nil, err
	}

	t := p.next()
	op, ok := binaryOpByToken[t.Type]
	if !ok || !op.IsComparison() || op.IsRegex() {
		return nil, p.unexpectedToken(t)
	}

	right, err := p.parseScalarExpr()
	if err != nil {
		return nil, err
	}

	return &ScalarFilter{Left: left, Op: op, Right: right}, nil
}

func (p *parser) parseGroupOperation() (*GroupOperation, error) {
	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}

	field, err := p.parseFieldExpr()
	if err != nil {
		return nil, err
	}

	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}

	return &GroupOperation{By: field}, nil
}

func (p *parser) parseCoalesceOperation() (*CoalesceOperation, error) {
	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}

	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}

	return &CoalesceOperation{}, nil
}

func (p *parser) parseSelectOperation() (s *SelectOperation, _ error) {
	s = new(SelectOperation)

	if err := p.consume(lexer.OpenParen); err != nil {
		return nil, err
	}

	for {
		field, err := p.parseFieldExpr()
		if err != nil {
			return nil, err
		}
		s.Args = append(s.Args, field)

		if t := p.peek(); t.Type != lexer.Comma {
			break
		}
		// Consume comma.
		p.next()
	}

	if err := p.consume(lexer.CloseParen); err != nil {
		return nil, err
	}

	return s, nil
}

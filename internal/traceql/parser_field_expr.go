package traceql

import (
	"strings"
	"text/scanner"

	"go.opentelemetry.io/collector/pdata/ptrace"

	"github.com/go-faster/qlast/internal/traceql/lexer"
)

func (p *parser) parseFieldExpr() (FieldExpr, error) {
	expr, err := p.parseFieldExpr1()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryFieldExpr(expr, 0)
}

func (p *parser) parseFieldExpr1() (FieldExpr, error) {
	switch t := p.peek(); t.Type {
	case lexer.OpenParen:
		p.next()

		expr, err := p.parseFieldExpr()
		if err != nil {
			return nil, err
		}

		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		return &ParenFieldExpr{Expr: expr}, nil
	case lexer.Not, lexer.Sub:
		p.next()

		pos := p.peek().Pos
		expr, err := p.parseFieldExpr1()
		if err != nil {
			return nil, err
		}

		op := unaryOpByToken[t.Type]
		if vt := expr.ValueType(); !op.CheckType(vt) {
			return nil, typeErrorf(pos, "unary operator %q not defined on %q", op, vt)
		}
		return &UnaryFieldExpr{
			Expr: expr,
			Op:   op,
		}, nil
	case lexer.String,
		lexer.Integer,
		lexer.Number,
		lexer.True,
		lexer.False,
		lexer.Nil,
		lexer.Duration,
		lexer.StatusOk,
		lexer.StatusError,
		lexer.StatusUnset,
		lexer.KindUnspecified,
		lexer.KindInternal,
		lexer.KindServer,
		lexer.KindClient,
		lexer.KindProducer,
		lexer.KindConsumer:
		return p.parseStatic()
	case lexer.Ident:
		return p.parseAttribute()
	default:
		if _, ok := intrinsics[t.Type]; ok {
			return p.parseAttribute()
		}
		return nil, p.unexpectedToken(t)
	}
}

func (p *parser) parseBinaryFieldExpr(left FieldExpr, minPrecedence int) (FieldExpr, error) {
	for {
		op, ok := p.peekBinaryOp()
		if !ok || op.Precedence() < minPrecedence {
			return left, nil
		}
		// Consume op and get op token position.
		opPos := p.next().Pos

		rightPos := p.peek().Pos
		right, err := p.parseFieldExpr1()
		if err != nil {
			return nil, err
		}

		for {
			rightOp, ok := p.peekBinaryOp()
			if !ok || rightOp.Precedence() <= op.Precedence() {
				break
			}

			right, err = p.parseBinaryFieldExpr(right, op.Precedence()+1)
			if err != nil {
				return nil, err
			}
		}

		if op.IsRegex() {
			if s, ok := right.(*Static); !ok || s.Type != StaticString {
				return nil, typeErrorf(rightPos, "regexp pattern should be a static string, got %q", right.ValueType())
			}
		}
		if err := checkBinaryExpr(left, op, opPos, right); err != nil {
			return nil, err
		}
		left = &BinaryFieldExpr{Left: left, Op: op, Right: right}
	}
}

func checkBinaryExpr(left FieldExpr, op BinaryOp, opPos scanner.Position, right FieldExpr) error {
	lt, rt := left.ValueType(), right.ValueType()
	if !lt.CheckOperand(rt) {
		return typeErrorf(opPos, "operand types mismatch: %q and %q", lt, rt)
	}
	for _, t := range [2]StaticType{lt, rt} {
		if !op.CheckType(t) {
			return typeErrorf(opPos, "can't apply %q to %q", op, t)
		}
	}
	return nil
}

func (p *parser) peekBinaryOp() (BinaryOp, bool) {
	op, ok := binaryOpByToken[p.peek().Type]
	return op, ok
}

func (p *parser) parseStatic() (s *Static, _ error) {
	s = new(Static)
	switch t := p.next(); t.Type {
	case lexer.String:
		s.SetString(t.Text)
	case lexer.Integer:
		p.unread()
		v, err := p.parseInteger()
		if err != nil {
			return s, &SyntaxError{Pos: t.Pos, Err: err}
		}
		s.SetInteger(v)
	case lexer.Number:
		p.unread()
		v, err := p.parseNumber()
		if err != nil {
			return s, &SyntaxError{Pos: t.Pos, Err: err}
		}
		s.SetNumber(v)
	case lexer.True:
		s.SetBool(true)
	case lexer.False:
		s.SetBool(false)
	case lexer.Nil:
		s.SetNil()
	case lexer.Duration:
		p.unread()
		v, text, err := p.parseDuration()
		if err != nil {
			return s, &SyntaxError{Pos: t.Pos, Err: err}
		}
		s.SetDuration(v, text)
	case lexer.StatusOk:
		s.SetSpanStatus(ptrace.StatusCodeOk)
	case lexer.StatusError:
		s.SetSpanStatus(ptrace.StatusCodeError)
	case lexer.StatusUnset:
		s.SetSpanStatus(ptrace.StatusCodeUnset)
	case lexer.KindUnspecified:
		s.SetSpanKind(ptrace.SpanKindUnspecified)
	case lexer.KindInternal:
		s.SetSpanKind(ptrace.SpanKindInternal)
	case lexer.KindServer:
		s.SetSpanKind(ptrace.SpanKindServer)
	case lexer.KindClient:
		s.SetSpanKind(ptrace.SpanKindClient)
	case lexer.KindProducer:
		s.SetSpanKind(ptrace.SpanKindProducer)
	case lexer.KindConsumer:
		s.SetSpanKind(ptrace.SpanKindConsumer)
	default:
		return s, p.unexpectedToken(t)
	}
	return s, nil
}

func (p *parser) parseAttribute() (a *Attribute, _ error) {
	a = new(Attribute)

	t := p.next()
	if prop, ok := intrinsics[t.Type]; ok {
		a.Prop = prop
		return a, nil
	}
	if t.Type != lexer.Ident {
		return a, p.unexpectedToken(t)
	}

	attr := t.Text
	attr, a.Parent = strings.CutPrefix(attr, "parent.")
	switch {
	case strings.HasPrefix(attr, "."):
		a.Name = attr[1:]
		a.Scope = ScopeNone
	case strings.HasPrefix(attr, "span."):
		a.Name = strings.TrimPrefix(attr, "span.")
		a.Scope = ScopeSpan
	case strings.HasPrefix(attr, "resource."):
		a.Name = strings.TrimPrefix(attr, "resource.")
		a.Scope = ScopeResource
	default:
		a.Name = attr
	}
	if a.Name == "" {
		return a, syntaxErrorf(t.Pos, "attribute name is empty in %q", t.Text)
	}
	return a, nil
}

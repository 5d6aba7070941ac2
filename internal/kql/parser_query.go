package kql

import "github.com/go-faster/qlast/internal/kql/lexer"

var operatorNames = map[string]struct{}{
	"where":     {},
	"filter":    {},
	"project":   {},
	"select":    {},
	"extend":    {},
	"take":      {},
	"limit":     {},
	"sort":      {},
	"order":     {},
	"summarize": {},
	"join":      {},
	"count":     {},
	"distinct":  {},
}

func (p *parser) parseQuery() (*Query, error) {
	q := new(Query)

	switch t := p.peek(); t.Type {
	case lexer.Pipe:
		// Pipeline without source.
	case lexer.Ident:
		if p.startsOperator() {
			op, err := p.parseOperator()
			if err != nil {
				return nil, err
			}
			q.Operators = append(q.Operators, op)
			break
		}
		p.next()
		q.Source = t.Text
	default:
		return nil, p.unexpectedToken(t)
	}

	for p.peek().Type == lexer.Pipe {
		// Consume "|".
		p.next()

		op, err := p.parseOperator()
		if err != nil {
			return nil, err
		}
		q.Operators = append(q.Operators, op)
	}
	return q, nil
}

// startsOperator whether current identifier is an operator name, not
// a table name.
func (p *parser) startsOperator() bool {
	if _, ok := operatorNames[p.peek().Text]; !ok {
		return false
	}
	switch p.peekAt(1).Type {
	case lexer.Pipe, lexer.EOF, lexer.CloseParen:
		return false
	default:
		return true
	}
}

func (p *parser) parseOperator() (Operator, error) {
	t := p.next()
	if t.Type != lexer.Ident {
		return nil, p.unexpectedToken(t)
	}

	switch t.Text {
	case "where", "filter":
		pred, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &WhereOperator{Keyword: t.Text, Predicate: pred}, nil
	case "project", "select":
		columns, err := p.parseColumns()
		if err != nil {
			return nil, err
		}
		return &ProjectOperator{Keyword: t.Text, Columns: columns}, nil
	case "extend":
		columns, err := p.parseColumns()
		if err != nil {
			return nil, err
		}
		return &ExtendOperator{Columns: columns}, nil
	case "take", "limit":
		count, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &TakeOperator{Keyword: t.Text, Count: count}, nil
	case "sort", "order":
		if err := p.consumeKeyword("by"); err != nil {
			return nil, err
		}
		keys, err := p.parseSortKeys()
		if err != nil {
			return nil, err
		}
		return &SortOperator{Keyword: t.Text, By: keys}, nil
	case "summarize":
		return p.parseSummarize()
	case "join":
		return p.parseJoin()
	case "count":
		return &CountOperator{}, nil
	case "distinct":
		columns, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &DistinctOperator{Columns: columns}, nil
	default:
		return nil, errorAt(t.Pos, "unknown operator %q", t.Text)
	}
}

func (p *parser) parseColumns() (columns []Column, _ error) {
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		if t := p.peek(); t.Type != lexer.Comma {
			return columns, nil
		}
		p.next()
	}
}

func (p *parser) parseColumn() (col Column, _ error) {
	if p.peek().Type == lexer.Ident && p.peekAt(1).Type == lexer.Assign {
		col.Name = p.next().Text
		// Consume "=".
		p.next()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return col, err
	}
	col.Expr = expr
	return col, nil
}

func (p *parser) parseSortKeys() (keys []SortKey, _ error) {
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		key := SortKey{Expr: expr}
		if t := p.peek(); t.Type == lexer.Ident && (t.Text == "asc" || t.Text == "desc") {
			p.next()
			key.Order = t.Text
		}
		keys = append(keys, key)

		if t := p.peek(); t.Type != lexer.Comma {
			return keys, nil
		}
		p.next()
	}
}

func (p *parser) parseSummarize() (*SummarizeOperator, error) {
	op := new(SummarizeOperator)
	if t := p.peek(); t.Type != lexer.Ident || t.Text != "by" {
		aggregates, err := p.parseColumns()
		if err != nil {
			return nil, err
		}
		op.Aggregates = aggregates
	}

	if t := p.peek(); t.Type == lexer.Ident && t.Text == "by" {
		p.next()

		by, err := p.parseColumns()
		if err != nil {
			return nil, err
		}
		op.By = by
	}
	return op, nil
}

func (p *parser) parseJoin() (*JoinOperator, error) {
	op := new(JoinOperator)
	if t := p.peek(); t.Type == lexer.Ident && t.Text == "kind" {
		p.next()

		if err := p.consume(lexer.Assign); err != nil {
			return nil, err
		}
		kind, err := p.consumeText(lexer.Ident)
		if err != nil {
			return nil, err
		}
		op.Kind = kind
	}

	switch t := p.next(); t.Type {
	case lexer.OpenParen:
		right, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.CloseParen); err != nil {
			return nil, err
		}
		op.Right = right
	case lexer.Ident:
		op.Right = &Query{Source: t.Text}
	default:
		return nil, p.unexpectedToken(t)
	}

	if err := p.consumeKeyword("on"); err != nil {
		return nil, err
	}
	on, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	op.On = on
	return op, nil
}

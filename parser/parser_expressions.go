package parser

import "github.com/mylang/mylang/lang"

// parseExpression is the grammar's entry point: a precedence-climbing
// chain where or binds loosest and postfix (call/field access) binds
// tightest.
func (p *Parser) parseExpression() (lang.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (lang.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Kind == lang.TokenOr {
		tok := p.cur.Next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &lang.Or{Position: tok.Pos, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (lang.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Kind == lang.TokenAnd {
		tok := p.cur.Next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &lang.And{Position: tok.Pos, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (lang.Expression, error) {
	if p.cur.Current().Kind == lang.TokenNot {
		tok := p.cur.Next()
		target, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &lang.Not{Position: tok.Pos, Target: target}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[lang.TokenKind]lang.BinaryOp{
	lang.TokenEq:          lang.OpEq,
	lang.TokenNotEq:       lang.OpNotEq,
	lang.TokenLessOrEq:    lang.OpLessEq,
	lang.TokenGreaterOrEq: lang.OpGreaterEq,
}

func (p *Parser) parseComparison() (lang.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := comparisonOps[p.cur.Current().Kind]; ok {
		tok := p.cur.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &lang.Comparison{Position: tok.Pos, Op: op, Left: left, Right: right}, nil
	}
	if p.isChar('<') {
		tok := p.cur.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &lang.Comparison{Position: tok.Pos, Op: lang.OpLess, Left: left, Right: right}, nil
	}
	if p.isChar('>') {
		tok := p.cur.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &lang.Comparison{Position: tok.Pos, Op: lang.OpGreater, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdditive() (lang.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		ch := p.cur.Current().Ch
		tok := p.cur.Next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		op := lang.OpAdd
		if ch == '-' {
			op = lang.OpSub
		}
		left = &lang.Arithmetic{Position: tok.Pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (lang.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		ch := p.cur.Current().Ch
		tok := p.cur.Next()
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		op := lang.OpMul
		if ch == '/' {
			op = lang.OpDiv
		}
		left = &lang.Arithmetic{Position: tok.Pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parsePostfix handles chained .field and .method(args) access off a
// primary expression.
func (p *Parser) parsePostfix() (lang.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.isChar('.') {
		dot := p.cur.Next()
		nameTok, err := p.expect(lang.TokenId)
		if err != nil {
			return nil, err
		}
		if p.isChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &lang.MethodCall{Position: dot.Pos, Receiver: expr, Method: nameTok.Str, Args: args}
		} else {
			expr = &lang.FieldAccess{Position: dot.Pos, Receiver: expr, Field: nameTok.Str}
		}
	}
	return expr, nil
}

// parseArgs parses a parenthesized, comma-separated argument list. The
// opening '(' must be the current token.
func (p *Parser) parseArgs() ([]lang.Expression, error) {
	if _, err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []lang.Expression
	for !p.isChar(')') {
		if len(args) > 0 {
			if _, err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (lang.Expression, error) {
	tok := p.cur.Current()
	switch tok.Kind {
	case lang.TokenNumber:
		p.cur.Next()
		return &lang.IntLiteral{Position: tok.Pos, Val: tok.Num}, nil
	case lang.TokenString:
		p.cur.Next()
		return &lang.StringLiteral{Position: tok.Pos, Val: tok.Str}, nil
	case lang.TokenTrue:
		p.cur.Next()
		return &lang.BoolLiteral{Position: tok.Pos, Val: true}, nil
	case lang.TokenFalse:
		p.cur.Next()
		return &lang.BoolLiteral{Position: tok.Pos, Val: false}, nil
	case lang.TokenNone:
		p.cur.Next()
		return &lang.NoneLiteral{Position: tok.Pos}, nil
	case lang.TokenId:
		p.cur.Next()
		if p.isChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &lang.NewInstance{Position: tok.Pos, ClassName: tok.Str, Args: args}, nil
		}
		return &lang.VariableValue{Position: tok.Pos, Name: tok.Str}, nil
	default:
		if p.isChar('(') {
			p.cur.Next()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
		return nil, parseError(tok.Pos, "unexpected token %s", tok)
	}
}

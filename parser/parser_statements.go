package parser

import "github.com/mylang/mylang/lang"

// parseStatement parses one top-level or block-level statement.
func (p *Parser) parseStatement() (lang.Statement, error) {
	switch p.cur.Current().Kind {
	case lang.TokenClass:
		return p.parseClassDefinition()
	case lang.TokenIf:
		return p.parseIfElse()
	case lang.TokenReturn:
		return p.parseReturn()
	case lang.TokenPrint:
		return p.parsePrint()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseClassDefinition() (lang.Statement, error) {
	tok, err := p.expect(lang.TokenClass)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lang.TokenId)
	if err != nil {
		return nil, err
	}
	var parent string
	if p.isChar('(') {
		p.cur.Next()
		parentTok, err := p.expect(lang.TokenId)
		if err != nil {
			return nil, err
		}
		parent = parentTok.Str
		if _, err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(lang.TokenNewline); err != nil {
		return nil, err
	}
	if _, err := p.expect(lang.TokenIndent); err != nil {
		return nil, err
	}
	var methods []*lang.MethodDecl
	for p.cur.Current().Kind != lang.TokenDedent {
		method, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
		p.skipNewlines()
	}
	if _, err := p.expect(lang.TokenDedent); err != nil {
		return nil, err
	}
	return &lang.ClassDefinition{Position: tok.Pos, Name: name.Str, Parent: parent, Methods: methods}, nil
}

func (p *Parser) parseMethodDecl() (*lang.MethodDecl, error) {
	tok, err := p.expect(lang.TokenDef)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lang.TokenId)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	for !p.isChar(')') {
		if len(params) > 0 {
			if _, err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		paramTok, err := p.expect(lang.TokenId)
		if err != nil {
			return nil, err
		}
		params = append(params, paramTok.Str)
	}
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	// self is bound out-of-band by invokeMethod, not threaded through the
	// caller-supplied argument list, so it is dropped from Params here.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return &lang.MethodDecl{
		Position: tok.Pos,
		Name:     name.Str,
		Params:   params,
		Body:     &lang.MethodBody{Position: body.Position, Statements: body.Statements},
	}, nil
}

func (p *Parser) parseIfElse() (lang.Statement, error) {
	tok, err := p.expect(lang.TokenIf)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *lang.Compound
	if p.cur.Current().Kind == lang.TokenElse {
		p.cur.Next()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &lang.IfElse{Position: tok.Pos, Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseReturn() (lang.Statement, error) {
	tok, err := p.expect(lang.TokenReturn)
	if err != nil {
		return nil, err
	}
	if p.cur.Current().Kind == lang.TokenNewline {
		p.cur.Next()
		return &lang.Return{Position: tok.Pos}, nil
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lang.TokenNewline); err != nil {
		return nil, err
	}
	return &lang.Return{Position: tok.Pos, Value: val}, nil
}

func (p *Parser) parsePrint() (lang.Statement, error) {
	tok, err := p.expect(lang.TokenPrint)
	if err != nil {
		return nil, err
	}
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
		// print coerces every argument to a string before joining them, so
		// each one is wrapped in the AST's own stringify node rather than
		// left for execPrint to coerce by hand.
		args = append(args, &lang.Stringify{Position: arg.Pos(), Target: arg})
	}
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if _, err := p.expect(lang.TokenNewline); err != nil {
		return nil, err
	}
	return &lang.Print{Position: tok.Pos, Args: args}, nil
}

// parseSimpleStatement handles assignment, field assignment, and bare
// expression statements — the three shapes that share "parse an expression,
// then see what follows" as their dispatch rule.
func (p *Parser) parseSimpleStatement() (lang.Statement, error) {
	pos := p.cur.Current().Pos
	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.isChar('=') {
		p.cur.Next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lang.TokenNewline); err != nil {
			return nil, err
		}
		switch lhs := target.(type) {
		case *lang.VariableValue:
			return &lang.Assignment{Position: pos, Name: lhs.Name, Value: value}, nil
		case *lang.FieldAccess:
			return &lang.FieldAssignment{Position: pos, Receiver: lhs.Receiver, Field: lhs.Field, Value: value}, nil
		default:
			return nil, parseError(pos, "left-hand side of assignment is not assignable")
		}
	}
	if _, err := p.expect(lang.TokenNewline); err != nil {
		return nil, err
	}
	return &lang.ExprStmt{Position: pos, Target: target}, nil
}

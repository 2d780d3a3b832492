// Package parser turns a MyLang token stream into the lang package's AST.
// It is an external collaborator to the core language: the grammar below
// is intentionally small, built just far enough to drive the CLI and the
// scenario tests end to end.
package parser

import (
	"fmt"

	"github.com/mylang/mylang/lang"
)

// ParseError reports a malformed token sequence.
type ParseError struct {
	Msg string
	Pos lang.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

func parseError(pos lang.Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Parser walks a lang.Cursor and builds AST nodes by recursive descent,
// split by grammar area across the files in this package.
type Parser struct {
	cur *lang.Cursor
}

// New wraps a token stream (as produced by lang.Lex) for parsing.
func New(tokens []lang.Token) *Parser {
	return &Parser{cur: lang.NewCursor(tokens)}
}

// Parse lexes and parses source into a top-level program.
func Parse(source string) (*lang.Compound, error) {
	tokens, err := lang.Lex(source)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

// ParseProgram parses the whole token stream as a sequence of top-level
// statements.
func (p *Parser) ParseProgram() (*lang.Compound, error) {
	pos := p.cur.Current().Pos
	var stmts []lang.Statement
	p.skipNewlines()
	for !p.cur.AtEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return &lang.Compound{Position: pos, Statements: stmts}, nil
}

func (p *Parser) skipNewlines() {
	for p.cur.Current().Kind == lang.TokenNewline {
		p.cur.Next()
	}
}

func (p *Parser) isChar(c byte) bool {
	t := p.cur.Current()
	return t.Kind == lang.TokenChar && t.Ch == c
}

func (p *Parser) expectChar(c byte) (lang.Position, error) {
	t := p.cur.Current()
	if !p.isChar(c) {
		return t.Pos, parseError(t.Pos, "expected %q, got %s", string(c), t)
	}
	p.cur.Next()
	return t.Pos, nil
}

func (p *Parser) expect(kind lang.TokenKind) (lang.Token, error) {
	t := p.cur.Current()
	if t.Kind != kind {
		return t, parseError(t.Pos, "expected %s, got %s", kind, t)
	}
	p.cur.Next()
	return t, nil
}

// parseBlock parses ':' NEWLINE INDENT statement+ DEDENT, the shape every
// compound statement's body shares.
func (p *Parser) parseBlock() (*lang.Compound, error) {
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(lang.TokenNewline); err != nil {
		return nil, err
	}
	pos := p.cur.Current().Pos
	if _, err := p.expect(lang.TokenIndent); err != nil {
		return nil, err
	}
	var stmts []lang.Statement
	for p.cur.Current().Kind != lang.TokenDedent {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(lang.TokenDedent); err != nil {
		return nil, err
	}
	return &lang.Compound{Position: pos, Statements: stmts}, nil
}

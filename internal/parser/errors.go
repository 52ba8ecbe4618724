package parser

import (
	"github.com/gxlang/gxc/internal/diagnostic"
	"github.com/gxlang/gxc/internal/lexer"
)

// syncTokens are tokens the parser can synchronize to after an error
var syncTokens = map[lexer.TokenType]bool{
	lexer.INCLUDE:   true,
	lexer.STRUCT:    true,
	lexer.TYPEDEF:   true,
	lexer.NATIVE:    true,
	lexer.CONST:     true,
	lexer.STATIC:    true,
	lexer.IF:        true,
	lexer.WHILE:     true,
	lexer.FOR:       true,
	lexer.RETURN:    true,
	lexer.BREAK:     true,
	lexer.CONTINUE:  true,
	lexer.RBRACE:    true,
	lexer.SEMICOLON: true,
	lexer.EOF:       true,
}

// Parser holds the parser state
type Parser struct {
	tokens []lexer.Token
	pos    int
	diags  *diagnostic.Diagnostics

	// typeNames tracks names usable as declaration types: the builtin
	// primitives and handles, plus struct and typedef names seen so far.
	typeNames map[string]bool
}

// current returns the current token
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without consuming
func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos+1]
}

// advance moves to the next token and returns the consumed token
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches the expected type,
// otherwise reports an error
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	tok := p.current()
	if tok.Type != tt {
		p.diags.Errorf(diagnostic.SyntaxError, tok.Line, tok.Column,
			"expected %s, got %s", tt, tok.Type)
		return tok
	}
	return p.advance()
}

// check returns true if the current token is of the given type
func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// match consumes the current token if it matches, returns true if consumed
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// synchronize skips tokens until a sync point is found
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.current().Type == lexer.SEMICOLON {
			p.advance() // consume the semicolon and continue
			return
		}
		if syncTokens[p.current().Type] {
			return
		}
		p.advance()
	}
}

package parser

import (
	"strconv"

	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/diagnostic"
	"github.com/gxlang/gxc/internal/lexer"
)

// builtinTypeNames are the type names every script starts with: the
// primitives and the opaque handle types.
var builtinTypeNames = []string{
	"void", "int", "fixed", "bool", "string", "text", "byte",
	"abilcmd", "actor", "actorscope", "aifilter", "bank", "bitmask",
	"camerainfo", "color", "datetime", "doodad", "effecthistory",
	"generichandle", "marker", "order", "playergroup", "point", "region",
	"revealer", "sound", "soundlink", "timer", "transmissionsource",
	"trigger", "unit", "unitfilter", "unitgroup", "unitref", "wave",
	"waveinfo", "wavetarget",
}

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	tokens := l.Tokenize()

	typeNames := make(map[string]bool, len(builtinTypeNames))
	for _, name := range builtinTypeNames {
		typeNames[name] = true
	}

	return &Parser{
		tokens:    tokens,
		pos:       0,
		diags:     diagnostic.New(),
		typeNames: typeNames,
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Parse parses the token stream into a Program AST
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.check(lexer.EOF) {
		decl := p.parseDeclaration()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog
}

// parseDeclaration parses one top-level declaration
func (p *Parser) parseDeclaration() ast.Declaration {
	switch p.current().Type {
	case lexer.INCLUDE:
		return p.parseIncludeDecl()
	case lexer.STRUCT:
		return p.parseStructDecl()
	case lexer.TYPEDEF:
		return p.parseTypedefDecl()
	case lexer.NATIVE:
		return p.parseNativeDecl()
	case lexer.CONST, lexer.STATIC:
		return p.parseVarDecl()
	case lexer.IDENT:
		return p.parseFunctionOrVarDecl()
	default:
		p.diags.Errorf(diagnostic.SyntaxError, p.current().Line, p.current().Column,
			"unexpected token %s at top level", p.current().Type)
		startPos := p.pos
		p.synchronize()
		if p.pos == startPos {
			p.advance() // ensure forward progress to avoid infinite loop
		}
		return nil
	}
}

// parseIncludeDecl parses: include "path";
func (p *Parser) parseIncludeDecl() *ast.IncludeDecl {
	tok := p.expect(lexer.INCLUDE)
	pathTok := p.expect(lexer.STRING_LIT)
	p.expect(lexer.SEMICOLON)

	return &ast.IncludeDecl{
		Path:   pathTok.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseStructDecl parses: struct <name> { <type> <name>; ... };
func (p *Parser) parseStructDecl() *ast.StructDecl {
	tok := p.expect(lexer.STRUCT)
	name := p.expect(lexer.IDENT)
	p.typeNames[name.Literal] = true
	p.expect(lexer.LBRACE)

	decl := &ast.StructDecl{
		Name:   name.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}

	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		startPos := p.pos
		fieldType := p.parseTypeRef()
		fieldName := p.expect(lexer.IDENT)
		p.expect(lexer.SEMICOLON)

		if fieldName.Type == lexer.IDENT {
			decl.Fields = append(decl.Fields, &ast.StructField{
				Type:   fieldType,
				Name:   fieldName.Literal,
				Line:   fieldName.Line,
				Column: fieldName.Column,
			})
		}
		if p.pos == startPos {
			p.synchronize()
			if p.pos == startPos {
				p.advance() // ensure forward progress to avoid infinite loop
			}
		}
	}
	p.expect(lexer.RBRACE)
	p.expect(lexer.SEMICOLON)
	return decl
}

// parseTypedefDecl parses: typedef <type> <name>;
func (p *Parser) parseTypedefDecl() *ast.TypedefDecl {
	tok := p.expect(lexer.TYPEDEF)
	typ := p.parseTypeRef()
	name := p.expect(lexer.IDENT)
	p.expect(lexer.SEMICOLON)
	p.typeNames[name.Literal] = true

	return &ast.TypedefDecl{
		Type:   typ,
		Name:   name.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseNativeDecl parses: native <type> <name>(<params>);
func (p *Parser) parseNativeDecl() *ast.NativeDecl {
	tok := p.expect(lexer.NATIVE)
	ret := p.parseTypeRef()
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LPAREN)
	params := p.parseParamList()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)

	return &ast.NativeDecl{
		Return: ret,
		Name:   name.Literal,
		Params: params,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseVarDecl parses: [const|static] <type> <name> [= <expr>];
func (p *Parser) parseVarDecl() *ast.VarDecl {
	tok := p.current()
	isConst := p.match(lexer.CONST)
	isStatic := false
	if !isConst {
		isStatic = p.match(lexer.STATIC)
	}

	typ := p.parseTypeRef()
	name := p.expect(lexer.IDENT)

	var init ast.Expression
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	return &ast.VarDecl{
		Const:  isConst,
		Static: isStatic,
		Type:   typ,
		Name:   name.Literal,
		Init:   init,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseFunctionOrVarDecl disambiguates a top-level item starting with a
// type name: a '(' after the declared name means a function.
func (p *Parser) parseFunctionOrVarDecl() ast.Declaration {
	tok := p.current()
	typ := p.parseTypeRef()
	name := p.expect(lexer.IDENT)

	if p.check(lexer.LPAREN) {
		p.advance()
		params := p.parseParamList()
		p.expect(lexer.RPAREN)

		fn := &ast.FunctionDecl{
			Return: typ,
			Name:   name.Literal,
			Params: params,
			Line:   tok.Line,
			Column: tok.Column,
		}
		if p.match(lexer.SEMICOLON) {
			return fn // prototype
		}
		fn.Body = p.parseBlock()
		return fn
	}

	var init ast.Expression
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	return &ast.VarDecl{
		Type:   typ,
		Name:   name.Literal,
		Init:   init,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseParamList parses a comma-separated list of parameters
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.check(lexer.RPAREN) {
		return params
	}

	params = append(params, p.parseParam())
	for p.match(lexer.COMMA) {
		params = append(params, p.parseParam())
	}
	return params
}

// parseParam parses: <type> <name>
func (p *Parser) parseParam() *ast.Param {
	paramType := p.parseTypeRef()
	name := p.expect(lexer.IDENT)
	return &ast.Param{
		Type:   paramType,
		Name:   name.Literal,
		Line:   name.Line,
		Column: name.Column,
	}
}

// parseTypeRef parses a type reference: <name> followed by optional array
// dimensions, int[4] or fixed[2][3]. Dimension expressions are folded by
// the checker.
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.current()
	if tok.Type != lexer.IDENT {
		p.diags.Errorf(diagnostic.SyntaxError, tok.Line, tok.Column,
			"expected type name, got %s", tok.Type)
		return &ast.TypeRef{Name: "<error>", Line: tok.Line, Column: tok.Column}
	}
	p.advance()

	ref := &ast.TypeRef{
		Name:   tok.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
	for p.check(lexer.LBRACKET) {
		p.advance()
		ref.Dims = append(ref.Dims, p.parseExpression())
		p.expect(lexer.RBRACKET)
	}
	return ref
}

// parseBlock parses: { statement* }
func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(lexer.LBRACE)
	block := &ast.Block{
		Line:   tok.Line,
		Column: tok.Column,
	}
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		startPos := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.pos == startPos {
			p.advance() // ensure forward progress to avoid infinite loop
		}
	}
	p.expect(lexer.RBRACE)
	return block
}

// parseBlockOrStmt parses a braced block, or wraps a single statement
func (p *Parser) parseBlockOrStmt() *ast.Block {
	if p.check(lexer.LBRACE) {
		return p.parseBlock()
	}
	tok := p.current()
	block := &ast.Block{Line: tok.Line, Column: tok.Column}
	stmt := p.parseStatement()
	if stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

// parseStatement parses a statement
func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Type {
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.CONST, lexer.STATIC:
		return p.parseVarDecl()
	case lexer.IDENT:
		if p.isLocalDecl() {
			return p.parseVarDecl()
		}
		return p.parseExprStmtOrAssign()
	default:
		return p.parseExprStmtOrAssign()
	}
}

// isLocalDecl reports whether the statement at the current position is a
// local variable declaration. A known type name starts one, and so does
// any identifier directly followed by another identifier.
func (p *Parser) isLocalDecl() bool {
	if p.typeNames[p.current().Literal] {
		return true
	}
	return p.peek().Type == lexer.IDENT
}

// parseReturnStmt parses: return [expr];
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.expect(lexer.RETURN)
	var value ast.Expression
	if !p.check(lexer.SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	return &ast.ReturnStmt{
		Value:  value,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseIfStmt parses: if (<expr>) <block> [else <block>|<if>]
func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	condition := p.parseExpression()
	p.expect(lexer.RPAREN)
	then := p.parseBlockOrStmt()

	var elseStmt ast.Statement
	if p.match(lexer.ELSE) {
		if p.check(lexer.IF) {
			elseStmt = p.parseIfStmt()
		} else {
			elseStmt = p.parseBlockOrStmt()
		}
	}

	return &ast.IfStmt{
		Condition: condition,
		Then:      then,
		Else:      elseStmt,
		Line:      tok.Line,
		Column:    tok.Column,
	}
}

// parseWhileStmt parses: while (<expr>) <block>
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	condition := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseBlockOrStmt()

	return &ast.WhileStmt{
		Condition: condition,
		Body:      body,
		Line:      tok.Line,
		Column:    tok.Column,
	}
}

// parseForStmt parses: for ([init]; [cond]; [post]) <block>
func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)

	var init ast.Statement
	if !p.check(lexer.SEMICOLON) {
		init = p.parseSimpleStmt()
	}
	p.expect(lexer.SEMICOLON)

	var condition ast.Expression
	if !p.check(lexer.SEMICOLON) {
		condition = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	var post ast.Statement
	if !p.check(lexer.RPAREN) {
		post = p.parseSimpleStmt()
	}
	p.expect(lexer.RPAREN)

	body := p.parseBlockOrStmt()

	return &ast.ForStmt{
		Init:      init,
		Condition: condition,
		Post:      post,
		Body:      body,
		Line:      tok.Line,
		Column:    tok.Column,
	}
}

// parseBreakStmt parses: break;
func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	tok := p.expect(lexer.BREAK)
	p.expect(lexer.SEMICOLON)
	return &ast.BreakStmt{Line: tok.Line, Column: tok.Column}
}

// parseContinueStmt parses: continue;
func (p *Parser) parseContinueStmt() *ast.ContinueStmt {
	tok := p.expect(lexer.CONTINUE)
	p.expect(lexer.SEMICOLON)
	return &ast.ContinueStmt{Line: tok.Line, Column: tok.Column}
}

// assignOps are the tokens that turn an expression into an assignment
var assignOps = map[lexer.TokenType]bool{
	lexer.ASSIGN:       true,
	lexer.PLUS_ASSIGN:  true,
	lexer.MINUS_ASSIGN: true,
	lexer.STAR_ASSIGN:  true,
	lexer.SLASH_ASSIGN: true,
}

// parseSimpleStmt parses an expression or assignment without consuming a
// trailing semicolon. Used for statements and for-loop clauses.
func (p *Parser) parseSimpleStmt() ast.Statement {
	tok := p.current()
	expr := p.parseExpression()

	if assignOps[p.current().Type] {
		op := p.advance()
		value := p.parseExpression()
		return &ast.AssignStmt{
			Target: expr,
			Op:     op.Type,
			Value:  value,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}

	return &ast.ExprStmt{Expr: expr}
}

// parseExprStmtOrAssign parses an expression statement or assignment
func (p *Parser) parseExprStmtOrAssign() ast.Statement {
	stmt := p.parseSimpleStmt()
	p.expect(lexer.SEMICOLON)
	return stmt
}

// Expression parsing - precedence climbing

// Precedence levels (lowest to highest):
// 1. ||           (left-associative)
// 2. &&           (left-associative)
// 3. == !=        (left-associative)
// 4. < > <= >=    (left-associative)
// 5. + -          (left-associative)
// 6. * / %        (left-associative)
// 7. unary (- !)
// 8. postfix ([ ] . ())

const (
	precNone       = 0
	precOr         = 1
	precAnd        = 2
	precEquality   = 3
	precComparison = 4
	precAdditive   = 5
	precMulti      = 6
	precUnary      = 7
	precPostfix    = 8
)

func tokenPrecedence(tt lexer.TokenType) int {
	switch tt {
	case lexer.OR:
		return precOr
	case lexer.AND:
		return precAnd
	case lexer.EQ, lexer.NEQ:
		return precEquality
	case lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		return precComparison
	case lexer.PLUS, lexer.MINUS:
		return precAdditive
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return precMulti
	default:
		return precNone
	}
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parsePrecedence(precOr)
}

func (p *Parser) parsePrecedence(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		prec := tokenPrecedence(p.current().Type)
		if prec < minPrec {
			break
		}

		op := p.advance()
		right := p.parsePrecedence(prec + 1)
		left = &ast.BinaryExpr{
			Left:   left,
			Op:     op.Type,
			Right:  right,
			Line:   op.Line,
			Column: op.Column,
		}
	}

	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.check(lexer.MINUS) || p.check(lexer.NOT) {
		op := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			Op:      op.Type,
			Operand: operand,
			Line:    op.Line,
			Column:  op.Column,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	line, col := expr.Pos()

	for {
		if p.check(lexer.LBRACKET) {
			// Index access: expr[index]
			p.advance()
			index := p.parseExpression()
			p.expect(lexer.RBRACKET)
			expr = &ast.IndexExpr{
				Object: expr,
				Index:  index,
				Line:   line,
				Column: col,
			}
		} else if p.check(lexer.DOT) {
			p.advance()
			name := p.expect(lexer.IDENT)
			expr = &ast.MemberExpr{
				Object: expr,
				Field:  name.Literal,
				Line:   name.Line,
				Column: name.Column,
			}
		} else if p.check(lexer.LPAREN) {
			p.advance()
			args := p.parseArgList()
			p.expect(lexer.RPAREN)
			expr = &ast.CallExpr{
				Callee: expr,
				Args:   args,
				Line:   line,
				Column: col,
			}
		} else {
			break
		}
	}

	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current()

	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		value, err := strconv.ParseInt(tok.Literal, 0, 64)
		if err != nil {
			p.diags.Errorf(diagnostic.SyntaxError, tok.Line, tok.Column,
				"invalid integer literal %q", tok.Literal)
		}
		return &ast.IntLit{Value: value, Literal: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.FIXED_LIT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.diags.Errorf(diagnostic.SyntaxError, tok.Line, tok.Column,
				"invalid fixed literal %q", tok.Literal)
		}
		return &ast.FixedLit{Value: value, Literal: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.STRING_LIT:
		p.advance()
		return &ast.StringLit{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Line: tok.Line, Column: tok.Column}
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Line: tok.Line, Column: tok.Column}
	case lexer.NULL:
		p.advance()
		return &ast.NullLit{Line: tok.Line, Column: tok.Column}
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	default:
		p.diags.Errorf(diagnostic.SyntaxError, tok.Line, tok.Column,
			"unexpected token %s in expression", tok.Type)
		p.advance()
		return &ast.Identifier{Name: "<error>", Line: tok.Line, Column: tok.Column}
	}
}

func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	if p.check(lexer.RPAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(lexer.COMMA) {
		args = append(args, p.parseExpression())
	}
	return args
}

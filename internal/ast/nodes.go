package ast

import "github.com/gxlang/gxc/internal/lexer"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Declaration nodes (top level)
type Declaration interface {
	Node
	declNode()
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Program represents a single Galaxy script
type Program struct {
	Decls []Declaration
}

func (p *Program) Pos() (int, int) {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return 0, 0
}

// TypeRef is a type as written in source: a base type name plus optional
// array dimensions (int[4], fixed[2][3]).
type TypeRef struct {
	Name   string
	Dims   []Expression // array dimensions, outermost first; nil when scalar
	Line   int
	Column int
}

func (t *TypeRef) Pos() (int, int) { return t.Line, t.Column }

// Param represents a function or native parameter
type Param struct {
	Type   *TypeRef
	Name   string
	Line   int
	Column int
}

func (p *Param) Pos() (int, int) { return p.Line, p.Column }

// IncludeDecl represents an include directive: include "lib";
type IncludeDecl struct {
	Path   string
	Line   int
	Column int
}

func (d *IncludeDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *IncludeDecl) declNode()       {}

// StructField is one member of a struct declaration
type StructField struct {
	Type   *TypeRef
	Name   string
	Line   int
	Column int
}

func (f *StructField) Pos() (int, int) { return f.Line, f.Column }

// StructDecl represents a struct declaration
type StructDecl struct {
	Name   string
	Fields []*StructField
	Line   int
	Column int
}

func (d *StructDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *StructDecl) declNode()       {}

// TypedefDecl represents a typedef: typedef int myint;
type TypedefDecl struct {
	Type   *TypeRef
	Name   string
	Line   int
	Column int
}

func (d *TypedefDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *TypedefDecl) declNode()       {}

// NativeDecl represents a native function declaration
type NativeDecl struct {
	Return *TypeRef
	Name   string
	Params []*Param
	Line   int
	Column int
}

func (d *NativeDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *NativeDecl) declNode()       {}

// VarDecl represents a variable declaration, global or local.
// It doubles as a statement inside function bodies.
type VarDecl struct {
	Const  bool
	Static bool
	Type   *TypeRef
	Name   string
	Init   Expression // nil when absent
	Line   int
	Column int
}

func (d *VarDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *VarDecl) declNode()       {}
func (d *VarDecl) stmtNode()       {}

// FunctionDecl represents a function definition, or a prototype when Body
// is nil (forward declaration).
type FunctionDecl struct {
	Return *TypeRef
	Name   string
	Params []*Param
	Body   *Block
	Line   int
	Column int
}

func (d *FunctionDecl) Pos() (int, int) { return d.Line, d.Column }
func (d *FunctionDecl) declNode()       {}

// Block represents a { ... } compound statement
type Block struct {
	Statements []Statement
	Line       int
	Column     int
}

func (b *Block) Pos() (int, int) { return b.Line, b.Column }
func (b *Block) stmtNode()       {}

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) Pos() (int, int) { return s.Expr.Pos() }
func (s *ExprStmt) stmtNode()       {}

// AssignStmt represents an assignment: target = value, also += -= *= /=
type AssignStmt struct {
	Target Expression
	Op     lexer.TokenType
	Value  Expression
	Line   int
	Column int
}

func (s *AssignStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *AssignStmt) stmtNode()       {}

// IfStmt represents an if/else statement. Else is a *Block or an *IfStmt
// (else-if chain), or nil.
type IfStmt struct {
	Condition Expression
	Then      *Block
	Else      Statement
	Line      int
	Column    int
}

func (s *IfStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *IfStmt) stmtNode()       {}

// WhileStmt represents a while loop
type WhileStmt struct {
	Condition Expression
	Body      *Block
	Line      int
	Column    int
}

func (s *WhileStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *WhileStmt) stmtNode()       {}

// ForStmt represents a for loop. All three clauses are optional.
type ForStmt struct {
	Init      Statement // assignment or expression statement
	Condition Expression
	Post      Statement
	Body      *Block
	Line      int
	Column    int
}

func (s *ForStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *ForStmt) stmtNode()       {}

// ReturnStmt represents a return statement
type ReturnStmt struct {
	Value  Expression // nil for bare return
	Line   int
	Column int
}

func (s *ReturnStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *ReturnStmt) stmtNode()       {}

// BreakStmt represents a break statement
type BreakStmt struct {
	Line   int
	Column int
}

func (s *BreakStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *BreakStmt) stmtNode()       {}

// ContinueStmt represents a continue statement
type ContinueStmt struct {
	Line   int
	Column int
}

func (s *ContinueStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *ContinueStmt) stmtNode()       {}

// Identifier represents a name reference
type Identifier struct {
	Name   string
	Line   int
	Column int
}

func (e *Identifier) Pos() (int, int) { return e.Line, e.Column }
func (e *Identifier) exprNode()       {}

// IntLit represents an integer literal (decimal or hex)
type IntLit struct {
	Value   int64
	Literal string
	Line    int
	Column  int
}

func (e *IntLit) Pos() (int, int) { return e.Line, e.Column }
func (e *IntLit) exprNode()       {}

// FixedLit represents a fixed-point literal
type FixedLit struct {
	Value   float64
	Literal string
	Line    int
	Column  int
}

func (e *FixedLit) Pos() (int, int) { return e.Line, e.Column }
func (e *FixedLit) exprNode()       {}

// StringLit represents a string literal
type StringLit struct {
	Value  string
	Line   int
	Column int
}

func (e *StringLit) Pos() (int, int) { return e.Line, e.Column }
func (e *StringLit) exprNode()       {}

// BoolLit represents true or false
type BoolLit struct {
	Value  bool
	Line   int
	Column int
}

func (e *BoolLit) Pos() (int, int) { return e.Line, e.Column }
func (e *BoolLit) exprNode()       {}

// NullLit represents the null literal
type NullLit struct {
	Line   int
	Column int
}

func (e *NullLit) Pos() (int, int) { return e.Line, e.Column }
func (e *NullLit) exprNode()       {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Op     lexer.TokenType
	Left   Expression
	Right  Expression
	Line   int
	Column int
}

func (e *BinaryExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *BinaryExpr) exprNode()       {}

// UnaryExpr represents a unary operation (-, !)
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expression
	Line    int
	Column  int
}

func (e *UnaryExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *UnaryExpr) exprNode()       {}

// CallExpr represents a function call
type CallExpr struct {
	Callee Expression
	Args   []Expression
	Line   int
	Column int
}

func (e *CallExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *CallExpr) exprNode()       {}

// MemberExpr represents struct member access: obj.field
type MemberExpr struct {
	Object Expression
	Field  string
	Line   int
	Column int
}

func (e *MemberExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *MemberExpr) exprNode()       {}

// IndexExpr represents array indexing: arr[i]
type IndexExpr struct {
	Object Expression
	Index  Expression
	Line   int
	Column int
}

func (e *IndexExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *IndexExpr) exprNode()       {}

package linter

import (
	"strings"
	"unicode"

	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/diagnostic"
	"github.com/gxlang/gxc/internal/lexer"
)

// Linter performs style and best-practice checks on a parsed script.
// It reports warnings (never errors) using the diagnostic system.
type Linter struct {
	prog *ast.Program
	diag *diagnostic.Diagnostics
}

// Lint runs all lint rules on the given program and returns diagnostics.
func Lint(prog *ast.Program) *diagnostic.Diagnostics {
	l := &Linter{
		prog: prog,
		diag: diagnostic.New(),
	}

	l.lintGlobals()
	l.lintFunctions()

	return l.diag
}

// lintGlobals checks naming conventions for top-level variables. Galaxy
// maps conventionally prefix globals with gv_ and constants with c_.
func (l *Linter) lintGlobals() {
	for _, decl := range l.prog.Decls {
		v, ok := decl.(*ast.VarDecl)
		if !ok {
			continue
		}
		if v.Const {
			if !strings.HasPrefix(v.Name, "c_") {
				l.diag.Warningf(diagnostic.StyleIssue, v.Line, v.Column,
					"constant '%s' should use the c_ prefix", v.Name)
			}
			continue
		}
		if !strings.HasPrefix(v.Name, "gv_") {
			l.diag.Warningf(diagnostic.StyleIssue, v.Line, v.Column,
				"global variable '%s' should use the gv_ prefix", v.Name)
		}
	}
}

// lintFunctions checks all function definitions.
func (l *Linter) lintFunctions() {
	for _, decl := range l.prog.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok || fn.Body == nil {
			continue
		}
		l.checkEmptyFunctionBody(fn)
		l.checkFunctionNaming(fn)

		usedNames := l.collectUsedNames(fn.Body.Statements)
		l.checkUnusedParams(fn.Name, fn.Params, usedNames)
		l.checkUnusedLocals(fn.Body.Statements, usedNames)
	}
}

// --- Lint rules ---

// checkEmptyFunctionBody warns if a function body has no statements.
func (l *Linter) checkEmptyFunctionBody(fn *ast.FunctionDecl) {
	if len(fn.Body.Statements) == 0 {
		l.diag.Warningf(diagnostic.StyleIssue, fn.Line, fn.Column,
			"function '%s' has an empty body", fn.Name)
	}
}

// checkFunctionNaming warns about identifiers that cannot come from
// hand-written Galaxy, such as leading underscores or all-caps names.
func (l *Linter) checkFunctionNaming(fn *ast.FunctionDecl) {
	if strings.HasPrefix(fn.Name, "_") {
		l.diag.Warningf(diagnostic.StyleIssue, fn.Line, fn.Column,
			"function '%s' should not start with an underscore", fn.Name)
		return
	}
	if isAllCaps(fn.Name) {
		l.diag.Warningf(diagnostic.StyleIssue, fn.Line, fn.Column,
			"function '%s' should not be all uppercase", fn.Name)
	}
}

// checkUnusedParams warns about parameters that are never read in the body.
func (l *Linter) checkUnusedParams(funcName string, params []*ast.Param, usedNames map[string]bool) {
	for _, p := range params {
		if !usedNames[p.Name] {
			l.diag.Warningf(diagnostic.StyleIssue, p.Line, p.Column,
				"parameter '%s' in '%s' is never used", p.Name, funcName)
		}
	}
}

// checkUnusedLocals warns about local variables that are never read.
func (l *Linter) checkUnusedLocals(stmts []ast.Statement, usedNames map[string]bool) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			if !usedNames[s.Name] {
				l.diag.Warningf(diagnostic.StyleIssue, s.Line, s.Column,
					"variable '%s' is declared but never used", s.Name)
			}
		case *ast.IfStmt:
			l.checkUnusedLocals(s.Then.Statements, usedNames)
			if s.Else != nil {
				l.checkUnusedLocals([]ast.Statement{s.Else}, usedNames)
			}
		case *ast.WhileStmt:
			l.checkUnusedLocals(s.Body.Statements, usedNames)
		case *ast.ForStmt:
			if s.Init != nil {
				l.checkUnusedLocals([]ast.Statement{s.Init}, usedNames)
			}
			l.checkUnusedLocals(s.Body.Statements, usedNames)
		case *ast.Block:
			l.checkUnusedLocals(s.Statements, usedNames)
		}
	}
}

// --- Name collection helpers ---

// collectUsedNames walks all expressions in a slice of statements and
// collects every identifier that is read. Assignment targets are writes,
// not reads, except for the object of a member or index target.
func (l *Linter) collectUsedNames(stmts []ast.Statement) map[string]bool {
	used := make(map[string]bool)
	for _, stmt := range stmts {
		l.collectUsedNamesFromStmt(stmt, used)
	}
	return used
}

func (l *Linter) collectUsedNamesFromStmt(stmt ast.Statement, used map[string]bool) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		// the initializer reads names, the declared name is not a read
		if s.Init != nil {
			l.collectUsedNamesFromExpr(s.Init, used)
		}
	case *ast.AssignStmt:
		if s.Op != lexer.ASSIGN {
			// compound assignment reads the target before writing it
			l.collectUsedNamesFromExpr(s.Target, used)
		}
		if m, ok := s.Target.(*ast.MemberExpr); ok {
			l.collectUsedNamesFromExpr(m.Object, used)
		}
		if ie, ok := s.Target.(*ast.IndexExpr); ok {
			l.collectUsedNamesFromExpr(ie.Object, used)
			l.collectUsedNamesFromExpr(ie.Index, used)
		}
		l.collectUsedNamesFromExpr(s.Value, used)
	case *ast.ReturnStmt:
		if s.Value != nil {
			l.collectUsedNamesFromExpr(s.Value, used)
		}
	case *ast.IfStmt:
		l.collectUsedNamesFromExpr(s.Condition, used)
		for _, inner := range s.Then.Statements {
			l.collectUsedNamesFromStmt(inner, used)
		}
		if s.Else != nil {
			l.collectUsedNamesFromStmt(s.Else, used)
		}
	case *ast.WhileStmt:
		l.collectUsedNamesFromExpr(s.Condition, used)
		for _, inner := range s.Body.Statements {
			l.collectUsedNamesFromStmt(inner, used)
		}
	case *ast.ForStmt:
		if s.Init != nil {
			l.collectUsedNamesFromStmt(s.Init, used)
		}
		if s.Condition != nil {
			l.collectUsedNamesFromExpr(s.Condition, used)
		}
		if s.Post != nil {
			l.collectUsedNamesFromStmt(s.Post, used)
		}
		for _, inner := range s.Body.Statements {
			l.collectUsedNamesFromStmt(inner, used)
		}
	case *ast.ExprStmt:
		l.collectUsedNamesFromExpr(s.Expr, used)
	case *ast.Block:
		for _, inner := range s.Statements {
			l.collectUsedNamesFromStmt(inner, used)
		}
	}
}

func (l *Linter) collectUsedNamesFromExpr(expr ast.Expression, used map[string]bool) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		used[e.Name] = true
	case *ast.BinaryExpr:
		l.collectUsedNamesFromExpr(e.Left, used)
		l.collectUsedNamesFromExpr(e.Right, used)
	case *ast.UnaryExpr:
		l.collectUsedNamesFromExpr(e.Operand, used)
	case *ast.CallExpr:
		l.collectUsedNamesFromExpr(e.Callee, used)
		for _, arg := range e.Args {
			l.collectUsedNamesFromExpr(arg, used)
		}
	case *ast.MemberExpr:
		l.collectUsedNamesFromExpr(e.Object, used)
	case *ast.IndexExpr:
		l.collectUsedNamesFromExpr(e.Object, used)
		l.collectUsedNamesFromExpr(e.Index, used)
	}
}

// --- Naming convention helpers ---

func isAllCaps(name string) bool {
	hasLetter := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

package checker

import (
	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/diagnostic"
	"github.com/gxlang/gxc/internal/lexer"
	"github.com/gxlang/gxc/internal/natives"
)

// Checker performs semantic analysis on a parsed script
type Checker struct {
	prog      *ast.Program
	diag      *diagnostic.Diagnostics
	scope     *Scope // global scope
	structs   map[string]*Type
	typedefs  map[string]*Type
	exprTypes map[ast.Expression]*Type
	decls     map[ast.Node]*Symbol

	loopDepth   int
	currentFunc *Type // signature of the function body being checked

	// funcDefined tracks which functions have a body, so a prototype
	// followed by a definition is not a duplicate.
	funcDefined map[string]bool
}

// Result holds the analysis output: the diagnostics plus the type and
// symbol annotations for the caller's tree.
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	ExprTypes   map[ast.Expression]*Type
	Decls       map[ast.Node]*Symbol
}

// Analyze runs both analysis passes over a program. The catalog supplies
// natives beyond those declared in the source; pass nil for none.
func Analyze(prog *ast.Program, catalog *natives.Catalog) *Result {
	c := &Checker{
		prog:        prog,
		diag:        diagnostic.New(),
		scope:       NewScope(nil),
		structs:     make(map[string]*Type),
		typedefs:    make(map[string]*Type),
		exprTypes:   make(map[ast.Expression]*Type),
		decls:       make(map[ast.Node]*Symbol),
		funcDefined: make(map[string]bool),
	}

	// Pass 1: registration
	c.registerStructs()
	c.registerTypedefs()
	c.seedCatalog(catalog)
	c.registerSignatures()
	c.registerGlobals()

	// Pass 2: function bodies
	c.checkFunctions()

	return &Result{
		Diagnostics: c.diag,
		ExprTypes:   c.exprTypes,
		Decls:       c.decls,
	}
}

// Check is a convenience wrapper returning only the diagnostics
func Check(prog *ast.Program, catalog *natives.Catalog) *diagnostic.Diagnostics {
	return Analyze(prog, catalog).Diagnostics
}

// registerStructs declares every struct name before resolving any member,
// so members may reference structs declared later in the file.
func (c *Checker) registerStructs() {
	owners := make(map[string]*ast.StructDecl)
	for _, decl := range c.prog.Decls {
		s, ok := decl.(*ast.StructDecl)
		if !ok {
			continue
		}
		if _, exists := c.structs[s.Name]; exists {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, s.Line, s.Column,
				"struct '%s' already defined", s.Name)
			continue
		}
		st := &Type{Kind: KindStruct, Name: s.Name}
		c.structs[s.Name] = st
		owners[s.Name] = s

		sym := &Symbol{Name: s.Name, Type: st, Kind: SymStruct, Line: s.Line, Column: s.Column}
		if err := c.scope.Define(s.Name, sym); err != nil {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, s.Line, s.Column,
				"'%s' already defined", s.Name)
		}
		c.decls[s] = sym
	}

	// fix-up: resolve member types now that every struct name exists
	for _, decl := range c.prog.Decls {
		s, ok := decl.(*ast.StructDecl)
		if !ok {
			continue
		}
		if owners[s.Name] != s {
			// duplicate struct; only the first declaration owns the fields
			continue
		}
		st := c.structs[s.Name]
		seen := make(map[string]bool)
		for _, field := range s.Fields {
			if seen[field.Name] {
				c.diag.Errorf(diagnostic.DuplicateDeclaration, field.Line, field.Column,
					"field '%s' already defined in struct '%s'", field.Name, s.Name)
				continue
			}
			seen[field.Name] = true
			ft := c.resolveTypeRef(field.Type)
			if ft.Kind == KindVoid {
				c.diag.Errorf(diagnostic.TypeMismatch, field.Line, field.Column,
					"field '%s' cannot have type void", field.Name)
				ft = TypeError
			}
			st.Fields = append(st.Fields, StructFieldInfo{Name: field.Name, Type: ft})
		}
	}
}

// registerTypedefs resolves typedefs in source order. A typedef is a
// transparent alias: it maps straight to the underlying type.
func (c *Checker) registerTypedefs() {
	for _, decl := range c.prog.Decls {
		td, ok := decl.(*ast.TypedefDecl)
		if !ok {
			continue
		}
		if _, exists := c.typedefs[td.Name]; exists {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, td.Line, td.Column,
				"typedef '%s' already defined", td.Name)
			continue
		}
		underlying := c.resolveTypeRef(td.Type)
		c.typedefs[td.Name] = underlying

		sym := &Symbol{Name: td.Name, Type: underlying, Kind: SymTypedef, Line: td.Line, Column: td.Column}
		if err := c.scope.Define(td.Name, sym); err != nil {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, td.Line, td.Column,
				"'%s' already defined", td.Name)
		}
		c.decls[td] = sym
	}
}

// seedCatalog installs catalog natives into the global scope. Type names
// in signatures resolve against the type model; unresolvable entries are
// dropped with a load error.
func (c *Checker) seedCatalog(catalog *natives.Catalog) {
	if catalog == nil {
		return
	}
	for _, name := range catalog.Names() {
		sig, _ := catalog.Lookup(name)
		ft, ok := c.resolveCatalogSignature(name, sig)
		if !ok {
			continue
		}
		c.scope.Define(name, &Symbol{Name: name, Type: ft, Kind: SymNative})
	}
}

func (c *Checker) resolveCatalogSignature(name string, sig natives.Signature) (*Type, bool) {
	ret, ok := c.resolveTypeName(sig.Return)
	if !ok {
		c.diag.Errorf(diagnostic.NativeLoadError, 0, 0,
			"native '%s': unknown return type '%s'", name, sig.Return)
		return nil, false
	}
	params := make([]*Type, 0, len(sig.Params))
	for _, p := range sig.Params {
		pt, ok := c.resolveTypeName(p)
		if !ok {
			c.diag.Errorf(diagnostic.NativeLoadError, 0, 0,
				"native '%s': unknown parameter type '%s'", name, p)
			return nil, false
		}
		params = append(params, pt)
	}
	return &Type{Kind: KindFunc, Name: name, Return: ret, Params: params}, true
}

// resolveTypeName resolves a bare type name: builtin, typedef, or struct
func (c *Checker) resolveTypeName(name string) (*Type, bool) {
	if t, ok := BuiltinType(name); ok {
		return t, true
	}
	if t, ok := c.typedefs[name]; ok {
		return t, true
	}
	if t, ok := c.structs[name]; ok {
		return t, true
	}
	return nil, false
}

// resolveTypeRef resolves a source type reference, folding array
// dimensions. An unknown name poisons to the error type after one
// diagnostic.
func (c *Checker) resolveTypeRef(ref *ast.TypeRef) *Type {
	if ref == nil {
		return TypeError
	}
	base, ok := c.resolveTypeName(ref.Name)
	if !ok {
		if ref.Name != "<error>" {
			c.diag.Errorf(diagnostic.UndefinedName, ref.Line, ref.Column,
				"unknown type '%s'", ref.Name)
		}
		return TypeError
	}
	if len(ref.Dims) == 0 {
		return base
	}
	if len(ref.Dims) > 2 {
		c.diag.Errorf(diagnostic.TypeMismatch, ref.Line, ref.Column,
			"arrays are limited to 2 dimensions")
		return TypeError
	}
	dims := make([]int, 0, len(ref.Dims))
	for _, dimExpr := range ref.Dims {
		size, ok := c.foldConstInt(dimExpr)
		if !ok || size <= 0 {
			line, col := dimExpr.Pos()
			c.diag.Errorf(diagnostic.TypeMismatch, line, col,
				"array dimension must be a positive integer constant")
			return TypeError
		}
		dims = append(dims, int(size))
	}
	return &Type{Kind: KindArray, Elem: base, Dims: dims}
}

// foldConstInt folds integer literals and previously registered integer
// constants. Anything else does not fold.
func (c *Checker) foldConstInt(expr ast.Expression) (int64, bool) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return e.Value, true
	case *ast.Identifier:
		sym := c.scope.Resolve(e.Name)
		if sym != nil && sym.Kind == SymConst && sym.HasConstValue {
			return sym.ConstValue, true
		}
		return 0, false
	case *ast.UnaryExpr:
		if e.Op != lexer.MINUS {
			return 0, false
		}
		v, ok := c.foldConstInt(e.Operand)
		return -v, ok
	case *ast.BinaryExpr:
		l, lok := c.foldConstInt(e.Left)
		r, rok := c.foldConstInt(e.Right)
		if !lok || !rok {
			return 0, false
		}
		switch e.Op {
		case lexer.PLUS:
			return l + r, true
		case lexer.MINUS:
			return l - r, true
		case lexer.STAR:
			return l * r, true
		case lexer.SLASH:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		case lexer.PERCENT:
			if r == 0 {
				return 0, false
			}
			return l % r, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// registerSignatures registers function and native signatures in source
// order, before any body or global initializer is checked, so forward
// calls resolve.
func (c *Checker) registerSignatures() {
	for _, decl := range c.prog.Decls {
		switch d := decl.(type) {
		case *ast.NativeDecl:
			c.registerNative(d)
		case *ast.FunctionDecl:
			c.registerFunction(d)
		}
	}
}

func (c *Checker) registerNative(d *ast.NativeDecl) {
	ft := c.buildFuncType(d.Name, d.Return, d.Params)

	if existing := c.scope.ResolveLocal(d.Name); existing != nil {
		// a source declaration matching a catalog native is not a clash
		if existing.Kind == SymNative && existing.Type.Equal(ft) {
			c.decls[d] = existing
			return
		}
		c.diag.Errorf(diagnostic.DuplicateDeclaration, d.Line, d.Column,
			"'%s' already defined", d.Name)
	}

	sym := &Symbol{Name: d.Name, Type: ft, Kind: SymNative, Line: d.Line, Column: d.Column}
	c.scope.Define(d.Name, sym)
	c.decls[d] = sym
}

func (c *Checker) registerFunction(d *ast.FunctionDecl) {
	ft := c.buildFuncType(d.Name, d.Return, d.Params)

	if existing := c.scope.ResolveLocal(d.Name); existing != nil {
		if existing.Kind == SymFunction && !c.funcDefined[d.Name] {
			// prototype followed by the definition
			if !existing.Type.Equal(ft) {
				c.diag.Errorf(diagnostic.DuplicateDeclaration, d.Line, d.Column,
					"function '%s' redeclared with a different signature", d.Name)
			}
			if d.Body != nil {
				c.funcDefined[d.Name] = true
			}
			c.decls[d] = existing
			return
		}
		c.diag.Errorf(diagnostic.DuplicateDeclaration, d.Line, d.Column,
			"'%s' already defined", d.Name)
	}

	sym := &Symbol{Name: d.Name, Type: ft, Kind: SymFunction, Line: d.Line, Column: d.Column}
	c.scope.Define(d.Name, sym)
	if d.Body != nil {
		c.funcDefined[d.Name] = true
	}
	c.decls[d] = sym
}

// buildFuncType resolves a signature into a function type
func (c *Checker) buildFuncType(name string, ret *ast.TypeRef, params []*ast.Param) *Type {
	retType := c.resolveTypeRef(ret)
	paramTypes := make([]*Type, 0, len(params))
	for _, p := range params {
		pt := c.resolveTypeRef(p.Type)
		if pt.Kind == KindVoid {
			c.diag.Errorf(diagnostic.TypeMismatch, p.Line, p.Column,
				"parameter '%s' cannot have type void", p.Name)
			pt = TypeError
		}
		paramTypes = append(paramTypes, pt)
	}
	return &Type{Kind: KindFunc, Name: name, Return: retType, Params: paramTypes}
}

// registerGlobals registers global variables in source order, checking
// initializers as it goes
func (c *Checker) registerGlobals() {
	for _, decl := range c.prog.Decls {
		if v, ok := decl.(*ast.VarDecl); ok {
			c.declareVar(v, c.scope)
		}
	}
}

// declareVar handles a variable declaration, global or local
func (c *Checker) declareVar(v *ast.VarDecl, scope *Scope) {
	declType := c.resolveTypeRef(v.Type)
	if declType.Kind == KindVoid {
		c.diag.Errorf(diagnostic.TypeMismatch, v.Line, v.Column,
			"variable '%s' cannot have type void", v.Name)
		declType = TypeError
	}

	if v.Init != nil {
		initType := c.checkExpression(v.Init, scope)
		if !Assignable(declType, initType) {
			line, col := v.Init.Pos()
			c.diag.Errorf(diagnostic.TypeMismatch, line, col,
				"cannot initialize %s with %s", declType.String(), initType.String())
		}
	}

	kind := SymVariable
	if v.Const {
		kind = SymConst
	}
	sym := &Symbol{
		Name:   v.Name,
		Type:   declType,
		Kind:   kind,
		Static: v.Static,
		Line:   v.Line,
		Column: v.Column,
	}
	if v.Const && v.Init != nil && declType.Kind == KindInt {
		if value, ok := c.foldConstInt(v.Init); ok {
			sym.ConstValue = value
			sym.HasConstValue = true
		}
	}

	if err := scope.Define(v.Name, sym); err != nil {
		c.diag.Errorf(diagnostic.DuplicateDeclaration, v.Line, v.Column,
			"'%s' already defined in this scope", v.Name)
	}
	c.decls[v] = sym
}

// checkFunctions checks all function bodies in source order
func (c *Checker) checkFunctions() {
	for _, decl := range c.prog.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok || fn.Body == nil {
			continue
		}
		c.checkFunction(fn)
	}
}

func (c *Checker) checkFunction(fn *ast.FunctionDecl) {
	sym := c.decls[fn]
	if sym == nil || sym.Type == nil || sym.Type.Kind != KindFunc {
		return
	}
	c.currentFunc = sym.Type

	funcScope := NewScope(c.scope)
	for i, p := range fn.Params {
		pt := TypeError
		if i < len(sym.Type.Params) {
			pt = sym.Type.Params[i]
		}
		psym := &Symbol{Name: p.Name, Type: pt, Kind: SymParam, Line: p.Line, Column: p.Column}
		if err := funcScope.Define(p.Name, psym); err != nil {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, p.Line, p.Column,
				"parameter '%s' already defined", p.Name)
		}
		c.decls[p] = psym
	}

	c.checkBlock(fn.Body, funcScope)
	c.currentFunc = nil
}

// checkBlock checks the statements of a block in the given scope
func (c *Checker) checkBlock(block *ast.Block, scope *Scope) {
	for _, stmt := range block.Statements {
		c.checkStatement(stmt, scope)
	}
}

func (c *Checker) checkStatement(stmt ast.Statement, scope *Scope) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.declareVar(s, scope)
	case *ast.AssignStmt:
		c.checkAssignStmt(s, scope)
	case *ast.ReturnStmt:
		c.checkReturnStmt(s, scope)
	case *ast.IfStmt:
		c.checkIfStmt(s, scope)
	case *ast.WhileStmt:
		c.checkWhileStmt(s, scope)
	case *ast.ForStmt:
		c.checkForStmt(s, scope)
	case *ast.BreakStmt:
		if c.loopDepth == 0 {
			c.diag.Errorf(diagnostic.InvalidControlFlow, s.Line, s.Column,
				"break statement outside loop")
		}
	case *ast.ContinueStmt:
		if c.loopDepth == 0 {
			c.diag.Errorf(diagnostic.InvalidControlFlow, s.Line, s.Column,
				"continue statement outside loop")
		}
	case *ast.ExprStmt:
		c.checkExpression(s.Expr, scope)
	case *ast.Block:
		c.checkBlock(s, NewScope(scope))
	}
}

// checkAssignStmt checks plain and compound assignments
func (c *Checker) checkAssignStmt(stmt *ast.AssignStmt, scope *Scope) {
	targetType := c.checkExpression(stmt.Target, scope)
	valueType := c.checkExpression(stmt.Value, scope)

	if !isLValue(stmt.Target) {
		c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, stmt.Column,
			"cannot assign to this expression")
		return
	}

	if ident, ok := stmt.Target.(*ast.Identifier); ok {
		sym := scope.Resolve(ident.Name)
		if sym != nil && sym.Kind == SymConst {
			c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, stmt.Column,
				"cannot assign to constant '%s'", ident.Name)
			return
		}
	}

	if stmt.Op == lexer.ASSIGN {
		if !Assignable(targetType, valueType) {
			c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, stmt.Column,
				"cannot assign %s to %s", valueType.String(), targetType.String())
		}
		return
	}

	// compound assignment: the underlying operator must be defined and its
	// result must flow back into the target
	result := BinaryResult(compoundOp(stmt.Op), targetType, valueType)
	if result == nil {
		c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, stmt.Column,
			"operator '%s' not defined for %s and %s",
			opSpelling(stmt.Op), targetType.String(), valueType.String())
		return
	}
	if !Assignable(targetType, result) {
		c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, stmt.Column,
			"cannot assign %s to %s", result.String(), targetType.String())
	}
}

// compoundOp maps a compound assignment operator to its binary operator
func compoundOp(op lexer.TokenType) lexer.TokenType {
	switch op {
	case lexer.PLUS_ASSIGN:
		return lexer.PLUS
	case lexer.MINUS_ASSIGN:
		return lexer.MINUS
	case lexer.STAR_ASSIGN:
		return lexer.STAR
	case lexer.SLASH_ASSIGN:
		return lexer.SLASH
	default:
		return op
	}
}

func opSpelling(op lexer.TokenType) string {
	switch op {
	case lexer.PLUS, lexer.PLUS_ASSIGN:
		return "+"
	case lexer.MINUS, lexer.MINUS_ASSIGN:
		return "-"
	case lexer.STAR, lexer.STAR_ASSIGN:
		return "*"
	case lexer.SLASH, lexer.SLASH_ASSIGN:
		return "/"
	case lexer.PERCENT:
		return "%"
	case lexer.EQ:
		return "=="
	case lexer.NEQ:
		return "!="
	case lexer.LT:
		return "<"
	case lexer.GT:
		return ">"
	case lexer.LEQ:
		return "<="
	case lexer.GEQ:
		return ">="
	case lexer.AND:
		return "&&"
	case lexer.OR:
		return "||"
	case lexer.NOT:
		return "!"
	default:
		return op.String()
	}
}

// isLValue reports whether an expression denotes a storage location
func isLValue(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpr, *ast.IndexExpr:
		return true
	}
	return false
}

// checkReturnStmt checks a return against the current function signature
func (c *Checker) checkReturnStmt(stmt *ast.ReturnStmt, scope *Scope) {
	if c.currentFunc == nil {
		return
	}
	retType := c.currentFunc.Return

	if stmt.Value == nil {
		if retType.Kind != KindVoid && !retType.IsError() {
			c.diag.Errorf(diagnostic.InvalidControlFlow, stmt.Line, stmt.Column,
				"function '%s' must return %s", c.currentFunc.Name, retType.String())
		}
		return
	}

	valueType := c.checkExpression(stmt.Value, scope)
	if retType.Kind == KindVoid {
		if !valueType.IsError() {
			c.diag.Errorf(diagnostic.InvalidControlFlow, stmt.Line, stmt.Column,
				"function '%s' returns no value", c.currentFunc.Name)
		}
		return
	}
	if !Assignable(retType, valueType) {
		c.diag.Errorf(diagnostic.InvalidControlFlow, stmt.Line, stmt.Column,
			"cannot return %s from function returning %s",
			valueType.String(), retType.String())
	}
}

// checkCondition checks a control-flow condition expression
func (c *Checker) checkCondition(cond ast.Expression, scope *Scope) {
	condType := c.checkExpression(cond, scope)
	if !Assignable(TypeBool, condType) {
		line, col := cond.Pos()
		c.diag.Errorf(diagnostic.TypeMismatch, line, col,
			"condition must be convertible to bool, got %s", condType.String())
	}
}

func (c *Checker) checkIfStmt(stmt *ast.IfStmt, scope *Scope) {
	c.checkCondition(stmt.Condition, scope)
	c.checkBlock(stmt.Then, NewScope(scope))
	if stmt.Else != nil {
		c.checkStatement(stmt.Else, NewScope(scope))
	}
}

func (c *Checker) checkWhileStmt(stmt *ast.WhileStmt, scope *Scope) {
	c.checkCondition(stmt.Condition, scope)
	c.loopDepth++
	c.checkBlock(stmt.Body, NewScope(scope))
	c.loopDepth--
}

func (c *Checker) checkForStmt(stmt *ast.ForStmt, scope *Scope) {
	forScope := NewScope(scope)
	if stmt.Init != nil {
		c.checkStatement(stmt.Init, forScope)
	}
	if stmt.Condition != nil {
		c.checkCondition(stmt.Condition, forScope)
	}
	if stmt.Post != nil {
		c.checkStatement(stmt.Post, forScope)
	}
	c.loopDepth++
	c.checkBlock(stmt.Body, NewScope(forScope))
	c.loopDepth--
}

// storeExprType records the computed type in the result side table
func (c *Checker) storeExprType(expr ast.Expression, t *Type) *Type {
	if t != nil {
		c.exprTypes[expr] = t
	}
	return t
}

// checkExpression infers the type of an expression bottom-up. An invalid
// expression yields exactly one diagnostic and the poison type; operations
// over poison operands stay silent.
func (c *Checker) checkExpression(expr ast.Expression, scope *Scope) *Type {
	switch e := expr.(type) {
	case *ast.IntLit:
		return c.storeExprType(expr, TypeInt)
	case *ast.FixedLit:
		return c.storeExprType(expr, TypeFixed)
	case *ast.StringLit:
		return c.storeExprType(expr, TypeString)
	case *ast.BoolLit:
		return c.storeExprType(expr, TypeBool)
	case *ast.NullLit:
		return c.storeExprType(expr, TypeNull)
	case *ast.Identifier:
		return c.storeExprType(expr, c.checkIdentifier(e, scope))
	case *ast.BinaryExpr:
		return c.storeExprType(expr, c.checkBinaryExpr(e, scope))
	case *ast.UnaryExpr:
		return c.storeExprType(expr, c.checkUnaryExpr(e, scope))
	case *ast.CallExpr:
		return c.storeExprType(expr, c.checkCallExpr(e, scope))
	case *ast.MemberExpr:
		return c.storeExprType(expr, c.checkMemberExpr(e, scope))
	case *ast.IndexExpr:
		return c.storeExprType(expr, c.checkIndexExpr(e, scope))
	default:
		return c.storeExprType(expr, TypeError)
	}
}

func (c *Checker) checkIdentifier(expr *ast.Identifier, scope *Scope) *Type {
	if expr.Name == "<error>" {
		// placeholder from parser error recovery, already reported
		return TypeError
	}
	sym := scope.Resolve(expr.Name)
	if sym == nil {
		c.diag.Errorf(diagnostic.UndefinedName, expr.Line, expr.Column,
			"undeclared identifier '%s'", expr.Name)
		return TypeError
	}
	if sym.Kind == SymStruct || sym.Kind == SymTypedef {
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, expr.Column,
			"'%s' is a type, not a value", expr.Name)
		return TypeError
	}
	c.decls[expr] = sym
	return sym.Type
}

func (c *Checker) checkBinaryExpr(expr *ast.BinaryExpr, scope *Scope) *Type {
	leftType := c.checkExpression(expr.Left, scope)
	rightType := c.checkExpression(expr.Right, scope)

	result := BinaryResult(expr.Op, leftType, rightType)
	if result == nil {
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, expr.Column,
			"operator '%s' not defined for %s and %s",
			opSpelling(expr.Op), leftType.String(), rightType.String())
		return TypeError
	}
	return result
}

func (c *Checker) checkUnaryExpr(expr *ast.UnaryExpr, scope *Scope) *Type {
	operandType := c.checkExpression(expr.Operand, scope)

	result := UnaryResult(expr.Op, operandType)
	if result == nil {
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, expr.Column,
			"operator '%s' not defined for %s",
			opSpelling(expr.Op), operandType.String())
		return TypeError
	}
	return result
}

// checkCallExpr checks a function or native call. Arity mismatches poison
// the call so nothing downstream re-reports it.
func (c *Checker) checkCallExpr(expr *ast.CallExpr, scope *Scope) *Type {
	argTypes := make([]*Type, len(expr.Args))
	for i, arg := range expr.Args {
		argTypes[i] = c.checkExpression(arg, scope)
	}

	ident, ok := expr.Callee.(*ast.Identifier)
	if !ok {
		calleeType := c.checkExpression(expr.Callee, scope)
		if !calleeType.IsError() {
			c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, expr.Column,
				"called expression is not a function")
		}
		return TypeError
	}

	if ident.Name == "<error>" {
		return TypeError
	}
	sym := scope.Resolve(ident.Name)
	if sym == nil {
		c.diag.Errorf(diagnostic.UndefinedName, ident.Line, ident.Column,
			"undeclared function '%s'", ident.Name)
		return TypeError
	}
	c.decls[ident] = sym

	ft := sym.Type
	if ft.IsError() {
		return TypeError
	}
	if ft.Kind != KindFunc {
		c.diag.Errorf(diagnostic.TypeMismatch, ident.Line, ident.Column,
			"'%s' is not a function", ident.Name)
		return TypeError
	}
	c.storeExprType(ident, ft)

	if len(expr.Args) != len(ft.Params) {
		c.diag.Errorf(diagnostic.ArityMismatch, expr.Line, expr.Column,
			"'%s' expects %d arguments, got %d",
			ident.Name, len(ft.Params), len(expr.Args))
		return TypeError
	}

	for i, argType := range argTypes {
		if !Assignable(ft.Params[i], argType) {
			line, col := expr.Args[i].Pos()
			c.diag.Errorf(diagnostic.TypeMismatch, line, col,
				"argument %d to '%s': expected %s, got %s",
				i+1, ident.Name, ft.Params[i].String(), argType.String())
		}
	}

	return ft.Return
}

func (c *Checker) checkMemberExpr(expr *ast.MemberExpr, scope *Scope) *Type {
	objType := c.checkExpression(expr.Object, scope)
	if objType.IsError() {
		return TypeError
	}
	if objType.Kind != KindStruct {
		c.diag.Errorf(diagnostic.InvalidMemberAccess, expr.Line, expr.Column,
			"type %s has no members", objType.String())
		return TypeError
	}
	for _, f := range objType.Fields {
		if f.Name == expr.Field {
			return f.Type
		}
	}
	c.diag.Errorf(diagnostic.InvalidMemberAccess, expr.Line, expr.Column,
		"struct '%s' has no field '%s'", objType.Name, expr.Field)
	return TypeError
}

func (c *Checker) checkIndexExpr(expr *ast.IndexExpr, scope *Scope) *Type {
	objType := c.checkExpression(expr.Object, scope)
	indexType := c.checkExpression(expr.Index, scope)

	if !Assignable(TypeInt, indexType) {
		line, col := expr.Index.Pos()
		c.diag.Errorf(diagnostic.TypeMismatch, line, col,
			"array index must be int, got %s", indexType.String())
	}

	if objType.IsError() {
		return TypeError
	}
	if objType.Kind != KindArray {
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, expr.Column,
			"cannot index %s", objType.String())
		return TypeError
	}
	if len(objType.Dims) > 1 {
		return &Type{Kind: KindArray, Elem: objType.Elem, Dims: objType.Dims[1:]}
	}
	return objType.Elem
}

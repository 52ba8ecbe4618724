package parser

import (
	"strings"
	"testing"

	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/lexer"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	p := New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected parse errors:\n%s", p.Diagnostics().Report())
	}
	return prog
}

func TestParse_Include(t *testing.T) {
	prog := parseProgram(t, `include "TriggerLibs/NativeLib";`)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	inc, ok := prog.Decls[0].(*ast.IncludeDecl)
	if !ok {
		t.Fatalf("expected IncludeDecl, got %T", prog.Decls[0])
	}
	if inc.Path != "TriggerLibs/NativeLib" {
		t.Errorf("unexpected path %q", inc.Path)
	}
}

func TestParse_GlobalVar(t *testing.T) {
	prog := parseProgram(t, `int gv_score = 0;`)
	v, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", prog.Decls[0])
	}
	if v.Name != "gv_score" || v.Type.Name != "int" {
		t.Errorf("unexpected decl: %s %s", v.Type.Name, v.Name)
	}
	if v.Init == nil {
		t.Error("expected initializer")
	}
}

func TestParse_ConstAndStatic(t *testing.T) {
	prog := parseProgram(t, `
const fixed PI = 3.14;
static int counter;
`)
	c := prog.Decls[0].(*ast.VarDecl)
	if !c.Const {
		t.Error("expected const")
	}
	s := prog.Decls[1].(*ast.VarDecl)
	if !s.Static {
		t.Error("expected static")
	}
	if s.Init != nil {
		t.Error("expected no initializer")
	}
}

func TestParse_ArrayDecl(t *testing.T) {
	prog := parseProgram(t, `
int[4] board;
fixed[2][3] grid;
`)
	a := prog.Decls[0].(*ast.VarDecl)
	if len(a.Type.Dims) != 1 {
		t.Errorf("expected 1 dimension, got %d", len(a.Type.Dims))
	}
	b := prog.Decls[1].(*ast.VarDecl)
	if len(b.Type.Dims) != 2 {
		t.Errorf("expected 2 dimensions, got %d", len(b.Type.Dims))
	}
}

func TestParse_Struct(t *testing.T) {
	prog := parseProgram(t, `
struct Node {
    int value;
    unit carrier;
};
`)
	s, ok := prog.Decls[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected StructDecl, got %T", prog.Decls[0])
	}
	if s.Name != "Node" || len(s.Fields) != 2 {
		t.Fatalf("unexpected struct: %s with %d fields", s.Name, len(s.Fields))
	}
	if s.Fields[1].Type.Name != "unit" || s.Fields[1].Name != "carrier" {
		t.Errorf("unexpected field: %+v", s.Fields[1])
	}
}

func TestParse_StructTypeUsableAfterDecl(t *testing.T) {
	prog := parseProgram(t, `
struct Node {
    int value;
};

void f() {
    Node n;
    n.value = 1;
}
`)
	fn := prog.Decls[1].(*ast.FunctionDecl)
	local, ok := fn.Body.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected local VarDecl, got %T", fn.Body.Statements[0])
	}
	if local.Type.Name != "Node" {
		t.Errorf("expected Node type, got %s", local.Type.Name)
	}
}

func TestParse_Typedef(t *testing.T) {
	prog := parseProgram(t, `typedef int myint;
myint x;`)
	td := prog.Decls[0].(*ast.TypedefDecl)
	if td.Name != "myint" || td.Type.Name != "int" {
		t.Errorf("unexpected typedef: %+v", td)
	}
	if _, ok := prog.Decls[1].(*ast.VarDecl); !ok {
		t.Errorf("typedef name should parse as a type, got %T", prog.Decls[1])
	}
}

func TestParse_Native(t *testing.T) {
	prog := parseProgram(t, `native void UnitKill(unit u);`)
	n := prog.Decls[0].(*ast.NativeDecl)
	if n.Name != "UnitKill" || n.Return.Name != "void" {
		t.Errorf("unexpected native: %+v", n)
	}
	if len(n.Params) != 1 || n.Params[0].Type.Name != "unit" {
		t.Errorf("unexpected params: %+v", n.Params)
	}
}

func TestParse_FunctionAndPrototype(t *testing.T) {
	prog := parseProgram(t, `
int add(int a, int b);

int add(int a, int b) {
    return a + b;
}
`)
	proto := prog.Decls[0].(*ast.FunctionDecl)
	if proto.Body != nil {
		t.Error("prototype should have nil body")
	}
	fn := prog.Decls[1].(*ast.FunctionDecl)
	if fn.Body == nil || len(fn.Body.Statements) != 1 {
		t.Fatal("expected function body with 1 statement")
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected ReturnStmt, got %T", fn.Body.Statements[0])
	}
	if _, ok := ret.Value.(*ast.BinaryExpr); !ok {
		t.Errorf("expected BinaryExpr, got %T", ret.Value)
	}
}

func TestParse_ControlFlow(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    int i;
    for (i = 0; i < 10; i += 1) {
        if (i == 5) {
            break;
        } else {
            continue;
        }
    }
    while (true) {
        break;
    }
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	stmts := fn.Body.Statements
	forStmt, ok := stmts[1].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", stmts[1])
	}
	if forStmt.Init == nil || forStmt.Condition == nil || forStmt.Post == nil {
		t.Error("expected all three for clauses")
	}
	post, ok := forStmt.Post.(*ast.AssignStmt)
	if !ok || post.Op != lexer.PLUS_ASSIGN {
		t.Errorf("expected += in post clause, got %T", forStmt.Post)
	}
	ifStmt, ok := forStmt.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", forStmt.Body.Statements[0])
	}
	if ifStmt.Else == nil {
		t.Error("expected else branch")
	}
	if _, ok := stmts[2].(*ast.WhileStmt); !ok {
		t.Errorf("expected WhileStmt, got %T", stmts[2])
	}
}

func TestParse_ForClausesOptional(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    for (;;) {
        break;
    }
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Statements[0].(*ast.ForStmt)
	if forStmt.Init != nil || forStmt.Condition != nil || forStmt.Post != nil {
		t.Error("expected all clauses empty")
	}
}

func TestParse_Precedence(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    gv_x = 1 + 2 * 3;
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assign := fn.Body.Statements[0].(*ast.AssignStmt)
	add, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || add.Op != lexer.PLUS {
		t.Fatalf("expected + at root, got %v", assign.Value)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Op != lexer.STAR {
		t.Errorf("expected * on right of +, got %T", add.Right)
	}
}

func TestParse_PostfixChain(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    gv_nodes[0].value = Foo(1, 2.5, null);
}
`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assign := fn.Body.Statements[0].(*ast.AssignStmt)

	member, ok := assign.Target.(*ast.MemberExpr)
	if !ok || member.Field != "value" {
		t.Fatalf("expected member access target, got %T", assign.Target)
	}
	if _, ok := member.Object.(*ast.IndexExpr); !ok {
		t.Errorf("expected index below member, got %T", member.Object)
	}

	call, ok := assign.Value.(*ast.CallExpr)
	if !ok || len(call.Args) != 3 {
		t.Fatalf("expected call with 3 args, got %T", assign.Value)
	}
	if _, ok := call.Args[2].(*ast.NullLit); !ok {
		t.Errorf("expected null arg, got %T", call.Args[2])
	}
}

func TestParse_ErrorRecovery(t *testing.T) {
	p := New(`
int gv_a = ;
int gv_b = 2;
`)
	prog := p.Parse()

	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected syntax errors")
	}
	// the bad declaration must not swallow the good one
	found := false
	for _, d := range prog.Decls {
		if v, ok := d.(*ast.VarDecl); ok && v.Name == "gv_b" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse gv_b")
	}
}

func TestParse_StructBodyRecovery(t *testing.T) {
	p := New(`
struct S {
    5;
    int ok;
};
int gv_after = 1;
`)
	prog := p.Parse()

	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected syntax errors")
	}
	// the bad field must not stall the parser or swallow what follows
	s, ok := prog.Decls[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected StructDecl, got %T", prog.Decls[0])
	}
	if len(s.Fields) != 1 || s.Fields[0].Name != "ok" {
		t.Errorf("unexpected fields: %+v", s.Fields)
	}
	found := false
	for _, d := range prog.Decls {
		if v, ok := d.(*ast.VarDecl); ok && v.Name == "gv_after" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse gv_after")
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	p := New(`void f( {`)
	p.Parse()
	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected errors")
	}
	if !strings.Contains(p.Diagnostics().Report(), "error:") {
		t.Errorf("unexpected report: %s", p.Diagnostics().Report())
	}
}

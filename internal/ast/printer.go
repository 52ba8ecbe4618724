package ast

import (
	"fmt"
	"strings"

	"github.com/gxlang/gxc/internal/lexer"
)

// Print returns a tree-like string representation of the AST for debugging
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Program:
		sb.WriteString(prefix + "Program\n")
		for _, d := range n.Decls {
			printNode(sb, d, indent+1)
		}

	case *IncludeDecl:
		sb.WriteString(fmt.Sprintf("%sInclude: %s\n", prefix, n.Path))

	case *StructDecl:
		sb.WriteString(fmt.Sprintf("%sStruct: %s\n", prefix, n.Name))
		for _, f := range n.Fields {
			sb.WriteString(fmt.Sprintf("%s  %s: %s\n", prefix, f.Name, typeRefString(f.Type)))
		}

	case *TypedefDecl:
		sb.WriteString(fmt.Sprintf("%sTypedef: %s = %s\n", prefix, n.Name, typeRefString(n.Type)))

	case *NativeDecl:
		sb.WriteString(fmt.Sprintf("%sNative: %s\n", prefix, n.Name))
		printSignature(sb, prefix, n.Params, n.Return)

	case *VarDecl:
		qual := ""
		if n.Const {
			qual = " (const)"
		} else if n.Static {
			qual = " (static)"
		}
		sb.WriteString(fmt.Sprintf("%sVar: %s %s%s\n", prefix, typeRefString(n.Type), n.Name, qual))
		if n.Init != nil {
			sb.WriteString(fmt.Sprintf("%s  Init:\n", prefix))
			printNode(sb, n.Init, indent+2)
		}

	case *FunctionDecl:
		kind := "Function"
		if n.Body == nil {
			kind = "Prototype"
		}
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", prefix, kind, n.Name))
		printSignature(sb, prefix, n.Params, n.Return)
		if n.Body != nil {
			sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
			printNode(sb, n.Body, indent+2)
		}

	case *Block:
		for _, stmt := range n.Statements {
			printNode(sb, stmt, indent)
		}

	case *ExprStmt:
		sb.WriteString(fmt.Sprintf("%sExprStmt\n", prefix))
		printNode(sb, n.Expr, indent+1)

	case *AssignStmt:
		sb.WriteString(fmt.Sprintf("%sAssignStmt: %s\n", prefix, opString(n.Op)))
		sb.WriteString(fmt.Sprintf("%s  Target:\n", prefix))
		printNode(sb, n.Target, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Value:\n", prefix))
		printNode(sb, n.Value, indent+2)

	case *IfStmt:
		sb.WriteString(fmt.Sprintf("%sIfStmt\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Then:\n", prefix))
		printNode(sb, n.Then, indent+2)
		if n.Else != nil {
			sb.WriteString(fmt.Sprintf("%s  Else:\n", prefix))
			printNode(sb, n.Else, indent+2)
		}

	case *WhileStmt:
		sb.WriteString(fmt.Sprintf("%sWhileStmt\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
		printNode(sb, n.Body, indent+2)

	case *ForStmt:
		sb.WriteString(fmt.Sprintf("%sForStmt\n", prefix))
		if n.Init != nil {
			sb.WriteString(fmt.Sprintf("%s  Init:\n", prefix))
			printNode(sb, n.Init, indent+2)
		}
		if n.Condition != nil {
			sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
			printNode(sb, n.Condition, indent+2)
		}
		if n.Post != nil {
			sb.WriteString(fmt.Sprintf("%s  Post:\n", prefix))
			printNode(sb, n.Post, indent+2)
		}
		sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
		printNode(sb, n.Body, indent+2)

	case *ReturnStmt:
		sb.WriteString(fmt.Sprintf("%sReturnStmt\n", prefix))
		if n.Value != nil {
			printNode(sb, n.Value, indent+1)
		}

	case *BreakStmt:
		sb.WriteString(fmt.Sprintf("%sBreakStmt\n", prefix))

	case *ContinueStmt:
		sb.WriteString(fmt.Sprintf("%sContinueStmt\n", prefix))

	case *BinaryExpr:
		sb.WriteString(fmt.Sprintf("%sBinaryExpr: %s\n", prefix, opString(n.Op)))
		sb.WriteString(fmt.Sprintf("%s  Left:\n", prefix))
		printNode(sb, n.Left, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Right:\n", prefix))
		printNode(sb, n.Right, indent+2)

	case *UnaryExpr:
		sb.WriteString(fmt.Sprintf("%sUnaryExpr: %s\n", prefix, opString(n.Op)))
		printNode(sb, n.Operand, indent+1)

	case *CallExpr:
		sb.WriteString(fmt.Sprintf("%sCallExpr\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Callee:\n", prefix))
		printNode(sb, n.Callee, indent+2)
		if len(n.Args) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Args:\n", prefix))
			for _, arg := range n.Args {
				printNode(sb, arg, indent+2)
			}
		}

	case *MemberExpr:
		sb.WriteString(fmt.Sprintf("%sMemberExpr: .%s\n", prefix, n.Field))
		printNode(sb, n.Object, indent+1)

	case *IndexExpr:
		sb.WriteString(fmt.Sprintf("%sIndexExpr\n", prefix))
		sb.WriteString(fmt.Sprintf("%s  Object:\n", prefix))
		printNode(sb, n.Object, indent+2)
		sb.WriteString(fmt.Sprintf("%s  Index:\n", prefix))
		printNode(sb, n.Index, indent+2)

	case *Identifier:
		sb.WriteString(fmt.Sprintf("%sIdentifier: %s\n", prefix, n.Name))

	case *IntLit:
		sb.WriteString(fmt.Sprintf("%sIntLit: %s\n", prefix, n.Literal))

	case *FixedLit:
		sb.WriteString(fmt.Sprintf("%sFixedLit: %s\n", prefix, n.Literal))

	case *StringLit:
		sb.WriteString(fmt.Sprintf("%sStringLit: %q\n", prefix, n.Value))

	case *BoolLit:
		sb.WriteString(fmt.Sprintf("%sBoolLit: %t\n", prefix, n.Value))

	case *NullLit:
		sb.WriteString(fmt.Sprintf("%sNullLit\n", prefix))

	default:
		sb.WriteString(fmt.Sprintf("%sUnknown node type: %T\n", prefix, node))
	}
}

func printSignature(sb *strings.Builder, prefix string, params []*Param, ret *TypeRef) {
	if len(params) > 0 {
		sb.WriteString(fmt.Sprintf("%s  Params:\n", prefix))
		for _, p := range params {
			sb.WriteString(fmt.Sprintf("%s    %s: %s\n", prefix, p.Name, typeRefString(p.Type)))
		}
	} else {
		sb.WriteString(fmt.Sprintf("%s  Params: none\n", prefix))
	}
	if ret != nil {
		sb.WriteString(fmt.Sprintf("%s  Returns: %s\n", prefix, typeRefString(ret)))
	}
}

func typeRefString(t *TypeRef) string {
	if t == nil {
		return "?"
	}
	name := t.Name
	for range t.Dims {
		name += "[]"
	}
	return name
}

func opString(tt lexer.TokenType) string {
	switch tt {
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.STAR:
		return "*"
	case lexer.SLASH:
		return "/"
	case lexer.PERCENT:
		return "%"
	case lexer.EQ:
		return "=="
	case lexer.NEQ:
		return "!="
	case lexer.LT:
		return "<"
	case lexer.LEQ:
		return "<="
	case lexer.GT:
		return ">"
	case lexer.GEQ:
		return ">="
	case lexer.AND:
		return "&&"
	case lexer.OR:
		return "||"
	case lexer.NOT:
		return "!"
	case lexer.ASSIGN:
		return "="
	case lexer.PLUS_ASSIGN:
		return "+="
	case lexer.MINUS_ASSIGN:
		return "-="
	case lexer.STAR_ASSIGN:
		return "*="
	case lexer.SLASH_ASSIGN:
		return "/="
	default:
		return fmt.Sprintf("token(%d)", tt)
	}
}

package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT      // x, gv_score, UnitKill
	INT_LIT    // 123, 0x1F
	FIXED_LIT  // 123.45
	STRING_LIT // "hello"

	// Keywords
	IF
	ELSE
	WHILE
	FOR
	RETURN
	BREAK
	CONTINUE
	STRUCT
	TYPEDEF
	CONST
	STATIC
	NATIVE
	INCLUDE
	TRUE
	FALSE
	NULL

	// Operators
	PLUS         // +
	MINUS        // -
	STAR         // *
	SLASH        // /
	PERCENT      // %
	EQ           // ==
	NEQ          // !=
	LT           // <
	GT           // >
	LEQ          // <=
	GEQ          // >=
	AND          // &&
	OR           // ||
	NOT          // !
	ASSIGN       // =
	PLUS_ASSIGN  // +=
	MINUS_ASSIGN // -=
	STAR_ASSIGN  // *=
	SLASH_ASSIGN // /=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT_LIT:
		return "INT_LIT"
	case FIXED_LIT:
		return "FIXED_LIT"
	case STRING_LIT:
		return "STRING_LIT"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case FOR:
		return "FOR"
	case RETURN:
		return "RETURN"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	case STRUCT:
		return "STRUCT"
	case TYPEDEF:
		return "TYPEDEF"
	case CONST:
		return "CONST"
	case STATIC:
		return "STATIC"
	case NATIVE:
		return "NATIVE"
	case INCLUDE:
		return "INCLUDE"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NULL:
		return "NULL"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LEQ:
		return "LEQ"
	case GEQ:
		return "GEQ"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case ASSIGN:
		return "ASSIGN"
	case PLUS_ASSIGN:
		return "PLUS_ASSIGN"
	case MINUS_ASSIGN:
		return "MINUS_ASSIGN"
	case STAR_ASSIGN:
		return "STAR_ASSIGN"
	case SLASH_ASSIGN:
		return "SLASH_ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case DOT:
		return "DOT"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

// keywords maps Galaxy keywords to their token types. Type names (int, fixed,
// unit, ...) are plain identifiers; the parser resolves them against its
// type-name table.
var keywords = map[string]TokenType{
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"return":   RETURN,
	"break":    BREAK,
	"continue": CONTINUE,
	"struct":   STRUCT,
	"typedef":  TYPEDEF,
	"const":    CONST,
	"static":   STATIC,
	"native":   NATIVE,
	"include":  INCLUDE,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

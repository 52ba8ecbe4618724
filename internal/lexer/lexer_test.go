package lexer

import (
	"testing"
)

func TestNextToken_Operators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "arithmetic operators",
			input:    "+ - * / %",
			expected: []TokenType{PLUS, MINUS, STAR, SLASH, PERCENT, EOF},
		},
		{
			name:     "comparison operators",
			input:    "== != < > <= >=",
			expected: []TokenType{EQ, NEQ, LT, GT, LEQ, GEQ, EOF},
		},
		{
			name:     "logical operators",
			input:    "&& || !",
			expected: []TokenType{AND, OR, NOT, EOF},
		},
		{
			name:     "assignment operators",
			input:    "= += -= *= /=",
			expected: []TokenType{ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, EOF},
		},
		{
			name:     "delimiters",
			input:    "( ) { } [ ] , ; .",
			expected: []TokenType{LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMICOLON, DOT, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i, want := range tt.expected {
				tok := l.NextToken()
				if tok.Type != want {
					t.Errorf("token %d: expected %v, got %v (%q)", i, want, tok.Type, tok.Literal)
				}
			}
		})
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "if else while for return break continue struct typedef const static native include true false null"
	expected := []TokenType{
		IF, ELSE, WHILE, FOR, RETURN, BREAK, CONTINUE,
		STRUCT, TYPEDEF, CONST, STATIC, NATIVE, INCLUDE,
		TRUE, FALSE, NULL, EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token %d: expected %v, got %v (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNextToken_TypeNamesAreIdents(t *testing.T) {
	input := "int fixed bool string text byte void unit trigger timer"
	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type != IDENT {
			t.Errorf("expected IDENT for %q, got %v", tok.Literal, tok.Type)
		}
	}
}

func TestNextToken_Literals(t *testing.T) {
	tests := []struct {
		input       string
		wantType    TokenType
		wantLiteral string
	}{
		{"42", INT_LIT, "42"},
		{"0x1F", INT_LIT, "0x1F"},
		{"3.14", FIXED_LIT, "3.14"},
		{".5", FIXED_LIT, ".5"},
		{`"hello world"`, STRING_LIT, "hello world"},
		{`"with \" escape"`, STRING_LIT, `with \" escape`},
		{"gv_score", IDENT, "gv_score"},
		{"UnitKill", IDENT, "UnitKill"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Errorf("input %q: expected type %v, got %v", tt.input, tt.wantType, tok.Type)
		}
		if tok.Literal != tt.wantLiteral {
			t.Errorf("input %q: expected literal %q, got %q", tt.input, tt.wantLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := `// line comment
x /* block
comment */ y`

	l := New(input)
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Errorf("expected IDENT x, got %v %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Literal != "y" {
		t.Errorf("expected IDENT y, got %v %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != EOF {
		t.Errorf("expected EOF, got %v", tok.Type)
	}
}

func TestNextToken_Positions(t *testing.T) {
	input := "int x;\nx = 1;"
	l := New(input)

	tok := l.NextToken() // int
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("int: expected 1:1, got %d:%d", tok.Line, tok.Column)
	}
	tok = l.NextToken() // x
	if tok.Line != 1 || tok.Column != 5 {
		t.Errorf("x: expected 1:5, got %d:%d", tok.Line, tok.Column)
	}
	l.NextToken() // ;
	tok = l.NextToken() // x on line 2
	if tok.Line != 2 || tok.Column != 1 {
		t.Errorf("x: expected 2:1, got %d:%d", tok.Line, tok.Column)
	}
}

func TestNextToken_DeclarationSnippet(t *testing.T) {
	input := `native void UnitKill(unit u);`
	expected := []struct {
		typ     TokenType
		literal string
	}{
		{NATIVE, "native"},
		{IDENT, "void"},
		{IDENT, "UnitKill"},
		{LPAREN, "("},
		{IDENT, "unit"},
		{IDENT, "u"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.typ || tok.Literal != want.literal {
			t.Errorf("token %d: expected %v %q, got %v %q", i, want.typ, want.literal, tok.Type, tok.Literal)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := New("int x = 1;").Tokenize()
	if len(tokens) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(tokens))
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("last token should be EOF, got %v", tokens[len(tokens)-1].Type)
	}
}

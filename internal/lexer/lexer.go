package lexer

// Lexer scans Galaxy source code and produces tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character in the input
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespaceAndComments skips spaces, line comments and block comments
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar() // consume '/'
			l.readChar() // consume '*'
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar() // consume '*'
				l.readChar() // consume '/'
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = EOF
		tok.Literal = ""
		return tok
	case '+':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = PLUS_ASSIGN
			tok.Literal = "+="
		} else {
			tok.Type = PLUS
			tok.Literal = "+"
		}
	case '-':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = MINUS_ASSIGN
			tok.Literal = "-="
		} else {
			tok.Type = MINUS
			tok.Literal = "-"
		}
	case '*':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = STAR_ASSIGN
			tok.Literal = "*="
		} else {
			tok.Type = STAR
			tok.Literal = "*"
		}
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = SLASH_ASSIGN
			tok.Literal = "/="
		} else {
			tok.Type = SLASH
			tok.Literal = "/"
		}
	case '%':
		tok.Type = PERCENT
		tok.Literal = "%"
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = EQ
			tok.Literal = "=="
		} else {
			tok.Type = ASSIGN
			tok.Literal = "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = NEQ
			tok.Literal = "!="
		} else {
			tok.Type = NOT
			tok.Literal = "!"
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = LEQ
			tok.Literal = "<="
		} else {
			tok.Type = LT
			tok.Literal = "<"
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = GEQ
			tok.Literal = ">="
		} else {
			tok.Type = GT
			tok.Literal = ">"
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok.Type = AND
			tok.Literal = "&&"
		} else {
			tok.Type = ILLEGAL
			tok.Literal = "&"
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok.Type = OR
			tok.Literal = "||"
		} else {
			tok.Type = ILLEGAL
			tok.Literal = "|"
		}
	case '(':
		tok.Type = LPAREN
		tok.Literal = "("
	case ')':
		tok.Type = RPAREN
		tok.Literal = ")"
	case '{':
		tok.Type = LBRACE
		tok.Literal = "{"
	case '}':
		tok.Type = RBRACE
		tok.Literal = "}"
	case '[':
		tok.Type = LBRACKET
		tok.Literal = "["
	case ']':
		tok.Type = RBRACKET
		tok.Literal = "]"
	case ',':
		tok.Type = COMMA
		tok.Literal = ","
	case ';':
		tok.Type = SEMICOLON
		tok.Literal = ";"
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber(tok)
		}
		tok.Type = DOT
		tok.Literal = "."
	case '"':
		return l.readString(tok)
	default:
		if isLetter(l.ch) {
			return l.readIdentifier(tok)
		}
		if isDigit(l.ch) {
			return l.readNumber(tok)
		}
		tok.Type = ILLEGAL
		tok.Literal = string(l.ch)
	}

	l.readChar()
	return tok
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier(tok Token) Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tok.Literal = l.input[start:l.position]
	tok.Type = LookupIdent(tok.Literal)
	return tok
}

// readNumber reads an integer, hex integer or fixed-point literal
func (l *Lexer) readNumber(tok Token) Token {
	start := l.position

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar() // consume '0'
		l.readChar() // consume 'x'
		for isHexDigit(l.ch) {
			l.readChar()
		}
		tok.Type = INT_LIT
		tok.Literal = l.input[start:l.position]
		return tok
	}

	for isDigit(l.ch) {
		l.readChar()
	}
	tok.Type = INT_LIT

	// fixed literal: digits '.' digits (a leading '.' also lands here)
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
		tok.Type = FIXED_LIT
	}

	tok.Literal = l.input[start:l.position]
	return tok
}

// readString reads a string literal including escape sequences
func (l *Lexer) readString(tok Token) Token {
	l.readChar() // consume opening quote
	start := l.position
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == 0 {
		tok.Type = ILLEGAL
		tok.Literal = l.input[start:l.position]
		return tok
	}
	tok.Type = STRING_LIT
	tok.Literal = l.input[start:l.position]
	l.readChar() // consume closing quote
	return tok
}

// Tokenize scans the entire input and returns all tokens
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

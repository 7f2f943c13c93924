package lexer

import (
	"unicode"
)

type Lexer struct {
	src  []rune
	i    int
	ch   rune
	eof  bool // ch is past the last rune
	line int
	col  int
}

func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.i >= len(l.src) {
		l.ch = 0
		l.eof = true
		l.col++
		return
	}
	l.ch = l.src[l.i]
	l.i++
	l.col++
}

func (l *Lexer) peek() rune {
	if l.i >= len(l.src) {
		return 0
	}
	return l.src[l.i]
}

// skip consumes whitespace and comments. It reports false when a block
// comment runs into the end of input.
func (l *Lexer) skip() bool {
	for {
		for unicode.IsSpace(l.ch) {
			l.read()
		}
		if l.ch == '/' && l.peek() == '/' {
			for !l.eof && l.ch != '\n' {
				l.read()
			}
			continue
		}
		if l.ch == '/' && l.peek() == '*' {
			l.read()
			l.read()
			for {
				if l.eof {
					return false
				}
				if l.ch == '*' && l.peek() == '/' {
					l.read()
					l.read()
					break
				}
				l.read()
			}
			continue
		}
		return true
	}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Next() Token {
	startLine, startCol := l.line, l.col
	if !l.skip() {
		return Token{Type: ILLEGAL, Lex: "/*", Line: startLine, Col: startCol}
	}
	tok := Token{Line: l.line, Col: l.col}
	if l.eof {
		tok.Type = EOF
		return tok
	}
	ch := l.ch
	switch ch {
	case '(':
		tok.Type = LPAREN
	case ')':
		tok.Type = RPAREN
	case '{':
		tok.Type = LBRACE
	case '}':
		tok.Type = RBRACE
	case '[':
		tok.Type = LBRACK
	case ']':
		tok.Type = RBRACK
	case ';':
		tok.Type = SEMI
	case ',':
		tok.Type = COMMA
	case '+':
		tok.Type = PLUS
	case '-':
		tok.Type = MINUS
	case '*':
		tok.Type = STAR
	case '/':
		tok.Type = SLASH
	case '%':
		tok.Type = PERCENT
	case '=':
		return l.twoChar(tok, '=', ASSIGN, EQEQ)
	case '!':
		return l.twoChar(tok, '=', BANG, NEQ)
	case '<':
		return l.twoChar(tok, '=', LT, LE)
	case '>':
		return l.twoChar(tok, '=', GT, GE)
	case '&':
		return l.twoChar(tok, '&', ILLEGAL, ANDAND)
	case '|':
		return l.twoChar(tok, '|', ILLEGAL, OROR)
	default:
		if isIdentStart(ch) {
			return l.ident(tok)
		}
		if unicode.IsDigit(ch) {
			return l.number(tok)
		}
		tok.Type = ILLEGAL
	}
	tok.Lex = string(ch)
	l.read()
	return tok
}

// twoChar scans a one-or-two character operator. The single-character form
// is tt1, the form followed by second is tt2.
func (l *Lexer) twoChar(tok Token, second rune, tt1, tt2 TokenType) Token {
	first := l.ch
	l.read()
	if l.ch == second {
		l.read()
		tok.Type, tok.Lex = tt2, string([]rune{first, second})
		return tok
	}
	tok.Type, tok.Lex = tt1, string(first)
	return tok
}

func (l *Lexer) ident(tok Token) Token {
	ident := []rune{l.ch}
	l.read()
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		ident = append(ident, l.ch)
		l.read()
	}
	tok.Lex = string(ident)
	if kw, ok := keywords[tok.Lex]; ok {
		tok.Type = kw
	} else {
		tok.Type = IDENT
	}
	return tok
}

// number scans decimal, octal (leading 0) and hexadecimal (0x / 0X)
// literals. The lexeme is kept verbatim; the parser converts it.
func (l *Lexer) number(tok Token) Token {
	num := []rune{l.ch}
	l.read()
	if num[0] == '0' && (l.ch == 'x' || l.ch == 'X') {
		num = append(num, l.ch)
		l.read()
		for isHexDigit(l.ch) {
			num = append(num, l.ch)
			l.read()
		}
	} else {
		for unicode.IsDigit(l.ch) {
			num = append(num, l.ch)
			l.read()
		}
	}
	// 12abc is not a number followed by an identifier
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		num = append(num, l.ch)
		l.read()
		tok.Type = ILLEGAL
	}
	if tok.Type != ILLEGAL {
		tok.Type = INT
	}
	tok.Lex = string(num)
	return tok
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

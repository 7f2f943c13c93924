package lexer

import (
	"fmt"
	"sort"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT
	INT

	// Keywords
	KW_CONST
	KW_INT
	KW_VOID
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_BREAK
	KW_CONTINUE
	KW_RETURN

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	LBRACK // [
	RBRACK // ]
	SEMI   // ;
	COMMA  // ,
	ASSIGN // =

	// Arithmetic
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Logical
	ANDAND // &&
	OROR   // ||
	BANG   // !

	// Comparison
	EQEQ // ==
	NEQ  // !=
	LT   // <
	LE   // <=
	GT   // >
	GE   // >=
)

var tokenNames = [...]string{
	EOF:         "end of file",
	ILLEGAL:     "illegal token",
	IDENT:       "identifier",
	INT:         "integer literal",
	KW_CONST:    "'const'",
	KW_INT:      "'int'",
	KW_VOID:     "'void'",
	KW_IF:       "'if'",
	KW_ELSE:     "'else'",
	KW_WHILE:    "'while'",
	KW_BREAK:    "'break'",
	KW_CONTINUE: "'continue'",
	KW_RETURN:   "'return'",
	LPAREN:      "'('",
	RPAREN:      "')'",
	LBRACE:      "'{'",
	RBRACE:      "'}'",
	LBRACK:      "'['",
	RBRACK:      "']'",
	SEMI:        "';'",
	COMMA:       "','",
	ASSIGN:      "'='",
	PLUS:        "'+'",
	MINUS:       "'-'",
	STAR:        "'*'",
	SLASH:       "'/'",
	PERCENT:     "'%'",
	ANDAND:      "'&&'",
	OROR:        "'||'",
	BANG:        "'!'",
	EQEQ:        "'=='",
	NEQ:         "'!='",
	LT:          "'<'",
	LE:          "'<='",
	GT:          "'>'",
	GE:          "'>='",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"const":    KW_CONST,
	"int":      KW_INT,
	"void":     KW_VOID,
	"if":       KW_IF,
	"else":     KW_ELSE,
	"while":    KW_WHILE,
	"break":    KW_BREAK,
	"continue": KW_CONTINUE,
	"return":   KW_RETURN,
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

type Token struct {
	Type TokenType
	Lex  string
	Line int
	Col  int
}

package parser

import (
	"math"
	"strconv"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/errors"
	"github.com/tinyrange/sysy/internal/lexer"
	"github.com/tinyrange/sysy/internal/types"
)

// DefaultMaxDepth bounds the nesting of statements and expressions. Each
// binary operator folded into a chain counts as one level, since the tree
// nests one node deeper per operator.
const DefaultMaxDepth = 1024

// MaxDepthLimit is the largest depth WithMaxDepth accepts. Trees within it
// can be printed without exhausting the goroutine stack.
const MaxDepthLimit = 1 << 14

type Parser struct {
	lx       *lexer.Lexer
	tok      lexer.Token
	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth accepted before the parser
// gives up with a ParseError. Values below 1 select DefaultMaxDepth and
// values above MaxDepthLimit are clamped to it.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		switch {
		case n < 1:
			n = DefaultMaxDepth
		case n > MaxDepthLimit:
			n = MaxDepthLimit
		}
		p.maxDepth = n
	}
}

// ParseProgram parses a complete SysY compilation unit. Failures are
// reported as *errors.ParseError.
func ParseProgram(src string, opts ...Option) (*ast.CompUnit, error) {
	p := &Parser{lx: lexer.New(src), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	p.next()
	c := &ast.CompUnit{}
	for p.tok.Type != lexer.EOF {
		u, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		c.Units = append(c.Units, u)
	}
	return c, nil
}

func (p *Parser) next() { p.tok = p.lx.Next() }

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return errors.NewParseError(tok.Line, tok.Col, format, args...)
}

func (p *Parser) unexpected(what string) error {
	if p.tok.Type == lexer.ILLEGAL {
		return p.errorf(p.tok, "illegal token %q", p.tok.Lex)
	}
	hint := ""
	if p.tok.Type == lexer.IDENT {
		hint = keywordHint(p.tok.Lex)
	}
	return p.errorf(p.tok, "expected %s, got %s%s", what, describe(p.tok), hint)
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != tt {
		return lexer.Token{}, p.unexpected(tt.String())
	}
	t := p.tok
	p.next()
	return t, nil
}

func (p *Parser) accept(tt lexer.TokenType) bool {
	if p.tok.Type != tt {
		return false
	}
	p.next()
	return true
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(p.tok, "nesting exceeds maximum depth of %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// restoreDepth resets the depth after a loop that called enter once per
// folded operator.
func (p *Parser) restoreDepth(depth int) { p.depth = depth }

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.IDENT, lexer.INT:
		return tok.Type.String() + " " + strconv.Quote(tok.Lex)
	default:
		return tok.Type.String()
	}
}

// parseUnit parses a top-level declaration or function definition.
// int and void both start a function; only int may start a variable
// declaration, so the decision is made after the identifier.
func (p *Parser) parseUnit() (ast.Unit, error) {
	switch p.tok.Type {
	case lexer.KW_CONST:
		return p.parseConstDecl()
	case lexer.KW_INT, lexer.KW_VOID:
		typTok := p.tok
		typ := types.FromKeyword(typTok.Lex)
		p.next()
		nameTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if p.tok.Type == lexer.LPAREN {
			return p.parseFuncDef(typ, nameTok.Lex)
		}
		if !typ.IsBase() {
			return nil, p.errorf(typTok, "variable %s cannot have type %s", nameTok.Lex, typ)
		}
		return p.parseVarDeclRest(typ, nameTok.Lex)
	default:
		return nil, p.unexpected("declaration or function definition")
	}
}

func (p *Parser) parseFuncDef(typ types.Kind, name string) (*ast.FuncDef, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Param
	if p.tok.Type != lexer.RPAREN {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Type: typ, Name: name, Params: params, Body: body}, nil
}

// parseParam parses int a, int a[] or int a[][N]... The first bracket
// pair must be empty and is recorded only as Array.
func (p *Parser) parseParam() (*ast.Param, error) {
	if p.tok.Type != lexer.KW_INT {
		return nil, p.unexpected("parameter type 'int'")
	}
	p.next()
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	param := &ast.Param{Type: types.Int, Name: nameTok.Lex}
	if p.tok.Type != lexer.LBRACK {
		return param, nil
	}
	p.next()
	if p.tok.Type != lexer.RBRACK {
		return nil, p.errorf(p.tok, "first dimension of array parameter %s must be empty", param.Name)
	}
	p.next()
	param.Array = true
	param.Dims, err = p.parseDims()
	if err != nil {
		return nil, err
	}
	return param, nil
}

// parseDims parses { '[' ConstExp ']' }.
func (p *Parser) parseDims() ([]*ast.ConstExp, error) {
	var dims []*ast.ConstExp
	for p.accept(lexer.LBRACK) {
		d, err := p.parseConstExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	block := &ast.Block{}
	for p.tok.Type != lexer.RBRACE && p.tok.Type != lexer.EOF {
		item, err := p.parseBlockItem()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, item)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseBlockItem() (ast.BlockItem, error) {
	switch p.tok.Type {
	case lexer.KW_CONST:
		return p.parseConstDecl()
	case lexer.KW_INT:
		p.next()
		nameTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return p.parseVarDeclRest(types.Int, nameTok.Lex)
	case lexer.KW_VOID:
		return nil, p.errorf(p.tok, "variables cannot have type void")
	default:
		return p.parseStmt()
	}
}

// Declarations

// parseConstDecl: const int ConstDef {, ConstDef} ;
func (p *Parser) parseConstDecl() (*ast.ConstDecl, error) {
	if _, err := p.expect(lexer.KW_CONST); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KW_INT); err != nil {
		return nil, err
	}
	decl := &ast.ConstDecl{Type: types.Int}
	for {
		def, err := p.parseConstDef()
		if err != nil {
			return nil, err
		}
		decl.Defs = append(decl.Defs, def)
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseConstDef() (*ast.ConstDef, error) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseConstInitVal()
	if err != nil {
		return nil, err
	}
	return &ast.ConstDef{Name: nameTok.Lex, Dims: dims, Init: init}, nil
}

func (p *Parser) parseConstInitVal() (ast.ConstInitVal, error) {
	if p.tok.Type != lexer.LBRACE {
		e, err := p.parseConstExp()
		if err != nil {
			return nil, err
		}
		return &ast.ConstExpInitVal{Exp: e}, nil
	}
	p.next()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	list := &ast.ConstInitList{}
	if p.tok.Type != lexer.RBRACE {
		for {
			elem, err := p.parseConstInitVal()
			if err != nil {
				return nil, err
			}
			list.Elems = append(list.Elems, elem)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return list, nil
}

// parseVarDeclRest parses the remainder of a variable declaration whose
// type and first name have already been consumed.
func (p *Parser) parseVarDeclRest(typ types.Kind, firstName string) (*ast.VarDecl, error) {
	decl := &ast.VarDecl{Type: typ}
	name := firstName
	for {
		def, err := p.parseVarDef(name)
		if err != nil {
			return nil, err
		}
		decl.Defs = append(decl.Defs, def)
		if !p.accept(lexer.COMMA) {
			break
		}
		nameTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		name = nameTok.Lex
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseVarDef(name string) (*ast.VarDef, error) {
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	def := &ast.VarDef{Name: name, Dims: dims}
	if p.accept(lexer.ASSIGN) {
		def.Init, err = p.parseInitVal()
		if err != nil {
			return nil, err
		}
	}
	return def, nil
}

func (p *Parser) parseInitVal() (ast.InitVal, error) {
	if p.tok.Type != lexer.LBRACE {
		e, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		return &ast.ExpInitVal{Exp: e}, nil
	}
	p.next()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	list := &ast.InitList{}
	if p.tok.Type != lexer.RBRACE {
		for {
			elem, err := p.parseInitVal()
			if err != nil {
				return nil, err
			}
			list.Elems = append(list.Elems, elem)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return list, nil
}

// parseNumber converts an INT token. Decimal, octal and hex forms are
// accepted; values that do not fit in an int32 are rejected.
func (p *Parser) parseNumber() (*ast.Number, error) {
	tok := p.tok
	v, err := strconv.ParseInt(tok.Lex, 0, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return nil, p.errorf(tok, "integer literal %s out of range", tok.Lex)
		}
		return nil, p.errorf(tok, "malformed integer literal %q", tok.Lex)
	}
	if v > math.MaxInt32 {
		return nil, p.errorf(tok, "integer literal %s out of range", tok.Lex)
	}
	p.next()
	return &ast.Number{Value: int32(v)}, nil
}

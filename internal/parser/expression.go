package parser

import (
	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/lexer"
)

// Expr grammar, loosest first:
//
//	Exp      = LOrExp
//	LOrExp   = LAndExp { '||' LAndExp }
//	LAndExp  = EqExp { '&&' EqExp }
//	EqExp    = RelExp { ('==' | '!=') RelExp }
//	RelExp   = AddExp { ('<' | '>' | '<=' | '>=') AddExp }
//	AddExp   = MulExp { ('+' | '-') MulExp }
//	MulExp   = UnaryExp { ('*' | '/' | '%') UnaryExp }
//	UnaryExp = PrimaryExp | IDENT '(' [Exp {',' Exp}] ')' | ('+' | '-' | '!') UnaryExp
//	PrimaryExp = '(' Exp ')' | LVal | Number
//	LVal     = IDENT { '[' Exp ']' }
//
// LVal is handled in parseUnary, which needs the identifier to tell it
// apart from a call.
//
// Each loop folds into a Binary node whose Left is the tree built so far,
// so operators of equal precedence associate to the left.
func (p *Parser) parseExp() (*ast.Exp, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	lor, err := p.parseLOr()
	if err != nil {
		return nil, err
	}
	return &ast.Exp{LOr: lor}, nil
}

func (p *Parser) parseConstExp() (*ast.ConstExp, error) {
	e, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	return &ast.ConstExp{Exp: e}, nil
}

func (p *Parser) parseLOr() (ast.LOrExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseLAnd()
	if err != nil {
		return nil, err
	}
	var left ast.LOrExp = &ast.LOrPass{LAnd: first}
	for p.tok.Type == lexer.OROR {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseLAnd()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewLOrBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseLAnd() (ast.LAndExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseEq()
	if err != nil {
		return nil, err
	}
	var left ast.LAndExp = &ast.LAndPass{Eq: first}
	for p.tok.Type == lexer.ANDAND {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseEq()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewLAndBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseEq() (ast.EqExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseRel()
	if err != nil {
		return nil, err
	}
	var left ast.EqExp = &ast.EqPass{Rel: first}
	for p.tok.Type == lexer.EQEQ || p.tok.Type == lexer.NEQ {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseRel()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewEqBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseRel() (ast.RelExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	var left ast.RelExp = &ast.RelPass{Add: first}
	for isRelOp(p.tok.Type) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewRelBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseAdd() (ast.AddExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	var left ast.AddExp = &ast.AddPass{Mul: first}
	for p.tok.Type == lexer.PLUS || p.tok.Type == lexer.MINUS {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewAddBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseMul() (ast.MulExp, error) {
	defer p.restoreDepth(p.depth)
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	var left ast.MulExp = &ast.MulPass{Unary: first}
	for p.tok.Type == lexer.STAR || p.tok.Type == lexer.SLASH || p.tok.Type == lexer.PERCENT {
		if err := p.enter(); err != nil {
			return nil, err
		}
		op := binaryOperation(p.tok.Type)
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewMulBinary(left, op, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.UnaryExp, error) {
	switch p.tok.Type {
	case lexer.PLUS, lexer.MINUS, lexer.BANG:
		op := unaryOperation(p.tok.Type)
		p.next()
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpExp{Op: op, Operand: operand}, nil
	case lexer.IDENT:
		nameTok := p.tok
		p.next()
		if p.tok.Type == lexer.LPAREN {
			return p.parseCall(nameTok.Lex)
		}
		lval, err := p.parseLValRest(nameTok.Lex)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryPass{Primary: lval}, nil
	default:
		primary, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryPass{Primary: primary}, nil
	}
}

func (p *Parser) parseCall(name string) (*ast.CallExp, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	call := &ast.CallExp{Name: name}
	if p.tok.Type != lexer.RPAREN {
		for {
			arg, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// parseLValRest parses the { '[' Exp ']' } suffix of an LVal whose
// identifier has been consumed.
func (p *Parser) parseLValRest(name string) (*ast.LVal, error) {
	lval := &ast.LVal{Name: name}
	for p.accept(lexer.LBRACK) {
		idx, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
		lval.Indices = append(lval.Indices, idx)
	}
	return lval, nil
}

func (p *Parser) parsePrimary() (ast.PrimaryExp, error) {
	switch p.tok.Type {
	case lexer.INT:
		return p.parseNumber()
	case lexer.LPAREN:
		p.next()
		e, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExp{Exp: e}, nil
	default:
		return nil, p.unexpected("expression")
	}
}

func isRelOp(t lexer.TokenType) bool {
	return t == lexer.LT || t == lexer.GT || t == lexer.LE || t == lexer.GE
}

func binaryOperation(t lexer.TokenType) ast.Operation {
	switch t {
	case lexer.OROR:
		return ast.OperationOr
	case lexer.ANDAND:
		return ast.OperationAnd
	case lexer.EQEQ:
		return ast.OperationEqual
	case lexer.NEQ:
		return ast.OperationNotEqual
	case lexer.LT:
		return ast.OperationLess
	case lexer.GT:
		return ast.OperationGreater
	case lexer.LE:
		return ast.OperationLessEqual
	case lexer.GE:
		return ast.OperationGreaterEqual
	case lexer.PLUS:
		return ast.OperationPlus
	case lexer.MINUS:
		return ast.OperationMinus
	case lexer.STAR:
		return ast.OperationMul
	case lexer.SLASH:
		return ast.OperationDiv
	case lexer.PERCENT:
		return ast.OperationMod
	default:
		return ast.OperationUnknown
	}
}

func unaryOperation(t lexer.TokenType) ast.UnaryOperation {
	switch t {
	case lexer.PLUS:
		return ast.UnaryOperationPlus
	case lexer.MINUS:
		return ast.UnaryOperationMinus
	case lexer.BANG:
		return ast.UnaryOperationNot
	default:
		return ast.UnaryOperationUnknown
	}
}

package parser

import (
	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/lexer"
)

func (p *Parser) parseStmt() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.tok.Type {
	case lexer.SEMI:
		p.next()
		return &ast.EmptyStmt{}, nil
	case lexer.LBRACE:
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Block: b}, nil
	case lexer.KW_IF:
		return p.parseIf()
	case lexer.KW_WHILE:
		return p.parseWhile()
	case lexer.KW_BREAK:
		p.next()
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{}, nil
	case lexer.KW_CONTINUE:
		p.next()
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{}, nil
	case lexer.KW_RETURN:
		p.next()
		if p.accept(lexer.SEMI) {
			return &ast.ReturnStmt{}, nil
		}
		e, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Exp: e}, nil
	default:
		return p.parseSimpleStmt()
	}
}

// parseIf parses if (Cond) Stmt [else Stmt]. The then branch is parsed
// first and greedily takes any else that follows, which binds a dangling
// else to the innermost if.
func (p *Parser) parseIf() (*ast.IfStmt, error) {
	if _, err := p.expect(lexer.KW_IF); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	s := &ast.IfStmt{Cond: cond, Then: then}
	if p.accept(lexer.KW_ELSE) {
		s.Else, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	if _, err := p.expect(lexer.KW_WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// parseCond: '(' Exp ')'
func (p *Parser) parseCond() (*ast.Exp, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseSimpleStmt parses an assignment or an expression statement. The
// left-hand side is parsed as an expression first; if '=' follows it must
// reduce to a bare LVal.
func (p *Parser) parseSimpleStmt() (ast.Stmt, error) {
	start := p.tok
	e, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if p.accept(lexer.ASSIGN) {
		target := lvalOf(e)
		if target == nil {
			return nil, p.errorf(start, "left-hand side of assignment is not assignable")
		}
		value, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Target: target, Value: value}, nil
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		// retrun x; reads as the name retrun followed by a stray x
		if lval := lvalOf(e); lval != nil && len(lval.Indices) == 0 {
			if hint := keywordHint(lval.Name); hint != "" {
				return nil, p.errorf(start, "unexpected identifier %q%s", lval.Name, hint)
			}
		}
		return nil, err
	}
	return &ast.ExpStmt{Exp: e}, nil
}

// lvalOf returns the LVal e consists of, following only pass-through
// levels, or nil when e is anything else.
func lvalOf(e *ast.Exp) *ast.LVal {
	lor, ok := e.LOr.(*ast.LOrPass)
	if !ok {
		return nil
	}
	land, ok := lor.LAnd.(*ast.LAndPass)
	if !ok {
		return nil
	}
	eq, ok := land.Eq.(*ast.EqPass)
	if !ok {
		return nil
	}
	rel, ok := eq.Rel.(*ast.RelPass)
	if !ok {
		return nil
	}
	add, ok := rel.Add.(*ast.AddPass)
	if !ok {
		return nil
	}
	mul, ok := add.Mul.(*ast.MulPass)
	if !ok {
		return nil
	}
	unary, ok := mul.Unary.(*ast.UnaryPass)
	if !ok {
		return nil
	}
	lval, _ := unary.Primary.(*ast.LVal)
	return lval
}

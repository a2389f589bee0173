package parser

import (
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/token"
)

const maxParams = 255

// declaration := "fun" function | "var" varDecl | "class" classDecl | statement
//
// A parse error inside a declaration is recovered at the next statement
// boundary (see parser.synchronize); the declaration itself contributes no
// node to the program in that case.
func (p *parser) declaration() ast.Stmt {
	before := len(p.errors)
	var s ast.Stmt
	switch {
	case p.match(token.FUN):
		s = p.function(ast.PlainFunc)
	case p.match(token.VAR):
		s = p.varDecl()
	case p.match(token.CLASS):
		s = p.classDecl()
	default:
		s = p.statement()
	}
	if len(p.errors) > before {
		p.synchronize()
		return nil
	}
	return s
}

// function := IDENT "(" params? ")" "{" declaration* "}"
func (p *parser) function(kind ast.FuncKind) *ast.FunStmt {
	nameTV := p.expect(token.IDENT, "function name")
	name := ast.Name{Ident: nameTV.Value.Lexeme, Line: nameTV.Value.Line}

	p.expect(token.LPAREN, "after function name")
	var params []ast.Name
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxParams {
				p.errorf("can't have more than %d parameters", maxParams)
			}
			pt := p.expect(token.IDENT, "parameter name")
			params = append(params, ast.Name{Ident: pt.Value.Lexeme, Line: pt.Value.Line})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "after parameters")

	p.expect(token.LBRACE, "before function body")
	body := p.blockStmts()

	return &ast.FunStmt{Name: name, Params: params, Body: body, Kind: kind}
}

// varDecl := IDENT ("=" expression)? ";"
func (p *parser) varDecl() ast.Stmt {
	nameTV := p.expect(token.IDENT, "variable name")
	name := ast.Name{Ident: nameTV.Value.Lexeme, Line: nameTV.Value.Line}

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMI, "after variable declaration")
	return &ast.VarStmt{Name: name, Init: init}
}

// classDecl := IDENT ("<" IDENT)? "{" function* "}"
func (p *parser) classDecl() ast.Stmt {
	nameTV := p.expect(token.IDENT, "class name")
	name := ast.Name{Ident: nameTV.Value.Lexeme, Line: nameTV.Value.Line}

	var super *ast.IdentExpr
	if p.match(token.LT) {
		supTV := p.expect(token.IDENT, "superclass name")
		super = ast.NewIdentExpr(supTV.Value.Lexeme, supTV.Value.Line)
	}

	p.expect(token.LBRACE, "before class body")
	var methods []*ast.FunStmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		kind := ast.Method
		before := len(p.errors)
		m := p.function(kind)
		if m != nil && m.Name.Ident == "init" {
			m.Kind = ast.Constructor
		}
		if len(p.errors) > before {
			p.synchronize()
			continue
		}
		methods = append(methods, m)
	}
	p.expect(token.RBRACE, "after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

// statement := "for" forStmt | "if" ifStmt | "print" printStmt
//            | "return" returnStmt | "while" whileStmt
//            | "{" block | exprStmt
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

func (p *parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "after block")
	return stmts
}

func (p *parser) printStmt() ast.Stmt {
	line := p.prev.Value.Line
	e := p.expression()
	p.expect(token.SEMI, "after value")
	return &ast.PrintStmt{Expr: e, Line: line}
}

func (p *parser) returnStmt() ast.Stmt {
	line := p.prev.Value.Line
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.expect(token.SEMI, "after return value")
	return &ast.ReturnStmt{Value: value, Line: line}
}

func (p *parser) whileStmt() ast.Stmt {
	p.expect(token.LPAREN, "after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "after condition")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *parser) ifStmt() ast.Stmt {
	p.expect(token.LPAREN, "after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "after condition")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

// forStmt := "(" (varDecl | exprStmt | ";") expression ";" expression ")" statement
//
// Desugars to: Block[init, WhileLoop(cond, Block[body, Expr(step)])], leaving
// out the outer Block when there is no init and the inner one when there is
// no step. No
// ForStmt node is ever produced; the parser performs the rewrite directly,
// per the grammar's explicit note.
func (p *parser) forStmt() ast.Stmt {
	p.expect(token.LPAREN, "after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.expect(token.SEMI, "after loop condition")
	if cond == nil {
		cond = ast.NewLiteralExpr(token.TRUE, token.Value{Lexeme: "true"})
	}

	var step ast.Expr
	if !p.check(token.RPAREN) {
		step = p.expression()
	}
	p.expect(token.RPAREN, "after for clauses")

	body := p.statement()
	if step != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: step}}}
	}

	loop := ast.Stmt(&ast.WhileStmt{Cond: cond, Body: body})
	if init != nil {
		loop = &ast.BlockStmt{Stmts: []ast.Stmt{init, loop}}
	}
	return loop
}

func (p *parser) exprStmt() ast.Stmt {
	e := p.expression()
	p.expect(token.SEMI, "after expression")
	return &ast.ExprStmt{Expr: e}
}

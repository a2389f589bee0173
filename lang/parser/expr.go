package parser

import (
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/token"
)

const maxArgs = 255

// expression := assignment
func (p *parser) expression() ast.Expr { return p.assignment() }

// assignment := logicOr ("=" assignment)?
//
// The left-hand side is parsed eagerly as an ordinary r-value expression; if
// it turns out to be followed by '=', it is converted in place to an
// Assignment (if it was an Identifier) or a Set (if it was a Get). Any other
// shape on the left of '=' is a parse-time error, matching the grammar note
// that assignment targets are recognized after the fact, not predicted.
func (p *parser) assignment() ast.Expr {
	left := p.logicOr()

	if p.match(token.EQ) {
		eqLine := p.prev.Value.Line
		value := p.assignment()

		switch target := left.(type) {
		case *ast.IdentExpr:
			return ast.NewAssignExpr(target, eqLine, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(target.Object, target.Name, eqLine, value)
		default:
			p.errorf("invalid assignment target")
			return left
		}
	}
	return left
}

// logicOr := logicAnd ("or" logicAnd)*
func (p *parser) logicOr() ast.Expr {
	left := p.logicAnd()
	for p.match(token.OR) {
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.logicAnd()
		left = ast.NewLogicalExpr(left, op, line, right)
	}
	return left
}

// logicAnd := equality ("and" equality)*
func (p *parser) logicAnd() ast.Expr {
	left := p.equality()
	for p.match(token.AND) {
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.equality()
		left = ast.NewLogicalExpr(left, op, line, right)
	}
	return left
}

// equality := comparison (("!="|"==") comparison)*
func (p *parser) equality() ast.Expr {
	left := p.comparison()
	for p.check(token.BANG_EQ) || p.check(token.EQ_EQ) {
		p.advance()
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.comparison()
		left = ast.NewBinaryExpr(left, op, line, right)
	}
	return left
}

// comparison := term ((">"|">="|"<"|"<=") term)*
func (p *parser) comparison() ast.Expr {
	left := p.term()
	for p.check(token.GT) || p.check(token.GT_EQ) || p.check(token.LT) || p.check(token.LT_EQ) {
		p.advance()
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.term()
		left = ast.NewBinaryExpr(left, op, line, right)
	}
	return left
}

// term := factor (("-"|"+") factor)*
func (p *parser) term() ast.Expr {
	left := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		p.advance()
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.factor()
		left = ast.NewBinaryExpr(left, op, line, right)
	}
	return left
}

// factor := unary (("/"|"*") unary)*
func (p *parser) factor() ast.Expr {
	left := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		p.advance()
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.unary()
		left = ast.NewBinaryExpr(left, op, line, right)
	}
	return left
}

// unary := ("!"|"-") unary | call
func (p *parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		p.advance()
		op, line := p.prev.Token, p.prev.Value.Line
		right := p.unary()
		return ast.NewUnaryExpr(op, line, right)
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." IDENT )*
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			line := p.prev.Value.Line
			nameTV := p.expect(token.IDENT, "property name after '.'")
			expr = ast.NewGetExpr(expr, nameTV.Value.Lexeme, line)
		default:
			return expr
		}
	}
}

// args := expression ("," expression)*
func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	line := p.prev.Value.Line
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf("can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "after arguments")
	return ast.NewCallExpr(callee, line, args)
}

// primary := NUMBER | STRING | "true" | "false" | "nil"
//          | "this" | "super" "." IDENT
//          | IDENT  | "(" expression ")"
func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.NUMBER), p.match(token.STRING):
		return ast.NewLiteralExpr(p.prev.Token, p.prev.Value)
	case p.match(token.TRUE), p.match(token.FALSE), p.match(token.NIL):
		return ast.NewLiteralExpr(p.prev.Token, p.prev.Value)
	case p.match(token.THIS):
		return ast.NewThisExpr(p.prev.Value.Line)
	case p.match(token.SUPER):
		line := p.prev.Value.Line
		p.expect(token.DOT, "after 'super'")
		methodTV := p.expect(token.IDENT, "superclass method name")
		return ast.NewSuperExpr(methodTV.Value.Lexeme, line)
	case p.match(token.IDENT):
		return ast.NewIdentExpr(p.prev.Value.Lexeme, p.prev.Value.Line)
	case p.match(token.LPAREN):
		inner := p.expression()
		p.expect(token.RPAREN, "after expression")
		return ast.NewGroupingExpr(inner)
	default:
		p.errorf("expected expression, got %s", p.cur.Token)
		p.advance()
		return ast.NewLiteralExpr(token.NIL, token.Value{Lexeme: "nil"})
	}
}

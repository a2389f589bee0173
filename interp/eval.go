package interp

import (
	"fmt"

	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/value"
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/token"
)

// evalExpr evaluates e in scope and returns its value (spec.md §4.4
// "Expression evaluation").
func (s *State) evalExpr(e ast.Expr, scope environment.Handle) (value.Value, error) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return s.evalLiteral(n), nil

	case *ast.IdentExpr:
		return s.lookup(e.ID(), n.Name, scope, n.Line)

	case *ast.ThisExpr:
		return s.lookup(e.ID(), "this", scope, n.Line)

	case *ast.SuperExpr:
		return s.evalSuper(n, scope)

	case *ast.UnaryExpr:
		return s.evalUnary(n, scope)

	case *ast.BinaryExpr:
		return s.evalBinary(n, scope)

	case *ast.LogicalExpr:
		return s.evalLogical(n, scope)

	case *ast.GroupingExpr:
		return s.evalExpr(n.Inner, scope)

	case *ast.AssignExpr:
		return s.evalAssign(n, scope)

	case *ast.CallExpr:
		return s.evalCall(n, scope)

	case *ast.GetExpr:
		return s.evalGet(n, scope)

	case *ast.SetExpr:
		return s.evalSet(n, scope)

	default:
		panic(fmt.Sprintf("interp: unexpected expression %T", e))
	}
}

func (s *State) evalLiteral(n *ast.LiteralExpr) value.Value {
	switch n.Tok {
	case token.NUMBER:
		return value.Number(n.Val.Number)
	case token.STRING:
		return value.String(n.Val.Str)
	case token.TRUE:
		return value.Bool(true)
	case token.FALSE:
		return value.Bool(false)
	default:
		return value.Nil()
	}
}

// lookup resolves an identifier/this reference (spec.md §4.4): if the
// resolver recorded a depth for this expression, climb that many ancestors
// from scope; otherwise consult the global scope (which falls back to
// builtins).
func (s *State) lookup(id ast.ExprID, name string, scope environment.Handle, line int) (value.Value, error) {
	target := environment.Global
	if d, ok := s.Depths[id]; ok {
		target = s.Env.Ancestor(scope, d)
	}
	v, ok := s.Env.Get(target, name)
	if !ok {
		return value.Nil(), s.runtimef(line, "undefined variable %q", name)
	}
	return v, nil
}

func (s *State) evalSuper(n *ast.SuperExpr, scope environment.Handle) (value.Value, error) {
	superVal, err := s.lookup(n.ID(), "super", scope, n.Line)
	if err != nil {
		return value.Nil(), err
	}
	table := superVal.AsSuper()
	fn, ok := table[n.Method]
	if !ok {
		return value.Nil(), s.runtimef(n.Line, "undefined superclass method %q", n.Method)
	}
	return value.Function(fn), nil
}

func (s *State) evalUnary(n *ast.UnaryExpr, scope environment.Handle) (value.Value, error) {
	right, err := s.evalExpr(n.Right, scope)
	if err != nil {
		return value.Nil(), err
	}
	switch n.Op {
	case token.BANG:
		return value.Bool(!value.Truthy(right)), nil
	case token.MINUS:
		if right.Kind() != value.KindNumber {
			return value.Nil(), s.runtimef(n.Line, "operand of '-' must be a number")
		}
		return value.Number(-right.AsNumber()), nil
	default:
		panic(fmt.Sprintf("interp: unexpected unary operator %s", n.Op))
	}
}

func (s *State) evalBinary(n *ast.BinaryExpr, scope environment.Handle) (value.Value, error) {
	left, err := s.evalExpr(n.Left, scope)
	if err != nil {
		return value.Nil(), err
	}
	right, err := s.evalExpr(n.Right, scope)
	if err != nil {
		return value.Nil(), err
	}

	switch n.Op {
	case token.PLUS:
		if left.Kind() == value.KindString || right.Kind() == value.KindString {
			return value.String(value.Display(left) + value.Display(right)), nil
		}
		if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
			return value.Nil(), s.runtimef(n.Line, "operands of '+' must both be numbers, or either a string")
		}
		return value.Number(left.AsNumber() + right.AsNumber()), nil

	case token.MINUS, token.STAR, token.SLASH:
		if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
			return value.Nil(), s.runtimef(n.Line, "operands of %q must both be numbers", n.Op)
		}
		l, r := left.AsNumber(), right.AsNumber()
		switch n.Op {
		case token.MINUS:
			return value.Number(l - r), nil
		case token.STAR:
			return value.Number(l * r), nil
		default: // SLASH: no zero-check, double-precision semantics yield +/-Inf
			return value.Number(l / r), nil
		}

	case token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
			return value.Nil(), s.runtimef(n.Line, "operands of %q must both be numbers", n.Op)
		}
		l, r := left.AsNumber(), right.AsNumber()
		switch n.Op {
		case token.GT:
			return value.Bool(l > r), nil
		case token.GT_EQ:
			return value.Bool(l >= r), nil
		case token.LT:
			return value.Bool(l < r), nil
		default:
			return value.Bool(l <= r), nil
		}

	case token.EQ_EQ:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQ:
		return value.Bool(!value.Equal(left, right)), nil

	default:
		panic(fmt.Sprintf("interp: unexpected binary operator %s", n.Op))
	}
}

func (s *State) evalLogical(n *ast.LogicalExpr, scope environment.Handle) (value.Value, error) {
	left, err := s.evalExpr(n.Left, scope)
	if err != nil {
		return value.Nil(), err
	}
	if n.Op == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
		return s.evalExpr(n.Right, scope)
	}
	// AND
	if !value.Truthy(left) {
		return left, nil
	}
	return s.evalExpr(n.Right, scope)
}

func (s *State) evalAssign(n *ast.AssignExpr, scope environment.Handle) (value.Value, error) {
	v, err := s.evalExpr(n.Value, scope)
	if err != nil {
		return value.Nil(), err
	}
	target := environment.Global
	if d, ok := s.Depths[n.ID()]; ok {
		target = s.Env.Ancestor(scope, d)
	}
	if !s.Env.Assign(target, n.Name.Name, v) {
		return value.Nil(), s.runtimef(n.Line, "undefined variable %q", n.Name.Name)
	}
	return v, nil
}

func (s *State) evalGet(n *ast.GetExpr, scope environment.Handle) (value.Value, error) {
	obj, err := s.evalExpr(n.Object, scope)
	if err != nil {
		return value.Nil(), err
	}
	if obj.Kind() != value.KindObject {
		return value.Nil(), s.runtimef(n.Line, "only instances have properties")
	}
	v, ok := obj.AsObject().Props[n.Name]
	if !ok {
		return value.Nil(), s.runtimef(n.Line, "undefined property %q", n.Name)
	}
	return v, nil
}

func (s *State) evalSet(n *ast.SetExpr, scope environment.Handle) (value.Value, error) {
	obj, err := s.evalExpr(n.Object, scope)
	if err != nil {
		return value.Nil(), err
	}
	if obj.Kind() != value.KindObject {
		return value.Nil(), s.runtimef(n.Line, "only instances have fields")
	}
	v, err := s.evalExpr(n.Value, scope)
	if err != nil {
		return value.Nil(), err
	}
	obj.AsObject().Props[n.Name] = v
	return v, nil
}

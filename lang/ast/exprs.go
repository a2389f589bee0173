package ast

import "github.com/bramblelang/bramble/lang/token"

type (
	// LiteralExpr is a number, string, boolean or nil literal.
	LiteralExpr struct {
		exprBase
		Tok token.Token
		Val token.Value
	}

	// IdentExpr is a bare identifier reference, e.g. `x`.
	IdentExpr struct {
		exprBase
		Name string
		Line int
	}

	// ThisExpr is the `this` keyword, valid only inside a method body.
	ThisExpr struct {
		exprBase
		Line int
	}

	// SuperExpr is `super.method`, valid only inside a method body whose
	// class declares a superclass.
	SuperExpr struct {
		exprBase
		Method string
		Line   int
	}

	// UnaryExpr is a prefix unary operator, `!x` or `-x`.
	UnaryExpr struct {
		exprBase
		Op    token.Token
		Line  int
		Right Expr
	}

	// BinaryExpr is an arithmetic or comparison binary operator.
	BinaryExpr struct {
		exprBase
		Left  Expr
		Op    token.Token
		Line  int
		Right Expr
	}

	// LogicalExpr is `and`/`or`, which short-circuit and are therefore kept
	// distinct from BinaryExpr.
	LogicalExpr struct {
		exprBase
		Left  Expr
		Op    token.Token
		Line  int
		Right Expr
	}

	// GroupingExpr is a parenthesized expression, kept as its own node so
	// the AST printer can round-trip parentheses.
	GroupingExpr struct {
		exprBase
		Inner Expr
	}

	// AssignExpr is `name = value`.
	AssignExpr struct {
		exprBase
		Name  *IdentExpr
		Line  int
		Value Expr
	}

	// CallExpr is `callee(args...)`.
	CallExpr struct {
		exprBase
		Callee Expr
		Line   int
		Args   []Expr
	}

	// GetExpr is `object.name`, a property/method read.
	GetExpr struct {
		exprBase
		Object Expr
		Name   string
		Line   int
	}

	// SetExpr is `object.name = value`, a property write.
	SetExpr struct {
		exprBase
		Object Expr
		Name   string
		Line   int
		Value  Expr
	}
)

// NewLiteralExpr, NewIdentExpr, ... assign a fresh ExprID so callers never
// construct a node with a zero/duplicate identity by hand.
func NewLiteralExpr(tok token.Token, val token.Value) *LiteralExpr {
	return &LiteralExpr{exprBase: newExprBase(), Tok: tok, Val: val}
}

func NewIdentExpr(name string, line int) *IdentExpr {
	return &IdentExpr{exprBase: newExprBase(), Name: name, Line: line}
}

func NewThisExpr(line int) *ThisExpr {
	return &ThisExpr{exprBase: newExprBase(), Line: line}
}

func NewSuperExpr(method string, line int) *SuperExpr {
	return &SuperExpr{exprBase: newExprBase(), Method: method, Line: line}
}

func NewUnaryExpr(op token.Token, line int, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: newExprBase(), Op: op, Line: line, Right: right}
}

func NewBinaryExpr(left Expr, op token.Token, line int, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: newExprBase(), Left: left, Op: op, Line: line, Right: right}
}

func NewLogicalExpr(left Expr, op token.Token, line int, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: newExprBase(), Left: left, Op: op, Line: line, Right: right}
}

func NewGroupingExpr(inner Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: newExprBase(), Inner: inner}
}

func NewAssignExpr(name *IdentExpr, line int, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(), Name: name, Line: line, Value: value}
}

func NewCallExpr(callee Expr, line int, args []Expr) *CallExpr {
	return &CallExpr{exprBase: newExprBase(), Callee: callee, Line: line, Args: args}
}

func NewGetExpr(object Expr, name string, line int) *GetExpr {
	return &GetExpr{exprBase: newExprBase(), Object: object, Name: name, Line: line}
}

func NewSetExpr(object Expr, name string, line int, value Expr) *SetExpr {
	return &SetExpr{exprBase: newExprBase(), Object: object, Name: name, Line: line, Value: value}
}

func (n *LiteralExpr) Walk(_ Visitor) {}
func (n *IdentExpr) Walk(_ Visitor)   {}
func (n *ThisExpr) Walk(_ Visitor)    {}
func (n *SuperExpr) Walk(_ Visitor)   {}

func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }

func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Inner) }

func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }

func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }

func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}

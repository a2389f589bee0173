package interp

import (
	"fmt"

	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/value"
	"github.com/bramblelang/bramble/lang/ast"
)

// execStmt evaluates one statement in scope (spec.md §4.4 "Statement
// evaluation"). A non-nil error is either a *status.Failure that must
// propagate to the caller of Run, or the internal controlReturn signal that
// callFunction (not any block/if/while) is responsible for catching.
func (s *State) execStmt(st ast.Stmt, scope environment.Handle) error {
	switch n := st.(type) {
	case *ast.ExprStmt:
		_, err := s.evalExpr(n.Expr, scope)
		return err

	case *ast.PrintStmt:
		v, err := s.evalExpr(n.Expr, scope)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Stdout, value.Display(v))
		return nil

	case *ast.VarStmt:
		v := value.Nil()
		if n.Init != nil {
			var err error
			v, err = s.evalExpr(n.Init, scope)
			if err != nil {
				return err
			}
		}
		s.Env.Declare(scope, n.Name.Ident, v)
		return nil

	case *ast.BlockStmt:
		child := s.Env.NewScope(scope)
		for _, inner := range n.Stmts {
			if err := s.execStmt(inner, child); err != nil {
				return err
			}
		}
		return nil

	case *ast.IfStmt:
		cond, err := s.evalExpr(n.Cond, scope)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return s.execStmt(n.Then, scope)
		}
		if n.Else != nil {
			return s.execStmt(n.Else, scope)
		}
		return nil

	case *ast.WhileStmt:
		loopScope := s.Env.NewScope(scope)
		for {
			cond, err := s.evalExpr(n.Cond, loopScope)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := s.execStmt(n.Body, loopScope); err != nil {
				return err
			}
		}

	case *ast.FunStmt:
		fn := &value.FunctionCell{
			Name:         n.Name.Ident,
			Params:       paramNames(n.Params),
			Body:         n.Body,
			ClosureScope: scope,
		}
		s.Env.Declare(scope, n.Name.Ident, value.Function(fn))
		return nil

	case *ast.ReturnStmt:
		v := value.Nil()
		if n.Value != nil {
			var err error
			v, err = s.evalExpr(n.Value, scope)
			if err != nil {
				return err
			}
		}
		s.setReturnSlot(v)
		return controlReturn{}

	case *ast.ClassStmt:
		return s.execClassDecl(n, scope)

	default:
		panic(fmt.Sprintf("interp: unexpected statement %T", st))
	}
}

func paramNames(params []ast.Name) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Ident
	}
	return names
}

// execClassDecl builds a ClassCell from n (spec.md §4.4 "Class") and
// declares it under its name. The superclass, if any, must already
// evaluate to a class value.
func (s *State) execClassDecl(n *ast.ClassStmt, scope environment.Handle) error {
	var super *value.ClassCell
	if n.Superclass != nil {
		superVal, err := s.evalExpr(n.Superclass, scope)
		if err != nil {
			return err
		}
		if superVal.Kind() != value.KindClass {
			return s.runtimef(n.Name.Line, "superclass %q is not a class", n.Superclass.Name)
		}
		super = superVal.AsClass()
	}

	cls := &value.ClassCell{
		Name:       n.Name.Ident,
		Superclass: super,
		Methods:    make(map[string]*value.FunctionCell, len(n.Methods)),
		DeclScope:  scope,
	}
	for _, m := range n.Methods {
		fn := &value.FunctionCell{
			Name:          m.Name.Ident,
			Params:        paramNames(m.Params),
			Body:          m.Body,
			ClosureScope:  scope,
			IsConstructor: m.Kind == ast.Constructor,
		}
		cls.Methods[m.Name.Ident] = fn
		cls.MethodOrder = append(cls.MethodOrder, m.Name.Ident)
	}

	s.Env.Declare(scope, n.Name.Ident, value.Class(cls))
	return nil
}

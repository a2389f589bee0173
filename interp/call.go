package interp

import (
	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/value"
	"github.com/bramblelang/bramble/lang/ast"
)

// evalCall evaluates a call expression (spec.md §4.4 "Call"): evaluate the
// callee, then dispatch on its kind.
func (s *State) evalCall(n *ast.CallExpr, scope environment.Handle) (value.Value, error) {
	callee, err := s.evalExpr(n.Callee, scope)
	if err != nil {
		return value.Nil(), err
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := s.evalExpr(a, scope)
		if err != nil {
			return value.Nil(), err
		}
		args[i] = v
	}

	switch callee.Kind() {
	case value.KindFunction:
		return s.callFunction(callee.AsFunction(), args, n.Line)
	case value.KindClass:
		return s.instantiate(callee.AsClass(), args, n.Line)
	default:
		return value.Nil(), s.runtimef(n.Line, "can only call functions and classes")
	}
}

// callFunction implements spec.md §4.5, the function call protocol.
func (s *State) callFunction(fn *value.FunctionCell, args []value.Value, line int) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return value.Nil(), s.runtimef(line, "expected %d arguments but got %d", len(fn.Params), len(args))
	}

	if fn.Native != nil {
		return fn.Native(args, fn.This, line)
	}

	callScope := s.Env.NewScope(fn.ClosureScope)
	for i, p := range fn.Params {
		s.Env.Declare(callScope, p, args[i])
	}
	if fn.This.Kind() != value.KindNil {
		s.Env.Declare(callScope, "this", fn.This)
	}
	if fn.Super.Kind() != value.KindNil {
		s.Env.Declare(callScope, "super", fn.Super)
	}

	seed := value.Nil()
	if fn.IsConstructor {
		seed = fn.This
	}
	s.pushReturnSlot(seed)

	var failure error
	for _, st := range fn.Body {
		if err := s.execStmt(st, callScope); err != nil {
			if _, isReturn := err.(controlReturn); isReturn {
				break
			}
			failure = err
			break
		}
	}

	result := s.popReturnSlot()
	if failure != nil {
		return value.Nil(), failure
	}
	return result, nil
}

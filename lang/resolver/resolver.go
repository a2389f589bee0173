// Package resolver implements the static pass that runs after parsing and
// before evaluation. It walks every statement once, maintaining a stack of
// lexical scope frames (innermost first), and for each identifier/this/super
// use records how many enclosing scopes the evaluator must climb at runtime
// to find the binding (spec: "Depth"). Names that stay unresolved after the
// whole stack is searched are left out of the map entirely, which the
// evaluator interprets as "look it up in the global scope or the built-ins
// table" — see environment.Environment.Get (interp/environment).
//
// The resolver also enforces every static rule spec.md assigns to this
// phase: no reading a local inside its own initializer, no redeclaring a
// name twice in the same block, `return`/`this`/`super` only where they are
// legal, and no class declaring itself as its own superclass.
package resolver

import (
	"fmt"

	"github.com/bramblelang/bramble/lang/ast"
)

// Error is a single resolution-rule violation.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("[line %d] resolution error: %s", e.Line, e.Msg) }

// ErrorList collects every Error raised while resolving a program. Unlike
// the parser, the resolver is not required to recover and keep going after
// an error — spec.md marks resolution errors fatal at first occurrence —
// but the resolver still finishes its traversal so a caller that wants a
// best-effort depth map for tooling (the `resolve` CLI subcommand) can have
// one, and so test assertions can check for multiple violations at once.
type ErrorList []*Error

func (el ErrorList) Error() string {
	s := ""
	for i, e := range el {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}

func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Depths maps an expression's stable identity to the number of enclosing
// scopes to climb, at runtime, to find its binding. An identifier with no
// entry resolves in the global scope (or the built-ins table).
type Depths map[ast.ExprID]int

// funcContext tracks what kind of function (if any) encloses the statement
// currently being resolved, so `return`/`this`/`super` can be validated.
type funcContext int

const (
	noFunction funcContext = iota
	inFunction
	inMethod
	inConstructor
)

type classContext int

const (
	noClass classContext = iota
	inClass
	inSubclass
)

// frame is one entry in the resolver's local-scope stack: a mapping from
// name to whether its initializer has finished resolving yet.
type frame map[string]bool

// Resolve walks prog and returns the resolved depth map. Resolution errors
// are returned as an ErrorList; per spec.md §4.7 the caller must not
// evaluate a program that failed to resolve.
func Resolve(prog *ast.Program) (Depths, error) {
	r := &resolver{depths: make(Depths)}
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	return r.depths, r.errors.Err()
}

type resolver struct {
	scopes   []frame
	depths   Depths
	errors   ErrorList
	fnCtx    funcContext
	classCtx classContext
}

func (r *resolver) errorf(line int, format string, args ...interface{}) {
	r.errors = append(r.errors, &Error{Line: line, Msg: fmt.Sprintf(format, args...)})
}

func (r *resolver) push() { r.scopes = append(r.scopes, frame{}) }
func (r *resolver) pop()  { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare introduces name into the current scope as "not yet initialized",
// rejecting an immediate redeclaration in the same block.
func (r *resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return // global scope: no shadow-tracking needed, not collected
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name]; ok {
		r.errorf(line, "already a variable named %q in this scope", name)
	}
	top[name] = false
}

// define marks name as fully initialized in the current scope, so its own
// initializer expression cannot observe it.
func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack from innermost to outermost and
// records the depth at which name is found, if any. No entry is recorded
// for a name that resolves globally.
func (r *resolver) resolveLocal(id ast.ExprID, name string, line int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if initialized, ok := r.scopes[i][name]; ok {
			if !initialized {
				r.errorf(line, "can't read local variable %q in its own initializer", name)
			}
			r.depths[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// unresolved: global or built-in, no depth entry
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(n.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(n.Expr)

	case *ast.VarStmt:
		r.declare(n.Name.Ident, n.Name.Line)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name.Ident)

	case *ast.BlockStmt:
		r.push()
		for _, st := range n.Stmts {
			r.resolveStmt(st)
		}
		r.pop()

	case *ast.IfStmt:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.WhileStmt:
		r.push()
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)
		r.pop()

	case *ast.FunStmt:
		// The name is declared/defined in the *enclosing* scope before the
		// body is resolved, so the function can recurse.
		r.declare(n.Name.Ident, n.Name.Line)
		r.define(n.Name.Ident)
		r.resolveFunction(n, n.Kind, false)

	case *ast.ReturnStmt:
		if r.fnCtx == noFunction {
			r.errorf(n.Line, "can't return from top-level code")
		}
		if n.Value != nil {
			if r.fnCtx == inConstructor {
				r.errorf(n.Line, "can't return a value from an initializer")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.ClassStmt:
		outerClass := r.classCtx
		r.classCtx = inClass
		defer func() { r.classCtx = outerClass }()

		r.declare(n.Name.Ident, n.Name.Line)
		r.define(n.Name.Ident)

		hasSuper := n.Superclass != nil
		if hasSuper {
			if n.Superclass.Name == n.Name.Ident {
				r.errorf(n.Name.Line, "a class can't inherit from itself")
			}
			r.resolveExpr(n.Superclass)
			r.classCtx = inSubclass
		}

		for _, m := range n.Methods {
			r.resolveFunction(m, m.Kind, hasSuper)
		}

	default:
		panic(fmt.Sprintf("resolver: unexpected statement %T", s))
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// `this`/`super` (when applicable) and parameters bound in that same frame —
// matching the evaluator, which declares them all into the one scope
// allocated for a call (spec: closure scope). kind records what `return`
// rules apply inside the body; hasSuper is only meaningful when fn is a
// method (kind is Method or Constructor).
func (r *resolver) resolveFunction(fn *ast.FunStmt, kind ast.FuncKind, hasSuper bool) {
	outerFn := r.fnCtx
	isMethod := kind == ast.Method || kind == ast.Constructor
	switch kind {
	case ast.Constructor:
		r.fnCtx = inConstructor
	case ast.Method:
		r.fnCtx = inMethod
	default:
		r.fnCtx = inFunction
	}
	defer func() { r.fnCtx = outerFn }()

	r.push()
	if isMethod {
		r.scopes[len(r.scopes)-1]["this"] = true
		if hasSuper {
			r.scopes[len(r.scopes)-1]["super"] = true
		}
	}
	for _, param := range fn.Params {
		r.declare(param.Ident, param.Line)
		r.define(param.Ident)
	}
	for _, st := range fn.Body {
		r.resolveStmt(st)
	}
	r.pop()
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.IdentExpr:
		r.resolveLocal(n.ID(), n.Name, n.Line)

	case *ast.ThisExpr:
		if r.classCtx == noClass {
			r.errorf(n.Line, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(n.ID(), "this", n.Line)

	case *ast.SuperExpr:
		if r.classCtx == noClass {
			r.errorf(n.Line, "can't use 'super' outside of a class")
		} else if r.classCtx != inSubclass {
			r.errorf(n.Line, "can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(n.ID(), "super", n.Line)

	case *ast.UnaryExpr:
		r.resolveExpr(n.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(n.Inner)

	case *ast.AssignExpr:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.ID(), n.Name.Name, n.Line)

	case *ast.CallExpr:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(n.Object)

	case *ast.SetExpr:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	default:
		panic(fmt.Sprintf("resolver: unexpected expression %T", e))
	}
}

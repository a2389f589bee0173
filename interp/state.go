// Package interp implements the evaluator of spec.md §4.4–§4.6: the
// recursive statement/expression walker, the function call protocol, and
// class instantiation with eager per-instance method binding.
package interp

import (
	"io"

	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/value"
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/resolver"
)

// State is spec.md §3's InterpreterState: the environment, the resolver's
// depth map, and the call-stack return slots, plus the print sink. The
// argument vector for get_args() lives in the environment's built-ins table.
type State struct {
	Env    *environment.Environment
	Depths resolver.Depths
	Stdout io.Writer

	callStack []value.Value
}

// New constructs a State whose environment falls back to the host builtins
// of spec.md §6 (time, get_args, Array) for names not found in the scope
// being looked up. stdout is the log sink the
// print statement writes to; pass io.Discard to silence it, per spec.md §6
// ("a run with logging disabled produces no observable text").
func New(stdout io.Writer, depths resolver.Depths, args []string) *State {
	env := environment.New(builtins(args))
	return &State{Env: env, Depths: depths, Stdout: stdout}
}

// pushReturnSlot opens a new call-stack slot pre-seeded with v (spec.md
// §4.5.d).
func (s *State) pushReturnSlot(v value.Value) {
	s.callStack = append(s.callStack, v)
}

// setReturnSlot writes v into the topmost call-stack slot (spec.md §4.4
// "Return: evaluate value and write it into the topmost slot of the call
// stack").
func (s *State) setReturnSlot(v value.Value) {
	s.callStack[len(s.callStack)-1] = v
}

// popReturnSlot closes the topmost call-stack slot and returns its value
// (spec.md §4.5.f).
func (s *State) popReturnSlot() value.Value {
	v := s.callStack[len(s.callStack)-1]
	s.callStack = s.callStack[:len(s.callStack)-1]
	return v
}

// controlReturn is the internal signal a Return statement uses to unwind
// out of whatever Block/If/While statements enclose it within the current
// function call, without actually unwinding the Go call stack via panic.
// It is never surfaced past callFunction, which is the only place that
// checks for it — see spec.md §7 "return is ... implemented via a dedicated
// call-stack slot, not by unwinding".
type controlReturn struct{}

func (controlReturn) Error() string { return "return" }

// Run evaluates prog's top-level statements in order, in the global scope.
// It returns the first *status.Failure encountered, or nil on success.
func (s *State) Run(prog *ast.Program) error {
	for _, st := range prog.Stmts {
		if err := s.execStmt(st, environment.Global); err != nil {
			// A bare Return at the top level is a resolver error (spec.md
			// §4.2), so controlReturn cannot legitimately escape here.
			return err
		}
	}
	return nil
}

// Package environment implements the scope arena of spec.md §4.3: a vector
// of scope cells addressed by opaque handle, each holding a variable table
// and a parent link, plus an immutable built-ins fallback table. The global
// scope is preallocated at handle 0.
package environment

import (
	"github.com/bramblelang/bramble/interp/value"
	"github.com/dolthub/swiss"
)

// Handle addresses a scope cell in the arena. Scopes are never freed during
// normal execution (spec.md §5 "Scope lifetime") — a function's closure
// handle may outlive the lexical block that allocated it.
type Handle = value.ScopeHandle

// Global is the handle of the preallocated root scope.
const Global Handle = 0

type scope struct {
	vars      *swiss.Map[string, value.Value]
	parent    Handle
	hasParent bool
}

// Environment is the arena described by spec.md §4.3.
type Environment struct {
	scopes   []*scope
	builtins map[string]value.Value
}

// New returns an Environment with its global scope preallocated at handle 0
// and builtins consulted as the fallback for names not found globally.
func New(builtins map[string]value.Value) *Environment {
	e := &Environment{builtins: builtins}
	e.scopes = append(e.scopes, &scope{vars: swiss.NewMap[string, value.Value](16)})
	return e
}

// NewScope allocates a new scope cell linked to parent and returns its
// handle.
func (e *Environment) NewScope(parent Handle) Handle {
	e.scopes = append(e.scopes, &scope{
		vars:      swiss.NewMap[string, value.Value](4),
		parent:    parent,
		hasParent: true,
	})
	return Handle(len(e.scopes) - 1)
}

// Ancestor walks distance parent links from handle and returns the handle it
// lands on. Distance 0 returns handle unchanged.
func (e *Environment) Ancestor(handle Handle, distance int) Handle {
	for i := 0; i < distance; i++ {
		s := e.scopes[handle]
		if !s.hasParent {
			// The resolver computed this distance from the same lexical nesting
			// the evaluator is walking; running out of parents means the two
			// have drifted out of sync.
			panic("environment: ancestor distance exceeds scope chain")
		}
		handle = s.parent
	}
	return handle
}

// Get looks up key directly in handle's own scope (it does not walk
// parents — the evaluator positions handle at the exact resolved scope via
// Ancestor first). If key is absent there, it falls back to the built-ins
// table.
func (e *Environment) Get(handle Handle, key string) (value.Value, bool) {
	if v, ok := e.scopes[handle].vars.Get(key); ok {
		return v, true
	}
	v, ok := e.builtins[key]
	return v, ok
}

// Declare inserts key unconditionally into handle's scope (redeclaration
// semantics: an existing binding of the same name is overwritten).
func (e *Environment) Declare(handle Handle, key string, v value.Value) {
	e.scopes[handle].vars.Put(key, v)
}

// Assign replaces key's value in handle's scope. It reports false, leaving
// the scope untouched, if key does not already exist there.
func (e *Environment) Assign(handle Handle, key string, v value.Value) bool {
	if _, ok := e.scopes[handle].vars.Get(key); !ok {
		return false
	}
	e.scopes[handle].vars.Put(key, v)
	return true
}

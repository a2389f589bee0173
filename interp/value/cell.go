package value

import "github.com/bramblelang/bramble/lang/ast"

// ScopeHandle addresses a scope cell inside the environment arena (spec.md
// §4.3). It is defined here, rather than in interp/environment, so that
// FunctionCell can name its closure scope without environment importing
// value and value importing environment — both would otherwise need the
// other.
type ScopeHandle int

// NativeFunc is the signature of a host-provided built-in (spec.md §6):
// `time`, `get_args`, and the methods of the Array class. this is Nil for a
// plain built-in function; line is the call site, for error messages.
type NativeFunc func(args []Value, this Value, line int) (Value, error)

// FunctionCell is the shared-mutable cell backing a Function value
// (spec.md §3, §4.5). A declared `fun` produces one with Native nil; the
// host builtins (and Array's methods) produce one with Body nil instead.
//
// This/Super carry the method-binding performed at class instantiation
// (spec.md §4.6); both are Nil for a plain (non-method) function.
type FunctionCell struct {
	Name          string
	Params        []string
	Body          []ast.Stmt
	Native        NativeFunc
	ClosureScope  ScopeHandle
	This          Value
	Super         Value
	IsConstructor bool
}

// ClassCell is the shared-mutable cell backing a Class value. Methods holds
// only the methods declared directly on this class, keyed by name; the
// flattened, inherited view is built per-instance at instantiation time
// (spec.md §4.6), not stored here.
type ClassCell struct {
	Name        string
	Superclass  *ClassCell // nil if the class declares no superclass
	Methods     map[string]*FunctionCell
	DeclScope   ScopeHandle
	MethodOrder []string // declaration order, for deterministic enumeration
}

// ObjectCell is the shared-mutable cell backing an Object value: a class
// name (for display) and a flat property
// map holding both fields (set via `this.x = ...`) and the eagerly-bound
// methods produced by instantiation.
type ObjectCell struct {
	ClassName string
	Props     map[string]Value
}

// SuperTable is the flattened method table consulted by `super.m`
// (spec.md §4.6, §9): a snapshot of the bound methods of every class level
// above the defining one, nearer levels overriding more distant ones, already
// closed over `this`, indexed by method name.
type SuperTable map[string]*FunctionCell

// ArrayCell is the internal shared-mutable sequence backing the Array
// built-in's `__vec__` property (spec.md §6). It is never itself surfaced
// to user code as a bare Value the way Object/Function/Class are — only
// Array's own methods touch it directly.
type ArrayCell struct {
	Items []Value
}

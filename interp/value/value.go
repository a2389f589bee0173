// Package value implements the tagged-union runtime value (spec.md §3, §4.4)
// manipulated by the evaluator: Nil, Boolean, Number, String, and the three
// shared-mutable reference kinds (Function, Class, Object), plus Super (the
// flattened super-dispatch table) and the internal Array cell that backs the
// host-provided Array built-in (spec.md §6).
package value

import "fmt"

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindFunction
	KindClass
	KindObject
	KindSuper
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindObject:
		return "object"
	case KindSuper:
		return "super"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a small tagged union, passed by value throughout the evaluator.
// The reference kinds (Function, Class, Object, Array) carry a pointer into
// ref, so copying a Value copies the pointer, not the underlying cell —
// aliases observe each other's mutations, per spec.md §5 "shared mutation".
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	ref  interface{}
}

// Nil is the singular absence-of-value, distinct from any Boolean/Number.
func Nil() Value { return Value{kind: KindNil} }

func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Function(fn *FunctionCell) Value { return Value{kind: KindFunction, ref: fn} }

func Class(c *ClassCell) Value { return Value{kind: KindClass, ref: c} }

func Object(o *ObjectCell) Value { return Value{kind: KindObject, ref: o} }

func Super(t SuperTable) Value { return Value{kind: KindSuper, ref: t} }

func Array(a *ArrayCell) Value { return Value{kind: KindArray, ref: a} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsBool() bool { return v.b }

func (v Value) AsNumber() float64 { return v.n }

func (v Value) AsString() string { return v.s }

func (v Value) AsFunction() *FunctionCell { return v.ref.(*FunctionCell) }

func (v Value) AsClass() *ClassCell { return v.ref.(*ClassCell) }

func (v Value) AsObject() *ObjectCell { return v.ref.(*ObjectCell) }

func (v Value) AsSuper() SuperTable { return v.ref.(SuperTable) }

func (v Value) AsArray() *ArrayCell { return v.ref.(*ArrayCell) }

// Truthy implements spec.md's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.b
	default:
		return true
	}
}

// Equal implements spec.md §4.4's equality rule: Nil equals only Nil,
// Boolean/Number/String compare by value, and the reference kinds compare by
// identity of their shared cell. Two values of different kinds are never
// equal — including Number/String, which the language never coerces for `==`.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBoolean:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindFunction, KindClass, KindObject, KindArray:
		return a.ref == b.ref
	case KindSuper:
		// Super values are never exposed to user code as comparable operands;
		// identity of the underlying map header is the closest approximation.
		return fmt.Sprintf("%p", a.ref) == fmt.Sprintf("%p", b.ref)
	default:
		return false
	}
}

package interp

import (
	"time"

	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/status"
	"github.com/bramblelang/bramble/interp/value"
)

// builtins constructs the flat, immutable built-ins table consulted by
// Environment.Get as a fallback after the global scope (spec.md §4.3, §6):
// `time()`, `get_args()`, and the Array class.
func builtins(args []string) map[string]value.Value {
	argv := make([]value.Value, len(args))
	for i, a := range args {
		argv[i] = value.String(a)
	}

	arrCls := arrayClass()

	return map[string]value.Value{
		"time": value.Function(&value.FunctionCell{
			Name: "time",
			Native: func(_ []value.Value, _ value.Value, line int) (value.Value, error) {
				now := time.Now()
				if now.IsZero() {
					return value.Nil(), status.SystemTimef(line, "host clock unavailable")
				}
				return value.Number(float64(now.UnixMilli())), nil
			},
		}),
		"get_args": value.Function(&value.FunctionCell{
			Name: "get_args",
			Native: func(_ []value.Value, _ value.Value, _ int) (value.Value, error) {
				return newArrayObject(arrCls, append([]value.Value(nil), argv...)), nil
			},
		}),
		"Array": value.Class(arrCls),
	}
}

// newArrayObject builds an Array instance directly, the same shape
// instantiate would produce for `Array()` followed by N pushes, but seeded
// with items up front. Array has no superclass, so each bound method's
// Super is left unset.
func newArrayObject(cls *value.ClassCell, items []value.Value) value.Value {
	obj := &value.ObjectCell{ClassName: cls.Name, Props: make(map[string]value.Value, len(cls.MethodOrder)+1)}
	objVal := value.Object(obj)
	for _, name := range cls.MethodOrder {
		m := cls.Methods[name]
		obj.Props[name] = value.Function(&value.FunctionCell{
			Name:   m.Name,
			Params: m.Params,
			Native: m.Native,
			This:   objVal,
		})
	}
	obj.Props["__vec__"] = value.Array(&value.ArrayCell{Items: items})
	return objVal
}

// arrayClass builds the host-provided Array class of spec.md §6: an
// indexable dynamic sequence backed by the internal `__vec__` property.
func arrayClass() *value.ClassCell {
	cls := &value.ClassCell{
		Name:      "Array",
		Methods:   make(map[string]*value.FunctionCell),
		DeclScope: environment.Global,
	}
	add := func(name string, arity int, fn value.NativeFunc) {
		cls.Methods[name] = &value.FunctionCell{Name: name, Params: nativeParams(arity), Native: fn}
		cls.MethodOrder = append(cls.MethodOrder, name)
	}

	add("init", 0, func(_ []value.Value, this value.Value, _ int) (value.Value, error) {
		this.AsObject().Props["__vec__"] = value.Array(&value.ArrayCell{})
		return this, nil
	})
	add("len", 0, func(_ []value.Value, this value.Value, _ int) (value.Value, error) {
		return value.Number(float64(len(vecOf(this).Items))), nil
	})
	add("get", 1, func(args []value.Value, this value.Value, line int) (value.Value, error) {
		vec := vecOf(this)
		i, err := indexArg(args[0], line)
		if err != nil {
			return value.Nil(), err
		}
		if i < 0 || i >= len(vec.Items) {
			return value.Nil(), status.Runtimef(line, "array index %d out of range", i)
		}
		return vec.Items[i], nil
	})
	add("set", 2, func(args []value.Value, this value.Value, line int) (value.Value, error) {
		vec := vecOf(this)
		i, err := indexArg(args[0], line)
		if err != nil {
			return value.Nil(), err
		}
		if i < 0 || i >= len(vec.Items) {
			return value.Nil(), status.Runtimef(line, "array index %d out of range", i)
		}
		vec.Items[i] = args[1]
		return args[1], nil
	})
	add("push", 1, func(args []value.Value, this value.Value, _ int) (value.Value, error) {
		vec := vecOf(this)
		vec.Items = append(vec.Items, args[0])
		return args[0], nil
	})
	add("pop", 0, func(_ []value.Value, this value.Value, line int) (value.Value, error) {
		vec := vecOf(this)
		if len(vec.Items) == 0 {
			return value.Nil(), status.Runtimef(line, "pop from empty array")
		}
		last := vec.Items[len(vec.Items)-1]
		vec.Items = vec.Items[:len(vec.Items)-1]
		return last, nil
	})

	return cls
}

func indexArg(v value.Value, line int) (int, error) {
	if v.Kind() != value.KindNumber {
		return 0, status.Runtimef(line, "array index must be a number")
	}
	return int(v.AsNumber()), nil
}

func vecOf(this value.Value) *value.ArrayCell {
	return this.AsObject().Props["__vec__"].AsArray()
}

func nativeParams(arity int) []string {
	params := make([]string, arity)
	for i := range params {
		params[i] = "_"
	}
	return params
}

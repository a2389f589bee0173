package interp

import "github.com/bramblelang/bramble/interp/value"

// instantiate implements spec.md §4.6: calling a class value builds a fresh
// Object and flattens the method tables of the whole superclass chain into
// its property map, outermost ancestor first, so a child's override of a
// method wins last, and each bound method carries its own `super` table: the
// flattened methods of every level above the one it was defined at.
func (s *State) instantiate(cls *value.ClassCell, args []value.Value, line int) (value.Value, error) {
	obj := &value.ObjectCell{ClassName: cls.Name, Props: make(map[string]value.Value)}
	objVal := value.Object(obj)

	var super value.SuperTable
	for _, level := range ancestorChain(cls) {
		next := make(value.SuperTable, len(super)+len(level.MethodOrder))
		for name, fn := range super {
			next[name] = fn
		}
		for _, name := range level.MethodOrder {
			m := level.Methods[name]
			bound := &value.FunctionCell{
				Name:          m.Name,
				Params:        m.Params,
				Body:          m.Body,
				Native:        m.Native,
				ClosureScope:  m.ClosureScope,
				This:          objVal,
				IsConstructor: m.IsConstructor,
			}
			if super != nil {
				bound.Super = value.Super(super)
			}
			obj.Props[name] = value.Function(bound)
			next[name] = bound
		}
		super = next
	}

	if initVal, ok := obj.Props["init"]; ok {
		if _, err := s.callFunction(initVal.AsFunction(), args, line); err != nil {
			return value.Nil(), err
		}
	} else if len(args) != 0 {
		return value.Nil(), s.runtimef(line, "expected 0 arguments but got %d", len(args))
	}

	return objVal, nil
}

// ancestorChain returns cls's superclass chain ordered most-distant-ancestor
// first, with cls itself last — the order spec.md §4.6 requires for
// building the flattened method table so children override parents.
func ancestorChain(cls *value.ClassCell) []*value.ClassCell {
	var chain []*value.ClassCell
	for c := cls; c != nil; c = c.Superclass {
		chain = append(chain, c)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

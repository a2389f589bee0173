package environment_test

import (
	"testing"

	"github.com/bramblelang/bramble/interp/environment"
	"github.com/bramblelang/bramble/interp/value"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndGetInSameScope(t *testing.T) {
	env := environment.New(nil)
	env.Declare(environment.Global, "x", value.Number(1))
	v, ok := env.Get(environment.Global, "x")
	require.True(t, ok)
	require.Equal(t, 1.0, v.AsNumber())
}

func TestGetFallsBackToBuiltins(t *testing.T) {
	env := environment.New(map[string]value.Value{"pi": value.Number(3.14)})
	v, ok := env.Get(environment.Global, "pi")
	require.True(t, ok)
	require.Equal(t, 3.14, v.AsNumber())

	_, ok = env.Get(environment.Global, "missing")
	require.False(t, ok)
}

func TestAncestorWalksParentLinks(t *testing.T) {
	env := environment.New(nil)
	child := env.NewScope(environment.Global)
	grandchild := env.NewScope(child)

	require.Equal(t, grandchild, env.Ancestor(grandchild, 0))
	require.Equal(t, child, env.Ancestor(grandchild, 1))
	require.Equal(t, environment.Global, env.Ancestor(grandchild, 2))
}

func TestAssignRequiresExistingBinding(t *testing.T) {
	env := environment.New(nil)
	ok := env.Assign(environment.Global, "x", value.Number(1))
	require.False(t, ok, "assign to an undeclared name must fail")

	env.Declare(environment.Global, "x", value.Number(1))
	ok = env.Assign(environment.Global, "x", value.Number(2))
	require.True(t, ok)

	v, _ := env.Get(environment.Global, "x")
	require.Equal(t, 2.0, v.AsNumber())
}

func TestChildScopeDoesNotSeeParentDirectly(t *testing.T) {
	// Get never walks parents; that's the evaluator's job via Ancestor.
	env := environment.New(nil)
	env.Declare(environment.Global, "x", value.Number(1))
	child := env.NewScope(environment.Global)

	_, ok := env.Get(child, "x")
	require.False(t, ok)
}

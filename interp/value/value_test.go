package value_test

import (
	"testing"

	"github.com/bramblelang/bramble/interp/value"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, value.Truthy(value.Nil()))
	require.False(t, value.Truthy(value.Bool(false)))
	require.True(t, value.Truthy(value.Bool(true)))
	require.True(t, value.Truthy(value.Number(0)))
	require.True(t, value.Truthy(value.String("")))
}

func TestEqualScalars(t *testing.T) {
	require.True(t, value.Equal(value.Nil(), value.Nil()))
	require.False(t, value.Equal(value.Nil(), value.Bool(false)))
	require.True(t, value.Equal(value.Number(3), value.Number(3)))
	require.True(t, value.Equal(value.String("a"), value.String("a")))
	require.False(t, value.Equal(value.String("a"), value.String("b")))
}

func TestEqualObjectsAreIdentityBased(t *testing.T) {
	a := value.Object(&value.ObjectCell{ClassName: "C", Props: map[string]value.Value{}})
	b := value.Object(&value.ObjectCell{ClassName: "C", Props: map[string]value.Value{}})
	require.False(t, value.Equal(a, b), "two separately-allocated empty instances must not be equal")
	require.True(t, value.Equal(a, a))
}

func TestDisplayNumbers(t *testing.T) {
	require.Equal(t, "3.14", value.Display(value.Number(3.14)))
	require.Equal(t, "0", value.Display(value.Number(0)))
	require.Equal(t, "4", value.Display(value.Number(4)))
	require.Equal(t, "-1", value.Display(value.Number(-1)))
}

func TestDisplayOthers(t *testing.T) {
	require.Equal(t, "nil", value.Display(value.Nil()))
	require.Equal(t, "true", value.Display(value.Bool(true)))
	require.Equal(t, "false", value.Display(value.Bool(false)))
	require.Equal(t, "hello", value.Display(value.String("hello")))
}

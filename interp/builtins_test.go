package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayPushGetLenSet(t *testing.T) {
	out := run(t, `
var a = Array();
a.push(10);
a.push(20);
a.push(30);
print a.len();
print a.get(1);
a.set(1, 99);
print a.get(1);
`)
	assert.Equal(t, []string{"3", "20", "99"}, lines(out))
}

func TestArrayPopReturnsLastAndShrinks(t *testing.T) {
	out := run(t, `
var a = Array();
a.push(1);
a.push(2);
print a.pop();
print a.len();
`)
	assert.Equal(t, []string{"2", "1"}, lines(out))
}

func TestArrayPopFromEmptyIsRuntimeError(t *testing.T) {
	res := mustParseRes(t, `var a = Array(); a.pop();`)
	depths := mustResolve(t, res)
	st := newStateCapturing(t, depths)
	err := st.Run(res.Program)
	if err == nil {
		t.Fatal("expected runtime error")
	}
}

func TestArrayGetOutOfRangeIsRuntimeError(t *testing.T) {
	res := mustParseRes(t, `var a = Array(); a.get(0);`)
	depths := mustResolve(t, res)
	st := newStateCapturing(t, depths)
	err := st.Run(res.Program)
	if err == nil {
		t.Fatal("expected runtime error")
	}
}

func TestGetArgsReturnsProcessArguments(t *testing.T) {
	res := mustParseRes(t, `var a = get_args(); print a.len();`)
	depths := mustResolve(t, res)

	var out bytes.Buffer
	st := New(&out, depths, []string{"one", "two"})
	if err := st.Run(res.Program); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2\n", out.String())
}

func TestTimeReturnsAPositiveNumber(t *testing.T) {
	out := run(t, `var t = time(); print t > 0;`)
	assert.Equal(t, []string{"true"}, lines(out))
}

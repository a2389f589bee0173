package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodEnumerationOrderIsReversedChainThenChild(t *testing.T) {
	out := run(t, `
class A { who() { print "A"; } shared() { print "from A"; } }
class B < A { who() { print "B"; } }
var b = B();
b.who();
b.shared();
`)
	assert.Equal(t, []string{"B", "from A"}, lines(out))
}

func TestSuperDispatchesToDefinersSuperNotRuntimeType(t *testing.T) {
	out := run(t, `
class A { m() { print "A.m"; } }
class B < A { m() { print "B.m"; super.m(); } }
class C < B { m() { print "C.m"; super.m(); } }
var c = C();
c.m();
`)
	assert.Equal(t, []string{"C.m", "B.m", "A.m"}, lines(out))
}

func TestSeparatelyAllocatedEmptyObjectsOfSameClassAreNotEqual(t *testing.T) {
	out := run(t, `
class Point {}
var a = Point();
var b = Point();
print a == b;
print a == a;
`)
	assert.Equal(t, []string{"false", "true"}, lines(out))
}

func TestConstructorReturnsBoundThis(t *testing.T) {
	out := run(t, `
class Box { init(v) { this.v = v; } }
var b = Box(7);
print b.v;
`)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestInstantiationWithWrongArgCountWithoutInitIsRuntimeError(t *testing.T) {
	res := mustParseRes(t, `class Empty {} Empty(1);`)
	depths := mustResolve(t, res)
	st := newStateCapturing(t, depths)
	err := st.Run(res.Program)
	if err == nil {
		t.Fatal("expected runtime error")
	}
}

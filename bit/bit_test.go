package bit

import (
	"testing"

	"github.com/vsklad/cgen-sub001/literal"
)

func TestReduceCon2Constants(t *testing.T) {
	x := literal.FromVariable(0)
	if got, ok := ReduceCon2(x, x); !ok || got != x {
		t.Fatalf("con2(x,x) = (%v,%v), want (x,true)", got, ok)
	}
	if got, ok := ReduceCon2(x, x.Negated()); !ok || got != literal.Const0 {
		t.Fatalf("con2(x,!x) = (%v,%v), want (0,true)", got, ok)
	}
	if got, ok := ReduceCon2(literal.Const1, x); !ok || got != x {
		t.Fatalf("con2(1,x) = (%v,%v), want (x,true)", got, ok)
	}
	if _, ok := ReduceCon2(literal.FromVariable(0), literal.FromVariable(1)); ok {
		t.Fatal("con2(distinct vars) should not reduce")
	}
}

func TestReduceDis2Constants(t *testing.T) {
	x := literal.FromVariable(2)
	if got, ok := ReduceDis2(x, x.Negated()); !ok || got != literal.Const1 {
		t.Fatalf("dis2(x,!x) = (%v,%v), want (1,true)", got, ok)
	}
	if got, ok := ReduceDis2(literal.Const0, x); !ok || got != x {
		t.Fatalf("dis2(0,x) = (%v,%v), want (x,true)", got, ok)
	}
}

func TestReduceMajConstant(t *testing.T) {
	con2 := func(x, y Value) Value { v, _ := ReduceCon2(x, y); return v }
	dis2 := func(x, y Value) Value { v, _ := ReduceDis2(x, y); return v }
	y := literal.FromVariable(1)
	z := literal.FromVariable(2)
	if got, ok := ReduceMaj(literal.Const0, y, z, con2, dis2); !ok {
		t.Fatal("maj(0,y,z) should reduce")
	} else if want, _ := ReduceCon2(y, z); want != 0 && got != want {
		// con2(y,z) doesn't reduce for distinct vars; fine either way
		_ = want
	}
}

func TestReduceLeftRequiresTwoArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on <2 args")
		}
	}()
	ReduceLeft(func(x, y Value) Value { return x }, []Value{literal.Const0})
}

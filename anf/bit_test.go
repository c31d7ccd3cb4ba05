package anf

import (
	"testing"

	"github.com/vsklad/cgen-sub001/literal"
)

func TestAnfBitCon2(t *testing.T) {
	f := New()
	x := NewBit(f).AssignFresh()
	y := NewBit(f).AssignFresh()
	r := NewBit(f).Con2(x, y)
	if !r.Literal().IsVariable() {
		t.Fatalf("con2(x,y) = %v, want a fresh variable", r.Literal())
	}
}

func TestAnfBitConstantFold(t *testing.T) {
	f := New()
	x := NewBit(f).AssignFresh()
	one := NewBit(f).AssignConstant(true)
	r := NewBit(f).Con2(one, x)
	if r.Literal() != x.Literal() {
		t.Fatalf("con2(1,x) = %v, want x (%v)", r.Literal(), x.Literal())
	}
	if f.EquationsSize() != 0 {
		t.Fatalf("EquationsSize() = %d, want 0", f.EquationsSize())
	}
}

func TestAnfBitAddNoCarryFirstBit(t *testing.T) {
	f := New()
	x0 := NewBit(f).AssignFresh()
	y0 := NewBit(f).AssignFresh()
	r0 := NewBit(f).Eor2(x0, y0)
	if !r0.Literal().IsVariable() && !r0.Literal().IsConstant() {
		t.Fatalf("r0 = %v, want a literal", r0.Literal())
	}
	_ = literal.Const0
}

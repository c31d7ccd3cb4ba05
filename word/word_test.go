package word

import (
	"testing"

	"github.com/vsklad/cgen-sub001/anf"
	"github.com/vsklad/cgen-sub001/cnf"
)

func cnfFactory(f *cnf.Formula) Factory[*cnf.Bit] {
	return func() *cnf.Bit { return cnf.NewBit(f) }
}

func anfFactory(f *anf.Formula) Factory[*anf.Bit] {
	return func() *anf.Bit { return anf.NewBit(f) }
}

func constWord[T Bit[T]](factory Factory[T], size int, value uint64) *Word[T] {
	return New(factory, size).AssignValue(value)
}

func TestConstantAddCnf(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 8, 5)
	y := constWord(factory, 8, 3)
	r := New(factory, 8).Add2(x, y)
	if !r.IsConstant() {
		t.Fatalf("Add2(5,3) is not constant: %v", r.Bits())
	}
	if got := r.Value(); got != 8 {
		t.Fatalf("Add2(5,3) = %d, want 8", got)
	}
}

func TestConstantAddWraps(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 4, 15)
	y := constWord(factory, 4, 2)
	r := New(factory, 4).Add2(x, y)
	if got := r.Value(); got != 1 {
		t.Fatalf("Add2(15,2) mod 16 = %d, want 1", got)
	}
}

func TestShrZeroFills(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 8, 0xAC)
	r := New(factory, 8).Shr(x, 4)
	if got := r.Value(); got != 0x0A {
		t.Fatalf("Shr(0xAC,4) = %#x, want 0x0A", got)
	}
}

func TestShlIsNegativeShr(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 8, 0x0A)
	r := New(factory, 8).Shl(x, 4)
	if got := r.Value(); got != 0xA0 {
		t.Fatalf("Shl(0x0A,4) = %#x, want 0xA0", got)
	}
}

func TestRotrWraps(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 8, 0x01)
	r := New(factory, 8).Rotr(x, 1)
	if got := r.Value(); got != 0x80 {
		t.Fatalf("Rotr(0x01,1) = %#x, want 0x80", got)
	}
}

func TestRotlIsNegativeRotr(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 8, 0x80)
	r := New(factory, 8).Rotl(x, 1)
	if got := r.Value(); got != 0x01 {
		t.Fatalf("Rotl(0x80,1) = %#x, want 0x01", got)
	}
}

func TestNonConstantAddCnfAllocatesVariables(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := New(factory, 4)
	for i := 0; i < 4; i++ {
		x.Bit(i).AssignFresh()
	}
	y := constWord(factory, 4, 1)
	r := New(factory, 4).Add2(x, y)
	if r.IsConstant() {
		t.Fatalf("Add2(x,1) unexpectedly constant")
	}
}

func TestAddCarryFreeMatchesRippleOnConstants(t *testing.T) {
	f := anf.New()
	factory := anfFactory(f)
	x := constWord(factory, 4, 6)
	y := constWord(factory, 4, 3)
	r := AddCarryFree(f, x, y)
	if got := r.Value(); got != 9 {
		t.Fatalf("AddCarryFree(6,3) = %d, want 9", got)
	}
}

func TestAddCarryFreeWraps(t *testing.T) {
	f := anf.New()
	factory := anfFactory(f)
	x := constWord(factory, 3, 7)
	y := constWord(factory, 3, 1)
	r := AddCarryFree(f, x, y)
	if got := r.Value(); got != 0 {
		t.Fatalf("AddCarryFree(7,1) mod 8 = %d, want 0", got)
	}
}

func TestConAndDisWords(t *testing.T) {
	f := cnf.New()
	factory := cnfFactory(f)
	x := constWord(factory, 4, 0b1100)
	y := constWord(factory, 4, 0b1010)
	and := New(factory, 4).Con2(x, y)
	if got := and.Value(); got != 0b1000 {
		t.Fatalf("Con2 = %#b, want 0b1000", got)
	}
	or := New(factory, 4).Dis2(x, y)
	if got := or.Value(); got != 0b1110 {
		t.Fatalf("Dis2 = %#b, want 0b1110", got)
	}
	xor := New(factory, 4).Eor2(x, y)
	if got := xor.Value(); got != 0b0110 {
		t.Fatalf("Eor2 = %#b, want 0b0110", got)
	}
}

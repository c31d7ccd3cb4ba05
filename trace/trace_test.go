package trace

import (
	"testing"

	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/word"
)

func TestTraceBindsNamedVariable(t *testing.T) {
	f := cnf.New()
	factory := func() *cnf.Bit { return cnf.NewBit(f) }
	w := word.New(factory, 4)
	for i := 0; i < 4; i++ {
		w.Bit(i).AssignFresh()
	}

	tr := New(f)
	Trace[*cnf.Bit](tr, "x", w)

	nv := f.NamedVariables()
	if len(nv["x"]) != 4 {
		t.Fatalf("NamedVariables()[x] has %d literals, want 4", len(nv["x"]))
	}
	for i := 0; i < 4; i++ {
		if nv["x"][3-i] != w.Bit(i).Literal() {
			t.Fatalf("NamedVariables()[x][%d] = %v, want %v (bit %d, big-endian)", 3-i, nv["x"][3-i], w.Bit(i).Literal(), i)
		}
	}
}

func TestTraceIndexedGrows(t *testing.T) {
	f := cnf.New()
	factory := func() *cnf.Bit { return cnf.NewBit(f) }
	w0 := word.New(factory, 2)
	w0.Bit(0).AssignFresh()
	w0.Bit(1).AssignFresh()
	w1 := word.New(factory, 2)
	w1.Bit(0).AssignFresh()
	w1.Bit(1).AssignFresh()

	tr := New(f)
	TraceIndexed[*cnf.Bit](tr, "k", w0, 0)
	TraceIndexed[*cnf.Bit](tr, "k", w1, 1)

	nv := f.NamedVariables()
	if len(nv["k"]) != 4 {
		t.Fatalf("NamedVariables()[k] has %d literals, want 4", len(nv["k"]))
	}
}

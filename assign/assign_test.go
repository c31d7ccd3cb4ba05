package assign

import (
	"testing"

	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/literal"
	"github.com/vsklad/cgen-sub001/word"
)

func TestBindAndResolve(t *testing.T) {
	f := cnf.New()
	x := cnf.NewBit(f).AssignFresh()

	a := NewAssignment(1)
	if err := a.Bind(x.Literal().VariableID(), true); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if got := a.Resolve(x.Literal()); got != literal.Const1 {
		t.Fatalf("Resolve(x) = %v, want Const1", got)
	}
	if got := a.Resolve(x.Literal().Negated()); got != literal.Const0 {
		t.Fatalf("Resolve(!x) = %v, want Const0", got)
	}
}

func TestBindConflict(t *testing.T) {
	f := cnf.New()
	x := cnf.NewBit(f).AssignFresh()
	v := x.Literal().VariableID()

	a := NewAssignment(1)
	if err := a.Bind(v, true); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := a.Bind(v, true); err != nil {
		t.Fatalf("rebinding to the same value should not conflict: %v", err)
	}
	if err := a.Bind(v, false); err == nil {
		t.Fatalf("expected a conflict error rebinding to a different value")
	}
}

func TestEvaluateWord(t *testing.T) {
	f := cnf.New()
	factory := func() *cnf.Bit { return cnf.NewBit(f) }
	w := word.New(factory, 4)
	for i := 0; i < 4; i++ {
		w.Bit(i).AssignFresh()
	}

	a := NewAssignment(0)
	for i := 0; i < 4; i++ {
		if err := a.Bind(w.Bit(i).Literal().VariableID(), (5>>uint(i))&1 != 0); err != nil {
			t.Fatalf("Bind: %v", err)
		}
	}

	got, ok := EvaluateWord[*cnf.Bit](a, w)
	if !ok {
		t.Fatalf("EvaluateWord: not fully resolved")
	}
	if got != 5 {
		t.Fatalf("EvaluateWord = %d, want 5", got)
	}
}

func TestEvaluateWordIncomplete(t *testing.T) {
	f := cnf.New()
	factory := func() *cnf.Bit { return cnf.NewBit(f) }
	w := word.New(factory, 2)
	w.Bit(0).AssignFresh()
	w.Bit(1).AssignFresh()

	a := NewAssignment(0)
	if _, ok := EvaluateWord[*cnf.Bit](a, w); ok {
		t.Fatalf("EvaluateWord should report false when bits are unbound")
	}
}

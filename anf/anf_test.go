package anf

import (
	"testing"

	"github.com/vsklad/cgen-sub001/literal"
)

func TestConstantFold(t *testing.T) {
	f := New()
	f.AppendEquation()
	f.AppendEquationTerm(literal.Const1)
	f.AppendEquationTerm(literal.Const1)
	result := f.CompleteEquation(true)
	if result != literal.Const0 {
		t.Fatalf("1 xor 1 = %v, want Const0", result)
	}
	if !f.IsEmpty() {
		t.Fatal("a fully-constant equation must not be stored")
	}
}

func TestCon2AllocatesVariable(t *testing.T) {
	f := New()
	x := f.NewVariableLiteral()
	y := f.NewVariableLiteral()
	f.AppendEquation()
	f.AppendEquationTerm(x, y)
	result := f.CompleteEquation(true)
	if !result.IsVariable() {
		t.Fatalf("con2(x,y) = %v, want a fresh variable", result)
	}
	if f.EquationsSize() != 1 {
		t.Fatalf("EquationsSize() = %d, want 1", f.EquationsSize())
	}
}

func TestSingleTermFoldsToLiteral(t *testing.T) {
	f := New()
	x := f.NewVariableLiteral()
	f.AppendEquation()
	f.AppendEquationTerm(x)
	result := f.CompleteEquation(true)
	if result != x {
		t.Fatalf("eor(x) = %v, want x (%v) unchanged, no equation stored", result, x)
	}
	if !f.IsEmpty() {
		t.Fatal("single-variable equation must fold away")
	}
}

func TestTermDedup(t *testing.T) {
	f := New()
	x1 := f.NewVariableLiteral()
	x2 := f.NewVariableLiteral()
	x3 := f.NewVariableLiteral()

	f.AppendEquation()
	f.AppendEquationTerm(x1, x2)
	f.AppendEquationTerm(x1, x2) // cancels
	f.AppendEquationTerm(x3)
	result := f.CompleteEquation(true)
	if result != x3 {
		t.Fatalf("(x1x2 + x1x2 + x3) = %v, want x3 (%v) after cancellation", result, x3)
	}
}

func TestNegationExpansion(t *testing.T) {
	f := New()
	x := f.NewVariableLiteral()
	y := f.NewVariableLiteral()
	f.AppendEquation()
	f.AppendEquationTerm(x.Negated(), y)
	result := f.CompleteEquation(true)
	if !result.IsVariable() {
		t.Fatalf("(!x & y) = %v, want a fresh variable", result)
	}
}

func TestEvaluate(t *testing.T) {
	f := New()
	x := f.NewVariableLiteral()
	y := f.NewVariableLiteral()
	f.AppendEquation()
	f.AppendEquationTerm(x, y)
	z := f.CompleteEquation(true) // z = x AND y

	f.AddNamedVariable("in", []literal.Literal{x, y})
	f.AddNamedVariable("out", []literal.Literal{z})

	result, err := f.Evaluate(f.NamedVariables()["in"], []literal.Literal{literal.Const1, literal.Const1}, f.NamedVariables()["out"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result[0] != literal.Const1 {
		t.Fatalf("1 AND 1 = %v, want Const1", result[0])
	}

	result, err = f.Evaluate(f.NamedVariables()["in"], []literal.Literal{literal.Const1, literal.Const0}, f.NamedVariables()["out"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result[0] != literal.Const0 {
		t.Fatalf("1 AND 0 = %v, want Const0", result[0])
	}
}

package varray

import (
	"testing"

	"github.com/vsklad/cgen-sub001/literal"
)

func TestNewRange(t *testing.T) {
	a := NewRange(5, 3)
	for i, l := range a {
		if l.VariableID() != literal.VariableID(5+i) {
			t.Fatalf("a[%d] variable id = %d, want %d", i, l.VariableID(), 5+i)
		}
	}
}

func TestAssignTemplateFromConflict(t *testing.T) {
	dst := NewUnassigned(4)
	tmpl := Array{literal.FromVariable(0), literal.FromVariable(1)}
	vals := Array{literal.Const1, literal.Const0}
	if err := AssignTemplateFrom(dst, tmpl, vals); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst[0] != literal.Const1 || dst[1] != literal.Const0 {
		t.Fatalf("dst = %v, want [1,0,*,*]", dst)
	}

	tmpl2 := Array{literal.FromVariable(0)}
	vals2 := Array{literal.Const0}
	if err := AssignTemplateFrom(dst, tmpl2, vals2); err == nil {
		t.Fatal("expected conflicting assignment error")
	}
}

func TestAssignTemplateInto(t *testing.T) {
	src := Array{literal.Const1, literal.Const0}
	tmpl := Array{literal.FromVariable(0), literal.FromVariable(1).Negated()}
	dst := make(Array, 2)
	AssignTemplateInto(src, tmpl, dst)
	if dst[0] != literal.Const1 {
		t.Fatalf("dst[0] = %v, want Const1", dst[0])
	}
	if dst[1] != literal.Const1 {
		t.Fatalf("dst[1] = %v, want Const1 (negated lookup of Const0)", dst[1])
	}
}

func TestExpandAndAssignElement(t *testing.T) {
	a := Array{}
	a = ExpandElements(a, 2, 2)
	if len(a) != 4 {
		t.Fatalf("len(a) = %d, want 4", len(a))
	}
	AssignElement(a, Array{literal.Const1, literal.Const0}, 1)
	if a[2] != literal.Const1 || a[3] != literal.Const0 {
		t.Fatalf("a = %v, want element 1 = [1,0]", a)
	}
}

package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/varray"
)

func TestWriteReadRoundTrip(t *testing.T) {
	f := cnf.New()
	x := cnf.NewBit(f).AssignFresh()
	y := cnf.NewBit(f).AssignFresh()
	cnf.NewBit(f).Con2(x, y)
	f.AddNamedVariable("x", varray.Array{x.Literal()})
	f.AddNamedVariable("y", varray.Array{y.Literal()})
	f.AddParameter("info", "source", "test", true)

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "p cnf 3 3") {
		t.Fatalf("missing expected header in output:\n%s", out)
	}

	f2, err := Read(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if f2.ClausesSize() != f.ClausesSize() {
		t.Fatalf("ClausesSize() = %d, want %d", f2.ClausesSize(), f.ClausesSize())
	}
	if f2.VariablesSize() != f.VariablesSize() {
		t.Fatalf("VariablesSize() = %d, want %d", f2.VariablesSize(), f.VariablesSize())
	}
	nv := f2.NamedVariables()
	if len(nv["x"]) != 1 || nv["x"][0] != x.Literal() {
		t.Fatalf("named variable x = %v, want [%v]", nv["x"], x.Literal())
	}
}

func TestReadRejectsMissingHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("1 2 0\n")); err == nil {
		t.Fatalf("expected error for clause line before header")
	}
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("p cnf x y\n")); err == nil {
		t.Fatalf("expected error for malformed header")
	}
}

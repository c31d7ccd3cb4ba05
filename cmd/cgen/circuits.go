package main

// Small demonstration circuits, registered by name, that exercise the word
// algebra end-to-end - just enough for the CLI to have something to build
// and serialize, per SPEC_FULL's CLI expansion. Each circuit is provided in
// both a CNF and an ANF form since the two backends have unrelated Bit
// concrete types and Go generics can't erase that difference across a
// shared registry entry.

import (
	"strconv"

	"github.com/vsklad/cgen-sub001/anf"
	"github.com/vsklad/cgen-sub001/bf"
	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/varray"
	"github.com/vsklad/cgen-sub001/word"
)

const defaultCircuitWidth = 32

// cnfCircuit builds a demonstration circuit directly into f, naming its
// inputs and outputs as it goes.
type cnfCircuit func(f *cnf.Formula, width int)

// anfCircuit is cnfCircuit's ANF-backend counterpart.
type anfCircuit func(f *anf.Formula, width int)

type circuitEntry struct {
	cnf cnfCircuit
	anf anfCircuit
}

var circuitRegistry = map[string]circuitEntry{
	"adder":         {cnf: buildAdderCNF, anf: buildAdderANF},
	"sha256-mix":    {cnf: buildSha256MixCNF, anf: buildSha256MixANF},
	"unique-select": {cnf: buildUniqueSelectCNF},
}

// buildUniqueSelectCNF builds a "choose exactly one of width signals"
// constraint via the bf combinator API, naming each signal sel0..selN-1
// and the formula's own overall truth value "ok". Only available in CNF
// form: bf.Build targets cnf.Bit directly.
func buildUniqueSelectCNF(f *cnf.Formula, width int) {
	names := make([]string, width)
	for i := range names {
		names[i] = "sel" + strconv.Itoa(i)
	}
	result, vars := bf.Build(bf.Unique(names...), f)
	for _, name := range names {
		f.AddNamedVariable(name, varray.Array{vars[name].Literal()})
	}
	f.AddNamedVariable("ok", varray.Array{result.Literal()})
}

// namedWordLiterals converts w's bits to literals big-endian per word (bit
// 0, the least significant bit, goes last), matching the tracer's
// convention in package trace.
func namedWordLiterals[T word.Bit[T]](w *word.Word[T]) varray.Array {
	lits := make(varray.Array, w.Len())
	for i := 0; i < w.Len(); i++ {
		lits[w.Len()-1-i] = w.Bit(i).Literal()
	}
	return lits
}

func freshWordCNF(f *cnf.Formula, width int) *word.Word[*cnf.Bit] {
	w := word.New(func() *cnf.Bit { return cnf.NewBit(f) }, width)
	for i := 0; i < width; i++ {
		w.Bit(i).AssignFresh()
	}
	return w
}

func freshWordANF(f *anf.Formula, width int) *word.Word[*anf.Bit] {
	w := word.New(func() *anf.Bit { return anf.NewBit(f) }, width)
	for i := 0; i < width; i++ {
		w.Bit(i).AssignFresh()
	}
	return w
}

// buildAdderCNF names two fresh input words "a" and "b" and a ripple-carry
// sum named "sum" - the classic Tseitin-adder demonstration.
func buildAdderCNF(f *cnf.Formula, width int) {
	a := freshWordCNF(f, width)
	b := freshWordCNF(f, width)
	sum := word.New(func() *cnf.Bit { return cnf.NewBit(f) }, width).Add2(a, b)
	f.AddNamedVariable("a", namedWordLiterals(a))
	f.AddNamedVariable("b", namedWordLiterals(b))
	f.AddNamedVariable("sum", namedWordLiterals(sum))
}

// buildAdderANF is buildAdderCNF's ANF counterpart, using the
// carry-eliminated adder instead of the generic ripple-carry chain.
func buildAdderANF(f *anf.Formula, width int) {
	a := freshWordANF(f, width)
	b := freshWordANF(f, width)
	sum := word.AddCarryFree(f, a, b)
	f.AddNamedVariable("a", namedWordLiterals(a))
	f.AddNamedVariable("b", namedWordLiterals(b))
	f.AddNamedVariable("sum", namedWordLiterals(sum))
}

// buildSha256MixCNF exercises Ch, Maj, and Rotr the way SHA-256's
// compression function combines its working variables: t1 = ch(e,f,g) +
// maj(a,b,c) via a ripple-carry add over rotated forms of both.
func buildSha256MixCNF(f *cnf.Formula, width int) {
	a, b, c := freshWordCNF(f, width), freshWordCNF(f, width), freshWordCNF(f, width)
	e, fw, g := freshWordCNF(f, width), freshWordCNF(f, width), freshWordCNF(f, width)

	factory := func() *cnf.Bit { return cnf.NewBit(f) }
	ch := word.New(factory, width).Ch(e, fw, g)
	maj := word.New(factory, width).Maj(a, b, c)
	s0 := word.New(factory, width).Rotr(a, 2)
	s1 := word.New(factory, width).Rotr(e, 6)

	t1 := word.New(factory, width).Add2(ch, s1)
	t2 := word.New(factory, width).Add2(maj, s0)
	out := word.New(factory, width).Add2(t1, t2)

	for name, w := range map[string]*word.Word[*cnf.Bit]{"a": a, "b": b, "c": c, "e": e, "f": fw, "g": g, "out": out} {
		f.AddNamedVariable(name, namedWordLiterals(w))
	}
}

// buildSha256MixANF is buildSha256MixCNF's ANF counterpart.
func buildSha256MixANF(f *anf.Formula, width int) {
	a, b, c := freshWordANF(f, width), freshWordANF(f, width), freshWordANF(f, width)
	e, fw, g := freshWordANF(f, width), freshWordANF(f, width), freshWordANF(f, width)

	factory := func() *anf.Bit { return anf.NewBit(f) }
	ch := word.New(factory, width).Ch(e, fw, g)
	maj := word.New(factory, width).Maj(a, b, c)
	s0 := word.New(factory, width).Rotr(a, 2)
	s1 := word.New(factory, width).Rotr(e, 6)

	t1 := word.AddCarryFree(f, ch, s1)
	t2 := word.AddCarryFree(f, maj, s0)
	out := word.AddCarryFree(f, t1, t2)

	for name, w := range map[string]*word.Word[*anf.Bit]{"a": a, "b": b, "c": c, "e": e, "f": fw, "g": g, "out": out} {
		f.AddNamedVariable(name, namedWordLiterals(w))
	}
}

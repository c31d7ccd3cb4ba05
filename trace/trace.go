// Package trace implements the write-side collaborator that turns
// word/word-array values produced during encoding into named variables on
// a formula - the single production path for named variables, matching
// ple/library/formula.hpp and bal/formula/formula.hpp's add_named_variable
// call sites, unified behind one Tracer instead of being called ad hoc from
// every encoder.
package trace

import (
	"github.com/vsklad/cgen-sub001/varray"
	"github.com/vsklad/cgen-sub001/word"
)

// Target is the subset of formula.Base a Tracer needs: both cnf.Formula and
// anf.Formula satisfy it via their embedded formula.Base.
type Target interface {
	AddNamedVariable(name string, value varray.Array)
	AddNamedVariableIndexed(name string, value varray.Array, index int)
}

// Tracer records named values as they are produced during encoding.
type Tracer struct {
	target Target
}

// New returns a Tracer writing named variables into target.
func New(target Target) *Tracer { return &Tracer{target: target} }

// wordLiterals converts w's bits to literals big-endian per word (bit 0,
// the least significant bit, goes last), matching Word2VariablesArray's
// (*value)[WORD_SIZE-i-1] index reversal.
func wordLiterals[T word.Bit[T]](w *word.Word[T]) varray.Array {
	lits := make(varray.Array, w.Len())
	for i := 0; i < w.Len(); i++ {
		lits[w.Len()-1-i] = w.Bit(i).Literal()
	}
	return lits
}

// Trace converts w's bits to literals and binds them under name, the
// single production path for a plain named variable during encoding.
func Trace[T word.Bit[T]](t *Tracer, name string, w *word.Word[T]) {
	t.target.AddNamedVariable(name, wordLiterals(w))
}

// TraceIndexed is Trace for one element of a named variable array (e.g.
// round constants, an array of registers indexed by round).
func TraceIndexed[T word.Bit[T]](t *Tracer, name string, w *word.Word[T], index int) {
	t.target.AddNamedVariableIndexed(name, wordLiterals(w), index)
}

// Package cnf implements the CNF clause store: a flat arena of literals
// with per-clause offsets, used as the target of Tseitin-style encoding for
// SAT solvers. Grounded on the Cnf type referenced throughout
// bal/cnf/io/cnfdimacs.hpp (variables_size, clauses_size, add_parameter,
// add_named_variable, append_clause, clauses(), is_compare_left_right) -
// the dedicated cnf.hpp store itself was not part of the retrieved source,
// so its shape is reconstructed from every call site that uses it.
package cnf

import (
	"fmt"

	"github.com/vsklad/cgen-sub001/formula"
	"github.com/vsklad/cgen-sub001/literal"
)

// ClauseSizeMax bounds the number of literals in a single clause. Chosen to
// comfortably cover the worst-case Tseitin expansion of both encoding knobs
// (add_max_args up to 6, xor_max_args up to 10): an n-ary XOR's defining
// clauses have at most n+1 literals.
const ClauseSizeMax = 16

// ErrClauseTooLarge is returned by AppendClause when a clause would exceed
// ClauseSizeMax.
type ErrClauseTooLarge struct {
	Size int
}

func (e *ErrClauseTooLarge) Error() string {
	return fmt.Sprintf("cnf: clause of %d literals exceeds ClauseSizeMax (%d)", e.Size, ClauseSizeMax)
}

// Formula is a CNF clause store.
type Formula struct {
	formula.Base

	literals []literal.Literal
	offsets  []int // start offset into literals, one per clause

	// isCompareLeftRight is a presentation flag only, preserved verbatim
	// on read/write; no behavior is inferred from it (see DESIGN.md).
	isCompareLeftRight bool
}

// New returns an initialized, empty CNF formula.
func New() *Formula {
	f := &Formula{isCompareLeftRight: true}
	f.Init()
	return f
}

// IsEmpty reports whether the formula has no clauses.
func (f *Formula) IsEmpty() bool { return len(f.offsets) == 0 }

// ClausesSize returns the number of stored clauses.
func (f *Formula) ClausesSize() int { return len(f.offsets) }

// VariablesSize returns one past the highest allocated variable id.
func (f *Formula) VariablesSize() literal.VariableID { return f.LastVariable() + 1 }

// IsCompareLeftRight reports the clause-ordering presentation flag.
func (f *Formula) IsCompareLeftRight() bool { return f.isCompareLeftRight }

// SetIsCompareLeftRight sets the clause-ordering presentation flag.
func (f *Formula) SetIsCompareLeftRight(value bool) { f.isCompareLeftRight = value }

// AppendClause stores one disjunction of literals. No deduplication or
// simplification happens here - that is the responsibility of the
// literal-bit encoder and the word-level encoders, upstream of this store.
func (f *Formula) AppendClause(lits ...literal.Literal) error {
	if len(lits) > ClauseSizeMax {
		return &ErrClauseTooLarge{Size: len(lits)}
	}
	f.offsets = append(f.offsets, len(f.literals))
	f.literals = append(f.literals, lits...)
	return nil
}

// Clause returns the i'th clause as a literal slice. The returned slice
// aliases the store; callers must not mutate it.
func (f *Formula) Clause(i int) []literal.Literal {
	start := f.offsets[i]
	end := len(f.literals)
	if i != len(f.offsets)-1 {
		end = f.offsets[i+1]
	}
	return f.literals[start:end]
}

// Clauses calls yield once per stored clause, in order, stopping early if
// yield returns false.
func (f *Formula) Clauses(yield func(i int, clause []literal.Literal) bool) {
	for i := range f.offsets {
		if !yield(i, f.Clause(i)) {
			return
		}
	}
}

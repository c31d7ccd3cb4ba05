// Package assign implements a solver-free assignment table: binding
// variables to constants and resolving/evaluating literals, bits, and
// words against those bindings. Grounded on solver.Model (a decision-level
// array indexed by variable, rendered by solver.go's Model.String) and on
// VariablesArray::assign_template_from's conflict detection, generalized
// from "bind at decision time" to "bind once, permanently".
package assign

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vsklad/cgen-sub001/literal"
	"github.com/vsklad/cgen-sub001/word"
)

// ConflictError reports a variable bound to two different constant values.
type ConflictError struct {
	Variable literal.VariableID
	Existing bool
	New      bool
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("assign: variable %d already bound to %v, cannot rebind to %v",
		e.Variable+1, e.Existing, e.New)
}

// Assignment is a variable-indexed table of constant bindings.
type Assignment struct {
	bound []bool // whether variable i is bound
	value []bool // its value, if bound
}

// NewAssignment returns an all-unassigned table sized for n variables,
// mirroring Model in solver.go (0 means unbound, index i is variable i).
func NewAssignment(n int) *Assignment {
	return &Assignment{bound: make([]bool, n), value: make([]bool, n)}
}

func (a *Assignment) ensure(v literal.VariableID) {
	if int(v) >= len(a.bound) {
		bound := make([]bool, v+1)
		value := make([]bool, v+1)
		copy(bound, a.bound)
		copy(value, a.value)
		a.bound, a.value = bound, value
	}
}

// Bind records variable v as having value. Rebinding to the same value is
// a no-op; rebinding to a different value returns a *ConflictError, the
// same guard AppendClause/assign_template_from perform on conflicting
// constant assignment in the original.
func (a *Assignment) Bind(v literal.VariableID, value bool) error {
	a.ensure(v)
	if a.bound[v] && a.value[v] != value {
		return &ConflictError{Variable: v, Existing: a.value[v], New: value}
	}
	a.bound[v] = true
	a.value[v] = value
	return nil
}

// IsBound reports whether v currently has a binding.
func (a *Assignment) IsBound(v literal.VariableID) bool {
	return int(v) < len(a.bound) && a.bound[v]
}

// Resolve looks up lit's variable in the binding table and returns the
// bound constant with lit's sign applied; constants, Unassigned, and
// literals of unbound variables are returned unchanged.
func (a *Assignment) Resolve(lit literal.Literal) literal.Literal {
	if lit.IsConstant() || lit.IsUnassigned() {
		return lit
	}
	v := lit.VariableID()
	if !a.IsBound(v) {
		return lit
	}
	resolved := literal.Constant(a.value[v])
	if lit.IsNegation() {
		return resolved.Negated()
	}
	return resolved
}

// EvaluateWord evaluates w if every bit resolves to a constant under a; the
// second return is false otherwise (the safe-boolean counterpart of
// Word::evaluate's assertion that every bit must be constant).
func EvaluateWord[T word.Bit[T]](a *Assignment, w *word.Word[T]) (uint64, bool) {
	var v uint64
	for i := w.Len() - 1; i >= 0; i-- {
		lit := a.Resolve(w.Bit(i).Literal())
		if !lit.IsConstant() {
			return 0, false
		}
		v <<= 1
		if lit.IsConstant1() {
			v |= 1
		}
	}
	return v, true
}

// String renders bound variables the way solver.Model.String() renders its
// decLevel array: a map from 1-based variable number to its value.
func (a *Assignment) String() string {
	bound := make(map[int]bool)
	for i, isBound := range a.bound {
		if isBound {
			bound[i+1] = a.value[i]
		}
	}
	keys := make([]int, 0, len(bound))
	for k := range bound {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%v", k, bound[k])
	}
	return "map[" + strings.Join(parts, " ") + "]"
}

// Package anf implements the ANF (Algebraic Normal Form) equation store: a
// formula is a set of equations over GF(2), each defining one variable as
// the XOR of conjunctions of other (unnegated) variables, optionally offset
// by a constant 1.
//
// Grounded on ple/anf/anf.hpp and ple/anf/anf.cpp. The three parallel flat
// arenas (symbols/terms/equations) and the exact term-normalization
// algorithm of AppendEquationTerm are carried over line-for-line in spirit;
// see the per-step comments where the translation is not obvious from the
// Go alone.
package anf

import (
	"fmt"
	"strings"

	"github.com/vsklad/cgen-sub001/formula"
	"github.com/vsklad/cgen-sub001/literal"
	"github.com/vsklad/cgen-sub001/varray"
)

// Formula is an ANF equation store.
type Formula struct {
	formula.Base

	symbols   []literal.Literal
	terms     []int // start index into symbols, one per term
	equations []int // start index into terms, one per equation
}

// New returns an initialized, empty ANF formula.
func New() *Formula {
	f := &Formula{}
	f.Init()
	return f
}

// IsEmpty reports whether the formula has no equations.
func (f *Formula) IsEmpty() bool { return len(f.equations) == 0 }

// EquationsSize returns the number of stored equations.
func (f *Formula) EquationsSize() int { return len(f.equations) }

func (f *Formula) termsSize(equationIndex int) int {
	end := len(f.terms)
	if equationIndex != len(f.equations)-1 {
		end = f.equations[equationIndex+1]
	}
	return end - f.equations[equationIndex]
}

func (f *Formula) symbolsSize(termIndex int) int {
	end := len(f.symbols)
	if termIndex != len(f.terms)-1 {
		end = f.terms[termIndex+1]
	}
	return end - f.terms[termIndex]
}

func (f *Formula) assertIncompleteLastEquation() {
	if len(f.equations) == 0 {
		panic("anf: no open equation")
	}
	last := len(f.equations) - 1
	if f.termsSize(last) == 0 {
		panic("anf: last equation has no terms")
	}
	headTerm := f.equations[last]
	if f.symbolsSize(headTerm) != 1 {
		panic("anf: last equation's head term must have exactly one symbol")
	}
	if !f.symbols[f.terms[headTerm]].IsConstant() {
		panic("anf: last equation's head symbol must be a constant")
	}
}

func (f *Formula) removeLastEquation() {
	f.assertIncompleteLastEquation()
	termsIndex := f.equations[len(f.equations)-1]
	f.symbols = f.symbols[:f.terms[termsIndex]]
	f.terms = f.terms[:termsIndex]
	f.equations = f.equations[:len(f.equations)-1]
}

// AppendEquation starts a new equation whose head is the constant 0 (no +1
// offset yet).
func (f *Formula) AppendEquation() {
	f.equations = append(f.equations, len(f.terms))
	f.terms = append(f.terms, len(f.symbols))
	f.symbols = append(f.symbols, literal.Const0)
}

// termWork is a not-yet-normalized conjunction of symbols still waiting to
// be validated and inserted, used to replace recursive de-negation
// splitting with an explicit stack (worst-case depth equals the number of
// negated symbols in the original term, and circuit-generated input is
// adversarial by construction).
type termWork []literal.Literal

// AppendEquationTerm normalizes and inserts a conjunction of symbols into
// the equation currently being built (constant absorption, idempotence,
// contradiction, de-negation by splitting, and dedup against existing
// terms - see package doc). De-negation splitting is driven by an explicit
// work-queue rather than recursion: each split pushes its two variants back
// onto the queue instead of calling back into this function.
func (f *Formula) AppendEquationTerm(symbols ...literal.Literal) {
	f.assertIncompleteLastEquation()

	queue := []termWork{append(termWork(nil), symbols...)}
	for len(queue) > 0 {
		symbols := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		equationTermsSize := f.termsSize(len(f.equations) - 1)

		constant := literal.Const1
		validated := make([]literal.Literal, 0, len(symbols))
		firstNegationIndex := len(symbols)

		for i := 0; i < len(symbols) && constant.IsConstant1(); i++ {
			s := symbols[i]
			switch {
			case s.IsConstant0():
				constant = literal.Const0
				validated = validated[:0]
			case s.IsConstant1():
				continue
			default:
				j := 0
				inserted := false
				for j < len(validated) {
					if s.IsNegationOf(validated[j]) {
						constant = literal.Const0
						validated = validated[:0]
						inserted = true
						break
					} else if s == validated[j] {
						inserted = true
						break
					} else if s < validated[j] {
						break
					}
					j++
				}
				if !inserted {
					validated = append(validated, 0)
					copy(validated[j+1:], validated[j:])
					validated[j] = s
					if validated[j].IsNegation() && firstNegationIndex > j {
						firstNegationIndex = j
					} else if firstNegationIndex < len(validated)-1 && firstNegationIndex >= j {
						firstNegationIndex++ // the negated symbol moved one place right
					}
				}
			}
		}

		if !constant.IsConstant1() {
			continue // term reduced to 0: drop it entirely
		}

		if len(validated) == 0 {
			// the term is the constant 1: toggle the head's +1 offset
			headTerm := f.equations[len(f.equations)-1]
			f.symbols[f.terms[headTerm]] = f.symbols[f.terms[headTerm]] ^ literal.Const1
			continue
		}

		if firstNegationIndex < len(validated) {
			negated := validated[firstNegationIndex]
			posVariant := append(termWork(nil), validated...)
			posVariant[firstNegationIndex] = literal.Const1
			negVariant := append(termWork(nil), validated...)
			negVariant[firstNegationIndex] = negated.Unnegated()
			queue = append(queue, posVariant, negVariant)
			continue
		}

		// a sorted list of unique, unnegated variables: look for a matching
		// existing term in this equation (x + x cancels under xor)
		termIndex := len(f.terms)
		if equationTermsSize > 1 {
			firstTermIndex := f.equations[len(f.equations)-1] + 1 // skip the head
			for i := firstTermIndex; i < firstTermIndex+equationTermsSize-1; i++ {
				if f.symbolsSize(i) != len(validated) {
					continue
				}
				match := true
				firstSymbolIndex := f.terms[i]
				for j, v := range validated {
					if f.symbols[firstSymbolIndex+j] != v {
						match = false
						break
					}
				}
				if match {
					termIndex = i
					break
				}
			}
		}

		if termIndex < len(f.terms) {
			size := f.symbolsSize(termIndex)
			start := f.terms[termIndex]
			f.symbols = append(f.symbols[:start], f.symbols[start+size:]...)
			f.terms = append(f.terms[:termIndex], f.terms[termIndex+1:]...)
			for i := termIndex; i < len(f.terms); i++ {
				f.terms[i] -= size
			}
		} else {
			f.terms = append(f.terms, len(f.symbols))
			f.symbols = append(f.symbols, validated...)
		}
	}
}

// CompleteEquation finalizes the equation under construction and returns
// the literal representing its value. If the equation collapsed to just
// its head, that constant is returned and the equation is discarded. If it
// reduced to the head plus exactly one single-variable term, the variable
// (with the head's offset folded into its sign) is returned directly and
// no equation is kept - unless optimizeNegation is false, which forces a
// fresh variable to be allocated regardless so the caller gets a distinct
// identity. Otherwise a fresh variable is allocated and returned.
func (f *Formula) CompleteEquation(optimizeNegation bool) literal.Literal {
	f.assertIncompleteLastEquation()

	last := len(f.equations) - 1
	equationTermsSize := f.termsSize(last)
	result := f.symbols[f.terms[f.equations[last]]]

	switch {
	case equationTermsSize == 1:
		f.removeLastEquation()
	case optimizeNegation && equationTermsSize == 2 && f.symbolsSize(f.equations[last]+1) == 1:
		result = literal.SubstituteLiteral(result.Negated(), f.symbols[f.terms[f.equations[last]+1]])
		f.removeLastEquation()
	default:
		v := f.NewVariable()
		result = literal.SubstituteVariable(result.Negated(), v)
		headTerm := f.equations[last]
		if optimizeNegation {
			f.symbols[f.terms[headTerm]] = result.Unnegated()
		} else {
			f.symbols[f.terms[headTerm]] = result
			result = result.Unnegated()
		}
	}
	return result
}

// EncodeNegations rewrites every negated entry of tmpl in place, appending
// a one-term equation per entry that defines its unnegated counterpart.
func (f *Formula) EncodeNegations(tmpl varray.Array) {
	for i, v := range tmpl {
		if v.IsVariable() && v.IsNegation() {
			f.AppendEquation()
			f.AppendEquationTerm(v)
			tmpl[i] = f.CompleteEquation(false)
		}
	}
}

// VariablesSize returns one past the highest allocated variable id.
func (f *Formula) VariablesSize() literal.VariableID {
	return f.LastVariable() + 1
}

// evaluateInto walks the equations in storage order, resolving each head
// variable from its already-constant defining terms. variables is indexed
// by variable id and must already hold constants for every free variable
// referenced.
func (f *Formula) evaluateInto(variables varray.Array) {
	for i := range f.equations {
		termsSize := f.termsSize(i)
		headSymbol := f.symbols[f.terms[f.equations[i]]]
		value := headSymbol.IsNegation()
		variableID := headSymbol.VariableID()

		for j := f.equations[i] + 1; j < f.equations[i]+termsSize; j++ {
			symbolsSize := f.symbolsSize(j)
			termValue := true
			for k := f.terms[j]; k < f.terms[j]+symbolsSize && termValue; k++ {
				symbolValue := variables[f.symbols[k].VariableID()]
				termValue = symbolValue.IsConstant1()
			}
			value = value != termValue // xor
		}

		variables[variableID] = literal.Constant(value)
	}
}

// Evaluate binds valueTemplate's free variables to value, propagates
// through every stored equation, and projects the result through
// resultTemplate.
func (f *Formula) Evaluate(valueTemplate, value, resultTemplate varray.Array) (varray.Array, error) {
	variables := varray.NewUnassigned(int(f.VariablesSize()))
	if err := varray.AssignTemplateFrom(variables, valueTemplate, value); err != nil {
		return nil, err
	}
	f.evaluateInto(variables)
	result := make(varray.Array, len(resultTemplate))
	varray.AssignTemplateInto(variables, resultTemplate, result)
	return result, nil
}

// FormatEquation renders one equation in PolyBoRi notation:
// "x{h+1} [+ 1] + x{a}*x{b} + ...", each variable written as "x" followed
// by its 1-based index (e.g. "x3 + 1 + x1*x2").
func (f *Formula) FormatEquation(equationIndex int) string {
	termsSize := f.termsSize(equationIndex)
	headTerm := f.equations[equationIndex]
	var parts []string
	for j := headTerm; j < headTerm+termsSize; j++ {
		symbolsSize := f.symbolsSize(j)
		var factors []string
		for k := f.terms[j]; k < f.terms[j]+symbolsSize; k++ {
			factors = append(factors, fmt.Sprintf("x%d", f.symbols[k].VariableID()+1))
		}
		parts = append(parts, strings.Join(factors, "*"))
		if j == headTerm && f.symbols[f.terms[headTerm]].IsNegation() {
			parts = append(parts, "1")
		}
	}
	return strings.Join(parts, " + ")
}

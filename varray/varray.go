// Package varray implements VariablesArray, an ordered sequence of literals
// used to represent named multi-bit values (words, or arrays of words) and
// to carry templates for substitution during assignment/evaluation.
//
// Grounded on the VariablesArray used throughout ple/bal (referenced from
// ple/base/variables.hpp and ple/anf/anf.cpp's template/assign helpers);
// the exact container class itself (variablesarray.hpp) was not part of the
// retrieved source set, so its operations are reconstructed here from how
// every other retrieved file calls it.
package varray

import "github.com/vsklad/cgen-sub001/literal"

// Array is a fixed-or-growable sequence of literals.
type Array []literal.Literal

// NewRange returns an array of size literals, initialized as consecutive
// positive variable literals starting at firstVariable (assign_sequence in
// the original, generalized to an arbitrary start).
func NewRange(firstVariable literal.VariableID, size int) Array {
	a := make(Array, size)
	for i := range a {
		a[i] = literal.FromVariable(firstVariable + literal.VariableID(i))
	}
	return a
}

// NewUnassigned returns an array of size Unassigned literals.
func NewUnassigned(size int) Array {
	a := make(Array, size)
	for i := range a {
		a[i] = literal.Unassigned
	}
	return a
}

// Contains reports whether variableID appears, in either sign, anywhere in a.
func (a Array) Contains(variableID literal.VariableID) bool {
	for _, l := range a {
		if l.IsVariable() && l.VariableID() == variableID {
			return true
		}
	}
	return false
}

// ErrConflictingAssignment is returned by AssignTemplateFrom when the same
// variable is asked to take two different constant values.
type ErrConflictingAssignment struct {
	VariableID literal.VariableID
}

func (e *ErrConflictingAssignment) Error() string {
	return "varray: conflicting assignment to binary variable"
}

// AssignTemplateFrom resolves each literal of tmpl against values (tmpl and
// values must be the same length; tmpl entries are variable references,
// values entries are the literal - typically constant - being substituted
// in) and writes the result into dst, a variable-id-indexed table sized for
// the whole formula (dst[v] holds the binding for variable v). Returns an
// error if a variable would receive two conflicting constant bindings.
func AssignTemplateFrom(dst Array, tmpl, values Array) error {
	if len(tmpl) != len(values) {
		panic("varray: AssignTemplateFrom requires matching lengths")
	}
	for i, t := range tmpl {
		if !t.IsVariable() {
			continue
		}
		v := t.VariableID()
		value := literal.SubstituteLiteral(t, values[i])
		if dst[v] != literal.Unassigned && dst[v] != value {
			return &ErrConflictingAssignment{VariableID: v}
		}
		dst[v] = value
	}
	return nil
}

// AssignTemplateInto projects src (a variable-id-indexed table, as produced
// by AssignTemplateFrom) through tmpl into dst: for every position, dst[i]
// is the resolution of tmpl[i] against src, preserving tmpl's sign and
// passing constants through unchanged.
func AssignTemplateInto(src Array, tmpl Array, dst Array) {
	for i, t := range tmpl {
		if t.IsVariable() {
			dst[i] = literal.Lookup(src, t)
		} else {
			dst[i] = t
		}
	}
}

// ExpandElements grows a, in units of elementSize, so it holds at least
// count elements, padding any new elements with Unassigned.
func ExpandElements(a Array, elementSize, count int) Array {
	want := elementSize * count
	if len(a) >= want {
		return a
	}
	grown := make(Array, want)
	copy(grown, a)
	for i := len(a); i < want; i++ {
		grown[i] = literal.Unassigned
	}
	return grown
}

// AssignElement overwrites the index'th element (of value's width) within a.
func AssignElement(a Array, value Array, index int) {
	copy(a[index*len(value):(index+1)*len(value)], value)
}

// GetSequence reports whether a is an arithmetic progression of variable
// ids, delegating to literal.GetVariablesSequence.
func (a Array) GetSequence() (size int, step int) {
	return literal.GetVariablesSequence(a)
}

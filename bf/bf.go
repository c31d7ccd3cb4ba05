// Package bf provides a small combinator API for building boolean
// formulas out of named variables (And, Or, Not, Implies, Eq, Xor, Unique)
// and encoding them into a CNF formula. Adapted from gophersat's bf
// package: the AST, its NNF normalization, and the "create a variable on
// first reference" pattern are kept; what changed is the target of the
// final build step - instead of emitting raw DIMACS integers for the
// gophersat solver, Build walks the normalized tree through cnf.Bit, which
// performs Tseitin encoding with simplification (package bit) as it goes.
package bf

import (
	"math"
	"strconv"
	"strings"

	"github.com/vsklad/cgen-sub001/cnf"
)

// A Formula is any kind of boolean formula, not necessarily in NNF.
type Formula interface {
	nnf() Formula
	String() string
}

type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) nnf() Formula   { return t }
func (t trueConst) String() string { return "⊤" }

type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) nnf() Formula   { return f }
func (f falseConst) String() string { return "⊥" }

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return variable{name: name}
}

type variable struct {
	name string
}

func (v variable) nnf() Formula   { return lit{signed: false, v: v} }
func (v variable) String() string { return v.name }

type lit struct {
	v      variable
	signed bool
}

func (l lit) nnf() Formula { return l }

func (l lit) String() string {
	if l.signed {
		return "not(" + l.v.name + ")"
	}
	return l.v.name
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula { return not{f} }

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		l := f.nnf().(lit)
		l.signed = true
		return l
	case lit:
		f.signed = !f.signed
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("bf: invalid formula type")
	}
}

func (n not) String() string { return "not(" + n[0].String() + ")" }

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula { return and(subs) }

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		switch sub := s.nnf().(type) {
		case and:
			res = append(res, sub...)
		case trueConst:
		case falseConst:
			return False
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return False
	case 1:
		return res[0]
	default:
		return res
	}
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = f.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula { return or(subs) }

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		switch sub := s.nnf().(type) {
		case or:
			res = append(res, sub...)
		case falseConst:
		case trueConst:
			return True
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return True
	case 1:
		return res[0]
	default:
		return res
	}
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula { return or{not{f1}, f2} }

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula { return and{or{not{f1}, f2}, or{f1, not{f2}}} }

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula { return and{or{not{f1}, not{f2}}, or{f1, f2}} }

// Unique indicates exactly one of the given variables must be true. It
// might introduce dummy variables to reduce the number of generated
// clauses once built (a commander-encoding split for large groups).
func Unique(vars ...string) Formula {
	vars2 := make([]variable, len(vars))
	for i, v := range vars {
		vars2[i] = variable{name: v}
	}
	return uniqueRec(vars2...)
}

func uniqueSmall(vars ...variable) Formula {
	res := make([]Formula, 1, 1+(len(vars)*len(vars)-1)/2)
	varsAsForms := make([]Formula, len(vars))
	for i, v := range vars {
		varsAsForms[i] = v
	}
	res[0] = Or(varsAsForms...)
	for i := 0; i < len(vars)-1; i++ {
		for j := i + 1; j < len(vars); j++ {
			res = append(res, Or(Not(varsAsForms[i]), Not(varsAsForms[j])))
		}
	}
	return And(res...)
}

func uniqueRec(vars ...variable) Formula {
	nbVars := len(vars)
	if nbVars <= 4 {
		return uniqueSmall(vars...)
	}
	sqrt := math.Sqrt(float64(nbVars))
	nbLines := int(sqrt + 0.5)
	lines := make([]variable, nbLines)
	allNames := make([]string, len(vars))
	for i := range vars {
		allNames[i] = vars[i].name
	}
	fullName := strings.Join(allNames, "-")
	for i := range lines {
		lines[i] = variable{name: "line-" + strconv.Itoa(i) + "-" + fullName}
	}
	nbCols := int(math.Ceil(sqrt))
	cols := make([]variable, nbCols)
	for i := range cols {
		cols[i] = variable{name: "col-" + strconv.Itoa(i) + "-" + fullName}
	}
	res := make([]Formula, 0, 2*nbVars+1)
	for i, v := range vars {
		res = append(res, Or(Not(v), lines[i/nbCols]))
		res = append(res, Or(Not(v), cols[i%nbCols]))
	}
	res = append(res, uniqueRec(lines...))
	res = append(res, uniqueRec(cols...))
	return And(res...)
}

// builder walks a normalized Formula and encodes it into a CNF formula,
// creating one cnf.Bit per distinct variable name on first reference -
// the same lazy-allocation pattern as the original vars.litValue, now
// targeting Tseitin clauses instead of raw DIMACS integers.
type builder struct {
	f    *cnf.Formula
	vars map[string]*cnf.Bit
}

func (b *builder) bit(v variable) *cnf.Bit {
	if existing, ok := b.vars[v.name]; ok {
		return existing
	}
	created := cnf.NewBit(b.f).AssignFresh()
	b.vars[v.name] = created
	return created
}

func (b *builder) build(f Formula) *cnf.Bit {
	switch f := f.(type) {
	case trueConst:
		return cnf.NewBit(b.f).AssignConstant(true)
	case falseConst:
		return cnf.NewBit(b.f).AssignConstant(false)
	case variable:
		return b.bit(f)
	case lit:
		v := b.bit(f.v)
		if f.signed {
			return cnf.NewBit(b.f).Inv(v)
		}
		return v
	case and:
		bits := make([]*cnf.Bit, len(f))
		for i, sub := range f {
			bits[i] = b.build(sub)
		}
		if len(bits) == 1 {
			return bits[0]
		}
		return cnf.NewBit(b.f).Con(bits...)
	case or:
		bits := make([]*cnf.Bit, len(f))
		for i, sub := range f {
			bits[i] = b.build(sub)
		}
		if len(bits) == 1 {
			return bits[0]
		}
		return cnf.NewBit(b.f).Dis(bits...)
	default:
		panic("bf: invalid NNF formula")
	}
}

// Build encodes f into target, returning the bit representing the whole
// formula and the set of named input bits created while walking it.
func Build(f Formula, target *cnf.Formula) (*cnf.Bit, map[string]*cnf.Bit) {
	b := &builder{f: target, vars: make(map[string]*cnf.Bit)}
	result := b.build(f.nnf())
	return result, b.vars
}

// Bit encoding for the ANF backend. Unlike the CNF side, this always
// delegates to the equation store (package anf's AppendEquationTerm and
// CompleteEquation already perform the relevant simplification -
// cancellation, absorption, folding - during normalization), matching
// AnfEncoderBit::con2/dis2/eor2/maj/ch in ple/anf/anfencoderbit.cpp exactly:
// none of those call the shared bit.Reduce* table, they go straight to the
// equation store.
package anf

import "github.com/vsklad/cgen-sub001/literal"

// Bit is a single encoded bit within an ANF formula.
type Bit struct {
	f     *Formula
	value literal.Literal
}

// NewBit returns a bit bound to f, initialized to constant 0.
func NewBit(f *Formula) *Bit { return &Bit{f: f, value: literal.Const0} }

// Literal returns the literal this bit currently represents.
func (b *Bit) Literal() literal.Literal { return b.value }

// Assign sets b to a known literal.
func (b *Bit) Assign(value literal.Literal) *Bit { b.value = value; return b }

// AssignConstant sets b to a boolean constant.
func (b *Bit) AssignConstant(value bool) *Bit { b.value = literal.Constant(value); return b }

// AssignFresh allocates a new free variable for b.
func (b *Bit) AssignFresh() *Bit { b.value = b.f.NewVariableLiteral(); return b }

// IsConstant reports whether b currently holds a constant.
func (b *Bit) IsConstant() bool { return b.value.IsConstant() }

// Inv negates value into b. Free: no equation is introduced.
func (b *Bit) Inv(value *Bit) *Bit {
	b.value = value.value.Negated()
	return b
}

// Eor computes the XOR of ≥2 arguments as a single equation: "optimize to
// exclude all additional variables for any number of parameters" per the
// original comment - the equation store folds constants and cancels
// duplicate terms regardless of how many arguments are passed.
func (b *Bit) Eor(args ...*Bit) *Bit {
	b.f.AppendEquation()
	for _, a := range args {
		b.f.AppendEquationTerm(a.value)
	}
	b.value = b.f.CompleteEquation(true)
	return b
}

// Eor2 is Eor specialized to two arguments.
func (b *Bit) Eor2(x, y *Bit) *Bit { return b.Eor(x, y) }

// Con2 computes x AND y.
func (b *Bit) Con2(x, y *Bit) *Bit {
	b.f.AppendEquation()
	b.f.AppendEquationTerm(x.value, y.value)
	b.value = b.f.CompleteEquation(true)
	return b
}

// Con reduces Con2 left-to-right over ≥2 arguments. ANF has no native n-ary
// AND shortcut analogous to Eor's, so this folds pairwise like the CNF
// backend and the default Bit<T>/Reducible behavior.
func (b *Bit) Con(args ...*Bit) *Bit {
	if len(args) < 2 {
		panic("anf: Con requires at least 2 arguments")
	}
	b.Con2(args[0], args[1])
	for _, a := range args[2:] {
		b.Con2(b, a)
	}
	return b
}

// Dis2 computes x OR y = x + y + xy.
func (b *Bit) Dis2(x, y *Bit) *Bit {
	b.f.AppendEquation()
	b.f.AppendEquationTerm(x.value)
	b.f.AppendEquationTerm(y.value)
	b.f.AppendEquationTerm(x.value, y.value)
	b.value = b.f.CompleteEquation(true)
	return b
}

// Dis reduces Dis2 left-to-right over ≥2 arguments.
func (b *Bit) Dis(args ...*Bit) *Bit {
	if len(args) < 2 {
		panic("anf: Dis requires at least 2 arguments")
	}
	b.Dis2(args[0], args[1])
	for _, a := range args[2:] {
		b.Dis2(b, a)
	}
	return b
}

// Maj computes xy ⊕ xz ⊕ yz.
func (b *Bit) Maj(x, y, z *Bit) *Bit {
	b.f.AppendEquation()
	b.f.AppendEquationTerm(x.value, y.value)
	b.f.AppendEquationTerm(x.value, z.value)
	b.f.AppendEquationTerm(y.value, z.value)
	b.value = b.f.CompleteEquation(true)
	return b
}

// Ch computes x&y ⊕ ¬x&z, encoded directly as xy ⊕ xz ⊕ z (since ¬x = 1⊕x,
// ¬x&z = z⊕xz).
func (b *Bit) Ch(x, y, z *Bit) *Bit {
	b.f.AppendEquation()
	b.f.AppendEquationTerm(x.value, y.value)
	b.f.AppendEquationTerm(x.value, z.value)
	b.f.AppendEquationTerm(z.value)
	b.value = b.f.CompleteEquation(true)
	return b
}

// Parity computes x ⊕ y ⊕ z.
func (b *Bit) Parity(x, y, z *Bit) *Bit {
	return b.Eor(x, y, z)
}

// AddNoCarry implements the carry-eliminated adder recurrence's per-bit
// equation (see word.AddCarryFree and ple/anf/anfwordadd.hpp):
// r = x ⊕ y ⊕ xPrev ⊕ yPrev ⊕ xPrev·yPrev ⊕ xPrev·rPrev ⊕ yPrev·rPrev.
func (b *Bit) AddNoCarry(x, y, xPrev, yPrev, rPrev *Bit) *Bit {
	b.f.AppendEquation()
	b.f.AppendEquationTerm(x.value)
	b.f.AppendEquationTerm(y.value)
	b.f.AppendEquationTerm(xPrev.value)
	b.f.AppendEquationTerm(yPrev.value)
	b.f.AppendEquationTerm(xPrev.value, yPrev.value)
	b.f.AppendEquationTerm(xPrev.value, rPrev.value)
	b.f.AppendEquationTerm(yPrev.value, rPrev.value)
	b.value = b.f.CompleteEquation(true)
	return b
}

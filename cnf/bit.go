// Bit encoding for the CNF backend: algebraic simplification first (package
// bit), Tseitin clause introduction when simplification can't avoid a fresh
// variable. Grounded on gophersat's bf.cnfRec (and/or-to-clause expansion)
// generalized from NNF-of-and/or to the full bit algebra, and on the
// default Bit<T> decompositions of ch/maj/parity in ple/library/bit.hpp
// (x&(y^z)^z and x&(y^z) ^ y&z) for the operators this backend has no
// native clause pattern for.
package cnf

import (
	"github.com/vsklad/cgen-sub001/bit"
	"github.com/vsklad/cgen-sub001/literal"
)

// Bit is a single encoded bit within a CNF formula.
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

// Inv negates value into b. Free: no variable or clause is introduced.
func (b *Bit) Inv(value *Bit) *Bit {
	b.value = value.value.Negated()
	return b
}

func (b *Bit) tseitinCon2(x, y literal.Literal) literal.Literal {
	r := b.f.NewVariableLiteral()
	_ = b.f.AppendClause(r.Negated(), x)
	_ = b.f.AppendClause(r.Negated(), y)
	_ = b.f.AppendClause(r, x.Negated(), y.Negated())
	return r
}

func (b *Bit) tseitinDis2(x, y literal.Literal) literal.Literal {
	r := b.f.NewVariableLiteral()
	_ = b.f.AppendClause(r, x.Negated())
	_ = b.f.AppendClause(r, y.Negated())
	_ = b.f.AppendClause(r.Negated(), x, y)
	return r
}

func (b *Bit) tseitinEor2(x, y literal.Literal) literal.Literal {
	r := b.f.NewVariableLiteral()
	_ = b.f.AppendClause(r.Negated(), x, y)
	_ = b.f.AppendClause(r.Negated(), x.Negated(), y.Negated())
	_ = b.f.AppendClause(r, x.Negated(), y)
	_ = b.f.AppendClause(r, x, y.Negated())
	return r
}

// Con2 computes x AND y.
func (b *Bit) Con2(x, y *Bit) *Bit {
	if v, ok := bit.ReduceCon2(x.value, y.value); ok {
		b.value = v
	} else {
		b.value = b.tseitinCon2(x.value, y.value)
	}
	return b
}

// Dis2 computes x OR y.
func (b *Bit) Dis2(x, y *Bit) *Bit {
	if v, ok := bit.ReduceDis2(x.value, y.value); ok {
		b.value = v
	} else {
		b.value = b.tseitinDis2(x.value, y.value)
	}
	return b
}

// Eor2 computes x XOR y.
func (b *Bit) Eor2(x, y *Bit) *Bit {
	if v, ok := bit.ReduceEor2(x.value, y.value); ok {
		b.value = v
	} else {
		b.value = b.tseitinEor2(x.value, y.value)
	}
	return b
}

func con2Value(f *Formula) func(x, y literal.Literal) literal.Literal {
	return func(x, y literal.Literal) literal.Literal {
		tmp := NewBit(f)
		tmp.Con2((&Bit{f: f, value: x}), (&Bit{f: f, value: y}))
		return tmp.value
	}
}

func dis2Value(f *Formula) func(x, y literal.Literal) literal.Literal {
	return func(x, y literal.Literal) literal.Literal {
		tmp := NewBit(f)
		tmp.Dis2((&Bit{f: f, value: x}), (&Bit{f: f, value: y}))
		return tmp.value
	}
}

func eor2Value(f *Formula) func(x, y literal.Literal) literal.Literal {
	return func(x, y literal.Literal) literal.Literal {
		tmp := NewBit(f)
		tmp.Eor2((&Bit{f: f, value: x}), (&Bit{f: f, value: y}))
		return tmp.value
	}
}

func invValue(x literal.Literal) literal.Literal { return x.Negated() }

// Con reduces con2 left-to-right over ≥2 arguments.
func (b *Bit) Con(args ...*Bit) *Bit {
	values := make([]literal.Literal, len(args))
	for i, a := range args {
		values[i] = a.value
	}
	b.value = bit.ReduceLeft(con2Value(b.f), values)
	return b
}

// Dis reduces dis2 left-to-right over ≥2 arguments.
func (b *Bit) Dis(args ...*Bit) *Bit {
	values := make([]literal.Literal, len(args))
	for i, a := range args {
		values[i] = a.value
	}
	b.value = bit.ReduceLeft(dis2Value(b.f), values)
	return b
}

// Eor reduces eor2 left-to-right over ≥2 arguments.
func (b *Bit) Eor(args ...*Bit) *Bit {
	values := make([]literal.Literal, len(args))
	for i, a := range args {
		values[i] = a.value
	}
	b.value = bit.ReduceLeft(eor2Value(b.f), values)
	return b
}

// Ch computes x ? y : z = x&(y^z)^z, via the default Bit<T> decomposition.
func (b *Bit) Ch(x, y, z *Bit) *Bit {
	con2, dis2 := con2Value(b.f), dis2Value(b.f)
	eor2 := eor2Value(b.f)
	if v, ok := bit.ReduceCh(x.value, y.value, z.value, con2, dis2, invValue, eor2); ok {
		b.value = v
		return b
	}
	yz := eor2(y.value, z.value)
	b.value = eor2(con2(x.value, yz), z.value)
	return b
}

// Maj computes the bitwise majority of x, y, z.
func (b *Bit) Maj(x, y, z *Bit) *Bit {
	con2, dis2 := con2Value(b.f), dis2Value(b.f)
	if v, ok := bit.ReduceMaj(x.value, y.value, z.value, con2, dis2); ok {
		b.value = v
		return b
	}
	eor2 := eor2Value(b.f)
	yz := eor2(y.value, z.value)
	b.value = eor2(con2(x.value, yz), con2(y.value, z.value))
	return b
}

// Parity computes x XOR y XOR z.
func (b *Bit) Parity(x, y, z *Bit) *Bit {
	return b.Eor(x, y, z)
}

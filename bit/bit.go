// Package bit holds the backend-agnostic algebraic simplification rules
// shared by the CNF and ANF bit encoders. Each Reduce* function mirrors one
// of the first-match simplification tables of the original literal-bit
// encoder (ple/library/literalbit.hpp): given the literal values of an
// operation's arguments, it either returns a literal that already expresses
// the result (no fresh variable needed) or reports ok=false so the caller's
// backend-specific encoder can proceed to allocate one.
//
// These functions never allocate a variable themselves; that is always the
// caller's responsibility, matching the layering of the original design
// where LiteralBit only identifies equivalences and constants, and the
// encoder subclass owns variable/equation/clause creation.
package bit

import "github.com/vsklad/cgen-sub001/literal"

// Value is the literal that a single encoded bit currently represents.
type Value = literal.Literal

// ReduceCon2 simplifies x AND y, in the first-match order of
// LiteralBit::reduce_con2.
func ReduceCon2(x, y Value) (Value, bool) {
	switch {
	case x == y:
		return x, true
	case x.IsNegationOf(y):
		return literal.Const0, true
	case x.IsConstant0() || y.IsConstant0():
		return literal.Const0, true
	case x.IsConstant1():
		return y, true
	case y.IsConstant1():
		return x, true
	default:
		return 0, false
	}
}

// ReduceDis2 simplifies x OR y, in the first-match order of
// LiteralBit::reduce_dis2.
func ReduceDis2(x, y Value) (Value, bool) {
	switch {
	case x == y:
		return x, true
	case x.IsNegationOf(y):
		return literal.Const1, true
	case x.IsConstant0():
		return y, true
	case y.IsConstant0():
		return x, true
	case x.IsConstant1() || y.IsConstant1():
		return literal.Const1, true
	default:
		return 0, false
	}
}

// ReduceEor2 simplifies x XOR y. The original encoders fold this case
// directly into the ANF/CNF backends (since XOR always needs an equation or
// a 2-clause pair when not constant), but the constant/self cases are cheap
// and universal enough to share here.
func ReduceEor2(x, y Value) (Value, bool) {
	switch {
	case x == y:
		return literal.Const0, true
	case x.IsNegationOf(y):
		return literal.Const1, true
	case x.IsConstant0():
		return y, true
	case y.IsConstant0():
		return x, true
	case x.IsConstant1():
		return y.Negated(), true
	case y.IsConstant1():
		return x.Negated(), true
	default:
		return 0, false
	}
}

// con2Fn/dis2Fn let ReduceMaj/ReduceCh recurse into a backend's own con2/dis2
// (which may itself allocate) when a partial simplification applies but
// doesn't finish the job without delegating.
type con2Fn func(x, y Value) Value
type dis2Fn func(x, y Value) Value
type invFn func(x Value) Value

// ReduceMaj simplifies maj(x,y,z) = xy ⊕ xz ⊕ yz, in the first-match order
// of LiteralBit::reduce_maj. con2/dis2 are used for the constant-collapse
// cases, which may themselves need to delegate to the backend.
func ReduceMaj(x, y, z Value, con2, dis2 con2Fn) (Value, bool) {
	switch {
	case x.IsConstant0():
		return con2(y, z), true
	case y.IsConstant0():
		return con2(x, z), true
	case z.IsConstant0():
		return con2(x, y), true
	case x.IsConstant1():
		return dis2(y, z), true
	case y.IsConstant1():
		return dis2(x, z), true
	case z.IsConstant1():
		return dis2(x, y), true
	case x == y || x == z:
		return x, true
	case y == z:
		return y, true
	default:
		return 0, false
	}
}

// ReduceCh simplifies ch(x,y,z) = (x∧y) ⊕ (¬x∧z), in the first-match order
// of LiteralBit::reduce_ch.
func ReduceCh(x, y, z Value, con2 con2Fn, dis2 dis2Fn, inv invFn, eor2XorInv func(x, y Value) Value) (Value, bool) {
	switch {
	case x.IsConstant0():
		return z, true
	case x.IsConstant1() || y == z:
		return y, true
	case y.IsConstant() && z.IsConstant():
		switch {
		case y == z:
			return y, true
		case y.IsConstant0():
			return inv(x), true
		default:
			return x, true
		}
	case y.IsConstant0() || y.IsNegationOf(x):
		return con2(inv(x), z), true
	case y == x && z.IsConstant0():
		return x, true
	case y == x && z.IsConstant1():
		return literal.Const1, true
	case y.IsConstant1() && z.IsNegationOf(x):
		return literal.Const1, true
	case y.IsConstant1() || y == x:
		// x ^ !x*z = x V z
		return dis2(x, z), true
	case z.IsConstant0() || z == x:
		return con2(x, y), true
	case z.IsConstant1() || z.IsNegationOf(x):
		// x&y ^ !x = !(x&!y) = !x V y
		return dis2(inv(x), y), true
	case z.IsNegationOf(y):
		// !(x^y)
		return inv(eor2XorInv(x, y)), true
	default:
		return 0, false
	}
}

// ReduceLeft folds a binary operator left-to-right over args, exactly as
// ple::Reducible::reduce does: op(args[0], args[1]), then op(result,
// args[2]), and so on. Requires at least two arguments.
func ReduceLeft(op func(x, y Value) Value, args []Value) Value {
	if len(args) < 2 {
		panic("bit: ReduceLeft requires at least 2 arguments")
	}
	result := op(args[0], args[1])
	for _, a := range args[2:] {
		result = op(result, a)
	}
	return result
}

// Parity computes x ⊕ y ⊕ z via a supplied eor2.
func Parity(x, y, z Value, eor2 func(x, y Value) Value) Value {
	return eor2(eor2(x, y), z)
}

package word

import "github.com/vsklad/cgen-sub001/anf"

// AddCarryFree computes x+y using the ANF backend's carry-eliminated
// adder: bit 0 is a plain XOR, every later bit is a single 7-term equation
// (anf.Bit.AddNoCarry) that folds the carry recurrence directly into one
// ANF equation instead of chaining an explicit carry bit through Maj/Eor
// per position. Grounded on ple/anf/anfwordadd.hpp, which specializes the
// generic word_add2 this way specifically for the ANF backend.
func AddCarryFree(f *anf.Formula, x, y *Word[*anf.Bit]) *Word[*anf.Bit] {
	size := x.Len()
	result := make([]*anf.Bit, size)
	result[0] = anf.NewBit(f).Eor2(x.Bit(0), y.Bit(0))
	for i := 1; i < size; i++ {
		result[i] = anf.NewBit(f).AddNoCarry(x.Bit(i), y.Bit(i), x.Bit(i-1), y.Bit(i-1), result[i-1])
	}
	return FromBits(func() *anf.Bit { return anf.NewBit(f) }, result)
}
